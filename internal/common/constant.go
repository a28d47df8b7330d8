// Package common contains shared constants and sentinel errors used across
// gophtasks components.
package common

const (
	// AuthorizationHeaderName carries the access token on HTTP requests.
	AuthorizationHeaderName = "Authorization"

	// BearerScheme is the only authorization scheme the server accepts.
	BearerScheme = "Bearer"
)
