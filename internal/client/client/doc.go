// Package client talks to the gophtasks JSON API over HTTP.
//
// HTTPClient keeps the access token returned by Login and attaches it as a
// bearer token to every task call. Non-2xx answers become *APIError values
// that unwrap to the matching common sentinel (404 → common.ErrorNotFound,
// 403 → common.ErrorForbidden, and so on), so callers can use errors.Is.
package client
