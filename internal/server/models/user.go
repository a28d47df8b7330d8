// Package models defines server-side data models persisted in the store.
package models

import "time"

// User is a registered account. PasswordHash is a bcrypt hash; the
// plaintext password is never stored.
type User struct {
	ID           string
	UserName     string
	PasswordHash string
	CreatedAt    time.Time
}
