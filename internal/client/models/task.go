// Package models defines the client-side view of API resources.
package models

import "time"

// Task is a to-do item as returned by the server.
type Task struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	UserID    string    `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
