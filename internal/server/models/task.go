package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Task is a single to-do item owned by exactly one user.
type Task struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	UserID    string    `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// OwnedBy reports whether userID owns the task. Identifiers are compared by
// value: two spellings of the same UUID (case, braces, urn prefix) match.
func (t *Task) OwnedBy(userID string) bool {
	return SameID(t.UserID, userID)
}

// SameID compares two identifiers by value.
func SameID(a, b string) bool {
	ua, errA := uuid.Parse(a)
	ub, errB := uuid.Parse(b)
	if errA == nil && errB == nil {
		return ua == ub
	}
	return strings.TrimSpace(a) != "" && strings.TrimSpace(a) == strings.TrimSpace(b)
}
