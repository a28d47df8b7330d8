// Package tasks declares the task store and its PostgreSQL implementation.
package tasks

import (
	"context"

	"github.com/dmitrijs2005/gophtasks/internal/server/models"
)

// Repository persists tasks. Lookups of unknown ids return common.ErrorNotFound.
type Repository interface {
	Create(ctx context.Context, task *models.Task) (*models.Task, error)
	ListByUser(ctx context.Context, userID string) ([]*models.Task, error)

	// GetForUpdate loads a task and, inside a transaction, locks it until commit.
	GetForUpdate(ctx context.Context, id string) (*models.Task, error)

	// UpdateText replaces the text and refreshes UpdatedAt on task.
	UpdateText(ctx context.Context, task *models.Task) error
	Delete(ctx context.Context, id string) error
}
