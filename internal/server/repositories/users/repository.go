// Package users declares the credential store and its PostgreSQL implementation.
package users

import (
	"context"

	"github.com/dmitrijs2005/gophtasks/internal/server/models"
)

// Repository persists user accounts.
type Repository interface {
	// Create inserts user and fills its ID and CreatedAt. A taken username
	// yields common.ErrorAlreadyExists.
	Create(ctx context.Context, user *models.User) (*models.User, error)

	// GetUserByLogin finds a user by exact username or returns common.ErrorNotFound.
	GetUserByLogin(ctx context.Context, login string) (*models.User, error)
}
