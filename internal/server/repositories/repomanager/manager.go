package repomanager

import (
	"context"

	"github.com/dmitrijs2005/gophtasks/internal/server/repositories/tasks"
	"github.com/dmitrijs2005/gophtasks/internal/server/repositories/users"
)

// RepositoryManager hands out repositories bound to one storage backend.
type RepositoryManager interface {
	Users() users.Repository
	Tasks() tasks.Repository

	// WithTx runs fn against a manager whose repositories share one
	// transaction. fn's error rolls everything back.
	WithTx(ctx context.Context, fn func(ctx context.Context, m RepositoryManager) error) error

	Ping(ctx context.Context) error
	Close() error
}
