package repomanager

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/gophtasks/internal/server/repositories/memory"
	"github.com/dmitrijs2005/gophtasks/internal/server/repositories/tasks"
	"github.com/dmitrijs2005/gophtasks/internal/server/repositories/users"
)

var (
	_ users.Repository = (*memory.UserRepository)(nil)
	_ tasks.Repository = (*memory.TaskRepository)(nil)
)

// MemoryRepositoryManager serves repositories from a memory.Store. WithTx
// callbacks run one at a time.
type MemoryRepositoryManager struct {
	store *memory.Store
	txMu  *sync.Mutex
	inTx  bool
}

func NewMemoryRepositoryManager(store *memory.Store) *MemoryRepositoryManager {
	return &MemoryRepositoryManager{store: store, txMu: &sync.Mutex{}}
}

func (m *MemoryRepositoryManager) Users() users.Repository { return m.store.Users() }
func (m *MemoryRepositoryManager) Tasks() tasks.Repository { return m.store.Tasks() }

func (m *MemoryRepositoryManager) WithTx(ctx context.Context, fn func(ctx context.Context, m RepositoryManager) error) error {
	if m.inTx {
		return fn(ctx, m)
	}
	m.txMu.Lock()
	defer m.txMu.Unlock()
	return fn(ctx, &MemoryRepositoryManager{store: m.store, txMu: m.txMu, inTx: true})
}

func (m *MemoryRepositoryManager) Ping(ctx context.Context) error { return ctx.Err() }
func (m *MemoryRepositoryManager) Close() error                   { return nil }
