package repomanager

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/userconsole/internal/server/repositories/users"
)

// MemoryRepositoryManager backs the authority with process memory. It is
// used when no database is configured. Units of work are serialized but
// not rolled back.
type MemoryRepositoryManager struct {
	mu   sync.Mutex
	repo *users.MemoryRepository
}

func NewMemoryRepositoryManager() *MemoryRepositoryManager {
	return &MemoryRepositoryManager{repo: users.NewMemoryRepository()}
}

func (m *MemoryRepositoryManager) RunMigrations(context.Context) error { return nil }

func (m *MemoryRepositoryManager) Users() users.Repository { return m.repo }

func (m *MemoryRepositoryManager) WithinTx(ctx context.Context, fn func(ctx context.Context, repo users.Repository) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return fn(ctx, m.repo)
}

func (m *MemoryRepositoryManager) Close() error { return nil }
