// Package repomanager owns the storage backend of the user authority and
// hands out repositories, optionally bound to one transaction.
package repomanager

import (
	"context"

	"github.com/dmitrijs2005/userconsole/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(ctx context.Context) error
	Users() users.Repository
	// WithinTx runs fn against a repository whose writes commit together
	// when fn returns nil.
	WithinTx(ctx context.Context, fn func(ctx context.Context, repo users.Repository) error) error
	Close() error
}
