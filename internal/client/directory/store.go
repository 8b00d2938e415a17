// Package directory holds the console's copy of the user list and the
// search projection over it.
//
// The copy is never edited row by row. It changes only through Load, which
// asks the authority for the full list, or Replace, which installs a full
// list the authority returned from a mutation.
package directory

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/userconsole/internal/client/models"
	"github.com/dmitrijs2005/userconsole/internal/logging"
)

// ErrLoadFailed marks a failed Load; the store is empty afterwards.
var ErrLoadFailed = errors.New("directory load failed")

// Lister fetches the authoritative list (GET /getAllUsers).
type Lister interface {
	ListUsers(ctx context.Context) ([]models.User, error)
}

// Store is the in-memory Directory. The zero value is not usable; call NewStore.
type Store struct {
	remote Lister
	log    logging.Logger

	mu    sync.RWMutex
	users []models.User
}

func NewStore(remote Lister, log logging.Logger) *Store {
	return &Store{remote: remote, log: log, users: []models.User{}}
}

// Load replaces the cached list with the authority's. On failure the cache
// is emptied rather than left stale, and the error wraps ErrLoadFailed.
func (s *Store) Load(ctx context.Context) error {
	users, err := s.remote.ListUsers(ctx)
	if err != nil {
		s.Replace(nil)
		s.log.Warn(ctx, "directory load failed", logging.Err(err))
		return fmt.Errorf("%w: %w", ErrLoadFailed, err)
	}
	s.Replace(users)
	s.log.Debug(ctx, "directory loaded", "count", len(users))
	return nil
}

// Replace installs users as the whole Directory.
func (s *Store) Replace(users []models.User) {
	next := make([]models.User, len(users))
	copy(next, users)

	s.mu.Lock()
	s.users = next
	s.mu.Unlock()
}

// Current returns a copy of the last installed list, empty before the first Load.
func (s *Store) Current() []models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.User, len(s.users))
	copy(out, s.users)
	return out
}

// Len reports the number of cached users.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.users)
}
