package users

import (
	"context"
	"strings"
	"sync"

	"github.com/dmitrijs2005/userconsole/internal/common"
	"github.com/dmitrijs2005/userconsole/internal/server/models"
)

// MemoryRepository keeps users in process memory, in insertion order.
type MemoryRepository struct {
	mu    sync.RWMutex
	order []string
	byID  map[string]models.User
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{byID: make(map[string]models.User)}
}

func (r *MemoryRepository) Create(_ context.Context, user *models.User) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[user.ID]; ok {
		return nil, common.ErrAlreadyExists
	}
	if r.emailTaken(user.Email, "") {
		return nil, common.ErrAlreadyExists
	}

	r.byID[user.ID] = *user
	r.order = append(r.order, user.ID)
	return user, nil
}

func (r *MemoryRepository) Update(_ context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cur, ok := r.byID[user.ID]
	if !ok {
		return common.ErrNotFound
	}
	if r.emailTaken(user.Email, user.ID) {
		return common.ErrAlreadyExists
	}

	cur.Name = user.Name
	cur.Email = user.Email
	cur.DOB = user.DOB
	cur.Phone = user.Phone
	r.byID[user.ID] = cur
	return nil
}

func (r *MemoryRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return common.ErrNotFound
	}
	delete(r.byID, id)
	for i, v := range r.order {
		if v == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *MemoryRepository) GetByID(_ context.Context, id string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byID[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	return &u, nil
}

func (r *MemoryRepository) GetByEmail(_ context.Context, email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, id := range r.order {
		if u := r.byID[id]; strings.EqualFold(u.Email, email) {
			return &u, nil
		}
	}
	return nil, common.ErrNotFound
}

func (r *MemoryRepository) List(_ context.Context) ([]models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make([]models.User, 0, len(r.order))
	for _, id := range r.order {
		users = append(users, r.byID[id])
	}
	return users, nil
}

func (r *MemoryRepository) emailTaken(email, exceptID string) bool {
	for id, u := range r.byID {
		if id != exceptID && strings.EqualFold(u.Email, email) {
			return true
		}
	}
	return false
}
