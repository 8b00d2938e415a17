// Package users stores accounts. Email is unique without regard to case;
// violations surface as common.ErrAlreadyExists and missing rows as
// common.ErrNotFound.
package users

import (
	"context"

	"github.com/dmitrijs2005/userconsole/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	// List returns every user, oldest first.
	List(ctx context.Context) ([]models.User, error)
}
