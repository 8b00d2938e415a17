package api

import (
	"context"

	"github.com/dmitrijs2005/userconsole/internal/client/models"
)

// Client is the full set of remote operations. Consumers usually depend on
// a narrower interface of their own.
type Client interface {
	Session(ctx context.Context) (models.Session, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	CreateUser(ctx context.Context, draft models.NewUser) (string, error)
	UpdateUser(ctx context.Context, id string, patch models.UserPatch) ([]models.User, error)
	DeleteUser(ctx context.Context, id string) ([]models.User, error)
	Login(ctx context.Context, username, password string) error
	Signup(ctx context.Context, req models.Signup) (string, error)
	Logout(ctx context.Context) error
}
