// Package mutation sends create, update and delete requests to the user
// authority and installs what it answers.
//
// Update and delete responses carry the complete user list; the Coordinator
// hands that list to the Directory as-is. It never edits a single row
// locally, so the console cannot drift from what the authority reports.
package mutation

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/userconsole/internal/client/models"
	"github.com/dmitrijs2005/userconsole/internal/logging"
)

// Remote is the authority's mutation surface.
type Remote interface {
	CreateUser(ctx context.Context, draft models.NewUser) (string, error)
	UpdateUser(ctx context.Context, id string, patch models.UserPatch) ([]models.User, error)
	DeleteUser(ctx context.Context, id string) ([]models.User, error)
}

// Directory receives whole replacement lists.
type Directory interface {
	Replace(users []models.User)
}

type Coordinator struct {
	remote Remote
	log    logging.Logger
}

func NewCoordinator(remote Remote, log logging.Logger) *Coordinator {
	return &Coordinator{remote: remote, log: log}
}

// Create posts draft and returns the authority's message. It does not touch
// any Directory; views reload on their next mount.
func (c *Coordinator) Create(ctx context.Context, draft models.NewUser) (string, error) {
	msg, err := c.remote.CreateUser(ctx, draft)
	if err != nil {
		c.log.Info(ctx, "create user rejected", logging.Err(err))
		return "", fmt.Errorf("create user: %w", err)
	}
	c.log.Info(ctx, "user created", "email", draft.Email)
	return msg, nil
}

// Update saves the edit held by slot. On success dir is replaced with the
// returned list and the slot is cleared; on failure the slot keeps the edit.
func (c *Coordinator) Update(ctx context.Context, slot *EditSlot, dir Directory) error {
	target, ok := slot.Target()
	if !ok {
		return ErrNoPendingEdit
	}

	users, err := c.remote.UpdateUser(ctx, target.ID, target.Patch())
	if err != nil {
		c.log.Info(ctx, "update user rejected", "id", target.ID, logging.Err(err))
		return fmt.Errorf("update user %s: %w", target.ID, err)
	}

	dir.Replace(users)
	slot.Cancel()
	c.log.Info(ctx, "user updated", "id", target.ID, "count", len(users))
	return nil
}

// Delete confirms gate and deletes the armed user. On success dir is
// replaced with the returned list. The gate is Idle afterwards either way.
func (c *Coordinator) Delete(ctx context.Context, gate *Gate, dir Directory) error {
	return gate.Confirm(ctx, func(ctx context.Context, id string) error {
		users, err := c.remote.DeleteUser(ctx, id)
		if err != nil {
			c.log.Info(ctx, "delete user rejected", "id", id, logging.Err(err))
			return fmt.Errorf("delete user %s: %w", id, err)
		}
		dir.Replace(users)
		c.log.Info(ctx, "user deleted", "id", id, "count", len(users))
		return nil
	})
}
