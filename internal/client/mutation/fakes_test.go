package mutation

import (
	"context"

	"github.com/dmitrijs2005/userconsole/internal/client/models"
)

// fakeRemote records calls and answers from its fields.
type fakeRemote struct {
	createMsg string
	createErr error

	updateUsers []models.User
	updateErr   error

	deleteUsers []models.User
	deleteErr   error

	created   []models.NewUser
	updated   []string
	patches   []models.UserPatch
	deletedID []string
}

func (f *fakeRemote) CreateUser(_ context.Context, draft models.NewUser) (string, error) {
	f.created = append(f.created, draft)
	return f.createMsg, f.createErr
}

func (f *fakeRemote) UpdateUser(_ context.Context, id string, patch models.UserPatch) ([]models.User, error) {
	f.updated = append(f.updated, id)
	f.patches = append(f.patches, patch)
	return f.updateUsers, f.updateErr
}

func (f *fakeRemote) DeleteUser(_ context.Context, id string) ([]models.User, error) {
	f.deletedID = append(f.deletedID, id)
	return f.deleteUsers, f.deleteErr
}

// fakeDirectory keeps every list it was given.
type fakeDirectory struct {
	replaced [][]models.User
}

func (d *fakeDirectory) Replace(users []models.User) {
	d.replaced = append(d.replaced, users)
}

func (d *fakeDirectory) last() []models.User {
	if len(d.replaced) == 0 {
		return nil
	}
	return d.replaced[len(d.replaced)-1]
}
