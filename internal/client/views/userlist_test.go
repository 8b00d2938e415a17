package views

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/userconsole/internal/client/api"
	"github.com/dmitrijs2005/userconsole/internal/client/directory"
	"github.com/dmitrijs2005/userconsole/internal/client/forms"
	"github.com/dmitrijs2005/userconsole/internal/client/models"
	"github.com/dmitrijs2005/userconsole/internal/client/mutation"
)

var (
	alice = models.User{ID: "1", Name: "Alice", Email: "alice@x.com", Phone: "555-0100"}
	bob   = models.User{ID: "2", Name: "Bob", Email: "bob@x.com", DOB: "1990-01-01"}
	carol = models.User{ID: "3", Name: "Carol", Email: "carol@y.org"}
)

func mounted(t *testing.T, c *fakeClient) (*UserListView, *directory.Store, *fakeNav) {
	t.Helper()
	nav := &fakeNav{}
	v, store := newUserList(c, nav)
	ok, err := v.Mount(context.Background())
	require.True(t, ok)
	require.NoError(t, err)
	return v, store, nav
}

func TestUserListView_MountLoggedOut(t *testing.T) {
	c := &fakeClient{sessionErr: &api.Error{Kind: api.KindUnauthorized, Status: 401}}
	nav := &fakeNav{}
	v, _ := newUserList(c, nav)

	ok, err := v.Mount(context.Background())
	require.False(t, ok)
	require.NoError(t, err)
	assert.Equal(t, []Route{RouteLogin}, nav.visited())
	assert.Zero(t, c.count("list"), "directory must not load without a session")
}

func TestUserListView_MountLoadFailure(t *testing.T) {
	c := &fakeClient{session: loggedIn, listErr: &api.Error{Kind: api.KindServer, Status: 500}}
	v, store := newUserList(c, &fakeNav{})

	ok, err := v.Mount(context.Background())
	require.True(t, ok)
	require.ErrorIs(t, err, directory.ErrLoadFailed)
	assert.Zero(t, store.Len())
	assert.Empty(t, v.Filtered())
}

func TestUserListView_Search(t *testing.T) {
	c := &fakeClient{session: loggedIn, users: []models.User{alice, bob, carol}}
	v, _, _ := mounted(t, c)

	assert.Equal(t, []models.User{alice, bob, carol}, v.Filtered())
	assert.Equal(t, loggedIn, v.Session())

	v.Search("X.COM")
	assert.Equal(t, []models.User{alice, bob}, v.Filtered())
	assert.Equal(t, "X.COM", v.Query())

	v.Search("1990")
	assert.Equal(t, []models.User{bob}, v.Filtered())

	v.Search("nobody")
	assert.Empty(t, v.Filtered())
}

// A successful update installs exactly the authority's list and closes the edit.
func TestUserListView_SaveEditSuccess(t *testing.T) {
	renamed := alice
	renamed.Name = "Alicia"
	server := []models.User{carol, renamed}

	c := &fakeClient{session: loggedIn, users: []models.User{alice, bob}, updateUsers: server}
	v, store, _ := mounted(t, c)

	require.NoError(t, v.OpenEdit("1"))
	require.NoError(t, v.EditField(models.FieldName, "Alicia"))

	n, err := v.SaveEdit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.Success(forms.MsgUserUpdated), n)
	assert.Equal(t, server, store.Current())

	_, open := v.Editing()
	assert.False(t, open)
}

func TestUserListView_SaveEditFailureKeepsEdit(t *testing.T) {
	c := &fakeClient{
		session:   loggedIn,
		users:     []models.User{alice, bob},
		updateErr: &api.Error{Kind: api.KindConflict, Status: 409},
	}
	v, store, _ := mounted(t, c)

	require.NoError(t, v.OpenEdit("2"))
	require.NoError(t, v.EditField(models.FieldEmail, "alice@x.com"))

	n, err := v.SaveEdit(context.Background())
	require.ErrorIs(t, err, api.ErrConflict)
	assert.Equal(t, models.Failure(forms.MsgUpdateFailed), n)

	edit, open := v.Editing()
	require.True(t, open)
	assert.Equal(t, "alice@x.com", edit.Email)
	assert.Equal(t, []models.User{alice, bob}, store.Current())
}

func TestUserListView_SaveEditNothingOpen(t *testing.T) {
	c := &fakeClient{session: loggedIn, users: []models.User{alice}}
	v, _, _ := mounted(t, c)

	_, err := v.SaveEdit(context.Background())
	require.ErrorIs(t, err, mutation.ErrNoPendingEdit)
	assert.Zero(t, c.count("update"))
}

func TestUserListView_OpenEditUnknown(t *testing.T) {
	c := &fakeClient{session: loggedIn, users: []models.User{alice}}
	v, _, _ := mounted(t, c)

	require.ErrorIs(t, v.OpenEdit("99"), ErrUnknownUser)
	_, open := v.Editing()
	assert.False(t, open)
}

func TestUserListView_EditIsACopy(t *testing.T) {
	c := &fakeClient{session: loggedIn, users: []models.User{alice}}
	v, store, _ := mounted(t, c)

	require.NoError(t, v.OpenEdit("1"))
	require.NoError(t, v.EditField(models.FieldName, "Changed"))
	assert.Equal(t, "Alice", store.Current()[0].Name)

	v.CancelEdit()
	_, open := v.Editing()
	assert.False(t, open)
}

// A failed delete dismisses the confirmation and leaves the list alone.
func TestUserListView_ConfirmDeleteFailure(t *testing.T) {
	c := &fakeClient{
		session:   loggedIn,
		users:     []models.User{alice, bob},
		deleteErr: &api.Error{Kind: api.KindServer, Status: 404},
	}
	v, store, _ := mounted(t, c)

	require.NoError(t, v.ArmDelete("2"))
	n, err := v.ConfirmDelete(context.Background())
	require.ErrorIs(t, err, api.ErrServer)
	assert.Equal(t, models.Failure(forms.MsgDeleteFailed), n)

	_, armed := v.PendingDelete()
	assert.False(t, armed)
	assert.Equal(t, []models.User{alice, bob}, store.Current())
}

// Arming twice deletes only the last target.
func TestUserListView_LastArmWins(t *testing.T) {
	c := &fakeClient{
		session:     loggedIn,
		users:       []models.User{alice, bob},
		deleteUsers: []models.User{alice},
	}
	v, store, _ := mounted(t, c)

	require.NoError(t, v.ArmDelete("1"))
	require.NoError(t, v.ArmDelete("2"))
	id, armed := v.PendingDelete()
	require.True(t, armed)
	assert.Equal(t, "2", id)

	n, err := v.ConfirmDelete(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.Success(forms.MsgUserDeleted), n)
	assert.Equal(t, []string{"2"}, c.deleted)
	assert.Equal(t, []models.User{alice}, store.Current())
}

func TestUserListView_ConfirmWithoutArm(t *testing.T) {
	c := &fakeClient{session: loggedIn, users: []models.User{alice}}
	v, _, _ := mounted(t, c)

	require.NoError(t, v.ArmDelete("1"))
	v.CancelDelete()

	_, err := v.ConfirmDelete(context.Background())
	require.ErrorIs(t, err, mutation.ErrNotArmed)
	assert.Zero(t, c.count("delete"))
}

func TestUserListView_EditAndDeleteAreIndependent(t *testing.T) {
	c := &fakeClient{session: loggedIn, users: []models.User{alice, bob}, deleteUsers: []models.User{alice}}
	v, _, _ := mounted(t, c)

	require.NoError(t, v.OpenEdit("1"))
	require.NoError(t, v.ArmDelete("2"))

	_, err := v.ConfirmDelete(context.Background())
	require.NoError(t, err)

	edit, open := v.Editing()
	require.True(t, open)
	assert.Equal(t, "1", edit.ID)
}

func TestUserListView_RemountReprobes(t *testing.T) {
	c := &fakeClient{session: loggedIn, users: []models.User{alice}}
	v, _, nav := mounted(t, c)
	require.Equal(t, 1, c.count("session"))

	c.sessionErr = errors.New("expired")
	ok, err := v.Mount(context.Background())
	require.False(t, ok)
	require.NoError(t, err)
	assert.Equal(t, 2, c.count("session"))
	assert.Equal(t, []Route{RouteLogin}, nav.visited())
}

func TestUserListView_ArmDeleteUnknownKeepsTarget(t *testing.T) {
	c := &fakeClient{session: loggedIn, users: []models.User{alice, bob}}
	v, _, _ := mounted(t, c)

	require.NoError(t, v.ArmDelete("2"))
	require.ErrorIs(t, v.ArmDelete("7"), ErrUnknownUser)

	id, armed := v.PendingDelete()
	require.True(t, armed)
	assert.Equal(t, "2", id)
}

func TestUserListView_CloseDropsSnapshot(t *testing.T) {
	c := &fakeClient{session: loggedIn, users: []models.User{alice, bob}}
	v, store, _ := mounted(t, c)
	v.Search("bob")
	require.NoError(t, v.OpenEdit("2"))
	require.NoError(t, v.ArmDelete("1"))

	v.Close()

	assert.Zero(t, store.Len())
	assert.Empty(t, v.Filtered())
	assert.Empty(t, v.Query())
	assert.Equal(t, models.Session{}, v.Session())
	_, open := v.Editing()
	assert.False(t, open)
	_, armed := v.PendingDelete()
	assert.False(t, armed)

	_, err := v.ConfirmDelete(context.Background())
	require.ErrorIs(t, err, mutation.ErrNotArmed)
	assert.Zero(t, c.count("delete"))
}
