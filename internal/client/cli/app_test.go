package cli

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/userconsole/internal/client/api"
	"github.com/dmitrijs2005/userconsole/internal/client/models"
	"github.com/dmitrijs2005/userconsole/internal/client/views"
	"github.com/dmitrijs2005/userconsole/internal/logging"
)

// fakeRemote is an api.Client backed by a slice of users.
type fakeRemote struct {
	session  models.Session
	loggedIn bool
	users    []models.User
	taken    map[string]bool

	loginErr error
	created  []models.NewUser
}

func (f *fakeRemote) Session(context.Context) (models.Session, error) {
	if !f.loggedIn {
		return models.Session{}, &api.Error{Kind: api.KindUnauthorized, Status: 401}
	}
	return f.session, nil
}

func (f *fakeRemote) ListUsers(context.Context) ([]models.User, error) {
	return append([]models.User(nil), f.users...), nil
}

func (f *fakeRemote) CreateUser(_ context.Context, d models.NewUser) (string, error) {
	if f.taken[d.Email] {
		return "", &api.Error{Kind: api.KindConflict, Status: 409}
	}
	f.created = append(f.created, d)
	return "User created successfully!", nil
}

func (f *fakeRemote) UpdateUser(_ context.Context, id string, p models.UserPatch) ([]models.User, error) {
	for i, u := range f.users {
		if u.ID == id {
			f.users[i] = models.User{ID: id, Name: p.Name, Email: p.Email, DOB: p.DOB, Phone: p.Phone}
			return f.ListUsers(context.Background())
		}
	}
	return nil, &api.Error{Kind: api.KindServer, Status: 404}
}

func (f *fakeRemote) DeleteUser(_ context.Context, id string) ([]models.User, error) {
	out := f.users[:0]
	for _, u := range f.users {
		if u.ID != id {
			out = append(out, u)
		}
	}
	f.users = out
	return f.ListUsers(context.Background())
}

func (f *fakeRemote) Login(context.Context, string, string) error {
	if f.loginErr != nil {
		return f.loginErr
	}
	f.loggedIn = true
	return nil
}

func (f *fakeRemote) Signup(context.Context, models.Signup) (string, error) {
	return "ok", nil
}

func (f *fakeRemote) Logout(context.Context) error {
	f.loggedIn = false
	return nil
}

// instantScheduler runs tasks immediately.
type instantScheduler struct{}

type noTimer struct{}

func (noTimer) Stop() bool { return false }

func (instantScheduler) AfterFunc(_ time.Duration, f func()) views.Timer {
	f()
	return noTimer{}
}

func stubInput(t *testing.T, passwords ...string) {
	t.Helper()
	orig := getPassword
	getPassword = func(io.Writer) (string, error) {
		if len(passwords) == 0 {
			return "", io.EOF
		}
		pw := passwords[0]
		passwords = passwords[1:]
		return pw, nil
	}
	t.Cleanup(func() { getPassword = orig })
	silence(t)
}

func newTestApp(remote *fakeRemote, input string) (*App, *bytes.Buffer) {
	var out bytes.Buffer
	a := NewApp(remote, Options{
		In:        strings.NewReader(input),
		Out:       &out,
		Log:       logging.Discard(),
		Scheduler: instantScheduler{},
	})
	return a, &out
}

func users() []models.User {
	return []models.User{
		{ID: "1", Name: "Alice", Email: "alice@x.com"},
		{ID: "2", Name: "Bob", Email: "bob@x.com", Phone: "555"},
	}
}

func TestApp_LoginShowsDashboard(t *testing.T) {
	stubInput(t, "pw")
	remote := &fakeRemote{session: models.Session{Name: "Admin"}, users: users()}
	a, out := newTestApp(remote, "login\nadmin@x.com\n")

	a.Run(context.Background())

	assert.Contains(t, out.String(), "Welcome back, Admin")
	assert.Equal(t, views.RouteDashboard, a.Route())
}

func TestApp_LoginRejected(t *testing.T) {
	stubInput(t, "bad")
	remote := &fakeRemote{loginErr: &api.Error{Kind: api.KindUnauthorized, Status: 401}}
	a, out := newTestApp(remote, "login\nadmin@x.com\n")

	a.Run(context.Background())

	assert.Contains(t, out.String(), "[error] Invalid username or password")
	assert.Equal(t, views.RouteLogin, a.Route())
}

func TestApp_ProtectedViewWhenLoggedOut(t *testing.T) {
	stubInput(t)
	a, out := newTestApp(&fakeRemote{}, "users\n")

	a.Run(context.Background())

	assert.Contains(t, out.String(), "Please log in.")
	assert.Equal(t, views.RouteLogin, a.Route())
}

func TestApp_ListSearchEditDelete(t *testing.T) {
	stubInput(t)
	remote := &fakeRemote{loggedIn: true, session: models.Session{Name: "Admin"}, users: users()}
	a, out := newTestApp(remote, strings.Join([]string{
		"users",
		"search 555",
		"edit 2",
		"set name Robert",
		"save",
		"delete 1",
		"confirm",
		"confirm",
	}, "\n")+"\n")

	a.Run(context.Background())

	got := out.String()
	assert.Contains(t, got, "ID")
	assert.Contains(t, got, "alice@x.com")
	assert.Contains(t, got, "[success] User updated successfully!")
	assert.Contains(t, got, "Delete user 1?")
	assert.Contains(t, got, "[success] User deleted successfully!")
	assert.Contains(t, got, "Nothing to confirm.")

	require.Len(t, remote.users, 1)
	assert.Equal(t, "Robert", remote.users[0].Name)
}

func TestApp_AddRetriesTakenEmail(t *testing.T) {
	stubInput(t, "pw")
	remote := &fakeRemote{
		loggedIn: true,
		session:  models.Session{Name: "Admin"},
		taken:    map[string]bool{"a@x.com": true},
	}
	a, out := newTestApp(remote, strings.Join([]string{
		"add",
		"Ann",
		"a@x.com",
		"",
		"",
		"b@x.com",
	}, "\n")+"\n")

	a.Run(context.Background())

	got := out.String()
	assert.Contains(t, got, "[error] Email already exists!")
	assert.Contains(t, got, "[success] User created successfully!")
	require.Len(t, remote.created, 1)
	assert.Equal(t, models.NewUser{Name: "Ann", Email: "b@x.com", Password: "pw"}, remote.created[0])
	assert.Equal(t, views.RouteDashboard, a.Route(), "success redirects to the dashboard")
}

func TestApp_Logout(t *testing.T) {
	stubInput(t)
	remote := &fakeRemote{loggedIn: true, session: models.Session{Name: "Admin"}}
	a, out := newTestApp(remote, "dashboard\nlogout\n")

	a.Run(context.Background())

	assert.Contains(t, out.String(), "Logged out.")
	assert.False(t, remote.loggedIn)
	assert.Equal(t, views.RouteLogin, a.Route())
}

func TestApp_LogoutDropsUserList(t *testing.T) {
	stubInput(t)
	remote := &fakeRemote{loggedIn: true, session: models.Session{Name: "Admin"}, users: users()}
	a, out := newTestApp(remote, strings.Join([]string{
		"users",
		"delete 1",
		"logout",
		"edit 2",
		"delete 1",
		"confirm",
	}, "\n")+"\n")

	a.Run(context.Background())

	_, after, found := strings.Cut(out.String(), "Logged out.")
	require.True(t, found)
	assert.NotContains(t, after, "bob@x.com")
	assert.NotContains(t, after, "Delete user")
	assert.Contains(t, after, "Please log in.")

	_, armed := a.users.PendingDelete()
	assert.False(t, armed)
	_, editing := a.users.Editing()
	assert.False(t, editing)
	assert.Empty(t, a.users.Filtered())
	assert.Len(t, remote.users, 2)
}

func TestApp_LeavingListDisarmsDelete(t *testing.T) {
	stubInput(t)
	remote := &fakeRemote{loggedIn: true, session: models.Session{Name: "Admin"}, users: users()}
	a, out := newTestApp(remote, strings.Join([]string{
		"users",
		"edit 2",
		"delete 2",
		"dashboard",
		"confirm",
		"save",
		"users",
		"confirm",
		"delete 9",
	}, "\n")+"\n")

	a.Run(context.Background())

	got := out.String()
	assert.Contains(t, got, "Open the list first with 'users'.")
	assert.Contains(t, got, "Nothing to confirm.")
	assert.Contains(t, got, "user not in directory: 9")
	assert.NotContains(t, got, "Delete user 9?")
	assert.Len(t, remote.users, 2)
	assert.Equal(t, views.RouteUsers, a.Route())
}
