package views

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/userconsole/internal/client/directory"
	"github.com/dmitrijs2005/userconsole/internal/client/models"
	"github.com/dmitrijs2005/userconsole/internal/client/mutation"
	"github.com/dmitrijs2005/userconsole/internal/client/session"
	"github.com/dmitrijs2005/userconsole/internal/logging"
)

// fakeClient is an in-memory api.Client. Only the fields a test sets matter.
type fakeClient struct {
	mu sync.Mutex

	session    models.Session
	sessionErr error

	users   []models.User
	listErr error

	createMsg string
	createErr error
	// createGate, when set, blocks CreateUser until it is closed.
	createGate chan struct{}

	updateUsers []models.User
	updateErr   error
	deleteUsers []models.User
	deleteErr   error

	loginErr  error
	signupMsg string
	signupErr error
	logoutErr error

	calls   []string
	deleted []string
	created []models.NewUser
	signups []models.Signup
	logins  []string
}

func (f *fakeClient) record(name string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, name)
}

func (f *fakeClient) count(name string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.calls {
		if c == name {
			n++
		}
	}
	return n
}

func (f *fakeClient) Session(context.Context) (models.Session, error) {
	f.record("session")
	return f.session, f.sessionErr
}

func (f *fakeClient) ListUsers(context.Context) ([]models.User, error) {
	f.record("list")
	return f.users, f.listErr
}

func (f *fakeClient) CreateUser(_ context.Context, draft models.NewUser) (string, error) {
	f.record("create")
	if f.createGate != nil {
		<-f.createGate
	}
	f.mu.Lock()
	f.created = append(f.created, draft)
	f.mu.Unlock()
	return f.createMsg, f.createErr
}

func (f *fakeClient) UpdateUser(context.Context, string, models.UserPatch) ([]models.User, error) {
	f.record("update")
	return f.updateUsers, f.updateErr
}

func (f *fakeClient) DeleteUser(_ context.Context, id string) ([]models.User, error) {
	f.record("delete")
	f.mu.Lock()
	f.deleted = append(f.deleted, id)
	f.mu.Unlock()
	return f.deleteUsers, f.deleteErr
}

func (f *fakeClient) Login(_ context.Context, username, _ string) error {
	f.record("login")
	f.logins = append(f.logins, username)
	return f.loginErr
}

func (f *fakeClient) Signup(_ context.Context, req models.Signup) (string, error) {
	f.record("signup")
	f.signups = append(f.signups, req)
	return f.signupMsg, f.signupErr
}

func (f *fakeClient) Logout(context.Context) error {
	f.record("logout")
	return f.logoutErr
}

// fakeNav records every navigation.
type fakeNav struct {
	mu     sync.Mutex
	routes []Route
}

func (n *fakeNav) Navigate(to Route) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.routes = append(n.routes, to)
}

func (n *fakeNav) visited() []Route {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]Route(nil), n.routes...)
}

// fakeScheduler holds tasks until the test fires them.
type fakeScheduler struct {
	mu    sync.Mutex
	tasks []*fakeTimer
}

type fakeTimer struct {
	delay   time.Duration
	fn      func()
	stopped bool
}

func (t *fakeTimer) Stop() bool {
	was := !t.stopped
	t.stopped = true
	return was
}

func (s *fakeScheduler) AfterFunc(d time.Duration, f func()) Timer {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := &fakeTimer{delay: d, fn: f}
	s.tasks = append(s.tasks, t)
	return t
}

func (s *fakeScheduler) pending() []*fakeTimer {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*fakeTimer
	for _, t := range s.tasks {
		if !t.stopped {
			out = append(out, t)
		}
	}
	return out
}

// fireAll runs every task, stopped or not, the way a timer that already
// started firing would.
func (s *fakeScheduler) fireAll() {
	s.mu.Lock()
	tasks := append([]*fakeTimer(nil), s.tasks...)
	s.mu.Unlock()
	for _, t := range tasks {
		t.fn()
	}
}

var loggedIn = models.Session{ID: "u-1", Name: "Admin", Email: "admin@x.com"}

func prober(c *fakeClient) *session.Prober {
	return session.NewProber(c, logging.Discard())
}

func newUserList(c *fakeClient, nav Navigator) (*UserListView, *directory.Store) {
	store := directory.NewStore(c, logging.Discard())
	coord := mutation.NewCoordinator(c, logging.Discard())
	return NewUserListView(prober(c), nav, store, coord, logging.Discard()), store
}

func newAddUser(c *fakeClient, nav Navigator, sched Scheduler) *AddUserView {
	coord := mutation.NewCoordinator(c, logging.Discard())
	return NewAddUserView(prober(c), nav, coord, sched, 1500*time.Millisecond, logging.Discard())
}
