package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/dmitrijs2005/userconsole/internal/client/api"
	"github.com/dmitrijs2005/userconsole/internal/client/config"
	"github.com/dmitrijs2005/userconsole/internal/client/directory"
	"github.com/dmitrijs2005/userconsole/internal/client/mutation"
	"github.com/dmitrijs2005/userconsole/internal/client/session"
	"github.com/dmitrijs2005/userconsole/internal/client/views"
	"github.com/dmitrijs2005/userconsole/internal/logging"
)

// App owns the views and the terminal. It is also the views' Navigator.
type App struct {
	reader *bufio.Reader
	out    io.Writer
	log    logging.Logger

	dashboard *views.DashboardView
	users     *views.UserListView
	addUser   *views.AddUserView
	login     *views.LoginView

	mu    sync.Mutex
	route views.Route
	name  string
}

// Options carries what an App needs besides the remote client.
type Options struct {
	In            io.Reader
	Out           io.Writer
	Log           logging.Logger
	Scheduler     views.Scheduler
	RedirectDelay time.Duration
}

// NewApp wires the views on top of remote.
func NewApp(remote api.Client, o Options) *App {
	a := &App{
		reader: bufio.NewReader(o.In),
		out:    o.Out,
		log:    o.Log,
		route:  views.RouteLogin,
	}

	prober := session.NewProber(remote, o.Log)
	store := directory.NewStore(remote, o.Log)
	coord := mutation.NewCoordinator(remote, o.Log)

	a.dashboard = views.NewDashboardView(prober, a)
	a.users = views.NewUserListView(prober, a, store, coord, o.Log)
	a.addUser = views.NewAddUserView(prober, a, coord, o.Scheduler, o.RedirectDelay, o.Log)
	a.login = views.NewLoginView(remote, a, o.Scheduler, o.RedirectDelay, o.Log)
	return a
}

// NewHTTPApp builds an App talking HTTP to cfg.ServerBaseURL.
func NewHTTPApp(cfg *config.Config, in io.Reader, out io.Writer, log logging.Logger) (*App, error) {
	creds, err := api.NewCredentials()
	if err != nil {
		return nil, err
	}
	remote, err := api.NewHTTPClient(cfg.ServerBaseURL, creds,
		api.WithTimeout(cfg.RequestTimeout),
		api.WithLogger(log),
	)
	if err != nil {
		return nil, err
	}

	return NewApp(remote, Options{
		In:            in,
		Out:           out,
		Log:           log,
		Scheduler:     views.RealScheduler{},
		RedirectDelay: cfg.RedirectDelay,
	}), nil
}

// Navigate implements views.Navigator. Deferred redirects call it from a
// timer goroutine.
func (a *App) Navigate(to views.Route) {
	a.mu.Lock()
	changed := a.route != to
	a.route = to
	a.mu.Unlock()

	if changed {
		a.log.Debug(context.Background(), "navigate", "route", string(to))
	}
}

func (a *App) Route() views.Route {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.route
}

func (a *App) setName(name string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.name = name
}

func (a *App) getStatus() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.name == "" {
		return string(a.route)
	}
	return fmt.Sprintf("%s@%s", a.name, a.route)
}

func (a *App) isLoggedIn() bool {
	return a.Route() != views.RouteLogin
}

// Run shows the login form and processes commands until exit or EOF.
func (a *App) Run(ctx context.Context) {
	defer a.close()

	a.printf("User console (type 'help' for commands)\n")
	a.login.Mount()
	runREPL(ctx, a, a.getStatus, a.reader)
}

func (a *App) close() {
	a.addUser.Close()
	a.login.Close()
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}
