package views

import (
	"context"
	"errors"
	"sync/atomic"

	"github.com/dmitrijs2005/userconsole/internal/client/models"
)

// ErrBusy is returned when a form is submitted while its previous submit is
// still waiting for the authority.
var ErrBusy = errors.New("request already in flight")

// Route names a view the caller can switch to.
type Route string

const (
	RouteLogin     Route = "login"
	RouteDashboard Route = "dashboard"
	RouteUsers     Route = "users"
	RouteAddUser   Route = "add-user"
)

// Navigator switches the active view. It may be called from a timer goroutine.
type Navigator interface {
	Navigate(to Route)
}

// NavigatorFunc adapts a function to Navigator.
type NavigatorFunc func(to Route)

func (f NavigatorFunc) Navigate(to Route) { f(to) }

// Prober reports the current session, see session.Prober.
type Prober interface {
	Probe(ctx context.Context) (models.Session, bool)
}

// Guard probes the session. When nobody is logged in it navigates to the
// login view and returns false; the caller must not render.
func Guard(ctx context.Context, p Prober, nav Navigator) (models.Session, bool) {
	s, ok := p.Probe(ctx)
	if !ok {
		nav.Navigate(RouteLogin)
		return models.Session{}, false
	}
	return s, true
}

// inflight is a per-form loading flag.
type inflight struct {
	busy atomic.Bool
}

func (g *inflight) acquire() error {
	if !g.busy.CompareAndSwap(false, true) {
		return ErrBusy
	}
	return nil
}

func (g *inflight) release() {
	g.busy.Store(false)
}

// Busy reports whether a submit is in progress.
func (g *inflight) Busy() bool {
	return g.busy.Load()
}
