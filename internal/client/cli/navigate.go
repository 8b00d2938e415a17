package cli

import "github.com/dmitrijs2005/userconsole/internal/client/views"

// enter switches to route, tearing down the view being left so that its
// deferred redirects cannot fire into the new one and its cached rows,
// open edit and armed delete do not outlive it.
func (a *App) enter(route views.Route) {
	if a.Route() != route {
		a.leave()
	}
	a.Navigate(route)
}

func (a *App) leave() {
	switch a.Route() {
	case views.RouteAddUser:
		a.addUser.Close()
	case views.RouteLogin:
		a.login.Close()
	case views.RouteUsers:
		a.users.Close()
	}
}
