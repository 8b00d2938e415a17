package cli

import (
	"context"

	"github.com/dmitrijs2005/userconsole/internal/client/models"
	"github.com/dmitrijs2005/userconsole/internal/client/views"
	"github.com/dmitrijs2005/userconsole/internal/logging"
)

// Login prompts for credentials and, on success, shows the dashboard.
func (a *App) Login(ctx context.Context) error {
	a.enter(views.RouteLogin)
	a.login.Mount()

	id, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}

	if err := a.login.SetLoginField(models.FieldID, id); err != nil {
		return err
	}
	if err := a.login.SetLoginField(models.FieldPassword, password); err != nil {
		return err
	}

	n, err := a.login.Login(ctx)
	a.notify(n, err)
	if err != nil {
		return err
	}
	a.login.Close()
	return a.Dashboard(ctx)
}

// Signup prompts for a new account. The login form returns once the
// success notice has been shown for the redirect delay.
func (a *App) Signup(ctx context.Context) error {
	a.enter(views.RouteLogin)
	a.login.Mount()
	a.login.SetMode(views.ModeSignup)

	name, err := getSimpleText(a.reader, "Enter name", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}

	if err := a.login.SetSignupField(models.FieldName, name); err != nil {
		return err
	}
	if err := a.login.SetSignupField(models.FieldID, email); err != nil {
		return err
	}
	if err := a.login.SetSignupField(models.FieldPassword, password); err != nil {
		return err
	}

	n, err := a.login.Signup(ctx)
	a.notify(n, err)
	return err
}

// Logout ends the session.
func (a *App) Logout(ctx context.Context) error {
	a.leave()
	a.users.Close()
	err := a.login.Logout(ctx)
	a.setName("")
	if err != nil {
		a.log.Warn(ctx, "logout: authority not reached", logging.Err(err))
	}
	a.login.Mount()
	a.printf("Logged out.\n")
	return err
}

// Dashboard greets the logged-in user.
func (a *App) Dashboard(ctx context.Context) error {
	a.enter(views.RouteDashboard)

	greeting, ok := a.dashboard.Mount(ctx)
	if !ok {
		a.loggedOut()
		return nil
	}
	a.printf("%s\n", greeting)
	return nil
}

func (a *App) loggedOut() {
	a.users.Close()
	a.setName("")
	a.login.Mount()
	a.printf("Please log in.\n")
}
