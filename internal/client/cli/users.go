package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/userconsole/internal/client/models"
	"github.com/dmitrijs2005/userconsole/internal/client/mutation"
	"github.com/dmitrijs2005/userconsole/internal/client/views"
	"github.com/dmitrijs2005/userconsole/internal/logging"
)

// Users loads and prints the directory through the current search.
func (a *App) Users(ctx context.Context) error {
	a.enter(views.RouteUsers)

	ok, err := a.users.Mount(ctx)
	if !ok {
		a.loggedOut()
		return nil
	}
	a.setName(views.DisplayName(a.users.Session()))
	if err != nil {
		a.log.Debug(ctx, "users: showing empty directory", logging.Err(err))
	}
	a.renderUsers(a.users.Filtered())
	return err
}

// Search sets the filter and reprints. An empty query shows everyone.
func (a *App) Search(ctx context.Context, query string) error {
	if a.Route() != views.RouteUsers {
		if err := a.Users(ctx); err != nil || a.Route() != views.RouteUsers {
			return err
		}
	}
	a.users.Search(query)
	a.renderUsers(a.users.Filtered())
	return nil
}

// errNotOnList is returned by list commands issued outside the user list.
var errNotOnList = errors.New("user list is not open")

// onList refuses list commands unless the user list is the current view.
func (a *App) onList() error {
	switch a.Route() {
	case views.RouteUsers:
		return nil
	case views.RouteLogin:
		a.printf("Please log in.\n")
	default:
		a.printf("Open the list first with 'users'.\n")
	}
	return errNotOnList
}

// Edit opens the edit form for id.
func (a *App) Edit(_ context.Context, id string) error {
	if err := a.onList(); err != nil {
		return err
	}
	if err := a.users.OpenEdit(id); err != nil {
		a.notify(models.Notice{}, err)
		return err
	}
	u, _ := a.users.Editing()
	a.renderUser(u)
	a.printf("Use 'set <field> <value>' then 'save', or 'cancel'.\n")
	return nil
}

// Set changes one field of the open edit.
func (a *App) Set(_ context.Context, field, value string) error {
	if err := a.onList(); err != nil {
		return err
	}
	f, ok := models.ParseField(field)
	if !ok {
		err := fmt.Errorf("unknown field %q", field)
		a.notify(models.Notice{}, err)
		return err
	}
	if err := a.users.EditField(f, value); err != nil {
		a.notify(models.Notice{}, err)
		return err
	}
	return nil
}

// Save sends the open edit.
func (a *App) Save(ctx context.Context) error {
	if err := a.onList(); err != nil {
		return err
	}
	n, err := a.users.SaveEdit(ctx)
	a.notify(n, err)
	if err != nil {
		return err
	}
	a.renderUsers(a.users.Filtered())
	return nil
}

// Cancel closes the edit form, the delete confirmation, or both.
func (a *App) Cancel(_ context.Context, what string) error {
	if err := a.onList(); err != nil {
		return err
	}
	switch what {
	case "edit":
		a.users.CancelEdit()
	case "delete":
		a.users.CancelDelete()
	case "":
		a.users.CancelEdit()
		a.users.CancelDelete()
	default:
		err := fmt.Errorf("nothing called %q to cancel", what)
		a.notify(models.Notice{}, err)
		return err
	}
	return nil
}

// Delete asks for confirmation before deleting id.
func (a *App) Delete(_ context.Context, id string) error {
	if err := a.onList(); err != nil {
		return err
	}
	if err := a.users.ArmDelete(id); err != nil {
		a.notify(models.Notice{}, err)
		return err
	}
	a.printf("Delete user %s? Type 'confirm' to delete or 'cancel' to keep.\n", id)
	return nil
}

// Confirm deletes the user awaiting confirmation.
func (a *App) Confirm(ctx context.Context) error {
	if err := a.onList(); err != nil {
		return err
	}
	n, err := a.users.ConfirmDelete(ctx)
	if errors.Is(err, mutation.ErrNotArmed) {
		a.printf("Nothing to confirm.\n")
		return err
	}
	a.notify(n, err)
	if err != nil {
		return err
	}
	a.renderUsers(a.users.Filtered())
	return nil
}
