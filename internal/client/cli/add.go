package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/userconsole/internal/client/forms"
	"github.com/dmitrijs2005/userconsole/internal/client/models"
	"github.com/dmitrijs2005/userconsole/internal/client/views"
)

var fieldPrompts = map[models.Field]string{
	models.FieldName:  "Enter name",
	models.FieldEmail: "Enter email",
	models.FieldDOB:   "Enter date of birth (YYYY-MM-DD, optional)",
	models.FieldPhone: "Enter phone (optional)",
}

// Add runs the add-user form. A value left blank keeps what the form
// already holds, so a rejected draft can be corrected field by field. When
// the email is reported taken, only the email is asked again.
func (a *App) Add(ctx context.Context) error {
	a.enter(views.RouteAddUser)
	if !a.addUser.Mount(ctx) {
		a.loggedOut()
		return nil
	}
	a.setName(views.DisplayName(a.addUser.Session()))

	for _, field := range forms.CreateOrder {
		if err := a.askField(field); err != nil {
			return err
		}
	}

	for {
		n, err := a.addUser.Submit(ctx)
		a.notify(n, err)
		if err == nil || !a.addUser.Form().EmailError {
			return err
		}

		before := a.addUser.Form().Draft.Email
		if err := a.askField(models.FieldEmail); err != nil {
			return err
		}
		if a.addUser.Form().Draft.Email == before {
			return err
		}
	}
}

func (a *App) askField(field models.Field) error {
	current := fieldValue(a.addUser.Form().Draft, field)

	var (
		value string
		err   error
	)
	if field == models.FieldPassword {
		value, err = getPassword(a.out)
	} else {
		prompt := fieldPrompts[field]
		if current != "" {
			prompt = fmt.Sprintf("%s [%s]", prompt, current)
		}
		value, err = getSimpleText(a.reader, prompt, a.out)
	}
	if err != nil {
		return err
	}
	if value == "" {
		return nil
	}
	return a.addUser.SetField(field, value)
}

func fieldValue(d models.NewUser, field models.Field) string {
	switch field {
	case models.FieldName:
		return d.Name
	case models.FieldEmail:
		return d.Email
	case models.FieldPassword:
		return d.Password
	case models.FieldDOB:
		return d.DOB
	case models.FieldPhone:
		return d.Phone
	}
	return ""
}
