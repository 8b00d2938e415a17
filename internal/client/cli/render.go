package cli

import (
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/dmitrijs2005/userconsole/internal/client/forms"
	"github.com/dmitrijs2005/userconsole/internal/client/models"
	"github.com/dmitrijs2005/userconsole/internal/client/views"
)

// notify prints n, or err when the view produced no notice for it.
func (a *App) notify(n models.Notice, err error) {
	switch {
	case n.Text != "":
		a.printf("[%s] %s\n", n.Level, n.Text)
	case errors.Is(err, views.ErrBusy):
		a.printf("Please wait, a request is still running.\n")
	case err != nil:
		a.printf("[error] %s\n", err)
	}
}

func (a *App) renderUsers(users []models.User) {
	if len(users) == 0 {
		a.printf("%s\n", forms.MsgNoUsers)
		return
	}

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tEMAIL\tDOB\tPHONE")
	for _, u := range users {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", u.ID, u.Name, u.Email, dash(u.DOB), dash(u.Phone))
	}
	_ = tw.Flush()
}

func (a *App) renderUser(u models.User) {
	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "id\t%s\n", u.ID)
	fmt.Fprintf(tw, "name\t%s\n", u.Name)
	fmt.Fprintf(tw, "email\t%s\n", u.Email)
	fmt.Fprintf(tw, "dob\t%s\n", dash(u.DOB))
	fmt.Fprintf(tw, "phone\t%s\n", dash(u.Phone))
	_ = tw.Flush()
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
