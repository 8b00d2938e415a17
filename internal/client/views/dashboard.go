package views

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/userconsole/internal/client/models"
)

// DashboardView is the landing page after login.
type DashboardView struct {
	prober Prober
	nav    Navigator
}

func NewDashboardView(p Prober, nav Navigator) *DashboardView {
	return &DashboardView{prober: p, nav: nav}
}

// Mount returns the greeting for the logged-in user, or false after
// sending the caller to the login view.
func (v *DashboardView) Mount(ctx context.Context) (string, bool) {
	s, ok := Guard(ctx, v.prober, v.nav)
	if !ok {
		return "", false
	}
	return Greeting(s), true
}

// Greeting is the dashboard headline for s.
func Greeting(s models.Session) string {
	return "Welcome back, " + DisplayName(s)
}

// DisplayName is the name shown in the navigation bar.
func DisplayName(s models.Session) string {
	if name := strings.TrimSpace(s.Name); name != "" {
		return name
	}
	return "User"
}
