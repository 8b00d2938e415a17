package views

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/userconsole/internal/client/forms"
	"github.com/dmitrijs2005/userconsole/internal/client/models"
	"github.com/dmitrijs2005/userconsole/internal/logging"
)

// Authenticator is the authority's account surface.
type Authenticator interface {
	Login(ctx context.Context, username, password string) error
	Signup(ctx context.Context, req models.Signup) (string, error)
	Logout(ctx context.Context) error
}

// Mode is which of the two login-page forms is showing.
type Mode int

const (
	ModeLogin Mode = iota
	ModeSignup
)

func (m Mode) String() string {
	if m == ModeSignup {
		return "signup"
	}
	return "login"
}

// LoginView holds the login and signup forms.
type LoginView struct {
	auth  Authenticator
	nav   Navigator
	delay time.Duration
	log   logging.Logger

	mu     sync.Mutex
	mode   Mode
	login  forms.LoginForm
	signup forms.SignupForm

	busy     inflight
	switchup *deferred
}

func NewLoginView(auth Authenticator, nav Navigator, sched Scheduler, delay time.Duration, log logging.Logger) *LoginView {
	return &LoginView{
		auth:     auth,
		nav:      nav,
		delay:    delay,
		log:      log,
		switchup: newDeferred(sched),
	}
}

// Mount shows the login form.
func (v *LoginView) Mount() {
	v.SetMode(ModeLogin)
	v.switchup.start()
}

func (v *LoginView) Mode() Mode {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.mode
}

func (v *LoginView) SetMode(m Mode) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.mode = m
}

func (v *LoginView) SetLoginField(field models.Field, value string) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.login.Set(field, value)
}

func (v *LoginView) SetSignupField(field models.Field, value string) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.signup.Set(field, value)
}

func (v *LoginView) SignupForm() forms.SignupForm {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.signup
}

// Login submits the login form and navigates to the dashboard on success.
// Every rejection reads as bad credentials.
func (v *LoginView) Login(ctx context.Context) (models.Notice, error) {
	if err := v.busy.acquire(); err != nil {
		return models.Notice{}, err
	}
	defer v.busy.release()

	v.mu.Lock()
	f := v.login
	v.mu.Unlock()

	if err := f.Validate(); err != nil {
		return forms.Incomplete(err), err
	}

	if err := v.auth.Login(ctx, f.ID, f.Password); err != nil {
		v.log.Debug(ctx, "login rejected", logging.Err(err))
		return models.Failure(forms.MsgInvalidLogin), err
	}

	v.mu.Lock()
	v.login.Password = ""
	v.mu.Unlock()

	v.nav.Navigate(RouteDashboard)
	return models.Notice{}, nil
}

// Signup submits the signup form. On success the fields are cleared and the
// login form comes back after a delay.
func (v *LoginView) Signup(ctx context.Context) (models.Notice, error) {
	if err := v.busy.acquire(); err != nil {
		return models.Notice{}, err
	}
	defer v.busy.release()

	v.mu.Lock()
	f := v.signup
	v.mu.Unlock()

	if err := f.Validate(); err != nil {
		return forms.Incomplete(err), err
	}

	if _, err := v.auth.Signup(ctx, f.Request()); err != nil {
		v.log.Debug(ctx, "signup rejected", logging.Err(err))
		return forms.SignupRejected(err), err
	}

	v.mu.Lock()
	v.signup.Reset()
	v.mu.Unlock()

	v.switchup.after(v.delay, func() { v.SetMode(ModeLogin) })
	return models.Success(forms.MsgSignupSuccessful), nil
}

// Logout drops the session and returns to the login view. Local credentials
// are cleared even when the authority cannot be reached.
func (v *LoginView) Logout(ctx context.Context) error {
	err := v.auth.Logout(ctx)
	v.nav.Navigate(RouteLogin)
	return err
}

// Close cancels a pending switch back to the login form.
func (v *LoginView) Close() {
	v.switchup.stop()
}
