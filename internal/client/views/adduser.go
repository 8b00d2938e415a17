package views

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/userconsole/internal/client/forms"
	"github.com/dmitrijs2005/userconsole/internal/client/models"
	"github.com/dmitrijs2005/userconsole/internal/client/mutation"
	"github.com/dmitrijs2005/userconsole/internal/logging"
)

// AddUserView is the create-user form. A successful submit clears the form
// and returns to the dashboard after a delay; it never touches a directory.
type AddUserView struct {
	prober Prober
	nav    Navigator
	coord  *mutation.Coordinator
	delay  time.Duration
	log    logging.Logger

	mu      sync.Mutex
	form    forms.CreateForm
	session models.Session

	busy     inflight
	redirect *deferred
}

func NewAddUserView(p Prober, nav Navigator, coord *mutation.Coordinator, sched Scheduler, delay time.Duration, log logging.Logger) *AddUserView {
	return &AddUserView{
		prober:   p,
		nav:      nav,
		coord:    coord,
		delay:    delay,
		log:      log,
		redirect: newDeferred(sched),
	}
}

// Mount probes the session; false means the caller was sent to login.
func (v *AddUserView) Mount(ctx context.Context) bool {
	s, ok := Guard(ctx, v.prober, v.nav)
	if !ok {
		return false
	}

	v.mu.Lock()
	v.session = s
	v.mu.Unlock()

	v.redirect.start()
	return true
}

func (v *AddUserView) Session() models.Session {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.session
}

func (v *AddUserView) SetField(field models.Field, value string) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.form.Set(field, value)
}

// Form returns a snapshot of the form.
func (v *AddUserView) Form() forms.CreateForm {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.form
}

func (v *AddUserView) Busy() bool {
	return v.busy.Busy()
}

// Submit sends the draft. Rejections keep the draft and may flag the email
// input; success resets the form and schedules the dashboard.
func (v *AddUserView) Submit(ctx context.Context) (models.Notice, error) {
	if err := v.busy.acquire(); err != nil {
		return models.Notice{}, err
	}
	defer v.busy.release()

	draft := v.Form()
	if err := draft.Validate(); err != nil {
		return forms.Incomplete(err), err
	}

	msg, err := v.coord.Create(ctx, draft.Draft)

	v.mu.Lock()
	defer v.mu.Unlock()

	if err != nil {
		st := forms.Translate(err)
		v.form.Apply(st)
		return st.Notice, err
	}

	n := v.form.Accepted(msg)
	v.redirect.after(v.delay, func() { v.nav.Navigate(RouteDashboard) })
	return n, nil
}

// Close tears the view down. A pending redirect is cancelled.
func (v *AddUserView) Close() {
	v.redirect.stop()
}
