package views

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/userconsole/internal/client/directory"
	"github.com/dmitrijs2005/userconsole/internal/client/forms"
	"github.com/dmitrijs2005/userconsole/internal/client/models"
	"github.com/dmitrijs2005/userconsole/internal/client/mutation"
	"github.com/dmitrijs2005/userconsole/internal/logging"
)

// ErrUnknownUser is returned when an action names an id that is not in the
// loaded directory.
var ErrUnknownUser = errors.New("user not in directory")

// UserListView lists, searches, edits and deletes users. The edit and the
// delete confirmation are independent: either, both or neither may be open.
type UserListView struct {
	prober Prober
	nav    Navigator
	store  *directory.Store
	coord  *mutation.Coordinator
	log    logging.Logger

	mu      sync.Mutex
	session models.Session
	query   string

	edit     mutation.EditSlot
	gate     mutation.Gate
	saving   inflight
	deleting inflight
}

func NewUserListView(p Prober, nav Navigator, store *directory.Store, coord *mutation.Coordinator, log logging.Logger) *UserListView {
	return &UserListView{prober: p, nav: nav, store: store, coord: coord, log: log}
}

// Mount probes the session and loads the directory. It returns false when the
// caller was sent to the login view. A load failure leaves an empty directory
// and is returned wrapped in directory.ErrLoadFailed.
func (v *UserListView) Mount(ctx context.Context) (bool, error) {
	s, ok := Guard(ctx, v.prober, v.nav)
	if !ok {
		return false, nil
	}

	v.mu.Lock()
	v.session = s
	v.mu.Unlock()

	if err := v.store.Load(ctx); err != nil {
		v.log.Warn(ctx, "user list: load failed", logging.Err(err))
		return true, err
	}
	return true, nil
}

// Session is the identity seen by the last successful mount.
func (v *UserListView) Session() models.Session {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.session
}

// Search sets the filter query.
func (v *UserListView) Search(query string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.query = query
}

func (v *UserListView) Query() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.query
}

// Filtered is the directory as the query currently projects it.
func (v *UserListView) Filtered() []models.User {
	return directory.Filter(v.Query(), v.store.Current())
}

// OpenEdit starts editing the user with id, replacing any open edit.
func (v *UserListView) OpenEdit(id string) error {
	u, ok := v.find(id)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownUser, id)
	}
	v.edit.Open(u)
	return nil
}

// Editing returns the edit in progress.
func (v *UserListView) Editing() (models.User, bool) {
	return v.edit.Target()
}

func (v *UserListView) EditField(field models.Field, value string) error {
	return v.edit.Set(field, value)
}

func (v *UserListView) CancelEdit() {
	v.edit.Cancel()
}

// SaveEdit sends the open edit. On success the directory is replaced with the
// authority's list and the edit closes; on failure the edit stays open.
func (v *UserListView) SaveEdit(ctx context.Context) (models.Notice, error) {
	if err := v.saving.acquire(); err != nil {
		return models.Notice{}, err
	}
	defer v.saving.release()

	err := v.coord.Update(ctx, &v.edit, v.store)
	switch {
	case errors.Is(err, mutation.ErrNoPendingEdit):
		return models.Notice{}, err
	case err != nil:
		return models.Failure(forms.MsgUpdateFailed), err
	}
	return models.Success(forms.MsgUserUpdated), nil
}

// ArmDelete asks for confirmation before deleting id. Arming again replaces
// the previous target. Ids missing from the loaded directory are refused
// and leave any earlier target armed.
func (v *UserListView) ArmDelete(id string) error {
	if _, ok := v.find(id); !ok {
		return fmt.Errorf("%w: %s", ErrUnknownUser, id)
	}
	v.gate.Arm(id)
	return nil
}

// PendingDelete returns the id awaiting confirmation.
func (v *UserListView) PendingDelete() (string, bool) {
	return v.gate.Armed()
}

func (v *UserListView) CancelDelete() {
	v.gate.Cancel()
}

// ConfirmDelete deletes the armed user. The confirmation is dismissed
// whatever the outcome.
func (v *UserListView) ConfirmDelete(ctx context.Context) (models.Notice, error) {
	if err := v.deleting.acquire(); err != nil {
		return models.Notice{}, err
	}
	defer v.deleting.release()

	err := v.coord.Delete(ctx, &v.gate, v.store)
	switch {
	case errors.Is(err, mutation.ErrNotArmed):
		return models.Notice{}, err
	case err != nil:
		return models.Failure(forms.MsgDeleteFailed), err
	}
	return models.Success(forms.MsgUserDeleted), nil
}

// Close drops the view's snapshot of the directory along with the open edit
// and the armed delete. A later Mount starts from scratch.
func (v *UserListView) Close() {
	v.store.Replace(nil)
	v.CancelEdit()
	v.CancelDelete()

	v.mu.Lock()
	v.session = models.Session{}
	v.query = ""
	v.mu.Unlock()
}

func (v *UserListView) find(id string) (models.User, bool) {
	for _, u := range v.store.Current() {
		if u.ID == id {
			return u, true
		}
	}
	return models.User{}, false
}
