package mutation

import (
	"errors"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/userconsole/internal/client/models"
)

var (
	// ErrNoPendingEdit is returned when saving without an open edit.
	ErrNoPendingEdit = errors.New("no edit in progress")
	// ErrFieldNotEditable is returned for fields the update body does not carry.
	ErrFieldNotEditable = errors.New("field is not editable")
)

// EditSlot holds at most one in-flight edit target: a copy of the user being
// edited with the changes typed so far.
type EditSlot struct {
	mu     sync.Mutex
	target *models.User
}

// Open starts editing a copy of u, discarding any other open edit.
func (s *EditSlot) Open(u models.User) {
	s.mu.Lock()
	s.target = &u
	s.mu.Unlock()
}

// Target returns a copy of the edit in progress.
func (s *EditSlot) Target() (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.target == nil {
		return models.User{}, false
	}
	return *s.target, true
}

// Set changes one field of the edit in progress.
func (s *EditSlot) Set(field models.Field, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.target == nil {
		return ErrNoPendingEdit
	}
	switch field {
	case models.FieldName:
		s.target.Name = value
	case models.FieldEmail:
		s.target.Email = value
	case models.FieldDOB:
		s.target.DOB = value
	case models.FieldPhone:
		s.target.Phone = value
	default:
		return fmt.Errorf("%w: %s", ErrFieldNotEditable, field)
	}
	return nil
}

// Cancel discards the edit in progress.
func (s *EditSlot) Cancel() {
	s.mu.Lock()
	s.target = nil
	s.mu.Unlock()
}
