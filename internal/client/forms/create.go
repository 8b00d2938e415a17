package forms

import (
	"fmt"

	"github.com/dmitrijs2005/userconsole/internal/client/models"
)

// CreateOrder is the display order of the add-user form.
var CreateOrder = []models.Field{
	models.FieldName, models.FieldEmail, models.FieldPassword, models.FieldDOB, models.FieldPhone,
}

// CreateForm is the add-user form: the draft being typed plus its UI state.
type CreateForm struct {
	Draft models.NewUser

	// EmailError is set when the authority reported the email as taken.
	EmailError bool
	// Focus is the input that should hold the cursor; empty means unchanged.
	Focus models.Field
}

// Set updates one input. Editing the email clears its error state.
func (f *CreateForm) Set(field models.Field, value string) error {
	switch field {
	case models.FieldName:
		f.Draft.Name = value
	case models.FieldEmail:
		f.Draft.Email = value
		f.EmailError = false
	case models.FieldPassword:
		f.Draft.Password = value
	case models.FieldDOB:
		f.Draft.DOB = value
	case models.FieldPhone:
		f.Draft.Phone = value
	default:
		return fmt.Errorf("%w: %s", ErrUnknownField, field)
	}
	return nil
}

// Reset empties every input and clears error state.
func (f *CreateForm) Reset() {
	*f = CreateForm{}
}

// Validate checks that name, email and password are present. Date of birth
// and phone are optional and their format is left to the authority.
func (f *CreateForm) Validate() error {
	fe := FieldErrors{}
	required(fe, models.FieldName, f.Draft.Name)
	required(fe, models.FieldEmail, f.Draft.Email)
	emailShape(fe, models.FieldEmail, f.Draft.Email)
	required(fe, models.FieldPassword, f.Draft.Password)
	return fe.orNil()
}
