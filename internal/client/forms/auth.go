package forms

import (
	"fmt"

	"github.com/dmitrijs2005/userconsole/internal/client/models"
)

// LoginForm is the sign-in form. ID is the login identifier (the email).
type LoginForm struct {
	ID       string
	Password string
}

func (f *LoginForm) Set(field models.Field, value string) error {
	switch field {
	case models.FieldID, models.FieldEmail:
		f.ID = value
	case models.FieldPassword:
		f.Password = value
	default:
		return fmt.Errorf("%w: %s", ErrUnknownField, field)
	}
	return nil
}

func (f *LoginForm) Validate() error {
	fe := FieldErrors{}
	required(fe, models.FieldID, f.ID)
	required(fe, models.FieldPassword, f.Password)
	return fe.orNil()
}

// SignupForm is the sign-up form. ID doubles as the account email.
type SignupForm struct {
	Name     string
	ID       string
	Password string
}

func (f *SignupForm) Set(field models.Field, value string) error {
	switch field {
	case models.FieldName:
		f.Name = value
	case models.FieldID, models.FieldEmail:
		f.ID = value
	case models.FieldPassword:
		f.Password = value
	default:
		return fmt.Errorf("%w: %s", ErrUnknownField, field)
	}
	return nil
}

func (f *SignupForm) Validate() error {
	fe := FieldErrors{}
	required(fe, models.FieldName, f.Name)
	required(fe, models.FieldID, f.ID)
	required(fe, models.FieldPassword, f.Password)
	return fe.orNil()
}

// Request converts the form into the /signin body.
func (f *SignupForm) Request() models.Signup {
	return models.Signup{Email: f.ID, Password: f.Password, Name: f.Name}
}

func (f *SignupForm) Reset() {
	*f = SignupForm{}
}
