package forms

import (
	"errors"

	"github.com/dmitrijs2005/userconsole/internal/client/api"
	"github.com/dmitrijs2005/userconsole/internal/client/models"
)

// Default notice texts, used when the authority sends no message of its own.
const (
	MsgUserCreated      = "User created successfully!"
	MsgEmailExists      = "Email already exists!"
	MsgInvalidDOB       = "Invalid Date of Birth!"
	MsgSomethingWrong   = "Something went wrong!"
	MsgUserUpdated      = "User updated successfully!"
	MsgUpdateFailed     = "Failed to update user!"
	MsgUserDeleted      = "User deleted successfully!"
	MsgDeleteFailed     = "Failed to delete user!"
	MsgInvalidLogin     = "Invalid username or password"
	MsgSignupSuccessful = "Signup successful! Please login."
	MsgSignupFailed     = "Signup failed"
	MsgNoUsers          = "No users found"
)

// FormState is what a rejected create does to its form: an optional field
// in error, an optional focus target, and the notice to show.
type FormState struct {
	FieldError models.Field
	Focus      models.Field
	Notice     models.Notice
}

// Translate maps a create failure onto form state.
//
//   - Conflict: email enters its error state and takes focus.
//   - InvalidInput: notice only, no field is highlighted.
//   - anything else: a generic notice.
//
// The authority's message wins over the defaults when present.
func Translate(err error) FormState {
	switch {
	case errors.Is(err, api.ErrConflict):
		return FormState{
			FieldError: models.FieldEmail,
			Focus:      models.FieldEmail,
			Notice:     models.Failure(messageOr(err, MsgEmailExists)),
		}
	case errors.Is(err, api.ErrInvalidInput):
		return FormState{Notice: models.Failure(messageOr(err, MsgInvalidDOB))}
	default:
		return FormState{Notice: models.Failure(messageOr(err, MsgSomethingWrong))}
	}
}

// Apply records s on f. The draft itself is left untouched.
func (f *CreateForm) Apply(s FormState) {
	if s.FieldError == models.FieldEmail {
		f.EmailError = true
	}
	if s.Focus != "" {
		f.Focus = s.Focus
	}
}

// Accepted resets f after a successful create and returns the notice.
func (f *CreateForm) Accepted(serverMsg string) models.Notice {
	f.Reset()
	if serverMsg == "" {
		serverMsg = MsgUserCreated
	}
	return models.Success(serverMsg)
}

// SignupRejected returns the notice for a failed signup.
func SignupRejected(err error) models.Notice {
	return models.Failure(messageOr(err, MsgSignupFailed))
}

// Incomplete returns the notice for a form that failed its client-side check.
func Incomplete(err error) models.Notice {
	var fe FieldErrors
	if errors.As(err, &fe) {
		return models.Failure("Please check: " + fe.Error())
	}
	return models.Failure(err.Error())
}

func messageOr(err error, fallback string) string {
	if msg := api.MessageOf(err); msg != "" {
		return msg
	}
	return fallback
}
