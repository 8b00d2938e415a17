package httpapi

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/dmitrijs2005/userconsole/internal/common"
	"github.com/dmitrijs2005/userconsole/internal/server/models"
)

const (
	msgUserCreated    = "User created successfully!"
	msgEmailExists    = "Email already exists!"
	msgInvalidDOB     = "Invalid Date of Birth!"
	msgInvalidEmail   = "Invalid email address"
	msgInvalidBody    = "Invalid request body"
	msgNotFound       = "User not found"
	msgUnauthorized   = "Unauthorized"
	msgBadCredentials = "Invalid username or password"
	msgInternal       = "Internal server error"
	msgSignedUp       = "Signup successful! Please login."
	msgLoggedIn       = "Login successful"
	msgLoggedOut      = "Logged out"
)

type messageResponse struct {
	Message string `json:"message"`
}

// userResponse is the wire form of a directory row.
type userResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	DOB   string `json:"dob,omitempty"`
	Phone string `json:"phone,omitempty"`
}

type sessionResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func toUsers(list []models.User) []userResponse {
	out := make([]userResponse, 0, len(list))
	for i := range list {
		u := &list[i]
		out = append(out, userResponse{ID: u.ID, Name: u.Name, Email: u.Email, DOB: u.DOBString(), Phone: u.Phone})
	}
	return out
}

func writeMessage(w http.ResponseWriter, r *http.Request, status int, msg string) {
	render.Status(r, status)
	render.JSON(w, r, messageResponse{Message: msg})
}

// statusOf maps service errors to an HTTP status and a user-facing message.
func statusOf(err error) (int, string) {
	switch {
	case errors.Is(err, common.ErrAlreadyExists):
		return http.StatusConflict, msgEmailExists
	case errors.Is(err, common.ErrInvalidDOB):
		return http.StatusBadRequest, msgInvalidDOB
	case errors.Is(err, common.ErrInvalidEmail):
		return http.StatusBadRequest, msgInvalidEmail
	case errors.Is(err, common.ErrValidation):
		return http.StatusBadRequest, validationText(err)
	case errors.Is(err, common.ErrNotFound):
		return http.StatusNotFound, msgNotFound
	case errors.Is(err, common.ErrUnauthorized):
		return http.StatusUnauthorized, msgUnauthorized
	default:
		return http.StatusInternalServerError, msgInternal
	}
}

func validationText(err error) string {
	msg := err.Error()
	if i := strings.Index(msg, common.ErrValidation.Error()+": "); i >= 0 {
		return msg[i+len(common.ErrValidation.Error())+2:]
	}
	return msg
}

// validationMessage renders validator failures as one sentence.
func validationMessage(err error) string {
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return msgInvalidBody
	}

	msgs := make([]string, 0, len(errs))
	for _, fe := range errs {
		field := strings.ToLower(fe.Field())
		switch fe.ActualTag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("%s is required", field))
		case "email":
			msgs = append(msgs, fmt.Sprintf("%s must be an email address", field))
		default:
			msgs = append(msgs, fmt.Sprintf("%s is not valid", field))
		}
	}
	return strings.Join(msgs, ", ")
}
