// Package common defines sentinel errors shared by the user authority's
// repositories, services and HTTP handlers. Callers match them with errors.Is.
package common

import (
	"errors"
	"fmt"
)

var (
	// Repository-level errors.
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")

	// Service-level errors.
	ErrInternal     = errors.New("internal error")
	ErrUnauthorized = errors.New("unauthorized")
	ErrValidation   = errors.New("validation error")

	// Field-specific validation errors; each wraps ErrValidation.
	ErrInvalidDOB   = fmt.Errorf("%w: invalid date of birth", ErrValidation)
	ErrInvalidEmail = fmt.Errorf("%w: invalid email", ErrValidation)

	// Session errors.
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)
