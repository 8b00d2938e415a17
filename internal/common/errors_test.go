package common

import (
	"errors"
	"fmt"
	"testing"
)

func TestFieldErrorsWrapValidation(t *testing.T) {
	for _, err := range []error{ErrInvalidDOB, ErrInvalidEmail} {
		if !errors.Is(err, ErrValidation) {
			t.Fatalf("%v must match ErrValidation", err)
		}
		wrapped := fmt.Errorf("add user: %w", err)
		if !errors.Is(wrapped, err) || !errors.Is(wrapped, ErrValidation) {
			t.Fatalf("wrapping must keep both matches for %v", err)
		}
	}
	if errors.Is(ErrInvalidDOB, ErrInvalidEmail) {
		t.Fatal("distinct field errors must not match each other")
	}
}
