// Package forms holds the console's input forms, their client-side checks,
// and the translation of authority rejections into form state.
//
// The checks here only catch obviously incomplete input before a request is
// sent. The authority's answer is what decides validity; every rejection it
// returns is translated by the functions in translate.go.
package forms

import (
	"errors"
	"sort"
	"strings"

	"github.com/dmitrijs2005/userconsole/internal/client/models"
)

// ErrUnknownField is returned when setting a field the form does not have.
var ErrUnknownField = errors.New("unknown field")

// FieldErrors maps a field to its problem. A nil or empty map means valid.
type FieldErrors map[models.Field]string

func (fe FieldErrors) Error() string {
	fields := make([]string, 0, len(fe))
	for f := range fe {
		fields = append(fields, string(f))
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, f+": "+fe[models.Field(f)])
	}
	return strings.Join(parts, "; ")
}

// First returns the first invalid field in the given display order.
func (fe FieldErrors) First(order []models.Field) (models.Field, bool) {
	for _, f := range order {
		if _, bad := fe[f]; bad {
			return f, true
		}
	}
	return "", false
}

func (fe FieldErrors) orNil() error {
	if len(fe) == 0 {
		return nil
	}
	return fe
}

func required(fe FieldErrors, field models.Field, value string) {
	if strings.TrimSpace(value) == "" {
		fe[field] = "is required"
	}
}

func emailShape(fe FieldErrors, field models.Field, value string) {
	if _, bad := fe[field]; bad {
		return
	}
	local, domain, ok := strings.Cut(strings.TrimSpace(value), "@")
	if !ok || local == "" || domain == "" {
		fe[field] = "must be an email address"
	}
}
