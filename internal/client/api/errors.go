package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Kind classifies a failed remote call.
type Kind int

const (
	KindNetwork Kind = iota + 1
	KindConflict
	KindInvalidInput
	KindUnauthorized
	KindServer
)

var (
	ErrNetwork      = errors.New("network failure")
	ErrConflict     = errors.New("conflict")
	ErrInvalidInput = errors.New("invalid input")
	ErrUnauthorized = errors.New("unauthorized")
	ErrServer       = errors.New("server error")
)

func (k Kind) String() string {
	if s := k.sentinel(); s != nil {
		return s.Error()
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

func (k Kind) sentinel() error {
	switch k {
	case KindNetwork:
		return ErrNetwork
	case KindConflict:
		return ErrConflict
	case KindInvalidInput:
		return ErrInvalidInput
	case KindUnauthorized:
		return ErrUnauthorized
	case KindServer:
		return ErrServer
	default:
		return nil
	}
}

// KindFromStatus maps a non-2xx status onto the error taxonomy.
func KindFromStatus(status int) Kind {
	switch status {
	case http.StatusConflict:
		return KindConflict
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return KindInvalidInput
	case http.StatusUnauthorized, http.StatusForbidden:
		return KindUnauthorized
	default:
		return KindServer
	}
}

// Error is a decoded remote failure.
type Error struct {
	Kind    Kind
	Op      string
	Status  int
	Message string
	Err     error
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Op)
	b.WriteString(": ")
	b.WriteString(e.Kind.String())
	if e.Status != 0 {
		fmt.Fprintf(&b, " (status %d)", e.Status)
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

// Unwrap exposes both the kind sentinel and the underlying cause.
func (e *Error) Unwrap() []error {
	errs := make([]error, 0, 2)
	if s := e.Kind.sentinel(); s != nil {
		errs = append(errs, s)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

// KindOf returns the Kind of err, or 0 when err is not an *Error.
func KindOf(err error) Kind {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Kind
	}
	return 0
}

// MessageOf returns the server-supplied message carried by err, if any.
func MessageOf(err error) string {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return ""
}

// errorBody is the authority's error envelope. Some handlers use "error"
// instead of "message"; both are accepted.
type errorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

func statusError(op string, status int, body []byte) *Error {
	e := &Error{Kind: KindFromStatus(status), Op: op, Status: status}

	var eb errorBody
	if err := json.Unmarshal(body, &eb); err == nil {
		e.Message = eb.Message
		if e.Message == "" {
			e.Message = eb.Error
		}
	}
	return e
}

func networkError(op string, err error) *Error {
	return &Error{Kind: KindNetwork, Op: op, Err: err}
}

func decodeError(op string, status int, err error) *Error {
	return &Error{Kind: KindServer, Op: op, Status: status, Err: fmt.Errorf("malformed response: %w", err)}
}
