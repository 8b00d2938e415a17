// Package models holds the client-side view of the user authority's records.
package models

import "strings"

// User is one Directory row as returned by the authority. DOB and Phone are
// optional; an empty string means "not set". The password hash never leaves
// the server.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	DOB   string `json:"dob,omitempty"`
	Phone string `json:"phone,omitempty"`
}

// Patch returns the editable fields of u as an update request body.
func (u User) Patch() UserPatch {
	return UserPatch{Name: u.Name, Email: u.Email, DOB: u.DOB, Phone: u.Phone}
}

// NewUser is the creation draft posted to /add-user.
type NewUser struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	DOB      string `json:"dob"`
	Phone    string `json:"phone"`
}

// IsEmpty reports whether every field of the draft is blank.
func (n NewUser) IsEmpty() bool {
	return n == NewUser{}
}

// UserPatch is the body of PUT /user/{id}.
type UserPatch struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	DOB   string `json:"dob"`
	Phone string `json:"phone"`
}

// Session is the identity reported by the session probe.
type Session struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Valid reports whether the probe body carried an identity at all.
func (s Session) Valid() bool {
	return strings.TrimSpace(s.Name) != "" || strings.TrimSpace(s.Email) != ""
}

// Signup is the body of POST /signin.
type Signup struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}
