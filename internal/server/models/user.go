package models

import "time"

// DateLayout is the wire and storage format of a date of birth.
const DateLayout = "2006-01-02"

// User is a stored account. PasswordHash never leaves the server.
type User struct {
	ID           string
	Name         string
	Email        string
	DOB          *time.Time
	Phone        string
	PasswordHash []byte
	CreatedAt    time.Time
}

// DOBString formats DOB, or returns "" when it is unset.
func (u *User) DOBString() string {
	if u.DOB == nil {
		return ""
	}
	return u.DOB.Format(DateLayout)
}
