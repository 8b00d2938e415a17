package models

// Field names a user-editable input.
type Field string

const (
	FieldID       Field = "id"
	FieldName     Field = "name"
	FieldEmail    Field = "email"
	FieldPassword Field = "password"
	FieldDOB      Field = "dob"
	FieldPhone    Field = "phone"
)

// ParseField maps an input name onto a Field.
func ParseField(s string) (Field, bool) {
	switch f := Field(s); f {
	case FieldID, FieldName, FieldEmail, FieldPassword, FieldDOB, FieldPhone:
		return f, true
	default:
		return "", false
	}
}
