package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUser_DecodesOptionalFields(t *testing.T) {
	var users []User
	err := json.Unmarshal([]byte(`[
		{"id":"1","name":"Bob Smith","email":"bob@x.com","dob":"1990-01-02","phone":"555"},
		{"id":"2","name":"Alice","email":"alice@x.com"}
	]`), &users)
	require.NoError(t, err)
	require.Len(t, users, 2)

	assert.Equal(t, "1990-01-02", users[0].DOB)
	assert.Empty(t, users[1].DOB)
	assert.Empty(t, users[1].Phone)
}

func TestUser_Patch(t *testing.T) {
	u := User{ID: "7", Name: "n", Email: "e", DOB: "d", Phone: "p"}
	assert.Equal(t, UserPatch{Name: "n", Email: "e", DOB: "d", Phone: "p"}, u.Patch())
}

func TestNewUser_IsEmpty(t *testing.T) {
	assert.True(t, NewUser{}.IsEmpty())
	assert.False(t, NewUser{Phone: "1"}.IsEmpty())
}

func TestSession_Valid(t *testing.T) {
	assert.False(t, Session{}.Valid())
	assert.False(t, Session{Name: "  "}.Valid())
	assert.True(t, Session{Name: "Admin"}.Valid())
	assert.True(t, Session{Email: "a@x.com"}.Valid())
}
