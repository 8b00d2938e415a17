package mutation

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGate_IdleByDefault(t *testing.T) {
	var g Gate
	_, armed := g.Armed()
	assert.False(t, armed)
}

func TestGate_ConfirmWhileIdleNeverCallsFn(t *testing.T) {
	var g Gate
	called := false
	err := g.Confirm(context.Background(), func(context.Context, string) error {
		called = true
		return nil
	})
	require.ErrorIs(t, err, ErrNotArmed)
	assert.False(t, called)
}

func TestGate_CancelReturnsToIdleWithoutDeleting(t *testing.T) {
	var g Gate
	g.Arm("7")
	g.Cancel()

	_, armed := g.Armed()
	assert.False(t, armed)

	err := g.Confirm(context.Background(), func(context.Context, string) error {
		t.Fatal("delete must not run after cancel")
		return nil
	})
	require.ErrorIs(t, err, ErrNotArmed)
}

func TestGate_LastArmWins(t *testing.T) {
	var g Gate
	g.Arm("7")
	g.Arm("9")

	id, armed := g.Armed()
	require.True(t, armed)
	assert.Equal(t, "9", id)

	var confirmed []string
	require.NoError(t, g.Confirm(context.Background(), func(_ context.Context, id string) error {
		confirmed = append(confirmed, id)
		return nil
	}))
	assert.Equal(t, []string{"9"}, confirmed)
}

func TestGate_ClearsRegardlessOfOutcome(t *testing.T) {
	var g Gate
	g.Arm("7")

	boom := errors.New("boom")
	err := g.Confirm(context.Background(), func(context.Context, string) error { return boom })
	require.ErrorIs(t, err, boom)

	_, armed := g.Armed()
	assert.False(t, armed, "a failed delete abandons the intent")
}

func TestGate_ArmedDuringConfirmSurvives(t *testing.T) {
	var g Gate
	g.Arm("7")

	require.NoError(t, g.Confirm(context.Background(), func(context.Context, string) error {
		g.Arm("9")
		return nil
	}))

	id, armed := g.Armed()
	assert.True(t, armed)
	assert.Equal(t, "9", id)
}
