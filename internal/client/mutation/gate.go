package mutation

import (
	"context"
	"errors"
	"sync"
)

// ErrNotArmed is returned by Confirm when no delete target is armed.
var ErrNotArmed = errors.New("no delete armed")

// Gate is the two-step delete confirmation: Idle -> Armed(id) -> Idle.
// Only one id is armed at a time; arming again replaces it. There is no expiry.
type Gate struct {
	mu    sync.Mutex
	id    string
	armed bool
}

// Arm marks id as the pending delete target, replacing any previous one.
func (g *Gate) Arm(id string) {
	g.mu.Lock()
	g.id, g.armed = id, true
	g.mu.Unlock()
}

// Cancel returns the gate to Idle without deleting anything.
func (g *Gate) Cancel() {
	g.mu.Lock()
	g.id, g.armed = "", false
	g.mu.Unlock()
}

// Armed reports the armed id.
func (g *Gate) Armed() (string, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.id, g.armed
}

// Confirm disarms the gate and runs fn with the id that was armed. fn is not
// called when the gate is Idle. The gate is Idle afterwards whatever fn returns.
func (g *Gate) Confirm(ctx context.Context, fn func(ctx context.Context, id string) error) error {
	g.mu.Lock()
	id, armed := g.id, g.armed
	g.id, g.armed = "", false
	g.mu.Unlock()

	if !armed {
		return ErrNotArmed
	}
	return fn(ctx, id)
}
