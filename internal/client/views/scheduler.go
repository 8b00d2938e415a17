package views

import (
	"sync"
	"sync/atomic"
	"time"
)

// Timer is a pending one-shot task.
type Timer interface {
	Stop() bool
}

// Scheduler runs f once after d.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

// RealScheduler schedules on the runtime timer.
type RealScheduler struct{}

func (RealScheduler) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// deferred owns at most one scheduled task for a view. Once stopped, a task
// that was already firing finds the view dead and does nothing.
type deferred struct {
	sched Scheduler

	mu    sync.Mutex
	timer Timer
	alive atomic.Bool
}

func newDeferred(s Scheduler) *deferred {
	if s == nil {
		s = RealScheduler{}
	}
	return &deferred{sched: s}
}

func (d *deferred) start() {
	d.alive.Store(true)
}

// after replaces any pending task with fn.
func (d *deferred) after(delay time.Duration, fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = d.sched.AfterFunc(delay, func() {
		if d.alive.Load() {
			fn()
		}
	})
}

func (d *deferred) stop() {
	d.alive.Store(false)

	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
