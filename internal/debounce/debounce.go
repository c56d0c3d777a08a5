// Package debounce provides the two timing primitives behind search
// input: a timer-based debouncer for callback-driven hosts, and a
// generation guard for event-loop hosts that deliver their own tick
// messages.
package debounce

import (
	"sync"
	"time"
)

// Debouncer delays a callback until the input has been quiet for the
// configured interval. Each Call cancels the previously scheduled
// firing, so only the last-scheduled one ever runs.
type Debouncer struct {
	interval time.Duration

	mu    sync.Mutex
	timer *time.Timer
}

// NewDebouncer creates a debouncer with the given quiet interval.
func NewDebouncer(interval time.Duration) *Debouncer {
	return &Debouncer{interval: interval}
}

// Call schedules fn to run after the quiet interval, cancelling any
// previously scheduled call. fn runs on a timer goroutine.
func (d *Debouncer) Call(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.interval, fn)
}

// Stop cancels any scheduled call. Safe to call multiple times.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

// Guard debounces in event-loop hosts where timers arrive back as
// messages instead of callbacks. Every keystroke arms a new
// generation; when the tick for a generation comes back, Accept
// reports whether it is still the latest one. Ticks from superseded
// generations are dropped, which gives last-timer-wins semantics
// without cancelling anything.
type Guard struct {
	generation uint64
}

// Arm starts a new generation and returns its token. Any tick armed
// earlier is invalidated.
func (g *Guard) Arm() uint64 {
	g.generation++
	return g.generation
}

// Accept reports whether the token belongs to the latest generation.
func (g *Guard) Accept(token uint64) bool {
	return token == g.generation
}

// Reset invalidates every outstanding token without arming a new one.
func (g *Guard) Reset() {
	g.generation++
}
