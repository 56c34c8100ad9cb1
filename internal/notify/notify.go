// Package notify holds the single ephemeral user-facing message: at most
// one active notification, auto-cleared after a fixed duration.
package notify

import (
	"sync"
	"time"
)

// DefaultTTL is how long a notification stays visible without being
// replaced or cleared.
const DefaultTTL = 5 * time.Second

// Dispatcher holds zero or one active message. A new Show pre-empts an
// unexpired message without queuing; Clear is idempotent.
type Dispatcher struct {
	mu     sync.Mutex
	ttl    time.Duration
	msg    string
	active bool
	gen    uint64
	timer  *time.Timer
}

// NewDispatcher returns a dispatcher with the given visibility duration.
// A non-positive ttl falls back to DefaultTTL.
func NewDispatcher(ttl time.Duration) *Dispatcher {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Dispatcher{ttl: ttl}
}

// Show replaces any existing message and schedules automatic clearing.
func (d *Dispatcher) Show(msg string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.msg = msg
	d.active = true
	d.gen++

	// The generation guard keeps a stale timer from clearing a message
	// shown after it was scheduled.
	gen := d.gen
	d.timer = time.AfterFunc(d.ttl, func() {
		d.mu.Lock()
		defer d.mu.Unlock()
		if d.gen == gen {
			d.msg = ""
			d.active = false
		}
	})
}

// Active returns the current message and whether one is visible.
func (d *Dispatcher) Active() (string, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.msg, d.active
}

// Clear removes any active message. Safe to call repeatedly.
func (d *Dispatcher) Clear() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.msg = ""
	d.active = false
	d.gen++
}
