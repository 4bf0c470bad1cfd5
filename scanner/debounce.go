// Package scanner turns raw scanner hardware input (keyboard-wedge
// keystroke bursts, camera frames) into single logical scan events.
package scanner

import (
	"strings"
	"sync"
	"time"
)

// DefaultQuietPeriod is how long the keyboard buffer must stay unchanged
// before its content is treated as a completed scan. Hardware scanners type
// whole codes in a few milliseconds, so a short window is enough.
const DefaultQuietPeriod = 80 * time.Millisecond

// Debouncer collapses the keystroke burst of a keyboard-wedge barcode
// scanner into exactly one submit, without requiring the operator to press
// Enter. It mirrors a text field: SetValue on every change, Enter for an
// explicit submit.
//
// Submissions are serialized: while a submit is outstanding the debouncer
// rejects further submits until Settle is called.
type Debouncer struct {
	quiet  time.Duration
	submit func(string)

	mu      sync.Mutex
	value   string
	timer   *time.Timer
	pending bool
}

// NewDebouncer creates a debouncer that calls submit with the trimmed
// buffer content once the quiet period elapses. A non-positive quiet period
// falls back to DefaultQuietPeriod.
func NewDebouncer(quiet time.Duration, submit func(string)) *Debouncer {
	if quiet <= 0 {
		quiet = DefaultQuietPeriod
	}
	return &Debouncer{quiet: quiet, submit: submit}
}

// SetValue replaces the buffer content, restarting the quiet-period timer
// when the new content is non-empty.
func (d *Debouncer) SetValue(v string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.value = v
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	if strings.TrimSpace(v) != "" {
		d.timer = time.AfterFunc(d.quiet, d.fire)
	}
}

// Enter submits the current buffer immediately, short-circuiting the
// quiet-period timer.
func (d *Debouncer) Enter() {
	d.fire()
}

// Settle marks the outstanding submission as resolved so the next scan can
// go through. The owner calls this once the submit callback's work settles,
// successfully or not.
func (d *Debouncer) Settle() {
	d.mu.Lock()
	d.pending = false
	d.mu.Unlock()
}

// Value returns the current buffer content.
func (d *Debouncer) Value() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.value
}

func (d *Debouncer) fire() {
	d.mu.Lock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	v := strings.TrimSpace(d.value)
	if v == "" || d.pending {
		// Empty submit is a no-op; a pending one rejects concurrent scans.
		d.mu.Unlock()
		return
	}
	d.pending = true
	d.value = ""
	d.mu.Unlock()

	d.submit(v)
}
