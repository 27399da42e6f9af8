package input

import (
	"time"

	"github.com/vovakirdan/gridwalk/internal/core"
)

// DefaultRepeatWindow is the default gap below which a repeated key is
// treated as auto-repeat.
const DefaultRepeatWindow = 100 * time.Millisecond

// Debouncer collapses terminal auto-repeat into a single logical press.
//
// Terminals deliver no key-up events, so a held key looks like the same key
// arriving again and again. A repeat of the last action that arrives within
// the window of the previous arrival is dropped, and the window slides with
// each dropped repeat so a held key stays filtered. A different action, or
// the same one after a pause, passes through.
type Debouncer struct {
	window time.Duration
	last   core.Action
	seen   time.Time
}

// NewDebouncer creates a debouncer. A non-positive window disables filtering.
func NewDebouncer(window time.Duration) *Debouncer {
	return &Debouncer{window: window}
}

// Accept reports whether the action arriving at now should be processed.
func (d *Debouncer) Accept(a core.Action, now time.Time) bool {
	if d.window <= 0 {
		return true
	}

	repeat := a == d.last && !d.seen.IsZero() && now.Sub(d.seen) < d.window
	d.last = a
	d.seen = now
	return !repeat
}

// Reset forgets the last key.
func (d *Debouncer) Reset() {
	d.last = core.ActionNone
	d.seen = time.Time{}
}
