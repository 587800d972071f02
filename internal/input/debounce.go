// Package input filters the six raw button lines into stable levels and
// one-shot press/release edges. A raw change is only trusted after it
// has held for the full debounce window.
package input

import (
	"github.com/avolkov/ledboy/internal/clock"
	"github.com/avolkov/ledboy/internal/driver"
)

// Button identifies one of the six logical button roles.
type Button int

const (
	Up Button = iota
	Down
	Left
	Right
	Action // the original device labels this PAUSE; in-game primary button
	Select // back / menu button
	ButtonCount
)

// String returns the button's role name.
func (b Button) String() string {
	switch b {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	case Action:
		return "action"
	case Select:
		return "select"
	default:
		return "unknown"
	}
}

// DefaultDebounceWindow is the minimum stable duration, in milliseconds,
// before a raw level change is committed.
const DefaultDebounceWindow = 30

type buttonState struct {
	stable    bool
	raw       bool
	changedAt clock.Ticks
	press     bool
	release   bool
}

// Debouncer tracks all button lines from a single ButtonSource.
type Debouncer struct {
	src     driver.ButtonSource
	window  int32
	buttons [ButtonCount]buttonState
}

// NewDebouncer creates a debouncer over the given source with the given
// window in milliseconds. A window of 0 uses DefaultDebounceWindow.
func NewDebouncer(src driver.ButtonSource, windowMS int) *Debouncer {
	if windowMS <= 0 {
		windowMS = DefaultDebounceWindow
	}
	return &Debouncer{src: src, window: int32(windowMS)}
}

// Poll samples every line once and advances the per-button state
// machines. Called once per engine poll iteration.
func (d *Debouncer) Poll(now clock.Ticks) {
	for i := range d.buttons {
		b := &d.buttons[i]
		raw := d.src.RawLevel(i)
		if raw != b.raw {
			b.raw = raw
			b.changedAt = now
		}
		if raw != b.stable && clock.Diff(now, b.changedAt) >= d.window {
			b.stable = raw
			if raw {
				b.press = true
			} else {
				b.release = true
			}
		}
	}
}

// TakePress reads and clears the press edge for the button. The second
// of two consecutive calls without a new physical press returns false.
func (d *Debouncer) TakePress(b Button) bool {
	if d.buttons[b].press {
		d.buttons[b].press = false
		return true
	}
	return false
}

// TakeRelease reads and clears the release edge for the button.
func (d *Debouncer) TakeRelease(b Button) bool {
	if d.buttons[b].release {
		d.buttons[b].release = false
		return true
	}
	return false
}

// IsDown reports the debounced level without consuming anything.
func (d *Debouncer) IsDown(b Button) bool {
	return d.buttons[b].stable
}

// ClearEdges discards all pending press and release edges. The engine
// calls this on every mode transition so a button held across the
// transition cannot fire an action in the new mode.
func (d *Debouncer) ClearEdges() {
	for i := range d.buttons {
		d.buttons[i].press = false
		d.buttons[i].release = false
	}
}
