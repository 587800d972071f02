// Package driver defines the hardware sink interfaces the engine writes
// to: the LED strip, the status panel, the buzzer, and the button lines.
// The engine owns all timing and ordering; implementations only move
// bytes. Writes are best-effort and never return errors — a dropped
// frame or tone is invisible next to the refresh cadence.
package driver

// RGB is one LED's color triple.
type RGB struct {
	R, G, B uint8
}

// PixelSink receives full frames in the strip's physical order.
type PixelSink interface {
	// WriteFrame replaces the strip contents. The slice is in physical
	// strip order (serpentine, already transformed by the caller) and
	// is only valid for the duration of the call.
	WriteFrame(frame []RGB)
}

// TextSink is the optional monochrome status panel. Coordinates are in
// pixels on a 128x64 panel; text is rendered on 8-pixel rows.
type TextSink interface {
	// Reset clears the panel's back buffer.
	Reset()
	// WriteText places an ASCII string with its top-left at (x, y).
	WriteText(x, y int, s string)
	// Flush pushes the back buffer to the panel.
	Flush()
}

// ToneOutput is a single-channel variable-frequency tone generator.
type ToneOutput interface {
	// StartTone begins output at the given frequency in Hz.
	StartTone(freq int)
	// StopTone silences the output.
	StopTone()
}

// ButtonSource exposes raw button levels. Lines are active-low in
// hardware; implementations report the logical level (true = pressed).
type ButtonSource interface {
	// RawLevel reports the instantaneous level of button line i.
	RawLevel(i int) bool
}

// NullPixelSink discards frames. Used headless and in tests.
type NullPixelSink struct{}

func (NullPixelSink) WriteFrame([]RGB) {}

// NullToneOutput discards tones.
type NullToneOutput struct{}

func (NullToneOutput) StartTone(int) {}
func (NullToneOutput) StopTone()     {}

// NullButtons reports every line released.
type NullButtons struct{}

func (NullButtons) RawLevel(int) bool { return false }
