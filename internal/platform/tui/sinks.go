// Package tui provides the Bubble Tea front end: a terminal rendition
// of the LED matrix, the status panel, the buzzer, and key-driven
// button lines, all feeding one engine instance.
package tui

import (
	"sync"
	"time"

	"github.com/avolkov/ledboy/internal/input"
	"github.com/avolkov/ledboy/internal/pixel"
	"github.com/avolkov/ledboy/internal/text"
)

// simButtons synthesizes raw button levels from key events. Terminals
// deliver no key-up, so each key press holds its line for a fixed
// window; terminal auto-repeat keeps re-arming the window while the
// physical key stays down.
type simButtons struct {
	mu     sync.Mutex
	expiry [input.ButtonCount]time.Time
	hold   time.Duration
}

func newSimButtons(holdMS int) *simButtons {
	return &simButtons{hold: time.Duration(holdMS) * time.Millisecond}
}

// Press arms the line for the hold window.
func (b *simButtons) Press(btn input.Button) {
	b.mu.Lock()
	b.expiry[btn] = time.Now().Add(b.hold)
	b.mu.Unlock()
}

// RawLevel implements driver.ButtonSource.
func (b *simButtons) RawLevel(i int) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return time.Now().Before(b.expiry[i])
}

// frameSink keeps the last presented matrix frame for the view.
type frameSink struct {
	mu    sync.Mutex
	frame [pixel.Count]pixel.RGB
}

// WriteFrame implements driver.PixelSink. The frame arrives in
// physical strip order.
func (s *frameSink) WriteFrame(frame []pixel.RGB) {
	s.mu.Lock()
	copy(s.frame[:], frame)
	s.mu.Unlock()
}

// At returns the logical pixel at (x, y), undoing the serpentine fold.
func (s *frameSink) At(x, y int) pixel.RGB {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.frame[pixel.StripIndex(x, y)]
}

// textSink renders panel writes into a character grid.
type textSink struct {
	mu    sync.Mutex
	back  [text.Height / text.GlyphSize][text.LineChars]byte
	front [text.Height / text.GlyphSize][text.LineChars]byte
}

func newTextSink() *textSink {
	s := &textSink{}
	s.Reset()
	return s
}

// Reset implements driver.TextSink.
func (s *textSink) Reset() {
	s.mu.Lock()
	for i := range s.back {
		for j := range s.back[i] {
			s.back[i][j] = ' '
		}
	}
	s.mu.Unlock()
}

// WriteText implements driver.TextSink. Coordinates are panel pixels.
func (s *textSink) WriteText(x, y int, str string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	row := y / text.GlyphSize
	col := x / text.GlyphSize
	if row < 0 || row >= len(s.back) {
		return
	}
	for i := 0; i < len(str) && col+i < text.LineChars; i++ {
		if col+i < 0 {
			continue
		}
		s.back[row][col+i] = str[i]
	}
}

// Flush implements driver.TextSink.
func (s *textSink) Flush() {
	s.mu.Lock()
	s.front = s.back
	s.mu.Unlock()
}

// Line returns the displayed text of panel row n.
func (s *textSink) Line(n int) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return string(s.front[n][:])
}

// toneSink tracks the buzzer state for the status line.
type toneSink struct {
	mu   sync.Mutex
	freq int
}

// StartTone implements driver.ToneOutput.
func (s *toneSink) StartTone(freq int) {
	s.mu.Lock()
	s.freq = freq
	s.mu.Unlock()
}

// StopTone implements driver.ToneOutput.
func (s *toneSink) StopTone() {
	s.mu.Lock()
	s.freq = 0
	s.mu.Unlock()
}

// Freq returns the active frequency, 0 when silent.
func (s *toneSink) Freq() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.freq
}
