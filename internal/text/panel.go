// Package text drives the optional monochrome status panel. The panel
// is a secondary surface (score, names, prompts); when the driver is
// absent every call is a no-op and the device runs matrix-and-audio
// only.
package text

import "github.com/avolkov/ledboy/internal/driver"

// Panel geometry in pixels. Glyphs are 8x8, so a full line holds 16
// characters and the panel has 8 text rows.
const (
	Width      = 128
	Height     = 64
	GlyphSize  = 8
	LineChars  = Width / GlyphSize
	LineHeight = GlyphSize
)

// Panel wraps a TextSink, tolerating its absence.
type Panel struct {
	sink driver.TextSink
}

// NewPanel creates a panel writer. A nil sink is valid and makes every
// method a no-op.
func NewPanel(sink driver.TextSink) *Panel {
	return &Panel{sink: sink}
}

// Available reports whether a panel driver is attached.
func (p *Panel) Available() bool {
	return p.sink != nil
}

// Reset clears the back buffer.
func (p *Panel) Reset() {
	if p.sink != nil {
		p.sink.Reset()
	}
}

// Text writes s with its top-left at pixel (x, y), truncated to the
// panel width.
func (p *Panel) Text(x, y int, s string) {
	if p.sink == nil {
		return
	}
	if max := (Width - x) / GlyphSize; max >= 0 && len(s) > max {
		s = s[:max]
	}
	p.sink.WriteText(x, y, s)
}

// Line writes s on text row n (0-7) at the left edge.
func (p *Panel) Line(n int, s string) {
	p.Text(0, n*LineHeight, s)
}

// Flush pushes the buffer to the hardware.
func (p *Panel) Flush() {
	if p.sink != nil {
		p.sink.Flush()
	}
}
