// Package pixel provides the 8x8 logical color buffer games compose
// into, and its serpentine transform into the physical strip order.
// Composing (Set/Clear) and presenting are separate steps so the engine
// can refresh the hardware at its own cadence.
package pixel

import "github.com/avolkov/ledboy/internal/driver"

// Matrix dimensions. The strip folds back on itself every row.
const (
	Width  = 8
	Height = 8
	Count  = Width * Height
)

// RGB aliases the driver color triple so games only import this package.
type RGB = driver.RGB

// Surface is the logical frame buffer. Writes outside the grid are
// silently ignored; a stray coordinate is a game geometry bug, not a
// user-facing failure.
type Surface struct {
	cells [Count]RGB
	out   [Count]RGB
	sink  driver.PixelSink
}

// NewSurface creates a surface presenting to the given sink.
func NewSurface(sink driver.PixelSink) *Surface {
	return &Surface{sink: sink}
}

// StripIndex maps a logical (x, y) to the physical strip index. Even
// rows run left to right, odd rows right to left.
func StripIndex(x, y int) int {
	if y%2 == 0 {
		return y*Width + x
	}
	return y*Width + (Width - 1 - x)
}

// Clear fills the whole surface with one color.
func (s *Surface) Clear(c RGB) {
	for i := range s.cells {
		s.cells[i] = c
	}
}

// Set writes one logical pixel. Out-of-bounds writes are dropped.
func (s *Surface) Set(x, y int, c RGB) {
	if x < 0 || x >= Width || y < 0 || y >= Height {
		return
	}
	s.cells[y*Width+x] = c
}

// Get reads one logical pixel; out-of-bounds reads return black.
func (s *Surface) Get(x, y int) RGB {
	if x < 0 || x >= Width || y < 0 || y >= Height {
		return RGB{}
	}
	return s.cells[y*Width+x]
}

// Present transforms the logical grid into physical strip order and
// pushes it to the sink.
func (s *Surface) Present() {
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			s.out[StripIndex(x, y)] = s.cells[y*Width+x]
		}
	}
	s.sink.WriteFrame(s.out[:])
}
