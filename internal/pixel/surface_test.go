package pixel

import "testing"

// captureSink remembers the last presented frame.
type captureSink struct {
	frame []RGB
}

func (c *captureSink) WriteFrame(frame []RGB) {
	c.frame = append(c.frame[:0], frame...)
}

func TestStripIndexSerpentine(t *testing.T) {
	tests := []struct {
		x, y     int
		expected int
	}{
		{0, 0, 0},  // even row, left to right
		{7, 0, 7},
		{0, 1, 15}, // odd row, right to left
		{7, 1, 8},
		{3, 2, 19},
		{3, 3, 28},
		{0, 7, 63},
		{7, 7, 56},
	}

	for _, tc := range tests {
		if got := StripIndex(tc.x, tc.y); got != tc.expected {
			t.Errorf("StripIndex(%d, %d) = %d, expected %d", tc.x, tc.y, got, tc.expected)
		}
	}
}

func TestStripIndexIsBijective(t *testing.T) {
	seen := make(map[int]bool, Count)
	for y := range Height {
		for x := range Width {
			i := StripIndex(x, y)
			if i < 0 || i >= Count {
				t.Fatalf("StripIndex(%d, %d) = %d out of range", x, y, i)
			}
			if seen[i] {
				t.Fatalf("StripIndex(%d, %d) = %d already used", x, y, i)
			}
			seen[i] = true
		}
	}
}

func TestSetOutOfBoundsIsSilent(t *testing.T) {
	sink := &captureSink{}
	s := NewSurface(sink)

	red := RGB{R: 80}
	s.Set(-1, 0, red)
	s.Set(8, 0, red)
	s.Set(0, -1, red)
	s.Set(0, 8, red)

	s.Present()
	for i, c := range sink.frame {
		if c != (RGB{}) {
			t.Errorf("out-of-bounds write leaked into frame at %d: %+v", i, c)
		}
	}
}

func TestPresentAppliesSerpentineOrder(t *testing.T) {
	sink := &captureSink{}
	s := NewSurface(sink)

	c := RGB{R: 10, G: 20, B: 30}
	s.Set(2, 1, c) // odd row: physical index 8 + (7-2) = 13
	s.Present()

	if len(sink.frame) != Count {
		t.Fatalf("frame length = %d, expected %d", len(sink.frame), Count)
	}
	if sink.frame[13] != c {
		t.Errorf("pixel (2,1) not at strip index 13, frame[13]=%+v", sink.frame[13])
	}
	if sink.frame[10] == c {
		t.Error("pixel (2,1) landed at row-major index, serpentine transform missing")
	}
}

func TestClear(t *testing.T) {
	sink := &captureSink{}
	s := NewSurface(sink)

	s.Set(4, 4, RGB{R: 99})
	bg := RGB{B: 5}
	s.Clear(bg)
	s.Present()

	for i, c := range sink.frame {
		if c != bg {
			t.Errorf("frame[%d] = %+v after Clear, expected %+v", i, c, bg)
		}
	}
}
