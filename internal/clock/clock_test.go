package clock

import "testing"

func TestDiff(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Ticks
		expected int32
	}{
		{"simple forward", 1000, 400, 600},
		{"equal", 500, 500, 0},
		{"a before b", 400, 1000, -600},
		{"wraparound", 5, 0xFFFFFFFB, 10},
		{"wraparound backwards", 0xFFFFFFFB, 5, -10},
		{"large gap", 0x80000000, 0, -2147483648},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Diff(tc.a, tc.b); got != tc.expected {
				t.Errorf("Diff(%d, %d) = %d, expected %d", tc.a, tc.b, got, tc.expected)
			}
		})
	}
}

func TestManualClock(t *testing.T) {
	m := NewManual(100)
	if m.Now() != 100 {
		t.Errorf("Now() = %d, expected 100", m.Now())
	}

	m.Advance(250)
	if m.Now() != 350 {
		t.Errorf("after Advance(250), Now() = %d, expected 350", m.Now())
	}

	// Advancing across the wrap point must still produce a small positive diff.
	m.Set(0xFFFFFF00)
	before := m.Now()
	m.Advance(512)
	if d := Diff(m.Now(), before); d != 512 {
		t.Errorf("Diff across wrap = %d, expected 512", d)
	}
}

func TestWallClockMonotonic(t *testing.T) {
	w := NewWall()
	a := w.Now()
	b := w.Now()
	if Diff(b, a) < 0 {
		t.Errorf("wall clock went backwards: %d then %d", a, b)
	}
}
