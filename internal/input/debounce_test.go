package input

import (
	"testing"

	"github.com/avolkov/ledboy/internal/clock"
)

// scriptedButtons is a ButtonSource whose levels tests set directly.
type scriptedButtons struct {
	levels [ButtonCount]bool
}

func (s *scriptedButtons) RawLevel(i int) bool { return s.levels[i] }

func (s *scriptedButtons) set(b Button, down bool) { s.levels[b] = down }

func TestShortGlitchNeverCommits(t *testing.T) {
	src := &scriptedButtons{}
	clk := clock.NewManual(0)
	d := NewDebouncer(src, 30)

	// A raw pulse shorter than the window must not change the stable
	// level or fire an edge, no matter how often we poll.
	src.set(Up, true)
	for range 29 {
		d.Poll(clk.Now())
		clk.Advance(1)
	}
	src.set(Up, false)
	d.Poll(clk.Now())
	clk.Advance(50)
	d.Poll(clk.Now())

	if d.IsDown(Up) {
		t.Error("29ms glitch committed a stable press")
	}
	if d.TakePress(Up) {
		t.Error("29ms glitch fired a press edge")
	}
}

func TestStablePressCommitsOnce(t *testing.T) {
	src := &scriptedButtons{}
	clk := clock.NewManual(0)
	d := NewDebouncer(src, 30)

	src.set(Action, true)
	d.Poll(clk.Now())
	clk.Advance(30)
	d.Poll(clk.Now())

	if !d.IsDown(Action) {
		t.Fatal("stable press not committed after full window")
	}
	if !d.TakePress(Action) {
		t.Fatal("press edge missing")
	}
	// take semantics: second read is false
	if d.TakePress(Action) {
		t.Error("press edge survived TakePress")
	}

	// Holding longer must not re-fire.
	clk.Advance(500)
	d.Poll(clk.Now())
	if d.TakePress(Action) {
		t.Error("held button re-fired a press edge")
	}
}

func TestReleaseEdge(t *testing.T) {
	src := &scriptedButtons{}
	clk := clock.NewManual(0)
	d := NewDebouncer(src, 30)

	src.set(Left, true)
	d.Poll(clk.Now())
	clk.Advance(30)
	d.Poll(clk.Now())
	d.TakePress(Left)

	src.set(Left, false)
	d.Poll(clk.Now())
	clk.Advance(30)
	d.Poll(clk.Now())

	if d.IsDown(Left) {
		t.Error("stable level still down after debounced release")
	}
	if !d.TakeRelease(Left) {
		t.Error("release edge missing")
	}
}

func TestClearEdgesDiscardsPending(t *testing.T) {
	src := &scriptedButtons{}
	clk := clock.NewManual(0)
	d := NewDebouncer(src, 30)

	src.set(Select, true)
	d.Poll(clk.Now())
	clk.Advance(30)
	d.Poll(clk.Now())

	d.ClearEdges()
	if d.TakePress(Select) {
		t.Error("press edge survived ClearEdges")
	}
	// The stable level is not affected by the flush.
	if !d.IsDown(Select) {
		t.Error("ClearEdges must not touch stable levels")
	}
}

func TestWindowRestartsOnBounce(t *testing.T) {
	src := &scriptedButtons{}
	clk := clock.NewManual(0)
	d := NewDebouncer(src, 30)

	// Bounce: down 20ms, up 5ms, down again. The window restarts at the
	// last raw change, so commit happens 30ms after the final bounce.
	src.set(Down, true)
	d.Poll(clk.Now())
	clk.Advance(20)
	src.set(Down, false)
	d.Poll(clk.Now())
	clk.Advance(5)
	src.set(Down, true)
	d.Poll(clk.Now())

	clk.Advance(29)
	d.Poll(clk.Now())
	if d.IsDown(Down) {
		t.Error("committed before window elapsed from last bounce")
	}

	clk.Advance(1)
	d.Poll(clk.Now())
	if !d.IsDown(Down) {
		t.Error("not committed after full window from last bounce")
	}
}
