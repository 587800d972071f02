package flappy

import (
	"testing"

	"github.com/avolkov/ledboy/internal/games/gametest"
	"github.com/avolkov/ledboy/internal/input"
)

func TestHardGravityIsSubCell(t *testing.T) {
	h := gametest.NewHarness(1)
	g := &Game{env: h.Env, hard: true}
	g.Init(h.Clk.Now())

	// One step: velocity 4/8, position 28+4=32, still cell 4.
	h.Advance(int(g.moveInterval))
	g.Update(h.Clk.Now())

	if g.y8 != 32 {
		t.Errorf("y8 = %d after one step, expected 32", g.y8)
	}
	if g.y8/8 != 4 {
		t.Errorf("bird cell = %d, expected 4", g.y8/8)
	}
}

func TestHardFallSpeedClamped(t *testing.T) {
	h := gametest.NewHarness(1)
	g := &Game{env: h.Env, hard: true}
	g.Init(h.Clk.Now())
	g.gapY = 1 // keep the pipe out of the fall path as long as possible

	for range 4 {
		h.Advance(int(g.moveInterval))
		g.Update(h.Clk.Now())
	}

	if g.vel8 > hardMaxFall {
		t.Errorf("vel8 = %d, expected clamped to %d", g.vel8, hardMaxFall)
	}
}

func TestFlapSetsImpulse(t *testing.T) {
	h := gametest.NewHarness(1)
	g := &Game{env: h.Env, hard: true}
	g.Init(h.Clk.Now())

	h.Press(input.Up)
	g.Update(h.Clk.Now())

	if g.vel8 != hardFlapImpulse {
		t.Errorf("vel8 = %d after flap, expected %d", g.vel8, hardFlapImpulse)
	}
}

func TestEasyCrashOnFloor(t *testing.T) {
	h := gametest.NewHarness(1)
	g := &Game{env: h.Env}
	g.Init(h.Clk.Now())

	// No flaps: gravity accelerates one cell per step from y=4;
	// the bird leaves the board within a handful of steps.
	for range 5 {
		h.Advance(int(g.moveInterval))
		g.Update(h.Clk.Now())
		if h.Round.Over {
			break
		}
	}

	if !h.Round.Over || h.Round.Win {
		t.Fatalf("expected crash, over=%v win=%v", h.Round.Over, h.Round.Win)
	}
	if h.Round.Msg != "Crashed" {
		t.Errorf("message = %q, expected %q", h.Round.Msg, "Crashed")
	}
}

func TestHardScoresWhenPipePasses(t *testing.T) {
	h := gametest.NewHarness(1)
	g := &Game{env: h.Env, hard: true}
	g.Init(h.Clk.Now())

	// Park the pipe just past the bird and step once.
	g.pipeX = 1
	g.scored = false
	g.y8 = 28
	g.vel8 = 0
	g.gapY = 3 // keep the bird inside the gap if columns overlap

	h.Advance(int(g.moveInterval))
	g.Update(h.Clk.Now())

	if h.Round.Score() != 1 {
		t.Errorf("score = %d, expected 1 after pipe passed", h.Round.Score())
	}
}
