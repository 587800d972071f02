package asteroids

import (
	"testing"

	"github.com/avolkov/ledboy/internal/games/gametest"
	"github.com/avolkov/ledboy/internal/input"
)

func TestShotCooldownLimitsFireRate(t *testing.T) {
	h := gametest.NewHarness(1)
	g := &Game{env: h.Env}
	g.Init(h.Clk.Now())

	h.Advance(shotCooldown)
	h.Press(input.Up)
	g.Update(h.Clk.Now())
	if len(g.bullets) != 1 {
		t.Fatalf("bullets = %d after first shot, expected 1", len(g.bullets))
	}

	// Second shot inside the cooldown window is swallowed.
	h.Press(input.Up)
	g.Update(h.Clk.Now())
	if len(g.bullets) != 1 {
		t.Errorf("bullets = %d inside cooldown, expected 1", len(g.bullets))
	}
}

func TestBulletCap(t *testing.T) {
	h := gametest.NewHarness(1)
	g := &Game{env: h.Env}
	g.Init(h.Clk.Now())

	for range maxBullets + 3 {
		h.Advance(shotCooldown)
		h.Press(input.Up)
		g.Update(h.Clk.Now())
	}

	if len(g.bullets) > maxBullets {
		t.Errorf("bullets = %d, expected at most %d", len(g.bullets), maxBullets)
	}
}

func TestBulletDestroysRock(t *testing.T) {
	h := gametest.NewHarness(1)
	g := &Game{env: h.Env}
	g.Init(h.Clk.Now())

	g.bullets = append(g.bullets, bullet{x: 3, y: 3})
	g.rocks = append(g.rocks, rock{x: 3, y: 2, interval: 10000, lastMove: h.Clk.Now()})

	// One bullet step moves (3,3) onto the rock at (3,2).
	h.Advance(bulletInterval)
	g.Update(h.Clk.Now())

	if len(g.rocks) != 0 {
		t.Error("rock survived a direct hit")
	}
	if len(g.bullets) != 0 {
		t.Error("bullet survived the collision")
	}
	if h.Round.Score() != 1 {
		t.Errorf("score = %d, expected 1", h.Round.Score())
	}
}

func TestRockOnShipEndsRound(t *testing.T) {
	h := gametest.NewHarness(1)
	g := &Game{env: h.Env}
	g.Init(h.Clk.Now())

	g.rocks = append(g.rocks, rock{x: g.shipX, y: 6, interval: 1, lastMove: h.Clk.Now()})
	h.Advance(5)
	g.Update(h.Clk.Now())

	if !h.Round.Over || h.Round.Win {
		t.Fatalf("expected a lost round, over=%v win=%v", h.Round.Over, h.Round.Win)
	}
	if h.Round.Msg != "Ship hit" {
		t.Errorf("message = %q, expected %q", h.Round.Msg, "Ship hit")
	}
}

func TestRocksKeepIndividualPace(t *testing.T) {
	h := gametest.NewHarness(1)
	g := &Game{env: h.Env}
	g.Init(h.Clk.Now())

	g.rocks = append(g.rocks,
		rock{x: 0, y: 0, interval: 100, lastMove: h.Clk.Now()},
		rock{x: 7, y: 0, interval: 400, lastMove: h.Clk.Now()},
	)

	h.Advance(150)
	g.Update(h.Clk.Now())

	if g.rocks[0].y != 1 {
		t.Errorf("fast rock y = %d, expected 1", g.rocks[0].y)
	}
	if g.rocks[1].y != 0 {
		t.Errorf("slow rock y = %d, expected 0", g.rocks[1].y)
	}
}
