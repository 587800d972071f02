package minesweeper

import (
	"testing"

	"github.com/avolkov/ledboy/internal/games/gametest"
	"github.com/avolkov/ledboy/internal/input"
	"github.com/avolkov/ledboy/internal/pixel"
)

func TestFirstProbeIsNeverAMine(t *testing.T) {
	for seed := int64(0); seed < 25; seed++ {
		h := gametest.NewHarness(seed)
		g := &Game{env: h.Env}
		g.Init(h.Clk.Now())

		g.cx, g.cy = 3, 3
		g.probe(h.Clk.Now())

		if g.counts[3][3] == mineCell {
			t.Fatalf("seed %d: mine under the first probe", seed)
		}
		if h.Round.Over && !h.Round.Win {
			t.Fatalf("seed %d: first probe lost the round", seed)
		}
	}
}

func TestMinePlacementAndCounts(t *testing.T) {
	h := gametest.NewHarness(7)
	g := &Game{env: h.Env}
	g.Init(h.Clk.Now())
	g.placeMines(0, 0)

	mines := 0
	for y := range pixel.Height {
		for x := range pixel.Width {
			if g.counts[y][x] == mineCell {
				mines++
			}
		}
	}
	if mines != mineCount {
		t.Fatalf("mines = %d, expected %d", mines, mineCount)
	}

	// Every count must match a brute-force neighbor scan.
	for y := range pixel.Height {
		for x := range pixel.Width {
			if g.counts[y][x] == mineCell {
				continue
			}
			want := 0
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					nx, ny := x+dx, y+dy
					if nx < 0 || nx >= pixel.Width || ny < 0 || ny >= pixel.Height {
						continue
					}
					if g.counts[ny][nx] == mineCell {
						want++
					}
				}
			}
			if g.counts[y][x] != want {
				t.Errorf("count at (%d,%d) = %d, expected %d", x, y, g.counts[y][x], want)
			}
		}
	}
}

func TestFloodRevealOpensZeroRegion(t *testing.T) {
	h := gametest.NewHarness(1)
	g := &Game{env: h.Env}
	g.Init(h.Clk.Now())

	// Hand-built board: mines along the right edge, everything west of
	// column 6 is zero and must open in one probe.
	for y := range pixel.Height {
		g.counts[y][7] = mineCell
	}
	// Column 6 borders the mines: edge rows adjoin two, middle rows
	// three. Everything west of it stays zero.
	for y := range pixel.Height {
		g.counts[y][6] = 3
	}
	g.counts[0][6] = 2
	g.counts[pixel.Height-1][6] = 2
	g.placed = true
	g.toReveal = 7 * pixel.Height

	g.cx, g.cy = 0, 0
	g.probe(h.Clk.Now())

	for y := range pixel.Height {
		for x := 0; x < 7; x++ {
			if !g.revealed[y][x] {
				t.Errorf("cell (%d,%d) not opened by flood", x, y)
			}
		}
	}
	if !h.Round.Over || !h.Round.Win {
		t.Fatalf("expected a cleared round, over=%v win=%v", h.Round.Over, h.Round.Win)
	}
	if h.Round.Msg != "Cleared" {
		t.Errorf("message = %q, expected %q", h.Round.Msg, "Cleared")
	}
	if h.Round.Score() != 7*pixel.Height {
		t.Errorf("score = %d, expected one per opened cell (%d)", h.Round.Score(), 7*pixel.Height)
	}
}

func TestProbeOnMineRevealsAllMines(t *testing.T) {
	h := gametest.NewHarness(1)
	g := &Game{env: h.Env}
	g.Init(h.Clk.Now())

	g.counts[0][0] = mineCell
	g.counts[5][5] = mineCell
	g.placed = true
	g.toReveal = 62

	g.cx, g.cy = 0, 0
	g.probe(h.Clk.Now())

	if !h.Round.Over || h.Round.Win {
		t.Fatalf("expected a lost round, over=%v win=%v", h.Round.Over, h.Round.Win)
	}
	if h.Round.Msg != "Boom" {
		t.Errorf("message = %q, expected %q", h.Round.Msg, "Boom")
	}
	if !g.revealed[5][5] {
		t.Error("other mines were not revealed on loss")
	}
}

func TestShortTapFlagsLongHoldProbes(t *testing.T) {
	h := gametest.NewHarness(1)
	g := &Game{env: h.Env}
	g.Init(h.Clk.Now())

	// Tap: press and release inside the hold window toggles a flag.
	h.Press(input.Action)
	g.Update(h.Clk.Now())
	if !g.flagged[0][0] {
		t.Fatal("short tap did not flag")
	}
	if g.placed {
		t.Fatal("short tap placed mines")
	}

	h.Press(input.Action)
	g.Update(h.Clk.Now())
	if g.flagged[0][0] {
		t.Fatal("second tap did not clear the flag")
	}

	// Hold: press, wait past the window without releasing.
	h.Btn.Set(input.Action, true)
	h.Advance(1)
	h.Advance(input.DefaultDebounceWindow)
	g.Update(h.Clk.Now()) // press edge arms the hold
	h.Advance(probeHoldMS)
	g.Update(h.Clk.Now())

	if !g.placed {
		t.Fatal("long hold did not probe")
	}
	if !g.revealed[0][0] {
		t.Error("long hold did not open the cell")
	}
}

func TestCursorWrapsAtEdges(t *testing.T) {
	h := gametest.NewHarness(1)
	g := &Game{env: h.Env}
	g.Init(h.Clk.Now())

	h.Press(input.Up)
	g.Update(h.Clk.Now())
	if g.cy != pixel.Height-1 {
		t.Errorf("cy = %d after wrapping up from 0, expected %d", g.cy, pixel.Height-1)
	}

	h.Press(input.Left)
	g.Update(h.Clk.Now())
	if g.cx != pixel.Width-1 {
		t.Errorf("cx = %d after wrapping left from 0, expected %d", g.cx, pixel.Width-1)
	}
}
