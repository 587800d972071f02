// Package minesweeper implements the 8x8 sweep: mines are placed on
// the first probe so it is always safe, zero cells flood open, and a
// long press probes while a short press flags.
package minesweeper

import (
	"github.com/avolkov/ledboy/internal/clock"
	"github.com/avolkov/ledboy/internal/games"
	"github.com/avolkov/ledboy/internal/input"
	"github.com/avolkov/ledboy/internal/pixel"
	"github.com/avolkov/ledboy/internal/registry"
)

const (
	mineCount = 10
	mineCell  = 9 // counts 0..8 are neighbor counts

	// Holding Action at least this long probes; a shorter tap flags.
	probeHoldMS = 500
)

// Game is one minesweeper round.
type Game struct {
	env *games.Env

	counts   [pixel.Height][pixel.Width]int // 0..8, or mineCell
	revealed [pixel.Height][pixel.Width]bool
	flagged  [pixel.Height][pixel.Width]bool

	cx, cy   int
	placed   bool
	toReveal int

	holding bool
	heldAt  clock.Ticks
}

func init() {
	registry.Register(registry.Info{ID: "minesweeper", Title: "Minesweeper", Order: 16}, func(env *games.Env) games.Game {
		return &Game{env: env}
	})
}

func (g *Game) Init(now clock.Ticks) {
	g.counts = [pixel.Height][pixel.Width]int{}
	g.revealed = [pixel.Height][pixel.Width]bool{}
	g.flagged = [pixel.Height][pixel.Width]bool{}
	g.cx, g.cy = 0, 0
	g.placed = false
	g.toReveal = 0
	g.holding = false
}

// placeMines lays mines everywhere but the first probed cell, then
// fills in neighbor counts.
func (g *Game) placeMines(avoidX, avoidY int) {
	laid := 0
	for laid < mineCount {
		x := g.env.Rand.Intn(pixel.Width)
		y := g.env.Rand.Intn(pixel.Height)
		if (x == avoidX && y == avoidY) || g.counts[y][x] == mineCell {
			continue
		}
		g.counts[y][x] = mineCell
		laid++
	}

	for y := range pixel.Height {
		for x := range pixel.Width {
			if g.counts[y][x] == mineCell {
				continue
			}
			n := 0
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					nx, ny := x+dx, y+dy
					if nx < 0 || nx >= pixel.Width || ny < 0 || ny >= pixel.Height {
						continue
					}
					if g.counts[ny][nx] == mineCell {
						n++
					}
				}
			}
			g.counts[y][x] = n
		}
	}

	g.placed = true
	g.toReveal = pixel.Width*pixel.Height - mineCount
}

// reveal opens one cell and flood-opens the neighborhood of zeros.
func (g *Game) reveal(x, y int) {
	if x < 0 || x >= pixel.Width || y < 0 || y >= pixel.Height {
		return
	}
	if g.revealed[y][x] || g.counts[y][x] == mineCell {
		return
	}
	g.revealed[y][x] = true
	g.flagged[y][x] = false
	g.toReveal--
	g.env.Round.AddScore(1)
	if g.counts[y][x] != 0 {
		return
	}
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			g.reveal(x+dx, y+dy)
		}
	}
}

func (g *Game) probe(now clock.Ticks) {
	snd, round := g.env.Snd, g.env.Round

	if !g.placed {
		g.placeMines(g.cx, g.cy)
	}
	if g.flagged[g.cy][g.cx] || g.revealed[g.cy][g.cx] {
		return
	}
	if g.counts[g.cy][g.cx] == mineCell {
		for y := range pixel.Height {
			for x := range pixel.Width {
				if g.counts[y][x] == mineCell {
					g.revealed[y][x] = true
				}
			}
		}
		snd.Hit()
		round.Finish(false, "Boom")
		return
	}

	snd.Score()
	g.reveal(g.cx, g.cy)
	if g.toReveal == 0 {
		round.Finish(true, "Cleared")
	}
}

func (g *Game) Update(now clock.Ticks) {
	in, snd := g.env.In, g.env.Snd

	if in.TakePress(input.Up) {
		g.cy = (g.cy - 1 + pixel.Height) % pixel.Height
		snd.Press()
	}
	if in.TakePress(input.Down) {
		g.cy = (g.cy + 1) % pixel.Height
		snd.Press()
	}
	if in.TakePress(input.Left) {
		g.cx = (g.cx - 1 + pixel.Width) % pixel.Width
		snd.Press()
	}
	if in.TakePress(input.Right) {
		g.cx = (g.cx + 1) % pixel.Width
		snd.Press()
	}

	if in.TakePress(input.Action) {
		g.holding = true
		g.heldAt = now
	}

	if g.holding && clock.Diff(now, g.heldAt) >= probeHoldMS {
		// Long hold probes without waiting for the release.
		g.holding = false
		in.TakeRelease(input.Action)
		g.probe(now)
		return
	}

	if in.TakeRelease(input.Action) && g.holding {
		g.holding = false
		if !g.revealed[g.cy][g.cx] {
			g.flagged[g.cy][g.cx] = !g.flagged[g.cy][g.cx]
			snd.Press()
		}
	}
}

func (g *Game) Draw(now clock.Ticks, fb *pixel.Surface) {
	for y := range pixel.Height {
		for x := range pixel.Width {
			switch {
			case g.flagged[y][x] && !g.revealed[y][x]:
				fb.Set(x, y, pixel.RGB{B: 90})
			case !g.revealed[y][x]:
				fb.Set(x, y, pixel.RGB{R: 15, G: 15, B: 15})
			case g.counts[y][x] == mineCell:
				fb.Set(x, y, pixel.RGB{R: 100})
			case g.counts[y][x] == 0:
				fb.Set(x, y, pixel.RGB{R: 40, B: 40})
			case g.counts[y][x] == 1:
				fb.Set(x, y, pixel.RGB{G: 50})
			case g.counts[y][x] == 2:
				fb.Set(x, y, pixel.RGB{R: 50, G: 50})
			default:
				fb.Set(x, y, pixel.RGB{R: uint8(g.counts[y][x] * 15)})
			}
		}
	}

	if (uint32(now)/250)%2 == 0 {
		fb.Set(g.cx, g.cy, pixel.RGB{R: 100, G: 100, B: 100})
	}
}
