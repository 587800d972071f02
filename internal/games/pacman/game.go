// Package pacman implements the two pellet-chase variants. Easy is an
// open wrapped board with a naive chaser; hard runs four walled worlds
// with a greedy distance-minimizing ghost.
package pacman

import (
	"github.com/avolkov/ledboy/internal/clock"
	"github.com/avolkov/ledboy/internal/games"
	"github.com/avolkov/ledboy/internal/input"
	"github.com/avolkov/ledboy/internal/pixel"
	"github.com/avolkov/ledboy/internal/registry"
)

// worlds are row bitmaps for the hard variant: set bits are walkable
// pellet cells, clear bits are walls.
var worlds = [4][pixel.Height]uint8{
	{0x00, 0x7E, 0x52, 0x7A, 0x5E, 0x62, 0x7E, 0x00},
	{0x00, 0x7E, 0x56, 0x76, 0x5C, 0x6E, 0x7A, 0x00},
	{0x00, 0x76, 0x5C, 0x6A, 0x3E, 0x56, 0x7E, 0x00},
	{0x00, 0x7E, 0x52, 0x7E, 0x54, 0x7E, 0x6A, 0x00},
}

// Cell contents for the hard variant.
const (
	cellWall = iota
	cellPellet
	cellEmpty
)

const (
	easyPacInterval   = 250
	easyGhostInterval = 400
	hardPacInterval   = 210
	hardGhostInterval = 360
	minPacInterval    = 145
	minGhostInterval  = 120
)

// Game is one pac-man round.
type Game struct {
	env  *games.Env
	hard bool

	px, py         int
	gx, gy         int
	dx, dy         int
	nextDX, nextDY int

	cells       [pixel.Height][pixel.Width]int // hard: wall/pellet/empty
	pellets     [pixel.Height][pixel.Width]bool
	pelletsLeft int
	worldIdx    int

	pacInterval   int32
	ghostInterval int32
	lastPac       clock.Ticks
	lastGhost     clock.Ticks
}

func init() {
	registry.Register(registry.Info{ID: "pacman", Title: "Pac-Man Easy", Order: 6}, func(env *games.Env) games.Game {
		return &Game{env: env}
	})
	registry.Register(registry.Info{ID: "pacman_hard", Title: "Pac-Man Hard", Order: 7}, func(env *games.Env) games.Game {
		return &Game{env: env, hard: true}
	})
}

func (g *Game) loadWorld() {
	g.pelletsLeft = 0
	if g.hard {
		m := worlds[g.worldIdx]
		for y := range pixel.Height {
			for x := range pixel.Width {
				if (m[y]>>(pixel.Width-1-x))&1 == 1 {
					g.cells[y][x] = cellPellet
					g.pelletsLeft++
				} else {
					g.cells[y][x] = cellWall
				}
			}
		}
		// Start cells begin eaten.
		if g.cells[g.py][g.px] == cellPellet {
			g.cells[g.py][g.px] = cellEmpty
			g.pelletsLeft--
		}
		if g.cells[g.gy][g.gx] == cellPellet {
			g.cells[g.gy][g.gx] = cellEmpty
			g.pelletsLeft--
		}
		return
	}

	for y := range pixel.Height {
		for x := range pixel.Width {
			g.pellets[y][x] = true
			g.pelletsLeft++
		}
	}
	g.pellets[g.py][g.px] = false
	g.pelletsLeft--
}

func (g *Game) Init(now clock.Ticks) {
	if g.hard {
		g.px, g.py = 1, 1
		g.gx, g.gy = 6, 6
		g.pacInterval = hardPacInterval
		g.ghostInterval = hardGhostInterval
	} else {
		g.px, g.py = 4, 4
		g.gx, g.gy = 0, 0
		g.pacInterval = easyPacInterval
		g.ghostInterval = easyGhostInterval
	}
	g.dx, g.dy = 1, 0
	g.nextDX, g.nextDY = 1, 0
	g.worldIdx = 0
	g.lastPac = now
	g.lastGhost = now
	g.loadWorld()
}

func (g *Game) isWall(x, y int) bool {
	if x < 0 || x >= pixel.Width || y < 0 || y >= pixel.Height {
		return true
	}
	if g.hard {
		return g.cells[y][x] == cellWall
	}
	return false
}

func (g *Game) Update(now clock.Ticks) {
	if g.env.HandlePause() {
		return
	}

	in, snd, round := g.env.In, g.env.Snd, g.env.Round

	switch {
	case in.TakePress(input.Up):
		g.nextDX, g.nextDY = 0, -1
		snd.Press()
	case in.TakePress(input.Down):
		g.nextDX, g.nextDY = 0, 1
		snd.Press()
	case in.TakePress(input.Left):
		g.nextDX, g.nextDY = -1, 0
		snd.Press()
	case in.TakePress(input.Right):
		g.nextDX, g.nextDY = 1, 0
		snd.Press()
	}

	if clock.Diff(now, g.lastPac) >= g.pacInterval {
		g.lastPac = now
		if g.hard {
			g.stepPacHard()
		} else {
			g.stepPacEasy()
		}
	}

	if clock.Diff(now, g.lastGhost) >= g.ghostInterval {
		g.lastGhost = now
		if g.hard {
			g.stepGhostHard()
		} else {
			g.stepGhostEasy()
		}
	}

	if g.px == g.gx && g.py == g.gy {
		snd.Hit()
		round.Finish(false, "Caught")
		return
	}

	if g.hard && g.pelletsLeft == 0 {
		if g.worldIdx < len(worlds)-1 {
			g.worldIdx++
			round.AddScore(25)
			snd.Score()
			g.px, g.py = 1, 1
			g.gx, g.gy = 6, 6
			g.dx, g.dy = 1, 0
			g.nextDX, g.nextDY = 1, 0
			g.ghostInterval = max(minGhostInterval, g.ghostInterval-18)
			g.pacInterval = max(minPacInterval, g.pacInterval-10)
			g.loadWorld()
		} else {
			round.AddScore(100)
			round.Finish(true, "World 4 Clear")
		}
	}
}

// stepPacEasy moves unconditionally in the latched direction, wrapping
// at the edges.
func (g *Game) stepPacEasy() {
	snd, round := g.env.Snd, g.env.Round

	g.px = (g.px + g.nextDX + pixel.Width) % pixel.Width
	g.py = (g.py + g.nextDY + pixel.Height) % pixel.Height
	if g.pellets[g.py][g.px] {
		g.pellets[g.py][g.px] = false
		g.pelletsLeft--
		round.AddScore(10)
		snd.Score()
		if g.pelletsLeft == 0 {
			round.AddScore(100)
			g.loadWorld()
		}
	}
}

// stepPacHard commits the latched turn only when it is open, then
// continues in the current heading if that cell is open.
func (g *Game) stepPacHard() {
	snd, round := g.env.Snd, g.env.Round

	if !g.isWall(g.px+g.nextDX, g.py+g.nextDY) {
		g.dx, g.dy = g.nextDX, g.nextDY
	}
	nx, ny := g.px+g.dx, g.py+g.dy
	if !g.isWall(nx, ny) {
		g.px, g.py = nx, ny
	}
	if g.cells[g.py][g.px] == cellPellet {
		g.cells[g.py][g.px] = cellEmpty
		g.pelletsLeft--
		round.AddScore(1)
		snd.Score()
	}
}

// stepGhostEasy closes the larger axis gap by one, wrapping.
func (g *Game) stepGhostEasy() {
	if abs(g.gx-g.px) > abs(g.gy-g.py) {
		if g.gx < g.px {
			g.gx++
		} else {
			g.gx--
		}
	} else {
		if g.gy < g.py {
			g.gy++
		} else {
			g.gy--
		}
	}
	g.gx = (g.gx + pixel.Width) % pixel.Width
	g.gy = (g.gy + pixel.Height) % pixel.Height
}

// stepGhostHard greedily picks the open neighbor with the smallest
// Manhattan distance to the player, breaking ties randomly.
func (g *Game) stepGhostHard() {
	bestD := 999
	bx, by := g.gx, g.gy
	dirs := [4][2]int{{0, 1}, {0, -1}, {1, 0}, {-1, 0}}
	for _, d := range dirs {
		nx, ny := g.gx+d[0], g.gy+d[1]
		if g.isWall(nx, ny) {
			continue
		}
		dist := abs(nx-g.px) + abs(ny-g.py)
		if dist < bestD || (dist == bestD && g.env.Rand.Intn(2) == 1) {
			bestD = dist
			bx, by = nx, ny
		}
	}
	g.gx, g.gy = bx, by
}

func (g *Game) Draw(now clock.Ticks, fb *pixel.Surface) {
	fb.Clear(pixel.RGB{})
	if g.hard {
		for y := range pixel.Height {
			for x := range pixel.Width {
				switch g.cells[y][x] {
				case cellWall:
					fb.Set(x, y, pixel.RGB{B: 24})
				case cellPellet:
					fb.Set(x, y, pixel.RGB{R: 170, G: 150, B: 55})
				}
			}
		}
	} else {
		for y := range pixel.Height {
			for x := range pixel.Width {
				if g.pellets[y][x] {
					fb.Set(x, y, pixel.RGB{G: 28, B: 45})
				}
			}
		}
	}
	fb.Set(g.gx, g.gy, pixel.RGB{R: 45})
	fb.Set(g.px, g.py, pixel.RGB{R: 255, G: 95})
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
