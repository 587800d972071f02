// Package tetris implements a 5-piece tetromino stacker on the 8x8
// board. The Action button rotates; there is no pause in this game.
package tetris

import (
	"github.com/avolkov/ledboy/internal/clock"
	"github.com/avolkov/ledboy/internal/games"
	"github.com/avolkov/ledboy/internal/input"
	"github.com/avolkov/ledboy/internal/pixel"
	"github.com/avolkov/ledboy/internal/registry"
)

// shapes holds per-piece, per-rotation cell offsets as parallel x/y
// rows. Pieces: I, O, T, L, Z.
var shapes = [5][4][2][4]int{
	{ // I
		{{0, 1, 2, 3}, {1, 1, 1, 1}},
		{{2, 2, 2, 2}, {0, 1, 2, 3}},
		{{0, 1, 2, 3}, {2, 2, 2, 2}},
		{{1, 1, 1, 1}, {0, 1, 2, 3}},
	},
	{ // O
		{{1, 2, 1, 2}, {0, 0, 1, 1}},
		{{1, 2, 1, 2}, {0, 0, 1, 1}},
		{{1, 2, 1, 2}, {0, 0, 1, 1}},
		{{1, 2, 1, 2}, {0, 0, 1, 1}},
	},
	{ // T
		{{1, 0, 1, 2}, {0, 1, 1, 1}},
		{{1, 1, 2, 1}, {0, 1, 1, 2}},
		{{0, 1, 2, 1}, {1, 1, 1, 2}},
		{{1, 0, 1, 1}, {0, 1, 1, 2}},
	},
	{ // L
		{{0, 0, 0, 1}, {0, 1, 2, 2}},
		{{0, 1, 2, 2}, {1, 1, 1, 0}},
		{{0, 1, 1, 1}, {0, 0, 1, 2}},
		{{0, 0, 1, 2}, {2, 1, 1, 1}},
	},
	{ // Z
		{{1, 2, 0, 1}, {0, 0, 1, 1}},
		{{1, 1, 2, 2}, {0, 1, 1, 2}},
		{{1, 2, 0, 1}, {1, 1, 2, 2}},
		{{0, 0, 1, 1}, {0, 1, 1, 2}},
	},
}

// pieceColors indexes board cell values (piece type + 1).
var pieceColors = [6]pixel.RGB{
	{},
	{B: 0x22},
	{R: 0x22, G: 0x11},
	{G: 0x22},
	{R: 0x22},
	{G: 0x11, B: 0x22},
}

const (
	startDropInterval = 640
	minDropInterval   = 120
	softDropRepeat    = 90
)

// Game is one tetris round.
type Game struct {
	env *games.Env

	board [pixel.Height][pixel.Width]int
	px    int
	py    int
	ptype int
	prot  int

	dropInterval int32
	lastDrop     clock.Ticks
	softDropTime clock.Ticks
}

func init() {
	registry.Register(registry.Info{ID: "tetris", Title: "Tetris", Order: 2}, func(env *games.Env) games.Game {
		return &Game{env: env}
	})
}

func (g *Game) Init(now clock.Ticks) {
	g.board = [pixel.Height][pixel.Width]int{}
	g.dropInterval = startDropInterval
	g.lastDrop = now
	g.softDropTime = now
	g.spawn()
}

func (g *Game) canPlace(x, y, typ, rot int) bool {
	shape := &shapes[typ][rot]
	for i := range 4 {
		bx := x + shape[0][i]
		by := y + shape[1][i]
		if bx < 0 || bx >= pixel.Width || by < 0 || by >= pixel.Height {
			return false
		}
		if g.board[by][bx] != 0 {
			return false
		}
	}
	return true
}

func (g *Game) spawn() {
	g.ptype = g.env.Rand.Intn(len(shapes))
	g.prot = 0
	g.px = 2
	g.py = 0
	if !g.canPlace(g.px, g.py, g.ptype, g.prot) {
		g.env.Snd.Hit()
		g.env.Round.Finish(false, "Stacked out")
	}
}

func (g *Game) lock() {
	shape := &shapes[g.ptype][g.prot]
	for i := range 4 {
		bx := g.px + shape[0][i]
		by := g.py + shape[1][i]
		if bx >= 0 && bx < pixel.Width && by >= 0 && by < pixel.Height {
			g.board[by][bx] = g.ptype + 1
		}
	}
}

// clearLines collapses full rows bottom-up, re-checking a row after the
// stack above it falls into place.
func (g *Game) clearLines() {
	lines := 0
	y := pixel.Height - 1
	for y >= 0 {
		full := true
		for x := range pixel.Width {
			if g.board[y][x] == 0 {
				full = false
				break
			}
		}
		if full {
			lines++
			for row := y; row > 0; row-- {
				g.board[row] = g.board[row-1]
			}
			g.board[0] = [pixel.Width]int{}
		} else {
			y--
		}
	}
	if lines > 0 {
		g.env.Round.AddScore(lines * 10)
		g.env.Snd.Score()
	}
}

func (g *Game) drop() {
	if g.canPlace(g.px, g.py+1, g.ptype, g.prot) {
		g.py++
	} else {
		g.lock()
		g.clearLines()
		g.spawn()
	}
}

func (g *Game) Update(now clock.Ticks) {
	in, snd := g.env.In, g.env.Snd

	if in.TakePress(input.Left) && g.canPlace(g.px-1, g.py, g.ptype, g.prot) {
		g.px--
		snd.Press()
	}
	if in.TakePress(input.Right) && g.canPlace(g.px+1, g.py, g.ptype, g.prot) {
		g.px++
		snd.Press()
	}
	if in.TakePress(input.Action) {
		nr := (g.prot + 1) % 4
		if g.canPlace(g.px, g.py, g.ptype, nr) {
			g.prot = nr
			snd.Press()
		}
	}

	// Soft drop: a press drops immediately, holding repeats.
	if in.TakePress(input.Down) || (in.IsDown(input.Down) && clock.Diff(now, g.softDropTime) >= softDropRepeat) {
		g.softDropTime = now
		g.drop()
	}

	if clock.Diff(now, g.lastDrop) >= g.dropInterval {
		g.lastDrop = now
		g.drop()
	}

	g.dropInterval = int32(max(minDropInterval, startDropInterval-g.env.Round.Score()*3))
}

func (g *Game) Draw(now clock.Ticks, fb *pixel.Surface) {
	fb.Clear(pixel.RGB{})

	for y := range pixel.Height {
		for x := range pixel.Width {
			if v := g.board[y][x]; v != 0 {
				fb.Set(x, y, pieceColors[v])
			}
		}
	}

	shape := &shapes[g.ptype][g.prot]
	falling := pixel.RGB{R: 60, G: 60, B: 60}
	for i := range 4 {
		fb.Set(g.px+shape[0][i], g.py+shape[1][i], falling)
	}
}
