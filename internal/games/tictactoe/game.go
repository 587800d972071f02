// Package tictactoe implements the 3x3 mark game in two flavors: a
// single-player round against a rule-based opponent and a hot-seat
// two-player round.
package tictactoe

import (
	"github.com/avolkov/ledboy/internal/clock"
	"github.com/avolkov/ledboy/internal/games"
	"github.com/avolkov/ledboy/internal/input"
	"github.com/avolkov/ledboy/internal/pixel"
	"github.com/avolkov/ledboy/internal/registry"
)

const aiThinkDelay = 500

// Board outcome codes returned by winner.
const (
	outcomeNone = iota
	outcomeP1
	outcomeP2
	outcomeDraw
)

// cellCoords maps a board column or row to its matrix coordinate.
var cellCoords = [3]int{1, 3, 6}

// Game is one tic-tac-toe round. Cells hold 0 (empty), 1, or 2.
type Game struct {
	env     *games.Env
	twoP    bool
	board   [3][3]int
	cx, cy  int
	turn    int
	waiting bool // single-player: opponent is "thinking"
	thinkAt clock.Ticks
}

func init() {
	registry.Register(registry.Info{ID: "tictactoe", Title: "TicTacToe AI", Order: 10}, func(env *games.Env) games.Game {
		return &Game{env: env}
	})
	registry.Register(registry.Info{ID: "tictactoe_2p", Title: "TicTacToe 2P", Order: 11}, func(env *games.Env) games.Game {
		return &Game{env: env, twoP: true}
	})
}

func (g *Game) Init(now clock.Ticks) {
	g.board = [3][3]int{}
	g.cx, g.cy = 1, 1
	g.turn = 1
	g.waiting = false
}

// winner reports the board outcome.
func (g *Game) winner() int {
	lines := [8][3][2]int{
		{{0, 0}, {1, 0}, {2, 0}},
		{{0, 1}, {1, 1}, {2, 1}},
		{{0, 2}, {1, 2}, {2, 2}},
		{{0, 0}, {0, 1}, {0, 2}},
		{{1, 0}, {1, 1}, {1, 2}},
		{{2, 0}, {2, 1}, {2, 2}},
		{{0, 0}, {1, 1}, {2, 2}},
		{{2, 0}, {1, 1}, {0, 2}},
	}
	for _, ln := range lines {
		a := g.board[ln[0][1]][ln[0][0]]
		if a != 0 && a == g.board[ln[1][1]][ln[1][0]] && a == g.board[ln[2][1]][ln[2][0]] {
			return a
		}
	}
	for y := range 3 {
		for x := range 3 {
			if g.board[y][x] == 0 {
				return outcomeNone
			}
		}
	}
	return outcomeDraw
}

// findLineMove returns a cell that completes a line for the given
// mark, or ok=false.
func (g *Game) findLineMove(mark int) (x, y int, ok bool) {
	for cy := range 3 {
		for cx := range 3 {
			if g.board[cy][cx] != 0 {
				continue
			}
			g.board[cy][cx] = mark
			w := g.winner()
			g.board[cy][cx] = 0
			if w == mark {
				return cx, cy, true
			}
		}
	}
	return 0, 0, false
}

// opponentMove plays win, then block, then center, then first free.
func (g *Game) opponentMove() {
	if x, y, ok := g.findLineMove(2); ok {
		g.board[y][x] = 2
		return
	}
	if x, y, ok := g.findLineMove(1); ok {
		g.board[y][x] = 2
		return
	}
	if g.board[1][1] == 0 {
		g.board[1][1] = 2
		return
	}
	for y := range 3 {
		for x := range 3 {
			if g.board[y][x] == 0 {
				g.board[y][x] = 2
				return
			}
		}
	}
}

func (g *Game) settle(w int) bool {
	round := g.env.Round
	switch w {
	case outcomeP1:
		if g.twoP {
			round.Finish(true, "P1 Wins")
		} else {
			round.AddScore(5)
			round.Finish(true, "You Win")
		}
	case outcomeP2:
		if g.twoP {
			round.Finish(true, "P2 Wins")
		} else {
			round.Finish(false, "AI Wins")
		}
	case outcomeDraw:
		round.Finish(false, "Draw")
	default:
		return false
	}
	return true
}

func (g *Game) Update(now clock.Ticks) {
	in, snd, round := g.env.In, g.env.Snd, g.env.Round

	if !g.twoP && g.waiting {
		in.ClearEdges()
		if clock.Diff(now, g.thinkAt) >= aiThinkDelay {
			g.waiting = false
			g.opponentMove()
			snd.Press()
			g.settle(g.winner())
		}
		return
	}

	if in.TakePress(input.Up) && g.cy > 0 {
		g.cy--
		snd.Press()
	}
	if in.TakePress(input.Down) && g.cy < 2 {
		g.cy++
		snd.Press()
	}
	if in.TakePress(input.Left) && g.cx > 0 {
		g.cx--
		snd.Press()
	}
	if in.TakePress(input.Right) && g.cx < 2 {
		g.cx++
		snd.Press()
	}

	if !in.TakePress(input.Action) {
		return
	}

	if g.board[g.cy][g.cx] != 0 {
		snd.Hit()
		return
	}

	g.board[g.cy][g.cx] = g.turn
	snd.Score()
	if g.twoP {
		round.AddScore(1)
	}

	if g.settle(g.winner()) {
		return
	}

	if g.twoP {
		g.turn = 3 - g.turn
	} else {
		g.waiting = true
		g.thinkAt = now
	}
}

func (g *Game) Draw(now clock.Ticks, fb *pixel.Surface) {
	fb.Clear(pixel.RGB{})

	grid := pixel.RGB{R: 8, G: 8, B: 8}
	for i := range pixel.Width {
		fb.Set(2, i, grid)
		fb.Set(5, i, grid)
		fb.Set(i, 2, grid)
		fb.Set(i, 5, grid)
	}

	for y := range 3 {
		for x := range 3 {
			switch g.board[y][x] {
			case 1:
				fb.Set(cellCoords[x], cellCoords[y], pixel.RGB{G: 52})
			case 2:
				fb.Set(cellCoords[x], cellCoords[y], pixel.RGB{R: 55})
			}
		}
	}

	if g.twoP || !g.waiting {
		cur := pixel.RGB{B: 65}
		if g.board[g.cy][g.cx] != 0 {
			cur = pixel.RGB{R: 65, G: 65, B: 65}
		}
		fb.Set(cellCoords[g.cx], cellCoords[g.cy], cur)
	}
}
