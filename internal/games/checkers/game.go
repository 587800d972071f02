// Package checkers implements 8x8 checkers with forced captures, in a
// single-player flavor against a greedy scoring opponent and a
// hot-seat two-player flavor.
//
// Board cells: 0 empty, 1 P1 man, 2 P1 king, 3 P2 man, 4 P2 king.
// P1 moves up the board (negative y), P2 moves down.
package checkers

import (
	"github.com/avolkov/ledboy/internal/clock"
	"github.com/avolkov/ledboy/internal/games"
	"github.com/avolkov/ledboy/internal/input"
	"github.com/avolkov/ledboy/internal/pixel"
	"github.com/avolkov/ledboy/internal/registry"
)

const (
	empty = iota
	p1Man
	p1King
	p2Man
	p2King
)

const (
	aiThinkDelay = 500
	captureScore = 10
)

// move is one legal move; capture moves record the jumped square.
type move struct {
	fromX, fromY int
	toX, toY     int
	capX, capY   int
	capture      bool
}

// Game is one checkers round.
type Game struct {
	env  *games.Env
	twoP bool

	board  [pixel.Height][pixel.Width]int
	turn   int // 1 or 2
	cx, cy int

	selected   bool
	selX, selY int
	moves      []move // legal moves for the selected piece
	waiting    bool
	thinkAt    clock.Ticks
}

func init() {
	registry.Register(registry.Info{ID: "checkers", Title: "Checkers AI", Order: 14}, func(env *games.Env) games.Game {
		return &Game{env: env}
	})
	registry.Register(registry.Info{ID: "checkers_2p", Title: "Checkers 2P", Order: 15}, func(env *games.Env) games.Game {
		return &Game{env: env, twoP: true}
	})
}

func (g *Game) Init(now clock.Ticks) {
	g.board = [pixel.Height][pixel.Width]int{}
	for y := 0; y < 3; y++ {
		for x := range pixel.Width {
			if (x+y)%2 == 1 {
				g.board[y][x] = p2Man
			}
		}
	}
	for y := 5; y < pixel.Height; y++ {
		for x := range pixel.Width {
			if (x+y)%2 == 1 {
				g.board[y][x] = p1Man
			}
		}
	}
	g.turn = 1
	g.cx, g.cy = 0, 5
	g.selected = false
	g.moves = nil
	g.waiting = false
}

func owner(piece int) int {
	switch piece {
	case p1Man, p1King:
		return 1
	case p2Man, p2King:
		return 2
	}
	return 0
}

func isKing(piece int) bool { return piece == p1King || piece == p2King }

func inBoard(x, y int) bool {
	return x >= 0 && x < pixel.Width && y >= 0 && y < pixel.Height
}

// directions returns the diagonal steps a piece may take.
func directions(piece int) [][2]int {
	if isKing(piece) {
		return [][2]int{{-1, -1}, {1, -1}, {-1, 1}, {1, 1}}
	}
	if owner(piece) == 1 {
		return [][2]int{{-1, -1}, {1, -1}}
	}
	return [][2]int{{-1, 1}, {1, 1}}
}

// pieceMoves lists the moves of one piece, ignoring the forced-capture
// rule; movesFor applies it.
func (g *Game) pieceMoves(x, y int) []move {
	piece := g.board[y][x]
	var out []move
	for _, d := range directions(piece) {
		nx, ny := x+d[0], y+d[1]
		if !inBoard(nx, ny) {
			continue
		}
		if g.board[ny][nx] == empty {
			out = append(out, move{fromX: x, fromY: y, toX: nx, toY: ny})
			continue
		}
		if owner(g.board[ny][nx]) == owner(piece) {
			continue
		}
		jx, jy := nx+d[0], ny+d[1]
		if inBoard(jx, jy) && g.board[jy][jx] == empty {
			out = append(out, move{
				fromX: x, fromY: y,
				toX: jx, toY: jy,
				capX: nx, capY: ny,
				capture: true,
			})
		}
	}
	return out
}

// movesFor lists a side's legal moves. If any capture exists, only
// captures are legal.
func (g *Game) movesFor(side int) []move {
	var all, jumps []move
	for y := range pixel.Height {
		for x := range pixel.Width {
			if owner(g.board[y][x]) != side {
				continue
			}
			for _, m := range g.pieceMoves(x, y) {
				all = append(all, m)
				if m.capture {
					jumps = append(jumps, m)
				}
			}
		}
	}
	if len(jumps) > 0 {
		return jumps
	}
	return all
}

// execute applies a move and handles capture scoring and promotion.
func (g *Game) execute(m move) {
	snd, round := g.env.Snd, g.env.Round

	piece := g.board[m.fromY][m.fromX]
	g.board[m.fromY][m.fromX] = empty
	g.board[m.toY][m.toX] = piece

	if m.capture {
		g.board[m.capY][m.capX] = empty
		if g.turn == 1 || g.twoP {
			round.AddScore(captureScore)
		}
		snd.Score()
	}

	if piece == p1Man && m.toY == 0 {
		g.board[m.toY][m.toX] = p1King
		snd.Win()
	} else if piece == p2Man && m.toY == pixel.Height-1 {
		g.board[m.toY][m.toX] = p2King
		snd.Win()
	}
}

// opponentMove greedily scores every legal move: captures dominate,
// promotions rank next, then board advancement with a random nudge.
func (g *Game) opponentMove() {
	legal := g.movesFor(2)
	if len(legal) == 0 {
		g.env.Round.Finish(true, "P1 Wins")
		return
	}

	best := legal[0]
	bestScore := -1
	for _, m := range legal {
		s := 0
		if m.capture {
			s += 100
		}
		if m.toY == pixel.Height-1 {
			s += 50
		}
		s += m.toY * 5
		s += g.env.Rand.Intn(6)
		if s > bestScore {
			bestScore = s
			best = m
		}
	}
	g.execute(best)
	g.turn = 1
	if len(g.movesFor(1)) == 0 {
		g.env.Round.Finish(false, "AI Wins")
	}
}

func (g *Game) endTurn(now clock.Ticks) {
	round := g.env.Round

	g.turn = 3 - g.turn
	g.selected = false
	g.moves = nil

	if len(g.movesFor(g.turn)) == 0 {
		// The side to move is stuck or wiped out.
		if g.turn == 1 {
			if g.twoP {
				round.Finish(true, "P2 Wins")
			} else {
				round.Finish(false, "AI Wins")
			}
		} else {
			round.Finish(true, "P1 Wins")
		}
		return
	}

	if !g.twoP && g.turn == 2 {
		g.waiting = true
		g.thinkAt = now
	}
}

func (g *Game) Update(now clock.Ticks) {
	in, snd := g.env.In, g.env.Snd

	if g.waiting {
		in.ClearEdges()
		if clock.Diff(now, g.thinkAt) >= aiThinkDelay {
			g.waiting = false
			g.opponentMove()
		}
		return
	}

	if in.TakePress(input.Up) && g.cy > 0 {
		g.cy--
		snd.Press()
	}
	if in.TakePress(input.Down) && g.cy < pixel.Height-1 {
		g.cy++
		snd.Press()
	}
	if in.TakePress(input.Left) && g.cx > 0 {
		g.cx--
		snd.Press()
	}
	if in.TakePress(input.Right) && g.cx < pixel.Width-1 {
		g.cx++
		snd.Press()
	}

	if !in.TakePress(input.Action) {
		return
	}

	if g.selected {
		if g.cx == g.selX && g.cy == g.selY {
			g.selected = false
			g.moves = nil
			snd.Press()
			return
		}
		for _, m := range g.moves {
			if m.toX == g.cx && m.toY == g.cy {
				g.execute(m)
				g.endTurn(now)
				return
			}
		}
		snd.Hit()
		return
	}

	if owner(g.board[g.cy][g.cx]) != g.turn {
		snd.Hit()
		return
	}

	legal := g.movesFor(g.turn)
	var mine []move
	for _, m := range legal {
		if m.fromX == g.cx && m.fromY == g.cy {
			mine = append(mine, m)
		}
	}
	if len(mine) == 0 {
		snd.Hit()
		return
	}
	g.selected = true
	g.selX, g.selY = g.cx, g.cy
	g.moves = mine
	snd.Press()
}

func (g *Game) Draw(now clock.Ticks, fb *pixel.Surface) {
	for y := range pixel.Height {
		for x := range pixel.Width {
			if (x+y)%2 == 1 {
				fb.Set(x, y, pixel.RGB{R: 15, G: 15, B: 15})
			} else {
				fb.Set(x, y, pixel.RGB{R: 5, G: 5, B: 5})
			}
		}
	}

	for y := range pixel.Height {
		for x := range pixel.Width {
			switch g.board[y][x] {
			case p1Man:
				fb.Set(x, y, pixel.RGB{G: 52})
			case p1King:
				fb.Set(x, y, pixel.RGB{G: 90, B: 30})
			case p2Man:
				fb.Set(x, y, pixel.RGB{R: 55})
			case p2King:
				fb.Set(x, y, pixel.RGB{R: 90, B: 30})
			}
		}
	}

	if g.selected {
		fb.Set(g.selX, g.selY, pixel.RGB{R: 100, G: 100})
		for _, m := range g.moves {
			fb.Set(m.toX, m.toY, pixel.RGB{R: 50, G: 50})
		}
	}

	if g.waiting {
		// Thinking indicator: blink the outer rows.
		if (uint32(now)/200)%2 == 0 {
			for x := range pixel.Width {
				fb.Set(x, 0, pixel.RGB{R: 40})
				fb.Set(x, pixel.Height-1, pixel.RGB{R: 40})
			}
		}
		return
	}

	if (uint32(now)/300)%2 == 0 {
		fb.Set(g.cx, g.cy, pixel.RGB{R: 80, G: 80, B: 80})
	}
}
