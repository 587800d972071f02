// Package breakout implements the brick-breaker: three brick rows, a
// three-wide paddle on the bottom row, and a ball whose horizontal
// spin comes from where it strikes the paddle.
package breakout

import (
	"github.com/avolkov/ledboy/internal/clock"
	"github.com/avolkov/ledboy/internal/games"
	"github.com/avolkov/ledboy/internal/input"
	"github.com/avolkov/ledboy/internal/pixel"
	"github.com/avolkov/ledboy/internal/registry"
)

const (
	brickRows   = 3
	paddleWidth = 3
	paddleRow   = pixel.Height - 1

	paddleRepeat  = 80
	startMoveIntv = 200
	minMoveIntv   = 80
	clearSpeedup  = 12
)

// Game is one breakout round.
type Game struct {
	env *games.Env

	bricks [brickRows][pixel.Width]bool
	px     int // paddle left edge, 0..5
	bx, by int
	vx, vy int

	moveInterval int32
	lastMove     clock.Ticks
	lastPaddle   clock.Ticks
}

func init() {
	registry.Register(registry.Info{ID: "breakout", Title: "Breakout", Order: 9}, func(env *games.Env) games.Game {
		return &Game{env: env}
	})
}

func (g *Game) resetBall() {
	g.bx, g.by = 3, 6
	g.vx = 1 - 2*g.env.Rand.Intn(2)
	g.vy = -1
}

func (g *Game) resetBricks() {
	for y := range brickRows {
		for x := range pixel.Width {
			g.bricks[y][x] = true
		}
	}
}

func (g *Game) bricksLeft() int {
	n := 0
	for y := range brickRows {
		for x := range pixel.Width {
			if g.bricks[y][x] {
				n++
			}
		}
	}
	return n
}

func (g *Game) Init(now clock.Ticks) {
	g.resetBricks()
	g.px = 2
	g.resetBall()
	g.moveInterval = startMoveIntv
	g.lastMove = now
	g.lastPaddle = now
}

func (g *Game) Update(now clock.Ticks) {
	if g.env.HandlePause() {
		return
	}

	in, snd, round := g.env.In, g.env.Snd, g.env.Round

	if clock.Diff(now, g.lastPaddle) >= paddleRepeat {
		if in.IsDown(input.Left) && g.px > 0 {
			g.lastPaddle = now
			g.px--
		} else if in.IsDown(input.Right) && g.px < pixel.Width-paddleWidth {
			g.lastPaddle = now
			g.px++
		}
	}

	if clock.Diff(now, g.lastMove) < g.moveInterval {
		return
	}
	g.lastMove = now

	nx, ny := g.bx+g.vx, g.by+g.vy

	if nx < 0 || nx > pixel.Width-1 {
		g.vx = -g.vx
		nx = g.bx + g.vx
	}
	if ny < 0 {
		g.vy = -g.vy
		ny = g.by + g.vy
	}

	if ny >= 0 && ny < brickRows && g.bricks[ny][nx] {
		g.bricks[ny][nx] = false
		round.AddScore(1)
		snd.Score()
		g.vy = -g.vy
		ny = g.by + g.vy
	}

	if ny == paddleRow {
		if nx >= g.px && nx < g.px+paddleWidth {
			g.vy = -1
			if spin := nx - (g.px + 1); spin != 0 {
				g.vx = spin
			}
			ny = g.by + g.vy
			snd.Press()
		} else {
			snd.Hit()
			round.Finish(false, "Missed ball")
			return
		}
	}

	g.bx, g.by = nx, ny

	if g.bricksLeft() == 0 {
		round.AddScore(5)
		snd.Win()
		g.resetBricks()
		g.resetBall()
		g.moveInterval = max(minMoveIntv, g.moveInterval-clearSpeedup)
	}
}

func (g *Game) Draw(now clock.Ticks, fb *pixel.Surface) {
	fb.Clear(pixel.RGB{})
	for y := range brickRows {
		for x := range pixel.Width {
			if g.bricks[y][x] {
				fb.Set(x, y, pixel.RGB{R: uint8(35 + y*6), G: uint8(10 + y*4)})
			}
		}
	}
	for i := range paddleWidth {
		fb.Set(g.px+i, paddleRow, pixel.RGB{G: 48, B: 50})
	}
	fb.Set(g.bx, g.by, pixel.RGB{R: 65, G: 65, B: 65})
}
