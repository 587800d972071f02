// Package pong implements the single-player pong round: the player
// guards the bottom row while a tracking paddle guards the top, and
// survival is scored per return.
package pong

import (
	"github.com/avolkov/ledboy/internal/clock"
	"github.com/avolkov/ledboy/internal/games"
	"github.com/avolkov/ledboy/internal/input"
	"github.com/avolkov/ledboy/internal/pixel"
	"github.com/avolkov/ledboy/internal/registry"
)

const (
	paddleWidth = 3

	playerRepeat  = 60
	aiRepeat      = 110
	startMoveIntv = 155
	minMoveIntv   = 50
	aiMissBonus   = 20
)

// Game is one pong round.
type Game struct {
	env *games.Env

	px     int // player paddle left edge, bottom row
	ax     int // opponent paddle left edge, top row
	bx, by int
	vx, vy int

	moveInterval int32
	lastMove     clock.Ticks
	lastPlayer   clock.Ticks
	lastAI       clock.Ticks
}

func init() {
	registry.Register(registry.Info{ID: "pong", Title: "Pong", Order: 12}, func(env *games.Env) games.Game {
		return &Game{env: env}
	})
}

func (g *Game) resetBall() {
	g.bx, g.by = 4, 4
	g.vx = 1 - 2*g.env.Rand.Intn(2)
	g.vy = 1
}

func (g *Game) Init(now clock.Ticks) {
	g.px = 2
	g.ax = 2
	g.resetBall()
	g.moveInterval = startMoveIntv
	g.lastMove = now
	g.lastPlayer = now
	g.lastAI = now
}

func (g *Game) Update(now clock.Ticks) {
	if g.env.HandlePause() {
		return
	}

	in, snd, round := g.env.In, g.env.Snd, g.env.Round

	if clock.Diff(now, g.lastPlayer) >= playerRepeat {
		if in.IsDown(input.Left) && g.px > 0 {
			g.lastPlayer = now
			g.px--
		} else if in.IsDown(input.Right) && g.px < pixel.Width-paddleWidth {
			g.lastPlayer = now
			g.px++
		}
	}

	// The opponent trails the ball at its own rate.
	if clock.Diff(now, g.lastAI) >= aiRepeat {
		g.lastAI = now
		target := g.bx - 1
		if target < 0 {
			target = 0
		}
		if target > pixel.Width-paddleWidth {
			target = pixel.Width - paddleWidth
		}
		if g.ax < target {
			g.ax++
		} else if g.ax > target {
			g.ax--
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

	if ny == 0 {
		if nx >= g.ax && nx < g.ax+paddleWidth {
			g.vy = 1
			ny = g.by + g.vy
		} else {
			// Opponent missed: score big and serve again, faster.
			round.AddScore(aiMissBonus)
			snd.Score()
			g.resetBall()
			g.moveInterval = max(minMoveIntv, g.moveInterval-1)
			return
		}
	}

	if ny == pixel.Height-1 {
		if nx >= g.px && nx < g.px+paddleWidth {
			g.vy = -1
			if spin := nx - (g.px + 1); spin != 0 {
				g.vx = spin
			}
			ny = g.by + g.vy
			round.AddScore(1)
			snd.Press()
		} else {
			snd.Hit()
			round.Finish(false, "Missed")
			return
		}
	}

	g.bx, g.by = nx, ny
}

func (g *Game) Draw(now clock.Ticks, fb *pixel.Surface) {
	fb.Clear(pixel.RGB{})
	for i := range paddleWidth {
		fb.Set(g.ax+i, 0, pixel.RGB{R: 80})
		fb.Set(g.px+i, pixel.Height-1, pixel.RGB{G: 80})
	}
	fb.Set(g.bx, g.by, pixel.RGB{R: 80, G: 80, B: 80})
}
