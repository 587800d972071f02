// Package dino implements the endless runner: the runner holds a fixed
// column while ground and air obstacles scroll in, with 8x-scaled
// jump physics and a crouch that ducks under air obstacles.
package dino

import (
	"github.com/avolkov/ledboy/internal/clock"
	"github.com/avolkov/ledboy/internal/games"
	"github.com/avolkov/ledboy/internal/input"
	"github.com/avolkov/ledboy/internal/pixel"
	"github.com/avolkov/ledboy/internal/registry"
)

const (
	dinoCol   = 6
	groundY8  = 56 // ground row 7 in 8ths of a cell
	maxFall8  = 24
	gravity8  = 6
	jump8     = -28
	fastFall8 = 30

	startMoveIntv = 150
	minMoveIntv   = 60
	passSpeedup   = 4

	obstacleGround = 0
	obstacleAir    = 1
)

// Game is one dino round.
type Game struct {
	env *games.Env

	y8       int
	vel8     int
	crouched bool

	// Obstacle scrolls left to right toward the runner.
	ox, oy, ow, oh int
	otype          int
	passed         bool

	moveInterval int32
	lastMove     clock.Ticks
}

func init() {
	registry.Register(registry.Info{ID: "dino", Title: "Dino Run", Order: 17}, func(env *games.Env) games.Game {
		return &Game{env: env}
	})
}

func (g *Game) newObstacle() {
	g.otype = g.env.Rand.Intn(2)
	g.ow = 1 + g.env.Rand.Intn(2)
	if g.otype == obstacleGround {
		g.oh = 1 + g.env.Rand.Intn(3)
		g.oy = pixel.Height - g.oh
	} else {
		g.oh = 1 + g.env.Rand.Intn(2)
		g.oy = 4 + g.env.Rand.Intn(2)
	}
	g.ox = -g.ow
	g.passed = false
}

func (g *Game) Init(now clock.Ticks) {
	g.y8 = groundY8
	g.vel8 = 0
	g.crouched = false
	g.moveInterval = startMoveIntv
	g.lastMove = now
	g.newObstacle()
}

func (g *Game) onGround() bool { return g.y8 >= groundY8 }

// speedScale keeps the jump arc's shape constant as the scroll speeds
// up: physics per step grows as the step shortens.
func (g *Game) speedScale(v int) int {
	return v * startMoveIntv / int(g.moveInterval)
}

func (g *Game) Update(now clock.Ticks) {
	if g.env.HandlePause() {
		return
	}

	in, snd, round := g.env.In, g.env.Snd, g.env.Round

	if in.TakePress(input.Up) && g.onGround() && !g.crouched {
		g.vel8 = g.speedScale(jump8)
		snd.Press()
	}
	if in.TakePress(input.Down) && !g.onGround() {
		g.vel8 += fastFall8
	}
	g.crouched = in.IsDown(input.Down) && g.onGround()

	if clock.Diff(now, g.lastMove) < g.moveInterval {
		return
	}
	g.lastMove = now

	g.vel8 += g.speedScale(gravity8)
	if g.vel8 > maxFall8 {
		g.vel8 = maxFall8
	}
	g.y8 += g.vel8
	if g.y8 >= groundY8 {
		g.y8 = groundY8
		g.vel8 = 0
	}

	g.ox++
	if !g.passed && g.ox > dinoCol {
		g.passed = true
		round.AddScore(1)
		snd.Score()
		g.moveInterval = max(minMoveIntv, g.moveInterval-passSpeedup)
	}
	if g.ox > pixel.Width {
		g.newObstacle()
	}

	if g.collides() {
		snd.Hit()
		round.Finish(false, "Ouch")
	}
}

// collides checks the runner cell against the obstacle span.
func (g *Game) collides() bool {
	if g.ox > dinoCol || g.ox+g.ow <= dinoCol {
		return false
	}
	py := g.y8 / 8
	if g.crouched {
		py = pixel.Height - 1
	}
	return py >= g.oy && py < g.oy+g.oh
}

func (g *Game) Draw(now clock.Ticks, fb *pixel.Surface) {
	fb.Clear(pixel.RGB{})

	// Scrolling ground stripe.
	off := int(uint32(now)/100) % 4
	for x := range pixel.Width {
		c := pixel.RGB{R: 10, G: 10, B: 10}
		if (x+off)%4 < 2 {
			c = pixel.RGB{R: 20, G: 20, B: 20}
		}
		fb.Set(x, pixel.Height-1, c)
	}

	for dx := range g.ow {
		for dy := range g.oh {
			fb.Set(g.ox+dx, g.oy+dy, pixel.RGB{R: 80, G: 40})
		}
	}

	if g.crouched {
		fb.Set(dinoCol, pixel.Height-1, pixel.RGB{G: 40, B: 10})
	} else {
		fb.Set(dinoCol, g.y8/8, pixel.RGB{G: 80, B: 20})
	}
}
