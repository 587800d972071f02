// Package snake implements the two snake variants: walls kill, or the
// playfield wraps around.
package snake

import (
	"github.com/avolkov/ledboy/internal/clock"
	"github.com/avolkov/ledboy/internal/games"
	"github.com/avolkov/ledboy/internal/input"
	"github.com/avolkov/ledboy/internal/pixel"
	"github.com/avolkov/ledboy/internal/registry"
)

const (
	startInterval = 280 // ms per step
	minInterval   = 100
	speedUpPerBit = 10
	spawnRetries  = 100
)

// Game is one snake round. Body cells are stored head-first in fixed
// arrays sized for the full board.
type Game struct {
	env  *games.Env
	wrap bool

	x, y   [pixel.Count]int
	length int

	dx, dy         int
	nextDX, nextDY int

	foodX, foodY int

	moveInterval int32
	lastMove     clock.Ticks
}

func init() {
	registry.Register(registry.Info{ID: "snake", Title: "Snake (Wall)", Order: 0}, func(env *games.Env) games.Game {
		return &Game{env: env}
	})
	registry.Register(registry.Info{ID: "snake_wrap", Title: "Snake (Wrap)", Order: 1}, func(env *games.Env) games.Game {
		return &Game{env: env, wrap: true}
	})
}

// Init places the snake at mid-board heading right.
func (g *Game) Init(now clock.Ticks) {
	g.length = 3
	g.x[0], g.y[0] = 4, 4
	g.x[1], g.y[1] = 3, 4
	g.x[2], g.y[2] = 2, 4
	g.dx, g.dy = 1, 0
	g.nextDX, g.nextDY = 1, 0
	g.moveInterval = startInterval
	g.lastMove = now
	g.placeFood()
}

// placeFood samples positions until one misses the body, falling back
// to the origin after a bounded number of attempts.
func (g *Game) placeFood() {
	for range spawnRetries {
		fx := g.env.Rand.Intn(pixel.Width)
		fy := g.env.Rand.Intn(pixel.Height)
		if !g.occupied(fx, fy) {
			g.foodX, g.foodY = fx, fy
			return
		}
	}
	g.foodX, g.foodY = 0, 0
}

func (g *Game) occupied(x, y int) bool {
	for i := range g.length {
		if g.x[i] == x && g.y[i] == y {
			return true
		}
	}
	return false
}

// Update latches direction input every poll but only commits it at the
// next simulation step, rejecting 180-degree reversals.
func (g *Game) Update(now clock.Ticks) {
	if g.env.HandlePause() {
		return
	}

	in, snd := g.env.In, g.env.Snd
	switch {
	case in.TakePress(input.Up) && g.dy != 1:
		g.nextDX, g.nextDY = 0, -1
		snd.Press()
	case in.TakePress(input.Down) && g.dy != -1:
		g.nextDX, g.nextDY = 0, 1
		snd.Press()
	case in.TakePress(input.Left) && g.dx != 1:
		g.nextDX, g.nextDY = -1, 0
		snd.Press()
	case in.TakePress(input.Right) && g.dx != -1:
		g.nextDX, g.nextDY = 1, 0
		snd.Press()
	}

	if clock.Diff(now, g.lastMove) < g.moveInterval {
		return
	}
	g.lastMove = now

	g.dx, g.dy = g.nextDX, g.nextDY
	nx := g.x[0] + g.dx
	ny := g.y[0] + g.dy

	if g.wrap {
		nx = (nx + pixel.Width) % pixel.Width
		ny = (ny + pixel.Height) % pixel.Height
	} else if nx < 0 || nx >= pixel.Width || ny < 0 || ny >= pixel.Height {
		snd.Hit()
		g.env.Round.Finish(false, "Hit wall")
		return
	}

	if g.occupied(nx, ny) {
		snd.Hit()
		g.env.Round.Finish(false, "Hit body")
		return
	}

	ate := nx == g.foodX && ny == g.foodY
	if ate && g.length < pixel.Count {
		g.length++
	}

	for i := g.length - 1; i > 0; i-- {
		g.x[i] = g.x[i-1]
		g.y[i] = g.y[i-1]
	}
	g.x[0], g.y[0] = nx, ny

	if ate {
		g.env.Round.AddScore(10)
		snd.Score()
		if g.length == pixel.Count {
			g.env.Round.Finish(true, "Board full")
			return
		}
		g.placeFood()
		if g.moveInterval > minInterval {
			g.moveInterval -= speedUpPerBit
		}
	}
}

// Draw paints food, then the body over it, head brightest. The wrap
// variant uses a purple scheme so the two modes read differently at a
// glance.
func (g *Game) Draw(now clock.Ticks, fb *pixel.Surface) {
	fb.Clear(pixel.RGB{})

	head := pixel.RGB{R: 30, G: 130, B: 30}
	body := pixel.RGB{R: 20, G: 70, B: 20}
	food := pixel.RGB{R: 85, G: 12, B: 12}
	if g.wrap {
		head = pixel.RGB{R: 150, G: 20, B: 150}
		body = pixel.RGB{R: 90, G: 35, B: 90}
		food = pixel.RGB{G: 85, B: 85}
	}

	fb.Set(g.foodX, g.foodY, food)
	for i := range g.length {
		c := body
		if i == 0 {
			c = head
		}
		fb.Set(g.x[i], g.y[i], c)
	}
}
