// Package tug implements the two-player tug of war: each pull drags
// the rope marker one cell toward that player's edge, rate-limited so
// button mashing has a speed ceiling.
package tug

import (
	"github.com/avolkov/ledboy/internal/clock"
	"github.com/avolkov/ledboy/internal/games"
	"github.com/avolkov/ledboy/internal/input"
	"github.com/avolkov/ledboy/internal/pixel"
	"github.com/avolkov/ledboy/internal/registry"
)

const (
	ropeRow    = 3
	pullRepeat = 80
)

// Game is one tug round. P1 pulls with Up/Left toward x=0, P2 with
// Down/Right toward x=7.
type Game struct {
	env *games.Env

	pos      int
	lastPull clock.Ticks
}

func init() {
	registry.Register(registry.Info{ID: "tug", Title: "Tug of War", Order: 13}, func(env *games.Env) games.Game {
		return &Game{env: env}
	})
}

func (g *Game) Init(now clock.Ticks) {
	g.pos = 4
	g.lastPull = now
}

func (g *Game) Update(now clock.Ticks) {
	in, snd, round := g.env.In, g.env.Snd, g.env.Round

	p1 := in.TakePress(input.Up) || in.TakePress(input.Left)
	p2 := in.TakePress(input.Down) || in.TakePress(input.Right)

	if clock.Diff(now, g.lastPull) < pullRepeat {
		return
	}

	if p1 {
		g.lastPull = now
		g.pos--
		round.AddScore(1)
		snd.Press()
	}
	if p2 {
		g.lastPull = now
		g.pos++
		round.AddScore(1)
		snd.Press()
	}

	if g.pos <= 0 {
		snd.Win()
		round.Finish(true, "P1 Wins")
	} else if g.pos >= pixel.Width-1 {
		snd.Win()
		round.Finish(true, "P2 Wins")
	}
}

func (g *Game) Draw(now clock.Ticks, fb *pixel.Surface) {
	fb.Clear(pixel.RGB{})
	for x := range pixel.Width {
		fb.Set(x, ropeRow, pixel.RGB{R: 8, G: 8, B: 8})
	}
	fb.Set(0, ropeRow, pixel.RGB{G: 50})
	fb.Set(pixel.Width-1, ropeRow, pixel.RGB{R: 50})
	fb.Set(g.pos, ropeRow, pixel.RGB{R: 65, G: 55})
}
