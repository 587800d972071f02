// Package flappy implements the two flappy variants. Easy moves the
// bird one whole cell per flap; hard runs 8x-scaled vertical physics
// with a two-column pipe and a faster, score-ramped scroll.
package flappy

import (
	"github.com/avolkov/ledboy/internal/clock"
	"github.com/avolkov/ledboy/internal/games"
	"github.com/avolkov/ledboy/internal/input"
	"github.com/avolkov/ledboy/internal/pixel"
	"github.com/avolkov/ledboy/internal/registry"
)

const (
	easyInterval = 200
	hardInterval = 125
	hardMinIntvl = 65

	// Hard-mode physics in 8ths of a cell.
	hardFlapImpulse = -14
	hardGravity     = 4
	hardMaxFall     = 18

	birdCol  = 2 // hard-mode bird column
	hardGap  = 3
	easyGap  = 3
	pipeWide = 2 // hard-mode pipe width
)

// Game is one flappy round.
type Game struct {
	env  *games.Env
	hard bool

	// Hard mode: vertical position and velocity in 8ths of a cell.
	y8   int
	vel8 int

	// Easy mode: whole-cell position and velocity.
	birdY int
	vel   int

	pipeX  int
	gapY   int
	scored bool

	moveInterval int32
	lastMove     clock.Ticks
}

func init() {
	registry.Register(registry.Info{ID: "flappy", Title: "Flappy Easy", Order: 3}, func(env *games.Env) games.Game {
		return &Game{env: env}
	})
	registry.Register(registry.Info{ID: "flappy_hard", Title: "Flappy Hard", Order: 4}, func(env *games.Env) games.Game {
		return &Game{env: env, hard: true}
	})
}

func (g *Game) newPipe() {
	if g.hard {
		g.pipeX = pixel.Width
	} else {
		g.pipeX = pixel.Width - 1
	}
	g.gapY = 1 + g.env.Rand.Intn(4)
	g.scored = false
}

func (g *Game) Init(now clock.Ticks) {
	if g.hard {
		g.y8 = 28
		g.vel8 = 0
		g.moveInterval = hardInterval
	} else {
		g.birdY = 4
		g.vel = 0
		g.moveInterval = easyInterval
	}
	g.lastMove = now
	g.newPipe()
}

func (g *Game) Update(now clock.Ticks) {
	in, snd := g.env.In, g.env.Snd

	if in.TakePress(input.Up) || in.TakePress(input.Action) {
		if g.hard {
			g.vel8 = hardFlapImpulse
		} else {
			g.vel = -2
		}
		snd.Press()
	}

	if clock.Diff(now, g.lastMove) < g.moveInterval {
		return
	}
	g.lastMove = now

	if g.hard {
		g.updateHard()
	} else {
		g.updateEasy()
	}
}

func (g *Game) updateHard() {
	snd, round := g.env.Snd, g.env.Round

	g.vel8 += hardGravity
	if g.vel8 > hardMaxFall {
		g.vel8 = hardMaxFall
	}
	g.y8 += g.vel8
	birdY := g.y8 / 8

	g.pipeX--
	if g.pipeX < -pipeWide {
		g.newPipe()
	}

	if !g.scored && g.pipeX+1 < birdCol {
		g.scored = true
		round.AddScore(1)
		snd.Score()
	}

	if g.y8 < 0 || birdY > pixel.Height-1 {
		snd.Hit()
		round.Finish(false, "Crashed")
		return
	}

	if birdCol >= g.pipeX && birdCol < g.pipeX+pipeWide {
		if birdY < g.gapY || birdY >= g.gapY+hardGap {
			snd.Hit()
			round.Finish(false, "Hit pipe")
			return
		}
	}

	g.moveInterval = int32(max(hardMinIntvl, hardInterval-round.Score()*2))
}

func (g *Game) updateEasy() {
	snd, round := g.env.Snd, g.env.Round

	g.vel++
	g.birdY += g.vel
	if g.birdY < 0 || g.birdY > pixel.Height-1 {
		snd.Hit()
		round.Finish(false, "Crashed")
		return
	}

	g.pipeX--
	if g.pipeX < 0 {
		g.newPipe()
		round.AddScore(10)
		snd.Score()
	}

	if g.pipeX == 0 {
		if g.birdY < g.gapY || g.birdY >= g.gapY+easyGap {
			snd.Hit()
			round.Finish(false, "Hit pipe")
		}
	}
}

func (g *Game) Draw(now clock.Ticks, fb *pixel.Surface) {
	fb.Clear(pixel.RGB{})

	bird := pixel.RGB{R: 70, G: 55}
	if g.hard {
		pipe := pixel.RGB{G: 35, B: 8}
		for x := g.pipeX; x < g.pipeX+pipeWide; x++ {
			for y := range pixel.Height {
				if y < g.gapY || y >= g.gapY+hardGap {
					fb.Set(x, y, pipe)
				}
			}
		}
		fb.Set(birdCol, g.y8/8, bird)
	} else {
		fb.Set(0, g.birdY, bird)
		pipe := pixel.RGB{G: 55}
		for y := range pixel.Height {
			if y < g.gapY || y >= g.gapY+easyGap {
				fb.Set(g.pipeX, y, pipe)
			}
		}
	}
}
