// Package asteroids implements the falling-rock shooter: rocks descend
// at individually randomized rates, the ship slides along the bottom
// row and fires upward.
package asteroids

import (
	"github.com/avolkov/ledboy/internal/clock"
	"github.com/avolkov/ledboy/internal/games"
	"github.com/avolkov/ledboy/internal/input"
	"github.com/avolkov/ledboy/internal/pixel"
	"github.com/avolkov/ledboy/internal/registry"
)

const (
	maxBullets = 5
	maxRocks   = 8

	shipMoveRepeat = 90
	bulletInterval = 85
	shotCooldown   = 170

	startSpawnInterval = 900
	minSpawnInterval   = 220
)

type bullet struct {
	x, y int
}

// rock falls one cell every interval ms; each rock keeps its own pace.
type rock struct {
	x, y     int
	interval int32
	lastMove clock.Ticks
}

// Game is one asteroids round.
type Game struct {
	env *games.Env

	shipX   int
	bullets []bullet
	rocks   []rock

	spawnInterval int32
	lastMove      clock.Ticks
	lastBullet    clock.Ticks
	lastSpawn     clock.Ticks
	lastShot      clock.Ticks
}

func init() {
	registry.Register(registry.Info{ID: "asteroids", Title: "Asteroids Hard", Order: 5}, func(env *games.Env) games.Game {
		return &Game{env: env}
	})
}

func (g *Game) Init(now clock.Ticks) {
	g.shipX = 3
	g.bullets = g.bullets[:0]
	g.rocks = g.rocks[:0]
	g.spawnInterval = startSpawnInterval
	g.lastMove = now
	g.lastBullet = now
	g.lastSpawn = now
	g.lastShot = now
}

func (g *Game) Update(now clock.Ticks) {
	in, snd, round := g.env.In, g.env.Snd, g.env.Round

	// Held-level movement with its own repeat rate.
	if in.IsDown(input.Left) && clock.Diff(now, g.lastMove) >= shipMoveRepeat {
		g.lastMove = now
		if g.shipX > 0 {
			g.shipX--
			snd.Press()
		}
	}
	if in.IsDown(input.Right) && clock.Diff(now, g.lastMove) >= shipMoveRepeat {
		g.lastMove = now
		if g.shipX < pixel.Width-1 {
			g.shipX++
			snd.Press()
		}
	}

	if (in.TakePress(input.Up) || in.TakePress(input.Action)) && clock.Diff(now, g.lastShot) >= shotCooldown {
		g.lastShot = now
		if len(g.bullets) < maxBullets {
			g.bullets = append(g.bullets, bullet{x: g.shipX, y: 6})
			snd.Press()
		}
	}

	if clock.Diff(now, g.lastBullet) >= bulletInterval {
		g.lastBullet = now
		kept := g.bullets[:0]
		for _, b := range g.bullets {
			b.y--
			if b.y >= 0 {
				kept = append(kept, b)
			}
		}
		g.bullets = kept
	}

	if clock.Diff(now, g.lastSpawn) >= g.spawnInterval {
		g.lastSpawn = now
		if len(g.rocks) < maxRocks {
			interval := int32(max(90, 180+g.env.Rand.Intn(141)-round.Score()*2))
			g.rocks = append(g.rocks, rock{
				x:        g.env.Rand.Intn(pixel.Width),
				y:        0,
				interval: interval,
				lastMove: now,
			})
		}
	}

	kept := g.rocks[:0]
	for _, r := range g.rocks {
		if clock.Diff(now, r.lastMove) >= r.interval {
			r.lastMove = now
			r.y++
		}
		if r.y <= pixel.Height-1 {
			kept = append(kept, r)
		}
	}
	g.rocks = kept

	// Bullet-rock collisions by coordinate equality.
	keptBullets := g.bullets[:0]
	for _, b := range g.bullets {
		hit := false
		for i, r := range g.rocks {
			if b.x == r.x && b.y == r.y {
				g.rocks = append(g.rocks[:i], g.rocks[i+1:]...)
				hit = true
				round.AddScore(1)
				snd.Score()
				break
			}
		}
		if !hit {
			keptBullets = append(keptBullets, b)
		}
	}
	g.bullets = keptBullets

	for _, r := range g.rocks {
		if r.x == g.shipX && r.y == pixel.Height-1 {
			snd.Hit()
			round.Finish(false, "Ship hit")
			return
		}
	}

	g.spawnInterval = int32(max(minSpawnInterval, startSpawnInterval-round.Score()*16))
}

func (g *Game) Draw(now clock.Ticks, fb *pixel.Surface) {
	fb.Clear(pixel.RGB{})
	for _, r := range g.rocks {
		fb.Set(r.x, r.y, pixel.RGB{R: 46, B: 20})
	}
	for _, b := range g.bullets {
		fb.Set(b.x, b.y, pixel.RGB{R: 65, G: 65, B: 65})
	}
	fb.Set(g.shipX, pixel.Height-1, pixel.RGB{G: 60, B: 10})
}
