// Package shooter implements the fixed-row space shooter: enemies
// drift down from the top and return fire while the ship defends the
// bottom row.
package shooter

import (
	"github.com/avolkov/ledboy/internal/clock"
	"github.com/avolkov/ledboy/internal/games"
	"github.com/avolkov/ledboy/internal/input"
	"github.com/avolkov/ledboy/internal/pixel"
	"github.com/avolkov/ledboy/internal/registry"
)

const (
	maxPlayerBullets = 6
	maxEnemyBullets  = 5
	maxEnemies       = 8

	shipMoveRepeat  = 125
	shootCooldown   = 320
	playerBulletInt = 130
	enemyBulletInt  = 190
	enemyFireEvery  = 850

	startEnemyStep  = 720
	minEnemyStep    = 300
	startSpawnEvery = 1350
	minSpawnEvery   = 500
)

type point struct {
	x, y int
}

// Game is one shooter round.
type Game struct {
	env *games.Env

	shipX         int
	playerBullets []point
	enemyBullets  []point
	enemies       []point

	enemyStep  int32
	spawnEvery int32

	lastMove    clock.Ticks
	lastShot    clock.Ticks
	lastPBullet clock.Ticks
	lastEBullet clock.Ticks
	lastEStep   clock.Ticks
	lastSpawn   clock.Ticks
	lastEFire   clock.Ticks
}

func init() {
	registry.Register(registry.Info{ID: "shooter", Title: "Space Shooter", Order: 8}, func(env *games.Env) games.Game {
		return &Game{env: env}
	})
}

func (g *Game) Init(now clock.Ticks) {
	g.shipX = 3
	g.playerBullets = g.playerBullets[:0]
	g.enemyBullets = g.enemyBullets[:0]
	g.enemies = g.enemies[:0]
	g.enemyStep = startEnemyStep
	g.spawnEvery = startSpawnEvery
	g.lastMove = now
	g.lastShot = now
	g.lastPBullet = now
	g.lastEBullet = now
	g.lastEStep = now
	g.lastSpawn = now
	g.lastEFire = now
}

func (g *Game) Update(now clock.Ticks) {
	in, snd, round := g.env.In, g.env.Snd, g.env.Round

	if clock.Diff(now, g.lastMove) >= shipMoveRepeat {
		if in.IsDown(input.Left) && g.shipX > 0 {
			g.lastMove = now
			g.shipX--
		} else if in.IsDown(input.Right) && g.shipX < pixel.Width-1 {
			g.lastMove = now
			g.shipX++
		}
	}

	if (in.TakePress(input.Up) || in.TakePress(input.Action)) &&
		clock.Diff(now, g.lastShot) >= shootCooldown {
		g.lastShot = now
		if len(g.playerBullets) < maxPlayerBullets {
			g.playerBullets = append(g.playerBullets, point{x: g.shipX, y: 6})
			snd.Press()
		}
	}

	if clock.Diff(now, g.lastPBullet) >= playerBulletInt {
		g.lastPBullet = now
		kept := g.playerBullets[:0]
		for _, b := range g.playerBullets {
			b.y--
			if b.y >= 0 {
				kept = append(kept, b)
			}
		}
		g.playerBullets = kept
	}

	if clock.Diff(now, g.lastSpawn) >= g.spawnEvery {
		g.lastSpawn = now
		if len(g.enemies) < maxEnemies {
			g.enemies = append(g.enemies, point{x: g.env.Rand.Intn(pixel.Width), y: 0})
		}
	}

	if clock.Diff(now, g.lastEStep) >= g.enemyStep {
		g.lastEStep = now
		for i := range g.enemies {
			if g.env.Rand.Intn(4) == 0 {
				nx := g.enemies[i].x + 1 - 2*g.env.Rand.Intn(2)
				if nx >= 0 && nx < pixel.Width {
					g.enemies[i].x = nx
				}
			}
			g.enemies[i].y++
			if g.enemies[i].y >= pixel.Height-1 {
				snd.Hit()
				round.Finish(false, "Line broken")
				return
			}
		}
	}

	if clock.Diff(now, g.lastEFire) >= enemyFireEvery {
		g.lastEFire = now
		if len(g.enemies) > 0 && len(g.enemyBullets) < maxEnemyBullets {
			e := g.enemies[g.env.Rand.Intn(len(g.enemies))]
			g.enemyBullets = append(g.enemyBullets, point{x: e.x, y: e.y + 1})
		}
	}

	if clock.Diff(now, g.lastEBullet) >= enemyBulletInt {
		g.lastEBullet = now
		kept := g.enemyBullets[:0]
		for _, b := range g.enemyBullets {
			b.y++
			if b.y == pixel.Height-1 && b.x == g.shipX {
				snd.Hit()
				round.Finish(false, "Shot down")
				return
			}
			if b.y <= pixel.Height-1 {
				kept = append(kept, b)
			}
		}
		g.enemyBullets = kept
	}

	keptBullets := g.playerBullets[:0]
	for _, b := range g.playerBullets {
		hit := false
		for i, e := range g.enemies {
			if b.x == e.x && b.y == e.y {
				g.enemies = append(g.enemies[:i], g.enemies[i+1:]...)
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
	g.playerBullets = keptBullets

	g.enemyStep = int32(max(minEnemyStep, startEnemyStep-round.Score()*2))
	g.spawnEvery = int32(max(minSpawnEvery, startSpawnEvery-round.Score()*5))
}

func (g *Game) Draw(now clock.Ticks, fb *pixel.Surface) {
	fb.Clear(pixel.RGB{})
	for _, e := range g.enemies {
		fb.Set(e.x, e.y, pixel.RGB{R: 46, B: 20})
	}
	for _, b := range g.playerBullets {
		fb.Set(b.x, b.y, pixel.RGB{R: 65, G: 65, B: 65})
	}
	for _, b := range g.enemyBullets {
		fb.Set(b.x, b.y, pixel.RGB{R: 55, G: 10})
	}
	fb.Set(g.shipX, pixel.Height-1, pixel.RGB{G: 60, B: 10})
}
