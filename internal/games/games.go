// Package games defines the contract every game module implements and
// the host surface a module may touch. Modules own all simulation state
// for exactly one round; the host never inspects their internals.
package games

import (
	"math/rand"

	"github.com/avolkov/ledboy/internal/audio"
	"github.com/avolkov/ledboy/internal/clock"
	"github.com/avolkov/ledboy/internal/input"
	"github.com/avolkov/ledboy/internal/pixel"
)

// Game is the polymorphic contract the engine drives. A fresh instance
// is created per round; Init seeds its timers to "now", Update advances
// the simulation at the module's own cadence, Draw composes onto the
// surface. Modules never address hardware directly.
type Game interface {
	Init(now clock.Ticks)
	Update(now clock.Ticks)
	Draw(now clock.Ticks, fb *pixel.Surface)
}

// Round is the host callback surface for the round in progress.
// Implemented by the engine.
type Round interface {
	// AddScore adds n points to the round score.
	AddScore(n int)
	// Score returns the current round score. Several games scale their
	// difficulty ramp off it.
	Score() int
	// Finish ends the round. Idempotent: calls after the round has
	// already ended are ignored.
	Finish(win bool, msg string)
	// TogglePause flips the session pause flag.
	TogglePause()
	// Paused reports the session pause flag.
	Paused() bool
}

// Env is everything a module may use: debounced input, the tone queue,
// a per-round RNG, and the round callbacks.
type Env struct {
	In    *input.Debouncer
	Snd   *audio.Sequencer
	Rand  *rand.Rand
	Round Round
}

// HandlePause consumes an Action press as a pause toggle and reports
// whether updates should be skipped this poll. Movement games share
// this exact behavior; games that repurpose the Action button (tetris,
// minesweeper, the cursor games) do not call it.
func (e *Env) HandlePause() bool {
	if e.In.TakePress(input.Action) {
		e.Round.TogglePause()
		e.Snd.Press()
	}
	return e.Round.Paused()
}
