// Package gametest provides a scripted host environment for driving
// game modules deterministically in tests: hand-advanced clock,
// scripted button lines, and a recording round.
package gametest

import (
	"math/rand"

	"github.com/avolkov/ledboy/internal/audio"
	"github.com/avolkov/ledboy/internal/clock"
	"github.com/avolkov/ledboy/internal/driver"
	"github.com/avolkov/ledboy/internal/games"
	"github.com/avolkov/ledboy/internal/input"
)

// Buttons is a ButtonSource whose levels tests set directly.
type Buttons struct {
	levels [input.ButtonCount]bool
}

// RawLevel implements driver.ButtonSource.
func (b *Buttons) RawLevel(i int) bool { return b.levels[i] }

// Set drives a raw line level.
func (b *Buttons) Set(btn input.Button, down bool) { b.levels[btn] = down }

// Round records the host callbacks a game makes.
type Round struct {
	score  int
	Over   bool
	Win    bool
	Msg    string
	paused bool
}

func (r *Round) AddScore(n int) { r.score += n }
func (r *Round) Score() int     { return r.score }

func (r *Round) Finish(win bool, msg string) {
	if r.Over {
		return
	}
	r.Over = true
	r.Win = win
	r.Msg = msg
}

func (r *Round) TogglePause() { r.paused = !r.paused }
func (r *Round) Paused() bool { return r.paused }

// Harness bundles a full scripted environment.
type Harness struct {
	Env   *games.Env
	Btn   *Buttons
	Clk   *clock.Manual
	Round *Round
}

// NewHarness builds an environment with the given RNG seed. The
// debounce window is the production 30ms.
func NewHarness(seed int64) *Harness {
	btn := &Buttons{}
	clk := clock.NewManual(1000)
	round := &Round{}
	env := &games.Env{
		In:    input.NewDebouncer(btn, input.DefaultDebounceWindow),
		Snd:   audio.NewSequencer(driver.NullToneOutput{}),
		Rand:  rand.New(rand.NewSource(seed)),
		Round: round,
	}
	return &Harness{Env: env, Btn: btn, Clk: clk, Round: round}
}

// Press holds a button long enough to debounce, then releases it,
// leaving a pending press edge for the game to consume.
func (h *Harness) Press(btn input.Button) {
	h.Btn.Set(btn, true)
	h.Env.In.Poll(h.Clk.Now())
	h.Clk.Advance(input.DefaultDebounceWindow)
	h.Env.In.Poll(h.Clk.Now())
	h.Btn.Set(btn, false)
	h.Env.In.Poll(h.Clk.Now())
	h.Clk.Advance(input.DefaultDebounceWindow)
	h.Env.In.Poll(h.Clk.Now())
}

// Advance moves the clock forward and repolls the debouncer.
func (h *Harness) Advance(ms int) {
	h.Clk.Advance(ms)
	h.Env.In.Poll(h.Clk.Now())
}
