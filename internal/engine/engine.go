// Package engine hosts the whole device loop: it polls input, drives
// the selected game module, owns the Menu/Playing/GameOver state
// machine, and refreshes both displays at their own cadences.
package engine

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/avolkov/ledboy/internal/audio"
	"github.com/avolkov/ledboy/internal/clock"
	"github.com/avolkov/ledboy/internal/config"
	"github.com/avolkov/ledboy/internal/driver"
	"github.com/avolkov/ledboy/internal/games"
	"github.com/avolkov/ledboy/internal/input"
	"github.com/avolkov/ledboy/internal/pixel"
	"github.com/avolkov/ledboy/internal/registry"
	"github.com/avolkov/ledboy/internal/text"
)

// Mode is the top-level session state.
type Mode int

const (
	ModeMenu Mode = iota
	ModePlaying
	ModeGameOver
)

// Options bundles the hardware sinks and tunables for one engine.
type Options struct {
	Clock   clock.Clock
	Matrix  driver.PixelSink
	Panel   driver.TextSink
	Tone    driver.ToneOutput
	Buttons driver.ButtonSource
	Config  config.Config
	Seed    int64
	Logger  *log.Logger
}

// Engine is one complete device session. It implements games.Round for
// the module currently in play.
type Engine struct {
	clk clock.Clock
	cfg config.Config
	log *log.Logger

	in   *input.Debouncer
	snd  *audio.Sequencer
	fb   *pixel.Surface
	oled *text.Panel
	rng  *rand.Rand

	catalog []registry.Info
	high    []int

	mode      Mode
	menuIndex int

	current   games.Game
	currentID string
	score     int
	paused    bool
	over      bool
	lastWin   bool
	lastMsg   string

	gameOverAt clock.Ticks
	lastMatrix clock.Ticks
	lastPanel  clock.Ticks
}

// New builds an engine over the given sinks. The registry must already
// hold the game catalog (imported for side effects by the caller).
func New(opts Options) (*Engine, error) {
	catalog := registry.List()
	if len(catalog) == 0 {
		return nil, fmt.Errorf("engine: no games registered")
	}
	if opts.Clock == nil {
		opts.Clock = clock.NewWall()
	}
	if opts.Matrix == nil {
		opts.Matrix = driver.NullPixelSink{}
	}
	if opts.Tone == nil {
		opts.Tone = driver.NullToneOutput{}
	}
	if opts.Buttons == nil {
		opts.Buttons = driver.NullButtons{}
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}

	e := &Engine{
		clk:     opts.Clock,
		cfg:     opts.Config,
		log:     opts.Logger,
		in:      input.NewDebouncer(opts.Buttons, opts.Config.Input.DebounceMS),
		snd:     audio.NewSequencer(opts.Tone),
		fb:      pixel.NewSurface(opts.Matrix),
		oled:    text.NewPanel(opts.Panel),
		rng:     rand.New(rand.NewSource(opts.Seed)),
		catalog: catalog,
		high:    make([]int, len(catalog)),
		mode:    ModeMenu,
	}
	e.snd.SetMuted(opts.Config.Audio.StartMuted)

	now := e.clk.Now()
	e.lastMatrix = now
	e.lastPanel = now
	return e, nil
}

// Mode returns the current session state.
func (e *Engine) Mode() Mode { return e.mode }

// Muted reports the audio mute flag.
func (e *Engine) Muted() bool { return e.snd.Muted() }

// Selected returns the catalog entry under the menu cursor.
func (e *Engine) Selected() registry.Info { return e.catalog[e.menuIndex] }

// HighScore returns the stored best for a catalog position.
func (e *Engine) HighScore(order int) int { return e.high[order] }

// AddScore implements games.Round.
func (e *Engine) AddScore(n int) {
	if !e.over {
		e.score += n
	}
}

// Score implements games.Round.
func (e *Engine) Score() int { return e.score }

// TogglePause implements games.Round.
func (e *Engine) TogglePause() { e.paused = !e.paused }

// Paused implements games.Round.
func (e *Engine) Paused() bool { return e.paused }

// Finish implements games.Round: it ends the round, commits the high
// score exactly once, and starts the game-over flash. Extra calls in
// the same round are ignored.
func (e *Engine) Finish(win bool, msg string) {
	if e.mode != ModePlaying || e.over {
		return
	}
	e.over = true
	e.lastWin = win
	e.lastMsg = msg

	if e.score > e.high[e.menuIndex] {
		e.high[e.menuIndex] = e.score
	}
	if win {
		e.snd.Win()
	} else {
		e.snd.Lose()
	}

	e.log.Info("round finished",
		"game", e.currentID, "win", win, "msg", msg, "score", e.score)

	e.mode = ModeGameOver
	e.gameOverAt = e.clk.Now()
	e.in.ClearEdges()
}

// startRound instantiates a fresh module for the selected entry.
func (e *Engine) startRound(now clock.Ticks) {
	info := e.catalog[e.menuIndex]
	env := &games.Env{
		In:    e.in,
		Snd:   e.snd,
		Rand:  e.rng,
		Round: e,
	}
	g, err := registry.Create(info.ID, env)
	if err != nil {
		// The catalog came from the registry, so this cannot happen
		// outside a programming error.
		e.log.Error("cannot create game", "game", info.ID, "err", err)
		return
	}
	e.current = g
	e.currentID = info.ID
	e.score = 0
	e.paused = false
	e.over = false
	e.mode = ModePlaying
	e.current.Init(now)
	e.snd.Start()
	e.in.ClearEdges()
	e.log.Info("round started", "game", info.ID)
}

// StartGame jumps straight into a round of the given game, as if it
// had been picked from the menu.
func (e *Engine) StartGame(id string) error {
	for i, info := range e.catalog {
		if info.ID == id {
			e.menuIndex = i
			e.startRound(e.clk.Now())
			return nil
		}
	}
	return fmt.Errorf("engine: unknown game %q", id)
}

// toMenu returns to the menu, discarding any round in progress.
func (e *Engine) toMenu() {
	e.current = nil
	e.mode = ModeMenu
	e.paused = false
	e.in.ClearEdges()
}

// Poll runs one engine iteration: sample input, advance the state
// machine and the active module, service audio, and refresh whichever
// displays are due. Call it continuously; all pacing is internal.
func (e *Engine) Poll() {
	now := e.clk.Now()
	e.in.Poll(now)

	// Select is the global abort anywhere outside the menu.
	if e.mode != ModeMenu && e.in.TakePress(input.Select) {
		e.snd.Press()
		e.toMenu()
	}

	switch e.mode {
	case ModeMenu:
		e.pollMenu()
	case ModePlaying:
		e.current.Update(now)
	case ModeGameOver:
		if e.in.TakePress(input.Action) ||
			clock.Diff(now, e.gameOverAt) >= int32(e.cfg.Engine.GameOverDelayMS) {
			e.toMenu()
		}
	}

	e.snd.Update(now)

	if clock.Diff(now, e.lastMatrix) >= int32(e.cfg.Display.MatrixFrameMS) {
		e.lastMatrix = now
		e.drawMatrix(now)
	}
	if clock.Diff(now, e.lastPanel) >= int32(e.cfg.Display.PanelFrameMS) {
		e.lastPanel = now
		e.drawPanel()
	}
}

func (e *Engine) pollMenu() {
	n := len(e.catalog)
	if e.in.TakePress(input.Up) {
		e.menuIndex = (e.menuIndex - 1 + n) % n
		e.snd.Press()
	}
	if e.in.TakePress(input.Down) {
		e.menuIndex = (e.menuIndex + 1) % n
		e.snd.Press()
	}
	if e.in.TakePress(input.Select) {
		e.snd.SetMuted(!e.snd.Muted())
		e.snd.Press()
	}
	if e.in.TakePress(input.Action) {
		e.startRound(e.clk.Now())
	}
}

// Run drives Poll in a tight loop until the context is canceled. The
// short sleep keeps the loop responsive without pinning a core.
func (e *Engine) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		e.Poll()
		time.Sleep(time.Millisecond)
	}
}
