// Package config provides YAML-based configuration loading for the
// ledboy engine and its terminal simulator.
package config

// Config contains every tunable the engine and simulator read.
type Config struct {
	Input   InputConfig   `yaml:"input"`
	Display DisplayConfig `yaml:"display"`
	Audio   AudioConfig   `yaml:"audio"`
	Engine  EngineConfig  `yaml:"engine"`
	Sim     SimConfig     `yaml:"sim"`
}

// InputConfig defines button filtering parameters.
type InputConfig struct {
	// DebounceMS is the stable time before a raw level change commits.
	DebounceMS int `yaml:"debounce_ms"`
}

// DisplayConfig defines display refresh cadences.
type DisplayConfig struct {
	MatrixFrameMS int `yaml:"matrix_frame_ms"`
	PanelFrameMS  int `yaml:"panel_frame_ms"`
}

// AudioConfig defines tone sequencer parameters.
type AudioConfig struct {
	StartMuted bool `yaml:"start_muted"`
}

// EngineConfig defines session state machine parameters.
type EngineConfig struct {
	// GameOverDelayMS is how long the game-over flash shows before the
	// session returns to the menu on its own.
	GameOverDelayMS int `yaml:"game_over_delay_ms"`
}

// SimConfig defines terminal simulator parameters.
type SimConfig struct {
	// KeyHoldMS is how long a key event keeps its raw line pressed.
	// Terminal input has no key-up events, so holds are synthesized
	// and sustained by auto-repeat.
	KeyHoldMS int `yaml:"key_hold_ms"`
	// TickMS is the simulator poll period.
	TickMS int `yaml:"tick_ms"`
}
