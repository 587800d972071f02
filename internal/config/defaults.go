package config

import (
	_ "embed"
)

//go:embed defaults/ledboy.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Input:   InputConfig{DebounceMS: 30},
		Display: DisplayConfig{MatrixFrameMS: 33, PanelFrameMS: 100},
		Audio:   AudioConfig{StartMuted: false},
		Engine:  EngineConfig{GameOverDelayMS: 2000},
		Sim:     SimConfig{KeyHoldMS: 120, TickMS: 5},
	}
}
