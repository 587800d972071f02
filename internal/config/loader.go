package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the engine configuration.
// Search order: customPath -> ~/.ledboy/config.yaml -> ./configs/ledboy.yaml -> embedded default
func Load(customPath string) (Config, error) {
	cfg := Default()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg.sanitized(), nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("config.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg.sanitized(), nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/ledboy.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg.sanitized(), nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	return cfg.sanitized(), nil
}

// userConfigPath returns the path to the user config file, or empty if
// home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".ledboy", filename)
}

// sanitized clamps nonsensical values back to the defaults so a sparse
// or broken file cannot wedge the poll loop.
func (c Config) sanitized() Config {
	def := Default()
	if c.Input.DebounceMS <= 0 {
		c.Input.DebounceMS = def.Input.DebounceMS
	}
	if c.Display.MatrixFrameMS <= 0 {
		c.Display.MatrixFrameMS = def.Display.MatrixFrameMS
	}
	if c.Display.PanelFrameMS <= 0 {
		c.Display.PanelFrameMS = def.Display.PanelFrameMS
	}
	if c.Engine.GameOverDelayMS <= 0 {
		c.Engine.GameOverDelayMS = def.Engine.GameOverDelayMS
	}
	if c.Sim.KeyHoldMS <= 0 {
		c.Sim.KeyHoldMS = def.Sim.KeyHoldMS
	}
	if c.Sim.TickMS <= 0 {
		c.Sim.TickMS = def.Sim.TickMS
	}
	return c
}
