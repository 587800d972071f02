package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cfg.yaml")
	body := []byte("input:\n  debounce_ms: 45\nsim:\n  tick_ms: 2\n")
	if err := os.WriteFile(path, body, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Input.DebounceMS != 45 {
		t.Errorf("DebounceMS = %d, expected 45", cfg.Input.DebounceMS)
	}
	if cfg.Sim.TickMS != 2 {
		t.Errorf("TickMS = %d, expected 2", cfg.Sim.TickMS)
	}
	// Unset sections keep their defaults.
	if cfg.Display.MatrixFrameMS != 33 {
		t.Errorf("MatrixFrameMS = %d, expected default 33", cfg.Display.MatrixFrameMS)
	}
}

func TestLoadMissingCustomPathFails(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected an error for a missing explicit config")
	}
}

func TestLoadSanitizesZeroValues(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cfg.yaml")
	body := []byte("display:\n  matrix_frame_ms: 0\n  panel_frame_ms: -5\n")
	if err := os.WriteFile(path, body, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Display.MatrixFrameMS != 33 || cfg.Display.PanelFrameMS != 100 {
		t.Errorf("cadences = %d/%d, expected defaults restored",
			cfg.Display.MatrixFrameMS, cfg.Display.PanelFrameMS)
	}
}

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg != Default() {
		t.Errorf("embedded default = %+v, expected %+v", cfg, Default())
	}
}
