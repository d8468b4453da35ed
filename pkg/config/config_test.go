package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Render.Width != 256 || cfg.Render.Height != 256 {
		t.Errorf("Expected 256x256 default render size, got %dx%d", cfg.Render.Width, cfg.Render.Height)
	}
	if cfg.Render.ShowWarnings {
		t.Error("Warnings must be suppressed by default")
	}
	if cfg.Render.ShadeAtHit {
		t.Error("Hit-point shading must be off by default")
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Expected info default log level, got %q", cfg.Logging.Level)
	}
}

func TestLoadConfig_MissingFileFallsBack(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Error("Expected an error for a missing config file")
	}
	if cfg == nil || cfg.Render.Width != 256 {
		t.Error("Missing config must fall back to defaults")
	}
}

func TestLoadConfig_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg := DefaultConfig()
	cfg.Render.Width = 64
	cfg.Render.Height = 48
	cfg.Render.ShowWarnings = true
	cfg.Display.Enabled = true

	if err := SaveConfig(cfg, path); err != nil {
		t.Fatalf("SaveConfig failed: %v", err)
	}

	loaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if loaded.Render.Width != 64 || loaded.Render.Height != 48 {
		t.Errorf("Expected 64x48, got %dx%d", loaded.Render.Width, loaded.Render.Height)
	}
	if !loaded.Render.ShowWarnings || !loaded.Display.Enabled {
		t.Error("Boolean fields did not round-trip")
	}
}

func TestLoadConfig_PartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := "render:\n  width: 128\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Render.Width != 128 {
		t.Errorf("Expected overridden width 128, got %d", cfg.Render.Width)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Unset fields must keep defaults, got level %q", cfg.Logging.Level)
	}
}
