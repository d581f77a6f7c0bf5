package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default config invalid: %v", err)
	}
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pong.toml")
	data := `
[ball]
speed = 150

[match]
win_score = 7
seed = 42
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Ball.Speed != 150 {
		t.Errorf("Ball.Speed = %v, want 150", cfg.Ball.Speed)
	}
	if cfg.Ball.Radius != 5 {
		t.Errorf("Ball.Radius = %v, want default 5", cfg.Ball.Radius)
	}
	if cfg.Match.WinScore != 7 || cfg.Match.Seed != 42 {
		t.Errorf("Match = %+v", cfg.Match)
	}
	if cfg.Arena.Width != 450 {
		t.Errorf("Arena.Width = %v, want default 450", cfg.Arena.Width)
	}
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pong.toml")
	if err := os.WriteFile(path, []byte("[ball]\nsped = 3\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := Load(path)
	if err == nil || !strings.Contains(err.Error(), "sped") {
		t.Errorf("Expected unknown key error, got %v", err)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pong.toml")
	if err := os.WriteFile(path, []byte("[ball]\nradius = -1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := Load(path)
	if !errors.Is(err, errNotPositive) {
		t.Errorf("Expected errNotPositive, got %v", err)
	}
}

func TestLoadRejectsNonFinite(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"nan speed", "[ball]\nspeed = nan\n"},
		{"inf arena width", "[arena]\nwidth = inf\n"},
		{"nan fov", "[camera]\nfov = nan\n"},
		{"nan inset", "[paddle]\ninset = nan\n"},
		{"inf serve angle", "[ball]\nangle_max = +inf\n"},
		{"nan volume", "[audio]\nvolume = nan\n"},
	}

	for _, tt := range tests {
		path := filepath.Join(t.TempDir(), "pong.toml")
		if err := os.WriteFile(path, []byte(tt.data), 0o644); err != nil {
			t.Fatal(err)
		}
		if _, err := Load(path); !errors.Is(err, errNotFinite) {
			t.Errorf("%s: expected errNotFinite, got %v", tt.name, err)
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestSaveThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "pong.toml")
	cfg := Default()
	cfg.Paddle.Speed = 180
	cfg.Window.Fullscreen = true

	if err := Save(path, cfg); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded != cfg {
		t.Errorf("Loaded config differs:\n got %+v\nwant %+v", loaded, cfg)
	}
}

func TestValidateServeAngles(t *testing.T) {
	cfg := Default()
	cfg.Ball.AngleMin, cfg.Ball.AngleMax = 0.7, 0.5
	if err := cfg.Validate(); err == nil {
		t.Error("Expected error for inverted serve angles")
	}
}

func TestGetWindowSize(t *testing.T) {
	w, h := GetWindowSize(Default())
	if w != 1024 || h != 768 {
		t.Errorf("GetWindowSize = %dx%d", w, h)
	}
	w, h = GetWindowSize(Config{})
	if w != 1024 || h != 768 {
		t.Errorf("Fallback window size = %dx%d", w, h)
	}
}
