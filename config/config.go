package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config is the game configuration, loaded from TOML over Default()
type Config struct {
	Arena  ArenaConfig  `toml:"arena"`
	Paddle PaddleConfig `toml:"paddle"`
	Ball   BallConfig   `toml:"ball"`
	Match  MatchConfig  `toml:"match"`
	Camera CameraConfig `toml:"camera"`
	Window WindowConfig `toml:"window"`
	Audio  AudioConfig  `toml:"audio"`
}

// ArenaConfig sizes the playing field; the arena is centered on the origin
type ArenaConfig struct {
	Width     float64 `toml:"width"`
	Height    float64 `toml:"height"`
	WallWidth float64 `toml:"wall_width"`
}

type PaddleConfig struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
	Speed  float64 `toml:"speed"`
	// Gap between the arena side and the paddle's outer edge
	Inset float64 `toml:"inset"`
}

// BallConfig controls the ball and its serve. Serve angles are in radians
// from the horizontal.
type BallConfig struct {
	Radius   float64 `toml:"radius"`
	Speed    float64 `toml:"speed"`
	AngleMin float64 `toml:"angle_min"`
	AngleMax float64 `toml:"angle_max"`
}

type MatchConfig struct {
	// WinScore ends the match when a score slot reaches it; 0 plays forever
	WinScore uint32 `toml:"win_score"`
	// Seed for the serve generator; 0 picks one from the clock
	Seed uint64 `toml:"seed"`
}

type CameraConfig struct {
	Fov float64 `toml:"fov"`
}

type WindowConfig struct {
	Width      int    `toml:"width"`
	Height     int    `toml:"height"`
	Title      string `toml:"title"`
	Fullscreen bool   `toml:"fullscreen"`
}

type AudioConfig struct {
	Enabled bool    `toml:"enabled"`
	Volume  float64 `toml:"volume"`
}

// Default returns the stock game setup
func Default() Config {
	return Config{
		Arena: ArenaConfig{
			Width:     450,
			Height:    300,
			WallWidth: 5,
		},
		Paddle: PaddleConfig{
			Width:  10,
			Height: 50,
			Speed:  100,
			Inset:  5,
		},
		Ball: BallConfig{
			Radius:   5,
			Speed:    100,
			AngleMin: 0.5,
			AngleMax: 0.7,
		},
		Camera: CameraConfig{
			Fov: 400,
		},
		Window: WindowConfig{
			Width:  1024,
			Height: 768,
			Title:  "Ebiten Pong",
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  0.3,
		},
	}
}

// Load reads a TOML file over the defaults and validates the result.
// Keys missing from the file keep their default values.
func Load(path string) (Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to load config %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("config %s: unknown key %q", path, undecoded[0].String())
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg as TOML, creating parent directories as needed
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return nil
}

var (
	errNotPositive = errors.New("must be positive")
	errNotFinite   = errors.New("must be a finite number")
)

// Validate checks that every dimension is usable by the simulation
func (c Config) Validate() error {
	finite := []struct {
		name  string
		value float64
	}{
		{"paddle.inset", c.Paddle.Inset},
		{"ball.angle_min", c.Ball.AngleMin},
		{"ball.angle_max", c.Ball.AngleMax},
		{"audio.volume", c.Audio.Volume},
	}
	for _, f := range finite {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return fmt.Errorf("%s %w, got %v", f.name, errNotFinite, f.value)
		}
	}

	positive := []struct {
		name  string
		value float64
	}{
		{"arena.width", c.Arena.Width},
		{"arena.height", c.Arena.Height},
		{"arena.wall_width", c.Arena.WallWidth},
		{"paddle.width", c.Paddle.Width},
		{"paddle.height", c.Paddle.Height},
		{"paddle.speed", c.Paddle.Speed},
		{"ball.radius", c.Ball.Radius},
		{"ball.speed", c.Ball.Speed},
		{"camera.fov", c.Camera.Fov},
	}
	for _, p := range positive {
		if math.IsNaN(p.value) || math.IsInf(p.value, 0) {
			return fmt.Errorf("%s %w, got %v", p.name, errNotFinite, p.value)
		}
		if p.value <= 0 {
			return fmt.Errorf("%s %w, got %v", p.name, errNotPositive, p.value)
		}
	}

	if c.Paddle.Inset < 0 {
		return fmt.Errorf("paddle.inset must not be negative, got %v", c.Paddle.Inset)
	}
	if 2*(c.Paddle.Inset+c.Paddle.Width) >= c.Arena.Width {
		return fmt.Errorf("paddles do not fit in an arena %v wide", c.Arena.Width)
	}
	if c.Ball.AngleMin < 0 || c.Ball.AngleMax <= c.Ball.AngleMin {
		return fmt.Errorf("ball serve angles must satisfy 0 <= angle_min < angle_max, got [%v, %v]",
			c.Ball.AngleMin, c.Ball.AngleMax)
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("audio.volume must be within [0, 1], got %v", c.Audio.Volume)
	}
	return nil
}
