package config

// Screen layout configuration
const (
	// Logical screen size in pixels; ebiten scales it to the window
	ScreenWidth  = 800
	ScreenHeight = 600

	// Height of the status line drawn under the arena, in pixels
	StatusBarHeight = 16
)

// GetScreenDimensions returns the logical screen dimensions in pixels
func GetScreenDimensions() (width, height int) {
	return ScreenWidth, ScreenHeight
}

// GetWindowSize returns the recommended window size (may be different from actual screen dimensions)
func GetWindowSize(cfg Config) (width, height int) {
	if cfg.Window.Width > 0 && cfg.Window.Height > 0 {
		return cfg.Window.Width, cfg.Window.Height
	}
	return 1024, 768
}
