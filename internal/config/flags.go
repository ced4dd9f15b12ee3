package config

import "flag"

var (
	flagConfig     = flag.String("config", "", "Path to config file")
	flagDebug      = flag.Bool("debug", false, "Enable debug logging")
	flagScene      = flag.String("scene", "", "Demo scene (square, gouraud-lambert, gouraud-phong, phong, camera, bouncing-balls)")
	flagMode       = flag.String("mode", "", "Initial camera mode (orbiting, tracking)")
	flagWindow     = flag.String("window", "", "Window backend (sdl, glfw)")
	flagWindowed   = flag.Bool("windowed", false, "Run in windowed mode")
	flagFullscreen = flag.Bool("fullscreen", false, "Run in fullscreen mode")
	flagWidth      = flag.Int("width", 0, "Window width")
	flagHeight     = flag.Int("height", 0, "Window height")
	flagBalls      = flag.Int("balls", -1, "Number of bouncing balls")
	flagSeed       = flag.Int64("seed", 0, "Ball spawn seed (0 = time based)")
	flagMesh       = flag.String("mesh", "", "JSON/YAML mesh shown by the camera scene")
	flagAudio      = flag.Bool("audio", false, "Enable bounce sounds")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagScene != "" {
		cfg.Scene.Name = *flagScene
	}
	if *flagMode != "" {
		cfg.Camera.Mode = *flagMode
	}
	if *flagWindow != "" {
		cfg.Graphics.Window = *flagWindow
	}
	if *flagWindowed {
		cfg.Graphics.Fullscreen = false
	}
	if *flagFullscreen {
		cfg.Graphics.Fullscreen = true
	}
	if *flagWidth > 0 {
		cfg.Graphics.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Graphics.Height = *flagHeight
	}
	if *flagBalls >= 0 {
		cfg.Scene.BallCount = *flagBalls
	}
	if *flagSeed != 0 {
		cfg.Scene.Seed = *flagSeed
	}
	if *flagMesh != "" {
		cfg.Scene.Mesh = *flagMesh
	}
	if *flagAudio {
		cfg.Audio.Enabled = true
	}
}
