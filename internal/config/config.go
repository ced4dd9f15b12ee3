// Package config handles demo configuration loading and management.
package config

// Config holds all demo settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Camera   CameraConfig   `yaml:"camera"`
	Scene    SceneConfig    `yaml:"scene"`
	Audio    AudioConfig    `yaml:"audio"`
	Debug    DebugConfig    `yaml:"debug"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
	VSync      bool   `yaml:"vsync"`
	Window     string `yaml:"window"`      // "sdl" or "glfw"
	ClearColor string `yaml:"clear_color"` // "#rrggbb"
}

// CameraConfig holds the initial camera placement and control speeds.
type CameraConfig struct {
	Mode        string     `yaml:"mode"` // "orbiting" or "tracking"
	FOV         float32    `yaml:"fov"`  // degrees
	Near        float32    `yaml:"near"`
	Far         float32    `yaml:"far"`
	Home        [3]float32 `yaml:"home,flow"`
	RotateSpeed float32    `yaml:"rotate_speed"` // degrees per key press
	DollySpeed  float32    `yaml:"dolly_speed"`  // dolly units per key press
}

// SceneConfig selects the demo scene and its geometry.
type SceneConfig struct {
	Name           string  `yaml:"name"` // see demo.Names
	FloorDimension float32 `yaml:"floor_dimension"`
	FloorSpacing   float32 `yaml:"floor_spacing"`
	AxisDimension  float32 `yaml:"axis_dimension"`
	BallCount      int     `yaml:"ball_count"`
	Seed           int64   `yaml:"seed"` // 0 picks a time-based seed

	// Mesh is an optional JSON/YAML mesh shown by the camera scene
	// instead of the built-in cone.
	Mesh string `yaml:"mesh"`
}

// AudioConfig holds audio settings.
type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float32 `yaml:"volume"`
}

// DebugConfig holds developer tooling settings.
type DebugConfig struct {
	ScreenshotDir string `yaml:"screenshot_dir"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
			Window:     "sdl",
			ClearColor: "#e6e6e6",
		},
		Camera: CameraConfig{
			Mode:        "orbiting",
			FOV:         45,
			Near:        0.1,
			Far:         10000,
			Home:        [3]float32{0, 7, 36},
			RotateSpeed: 5,
			DollySpeed:  1,
		},
		Scene: SceneConfig{
			Name:           "camera",
			FloorDimension: 80,
			FloorSpacing:   2,
			AxisDimension:  82,
			BallCount:      50,
		},
		Audio: AudioConfig{
			Enabled: false,
			Volume:  0.6,
		},
		Debug: DebugConfig{
			ScreenshotDir: "screenshots",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
