// Package config handles viewer configuration loading and management.
package config

// Config holds all viewer settings.
type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Camera  CameraConfig  `yaml:"camera"`
	Display DisplayConfig `yaml:"display"`
	Model   ModelConfig   `yaml:"model"`
	Debug   DebugConfig   `yaml:"debug"`
	Logging LoggingConfig `yaml:"logging"`
}

// WindowConfig holds window and front-end settings.
type WindowConfig struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
	VSync      bool   `yaml:"vsync"`
	GUI        bool   `yaml:"gui"` // ImGui overlay; false opens a plain SDL window
}

// CameraConfig holds the initial look-at camera and projection.
type CameraConfig struct {
	Position [3]float32 `yaml:"position"`
	Target   [3]float32 `yaml:"target"`
	Up       [3]float32 `yaml:"up"`
	FOV      float32    `yaml:"fov"` // Vertical field of view in degrees
	Near     float32    `yaml:"near"`
	Far      float32    `yaml:"far"`
}

// DisplayConfig holds the initial render toggles.
type DisplayConfig struct {
	DepthTest  bool       `yaml:"depth_test"`
	Blend      bool       `yaml:"blend"`
	Wireframe  bool       `yaml:"wireframe"`
	Culling    bool       `yaml:"culling"`
	Bounds     bool       `yaml:"bounds"` // Draw the mesh bounding box
	ClearColor [4]float32 `yaml:"clear_color"`
}

// ModelConfig holds the mesh to open at startup.
type ModelConfig struct {
	Path string `yaml:"path"`
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
		Window: WindowConfig{
			Title:      "OBJ Viewer",
			Width:      1200,
			Height:     1080,
			Fullscreen: false,
			VSync:      true,
			GUI:        true,
		},
		Camera: CameraConfig{
			Position: [3]float32{5, -5, 5},
			Target:   [3]float32{0, 1, 0},
			Up:       [3]float32{0, 1, 0},
			FOV:      45,
			Near:     0.1,
			Far:      1024,
		},
		Display: DisplayConfig{
			ClearColor: [4]float32{1, 1, 1, 1},
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
