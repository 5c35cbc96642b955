package config

import "flag"

var (
	flagConfig     = flag.String("config", "", "Path to config file")
	flagModel      = flag.String("model", "", "Path to the OBJ file to open")
	flagDebug      = flag.Bool("debug", false, "Enable debug logging")
	flagNoGUI      = flag.Bool("nogui", false, "Open a plain window without the ImGui overlay")
	flagWireframe  = flag.Bool("wireframe", false, "Start in wireframe mode")
	flagBounds     = flag.Bool("bounds", false, "Draw the mesh bounding box")
	flagWindowed   = flag.Bool("windowed", false, "Run in windowed mode")
	flagFullscreen = flag.Bool("fullscreen", false, "Run in fullscreen mode")
	flagWidth      = flag.Int("width", 0, "Window width")
	flagHeight     = flag.Int("height", 0, "Window height")
)

// ParseFlags parses command-line flags. Call this early in main().
// A single positional argument is taken as the model path.
func ParseFlags() {
	flag.Parse()
	if *flagModel == "" && flag.NArg() > 0 {
		*flagModel = flag.Arg(0)
	}
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagModel != "" {
		cfg.Model.Path = *flagModel
	}
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagNoGUI {
		cfg.Window.GUI = false
	}
	if *flagWireframe {
		cfg.Display.Wireframe = true
	}
	if *flagBounds {
		cfg.Display.Bounds = true
	}
	if *flagWindowed {
		cfg.Window.Fullscreen = false
	}
	if *flagFullscreen {
		cfg.Window.Fullscreen = true
	}
	if *flagWidth > 0 {
		cfg.Window.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Window.Height = *flagHeight
	}
}
