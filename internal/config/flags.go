package config

import "flag"

var (
	flagConfig     = flag.String("config", "", "Path to config file (.yaml or .toml)")
	flagDebug      = flag.Bool("debug", false, "Enable debug logging")
	flagWindowed   = flag.Bool("windowed", false, "Run in windowed mode")
	flagFullscreen = flag.Bool("fullscreen", false, "Run in fullscreen mode")
	flagWidth      = flag.Int("width", 0, "Window width")
	flagHeight     = flag.Int("height", 0, "Window height")
	flagNoVSync    = flag.Bool("no-vsync", false, "Disable vertical sync")
	flagPlaneMode  = flag.String("plane-mode", "", "Reflection plane: fixed or face")
	flagNoWatch    = flag.Bool("no-watch", false, "Disable config hot reload")
	flagFrames     = flag.Int("frames", 0, "Render this many frames headless and exit")
	flagHold       = flag.String("hold", "", "Keys held during a headless run, e.g. a,right")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// HeadlessFrames returns the --frames value; 0 means run the window.
func HeadlessFrames() int {
	return *flagFrames
}

// HeldKeys returns the --hold key list for headless runs.
func HeldKeys() string {
	return *flagHold
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
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
	if *flagNoVSync {
		cfg.Graphics.VSync = false
	}
	if *flagPlaneMode != "" {
		cfg.Scene.Mirror.PlaneMode = *flagPlaneMode
	}
	if *flagNoWatch {
		cfg.Watch = false
	}
}
