package config

import "flag"

var (
	flagConfig  = flag.String("config", "", "Path to config file")
	flagDebug   = flag.Bool("debug", false, "Enable debug logging")
	flagPage    = flag.Int("page", -1, "Page to navigate to")
	flagFPS     = flag.Int("fps", 0, "Frames per second of the simulation")
	flagDamping = flag.String("damping", "", "Damping mode: exponential or spring")
	flagWatch   = flag.Bool("watch", false, "Run in real time and reload the config file on change")
	flagDump    = flag.String("dump", "", "Write the final page poses as YAML to this path")
	flagSave    = flag.Bool("save", false, "Save the effective config to the user config directory")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// WatchEnabled reports whether --watch was given.
func WatchEnabled() bool {
	return *flagWatch
}

// SaveEnabled reports whether --save was given.
func SaveEnabled() bool {
	return *flagSave
}

// DumpPath returns the --dump target, or "".
func DumpPath() string {
	return *flagDump
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagPage >= 0 {
		cfg.Simulation.StartPage = *flagPage
	}
	if *flagFPS > 0 {
		cfg.Simulation.FPS = *flagFPS
	}
	if *flagDamping != "" {
		cfg.Curve.Damping = *flagDamping
	}
}
