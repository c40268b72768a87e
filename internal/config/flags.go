package config

import "flag"

var (
	flagConfig      = flag.String("config", "", "Path to config file")
	flagDebug       = flag.Bool("debug", false, "Enable debug logging")
	flagOutputDir   = flag.String("output-dir", "", "Directory for exported meshes")
	flagGroup       = flag.Bool("group", false, "Batch built meshes into draw groups")
	flagGroupBudget = flag.Int("group-budget", 0, "Vertex budget per draw group")
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
	if *flagOutputDir != "" {
		cfg.Export.OutputDir = *flagOutputDir
	}
	if *flagGroup {
		cfg.Grouping.Enabled = true
	}
	if *flagGroupBudget > 0 {
		cfg.Grouping.MaxVerticesPerGroup = *flagGroupBudget
	}
}
