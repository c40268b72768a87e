// Package config handles pipeline configuration loading and management.
package config

// Config holds all pipeline settings.
type Config struct {
	Grouping GroupingConfig `yaml:"grouping"`
	Export   ExportConfig   `yaml:"export"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GroupingConfig controls batching of built meshes into draw groups.
type GroupingConfig struct {
	Enabled             bool `yaml:"enabled"`
	MaxVerticesPerGroup int  `yaml:"max_vertices_per_group"`
}

// ExportConfig holds mesh export settings.
type ExportConfig struct {
	OutputDir string `yaml:"output_dir"` // Directory for exported meshes
	Precision int    `yaml:"precision"`  // Decimal places for coordinates
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Grouping: GroupingConfig{
			Enabled:             false,
			MaxVerticesPerGroup: 65536,
		},
		Export: ExportConfig{
			OutputDir: ".",
			Precision: 6,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
