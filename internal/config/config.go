// Package config loads the tool configuration. A missing config file is not
// an error: every field has a usable default so the tool runs against a bare
// data directory out of the box.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Tool holds all configuration for the item data tool.
type Tool struct {
	// Data source
	DataDir  string `yaml:"data_dir"`
	Language string `yaml:"language"`

	// Generation
	GameVersion   int32 `yaml:"game_version"`   // 0 classic, 100 expansion
	FormatVersion int32 `yaml:"format_version"` // character-data format version
	MaxRollOnly   bool  `yaml:"max_roll_only"`  // show best-possible rolls

	// Runeword filtering
	IncludeServerRunewords bool `yaml:"include_server_runewords"`

	// Logging
	LogLevel string `yaml:"log_level"` // debug, info, warn, error
}

// DefaultTool returns Tool config with sensible defaults.
func DefaultTool() Tool {
	return Tool{
		DataDir:       "data",
		Language:      "enUS",
		GameVersion:   100,
		FormatVersion: 99,
		LogLevel:      "info",
	}
}

// LoadTool loads tool config from a YAML file.
// If the file doesn't exist, returns defaults.
func LoadTool(path string) (Tool, error) {
	cfg := DefaultTool()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	return cfg, nil
}
