// Package yaml provides the YAML-based tool configuration adapter.
package yaml

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFileName is the optional per-project configuration file looked up
// in the project root.
const ConfigFileName = ".fwsize.yaml"

// Config is the tool configuration. Every field is optional; zero values
// fall back to the built-in defaults. The extension lists let projects
// add target triples and section names without a new tool release.
type Config struct {
	// Artifact overrides the binary name read from the manifest.
	Artifact string `yaml:"artifact"`

	// LayoutFile is the memory-layout file, relative to the project root.
	LayoutFile string `yaml:"layout_file"`

	// ExtraTargets are additional cross-compilation triples probed by the
	// artifact locator, after the built-in ones.
	ExtraTargets []string `yaml:"extra_targets"`

	Sections SectionsConfig `yaml:"sections"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// SectionsConfig extends the built-in section name tables.
type SectionsConfig struct {
	Code []string `yaml:"code"`
	Data []string `yaml:"data"`
}

// LoggingConfig controls the structured logger.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// DefaultConfig returns the configuration used when no config file exists.
func DefaultConfig() *Config {
	return &Config{
		LayoutFile: "memory.x",
		Logging:    LoggingConfig{Level: "info"},
	}
}

// LoadConfig reads .fwsize.yaml from the project root. A missing file is
// not an error and yields the defaults; a present but malformed file is
// reported so a typo does not silently disable configuration.
func LoadConfig(projectRoot string) (*Config, error) {
	path := filepath.Join(projectRoot, ConfigFileName)

	//nolint:gosec // G304: config path derives from the discovered project root
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("reading %s: %w", ConfigFileName, err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", ConfigFileName, err)
	}

	if cfg.LayoutFile == "" {
		cfg.LayoutFile = "memory.x"
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}

	return cfg, nil
}
