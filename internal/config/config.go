// Package config loads CLI settings from an optional YAML file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Defaults used when neither the config file nor a flag sets a value.
const (
	DefaultDatabase = "mobility.db"
	DefaultFormat   = "text"
)

// Config holds the settings shared by every command.
type Config struct {
	// Database is the path to the SQLite working store.
	Database string `yaml:"database"`

	// Format selects the output format: "text" or "json".
	Format string `yaml:"format"`

	// Verbose enables debug logging on stderr.
	Verbose bool `yaml:"verbose"`
}

// Default returns a Config with default values.
func Default() Config {
	return Config{
		Database: DefaultDatabase,
		Format:   DefaultFormat,
	}
}

// Load reads a YAML config file and fills unset fields with defaults.
// An empty path returns Default().
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML config data. Unknown keys are rejected.
func Parse(data []byte) (Config, error) {
	cfg := Default()

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if cfg.Database == "" {
		cfg.Database = DefaultDatabase
	}
	if cfg.Format == "" {
		cfg.Format = DefaultFormat
	}
	return cfg, nil
}
