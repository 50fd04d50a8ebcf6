package cli

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// defaultConfigFile is picked up from the working directory when no
// --config flag is given.
const defaultConfigFile = "duckno.yaml"

// Config supplies CLI defaults from an optional yaml file.
// Flags always win over config values.
type Config struct {
	// Path is the database location, as accepted by --db.
	Path string `yaml:"path,omitempty"`

	// Table is the backing table name.
	Table string `yaml:"table,omitempty"`

	// Memory selects a volatile in-memory database.
	Memory bool `yaml:"memory,omitempty"`
}

// LoadConfig reads and parses a yaml config file.
// Unknown fields are rejected to catch typos.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var cfg Config
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return &cfg, nil
}

// applyConfig fills unset global flags from the config file, if any.
// An explicit --config that cannot be loaded is a command error; the
// implicit duckno.yaml lookup is skipped silently when the file is absent.
func applyConfig(cmd *cobra.Command, opts *RootOptions) error {
	path := opts.ConfigFile
	if path == "" {
		if _, err := os.Stat(defaultConfigFile); err != nil {
			return nil
		}
		path = defaultConfigFile
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		return WrapExitError(ExitCommandError, "load config", err)
	}

	flags := cmd.Root().PersistentFlags()
	if cfg.Path != "" && !flags.Changed("db") {
		opts.DB = cfg.Path
	}
	if cfg.Table != "" && !flags.Changed("table") {
		opts.Table = cfg.Table
	}
	if cfg.Memory && !flags.Changed("memory") {
		opts.Memory = true
	}
	return nil
}
