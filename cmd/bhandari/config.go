package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds optional YAML defaults for the CLI flags. Explicit flags on
// the command line always take precedence over the file.
type Config struct {
	// Undirected mirrors the --undirected flag.
	Undirected bool `yaml:"undirected"`

	// K mirrors the export command's -k flag. Zero means "not set".
	K int `yaml:"k"`
}

// loadConfig reads and parses the YAML defaults file at path.
func loadConfig(path string) (Config, error) {
	var cfg Config

	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config %q: %w", path, err)
	}
	if err = yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %q: %w", path, err)
	}

	return cfg, nil
}
