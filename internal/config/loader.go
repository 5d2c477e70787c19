package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// Load reads and parses path as a Config (spec §6 "Configuration file"),
// then runs Validate. Grounded in the teacher's FromFile (main.go), which
// does the same read-then-unmarshal for its dbConfig.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(b, &cfg); err != nil {
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
