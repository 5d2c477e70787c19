// Package config defines the shape of the configuration file the core
// consumes (spec §6 "Configuration file"): the Go types, the structural
// checks spec §6 prescribes, and Load, which reads and decodes the JSON
// file. Parsing CLI flags and validating "auth"/"config" against the
// selected backend's own JSON Schema are not done here.
package config

import "fmt"

// Config is the top-level JSON object spec §6 describes.
type Config struct {
	Protocol string         `json:"protocol"`
	Auth     map[string]any `json:"auth"`
	Extra    map[string]any `json:"config,omitempty"`
}

// Validate checks the structural requirements spec §6 names: protocol and
// auth must be present. Schema validation of auth/config against the
// backend's own JSON Schema happens outside the core, once a concrete
// adapter is selected.
func (c Config) Validate() error {
	if c.Protocol == "" {
		return fmt.Errorf("config: %w", ErrMissingProtocol)
	}
	if c.Auth == nil {
		return fmt.Errorf("config: %w", ErrMissingAuth)
	}
	return nil
}
