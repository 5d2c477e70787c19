package config

import "errors"

// ErrMissingProtocol and ErrMissingAuth are the structural validation
// failures Validate can return; exit code 2 (misuse) at the cmd/mmterm
// boundary wraps these (spec §6 CLI surface).
var (
	ErrMissingProtocol = errors.New("missing required field \"protocol\"")
	ErrMissingAuth     = errors.New("missing required field \"auth\"")
)
