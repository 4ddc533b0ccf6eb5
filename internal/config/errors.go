package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when a
// configuration group is incomplete or invalid.
var (
	// ErrInvalidVaultConfigs indicates invalid vault settings (for example,
	// an empty file path or an iteration count below the safety floor).
	ErrInvalidVaultConfigs = errors.New("invalid vault configuration")
	// ErrInvalidLogConfigs indicates an unknown log level.
	ErrInvalidLogConfigs = errors.New("invalid log configuration")
)
