package config

import "errors"

// Validation errors returned by [Config.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidVaultConfigs indicates invalid vault settings
	// (for example, a missing container path).
	ErrInvalidVaultConfigs = errors.New("invalid vault configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings
	// (for example, a negative save interval).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
