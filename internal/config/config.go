// SPDX-License-Identifier: Apache-2.0

package config

import (
	"time"
)

// Config is the top-level configuration container for the keep-vault
// application. It aggregates all sub-configurations and is populated by
// merging values from environment variables, command-line overrides, and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type Config struct {
	// Vault holds the location of the encrypted vault container and the
	// optional key file that supplements the master password.
	Vault Vault `envPrefix:"VAULT_"`

	// Storage holds configuration for the local audit database.
	Storage Storage `envPrefix:"STORAGE_"`

	// Logging holds log output settings.
	Logging Logging `envPrefix:"LOG_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and overrides.
	// Populated via the CONFIG environment variable or the -c/--config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Vault holds the location of the encrypted container on disk.
type Vault struct {
	// Path is the path to the single-file vault container.
	// Env: VAULT_PATH
	Path string `env:"PATH"`

	// KeyFile is the optional path to a key file whose contents are mixed
	// into key derivation alongside the master password.
	// Env: VAULT_KEY_FILE
	KeyFile string `env:"KEY_FILE"`
}

// Storage groups the configuration for local persistence beside the vault
// file itself.
type Storage struct {
	// AuditDSN is the SQLite DSN of the local audit trail database
	// (e.g. "file:~/.keepvault/audit.db"). An empty DSN disables auditing.
	// Env: STORAGE_AUDIT_DSN
	AuditDSN string `env:"AUDIT_DSN"`
}

// Logging holds log output settings.
type Logging struct {
	// File is the path the structured log is appended to. When empty the
	// log goes to stderr.
	// Env: LOG_FILE
	File string `env:"FILE"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// SaveInterval is the tick interval of the background save job
	// (e.g. "30s", "1m"). Zero selects the built-in default.
	// Env: WORKERS_SAVE_INTERVAL
	SaveInterval time.Duration `env:"SAVE_INTERVAL"`
}

// Load builds the application configuration by merging all available
// sources in the following priority order (earlier sources win for non-zero
// fields):
//  1. Environment variables
//  2. overrides — values the CLI layer collected from its flags; may be nil
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *Config or an error if any source fails to load
// or the final config fails validation.
func Load(overrides *Config) (*Config, error) {
	return newConfigBuilder().
		withEnv().
		withOverrides(overrides).
		withJSON().
		build()
}
