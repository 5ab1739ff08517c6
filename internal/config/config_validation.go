// SPDX-License-Identifier: Apache-2.0

package config

// validate checks that the final merged [Config] satisfies all application
// invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error
// otherwise.
func (cfg *Config) validate() error {
	if cfg.Vault.Path == "" {
		return ErrInvalidVaultConfigs
	}

	if cfg.Workers.SaveInterval < 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
