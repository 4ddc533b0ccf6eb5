// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/MKhiriev/go-safe-vault/internal/crypto"
	"github.com/rs/zerolog"
)

// validate checks that the merged [StructuredConfig] can be used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.Vault.Path == "" {
		return fmt.Errorf("%w: empty vault path", ErrInvalidVaultConfigs)
	}

	if cfg.Vault.Iterations < crypto.MinIterations {
		return fmt.Errorf("%w: kdf iterations %d below minimum %d",
			ErrInvalidVaultConfigs, cfg.Vault.Iterations, crypto.MinIterations)
	}
	if cfg.Vault.Iterations > crypto.MaxIterations {
		return fmt.Errorf("%w: kdf iterations %d above maximum %d",
			ErrInvalidVaultConfigs, cfg.Vault.Iterations, crypto.MaxIterations)
	}

	if _, err := zerolog.ParseLevel(cfg.Log.Level); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidLogConfigs, err)
	}

	return nil
}
