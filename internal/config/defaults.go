package config

import "github.com/MKhiriev/go-safe-vault/internal/crypto"

const (
	DefaultVaultPath = "vault_data.json"
	DefaultLogLevel  = "info"
	DefaultLogFile   = "safevault.log"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Vault: Vault{
			Path:       DefaultVaultPath,
			Iterations: crypto.DefaultKDFParams().Iterations,
		},
		Log: Log{
			Level: DefaultLogLevel,
			File:  DefaultLogFile,
		},
	}
}
