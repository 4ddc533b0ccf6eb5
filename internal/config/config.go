// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// StructuredConfig is the top-level configuration container for safevault.
// It is populated by merging command-line flags, environment variables, an
// optional JSON file and built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Vault holds the location of the vault file and the key derivation
	// cost used for newly created vaults.
	Vault Vault `envPrefix:"VAULT_"`

	// Log holds logger destination and verbosity.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`

	// ShowVersion asks the binary to print build information and exit.
	// Only settable with the -version flag.
	ShowVersion bool
}

// Vault configures the vault container.
type Vault struct {
	// Path is the vault file location.
	// Env: VAULT_PATH
	Path string `env:"PATH"`

	// Iterations is the PBKDF2 iteration count used when a vault is created.
	// Existing vaults always use the count stored in their file; this value
	// is only consulted for files that do not record one.
	// Env: VAULT_KDF_ITERATIONS
	Iterations int `env:"KDF_ITERATIONS"`
}

// Log configures the application logger.
type Log struct {
	// Level is a zerolog level name (trace, debug, info, warn, error,
	// fatal, panic, disabled).
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`

	// File is the path log lines are appended to. The interactive menu owns
	// the terminal, so logs never go to stdout.
	// Env: LOG_FILE
	File string `env:"FILE"`
}

// GetStructuredConfig loads, merges, and validates the configuration from
// all available sources. For every field the first source that sets a
// non-zero value wins, in this order:
//  1. Command-line flags (parsed from args)
//  2. Environment variables
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// The positional arguments left after flag parsing are returned alongside
// the config.
func GetStructuredConfig(args []string) (*StructuredConfig, []string, error) {
	b := newConfigBuilder().
		withFlags(args).
		withEnv().
		withJSON().
		withDefaults()

	cfg, err := b.build()
	return cfg, b.args, err
}
