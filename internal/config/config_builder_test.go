package config

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/MKhiriev/go-safe-vault/internal/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

func validConfig() *StructuredConfig {
	return &StructuredConfig{
		Vault: Vault{Path: "vault.json", Iterations: crypto.MinIterations},
		Log:   Log{Level: "debug", File: "test.log"},
	}
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
	assert.Empty(t, b.args)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that a builder with no sources fails
// validation: there is no vault path.
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidVaultConfigs)
}

func TestBuild_OnlyDefaults(t *testing.T) {
	cfg, err := newConfigBuilder().withDefaults().build()
	require.NoError(t, err)
	assert.Equal(t, DefaultVaultPath, cfg.Vault.Path)
	assert.Equal(t, crypto.DefaultIterations, cfg.Vault.Iterations)
	assert.Equal(t, DefaultLogLevel, cfg.Log.Level)
	assert.Equal(t, DefaultLogFile, cfg.Log.File)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_FirstSourceWins verifies that a field set by an earlier config is
// not overwritten by a later one, while unset fields are filled in.
func TestBuild_FirstSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Vault: Vault{Path: "first.json"}},
		&StructuredConfig{Vault: Vault{Path: "second.json", Iterations: 200_000}},
		defaultConfig(),
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "first.json", cfg.Vault.Path)
	assert.Equal(t, 200_000, cfg.Vault.Iterations)
	assert.Equal(t, DefaultLogLevel, cfg.Log.Level)
}

func TestBuild_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*StructuredConfig)
		wantErr error
	}{
		{name: "iterations below floor", mutate: func(c *StructuredConfig) { c.Vault.Iterations = crypto.MinIterations - 1 }, wantErr: ErrInvalidVaultConfigs},
		{name: "negative iterations", mutate: func(c *StructuredConfig) { c.Vault.Iterations = -5 }, wantErr: ErrInvalidVaultConfigs},
		{name: "iterations above ceiling", mutate: func(c *StructuredConfig) { c.Vault.Iterations = crypto.MaxIterations + 1 }, wantErr: ErrInvalidVaultConfigs},
		{name: "unknown log level", mutate: func(c *StructuredConfig) { c.Log.Level = "loud" }, wantErr: ErrInvalidLogConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			b := newConfigBuilder()
			b.configs = append(b.configs, cfg)

			got, err := b.build()
			assert.Nil(t, got)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// ── withEnv ───────────────────────────────────────────────────────────────────

func TestWithEnv_ReadsEnvVars(t *testing.T) {
	setEnvVars(t, map[string]string{
		"VAULT_PATH":           "/tmp/env-vault.json",
		"VAULT_KDF_ITERATIONS": "300000",
	})

	b := newConfigBuilder().withEnv()
	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "/tmp/env-vault.json", b.configs[0].Vault.Path)
	assert.Equal(t, 300000, b.configs[0].Vault.Iterations)
}

func TestWithEnv_InvalidNumber(t *testing.T) {
	setEnvVars(t, map[string]string{"VAULT_KDF_ITERATIONS": "many"})

	b := newConfigBuilder().withEnv()
	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withFlags ─────────────────────────────────────────────────────────────────

func TestWithFlags_StoresRemainingArgs(t *testing.T) {
	b := newConfigBuilder().withFlags([]string{"-f", "flag.json", "get", "email"})
	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "flag.json", b.configs[0].Vault.Path)
	assert.Equal(t, []string{"get", "email"}, b.args)
}

func TestWithFlags_UnknownFlag(t *testing.T) {
	b := newConfigBuilder().withFlags([]string{"-nope"})
	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

func TestWithJSON_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})

	b.withJSON()
	assert.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

func TestWithJSON_AppendsConfig_WhenValidFile(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"vault": map[string]any{"path": "json.json", "kdf_iterations": 250000},
	})
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})

	b.withJSON()
	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "json.json", b.configs[1].Vault.Path)
	assert.Equal(t, 250000, b.configs[1].Vault.Iterations)
}

func TestWithJSON_SetsError_WhenFileNotFound(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/does/not/exist.json"})

	b.withJSON()
	assert.Error(t, b.err)
	assert.Len(t, b.configs, 1)
}

// TestWithJSON_UsesFirstPath verifies that the path from the highest priority
// source is used.
func TestWithJSON_UsesFirstPath(t *testing.T) {
	first := writeTempJSONConfig(t, map[string]any{"log": map[string]any{"level": "warn"}})
	second := writeTempJSONConfig(t, map[string]any{"log": map[string]any{"level": "error"}})
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{JSONFilePath: first},
		&StructuredConfig{JSONFilePath: second},
	)

	b.withJSON()
	require.NoError(t, b.err)
	require.Len(t, b.configs, 3)
	assert.Equal(t, "warn", b.configs[2].Log.Level)
}

func TestWithJSON_DoesNotAppend_WhenErrorAlreadySet(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{})
	b := newConfigBuilder()
	b.err = assert.AnError
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})

	b.withJSON()
	assert.Len(t, b.configs, 1)
}

// ── GetStructuredConfig ───────────────────────────────────────────────────────

func TestGetStructuredConfig_Precedence(t *testing.T) {
	jsonPath := writeTempJSONConfig(t, map[string]any{
		"vault": map[string]any{"path": "json.json", "kdf_iterations": 250000},
		"log":   map[string]any{"level": "warn", "file": "json.log"},
	})
	setEnvVars(t, map[string]string{
		"CONFIG":     jsonPath,
		"VAULT_PATH": "env.json",
		"LOG_LEVEL":  "error",
	})

	cfg, rest, err := GetStructuredConfig([]string{"-log-level", "debug", "list"})
	require.NoError(t, err)

	assert.Equal(t, []string{"list"}, rest)
	assert.Equal(t, "debug", cfg.Log.Level, "flag beats env")
	assert.Equal(t, "env.json", cfg.Vault.Path, "env beats json")
	assert.Equal(t, 250000, cfg.Vault.Iterations, "json beats defaults")
	assert.Equal(t, "json.log", cfg.Log.File)
	assert.Equal(t, jsonPath, cfg.JSONFilePath)
}

func TestGetStructuredConfig_Defaults(t *testing.T) {
	clearEnvVars(t)

	cfg, rest, err := GetStructuredConfig(nil)
	require.NoError(t, err)
	assert.Empty(t, rest)
	assert.Equal(t, defaultConfig().Vault, cfg.Vault)
	assert.Equal(t, defaultConfig().Log, cfg.Log)
	assert.False(t, cfg.ShowVersion)
}

func TestGetStructuredConfig_Version(t *testing.T) {
	clearEnvVars(t)

	cfg, _, err := GetStructuredConfig([]string{"-version"})
	require.NoError(t, err)
	assert.True(t, cfg.ShowVersion)
}

func TestGetStructuredConfig_LowIterationsRejected(t *testing.T) {
	clearEnvVars(t)

	cfg, _, err := GetStructuredConfig([]string{"-i", "1000"})
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidVaultConfigs)
}
