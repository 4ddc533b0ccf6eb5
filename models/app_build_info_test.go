package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewAppBuildInfo(t *testing.T) {
	info := NewAppBuildInfo("v1.2.0", "2026-10-01", "abc123")

	assert.Equal(t, "v1.2.0", info.BuildVersion())
	assert.Equal(t, "2026-10-01", info.BuildDate())
	assert.Equal(t, "abc123", info.BuildCommit())
	assert.Contains(t, info.String(), "Build commit: abc123")
}

func TestNewAppBuildInfo_EmptyValues(t *testing.T) {
	info := NewAppBuildInfo("", "", "")

	assert.Equal(t, "N/A", info.BuildVersion())
	assert.Equal(t, "N/A", info.BuildDate())
	assert.Equal(t, "N/A", info.BuildCommit())
}

func TestVaultContainer_Empty(t *testing.T) {
	assert.True(t, VaultContainer{}.Empty())
	assert.True(t, VaultContainer{Iterations: 1}.Empty())
	assert.False(t, VaultContainer{Salt: "c2FsdA=="}.Empty())
	assert.False(t, VaultContainer{Data: "ZGF0YQ=="}.Empty())
}
