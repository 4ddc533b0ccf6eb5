package tui

import (
	"context"

	"github.com/MKhiriev/go-safe-vault/internal/logger"
	"github.com/MKhiriev/go-safe-vault/internal/vault"
)

// session is shared by every page of one program run.
type session struct {
	ctx    context.Context
	vault  vault.SecretVault
	logger *logger.Logger
}
