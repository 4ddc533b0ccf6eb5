package store

import (
	"context"

	"github.com/MKhiriev/go-safe-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// ContainerStorage persists a single [models.VaultContainer].
type ContainerStorage interface {
	// Path returns the location of the vault file.
	Path() string
	// Exists reports whether a vault file is present.
	Exists(ctx context.Context) (bool, error)
	// Load reads and decodes the vault file.
	Load(ctx context.Context) (models.VaultContainer, error)
	// Save replaces the vault file with container.
	Save(ctx context.Context, container models.VaultContainer) error
}
