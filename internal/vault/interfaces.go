package vault

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/vault_mock.go -package=mock

// SecretVault is the surface of [Vault] used by the interactive menu and the
// one-shot commands.
type SecretVault interface {
	Path() string
	Exists(ctx context.Context) (bool, error)
	Unlock(ctx context.Context, password []byte) error
	IsNew() bool
	AddOrUpdate(label, value string) error
	Get(label string) (string, bool)
	Delete(label string) bool
	Labels() []string
	Len() int
	Dirty() bool
	Save(ctx context.Context) error
	Close()
}
