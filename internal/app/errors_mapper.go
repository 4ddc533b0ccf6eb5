package app

import (
	"errors"

	"github.com/MKhiriev/go-safe-vault/internal/crypto"
	"github.com/MKhiriev/go-safe-vault/internal/validators"
	"github.com/MKhiriev/go-safe-vault/internal/vault"
)

// UserMessage translates an error returned by the vault into a message fit
// for the terminal. Unknown errors map to MsgUnexpected so internal details
// are only ever written to the log.
func UserMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, vault.ErrAuthentication):
		return MsgAuthenticationFailed
	case errors.Is(err, vault.ErrCorruptVault):
		return MsgCorruptVault
	case errors.Is(err, crypto.ErrKeyDerivation):
		return MsgKeyDerivation
	case errors.Is(err, validators.ErrInvalidEncoding):
		return MsgInvalidEncoding
	case errors.Is(err, vault.ErrValidation),
		errors.Is(err, validators.ErrEmptyLabel),
		errors.Is(err, validators.ErrEmptyValue):
		return MsgEmptyEntry
	case errors.Is(err, vault.ErrIO):
		return MsgIOFailure
	case errors.Is(err, vault.ErrNoPassword):
		return MsgNoPassword
	case errors.Is(err, vault.ErrVaultLocked):
		return MsgVaultLocked
	case errors.Is(err, vault.ErrVaultClosed):
		return MsgVaultClosed
	default:
		return MsgUnexpected
	}
}

// Retryable reports whether the user can recover from err by trying again
// within the same session (another password, another entry, another save).
func Retryable(err error) bool {
	return errors.Is(err, vault.ErrAuthentication) ||
		errors.Is(err, vault.ErrValidation) ||
		errors.Is(err, vault.ErrIO)
}
