package vault

import "errors"

// Sentinel errors returned by [Vault]. Callers should use [errors.Is] to
// match against these values; the wrapped cause is kept for logging.
var (
	// ErrAuthentication is returned when the stored blob does not
	// authenticate under the derived key. A wrong password and a modified
	// ciphertext are indistinguishable under AES-GCM, so both end
	// up here. The caller may retry with another password.
	ErrAuthentication = errors.New("wrong password or corrupted vault")

	// ErrCorruptVault is returned when the vault file is structurally
	// unusable: it is not a container, misses the salt or the data field, or
	// the decrypted payload is not a label to value mapping. Fatal; the file
	// is left untouched.
	ErrCorruptVault = errors.New("vault file is corrupted")

	// ErrValidation is returned by AddOrUpdate for an empty label or value.
	// It wraps the specific validators error.
	ErrValidation = errors.New("invalid entry")

	// ErrIO is returned when the vault file cannot be read or written. It
	// wraps the underlying filesystem error.
	ErrIO = errors.New("vault file i/o failed")

	// ErrNoPassword is returned by Unlock when no password was supplied.
	ErrNoPassword = errors.New("no password supplied")

	// ErrVaultLocked is returned by operations that need an unlocked vault.
	ErrVaultLocked = errors.New("vault is locked")

	// ErrVaultClosed is returned by every operation after Close.
	ErrVaultClosed = errors.New("vault is closed")

	// ErrAlreadyUnlocked is returned by Unlock on an unlocked vault.
	ErrAlreadyUnlocked = errors.New("vault is already unlocked")
)
