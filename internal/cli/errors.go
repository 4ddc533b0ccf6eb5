package cli

import "errors"

var (
	// ErrUsage is returned for an unknown command or a wrong argument count.
	ErrUsage = errors.New("usage error")

	// ErrEntryNotFound is returned by get and delete for an absent label.
	ErrEntryNotFound = errors.New("entry not found")

	// ErrVaultNotFound is returned by read-only commands when there is no
	// vault file to open. Only put creates a vault.
	ErrVaultNotFound = errors.New("vault file not found")

	// ErrPasswordMismatch is returned when the confirmation of a new master
	// password differs.
	ErrPasswordMismatch = errors.New("passwords do not match")
)
