// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the user-facing message strings shared by the
// interactive menu and the one-shot commands, and the mapping from vault
// errors to those messages.
//
// Keeping them in one place ensures consistent wording on every surface.
package app

const (
	// MsgAuthenticationFailed is shown for a wrong password. A tampered
	// ciphertext cannot be told apart and gets the same message.
	MsgAuthenticationFailed = "Authentication failed. Invalid password or corrupted vault file."

	// MsgCorruptVault is shown when the vault file cannot be parsed.
	MsgCorruptVault = "The vault file is corrupted and cannot be opened. It was left untouched."

	// MsgKeyDerivation is shown when the stored key derivation parameters
	// are unusable.
	MsgKeyDerivation = "The vault file has unusable key derivation parameters."

	// MsgEmptyEntry is shown when a label or value is missing.
	MsgEmptyEntry = "Key and value cannot be empty."

	// MsgInvalidEncoding is shown when a label or value is not valid UTF-8.
	MsgInvalidEncoding = "Key and value must be valid UTF-8 text."

	// MsgIOFailure is shown when the vault file cannot be read or written.
	MsgIOFailure = "Could not access the vault file. Check the path and permissions."

	// MsgNoPassword is shown when the password prompt was cancelled.
	MsgNoPassword = "No password supplied."

	// MsgVaultLocked is shown when an operation runs before unlock.
	MsgVaultLocked = "The vault is locked."

	// MsgVaultClosed is shown when an operation runs after close.
	MsgVaultClosed = "The vault is closed."

	// MsgUnexpected is the fallback for errors without a specific message.
	MsgUnexpected = "An unexpected error occurred."

	MsgVaultEmpty         = "The vault is empty."
	MsgEntryNotFound      = "Entry '%s' not found."
	MsgEntrySaved         = "Entry '%s' added/updated."
	MsgEntryDeleted       = "Entry '%s' deleted."
	MsgVaultSaved         = "Vault saved successfully."
	MsgChangesDiscarded   = "Exiting without saving. Changes are discarded."
	MsgPasswordsDontMatch = "Passwords do not match. Try again."
	MsgPasswordEmpty      = "Password cannot be empty. Try again."
	MsgWeakPassword       = "Weak master password (%s, cracked in %s). Consider a longer passphrase."
	MsgCopiedToClipboard  = "Value copied to clipboard."
	MsgValueInArguments   = "Warning: a value passed as an argument is visible in shell history and the process list. Omit it to be prompted."
)
