// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package vault

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-safe-vault/internal/config"
	"github.com/MKhiriev/go-safe-vault/internal/crypto"
	"github.com/MKhiriev/go-safe-vault/internal/logger"
	"github.com/MKhiriev/go-safe-vault/internal/store"
	"github.com/MKhiriev/go-safe-vault/internal/validators"
	"github.com/MKhiriev/go-safe-vault/models"
	"github.com/awnumar/memguard"
)

// Vault owns the decrypted secrets of one vault file for the length of a
// session.
//
// The derived key is cached in a locked buffer from Unlock until Close.
// Entry operations only touch memory; the file is written by Save alone.
// A Vault is not safe for concurrent use.
type Vault struct {
	cfg       config.Vault
	storage   store.ContainerStorage
	deriver   crypto.KeyDeriver
	cipher    crypto.Cipher
	validator validators.Validator
	logger    *logger.Logger

	state      State
	isNew      bool
	dirty      bool
	salt       []byte
	iterations int
	key        *memguard.LockedBuffer
	secrets    *collection
}

// New constructs a locked [Vault] on top of storage.
func New(
	cfg config.Vault,
	storage store.ContainerStorage,
	deriver crypto.KeyDeriver,
	cipher crypto.Cipher,
	validator validators.Validator,
	log *logger.Logger,
) *Vault {
	return &Vault{
		cfg:       cfg,
		storage:   storage,
		deriver:   deriver,
		cipher:    cipher,
		validator: validator,
		logger:    log.WithComponent("vault"),
		state:     StateLocked,
	}
}

// State returns the current lifecycle state.
func (v *Vault) State() State {
	return v.state
}

// Path returns the location of the backing vault file.
func (v *Vault) Path() string {
	return v.storage.Path()
}

// Exists reports whether the backing file is present, i.e. whether Unlock
// will open an existing vault or create a new one.
func (v *Vault) Exists(ctx context.Context) (bool, error) {
	ok, err := v.storage.Exists(ctx)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrIO, err)
	}
	return ok, nil
}

// IsNew reports whether the unlocked vault has never been saved.
func (v *Vault) IsNew() bool {
	return v.state == StateUnlocked && v.isNew
}

// Unlock derives the key from password and makes the secrets available.
//
// Unlock takes ownership of password: its bytes are moved into a locked
// buffer and the caller's slice is wiped, whatever the outcome.
//
// When no vault file exists a fresh salt is generated and an empty vault is
// started with the configured iteration count. Otherwise the file is read,
// the iteration count stored in it is used, and the blob is decrypted.
//
// Errors:
//   - ErrNoPassword when password is empty;
//   - ErrAuthentication when the blob does not decrypt (retry allowed);
//   - ErrCorruptVault when the file is structurally broken;
//   - crypto.ErrKeyDerivation when the stored parameters are unusable;
//   - ErrIO when the file cannot be read.
//
// On failure the vault holds no key and no secrets.
func (v *Vault) Unlock(ctx context.Context, password []byte) error {
	switch v.state {
	case StateUnlocked:
		memguard.WipeBytes(password)
		return ErrAlreadyUnlocked
	case StateClosed:
		memguard.WipeBytes(password)
		return ErrVaultClosed
	}

	if len(password) == 0 {
		return ErrNoPassword
	}

	pw := memguard.NewBufferFromBytes(password)
	defer pw.Destroy()

	v.state = StateUnlocking

	exists, err := v.storage.Exists(ctx)
	if err != nil {
		v.state = StateLocked
		return fmt.Errorf("%w: %w", ErrIO, err)
	}

	if !exists {
		err = v.create(pw)
	} else {
		err = v.open(ctx, pw)
	}
	if err != nil {
		v.logger.Warn().Err(err).Str("state", v.state.String()).Msg("unlock failed")
		return err
	}

	v.state = StateUnlocked
	v.dirty = false
	v.logger.Info().
		Bool("new", v.isNew).
		Int("entries", v.secrets.size()).
		Int("iterations", v.iterations).
		Msg("vault unlocked")
	return nil
}

func (v *Vault) create(pw *memguard.LockedBuffer) error {
	salt, err := v.deriver.GenerateSalt()
	if err != nil {
		v.state = StateLocked
		return fmt.Errorf("create vault: %w", err)
	}

	key, err := v.deriver.DeriveKey(pw, salt, crypto.KDFParams{Iterations: v.cfg.Iterations, KeyLen: crypto.KeySize})
	if err != nil {
		v.state = StateLockedOut
		return err
	}

	v.salt = salt
	v.iterations = v.cfg.Iterations
	v.key = key
	v.secrets = newCollection()
	v.isNew = true
	return nil
}

func (v *Vault) open(ctx context.Context, pw *memguard.LockedBuffer) error {
	container, err := v.storage.Load(ctx)
	if err != nil {
		if errors.Is(err, store.ErrContainerMalformed) {
			v.state = StateLockedOut
			return fmt.Errorf("%w: %w", ErrCorruptVault, err)
		}
		v.state = StateLocked
		return fmt.Errorf("%w: %w", ErrIO, err)
	}

	v.state = StateLockedOut

	if container.Salt == "" {
		return fmt.Errorf("%w: missing salt", ErrCorruptVault)
	}
	if container.Data == "" {
		return fmt.Errorf("%w: missing data", ErrCorruptVault)
	}

	salt, err := crypto.DecodeBase64(container.Salt)
	if err != nil {
		return fmt.Errorf("%w: salt: %w", ErrCorruptVault, err)
	}

	// The stored count is authoritative. Files written before the field
	// existed fall back to the configured count.
	iterations := container.Iterations
	if iterations == 0 {
		iterations = v.cfg.Iterations
	}

	key, err := v.deriver.DeriveKey(pw, salt, crypto.KDFParams{Iterations: iterations, KeyLen: crypto.KeySize})
	if err != nil {
		return err
	}

	plaintext, err := v.cipher.Open(container.Data, key.Bytes())
	if err != nil {
		key.Destroy()
		switch {
		case errors.Is(err, crypto.ErrDecrypt):
			return ErrAuthentication
		case errors.Is(err, crypto.ErrMalformedCiphertext):
			return fmt.Errorf("%w: %w", ErrCorruptVault, err)
		default:
			return fmt.Errorf("open vault: %w", err)
		}
	}

	secrets, err := decodeCollection(plaintext)
	memguard.WipeBytes(plaintext)
	if err != nil {
		key.Destroy()
		return fmt.Errorf("%w: %w", ErrCorruptVault, err)
	}

	v.salt = salt
	v.iterations = iterations
	v.key = key
	v.secrets = secrets
	v.isNew = false
	return nil
}

func (v *Vault) requireUnlocked() error {
	switch v.state {
	case StateUnlocked:
		return nil
	case StateClosed:
		return ErrVaultClosed
	default:
		return ErrVaultLocked
	}
}

// AddOrUpdate stores value under label, replacing any previous value.
// An empty label or value is rejected with ErrValidation and nothing changes.
func (v *Vault) AddOrUpdate(label, value string) error {
	if err := v.requireUnlocked(); err != nil {
		return err
	}

	entry := models.Entry{Label: label, Value: value}
	if err := v.validator.Validate(context.Background(), entry); err != nil {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}

	v.secrets.store(label, value)
	v.dirty = true
	return nil
}

// Get returns the value stored under label. The boolean is false when the
// label is absent or the vault is not unlocked.
func (v *Vault) Get(label string) (string, bool) {
	if v.requireUnlocked() != nil {
		return "", false
	}
	return v.secrets.load(label)
}

// Delete removes label and reports whether it was present.
func (v *Vault) Delete(label string) bool {
	if v.requireUnlocked() != nil {
		return false
	}
	if !v.secrets.remove(label) {
		return false
	}
	v.dirty = true
	return true
}

// Labels returns every label in sorted order. It never returns nil.
func (v *Vault) Labels() []string {
	if v.requireUnlocked() != nil {
		return []string{}
	}
	return v.secrets.labels()
}

// Len returns the number of stored entries.
func (v *Vault) Len() int {
	if v.requireUnlocked() != nil {
		return 0
	}
	return v.secrets.size()
}

// Dirty reports whether there are changes that Save has not written yet.
func (v *Vault) Dirty() bool {
	return v.state == StateUnlocked && v.dirty
}

// Save re-encrypts the whole collection under the cached key with a fresh
// nonce and replaces the vault file. The salt and iteration count are
// written unchanged.
//
// A storage failure is returned as ErrIO; the vault stays unlocked with
// its changes so the caller can retry.
func (v *Vault) Save(ctx context.Context) error {
	if err := v.requireUnlocked(); err != nil {
		return err
	}

	plaintext, err := v.secrets.encode()
	if err != nil {
		return fmt.Errorf("encode secrets: %w", err)
	}
	token, err := v.cipher.Seal(plaintext, v.key.Bytes())
	memguard.WipeBytes(plaintext)
	if err != nil {
		return fmt.Errorf("seal secrets: %w", err)
	}

	container := models.VaultContainer{
		Salt:       crypto.EncodeBase64(v.salt),
		Iterations: v.iterations,
		Data:       token,
	}
	if err := v.storage.Save(ctx, container); err != nil {
		v.logger.Error().Err(err).Str("path", v.storage.Path()).Msg("save failed")
		return fmt.Errorf("%w: %w", ErrIO, err)
	}

	v.dirty = false
	v.isNew = false
	v.logger.Info().Int("entries", v.secrets.size()).Str("path", v.storage.Path()).Msg("vault saved")
	return nil
}

// Close discards the secrets and destroys the key without writing anything.
// Calling Close more than once is safe.
func (v *Vault) Close() {
	if v.state == StateClosed {
		return
	}
	if v.key != nil {
		v.key.Destroy()
		v.key = nil
	}
	if v.secrets != nil {
		v.secrets.reset()
		v.secrets = nil
	}
	memguard.WipeBytes(v.salt)
	v.salt = nil
	v.dirty = false
	v.state = StateClosed
	v.logger.Debug().Msg("vault closed")
}
