// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"crypto/sha256"
	"fmt"
	"io"

	"github.com/awnumar/memguard"
	"golang.org/x/crypto/pbkdf2"
)

const (
	// SaltSize is the length of a vault salt in bytes.
	SaltSize = 16
	// KeySize is the length of a derived key in bytes (AES-256).
	KeySize = 32
	// MinIterations is the lowest PBKDF2 iteration count accepted.
	MinIterations = 100_000
	// MaxIterations is the highest count accepted. The stored count is not
	// authenticated, so a larger value is treated as a damaged file.
	MaxIterations = 10_000_000
	// DefaultIterations is the iteration count used for new vaults.
	DefaultIterations = 480_000
)

// KDFParams are the tunable inputs of key derivation.
type KDFParams struct {
	Iterations int
	KeyLen     int
}

// DefaultKDFParams returns the parameters used when nothing else is configured.
func DefaultKDFParams() KDFParams {
	return KDFParams{Iterations: DefaultIterations, KeyLen: KeySize}
}

// Validate reports whether p can be used for derivation.
func (p KDFParams) Validate() error {
	if p.Iterations < MinIterations {
		return fmt.Errorf("%w: iterations %d below minimum %d", ErrKeyDerivation, p.Iterations, MinIterations)
	}
	if p.Iterations > MaxIterations {
		return fmt.Errorf("%w: iterations %d above maximum %d", ErrKeyDerivation, p.Iterations, MaxIterations)
	}
	if p.KeyLen != KeySize {
		return fmt.Errorf("%w: key length %d, want %d", ErrKeyDerivation, p.KeyLen, KeySize)
	}
	return nil
}

type pbkdf2Deriver struct {
	random io.Reader
}

// NewKeyDeriver returns a [KeyDeriver] backed by PBKDF2-HMAC-SHA256 and the
// OS CSPRNG.
func NewKeyDeriver() KeyDeriver {
	return &pbkdf2Deriver{random: rand.Reader}
}

func (d *pbkdf2Deriver) GenerateSalt() ([]byte, error) {
	salt := make([]byte, SaltSize)
	if _, err := io.ReadFull(d.random, salt); err != nil {
		return nil, fmt.Errorf("generate salt: %w", err)
	}
	return salt, nil
}

func (d *pbkdf2Deriver) DeriveKey(password *memguard.LockedBuffer, salt []byte, params KDFParams) (*memguard.LockedBuffer, error) {
	if password == nil {
		return nil, fmt.Errorf("%w: no password buffer", ErrKeyDerivation)
	}
	defer password.Destroy()

	if len(salt) != SaltSize {
		return nil, fmt.Errorf("%w: salt length %d, want %d", ErrKeyDerivation, len(salt), SaltSize)
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}

	// NewBufferFromBytes wipes the intermediate slice.
	key := pbkdf2.Key(password.Bytes(), salt, params.Iterations, params.KeyLen, sha256.New)
	return memguard.NewBufferFromBytes(key), nil
}
