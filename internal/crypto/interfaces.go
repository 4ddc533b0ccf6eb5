package crypto

import "github.com/awnumar/memguard"

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// KeyDeriver turns a master password into a fixed-length symmetric key.
//
// Derivation is deterministic: the same password, salt and parameters always
// produce the same key, which is what lets a later decryption act as the
// password check.
type KeyDeriver interface {
	// GenerateSalt returns SaltSize fresh random bytes. A salt is generated
	// once per vault and stored next to the ciphertext in clear.
	GenerateSalt() ([]byte, error)

	// DeriveKey runs PBKDF2-HMAC-SHA256 over password and salt.
	//
	// DeriveKey takes ownership of password: the buffer is destroyed before
	// the call returns, whether or not derivation succeeds. The caller owns
	// the returned key and must Destroy it.
	//
	// Returns an error wrapping ErrKeyDerivation when the salt is not
	// SaltSize bytes, params.KeyLen is not KeySize or params.Iterations is
	// below MinIterations.
	DeriveKey(password *memguard.LockedBuffer, salt []byte, params KDFParams) (*memguard.LockedBuffer, error)
}

// Cipher performs authenticated encryption of a whole plaintext blob.
type Cipher interface {
	// Seal encrypts plaintext under key with a fresh random nonce and returns
	// base64url(nonce || ciphertext || tag).
	Seal(plaintext, key []byte) (string, error)

	// Open reverses Seal. It returns ErrMalformedCiphertext when token cannot
	// be decoded or is too short, and ErrDecrypt when authentication fails.
	Open(token string, key []byte) ([]byte, error)
}
