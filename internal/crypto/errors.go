package crypto

import "errors"

var (
	// ErrKeyDerivation is returned when key derivation parameters are invalid.
	// Parameters are never silently replaced with defaults.
	ErrKeyDerivation = errors.New("key derivation failed")

	// ErrInvalidKey is returned when a key of the wrong length is handed to
	// the cipher.
	ErrInvalidKey = errors.New("invalid encryption key")

	// ErrMalformedCiphertext is returned when a sealed token is not valid
	// base64 or is shorter than nonce plus tag.
	ErrMalformedCiphertext = errors.New("malformed ciphertext")

	// ErrDecrypt is returned when the authentication tag does not verify:
	// either the key is wrong or the ciphertext was modified.
	ErrDecrypt = errors.New("decryption failed")

	// ErrSelfTest is returned by SelfTest when a primitive produces an
	// unexpected result.
	ErrSelfTest = errors.New("cryptographic self-test failed")
)
