package crypto

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/pbkdf2"
)

// Published PBKDF2-HMAC-SHA256 vector: P="password", S="salt", c=1, dkLen=32.
const pbkdf2Vector = "120fb6cffcf8b32c43e7225256c4f837a86548c92ccc35480805987cb70be17b"

// SelfTest checks that PBKDF2-HMAC-SHA256 and AES-256-GCM behave as expected
// before any vault is touched.
func SelfTest() error {
	want, _ := hex.DecodeString(pbkdf2Vector)
	got := pbkdf2.Key([]byte("password"), []byte("salt"), 1, KeySize, sha256.New)
	if !bytes.Equal(got, want) {
		return fmt.Errorf("%w: pbkdf2 known answer mismatch", ErrSelfTest)
	}

	c := NewCipher()
	plaintext := []byte("self-test")
	token, err := c.Seal(plaintext, got)
	if err != nil {
		return fmt.Errorf("%w: seal: %w", ErrSelfTest, err)
	}
	opened, err := c.Open(token, got)
	if err != nil {
		return fmt.Errorf("%w: open: %w", ErrSelfTest, err)
	}
	if !bytes.Equal(opened, plaintext) {
		return fmt.Errorf("%w: aes-gcm round trip mismatch", ErrSelfTest)
	}
	return nil
}
