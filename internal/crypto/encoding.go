package crypto

import (
	"encoding/base64"
	"strings"
)

// EncodeBase64 encodes b with padded URL-safe base64, the encoding used for
// every binary field of a vault file.
func EncodeBase64(b []byte) string {
	return base64.URLEncoding.EncodeToString(b)
}

// DecodeBase64 decodes s as URL-safe base64, falling back to standard base64.
// Both padded and unpadded forms are accepted.
func DecodeBase64(s string) ([]byte, error) {
	s = strings.TrimSpace(s)
	encodings := []*base64.Encoding{
		base64.URLEncoding,
		base64.RawURLEncoding,
		base64.StdEncoding,
		base64.RawStdEncoding,
	}

	var firstErr error
	for _, enc := range encodings {
		b, err := enc.DecodeString(s)
		if err == nil {
			return b, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return nil, firstErr
}
