package utils

import (
	"crypto/rand"
	"encoding/base64"
)

// GenerateSecureKey returns n random bytes, URL-safe base64 encoded. Used for
// JWT_SECRET and FINGERPRINT_KEY values.
func GenerateSecureKey(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
