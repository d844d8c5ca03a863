package utils

import (
	"encoding/hex"
	"errors"

	"golang.org/x/crypto/blake2b"
)

var ErrEmptyFingerprintKey = errors.New("fingerprint key is empty")

// Fingerprint returns a keyed BLAKE2b-256 digest of a card number, hex
// encoded. The same number under the same key always yields the same value,
// so it can be stored and compared without keeping the number itself.
func Fingerprint(key, number string) (string, error) {
	if key == "" {
		return "", ErrEmptyFingerprintKey
	}
	k := []byte(key)
	if len(k) > blake2b.Size {
		sum := blake2b.Sum256(k)
		k = sum[:]
	}
	h, err := blake2b.New256(k)
	if err != nil {
		return "", err
	}
	h.Write([]byte(number))
	return hex.EncodeToString(h.Sum(nil)), nil
}
