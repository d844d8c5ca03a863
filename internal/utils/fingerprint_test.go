package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFingerprint(t *testing.T) {
	a, err := Fingerprint("secret", "4388543049475174")
	require.NoError(t, err)
	assert.Len(t, a, 64)

	again, err := Fingerprint("secret", "4388543049475174")
	require.NoError(t, err)
	assert.Equal(t, a, again)

	otherKey, err := Fingerprint("other", "4388543049475174")
	require.NoError(t, err)
	assert.NotEqual(t, a, otherKey)

	otherNumber, err := Fingerprint("secret", "5121075033109849")
	require.NoError(t, err)
	assert.NotEqual(t, a, otherNumber)
}

func TestFingerprint_LongKey(t *testing.T) {
	fp, err := Fingerprint(strings.Repeat("k", 100), "4388543049475174")
	require.NoError(t, err)
	assert.Len(t, fp, 64)
}

func TestFingerprint_EmptyKey(t *testing.T) {
	_, err := Fingerprint("", "4388543049475174")
	assert.ErrorIs(t, err, ErrEmptyFingerprintKey)
}

func TestGenerateSecureKey(t *testing.T) {
	a, err := GenerateSecureKey(32)
	require.NoError(t, err)
	b, err := GenerateSecureKey(32)
	require.NoError(t, err)

	assert.Len(t, a, 43)
	assert.NotEqual(t, a, b)
}
