package auth

import (
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScryptHasher_Hash(t *testing.T) {
	hasher := NewScryptHasher()

	password := "pw"
	credential, err := hasher.Hash(password)
	require.NoError(t, err)
	assert.NotEmpty(t, credential)
	assert.NotEqual(t, password, credential)
	assert.NotContains(t, credential, password)

	// Credential splits on "." into exactly two non-empty hex segments.
	salt, hash, ok := strings.Cut(credential, ".")
	require.True(t, ok)
	assert.Len(t, salt, 16)
	assert.Len(t, hash, 64)

	_, err = hex.DecodeString(salt)
	assert.NoError(t, err)
	_, err = hex.DecodeString(hash)
	assert.NoError(t, err)
}

func TestScryptHasher_DistinctSaltsPerCall(t *testing.T) {
	hasher := NewScryptHasher()

	first, err := hasher.Hash("same-password")
	require.NoError(t, err)
	second, err := hasher.Hash("same-password")
	require.NoError(t, err)

	// Same plaintext, different stored credentials.
	assert.NotEqual(t, first, second)

	firstSalt, firstHash, _ := strings.Cut(first, ".")
	secondSalt, secondHash, _ := strings.Cut(second, ".")
	assert.NotEqual(t, firstSalt, secondSalt)
	assert.NotEqual(t, firstHash, secondHash)
}

func TestScryptHasher_Check(t *testing.T) {
	hasher := NewScryptHasher()
	password := "correct horse battery staple"

	credential, err := hasher.Hash(password)
	require.NoError(t, err)

	assert.True(t, hasher.Check(password, credential))
	assert.False(t, hasher.Check("wrong password", credential))
	assert.False(t, hasher.Check("", credential))

	// Malformed credentials never match.
	assert.False(t, hasher.Check(password, "not-a-credential"))
	assert.False(t, hasher.Check(password, ".missing-salt"))
	assert.False(t, hasher.Check(password, "missing-hash."))
	assert.False(t, hasher.Check(password, ""))
}

func TestScryptHasher_CheckIsDeterministicGivenSalt(t *testing.T) {
	hasher := NewScryptHasher()

	credential, err := hasher.Hash("pw")
	require.NoError(t, err)

	// Verification is pure: repeated checks agree.
	for range 3 {
		assert.True(t, hasher.Check("pw", credential))
	}
}
