// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"strings"

	"carvalue/internal/domain/service"

	"github.com/pkg/errors"
	"golang.org/x/crypto/scrypt"
)

// scrypt parameters. The stored credential format is "salt.hash" with both
// segments hex-encoded: 8 random salt bytes (16 hex chars) and a 32-byte
// derived key (64 hex chars).
const (
	scryptN      = 16384
	scryptR      = 8
	scryptP      = 1
	scryptKeyLen = 32
	saltLen      = 8
)

// credentialSeparator joins the salt and hash segments of a stored credential.
const credentialSeparator = "."

// scryptHasher is a concrete implementation of the PasswordHasher interface using scrypt.
type scryptHasher struct{}

// NewScryptHasher is the constructor for scryptHasher.
// It returns the implementation as a service.PasswordHasher interface.
func NewScryptHasher() service.PasswordHasher {
	return &scryptHasher{}
}

// Hash generates a salted credential from a plaintext password.
// A fresh random salt is drawn per call, so the same plaintext never produces
// the same credential twice. Failure to draw randomness or derive the key is
// fatal for the call and propagates.
func (h *scryptHasher) Hash(password string) (string, error) {
	saltBytes := make([]byte, saltLen)
	if _, err := rand.Read(saltBytes); err != nil {
		return "", errors.Wrap(err, "failed to generate salt")
	}
	salt := hex.EncodeToString(saltBytes)

	hash, err := h.derive(password, salt)
	if err != nil {
		return "", err
	}

	return salt + credentialSeparator + hash, nil
}

// Check compares a plaintext password with a stored "salt.hash" credential.
// The derived key comparison is constant-time; malformed credentials never match.
func (h *scryptHasher) Check(password, credential string) bool {
	salt, storedHash, ok := strings.Cut(credential, credentialSeparator)
	if !ok || salt == "" || storedHash == "" {
		return false
	}

	computed, err := h.derive(password, salt)
	if err != nil {
		return false
	}

	return subtle.ConstantTimeCompare([]byte(computed), []byte(storedHash)) == 1
}

// derive is the deterministic half of the codec: the same (password, salt)
// pair always yields the same hex-encoded key.
func (h *scryptHasher) derive(password, salt string) (string, error) {
	key, err := scrypt.Key([]byte(password), []byte(salt), scryptN, scryptR, scryptP, scryptKeyLen)
	if err != nil {
		return "", errors.Wrap(err, "failed to derive scrypt key")
	}

	return hex.EncodeToString(key), nil
}
