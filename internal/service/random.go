package service

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// secretBytes is the entropy of refresh, reset and verification tokens.
const secretBytes = 32

// readRandom is a seam for tests that need to force entropy failures.
var readRandom = rand.Read

func newSecret() (string, error) {
	b := make([]byte, secretBytes)
	if _, err := readRandom(b); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// HashRefreshToken returns the lookup digest of a refresh token plaintext.
// Refresh tokens are high-entropy random values, so a fast hash suffices.
func HashRefreshToken(plaintext string) string {
	sum := sha256.Sum256([]byte(plaintext))
	return hex.EncodeToString(sum[:])
}
