package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// TokenCodec mints and verifies signed access tokens.
type TokenCodec interface {
	// Issue signs an access token for user. A new random session id is used
	// when sessionID is empty.
	Issue(user User, sessionID string) (string, AccessClaims, error)
	// Verify checks signature, expiry, required claims and the blacklist.
	Verify(ctx context.Context, token string) (AccessClaims, error)
	// Decode checks the signature only, tolerating expired tokens.
	Decode(token string) (AccessClaims, error)
	TTL() time.Duration
}

// AccessClaims is the verified claim set of an access token.
type AccessClaims struct {
	Issuer    string
	Audience  []string
	Subject   string
	IssuedAt  time.Time
	ExpiresAt time.Time
	UserID    uuid.UUID
	Email     string
	SessionID string
}
