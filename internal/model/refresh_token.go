package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// RefreshTokenStore persists the refresh-token ledger. Only hashes are stored.
type RefreshTokenStore interface {
	Create(ctx context.Context, token RefreshToken) error
	GetByHash(ctx context.Context, tokenHash string) (RefreshToken, error)
	GetByIDForUser(ctx context.Context, id, userID uuid.UUID) (RefreshToken, error)
	GetByHashForUser(ctx context.Context, tokenHash string, userID uuid.UUID) (RefreshToken, error)
	// Rotate revokes oldID and inserts replacement in one transaction. It
	// returns ErrTokenRevoked when oldID was revoked concurrently, in which
	// case nothing is written.
	Rotate(ctx context.Context, oldID uuid.UUID, replacement RefreshToken, now time.Time) error
	// Revoke reports whether the row transitioned to revoked.
	Revoke(ctx context.Context, id uuid.UUID, now time.Time, revokedBy *uuid.UUID) (bool, error)
	RevokeAllByUser(ctx context.Context, userID uuid.UUID, now time.Time, revokedBy *uuid.UUID) (int64, error)
	ListActiveByUser(ctx context.Context, userID uuid.UUID, now time.Time) ([]RefreshToken, error)
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

// DeviceInfo describes the client presenting credentials.
type DeviceInfo struct {
	Name      string
	IP        string
	UserAgent string
}

// RefreshToken is one ledger row. Its ID doubles as the session id carried by
// access tokens issued together with it.
type RefreshToken struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	TokenHash    string
	DeviceName   *string
	IPAddress    *string
	UserAgent    *string
	ExpiresAt    time.Time
	LastUsedAt   *time.Time
	RevokedAt    *time.Time
	RevokedBy    *uuid.UUID
	ReplacedByID *uuid.UUID
	CreatedAt    time.Time
}

// IsExpired treats the expiry instant itself as expired.
func (t RefreshToken) IsExpired(now time.Time) bool {
	return !now.Before(t.ExpiresAt)
}

func (t RefreshToken) IsRevoked() bool {
	return t.RevokedAt != nil
}

// IsRotated reports whether the row was superseded by a child token.
func (t RefreshToken) IsRotated() bool {
	return t.RevokedAt != nil && t.ReplacedByID != nil
}
