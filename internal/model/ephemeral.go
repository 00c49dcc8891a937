package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// The three keyed stores below are separate namespaces with their own TTL
// policy, even when one cache backs all of them.

// BlacklistStore marks access-token session ids as revoked.
type BlacklistStore interface {
	Add(ctx context.Context, sessionID string, ttl time.Duration) error
	Contains(ctx context.Context, sessionID string) (bool, error)
}

// VerificationStore keeps one email verification token per user plus the
// reverse index token -> user.
type VerificationStore interface {
	// Put replaces any previous token of the user.
	Put(ctx context.Context, userID uuid.UUID, token string, ttl time.Duration) error
	// LookupUser returns ErrNotFound for unknown or expired tokens.
	LookupUser(ctx context.Context, token string) (uuid.UUID, error)
	Delete(ctx context.Context, userID uuid.UUID) error
}

// ResetStore keeps pending password reset requests keyed by token.
type ResetStore interface {
	Save(ctx context.Context, token string, req PasswordResetRequest, ttl time.Duration) error
	// Get returns ErrNotFound for unknown tokens.
	Get(ctx context.Context, token string) (PasswordResetRequest, error)
	// DecrementAttempts atomically decrements and returns the remaining count.
	DecrementAttempts(ctx context.Context, token string) (int, error)
	// Consume atomically removes and returns the request. Only one caller
	// observes a given token; the rest get ErrNotFound.
	Consume(ctx context.Context, token string) (PasswordResetRequest, error)
	Delete(ctx context.Context, token string) error
}

// ResetThrottle bounds how often reset emails are produced per account.
type ResetThrottle interface {
	Allow(ctx context.Context, userID uuid.UUID) (bool, error)
}

// PasswordResetRequest is a pending reset.
type PasswordResetRequest struct {
	UserID            uuid.UUID
	Email             string
	ExpiresAt         time.Time
	AttemptsRemaining int
}

// IsExpired treats the expiry instant itself as expired.
func (r PasswordResetRequest) IsExpired(now time.Time) bool {
	return !now.Before(r.ExpiresAt)
}

// ResetStatus is the client-facing projection of a reset token.
type ResetStatus struct {
	IsValid           bool
	MaskedEmail       string
	ExpiresAt         *time.Time
	AttemptsRemaining int
}
