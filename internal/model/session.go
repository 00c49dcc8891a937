package model

import (
	"time"

	"github.com/google/uuid"
)

// AuthResult is returned by register and login.
type AuthResult struct {
	User                 User
	AccessToken          string
	RefreshToken         string
	ExpiresIn            time.Duration
	SessionID            string
	RequiresVerification bool
}

// TokenPair is returned by refresh rotation.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    time.Duration
	SessionID    string
}

// SessionSummary is the read-only projection of an active ledger row.
type SessionSummary struct {
	ID         uuid.UUID
	DeviceName *string
	IPAddress  *string
	LastUsedAt *time.Time
	CreatedAt  time.Time
	ExpiresAt  time.Time
	IsCurrent  bool
}

// AuthenticatedUser is the identity behind a verified access token.
type AuthenticatedUser struct {
	User           User
	SessionID      string
	TokenExpiresAt time.Time
}

// VerificationStatus describes the email verification state of an account.
type VerificationStatus struct {
	IsVerified bool
	VerifiedAt *time.Time
	Email      string
}

// RegisterInput carries registration credentials and profile data.
type RegisterInput struct {
	Email       string `validate:"required,email,max=255"`
	Password    string `validate:"required,min=8,max=72"`
	FirstName   string `validate:"required,max=100"`
	LastName    string `validate:"required,max=100"`
	PhoneNumber *string
	Language    string `validate:"omitempty,max=10"`
	Timezone    string `validate:"omitempty,max=64"`
	Theme       string `validate:"omitempty,oneof=light dark"`
}
