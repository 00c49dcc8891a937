package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// UserStatus is the lifecycle state of an account.
type UserStatus string

const (
	UserStatusActive    UserStatus = "active"
	UserStatusSuspended UserStatus = "suspended"
	UserStatusDeleted   UserStatus = "deleted"
)

// DefaultRoleCode is assigned to every self-registered account.
const DefaultRoleCode = "USER"

// CredentialStore is the account storage the session core consults.
// Status and last-login are mutated by the session manager, the password hash
// only by the password reset flow.
type CredentialStore interface {
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByID(ctx context.Context, id uuid.UUID) (User, error)
	// Create stores the account, its profile and its initial role atomically.
	Create(ctx context.Context, user User, profile Profile, roleCode string) (User, error)
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error
	UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time, ip string) error
	MarkEmailVerified(ctx context.Context, id uuid.UUID, at time.Time) error
}

// PasswordHasher hashes human-chosen passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Matches(hash, password string) bool
}

// User represents a stored account.
type User struct {
	ID              uuid.UUID
	Email           string
	PasswordHash    string
	Status          UserStatus
	EmailVerified   bool
	EmailVerifiedAt *time.Time
	LastLoginAt     *time.Time
	LastLoginIP     *string
	Profile         Profile
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Profile holds the personal data captured at registration.
type Profile struct {
	FirstName   string
	LastName    string
	PhoneNumber *string
	Language    string
	Timezone    string
	Theme       string
}

func (u User) IsActive() bool {
	return u.Status == UserStatusActive
}

func (u User) IsSuspended() bool {
	return u.Status == UserStatusSuspended
}
