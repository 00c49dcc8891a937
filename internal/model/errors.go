package model

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")

	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountSuspended   = errors.New("account suspended")
	ErrAccountInactive    = errors.New("account inactive")

	ErrTokenExpired     = errors.New("token expired")
	ErrTokenRevoked     = errors.New("token revoked")
	ErrTokenNotFound    = errors.New("token not found")
	ErrTokenMalformed   = errors.New("token malformed")
	ErrTokenNotYetValid = errors.New("token not yet valid")
	ErrTokenBlacklisted = errors.New("token blacklisted")
	ErrBadSignature     = errors.New("token signature invalid")
	ErrMissingClaim     = errors.New("token missing required claim")
	// ErrInvalidToken covers issuer, audience and algorithm mismatches.
	ErrInvalidToken = errors.New("invalid token")

	ErrSessionAlreadyRevoked      = errors.New("session already revoked")
	ErrCannotRevokeCurrentSession = errors.New("cannot revoke current session")

	ErrResetTokenInvalid   = errors.New("invalid or expired reset token")
	ErrResetTokenExpired   = errors.New("reset token has expired")
	ErrMaxAttemptsExceeded = errors.New("maximum reset attempts exceeded")
	ErrSamePassword        = errors.New("new password must be different from current password")

	ErrVerificationTokenInvalid = errors.New("invalid or expired verification token")
	ErrEmailAlreadyVerified     = errors.New("email already verified")

	ErrValidation = errors.New("validation failed")
)

// ValidationError reports a rejected input field.
type ValidationError struct {
	Field   string
	Message string
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

func (e *ValidationError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%v: %s", ErrValidation, e.Field)
	}
	return fmt.Sprintf("%v: %s: %s", ErrValidation, e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NotFoundError reports a missing resource by its logical name ("user", "session").
type NotFoundError struct {
	Resource string
}

func NewNotFoundError(resource string) *NotFoundError {
	return &NotFoundError{Resource: resource}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %v", e.Resource, ErrNotFound)
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// MissingClaimError names the first required claim absent from an access token.
type MissingClaimError struct {
	Claim string
}

func (e *MissingClaimError) Error() string {
	return fmt.Sprintf("%v: %s", ErrMissingClaim, e.Claim)
}

func (e *MissingClaimError) Unwrap() error { return ErrMissingClaim }
