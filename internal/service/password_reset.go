package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/helpdesk-auth/internal/logger"
	"github.com/dtroode/helpdesk-auth/internal/model"
)

const minPasswordLength = 8

// ResetConfig holds password reset policy.
type ResetConfig struct {
	TTL         time.Duration
	MaxAttempts int
}

// PasswordReset runs the self-service password reset flow.
type PasswordReset struct {
	users    model.CredentialStore
	hasher   model.PasswordHasher
	store    model.ResetStore
	throttle model.ResetThrottle
	ledger   *Ledger
	notifier model.Notifier
	metrics  model.Metrics
	clock    model.Clock
	cfg      ResetConfig
	logger   *logger.Logger
}

// NewPasswordReset creates the reset manager. throttle may be nil.
func NewPasswordReset(
	users model.CredentialStore,
	hasher model.PasswordHasher,
	store model.ResetStore,
	throttle model.ResetThrottle,
	ledger *Ledger,
	notifier model.Notifier,
	metrics model.Metrics,
	clock model.Clock,
	cfg ResetConfig,
	logger *logger.Logger,
) *PasswordReset {
	if clock == nil {
		clock = model.SystemClock{}
	}
	if metrics == nil {
		metrics = model.NopMetrics{}
	}
	return &PasswordReset{
		users:    users,
		hasher:   hasher,
		store:    store,
		throttle: throttle,
		ledger:   ledger,
		notifier: notifier,
		metrics:  metrics,
		clock:    clock,
		cfg:      cfg,
		logger:   logger,
	}
}

// RequestReset always reports true. A token is generated and sent only when
// the account exists, is active and is not throttled.
func (p *PasswordReset) RequestReset(ctx context.Context, email string) bool {
	p.metrics.PasswordResetRequested()
	email = normalizeEmail(email)

	user, err := p.users.GetByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, model.ErrNotFound) {
			p.logger.Error("Password reset: failed to get user by email",
				"email", MaskEmail(email),
				"error", err.Error())
		}
		return true
	}
	if !user.IsActive() {
		p.logger.Debug("Password reset: inactive account",
			"user_id", user.ID)
		return true
	}

	if p.throttle != nil {
		ok, err := p.throttle.Allow(ctx, user.ID)
		if err != nil {
			p.logger.Error("Password reset: throttle check failed",
				"user_id", user.ID,
				"error", err.Error())
			return true
		}
		if !ok {
			p.logger.Info("Password reset: request throttled",
				"user_id", user.ID)
			return true
		}
	}

	token, err := p.GenerateResetToken(ctx, user)
	if err != nil {
		p.logger.Error("Password reset: failed to generate token",
			"user_id", user.ID,
			"error", err.Error())
		return true
	}

	p.notifier.PasswordResetRequested(ctx, user, token)
	p.logger.Info("Password reset: token issued",
		"user_id", user.ID,
		"email", MaskEmail(user.Email))
	return true
}

// GenerateResetToken stores a new pending reset for user.
func (p *PasswordReset) GenerateResetToken(ctx context.Context, user model.User) (string, error) {
	token, err := newSecret()
	if err != nil {
		return "", err
	}

	req := model.PasswordResetRequest{
		UserID:            user.ID,
		Email:             user.Email,
		ExpiresAt:         p.clock.Now().Add(p.cfg.TTL),
		AttemptsRemaining: p.cfg.MaxAttempts,
	}
	if err := p.store.Save(ctx, token, req, p.cfg.TTL); err != nil {
		return "", fmt.Errorf("failed to store reset token: %w", err)
	}
	return token, nil
}

// ValidateResetToken reports the state of token without consuming attempts.
// Expired entries are evicted.
func (p *PasswordReset) ValidateResetToken(ctx context.Context, token string) (model.ResetStatus, error) {
	req, err := p.store.Get(ctx, token)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.ResetStatus{}, nil
		}
		return model.ResetStatus{}, fmt.Errorf("failed to get reset token: %w", err)
	}

	if req.IsExpired(p.clock.Now()) {
		p.evict(ctx, token)
		return model.ResetStatus{}, nil
	}

	status := model.ResetStatus{MaskedEmail: MaskEmail(req.Email)}
	if req.AttemptsRemaining <= 0 {
		return status, nil
	}

	expiresAt := req.ExpiresAt
	status.IsValid = true
	status.ExpiresAt = &expiresAt
	status.AttemptsRemaining = req.AttemptsRemaining
	return status, nil
}

// ConfirmReset sets a new password and revokes every refresh token of the
// user. Reusing the current password costs one attempt. The token is claimed
// before any write so concurrent confirmations cannot both succeed; it is put
// back when a later step fails.
func (p *PasswordReset) ConfirmReset(ctx context.Context, token, newPassword string) (model.User, error) {
	if len(newPassword) < minPasswordLength {
		return model.User{}, model.NewValidationError("password", fmt.Sprintf("must be at least %d characters", minPasswordLength))
	}

	req, err := p.store.Get(ctx, token)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			p.metrics.PasswordResetConfirmed("invalid")
			return model.User{}, model.ErrResetTokenInvalid
		}
		return model.User{}, fmt.Errorf("failed to get reset token: %w", err)
	}

	if req.IsExpired(p.clock.Now()) {
		p.evict(ctx, token)
		p.metrics.PasswordResetConfirmed("expired")
		return model.User{}, model.ErrResetTokenExpired
	}
	if req.AttemptsRemaining <= 0 {
		p.metrics.PasswordResetConfirmed("max_attempts")
		return model.User{}, model.ErrMaxAttemptsExceeded
	}

	user, err := p.users.GetByID(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			p.evict(ctx, token)
			return model.User{}, model.ErrResetTokenInvalid
		}
		return model.User{}, fmt.Errorf("failed to get user: %w", err)
	}

	if p.hasher.Matches(user.PasswordHash, newPassword) {
		return model.User{}, p.rejectSamePassword(ctx, token, user.ID)
	}

	hash, err := p.hasher.Hash(newPassword)
	if err != nil {
		return model.User{}, err
	}

	claimed, err := p.store.Consume(ctx, token)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			p.metrics.PasswordResetConfirmed("invalid")
			return model.User{}, model.ErrResetTokenInvalid
		}
		return model.User{}, fmt.Errorf("failed to claim reset token: %w", err)
	}
	if claimed.AttemptsRemaining <= 0 {
		p.restore(ctx, token, claimed)
		p.metrics.PasswordResetConfirmed("max_attempts")
		return model.User{}, model.ErrMaxAttemptsExceeded
	}

	if _, err := p.ledger.RevokeAll(ctx, user.ID, nil); err != nil {
		p.logger.Error("Password reset: failed to revoke sessions",
			"user_id", user.ID,
			"error", err.Error())
		p.restore(ctx, token, claimed)
		return model.User{}, err
	}
	if err := p.users.UpdatePassword(ctx, user.ID, hash); err != nil {
		p.restore(ctx, token, claimed)
		return model.User{}, fmt.Errorf("failed to update password: %w", err)
	}
	user.PasswordHash = hash

	p.notifier.PasswordResetCompleted(ctx, user)
	p.metrics.PasswordResetConfirmed("success")
	p.logger.Info("Password reset: password changed",
		"user_id", user.ID)

	return user, nil
}

func (p *PasswordReset) rejectSamePassword(ctx context.Context, token string, userID uuid.UUID) error {
	remaining, err := p.store.DecrementAttempts(ctx, token)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.ErrResetTokenInvalid
		}
		return fmt.Errorf("failed to decrement reset attempts: %w", err)
	}

	p.logger.Info("Password reset: new password equals current",
		"user_id", userID,
		"attempts_remaining", remaining)

	if remaining <= 0 {
		p.metrics.PasswordResetConfirmed("max_attempts")
		return fmt.Errorf("%w: %w", model.ErrMaxAttemptsExceeded, model.ErrSamePassword)
	}
	p.metrics.PasswordResetConfirmed("same_password")
	return model.ErrSamePassword
}

// restore puts a claimed request back for the rest of its lifetime.
func (p *PasswordReset) restore(ctx context.Context, token string, req model.PasswordResetRequest) {
	ttl := req.ExpiresAt.Sub(p.clock.Now())
	if ttl <= 0 {
		return
	}
	if err := p.store.Save(ctx, token, req, ttl); err != nil {
		p.logger.Error("Password reset: failed to restore reset token",
			"user_id", req.UserID,
			"error", err.Error())
	}
}

func (p *PasswordReset) evict(ctx context.Context, token string) {
	if err := p.store.Delete(ctx, token); err != nil {
		p.logger.Warn("Password reset: failed to delete reset token",
			"error", err.Error())
	}
}

// MaskEmail keeps the first and last character of the local part when it is
// longer than two characters, and only the first otherwise.
func MaskEmail(email string) string {
	at := strings.LastIndex(email, "@")
	if at < 0 {
		return email
	}
	local, domain := []rune(email[:at]), email[at+1:]

	switch {
	case len(local) == 0:
		return "***@" + domain
	case len(local) > 2:
		return string(local[0]) + "***" + string(local[len(local)-1]) + "@" + domain
	default:
		return string(local[0]) + "***@" + domain
	}
}
