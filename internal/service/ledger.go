package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/helpdesk-auth/internal/logger"
	"github.com/dtroode/helpdesk-auth/internal/model"
)

// LedgerConfig holds refresh token policy.
type LedgerConfig struct {
	RefreshTTL time.Duration
	// RevokeAllOnReuse revokes every token of a user when a rotated-out
	// token is presented again.
	RevokeAllOnReuse bool
}

// IssuedRefreshToken carries the plaintext, returned exactly once.
type IssuedRefreshToken struct {
	Plaintext string
	Record    model.RefreshToken
}

// Ledger manages the lifecycle of refresh tokens. Only hashes are persisted.
type Ledger struct {
	store   model.RefreshTokenStore
	users   model.CredentialStore
	codec   model.TokenCodec
	clock   model.Clock
	metrics model.Metrics
	cfg     LedgerConfig
	logger  *logger.Logger
}

func NewLedger(
	store model.RefreshTokenStore,
	users model.CredentialStore,
	codec model.TokenCodec,
	clock model.Clock,
	metrics model.Metrics,
	cfg LedgerConfig,
	logger *logger.Logger,
) *Ledger {
	if clock == nil {
		clock = model.SystemClock{}
	}
	if metrics == nil {
		metrics = model.NopMetrics{}
	}
	return &Ledger{
		store:   store,
		users:   users,
		codec:   codec,
		clock:   clock,
		metrics: metrics,
		cfg:     cfg,
		logger:  logger,
	}
}

// Issue persists a new refresh token for user.
func (l *Ledger) Issue(ctx context.Context, user model.User, device model.DeviceInfo) (IssuedRefreshToken, error) {
	record, plaintext, err := l.newRecord(user.ID, device, l.clock.Now())
	if err != nil {
		return IssuedRefreshToken{}, err
	}

	if err := l.store.Create(ctx, record); err != nil {
		l.logger.Error("Ledger: failed to persist refresh token",
			"user_id", user.ID,
			"error", err.Error())
		return IssuedRefreshToken{}, fmt.Errorf("failed to persist refresh token: %w", err)
	}

	l.logger.Debug("Ledger: refresh token issued",
		"user_id", user.ID,
		"session_id", record.ID)

	return IssuedRefreshToken{Plaintext: plaintext, Record: record}, nil
}

// Validate resolves a plaintext token to its record and owner. Checks run in
// order: existence, expiry, revocation, account status.
func (l *Ledger) Validate(ctx context.Context, plaintext string) (model.RefreshToken, model.User, error) {
	record, err := l.store.GetByHash(ctx, HashRefreshToken(plaintext))
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.RefreshToken{}, model.User{}, model.ErrTokenNotFound
		}
		return model.RefreshToken{}, model.User{}, fmt.Errorf("failed to get refresh token: %w", err)
	}

	if record.IsExpired(l.clock.Now()) {
		return model.RefreshToken{}, model.User{}, model.ErrTokenExpired
	}

	if record.IsRevoked() {
		if record.IsRotated() {
			l.reuseDetected(ctx, record)
		}
		return model.RefreshToken{}, model.User{}, model.ErrTokenRevoked
	}

	user, err := l.users.GetByID(ctx, record.UserID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.RefreshToken{}, model.User{}, model.ErrAccountInactive
		}
		return model.RefreshToken{}, model.User{}, fmt.Errorf("failed to get token owner: %w", err)
	}
	if !user.IsActive() {
		return model.RefreshToken{}, model.User{}, model.ErrAccountInactive
	}

	return record, user, nil
}

// Rotate exchanges a valid refresh token for a new pair. The parent is
// revoked in the same transaction that persists its child; the access token
// carries the child's id as session id.
func (l *Ledger) Rotate(ctx context.Context, plaintext string, device model.DeviceInfo) (model.TokenPair, error) {
	parent, user, err := l.Validate(ctx, plaintext)
	if err != nil {
		return model.TokenPair{}, err
	}

	if device == (model.DeviceInfo{}) {
		device = deviceOf(parent)
	}

	now := l.clock.Now()
	child, childPlaintext, err := l.newRecord(user.ID, device, now)
	if err != nil {
		return model.TokenPair{}, err
	}
	child.LastUsedAt = &now

	access, _, err := l.codec.Issue(user, child.ID.String())
	if err != nil {
		return model.TokenPair{}, fmt.Errorf("failed to issue access token: %w", err)
	}

	if err := l.store.Rotate(ctx, parent.ID, child, now); err != nil {
		switch {
		case errors.Is(err, model.ErrTokenRevoked):
			l.logger.Warn("Ledger: concurrent rotation lost",
				"user_id", user.ID,
				"session_id", parent.ID)
			return model.TokenPair{}, model.ErrTokenRevoked
		case errors.Is(err, model.ErrNotFound):
			return model.TokenPair{}, model.ErrTokenNotFound
		}
		l.logger.Error("Ledger: failed to rotate refresh token",
			"user_id", user.ID,
			"error", err.Error())
		return model.TokenPair{}, fmt.Errorf("failed to rotate refresh token: %w", err)
	}

	l.logger.Debug("Ledger: refresh token rotated",
		"user_id", user.ID,
		"parent", parent.ID,
		"child", child.ID)

	return model.TokenPair{
		AccessToken:  access,
		RefreshToken: childPlaintext,
		ExpiresIn:    l.codec.TTL(),
		SessionID:    child.ID.String(),
	}, nil
}

// Revoke revokes the record matching plaintext. When owner is set, tokens of
// other users are reported as not found.
func (l *Ledger) Revoke(ctx context.Context, plaintext string, owner *uuid.UUID) error {
	record, err := l.store.GetByHash(ctx, HashRefreshToken(plaintext))
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.ErrTokenNotFound
		}
		return fmt.Errorf("failed to get refresh token: %w", err)
	}
	if owner != nil && record.UserID != *owner {
		return model.ErrTokenNotFound
	}

	if _, err := l.store.Revoke(ctx, record.ID, l.clock.Now(), owner); err != nil {
		return fmt.Errorf("failed to revoke refresh token: %w", err)
	}
	return nil
}

// FindForUser resolves a session reference, either a record id or a token
// hash, to a record owned by userID.
func (l *Ledger) FindForUser(ctx context.Context, ref string, userID uuid.UUID) (model.RefreshToken, error) {
	var (
		record model.RefreshToken
		err    error
	)
	if id, parseErr := uuid.Parse(ref); parseErr == nil {
		record, err = l.store.GetByIDForUser(ctx, id, userID)
	} else {
		record, err = l.store.GetByHashForUser(ctx, ref, userID)
	}
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.RefreshToken{}, model.ErrNotFound
		}
		return model.RefreshToken{}, fmt.Errorf("failed to get session: %w", err)
	}
	return record, nil
}

// RevokeByID revokes one record and reports whether it was still active.
func (l *Ledger) RevokeByID(ctx context.Context, id uuid.UUID, actor *uuid.UUID) (bool, error) {
	ok, err := l.store.Revoke(ctx, id, l.clock.Now(), actor)
	if err != nil {
		return false, fmt.Errorf("failed to revoke refresh token: %w", err)
	}
	return ok, nil
}

// RevokeAll revokes every active token of userID and returns how many were revoked.
func (l *Ledger) RevokeAll(ctx context.Context, userID uuid.UUID, actor *uuid.UUID) (int64, error) {
	n, err := l.store.RevokeAllByUser(ctx, userID, l.clock.Now(), actor)
	if err != nil {
		return 0, fmt.Errorf("failed to revoke refresh tokens: %w", err)
	}

	l.logger.Info("Ledger: revoked all refresh tokens",
		"user_id", userID,
		"count", n)
	return n, nil
}

// ListActive returns active sessions, most recently used first. The record
// whose hash equals currentHash is flagged as current.
func (l *Ledger) ListActive(ctx context.Context, userID uuid.UUID, currentHash string) ([]model.SessionSummary, error) {
	records, err := l.store.ListActiveByUser(ctx, userID, l.clock.Now())
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}

	out := make([]model.SessionSummary, 0, len(records))
	for _, r := range records {
		out = append(out, model.SessionSummary{
			ID:         r.ID,
			DeviceName: r.DeviceName,
			IPAddress:  r.IPAddress,
			LastUsedAt: r.LastUsedAt,
			CreatedAt:  r.CreatedAt,
			ExpiresAt:  r.ExpiresAt,
			IsCurrent:  currentHash != "" && r.TokenHash == currentHash,
		})
	}
	return out, nil
}

// PurgeExpired deletes expired records.
func (l *Ledger) PurgeExpired(ctx context.Context) (int64, error) {
	n, err := l.store.DeleteExpired(ctx, l.clock.Now())
	if err != nil {
		return 0, fmt.Errorf("failed to purge expired refresh tokens: %w", err)
	}
	l.metrics.RefreshTokensPurged(n)
	return n, nil
}

func (l *Ledger) newRecord(userID uuid.UUID, device model.DeviceInfo, now time.Time) (model.RefreshToken, string, error) {
	plaintext, err := newSecret()
	if err != nil {
		return model.RefreshToken{}, "", fmt.Errorf("failed to generate refresh token: %w", err)
	}

	name := DeviceName(device)
	return model.RefreshToken{
		ID:         uuid.New(),
		UserID:     userID,
		TokenHash:  HashRefreshToken(plaintext),
		DeviceName: &name,
		IPAddress:  optional(device.IP),
		UserAgent:  optional(device.UserAgent),
		ExpiresAt:  now.Add(l.cfg.RefreshTTL),
		CreatedAt:  now,
	}, plaintext, nil
}

func (l *Ledger) reuseDetected(ctx context.Context, record model.RefreshToken) {
	l.metrics.RefreshReuse()
	l.logger.Warn("Ledger: rotated refresh token presented again",
		"user_id", record.UserID,
		"session_id", record.ID)

	if !l.cfg.RevokeAllOnReuse {
		return
	}
	if _, err := l.RevokeAll(ctx, record.UserID, nil); err != nil {
		l.logger.Error("Ledger: failed to revoke tokens after reuse",
			"user_id", record.UserID,
			"error", err.Error())
	}
}

func deviceOf(r model.RefreshToken) model.DeviceInfo {
	var d model.DeviceInfo
	if r.DeviceName != nil {
		d.Name = *r.DeviceName
	}
	if r.IPAddress != nil {
		d.IP = *r.IPAddress
	}
	if r.UserAgent != nil {
		d.UserAgent = *r.UserAgent
	}
	return d
}
