package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/dtroode/helpdesk-auth/internal/model"
)

var _ model.RefreshTokenStore = (*RefreshTokenRepository)(nil)

type RefreshTokenRepository struct {
	db DB
}

func NewRefreshTokenRepository(db DB) *RefreshTokenRepository {
	return &RefreshTokenRepository{db: db}
}

const refreshTokenColumns = `id, user_id, token_hash, device_name, ip_address, user_agent,
	expires_at, last_used_at, revoked_at, revoked_by, replaced_by_id, created_at`

const insertRefreshToken = `
	INSERT INTO refresh_tokens (
		id, user_id, token_hash, device_name, ip_address, user_agent, expires_at, last_used_at, created_at
	) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
`

func (r *RefreshTokenRepository) Create(ctx context.Context, token model.RefreshToken) error {
	if token.ID == uuid.Nil {
		token.ID = uuid.New()
	}

	_, err := r.db.Exec(ctx, insertRefreshToken, insertArgs(token)...)
	if err != nil {
		if isUniqueViolation(err) {
			return model.ErrAlreadyExists
		}
		return fmt.Errorf("failed to create refresh token: %w", err)
	}
	return nil
}

func (r *RefreshTokenRepository) GetByHash(ctx context.Context, tokenHash string) (model.RefreshToken, error) {
	query := `SELECT ` + refreshTokenColumns + ` FROM refresh_tokens WHERE token_hash = $1`
	return r.getOne(ctx, "by hash", query, tokenHash)
}

func (r *RefreshTokenRepository) GetByIDForUser(ctx context.Context, id, userID uuid.UUID) (model.RefreshToken, error) {
	query := `SELECT ` + refreshTokenColumns + ` FROM refresh_tokens WHERE id = $1 AND user_id = $2`
	return r.getOne(ctx, "by id", query, id, userID)
}

func (r *RefreshTokenRepository) GetByHashForUser(ctx context.Context, tokenHash string, userID uuid.UUID) (model.RefreshToken, error) {
	query := `SELECT ` + refreshTokenColumns + ` FROM refresh_tokens WHERE token_hash = $1 AND user_id = $2`
	return r.getOne(ctx, "by hash", query, tokenHash, userID)
}

// Rotate inserts the replacement and retires the parent in one transaction.
// The conditional update serializes concurrent rotations of the same parent:
// the loser sees zero affected rows and rolls back its insert.
func (r *RefreshTokenRepository) Rotate(ctx context.Context, oldID uuid.UUID, replacement model.RefreshToken, now time.Time) error {
	const retire = `
		UPDATE refresh_tokens SET revoked_at = $2, last_used_at = $2, replaced_by_id = $3
		WHERE id = $1 AND revoked_at IS NULL
	`

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin rotation: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, insertRefreshToken, insertArgs(replacement)...); err != nil {
		if isUniqueViolation(err) {
			return model.ErrAlreadyExists
		}
		return fmt.Errorf("failed to insert rotated refresh token: %w", err)
	}

	tag, err := tx.Exec(ctx, retire, oldID, now, replacement.ID)
	if err != nil {
		return fmt.Errorf("failed to revoke rotated refresh token: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrTokenRevoked
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit rotation: %w", err)
	}
	return nil
}

func (r *RefreshTokenRepository) Revoke(ctx context.Context, id uuid.UUID, now time.Time, revokedBy *uuid.UUID) (bool, error) {
	const query = `
		UPDATE refresh_tokens SET revoked_at = $2, revoked_by = $3
		WHERE id = $1 AND revoked_at IS NULL
	`
	tag, err := r.db.Exec(ctx, query, id, now, revokedBy)
	if err != nil {
		return false, fmt.Errorf("failed to revoke refresh token: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

func (r *RefreshTokenRepository) RevokeAllByUser(ctx context.Context, userID uuid.UUID, now time.Time, revokedBy *uuid.UUID) (int64, error) {
	const query = `
		UPDATE refresh_tokens SET revoked_at = $2, revoked_by = $3
		WHERE user_id = $1 AND revoked_at IS NULL
	`
	tag, err := r.db.Exec(ctx, query, userID, now, revokedBy)
	if err != nil {
		return 0, fmt.Errorf("failed to revoke refresh tokens by user: %w", err)
	}
	return tag.RowsAffected(), nil
}

func (r *RefreshTokenRepository) ListActiveByUser(ctx context.Context, userID uuid.UUID, now time.Time) ([]model.RefreshToken, error) {
	query := `SELECT ` + refreshTokenColumns + `
		FROM refresh_tokens
		WHERE user_id = $1 AND revoked_at IS NULL AND expires_at > $2
		ORDER BY COALESCE(last_used_at, created_at) DESC`

	rows, err := r.db.Query(ctx, query, userID, now)
	if err != nil {
		return nil, fmt.Errorf("failed to list refresh tokens: %w", err)
	}
	defer rows.Close()

	var out []model.RefreshToken
	for rows.Next() {
		t, err := scanRefreshToken(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan refresh token: %w", err)
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate refresh tokens: %w", err)
	}
	return out, nil
}

func (r *RefreshTokenRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	const query = `DELETE FROM refresh_tokens WHERE expires_at <= $1`

	tag, err := r.db.Exec(ctx, query, now)
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired refresh tokens: %w", err)
	}
	return tag.RowsAffected(), nil
}

func (r *RefreshTokenRepository) getOne(ctx context.Context, by, query string, args ...any) (model.RefreshToken, error) {
	t, err := scanRefreshToken(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.RefreshToken{}, model.ErrNotFound
		}
		return model.RefreshToken{}, fmt.Errorf("failed to get refresh token %s: %w", by, err)
	}
	return t, nil
}

func insertArgs(t model.RefreshToken) []any {
	return []any{
		t.ID, t.UserID, t.TokenHash, t.DeviceName, t.IPAddress, t.UserAgent,
		t.ExpiresAt, t.LastUsedAt, t.CreatedAt,
	}
}

func scanRefreshToken(row pgx.Row) (model.RefreshToken, error) {
	var t model.RefreshToken
	err := row.Scan(
		&t.ID, &t.UserID, &t.TokenHash, &t.DeviceName, &t.IPAddress, &t.UserAgent,
		&t.ExpiresAt, &t.LastUsedAt, &t.RevokedAt, &t.RevokedBy, &t.ReplacedByID, &t.CreatedAt,
	)
	return t, err
}
