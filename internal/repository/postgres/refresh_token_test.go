package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/helpdesk-auth/internal/model"
)

var tokenCols = []string{
	"id", "user_id", "token_hash", "device_name", "ip_address", "user_agent",
	"expires_at", "last_used_at", "revoked_at", "revoked_by", "replaced_by_id", "created_at",
}

func TestRefreshTokenRepository_Rotate(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	oldID := uuid.New()
	child := model.RefreshToken{
		ID: uuid.New(), UserID: uuid.New(), TokenHash: "child",
		ExpiresAt: now.Add(time.Hour), CreatedAt: now,
	}

	tests := []struct {
		name    string
		setup   func(m pgxmock.PgxPoolIface)
		wantErr error
	}{
		{
			name: "commits insert and retire",
			setup: func(m pgxmock.PgxPoolIface) {
				m.ExpectBegin()
				m.ExpectExec(`INSERT INTO refresh_tokens`).WillReturnResult(pgxmock.NewResult("INSERT", 1))
				m.ExpectExec(`UPDATE refresh_tokens SET revoked_at = \$2, last_used_at = \$2, replaced_by_id = \$3`).
					WithArgs(oldID, now, child.ID).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
				m.ExpectCommit()
			},
		},
		{
			name: "parent already revoked rolls back",
			setup: func(m pgxmock.PgxPoolIface) {
				m.ExpectBegin()
				m.ExpectExec(`INSERT INTO refresh_tokens`).WillReturnResult(pgxmock.NewResult("INSERT", 1))
				m.ExpectExec(`UPDATE refresh_tokens`).WillReturnResult(pgxmock.NewResult("UPDATE", 0))
				m.ExpectRollback()
			},
			wantErr: model.ErrTokenRevoked,
		},
		{
			name: "insert failure leaves parent untouched",
			setup: func(m pgxmock.PgxPoolIface) {
				m.ExpectBegin()
				m.ExpectExec(`INSERT INTO refresh_tokens`).WillReturnError(errors.New("disk full"))
				m.ExpectRollback()
			},
			wantErr: errors.New("failed to insert rotated refresh token"),
		},
		{
			name: "begin failure",
			setup: func(m pgxmock.PgxPoolIface) {
				m.ExpectBegin().WillReturnError(errors.New("no conn"))
			},
			wantErr: errors.New("failed to begin rotation"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			m := newMock(t)
			tt.setup(m)

			err := NewRefreshTokenRepository(m).Rotate(context.Background(), oldID, child, now)
			switch {
			case tt.wantErr == nil:
				require.NoError(t, err)
			case errors.Is(tt.wantErr, model.ErrTokenRevoked):
				assert.ErrorIs(t, err, model.ErrTokenRevoked)
			default:
				assert.ErrorContains(t, err, tt.wantErr.Error())
			}
			assert.NoError(t, m.ExpectationsWereMet())
		})
	}
}

func TestRefreshTokenRepository_GetByHash(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	id, userID := uuid.New(), uuid.New()
	device := "Chrome on Windows"

	m := newMock(t)
	m.ExpectQuery(`FROM refresh_tokens WHERE token_hash = \$1`).WithArgs("h").
		WillReturnRows(m.NewRows(tokenCols).AddRow(
			id, userID, "h", &device, nil, nil,
			now.Add(time.Hour), nil, nil, nil, nil, now,
		))
	m.ExpectQuery(`FROM refresh_tokens WHERE token_hash = \$1`).WithArgs("missing").
		WillReturnRows(m.NewRows(tokenCols))

	repo := NewRefreshTokenRepository(m)
	got, err := repo.GetByHash(context.Background(), "h")
	require.NoError(t, err)
	assert.Equal(t, id, got.ID)
	assert.Equal(t, userID, got.UserID)
	require.NotNil(t, got.DeviceName)
	assert.Equal(t, device, *got.DeviceName)
	assert.False(t, got.IsRevoked())

	_, err = repo.GetByHash(context.Background(), "missing")
	assert.ErrorIs(t, err, model.ErrNotFound)
	assert.NoError(t, m.ExpectationsWereMet())
}

func TestRefreshTokenRepository_Revoke(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	id, userID := uuid.New(), uuid.New()

	m := newMock(t)
	m.ExpectExec(`UPDATE refresh_tokens SET revoked_at = \$2, revoked_by = \$3\s+WHERE id = \$1`).
		WithArgs(id, now, pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	m.ExpectExec(`WHERE id = \$1 AND revoked_at IS NULL`).
		WithArgs(id, now, pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	m.ExpectExec(`WHERE user_id = \$1 AND revoked_at IS NULL`).
		WithArgs(userID, now, pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("UPDATE", 3))
	m.ExpectExec(`DELETE FROM refresh_tokens WHERE expires_at <= \$1`).
		WithArgs(now).
		WillReturnResult(pgxmock.NewResult("DELETE", 5))

	repo := NewRefreshTokenRepository(m)
	ctx := context.Background()

	ok, err := repo.Revoke(ctx, id, now, nil)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.Revoke(ctx, id, now, nil)
	require.NoError(t, err)
	assert.False(t, ok)

	n, err := repo.RevokeAllByUser(ctx, userID, now, &userID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)

	n, err = repo.DeleteExpired(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, int64(5), n)

	assert.NoError(t, m.ExpectationsWereMet())
}

func TestRefreshTokenRepository_ListActiveByUser(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	userID := uuid.New()
	a, b := uuid.New(), uuid.New()

	m := newMock(t)
	m.ExpectQuery(`ORDER BY COALESCE\(last_used_at, created_at\) DESC`).
		WithArgs(userID, now).
		WillReturnRows(m.NewRows(tokenCols).
			AddRow(a, userID, "ha", nil, nil, nil, now.Add(time.Hour), &now, nil, nil, nil, now).
			AddRow(b, userID, "hb", nil, nil, nil, now.Add(time.Hour), nil, nil, nil, nil, now))

	list, err := NewRefreshTokenRepository(m).ListActiveByUser(context.Background(), userID, now)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, a, list[0].ID)
	assert.Equal(t, b, list[1].ID)
	assert.NoError(t, m.ExpectationsWereMet())
}
