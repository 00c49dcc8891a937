package token

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/helpdesk-auth/internal/model"
	"github.com/dtroode/helpdesk-auth/internal/repository/memory"
	"github.com/dtroode/helpdesk-auth/internal/testutil"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func testConfig() Config {
	return Config{
		Secret:    testSecret,
		Algorithm: "HS256",
		Issuer:    "helpdesk",
		Audience:  "helpdesk-clients",
		TTL:       time.Hour,
	}
}

func testUser() model.User {
	return model.User{ID: uuid.New(), Email: "a@x.com", Status: model.UserStatusActive}
}

func newCodec(t *testing.T, clock *testutil.Clock, bl model.BlacklistStore) *Codec {
	t.Helper()
	c, err := NewCodec(testConfig(), bl, clock)
	require.NoError(t, err)
	return c
}

func TestNewCodec_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{name: "asymmetric algorithm", mutate: func(c *Config) { c.Algorithm = "RS256" }},
		{name: "unknown algorithm", mutate: func(c *Config) { c.Algorithm = "XX" }},
		{name: "empty secret", mutate: func(c *Config) { c.Secret = "" }},
		{name: "zero ttl", mutate: func(c *Config) { c.TTL = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := testConfig()
			tt.mutate(&cfg)
			_, err := NewCodec(cfg, nil, nil)
			assert.Error(t, err)
		})
	}
}

func TestCodec_Roundtrip(t *testing.T) {
	t.Parallel()

	clock := testutil.NewClock(time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC))
	c := newCodec(t, clock, nil)
	u := testUser()

	signed, issued, err := c.Issue(u, "session-1")
	require.NoError(t, err)

	got, err := c.Verify(context.Background(), signed)
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.UserID)
	assert.Equal(t, u.Email, got.Email)
	assert.Equal(t, "session-1", got.SessionID)
	assert.Equal(t, u.ID.String(), got.Subject)
	assert.Equal(t, "helpdesk", got.Issuer)
	assert.Equal(t, []string{"helpdesk-clients"}, got.Audience)
	assert.True(t, issued.ExpiresAt.Equal(got.ExpiresAt))
	assert.True(t, clock.Now().Add(time.Hour).Equal(got.ExpiresAt))
}

func TestCodec_Issue_GeneratesSessionID(t *testing.T) {
	t.Parallel()

	c := newCodec(t, testutil.NewClock(time.Now()), nil)

	_, first, err := c.Issue(testUser(), "")
	require.NoError(t, err)
	_, second, err := c.Issue(testUser(), "")
	require.NoError(t, err)

	_, err = uuid.Parse(first.SessionID)
	require.NoError(t, err)
	assert.NotEqual(t, first.SessionID, second.SessionID)
}

func TestCodec_Issue_Deterministic(t *testing.T) {
	t.Parallel()

	clock := testutil.NewClock(time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC))
	c := newCodec(t, clock, nil)
	u := testUser()

	a, _, err := c.Issue(u, "s")
	require.NoError(t, err)
	b, _, err := c.Issue(u, "s")
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestCodec_Verify_Failures(t *testing.T) {
	t.Parallel()

	start := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	u := testUser()

	tests := []struct {
		name    string
		token   func(t *testing.T) string
		verify  func(t *testing.T) *Codec
		wantErr error
	}{
		{
			name: "expired",
			token: func(t *testing.T) string {
				s, _, err := newCodec(t, testutil.NewClock(start), nil).Issue(u, "s")
				require.NoError(t, err)
				return s
			},
			verify:  func(t *testing.T) *Codec { return newCodec(t, testutil.NewClock(start.Add(2*time.Hour)), nil) },
			wantErr: model.ErrTokenExpired,
		},
		{
			name: "exactly at expiry",
			token: func(t *testing.T) string {
				s, _, err := newCodec(t, testutil.NewClock(start), nil).Issue(u, "s")
				require.NoError(t, err)
				return s
			},
			verify:  func(t *testing.T) *Codec { return newCodec(t, testutil.NewClock(start.Add(time.Hour)), nil) },
			wantErr: model.ErrTokenExpired,
		},
		{
			name: "issued in the future",
			token: func(t *testing.T) string {
				s, _, err := newCodec(t, testutil.NewClock(start.Add(10*time.Minute)), nil).Issue(u, "s")
				require.NoError(t, err)
				return s
			},
			verify:  func(t *testing.T) *Codec { return newCodec(t, testutil.NewClock(start), nil) },
			wantErr: model.ErrTokenNotYetValid,
		},
		{
			name: "wrong secret",
			token: func(t *testing.T) string {
				cfg := testConfig()
				cfg.Secret = "another-secret-another-secret-xx"
				c, err := NewCodec(cfg, nil, testutil.NewClock(start))
				require.NoError(t, err)
				s, _, err := c.Issue(u, "s")
				require.NoError(t, err)
				return s
			},
			verify:  func(t *testing.T) *Codec { return newCodec(t, testutil.NewClock(start), nil) },
			wantErr: model.ErrBadSignature,
		},
		{
			name: "algorithm mismatch",
			token: func(t *testing.T) string {
				cfg := testConfig()
				cfg.Algorithm = "HS512"
				c, err := NewCodec(cfg, nil, testutil.NewClock(start))
				require.NoError(t, err)
				s, _, err := c.Issue(u, "s")
				require.NoError(t, err)
				return s
			},
			verify:  func(t *testing.T) *Codec { return newCodec(t, testutil.NewClock(start), nil) },
			wantErr: model.ErrBadSignature,
		},
		{
			name:    "malformed",
			token:   func(*testing.T) string { return "not-a-jwt" },
			verify:  func(t *testing.T) *Codec { return newCodec(t, testutil.NewClock(start), nil) },
			wantErr: model.ErrTokenMalformed,
		},
		{
			name: "missing email claim",
			token: func(t *testing.T) string {
				claims := Claims{
					RegisteredClaims: jwt.RegisteredClaims{
						Issuer:    "helpdesk",
						Audience:  jwt.ClaimStrings{"helpdesk-clients"},
						Subject:   u.ID.String(),
						IssuedAt:  jwt.NewNumericDate(start),
						ExpiresAt: jwt.NewNumericDate(start.Add(time.Hour)),
					},
					UserID:    u.ID.String(),
					SessionID: "s",
				}
				s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
				require.NoError(t, err)
				return s
			},
			verify:  func(t *testing.T) *Codec { return newCodec(t, testutil.NewClock(start), nil) },
			wantErr: model.ErrMissingClaim,
		},
		{
			name: "issuer mismatch",
			token: func(t *testing.T) string {
				cfg := testConfig()
				cfg.Issuer = "someone-else"
				c, err := NewCodec(cfg, nil, testutil.NewClock(start))
				require.NoError(t, err)
				s, _, err := c.Issue(u, "s")
				require.NoError(t, err)
				return s
			},
			verify:  func(t *testing.T) *Codec { return newCodec(t, testutil.NewClock(start), nil) },
			wantErr: model.ErrInvalidToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := tt.verify(t).Verify(context.Background(), tt.token(t))
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCodec_Verify_MissingClaimNamesClaim(t *testing.T) {
	t.Parallel()

	start := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	claims := jwt.MapClaims{
		"iss":        "helpdesk",
		"aud":        "helpdesk-clients",
		"sub":        uuid.NewString(),
		"iat":        start.Unix(),
		"exp":        start.Add(time.Hour).Unix(),
		"email":      "a@x.com",
		"session_id": "s",
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = newCodec(t, testutil.NewClock(start), nil).Verify(context.Background(), signed)

	var missing *model.MissingClaimError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, ClaimUserID, missing.Claim)
}

func TestCodec_Verify_Blacklisted(t *testing.T) {
	t.Parallel()

	clock := testutil.NewClock(time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC))
	bl := memory.NewBlacklistStore(clock)
	c := newCodec(t, clock, bl)
	ctx := context.Background()

	signed, _, err := c.Issue(testUser(), "session-1")
	require.NoError(t, err)

	_, err = c.Verify(ctx, signed)
	require.NoError(t, err)

	require.NoError(t, bl.Add(ctx, "session-1", time.Hour))

	_, err = c.Verify(ctx, signed)
	assert.ErrorIs(t, err, model.ErrTokenBlacklisted)
}

func TestCodec_Decode_ToleratesExpiry(t *testing.T) {
	t.Parallel()

	clock := testutil.NewClock(time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC))
	c := newCodec(t, clock, nil)
	u := testUser()

	signed, _, err := c.Issue(u, "session-1")
	require.NoError(t, err)

	clock.Advance(48 * time.Hour)

	_, err = c.Verify(context.Background(), signed)
	require.ErrorIs(t, err, model.ErrTokenExpired)

	got, err := c.Decode(signed)
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.UserID)
	assert.Equal(t, "session-1", got.SessionID)

	cfg := testConfig()
	cfg.Secret = "another-secret-another-secret-xx"
	other, err := NewCodec(cfg, nil, clock)
	require.NoError(t, err)
	_, err = other.Decode(signed)
	assert.ErrorIs(t, err, model.ErrBadSignature)
}
