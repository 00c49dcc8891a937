package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/helpdesk-auth/internal/mocks"
	"github.com/dtroode/helpdesk-auth/internal/model"
	"github.com/dtroode/helpdesk-auth/internal/testutil"
	"github.com/dtroode/helpdesk-auth/internal/token"
)

func validRegistration() model.RegisterInput {
	return model.RegisterInput{
		Email:     "  Ana.Quispe@Example.com ",
		Password:  "password123",
		FirstName: "Ana",
		LastName:  "Quispe",
	}
}

func TestSession_Register(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	res, err := f.session.Register(ctx, validRegistration(), model.DeviceInfo{IP: "10.0.0.1"})
	require.NoError(t, err)

	assert.Equal(t, "ana.quispe@example.com", res.User.Email)
	assert.True(t, res.RequiresVerification)
	assert.NotEmpty(t, res.AccessToken)
	assert.NotEmpty(t, res.RefreshToken)
	assert.Equal(t, accessTTL, res.ExpiresIn)

	assert.Equal(t, "es", res.User.Profile.Language)
	assert.Equal(t, "America/La_Paz", res.User.Profile.Timezone)
	assert.Equal(t, "light", res.User.Profile.Theme)
	assert.Equal(t, []string{model.DefaultRoleCode}, f.users.Roles(res.User.ID))

	assert.NotEmpty(t, f.notifier.verificationToken(res.User.ID))

	authed, err := f.session.GetAuthenticatedUser(ctx, res.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, res.User.ID, authed.User.ID)
	assert.Equal(t, res.SessionID, authed.SessionID)
}

func TestSession_Register_Rejected(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name  string
		input func() model.RegisterInput
		field string
	}{
		{
			name: "invalid email",
			input: func() model.RegisterInput {
				in := validRegistration()
				in.Email = "not-an-email"
				return in
			},
			field: "email",
		},
		{
			name: "short password",
			input: func() model.RegisterInput {
				in := validRegistration()
				in.Password = "short"
				return in
			},
			field: "password",
		},
		{
			name: "missing first name",
			input: func() model.RegisterInput {
				in := validRegistration()
				in.FirstName = ""
				return in
			},
			field: "first_name",
		},
		{
			name: "unknown theme",
			input: func() model.RegisterInput {
				in := validRegistration()
				in.Theme = "neon"
				return in
			},
			field: "theme",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			_, err := f.session.Register(ctx, tt.input(), model.DeviceInfo{})
			require.ErrorIs(t, err, model.ErrValidation)

			var verr *model.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.field, verr.Field)
		})
	}
}

func TestSession_Register_DuplicateEmail(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.createUser(t, "ana.quispe@example.com", "password123", model.UserStatusActive)

	_, err := f.session.Register(ctx, validRegistration(), model.DeviceInfo{})

	var verr *model.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "email", verr.Field)
}

func TestSession_Login(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		status   model.UserStatus
		email    string
		password string
		wantErr  error
	}{
		{name: "success", status: model.UserStatusActive, email: "ANA@example.com", password: "password123"},
		{name: "wrong password", status: model.UserStatusActive, email: "ana@example.com", password: "wrong-pass", wantErr: model.ErrInvalidCredentials},
		{name: "unknown email", status: model.UserStatusActive, email: "nobody@example.com", password: "password123", wantErr: model.ErrInvalidCredentials},
		{name: "suspended", status: model.UserStatusSuspended, email: "ana@example.com", password: "password123", wantErr: model.ErrAccountSuspended},
		{name: "suspended with wrong password", status: model.UserStatusSuspended, email: "ana@example.com", password: "wrong-pass", wantErr: model.ErrInvalidCredentials},
		{name: "deleted", status: model.UserStatusDeleted, email: "ana@example.com", password: "password123", wantErr: model.ErrInvalidCredentials},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			user := f.createUser(t, "ana@example.com", "password123", tt.status)

			res, err := f.session.Login(ctx, tt.email, tt.password, model.DeviceInfo{IP: "10.0.0.1"})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, user.ID, res.User.ID)
			assert.False(t, res.RequiresVerification)

			stored, err := f.users.GetByID(ctx, user.ID)
			require.NoError(t, err)
			require.NotNil(t, stored.LastLoginAt)
			assert.Equal(t, start, *stored.LastLoginAt)
			require.NotNil(t, stored.LastLoginIP)
			assert.Equal(t, "10.0.0.1", *stored.LastLoginIP)
		})
	}
}

func TestSession_LogoutThenUseTokens(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	user := f.createUser(t, "ana@example.com", "password123", model.UserStatusActive)
	res := f.login(t, "ana@example.com", "password123")

	_, err := f.session.GetAuthenticatedUser(ctx, res.AccessToken)
	require.NoError(t, err)

	require.NoError(t, f.session.Logout(ctx, res.AccessToken, res.RefreshToken, user.ID))

	_, err = f.session.GetAuthenticatedUser(ctx, res.AccessToken)
	assert.ErrorIs(t, err, model.ErrTokenBlacklisted)

	_, err = f.session.RefreshToken(ctx, res.RefreshToken, model.DeviceInfo{})
	assert.ErrorIs(t, err, model.ErrTokenRevoked)

	// the entry lives only as long as the access token
	f.clock.Advance(accessTTL)
	ok, err := f.blacklist.Contains(ctx, res.SessionID)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSession_Logout_ExpiredAccessToken(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	user := f.createUser(t, "ana@example.com", "password123", model.UserStatusActive)
	res := f.login(t, "ana@example.com", "password123")

	f.clock.Advance(2 * accessTTL)
	require.NoError(t, f.session.Logout(ctx, res.AccessToken, res.RefreshToken, user.ID))

	ok, err := f.blacklist.Contains(ctx, res.SessionID)
	require.NoError(t, err)
	assert.False(t, ok)

	_, _, err = f.ledger.Validate(ctx, res.RefreshToken)
	assert.ErrorIs(t, err, model.ErrTokenRevoked)
}

func TestSession_Logout_ForeignAccessToken(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.createUser(t, "ana@example.com", "password123", model.UserStatusActive)
	bob := f.createUser(t, "bob@example.com", "password123", model.UserStatusActive)
	ana := f.login(t, "ana@example.com", "password123")
	bobRes := f.login(t, "bob@example.com", "password123")

	require.NoError(t, f.session.Logout(ctx, ana.AccessToken, ana.RefreshToken, bob.ID))

	// neither of Ana's tokens was touched
	_, err := f.session.GetAuthenticatedUser(ctx, ana.AccessToken)
	assert.NoError(t, err)
	_, _, err = f.ledger.Validate(ctx, ana.RefreshToken)
	assert.NoError(t, err)

	_, _, err = f.ledger.Validate(ctx, bobRes.RefreshToken)
	assert.NoError(t, err)
}

func TestSession_Logout_BlacklistFailureDoesNotAbort(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	user := f.createUser(t, "ana@example.com", "password123", model.UserStatusActive)
	res := f.login(t, "ana@example.com", "password123")

	blacklist := mocks.NewBlacklistStore(t)
	blacklist.On("Add", mock.Anything, res.SessionID, accessTTL).Return(errors.New("cache unavailable"))

	deps := f.session.SessionDeps
	deps.Blacklist = blacklist
	session := NewSession(deps, SessionConfig{VerificationTTL: time.Hour}, testutil.MakeNoopLogger())

	require.NoError(t, session.Logout(ctx, res.AccessToken, res.RefreshToken, user.ID))

	_, _, err := f.ledger.Validate(ctx, res.RefreshToken)
	assert.ErrorIs(t, err, model.ErrTokenRevoked)
}

func TestSession_Logout_UnknownRefreshToken(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	user := f.createUser(t, "ana@example.com", "password123", model.UserStatusActive)
	res := f.login(t, "ana@example.com", "password123")

	require.NoError(t, f.session.Logout(ctx, res.AccessToken, "unknown", user.ID))
	require.NoError(t, f.session.Logout(ctx, res.AccessToken, "", user.ID))
}

func TestSession_LogoutAllDevices(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	user := f.createUser(t, "ana@example.com", "password123", model.UserStatusActive)
	first := f.login(t, "ana@example.com", "password123")
	second := f.login(t, "ana@example.com", "password123")

	n, err := f.session.LogoutAllDevices(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	for _, res := range []model.AuthResult{first, second} {
		_, err := f.session.RefreshToken(ctx, res.RefreshToken, model.DeviceInfo{})
		assert.ErrorIs(t, err, model.ErrTokenRevoked)
	}

	sessions, err := f.session.GetUserSessions(ctx, user.ID, "")
	require.NoError(t, err)
	assert.Empty(t, sessions)
}

func TestSession_RefreshToken(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.createUser(t, "ana@example.com", "password123", model.UserStatusActive)
	res := f.login(t, "ana@example.com", "password123")

	f.clock.Advance(30 * time.Minute)
	pair, err := f.session.RefreshToken(ctx, res.RefreshToken, model.DeviceInfo{IP: "10.0.0.2"})
	require.NoError(t, err)
	assert.NotEqual(t, res.SessionID, pair.SessionID)

	authed, err := f.session.GetAuthenticatedUser(ctx, pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, pair.SessionID, authed.SessionID)
	assert.Equal(t, start.Add(30*time.Minute+accessTTL), authed.TokenExpiresAt)

	_, err = f.session.RefreshToken(ctx, res.RefreshToken, model.DeviceInfo{})
	assert.ErrorIs(t, err, model.ErrTokenRevoked)

	_, err = f.session.RefreshToken(ctx, "garbage", model.DeviceInfo{})
	assert.ErrorIs(t, err, model.ErrTokenNotFound)
}

func TestSession_RevokeOtherSession(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) (*fixture, model.User, model.AuthResult, model.AuthResult) {
		f := newFixture(t)
		user := f.createUser(t, "ana@example.com", "password123", model.UserStatusActive)
		current := f.login(t, "ana@example.com", "password123")
		other := f.login(t, "ana@example.com", "password123")
		return f, user, current, other
	}

	t.Run("by session id", func(t *testing.T) {
		f, user, current, other := setup(t)

		err := f.session.RevokeOtherSession(ctx, other.SessionID, user.ID, HashRefreshToken(current.RefreshToken))
		require.NoError(t, err)

		_, err = f.session.GetAuthenticatedUser(ctx, other.AccessToken)
		assert.ErrorIs(t, err, model.ErrTokenBlacklisted)
		_, err = f.session.RefreshToken(ctx, other.RefreshToken, model.DeviceInfo{})
		assert.ErrorIs(t, err, model.ErrTokenRevoked)

		_, err = f.session.GetAuthenticatedUser(ctx, current.AccessToken)
		assert.NoError(t, err)

		err = f.session.RevokeOtherSession(ctx, other.SessionID, user.ID, HashRefreshToken(current.RefreshToken))
		assert.ErrorIs(t, err, model.ErrSessionAlreadyRevoked)
	})

	t.Run("by token hash", func(t *testing.T) {
		f, user, current, other := setup(t)

		err := f.session.RevokeOtherSession(ctx, HashRefreshToken(other.RefreshToken), user.ID, HashRefreshToken(current.RefreshToken))
		require.NoError(t, err)

		_, _, err = f.ledger.Validate(ctx, other.RefreshToken)
		assert.ErrorIs(t, err, model.ErrTokenRevoked)
	})

	t.Run("current session", func(t *testing.T) {
		f, user, current, _ := setup(t)

		err := f.session.RevokeOtherSession(ctx, current.SessionID, user.ID, HashRefreshToken(current.RefreshToken))
		assert.ErrorIs(t, err, model.ErrCannotRevokeCurrentSession)
	})

	t.Run("unknown session", func(t *testing.T) {
		f, user, current, _ := setup(t)

		err := f.session.RevokeOtherSession(ctx, uuid.NewString(), user.ID, HashRefreshToken(current.RefreshToken))
		assert.ErrorIs(t, err, model.ErrNotFound)

		var nf *model.NotFoundError
		require.ErrorAs(t, err, &nf)
		assert.Equal(t, "session", nf.Resource)
	})

	t.Run("session of another user", func(t *testing.T) {
		f, _, _, other := setup(t)
		intruder := f.createUser(t, "eve@example.com", "password123", model.UserStatusActive)

		err := f.session.RevokeOtherSession(ctx, other.SessionID, intruder.ID, "")
		assert.ErrorIs(t, err, model.ErrNotFound)

		_, _, err = f.ledger.Validate(ctx, other.RefreshToken)
		assert.NoError(t, err)
	})
}

func TestSession_GetUserSessions(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	user := f.createUser(t, "ana@example.com", "password123", model.UserStatusActive)
	first := f.login(t, "ana@example.com", "password123")
	f.clock.Advance(time.Minute)
	second := f.login(t, "ana@example.com", "password123")

	sessions, err := f.session.GetUserSessions(ctx, user.ID, HashRefreshToken(first.RefreshToken))
	require.NoError(t, err)
	require.Len(t, sessions, 2)

	assert.Equal(t, second.SessionID, sessions[0].ID.String())
	assert.False(t, sessions[0].IsCurrent)
	assert.Equal(t, first.SessionID, sessions[1].ID.String())
	assert.True(t, sessions[1].IsCurrent)
	require.NotNil(t, sessions[1].IPAddress)
	assert.Equal(t, "10.0.0.1", *sessions[1].IPAddress)
}

func TestSession_EmailVerification(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	res, err := f.session.Register(ctx, validRegistration(), model.DeviceInfo{})
	require.NoError(t, err)
	userID := res.User.ID
	first := f.notifier.verificationToken(userID)
	require.NotEmpty(t, first)

	status, err := f.session.GetEmailVerificationStatus(ctx, userID)
	require.NoError(t, err)
	assert.False(t, status.IsVerified)
	assert.Nil(t, status.VerifiedAt)

	second, err := f.session.ResendEmailVerification(ctx, userID)
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
	assert.Equal(t, second, f.notifier.verificationToken(userID))

	_, err = f.session.VerifyEmail(ctx, first)
	assert.ErrorIs(t, err, model.ErrVerificationTokenInvalid)

	f.clock.Advance(time.Minute)
	user, err := f.session.VerifyEmail(ctx, second)
	require.NoError(t, err)
	assert.True(t, user.EmailVerified)

	status, err = f.session.GetEmailVerificationStatus(ctx, userID)
	require.NoError(t, err)
	assert.True(t, status.IsVerified)
	require.NotNil(t, status.VerifiedAt)
	assert.Equal(t, start.Add(time.Minute), *status.VerifiedAt)
	assert.Equal(t, "ana.quispe@example.com", status.Email)

	_, err = f.session.VerifyEmail(ctx, second)
	assert.ErrorIs(t, err, model.ErrVerificationTokenInvalid)

	_, err = f.session.ResendEmailVerification(ctx, userID)
	assert.ErrorIs(t, err, model.ErrEmailAlreadyVerified)
}

func TestSession_EmailVerification_Expired(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	res, err := f.session.Register(ctx, validRegistration(), model.DeviceInfo{})
	require.NoError(t, err)
	tok := f.notifier.verificationToken(res.User.ID)

	f.clock.Advance(24 * time.Hour)
	_, err = f.session.VerifyEmail(ctx, tok)
	assert.ErrorIs(t, err, model.ErrVerificationTokenInvalid)

	_, err = f.session.ResendEmailVerification(ctx, uuid.New())
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestSession_GetAuthenticatedUser(t *testing.T) {
	ctx := context.Background()

	t.Run("expired access token", func(t *testing.T) {
		f := newFixture(t)
		f.createUser(t, "ana@example.com", "password123", model.UserStatusActive)
		res := f.login(t, "ana@example.com", "password123")

		f.clock.Advance(accessTTL)
		_, err := f.session.GetAuthenticatedUser(ctx, res.AccessToken)
		assert.ErrorIs(t, err, model.ErrTokenExpired)
	})

	t.Run("suspended after login", func(t *testing.T) {
		f := newFixture(t)
		user := f.createUser(t, "ana@example.com", "password123", model.UserStatusActive)
		res := f.login(t, "ana@example.com", "password123")
		require.NoError(t, f.users.SetStatus(ctx, user.ID, model.UserStatusSuspended))

		_, err := f.session.GetAuthenticatedUser(ctx, res.AccessToken)
		assert.ErrorIs(t, err, model.ErrAccountInactive)
	})

	t.Run("token from another issuer", func(t *testing.T) {
		f := newFixture(t)
		user := f.createUser(t, "ana@example.com", "password123", model.UserStatusActive)

		foreign, err := token.NewCodec(token.Config{
			Secret:    "0123456789abcdef0123456789abcdef",
			Algorithm: "HS256",
			Issuer:    "someone-else",
			Audience:  "helpdesk-app",
			TTL:       accessTTL,
		}, nil, f.clock)
		require.NoError(t, err)
		access, _, err := foreign.Issue(user, "")
		require.NoError(t, err)

		_, err = f.session.GetAuthenticatedUser(ctx, access)
		assert.ErrorIs(t, err, model.ErrInvalidToken)
	})
}
