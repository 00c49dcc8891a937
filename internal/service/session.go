package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/dtroode/helpdesk-auth/internal/logger"
	"github.com/dtroode/helpdesk-auth/internal/model"
)

// Profile defaults applied at registration.
const (
	defaultLanguage = "es"
	defaultTimezone = "America/La_Paz"
	defaultTheme    = "light"
)

// SessionConfig holds session manager policy.
type SessionConfig struct {
	VerificationTTL time.Duration
}

// SessionDeps are the collaborators of the session manager.
type SessionDeps struct {
	Users         model.CredentialStore
	Hasher        model.PasswordHasher
	Codec         model.TokenCodec
	Ledger        *Ledger
	Blacklist     model.BlacklistStore
	Verifications model.VerificationStore
	Notifier      model.Notifier
	Metrics       model.Metrics
	Clock         model.Clock
}

// Session orchestrates login, logout, refresh and session management.
type Session struct {
	SessionDeps
	cfg      SessionConfig
	logger   *logger.Logger
	validate *validator.Validate

	dummyOnce sync.Once
	dummyHash string
}

func NewSession(deps SessionDeps, cfg SessionConfig, logger *logger.Logger) *Session {
	if deps.Clock == nil {
		deps.Clock = model.SystemClock{}
	}
	if deps.Metrics == nil {
		deps.Metrics = model.NopMetrics{}
	}
	return &Session{
		SessionDeps: deps,
		cfg:         cfg,
		logger:      logger,
		validate:    validator.New(),
	}
}

// Register creates an account with the default role, signs the user in and
// hands a verification token to the notifier.
func (s *Session) Register(ctx context.Context, in model.RegisterInput, device model.DeviceInfo) (model.AuthResult, error) {
	in.Email = normalizeEmail(in.Email)

	s.logger.Debug("Session service: starting user registration",
		"email", MaskEmail(in.Email))

	if err := s.validate.Struct(in); err != nil {
		return model.AuthResult{}, toValidationError(err)
	}

	_, err := s.Users.GetByEmail(ctx, in.Email)
	switch {
	case err == nil:
		return model.AuthResult{}, model.NewValidationError("email", "already registered")
	case !errors.Is(err, model.ErrNotFound):
		return model.AuthResult{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	hash, err := s.Hasher.Hash(in.Password)
	if err != nil {
		return model.AuthResult{}, err
	}

	user, err := s.Users.Create(ctx, model.User{
		ID:           uuid.New(),
		Email:        in.Email,
		PasswordHash: hash,
		Status:       model.UserStatusActive,
		CreatedAt:    s.Clock.Now(),
	}, profileOf(in), model.DefaultRoleCode)
	if err != nil {
		if errors.Is(err, model.ErrAlreadyExists) {
			return model.AuthResult{}, model.NewValidationError("email", "already registered")
		}
		s.logger.Error("Session service: failed to create user",
			"error", err.Error())
		return model.AuthResult{}, fmt.Errorf("failed to create user: %w", err)
	}

	result, err := s.issueSession(ctx, user, device)
	if err != nil {
		return model.AuthResult{}, err
	}

	if _, err := s.createVerificationToken(ctx, user); err != nil {
		s.logger.Error("Session service: failed to create verification token",
			"user_id", user.ID,
			"error", err.Error())
	}

	result.RequiresVerification = !user.EmailVerified

	s.logger.Info("Session service: user registered",
		"user_id", user.ID)

	return result, nil
}

// Login verifies credentials. Unknown email and wrong password are
// indistinguishable; a suspended account is reported as such.
func (s *Session) Login(ctx context.Context, email, password string, device model.DeviceInfo) (model.AuthResult, error) {
	email = normalizeEmail(email)

	user, err := s.Users.GetByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, model.ErrNotFound) {
			return model.AuthResult{}, fmt.Errorf("failed to get user by email: %w", err)
		}
		s.Hasher.Matches(s.timingHash(), password)
		s.Metrics.LoginAttempt("invalid_credentials")
		return model.AuthResult{}, model.ErrInvalidCredentials
	}

	if !s.Hasher.Matches(user.PasswordHash, password) {
		s.Metrics.LoginAttempt("invalid_credentials")
		return model.AuthResult{}, model.ErrInvalidCredentials
	}

	if !user.IsActive() {
		if user.IsSuspended() {
			s.Metrics.LoginAttempt("suspended")
			return model.AuthResult{}, model.ErrAccountSuspended
		}
		s.Metrics.LoginAttempt("invalid_credentials")
		return model.AuthResult{}, model.ErrInvalidCredentials
	}

	now := s.Clock.Now()
	if err := s.Users.UpdateLastLogin(ctx, user.ID, now, device.IP); err != nil {
		return model.AuthResult{}, fmt.Errorf("failed to update last login: %w", err)
	}
	user.LastLoginAt = &now
	if device.IP != "" {
		user.LastLoginIP = &device.IP
	}

	result, err := s.issueSession(ctx, user, device)
	if err != nil {
		return model.AuthResult{}, err
	}

	s.Metrics.LoginAttempt("success")
	s.logger.Info("Session service: user logged in",
		"user_id", user.ID,
		"session_id", result.SessionID)

	return result, nil
}

// Logout blacklists the session of accessToken for its remaining lifetime and
// revokes refreshToken. An expired access token and a missing refresh token
// do not fail the logout.
func (s *Session) Logout(ctx context.Context, accessToken, refreshToken string, userID uuid.UUID) error {
	claims, err := s.Codec.Decode(accessToken)
	switch {
	case err != nil:
		s.logger.Warn("Session service: logout with undecodable access token",
			"user_id", userID,
			"error", err.Error())
	case claims.UserID != userID:
		s.logger.Warn("Session service: logout access token belongs to another user",
			"user_id", userID)
	default:
		remaining := claims.ExpiresAt.Sub(s.Clock.Now())
		if remaining > 0 {
			if err := s.Blacklist.Add(ctx, claims.SessionID, remaining); err != nil {
				s.logger.Error("Session service: failed to blacklist session",
					"user_id", userID,
					"session_id", claims.SessionID,
					"error", err.Error())
			}
		}
	}

	if refreshToken != "" {
		err := s.Ledger.Revoke(ctx, refreshToken, &userID)
		if err != nil && !errors.Is(err, model.ErrTokenNotFound) {
			return err
		}
	}

	s.Metrics.Logout("single")
	s.logger.Info("Session service: user logged out",
		"user_id", userID)
	return nil
}

// LogoutAllDevices revokes every refresh token of userID. Outstanding access
// tokens expire naturally.
func (s *Session) LogoutAllDevices(ctx context.Context, userID uuid.UUID) (int64, error) {
	n, err := s.Ledger.RevokeAll(ctx, userID, &userID)
	if err != nil {
		return 0, err
	}
	s.Metrics.Logout("all")
	return n, nil
}

// RefreshToken rotates the presented refresh token.
func (s *Session) RefreshToken(ctx context.Context, refreshToken string, device model.DeviceInfo) (model.TokenPair, error) {
	pair, err := s.Ledger.Rotate(ctx, refreshToken, device)
	if err != nil {
		s.Metrics.RefreshAttempt(refreshResult(err))
		return model.TokenPair{}, err
	}
	s.Metrics.RefreshAttempt("success")
	return pair, nil
}

// RevokeOtherSession revokes a session of callerID identified by record id or
// token hash. The caller's current session cannot be revoked this way.
func (s *Session) RevokeOtherSession(ctx context.Context, sessionRef string, callerID uuid.UUID, currentTokenHash string) error {
	record, err := s.Ledger.FindForUser(ctx, sessionRef, callerID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.NewNotFoundError("session")
		}
		return err
	}

	if currentTokenHash != "" && record.TokenHash == currentTokenHash {
		return model.ErrCannotRevokeCurrentSession
	}
	if record.IsRevoked() {
		return model.ErrSessionAlreadyRevoked
	}

	ok, err := s.Ledger.RevokeByID(ctx, record.ID, &callerID)
	if err != nil {
		return err
	}
	if !ok {
		return model.ErrSessionAlreadyRevoked
	}

	if err := s.Blacklist.Add(ctx, record.ID.String(), s.Codec.TTL()); err != nil {
		s.logger.Error("Session service: failed to blacklist revoked session",
			"user_id", callerID,
			"session_id", record.ID,
			"error", err.Error())
	}

	s.logger.Info("Session service: session revoked",
		"user_id", callerID,
		"session_id", record.ID)
	return nil
}

// GetUserSessions lists active sessions of userID.
func (s *Session) GetUserSessions(ctx context.Context, userID uuid.UUID, currentTokenHash string) ([]model.SessionSummary, error) {
	return s.Ledger.ListActive(ctx, userID, currentTokenHash)
}

// VerifyEmail consumes a verification token. Verifying an already verified
// account fails.
func (s *Session) VerifyEmail(ctx context.Context, token string) (model.User, error) {
	userID, err := s.Verifications.LookupUser(ctx, token)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.User{}, model.ErrVerificationTokenInvalid
		}
		return model.User{}, fmt.Errorf("failed to look up verification token: %w", err)
	}

	user, err := s.getUser(ctx, userID)
	if err != nil {
		return model.User{}, err
	}
	if user.EmailVerified {
		return model.User{}, model.ErrEmailAlreadyVerified
	}

	now := s.Clock.Now()
	if err := s.Users.MarkEmailVerified(ctx, user.ID, now); err != nil {
		return model.User{}, fmt.Errorf("failed to mark email verified: %w", err)
	}
	if err := s.Verifications.Delete(ctx, user.ID); err != nil {
		s.logger.Warn("Session service: failed to delete verification token",
			"user_id", user.ID,
			"error", err.Error())
	}

	user.EmailVerified = true
	user.EmailVerifiedAt = &now

	s.logger.Info("Session service: email verified",
		"user_id", user.ID)
	return user, nil
}

// ResendEmailVerification replaces the verification token of userID.
func (s *Session) ResendEmailVerification(ctx context.Context, userID uuid.UUID) (string, error) {
	user, err := s.getUser(ctx, userID)
	if err != nil {
		return "", err
	}
	if user.EmailVerified {
		return "", model.ErrEmailAlreadyVerified
	}
	return s.createVerificationToken(ctx, user)
}

func (s *Session) GetEmailVerificationStatus(ctx context.Context, userID uuid.UUID) (model.VerificationStatus, error) {
	user, err := s.getUser(ctx, userID)
	if err != nil {
		return model.VerificationStatus{}, err
	}
	return model.VerificationStatus{
		IsVerified: user.EmailVerified,
		VerifiedAt: user.EmailVerifiedAt,
		Email:      user.Email,
	}, nil
}

// GetAuthenticatedUser verifies accessToken and loads its owner.
func (s *Session) GetAuthenticatedUser(ctx context.Context, accessToken string) (model.AuthenticatedUser, error) {
	claims, err := s.Codec.Verify(ctx, accessToken)
	if err != nil {
		return model.AuthenticatedUser{}, err
	}

	user, err := s.getUser(ctx, claims.UserID)
	if err != nil {
		return model.AuthenticatedUser{}, err
	}
	if !user.IsActive() {
		return model.AuthenticatedUser{}, model.ErrAccountInactive
	}

	return model.AuthenticatedUser{
		User:           user,
		SessionID:      claims.SessionID,
		TokenExpiresAt: claims.ExpiresAt,
	}, nil
}

// issueSession persists a refresh token and mints an access token whose
// session id is the new record id.
func (s *Session) issueSession(ctx context.Context, user model.User, device model.DeviceInfo) (model.AuthResult, error) {
	refresh, err := s.Ledger.Issue(ctx, user, device)
	if err != nil {
		return model.AuthResult{}, err
	}

	sessionID := refresh.Record.ID.String()
	access, _, err := s.Codec.Issue(user, sessionID)
	if err != nil {
		return model.AuthResult{}, fmt.Errorf("failed to issue access token: %w", err)
	}

	return model.AuthResult{
		User:         user,
		AccessToken:  access,
		RefreshToken: refresh.Plaintext,
		ExpiresIn:    s.Codec.TTL(),
		SessionID:    sessionID,
	}, nil
}

func (s *Session) createVerificationToken(ctx context.Context, user model.User) (string, error) {
	token, err := newSecret()
	if err != nil {
		return "", err
	}
	if err := s.Verifications.Put(ctx, user.ID, token, s.cfg.VerificationTTL); err != nil {
		return "", fmt.Errorf("failed to store verification token: %w", err)
	}
	s.Notifier.EmailVerificationRequested(ctx, user, token)
	return token, nil
}

func (s *Session) getUser(ctx context.Context, id uuid.UUID) (model.User, error) {
	user, err := s.Users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.User{}, model.NewNotFoundError("user")
		}
		return model.User{}, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

// timingHash is compared against when the email is unknown so both failure
// paths cost one hash comparison.
func (s *Session) timingHash() string {
	s.dummyOnce.Do(func() {
		h, err := s.Hasher.Hash("timing-equalizer")
		if err == nil {
			s.dummyHash = h
		}
	})
	return s.dummyHash
}

func profileOf(in model.RegisterInput) model.Profile {
	p := model.Profile{
		FirstName:   strings.TrimSpace(in.FirstName),
		LastName:    strings.TrimSpace(in.LastName),
		PhoneNumber: in.PhoneNumber,
		Language:    in.Language,
		Timezone:    in.Timezone,
		Theme:       in.Theme,
	}
	if p.Language == "" {
		p.Language = defaultLanguage
	}
	if p.Timezone == "" {
		p.Timezone = defaultTimezone
	}
	if p.Theme == "" {
		p.Theme = defaultTheme
	}
	return p
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func refreshResult(err error) string {
	switch {
	case errors.Is(err, model.ErrTokenNotFound):
		return "not_found"
	case errors.Is(err, model.ErrTokenExpired):
		return "expired"
	case errors.Is(err, model.ErrTokenRevoked):
		return "revoked"
	case errors.Is(err, model.ErrAccountInactive):
		return "inactive"
	default:
		return "error"
	}
}

// toValidationError reports the first failing field in snake_case.
func toValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return model.NewValidationError("input", err.Error())
	}
	fe := verrs[0]
	return model.NewValidationError(snakeCase(fe.Field()), fe.Tag())
}

func snakeCase(s string) string {
	var b strings.Builder
	for i, r := range s {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('_')
			}
			r += 'a' - 'A'
		}
		b.WriteRune(r)
	}
	return b.String()
}
