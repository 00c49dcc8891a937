package handler

import (
	"context"
	"net"
	"time"

	"github.com/google/uuid"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/auth"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/peer"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/dtroode/helpdesk-auth/internal/api/grpc/authv1"
	"github.com/dtroode/helpdesk-auth/internal/logger"
	"github.com/dtroode/helpdesk-auth/internal/model"
	"github.com/dtroode/helpdesk-auth/internal/service"
)

const tokenType = "Bearer"

// SessionService defines login, logout, refresh and session operations.
type SessionService interface {
	Register(ctx context.Context, in model.RegisterInput, device model.DeviceInfo) (model.AuthResult, error)
	Login(ctx context.Context, email, password string, device model.DeviceInfo) (model.AuthResult, error)
	Logout(ctx context.Context, accessToken, refreshToken string, userID uuid.UUID) error
	LogoutAllDevices(ctx context.Context, userID uuid.UUID) (int64, error)
	RefreshToken(ctx context.Context, refreshToken string, device model.DeviceInfo) (model.TokenPair, error)
	RevokeOtherSession(ctx context.Context, sessionRef string, callerID uuid.UUID, currentTokenHash string) error
	GetUserSessions(ctx context.Context, userID uuid.UUID, currentTokenHash string) ([]model.SessionSummary, error)
	VerifyEmail(ctx context.Context, token string) (model.User, error)
	ResendEmailVerification(ctx context.Context, userID uuid.UUID) (string, error)
	GetEmailVerificationStatus(ctx context.Context, userID uuid.UUID) (model.VerificationStatus, error)
	GetAuthenticatedUser(ctx context.Context, accessToken string) (model.AuthenticatedUser, error)
}

// PasswordResetService defines the self-service password reset operations.
type PasswordResetService interface {
	RequestReset(ctx context.Context, email string) bool
	ValidateResetToken(ctx context.Context, token string) (model.ResetStatus, error)
	ConfirmReset(ctx context.Context, token, newPassword string) (model.User, error)
}

// TokenDecoder checks access token signatures without enforcing expiry.
type TokenDecoder interface {
	Decode(token string) (model.AccessClaims, error)
}

// Auth handles gRPC endpoints of the helpdesk.auth.v1.Auth service.
type Auth struct {
	authv1.UnimplementedAuthServer

	sessions       SessionService
	resets         PasswordResetService
	decoder        TokenDecoder
	contextManager model.ContextManager
	logger         *logger.Logger
}

var _ authv1.AuthServer = (*Auth)(nil)

// NewAuth creates a new Auth handler.
func NewAuth(
	sessions SessionService,
	resets PasswordResetService,
	decoder TokenDecoder,
	contextManager model.ContextManager,
	logger *logger.Logger,
) *Auth {
	return &Auth{
		sessions:       sessions,
		resets:         resets,
		decoder:        decoder,
		contextManager: contextManager,
		logger:         logger,
	}
}

// Register creates an account and signs it in.
func (h *Auth) Register(ctx context.Context, req *authv1.RegisterRequest) (*authv1.AuthResponse, error) {
	h.logger.Debug("Auth handler: processing registration request")

	result, err := h.sessions.Register(ctx, model.RegisterInput{
		Email:       req.Email,
		Password:    req.Password,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		PhoneNumber: optionalString(req.PhoneNumber),
		Language:    req.Language,
		Timezone:    req.Timezone,
		Theme:       req.Theme,
	}, deviceFromContext(ctx, req.DeviceName))
	if err != nil {
		h.logger.Warn("Auth handler: registration failed",
			"error", err.Error())
		return nil, handleError(err)
	}

	return toAuthResponse(result), nil
}

// Login verifies credentials and opens a session.
func (h *Auth) Login(ctx context.Context, req *authv1.LoginRequest) (*authv1.AuthResponse, error) {
	h.logger.Debug("Auth handler: processing login request")

	if req.Email == "" || req.Password == "" {
		return nil, status.Error(codes.InvalidArgument, "email and password are required")
	}

	result, err := h.sessions.Login(ctx, req.Email, req.Password, deviceFromContext(ctx, req.DeviceName))
	if err != nil {
		h.logger.Warn("Auth handler: login failed",
			"error", err.Error())
		return nil, handleError(err)
	}

	return toAuthResponse(result), nil
}

// Refresh exchanges a refresh token for a new token pair.
func (h *Auth) Refresh(ctx context.Context, req *authv1.RefreshRequest) (*authv1.TokenPairResponse, error) {
	h.logger.Debug("Auth handler: processing token refresh request")

	if req.RefreshToken == "" {
		return nil, status.Error(codes.InvalidArgument, "refresh token is required")
	}

	pair, err := h.sessions.RefreshToken(ctx, req.RefreshToken, deviceFromContext(ctx, req.DeviceName))
	if err != nil {
		h.logger.Warn("Auth handler: token refresh failed",
			"error", err.Error())
		return nil, handleError(err)
	}

	return &authv1.TokenPairResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		TokenType:    tokenType,
		ExpiresIn:    int64(pair.ExpiresIn.Seconds()),
		SessionId:    pair.SessionID,
	}, nil
}

// Logout accepts an expired but correctly signed access token.
func (h *Auth) Logout(ctx context.Context, req *authv1.LogoutRequest) (*authv1.Empty, error) {
	h.logger.Debug("Auth handler: processing logout request")

	accessToken, err := auth.AuthFromMD(ctx, "bearer")
	if err != nil {
		return nil, err
	}
	claims, err := h.decoder.Decode(accessToken)
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, "invalid access token")
	}

	if err := h.sessions.Logout(ctx, accessToken, req.RefreshToken, claims.UserID); err != nil {
		h.logger.Error("Auth handler: logout failed",
			"user_id", claims.UserID,
			"error", err.Error())
		return nil, handleError(err)
	}

	return &authv1.Empty{}, nil
}

// LogoutAll revokes every session of the caller.
func (h *Auth) LogoutAll(ctx context.Context, _ *authv1.Empty) (*authv1.LogoutAllResponse, error) {
	userID, err := h.extractUserIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	n, err := h.sessions.LogoutAllDevices(ctx, userID)
	if err != nil {
		h.logger.Error("Auth handler: logout from all devices failed",
			"user_id", userID,
			"error", err.Error())
		return nil, handleError(err)
	}

	return &authv1.LogoutAllResponse{RevokedSessions: n}, nil
}

// ListSessions returns the caller's active sessions.
func (h *Auth) ListSessions(ctx context.Context, req *authv1.ListSessionsRequest) (*authv1.ListSessionsResponse, error) {
	userID, err := h.extractUserIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	sessions, err := h.sessions.GetUserSessions(ctx, userID, currentHash(req.RefreshToken))
	if err != nil {
		return nil, handleError(err)
	}

	out := make([]*authv1.Session, 0, len(sessions))
	for _, s := range sessions {
		out = append(out, &authv1.Session{
			Id:         s.ID.String(),
			DeviceName: valueOf(s.DeviceName),
			IpAddress:  valueOf(s.IPAddress),
			LastUsedAt: optionalTimestamp(s.LastUsedAt),
			CreatedAt:  timestamppb.New(s.CreatedAt),
			ExpiresAt:  timestamppb.New(s.ExpiresAt),
			IsCurrent:  s.IsCurrent,
		})
	}
	return &authv1.ListSessionsResponse{Sessions: out}, nil
}

// RevokeSession revokes another session of the caller.
func (h *Auth) RevokeSession(ctx context.Context, req *authv1.RevokeSessionRequest) (*authv1.Empty, error) {
	userID, err := h.extractUserIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if req.SessionId == "" {
		return nil, status.Error(codes.InvalidArgument, "session id is required")
	}

	if err := h.sessions.RevokeOtherSession(ctx, req.SessionId, userID, currentHash(req.RefreshToken)); err != nil {
		h.logger.Warn("Auth handler: session revoke failed",
			"user_id", userID,
			"error", err.Error())
		return nil, handleError(err)
	}

	return &authv1.Empty{}, nil
}

// VerifyEmail consumes an email verification token.
func (h *Auth) VerifyEmail(ctx context.Context, req *authv1.VerifyEmailRequest) (*authv1.UserResponse, error) {
	if req.Token == "" {
		return nil, status.Error(codes.InvalidArgument, "token is required")
	}

	user, err := h.sessions.VerifyEmail(ctx, req.Token)
	if err != nil {
		return nil, handleError(err)
	}
	return &authv1.UserResponse{User: toUser(user)}, nil
}

// ResendVerification issues a new verification token. The token goes to the
// notifier only.
func (h *Auth) ResendVerification(ctx context.Context, _ *authv1.Empty) (*authv1.ResendVerificationResponse, error) {
	userID, err := h.extractUserIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	if _, err := h.sessions.ResendEmailVerification(ctx, userID); err != nil {
		return nil, handleError(err)
	}
	return &authv1.ResendVerificationResponse{Sent: true}, nil
}

func (h *Auth) VerificationStatus(ctx context.Context, _ *authv1.Empty) (*authv1.VerificationStatusResponse, error) {
	userID, err := h.extractUserIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	st, err := h.sessions.GetEmailVerificationStatus(ctx, userID)
	if err != nil {
		return nil, handleError(err)
	}
	return &authv1.VerificationStatusResponse{
		IsVerified: st.IsVerified,
		VerifiedAt: optionalTimestamp(st.VerifiedAt),
		Email:      st.Email,
	}, nil
}

// Me returns the identity behind the presented access token.
func (h *Auth) Me(ctx context.Context, _ *authv1.Empty) (*authv1.MeResponse, error) {
	accessToken, err := auth.AuthFromMD(ctx, "bearer")
	if err != nil {
		return nil, err
	}

	identity, err := h.sessions.GetAuthenticatedUser(ctx, accessToken)
	if err != nil {
		return nil, handleError(err)
	}
	return &authv1.MeResponse{
		User:           toUser(identity.User),
		SessionId:      identity.SessionID,
		TokenExpiresAt: timestamppb.New(identity.TokenExpiresAt),
	}, nil
}

// RequestPasswordReset always reports acceptance.
func (h *Auth) RequestPasswordReset(ctx context.Context, req *authv1.RequestPasswordResetRequest) (*authv1.RequestPasswordResetResponse, error) {
	if req.Email == "" {
		return nil, status.Error(codes.InvalidArgument, "email is required")
	}
	return &authv1.RequestPasswordResetResponse{Accepted: h.resets.RequestReset(ctx, req.Email)}, nil
}

func (h *Auth) ValidateResetToken(ctx context.Context, req *authv1.ValidateResetTokenRequest) (*authv1.ValidateResetTokenResponse, error) {
	st, err := h.resets.ValidateResetToken(ctx, req.Token)
	if err != nil {
		return nil, handleError(err)
	}
	return &authv1.ValidateResetTokenResponse{
		IsValid:           st.IsValid,
		MaskedEmail:       st.MaskedEmail,
		ExpiresAt:         optionalTimestamp(st.ExpiresAt),
		AttemptsRemaining: int32(st.AttemptsRemaining),
	}, nil
}

func (h *Auth) ConfirmPasswordReset(ctx context.Context, req *authv1.ConfirmPasswordResetRequest) (*authv1.UserResponse, error) {
	if req.Token == "" {
		return nil, status.Error(codes.InvalidArgument, "token is required")
	}

	user, err := h.resets.ConfirmReset(ctx, req.Token, req.Password)
	if err != nil {
		h.logger.Warn("Auth handler: password reset confirmation failed",
			"error", err.Error())
		return nil, handleError(err)
	}
	return &authv1.UserResponse{User: toUser(user)}, nil
}

func (h *Auth) extractUserIDFromContext(ctx context.Context) (uuid.UUID, error) {
	userID, ok := h.contextManager.GetUserIDFromContext(ctx)
	if !ok {
		return uuid.Nil, status.Error(codes.Unauthenticated, "user is not authenticated")
	}
	return userID, nil
}

func currentHash(refreshToken string) string {
	if refreshToken == "" {
		return ""
	}
	return service.HashRefreshToken(refreshToken)
}

// deviceFromContext combines the client supplied name with the peer address
// and user agent of the call.
func deviceFromContext(ctx context.Context, name string) model.DeviceInfo {
	device := model.DeviceInfo{Name: name}

	if p, ok := peer.FromContext(ctx); ok && p.Addr != nil {
		addr := p.Addr.String()
		if host, _, err := net.SplitHostPort(addr); err == nil {
			addr = host
		}
		// non-IP transports such as unix sockets carry no client address
		if net.ParseIP(addr) != nil {
			device.IP = addr
		}
	}
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if ua := md.Get("user-agent"); len(ua) > 0 {
			device.UserAgent = ua[0]
		}
	}
	return device
}

func toAuthResponse(r model.AuthResult) *authv1.AuthResponse {
	return &authv1.AuthResponse{
		User:                 toUser(r.User),
		AccessToken:          r.AccessToken,
		RefreshToken:         r.RefreshToken,
		TokenType:            tokenType,
		ExpiresIn:            int64(r.ExpiresIn.Seconds()),
		SessionId:            r.SessionID,
		RequiresVerification: r.RequiresVerification,
	}
}

func toUser(u model.User) *authv1.User {
	return &authv1.User{
		Id:            u.ID.String(),
		Email:         u.Email,
		Status:        string(u.Status),
		EmailVerified: u.EmailVerified,
		FirstName:     u.Profile.FirstName,
		LastName:      u.Profile.LastName,
		PhoneNumber:   valueOf(u.Profile.PhoneNumber),
		Language:      u.Profile.Language,
		Timezone:      u.Profile.Timezone,
		Theme:         u.Profile.Theme,
		LastLoginAt:   optionalTimestamp(u.LastLoginAt),
		CreatedAt:     timestamppb.New(u.CreatedAt),
	}
}

// proto3 strings carry no presence; empty means unset.
func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func valueOf(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func optionalTimestamp(t *time.Time) *timestamppb.Timestamp {
	if t == nil {
		return nil
	}
	return timestamppb.New(*t)
}
