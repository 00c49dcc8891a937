package middleware

import (
	"context"
	"errors"

	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/auth"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dtroode/helpdesk-auth/internal/logger"
	"github.com/dtroode/helpdesk-auth/internal/model"
)

// Authenticator resolves a bearer token to the identity behind it.
type Authenticator interface {
	GetAuthenticatedUser(ctx context.Context, accessToken string) (model.AuthenticatedUser, error)
}

// Authenticate validates bearer tokens and injects the identity into context.
type Authenticate struct {
	authenticator  Authenticator
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware instance.
func NewAuthenticate(authenticator Authenticator, contextManager model.ContextManager, logger *logger.Logger) *Authenticate {
	return &Authenticate{authenticator: authenticator, contextManager: contextManager, logger: logger}
}

// AuthFunc reads "authorization: Bearer <token>", verifies the token and
// returns a context carrying user and session ids.
func (m *Authenticate) AuthFunc(ctx context.Context) (context.Context, error) {
	tokenString, err := auth.AuthFromMD(ctx, "bearer")
	if err != nil {
		return nil, err
	}

	identity, err := m.authenticator.GetAuthenticatedUser(ctx, tokenString)
	if err != nil {
		m.logger.Debug("Authenticate: access token rejected",
			"error", err.Error())
		if errors.Is(err, model.ErrAccountInactive) {
			return nil, status.Error(codes.PermissionDenied, "account is not active")
		}
		return nil, status.Error(codes.Unauthenticated, "invalid or expired access token")
	}

	return m.contextManager.SetIdentityToContext(ctx, identity.User.ID, identity.SessionID), nil
}
