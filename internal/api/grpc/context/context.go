package context

import (
	"context"

	"github.com/google/uuid"
	"google.golang.org/grpc/metadata"

	"github.com/dtroode/helpdesk-auth/internal/model"
)

// Metadata keys used to carry the authenticated identity in gRPC context.
const (
	userIDKey    string = "x-auth-user-id"
	sessionIDKey string = "x-auth-session-id"
)

var _ model.ContextManager = (*Manager)(nil)

// Manager stores the authenticated identity in incoming gRPC metadata.
type Manager struct{}

// NewManager creates a new gRPC context manager instance.
func NewManager() *Manager {
	return &Manager{}
}

// SetIdentityToContext overwrites any identity keys supplied by the client.
func (m *Manager) SetIdentityToContext(ctx context.Context, userID uuid.UUID, sessionID string) context.Context {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		md = metadata.New(nil)
	} else {
		md = md.Copy()
	}
	md.Set(userIDKey, userID.String())
	md.Set(sessionIDKey, sessionID)

	return metadata.NewIncomingContext(ctx, md)
}

// GetUserIDFromContext retrieves the user ID from gRPC context metadata.
func (m *Manager) GetUserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	v, ok := first(ctx, userIDKey)
	if !ok {
		return uuid.Nil, false
	}

	userID, err := uuid.Parse(v)
	if err != nil {
		return uuid.Nil, false
	}
	return userID, true
}

func (m *Manager) GetSessionIDFromContext(ctx context.Context) (string, bool) {
	return first(ctx, sessionIDKey)
}

func first(ctx context.Context, key string) (string, bool) {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return "", false
	}
	values := md.Get(key)
	if len(values) == 0 || values[0] == "" {
		return "", false
	}
	return values[0], true
}
