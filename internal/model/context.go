package model

import (
	"context"

	"github.com/google/uuid"
)

// ContextManager carries the authenticated identity through request contexts.
type ContextManager interface {
	SetIdentityToContext(ctx context.Context, userID uuid.UUID, sessionID string) context.Context
	GetUserIDFromContext(ctx context.Context) (uuid.UUID, bool)
	GetSessionIDFromContext(ctx context.Context) (string, bool)
}
