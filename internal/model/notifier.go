package model

import "context"

// Notifier delivers user-facing messages. Calls are fire-and-forget.
type Notifier interface {
	EmailVerificationRequested(ctx context.Context, user User, token string)
	PasswordResetRequested(ctx context.Context, user User, token string)
	PasswordResetCompleted(ctx context.Context, user User)
}
