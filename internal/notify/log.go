package notify

import (
	"context"

	"github.com/dtroode/helpdesk-auth/internal/logger"
	"github.com/dtroode/helpdesk-auth/internal/model"
	"github.com/dtroode/helpdesk-auth/internal/service"
)

var _ model.Notifier = (*LogNotifier)(nil)

// LogNotifier records notification intents in the service log and delivers
// nothing. Tokens are never written, so users cannot act on these entries.
// It is a placeholder sink until a mail delivery Notifier is wired in.
type LogNotifier struct {
	logger *logger.Logger
}

func NewLogNotifier(logger *logger.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) EmailVerificationRequested(_ context.Context, user model.User, _ string) {
	n.logger.Info("Notifier: email verification requested",
		"user_id", user.ID,
		"email", service.MaskEmail(user.Email))
}

func (n *LogNotifier) PasswordResetRequested(_ context.Context, user model.User, _ string) {
	n.logger.Info("Notifier: password reset requested",
		"user_id", user.ID,
		"email", service.MaskEmail(user.Email))
}

func (n *LogNotifier) PasswordResetCompleted(_ context.Context, user model.User) {
	n.logger.Info("Notifier: password reset completed",
		"user_id", user.ID,
		"email", service.MaskEmail(user.Email))
}
