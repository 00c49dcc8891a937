package handler

import (
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dtroode/helpdesk-auth/internal/model"
)

// handleError maps domain errors to gRPC status errors. Internal details never
// reach the client.
func handleError(err error) error {
	var verr *model.ValidationError
	if errors.As(err, &verr) {
		return status.Error(codes.InvalidArgument, verr.Error())
	}
	var nf *model.NotFoundError
	if errors.As(err, &nf) {
		return status.Error(codes.NotFound, nf.Error())
	}

	switch {
	case errors.Is(err, model.ErrInvalidCredentials):
		return status.Error(codes.Unauthenticated, "invalid credentials")
	case errors.Is(err, model.ErrAccountSuspended):
		return status.Error(codes.PermissionDenied, "account suspended")
	case errors.Is(err, model.ErrAccountInactive):
		return status.Error(codes.PermissionDenied, "account is not active")
	case errors.Is(err, model.ErrTokenExpired),
		errors.Is(err, model.ErrTokenRevoked),
		errors.Is(err, model.ErrTokenNotFound),
		errors.Is(err, model.ErrTokenMalformed),
		errors.Is(err, model.ErrTokenNotYetValid),
		errors.Is(err, model.ErrTokenBlacklisted),
		errors.Is(err, model.ErrBadSignature),
		errors.Is(err, model.ErrMissingClaim),
		errors.Is(err, model.ErrInvalidToken):
		return status.Error(codes.Unauthenticated, err.Error())
	case errors.Is(err, model.ErrSessionAlreadyRevoked),
		errors.Is(err, model.ErrCannotRevokeCurrentSession),
		errors.Is(err, model.ErrEmailAlreadyVerified):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, model.ErrMaxAttemptsExceeded):
		return status.Error(codes.ResourceExhausted, model.ErrMaxAttemptsExceeded.Error())
	case errors.Is(err, model.ErrResetTokenInvalid),
		errors.Is(err, model.ErrResetTokenExpired),
		errors.Is(err, model.ErrVerificationTokenInvalid),
		errors.Is(err, model.ErrSamePassword):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, model.ErrNotFound):
		return status.Error(codes.NotFound, "not found")
	default:
		return status.Error(codes.Internal, "internal server error")
	}
}
