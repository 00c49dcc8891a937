package middleware

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/dtroode/helpdesk-auth/internal/mocks"
	"github.com/dtroode/helpdesk-auth/internal/model"
	"github.com/dtroode/helpdesk-auth/internal/testutil"
)

func TestAuthenticate_AuthFunc(t *testing.T) {
	t.Parallel()

	userID := uuid.New()

	tests := []struct {
		name         string
		mdAuthHeader string
		identity     model.AuthenticatedUser
		svcErr       error
		callSvc      bool
		wantGRPCCode codes.Code
		wantErr      bool
	}{
		{
			name:         "missing authorization header",
			wantGRPCCode: codes.Unauthenticated,
			wantErr:      true,
		},
		{
			name:         "wrong scheme",
			mdAuthHeader: "Basic dXNlcjpwYXNz",
			wantGRPCCode: codes.Unauthenticated,
			wantErr:      true,
		},
		{
			name:         "blacklisted token",
			mdAuthHeader: "Bearer token",
			svcErr:       model.ErrTokenBlacklisted,
			callSvc:      true,
			wantGRPCCode: codes.Unauthenticated,
			wantErr:      true,
		},
		{
			name:         "suspended account",
			mdAuthHeader: "Bearer token",
			svcErr:       model.ErrAccountInactive,
			callSvc:      true,
			wantGRPCCode: codes.PermissionDenied,
			wantErr:      true,
		},
		{
			name:         "valid token",
			mdAuthHeader: "Bearer token",
			identity:     model.AuthenticatedUser{User: model.User{ID: userID}, SessionID: "sid"},
			callSvc:      true,
			wantGRPCCode: codes.OK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			lg := testutil.MakeNoopLogger()
			cm := mocks.NewContextManager(t)
			if !tt.wantErr {
				cm.On("SetIdentityToContext", mock.Anything, userID, "sid").Return(context.Background())
			}

			svc := mocks.NewAuthenticator(t)
			if tt.callSvc {
				svc.On("GetAuthenticatedUser", mock.Anything, "token").Return(tt.identity, tt.svcErr)
			}
			m := NewAuthenticate(svc, cm, lg)

			ctx := context.Background()
			if tt.mdAuthHeader != "" {
				ctx = metadata.NewIncomingContext(ctx, metadata.Pairs("authorization", tt.mdAuthHeader))
			}

			newCtx, err := m.AuthFunc(ctx)

			if tt.wantErr {
				assert.Error(t, err)
				st, ok := status.FromError(err)
				assert.True(t, ok)
				assert.Equal(t, tt.wantGRPCCode, st.Code())
				assert.Nil(t, newCtx)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, newCtx)
			}
		})
	}
}
