package router

import (
	"context"

	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/auth"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/selector"
	"google.golang.org/grpc"

	"github.com/dtroode/helpdesk-auth/internal/api/grpc/authv1"
	"github.com/dtroode/helpdesk-auth/internal/api/grpc/handler"
	"github.com/dtroode/helpdesk-auth/internal/api/grpc/middleware"
	"github.com/dtroode/helpdesk-auth/internal/logger"
	"github.com/dtroode/helpdesk-auth/internal/model"
	"github.com/dtroode/helpdesk-auth/internal/service"
)

// Router represents a gRPC router for the auth service.
// It manages gRPC service registration and middleware configuration.
type Router struct {
	sessionService *service.Session
	resetService   *service.PasswordReset
	decoder        handler.TokenDecoder
	contextManager model.ContextManager
	logger         *logger.Logger
}

// New creates new gRPC Router instance.
//
// Parameters:
//   - sessionService: The session manager
//   - resetService: The password reset manager
//   - decoder: Signature-only access token decoder used by Logout
//   - contextManager: Carries the authenticated identity
//   - logger: The logger for request logging
func New(
	sessionService *service.Session,
	resetService *service.PasswordReset,
	decoder handler.TokenDecoder,
	contextManager model.ContextManager,
	logger *logger.Logger,
) *Router {
	return &Router{
		sessionService: sessionService,
		resetService:   resetService,
		decoder:        decoder,
		contextManager: contextManager,
		logger:         logger,
	}
}

// publicMethods skip the bearer authentication interceptor. Logout
// authenticates itself so that an expired access token can still log out.
var publicMethods = map[string]bool{
	authv1.Auth_Register_FullMethodName:             true,
	authv1.Auth_Login_FullMethodName:                true,
	authv1.Auth_Refresh_FullMethodName:              true,
	authv1.Auth_Logout_FullMethodName:               true,
	authv1.Auth_VerifyEmail_FullMethodName:          true,
	authv1.Auth_RequestPasswordReset_FullMethodName: true,
	authv1.Auth_ValidateResetToken_FullMethodName:   true,
	authv1.Auth_ConfirmPasswordReset_FullMethodName: true,
}

func requiresAuth(_ context.Context, c interceptors.CallMeta) bool {
	return !publicMethods[c.FullMethod()]
}

// Register registers all gRPC services and middleware.
// It sets up the gRPC server with request logging and authentication interceptors.
//
// Returns the configured gRPC server instance.
func (r *Router) Register(opts ...grpc.ServerOption) *grpc.Server {
	logging := middleware.NewLogging(r.logger)
	authenticate := middleware.NewAuthenticate(r.sessionService, r.contextManager, r.logger)

	opts = append(opts,
		grpc.ChainUnaryInterceptor(
			logging.HandleGRPC,
			selector.UnaryServerInterceptor(
				auth.UnaryServerInterceptor(authenticate.AuthFunc),
				selector.MatchFunc(requiresAuth),
			),
		),
	)

	s := grpc.NewServer(opts...)
	r.registerAuthRoutes(s)

	return s
}

func (r *Router) registerAuthRoutes(server *grpc.Server) {
	authHandler := handler.NewAuth(r.sessionService, r.resetService, r.decoder, r.contextManager, r.logger)
	authv1.RegisterAuthServer(server, authHandler)
}
