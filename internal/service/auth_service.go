package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/tripboard/internal/auth"
	"github.com/mmynk/tripboard/pkg/api"
	"github.com/mmynk/tripboard/pkg/api/apiconnect"
)

// AuthService implements the AuthService RPC interface.
type AuthService struct {
	apiconnect.UnimplementedAuthServiceHandler
	authenticator auth.Authenticator
	jwtManager    *auth.JWTManager
	logger        *slog.Logger
}

// NewAuthService creates a new authentication service.
func NewAuthService(authenticator auth.Authenticator, jwtManager *auth.JWTManager, logger *slog.Logger) *AuthService {
	return &AuthService{
		authenticator: authenticator,
		jwtManager:    jwtManager,
		logger:        logger,
	}
}

// Login checks the trip passcode and returns a JWT token.
func (s *AuthService) Login(ctx context.Context, req *connect.Request[api.LoginRequest]) (*connect.Response[api.LoginResponse], error) {
	name := strings.TrimSpace(req.Msg.Name)
	s.logger.Info("Login request", "member", name)

	if !s.authenticator.Enabled() {
		return nil, connect.NewError(connect.CodeFailedPrecondition, auth.ErrAuthDisabled)
	}

	// Validate input
	if err := s.authenticator.ValidateCredential(req.Msg.Passcode); err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	if err := s.authenticator.Authenticate(ctx, req.Msg.Passcode); err != nil {
		s.logger.Warn("Login failed", "member", name, "error", err)
		if errors.Is(err, auth.ErrAuthDisabled) {
			return nil, connect.NewError(connect.CodeFailedPrecondition, err)
		}
		return nil, connect.NewError(connect.CodeUnauthenticated, auth.ErrInvalidCredentials)
	}

	// Generate JWT token
	token, expires, err := s.jwtManager.Generate(name)
	if err != nil {
		s.logger.Error("Failed to generate token", "member", name, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	s.logger.Info("Member logged in successfully", "member", name)
	return connect.NewResponse(&api.LoginResponse{
		Token:     token,
		ExpiresAt: expires.Unix(),
	}), nil
}
