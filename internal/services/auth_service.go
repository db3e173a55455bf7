package services

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/yoga-studio/front/internal/clients"
	"github.com/yoga-studio/front/internal/models"
)

// AuthService runs the login/register/logout flows against the auth gateway and
// keeps the SessionService in step with their outcome.
type AuthService interface {
	Login(ctx context.Context, req models.LoginRequest) (*models.SessionInformation, error)
	Register(ctx context.Context, req models.RegisterRequest) error
	Logout()
}

type authService struct {
	authClient clients.AuthClient
	session    *SessionService
	logger     *zap.Logger
}

func NewAuthService(authClient clients.AuthClient, session *SessionService, logger *zap.Logger) AuthService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &authService{
		authClient: authClient,
		session:    session,
		logger:     logger.Named("auth"),
	}
}

// Login leaves the session state untouched when the credentials are refused.
func (s *authService) Login(ctx context.Context, req models.LoginRequest) (*models.SessionInformation, error) {
	info, err := s.authClient.Login(ctx, req)
	if err != nil {
		s.logger.Info("login refused", zap.String("email", req.Email), zap.Error(err))
		return nil, fmt.Errorf("login: %w", err)
	}
	if info == nil {
		return nil, errors.New("login: empty session information")
	}

	s.session.LogIn(*info)
	s.logger.Info("login succeeded", zap.Int64("user_id", info.ID))
	return info, nil
}

func (s *authService) Register(ctx context.Context, req models.RegisterRequest) error {
	if err := s.authClient.Register(ctx, req); err != nil {
		return fmt.Errorf("register: %w", err)
	}
	s.logger.Info("account registered", zap.String("email", req.Email))
	return nil
}

func (s *authService) Logout() {
	s.session.LogOut()
}
