package identity

import (
	"context"
	"time"

	"github.com/bizmaster/backend/internal/domain/identity"
	"github.com/bizmaster/backend/internal/infrastructure/auth"
	"go.uber.org/zap"
)

// AuthService handles login and token validation
type AuthService struct {
	userRepo   identity.UserRepository
	jwtService *auth.JWTService
	logger     *zap.Logger
}

// NewAuthService creates a new authentication service
func NewAuthService(userRepo identity.UserRepository, jwtService *auth.JWTService, logger *zap.Logger) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtService: jwtService,
		logger:     logger,
	}
}

// LoginRequest represents a login submission
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the session token and the authenticated profile
type LoginResponse struct {
	AccessToken string        `json:"access_token"`
	TokenType   string        `json:"token_type"`
	ExpiresAt   time.Time     `json:"expires_at"`
	User        *UserResponse `json:"user"`
}

// Login authenticates a user and issues a session token. Failed lookups and
// wrong passwords collapse into one error so usernames cannot be probed.
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	user, err := s.userRepo.FindByUsername(ctx, req.Username)
	if err != nil {
		s.logger.Warn("Login attempt for unknown user", zap.String("username", req.Username))
		return nil, identity.ErrInvalidCredentials
	}

	if !user.CheckPassword(req.Password) {
		s.logger.Warn("Invalid password attempt", zap.String("username", user.Username))
		return nil, identity.ErrInvalidCredentials
	}

	user.RecordLogin(time.Now())
	if err := s.userRepo.Update(ctx, user); err != nil {
		s.logger.Error("Failed to record login time", zap.Error(err))
	}

	token, err := s.jwtService.GenerateToken(auth.GenerateTokenInput{
		UserID:       user.ID,
		Username:     user.Username,
		Role:         string(user.Role),
		BusinessUnit: user.BusinessUnit,
	})
	if err != nil {
		s.logger.Error("Failed to issue token", zap.Error(err))
		return nil, err
	}

	s.logger.Info("User logged in",
		zap.String("username", user.Username),
		zap.String("role", string(user.Role)))

	return &LoginResponse{
		AccessToken: token.AccessToken,
		TokenType:   token.TokenType,
		ExpiresAt:   token.ExpiresAt,
		User:        toUserResponse(user),
	}, nil
}

// ChangePasswordRequest represents a self-service password change
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required"`
}

// ChangePassword lets an authenticated user rotate their own password
func (s *AuthService) ChangePassword(ctx context.Context, username string, req ChangePasswordRequest) error {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return err
	}
	if !user.CheckPassword(req.CurrentPassword) {
		return identity.ErrInvalidCredentials
	}
	if err := user.ChangePassword(req.NewPassword); err != nil {
		return err
	}
	return s.userRepo.Update(ctx, user)
}
