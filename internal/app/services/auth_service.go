package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/yigit/coursehub/internal/app/models"
	"github.com/yigit/coursehub/internal/app/models/dto"
	"github.com/yigit/coursehub/internal/app/repositories"
	"github.com/yigit/coursehub/internal/pkg/apperrors"
	"github.com/yigit/coursehub/internal/pkg/auth"
)

// AuthService handles authentication operations
type AuthService struct {
	adminRepo  repositories.IAdminRepository
	jwtService *auth.JWTService
	logger     zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(adminRepo repositories.IAdminRepository, jwtService *auth.JWTService, logger zerolog.Logger) *AuthService {
	return &AuthService{
		adminRepo:  adminRepo,
		jwtService: jwtService,
		logger:     logger,
	}
}

// Register creates a new admin account
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*models.Admin, error) {
	if req == nil || req.Username == "" || req.Password == "" || req.FullName == "" || req.Email == "" {
		return nil, apperrors.ErrMissingAttrs
	}

	// The UNIQUE index settles concurrent registrations.
	if _, err := s.adminRepo.GetByUsername(ctx, req.Username); err == nil {
		return nil, apperrors.ErrUsernameTaken
	} else if !isNotFound(err) {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}

	digest, err := hashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	admin := &models.Admin{
		Username: req.Username,
		Password: digest,
		FullName: req.FullName,
		Email:    req.Email,
	}
	if err := s.adminRepo.Create(ctx, admin); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("adminID", admin.ID).Str("username", admin.Username).Msg("Admin registered")
	return admin, nil
}

// Login checks the credentials and issues a token for the admin
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (string, error) {
	if req == nil || req.Username == "" || req.Password == "" {
		return "", apperrors.ErrMissingAttrs
	}

	admin, err := s.adminRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		return "", err
	}

	if !auth.CheckPassword(admin.Password, req.Password) {
		s.logger.Debug().Str("username", req.Username).Msg("Login rejected: wrong password")
		return "", apperrors.ErrWrongPassword
	}

	token, err := s.jwtService.Issue(admin.ID)
	if err != nil {
		return "", fmt.Errorf("failed to issue token: %w", err)
	}
	return token, nil
}

// ResolveIdentity returns the admin a token was issued for
func (s *AuthService) ResolveIdentity(ctx context.Context, token string) (*models.Admin, error) {
	adminID, err := s.jwtService.Verify(token)
	if err != nil {
		return nil, err
	}
	return s.adminRepo.GetByID(ctx, adminID)
}

func hashPassword(password string) (string, error) {
	digest, err := auth.HashPassword(password)
	if err != nil {
		if errors.Is(err, auth.ErrPasswordTooLong) {
			return "", apperrors.ErrPasswordTooLong
		}
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return digest, nil
}
