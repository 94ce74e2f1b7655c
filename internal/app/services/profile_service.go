package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/yigit/coursehub/internal/app/models"
	"github.com/yigit/coursehub/internal/app/models/dto"
	"github.com/yigit/coursehub/internal/app/repositories"
	"github.com/yigit/coursehub/internal/pkg/apperrors"
)

// ProfileService manages the logged in admin's own record
type ProfileService struct {
	adminRepo repositories.IAdminRepository
	logger    zerolog.Logger
}

// NewProfileService creates a new ProfileService
func NewProfileService(adminRepo repositories.IAdminRepository, logger zerolog.Logger) *ProfileService {
	return &ProfileService{
		adminRepo: adminRepo,
		logger:    logger,
	}
}

// GetProfile returns the admin with the given ID
func (s *ProfileService) GetProfile(ctx context.Context, adminID int64) (*models.Admin, error) {
	return s.adminRepo.GetByID(ctx, adminID)
}

// UpdateProfile changes the supplied identity fields in one update
func (s *ProfileService) UpdateProfile(ctx context.Context, adminID int64, req dto.UpdateProfileRequest) (*models.Admin, error) {
	update := req.ToUpdate()
	if update.IsEmpty() {
		return nil, apperrors.ErrNothingToChange
	}

	if update.Username != nil {
		existing, err := s.adminRepo.GetByUsername(ctx, *update.Username)
		switch {
		case err == nil && existing.ID != adminID:
			return nil, apperrors.ErrUsernameTaken
		case err != nil && !isNotFound(err):
			return nil, fmt.Errorf("failed to check username: %w", err)
		}
	}

	admin, err := s.adminRepo.Update(ctx, adminID, update)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("adminID", adminID).Msg("Profile updated")
	return admin, nil
}

// ChangePassword replaces the admin's password. An empty password is rejected
// and nothing is written.
func (s *ProfileService) ChangePassword(ctx context.Context, adminID int64, req dto.ChangePasswordRequest) error {
	if req.Password == "" {
		return apperrors.ErrMissingPassword
	}

	digest, err := hashPassword(req.Password)
	if err != nil {
		return err
	}

	if _, err := s.adminRepo.Update(ctx, adminID, models.AdminUpdate{Password: &digest}); err != nil {
		return err
	}

	s.logger.Info().Int64("adminID", adminID).Msg("Password changed")
	return nil
}
