package seed

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	appModels "github.com/yigit/coursehub/internal/app/models"
	"github.com/yigit/coursehub/internal/app/models/dto"
	"github.com/yigit/coursehub/internal/config"
	"github.com/yigit/coursehub/internal/pkg/apperrors"
)

// Registrar creates admin accounts
type Registrar interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*appModels.Admin, error)
}

// CreateDefaultAdmin registers the admin configured under seed.* if it does
// not exist yet. Nothing happens when no seed username is configured.
func CreateDefaultAdmin(ctx context.Context, registrar Registrar, cfg *config.Config, lgr zerolog.Logger) error {
	if cfg.Seed.AdminUsername == "" {
		return nil
	}

	lgr.Info().Str("username", cfg.Seed.AdminUsername).Msg("Checking/Creating default admin...")

	fullName := cfg.Seed.AdminFullName
	if fullName == "" {
		fullName = "Administrator"
	}
	email := cfg.Seed.AdminEmail
	if email == "" {
		email = cfg.Seed.AdminUsername + "@localhost"
	}

	_, err := registrar.Register(ctx, &dto.RegisterRequest{
		Username: cfg.Seed.AdminUsername,
		Password: cfg.Seed.AdminPassword,
		FullName: fullName,
		Email:    email,
	})
	switch {
	case err == nil:
		lgr.Info().Str("username", cfg.Seed.AdminUsername).Msg("Default admin created")
	case errors.Is(err, apperrors.ErrUsernameTaken):
		lgr.Debug().Str("username", cfg.Seed.AdminUsername).Msg("Default admin already exists")
	default:
		lgr.Error().Err(err).Msg("Error creating default admin")
		return err
	}
	return nil
}
