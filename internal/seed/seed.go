package seed

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/careerconnect/backend/internal/app/models"
	appRepos "github.com/careerconnect/backend/internal/app/repositories"
	"github.com/careerconnect/backend/internal/config"
	"github.com/careerconnect/backend/internal/pkg/apperrors"
	pkgAuth "github.com/careerconnect/backend/internal/pkg/auth"
)

// CreateDefaultAdmin ensures the platform admin account exists. The step is
// idempotent: an existing admin is left untouched, a missing one is created
// once.
func CreateDefaultAdmin(ctx context.Context, dbPool *pgxpool.Pool, cfg *config.Config, lgr zerolog.Logger) error {
	userRepo := appRepos.NewUserRepository(dbPool)

	existing, err := userRepo.GetUserByEmail(ctx, cfg.Admin.Email)
	if err == nil {
		lgr.Info().Int64("userID", existing.ID).Msg("Admin account already present, skipping seed")
		return nil
	}
	if !errors.Is(err, apperrors.ErrUserNotFound) {
		lgr.Error().Err(err).Msg("Error checking for admin account")
		return err
	}

	hash, err := pkgAuth.HashPassword(cfg.Admin.Password)
	if err != nil {
		lgr.Error().Err(err).Msg("Error hashing admin password")
		return err
	}

	admin := &appModels.User{
		UserID:   uuid.NewString(),
		Name:     cfg.Admin.Name,
		Email:    cfg.Admin.Email,
		Password: hash,
		Role:     appModels.RoleAdmin,
	}
	if err := userRepo.CreateWithProfile(ctx, admin); err != nil {
		// A concurrent instance may have seeded it first.
		if errors.Is(err, apperrors.ErrEmailAlreadyExists) {
			lgr.Info().Msg("Admin account created by another instance")
			return nil
		}
		lgr.Error().Err(err).Msg("Error creating admin account")
		return err
	}

	lgr.Info().Int64("userID", admin.ID).Str("email", admin.Email).Msg("Default admin account created")
	return nil
}
