package auth

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/careerconnect/backend/internal/app/models"
	"github.com/careerconnect/backend/internal/app/repositories"
	"github.com/careerconnect/backend/internal/pkg/apperrors"
	"github.com/careerconnect/backend/internal/pkg/logger"
)

// AuthorizationService resolves token claims into a concrete principal and
// enforces role and ownership rules. Services receive the resolved principal
// explicitly; nothing reads identity from ambient state.
type AuthorizationService struct {
	userRepo repositories.IUserRepository
	logger   zerolog.Logger
}

// NewAuthorizationService creates a new AuthorizationService
func NewAuthorizationService(userRepo repositories.IUserRepository) *AuthorizationService {
	return &AuthorizationService{
		userRepo: userRepo,
		logger:   logger.With().Str("component", "authorization").Logger(),
	}
}

// ResolvePrincipal loads the user behind validated token claims. A token
// whose user has since been deleted is treated as unauthenticated, not as a
// missing resource.
func (s *AuthorizationService) ResolvePrincipal(ctx context.Context, userID int64) (*models.User, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			s.logger.Warn().Int64("userID", userID).Msg("Token references deleted user")
			return nil, apperrors.ErrUnauthenticated
		}
		return nil, err
	}
	return user, nil
}

// RequireRole checks that the principal holds the given role.
func (s *AuthorizationService) RequireRole(principal *models.User, role models.RoleType) error {
	if principal == nil {
		return apperrors.ErrUnauthenticated
	}
	if principal.Role != role {
		return apperrors.ErrPermissionDenied
	}
	return nil
}

// RequireStudentProfile checks the student role and loads the principal's
// student profile.
func (s *AuthorizationService) RequireStudentProfile(ctx context.Context, principal *models.User) (*models.Student, error) {
	if err := s.RequireRole(principal, models.RoleStudent); err != nil {
		return nil, err
	}
	return s.userRepo.GetStudentByUserID(ctx, principal.ID)
}

// RequireMentorProfile checks the mentor role and loads the principal's
// mentor profile.
func (s *AuthorizationService) RequireMentorProfile(ctx context.Context, principal *models.User) (*models.Mentor, error) {
	if err := s.RequireRole(principal, models.RoleMentor); err != nil {
		return nil, err
	}
	return s.userRepo.GetMentorByUserID(ctx, principal.ID)
}
