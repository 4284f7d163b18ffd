package services

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/careerconnect/backend/internal/app/models"
	"github.com/careerconnect/backend/internal/app/models/dto"
	"github.com/careerconnect/backend/internal/app/repositories"
	"github.com/careerconnect/backend/internal/pkg/apperrors"
	pkgauth "github.com/careerconnect/backend/internal/pkg/auth"
	"github.com/careerconnect/backend/internal/pkg/email"
	"github.com/careerconnect/backend/internal/pkg/logger"
	"github.com/careerconnect/backend/internal/pkg/metrics"
	"github.com/careerconnect/backend/internal/pkg/validation"
)

// AuthService handles registration, login and identity lookups.
type AuthService struct {
	userRepo     repositories.IUserRepository
	jwtService   *pkgauth.JWTService
	emailService email.Service
	logger       zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo repositories.IUserRepository, jwtService *pkgauth.JWTService, emailService email.Service) *AuthService {
	return &AuthService{
		userRepo:     userRepo,
		jwtService:   jwtService,
		emailService: emailService,
		logger:       logger.With().Str("component", "auth_service").Logger(),
	}
}

// Register creates a user account together with its role profile in one
// transaction and returns a fresh access token. Only student and mentor
// accounts can be self-registered.
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	if req.Role != models.RoleStudent && req.Role != models.RoleMentor {
		return nil, apperrors.NewValidationError("role must be student or mentor")
	}
	if !validation.IsValidEmail(req.Email) {
		return nil, apperrors.NewCustomError(apperrors.ErrInvalidEmail, "email format is invalid")
	}
	if len(req.Password) < validation.PasswordMinLength {
		return nil, apperrors.NewCustomError(apperrors.ErrInvalidPassword, "password is too short")
	}

	hash, err := pkgauth.HashPassword(req.Password)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to hash password")
		return nil, apperrors.ErrInternal
	}

	user := &models.User{
		UserID:      uuid.NewString(),
		Name:        strings.TrimSpace(req.Name),
		Email:       strings.ToLower(strings.TrimSpace(req.Email)),
		PhoneNumber: req.PhoneNumber,
		Password:    hash,
		Role:        req.Role,
	}

	if err := s.userRepo.CreateWithProfile(ctx, user); err != nil {
		return nil, err
	}
	metrics.RegistrationsTotal.WithLabelValues(string(user.Role)).Inc()

	return s.buildAuthResponse(user)
}

// Login verifies credentials and returns an access token together with the
// user and its role profile.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.GetUserByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			metrics.LoginsTotal.WithLabelValues("failure").Inc()
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !pkgauth.CheckPassword(user.Password, req.Password) {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return nil, apperrors.ErrInvalidCredentials
	}

	if err := s.attachProfile(ctx, user); err != nil {
		return nil, err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	s.logger.Info().Int64("userID", user.ID).Str("role", string(user.Role)).Msg("User logged in")

	return s.buildAuthResponse(user)
}

// GetCurrentUser returns the principal with its role profile attached.
func (s *AuthService) GetCurrentUser(ctx context.Context, principal *models.User) (*dto.UserResponse, error) {
	if err := s.attachProfile(ctx, principal); err != nil {
		return nil, err
	}
	resp := dto.NewUserResponse(principal)
	return &resp, nil
}

// RequestPasswordReset hands a reset email to the mailer when the account
// exists. The outcome is identical either way so the endpoint never reveals
// whether an email is registered.
func (s *AuthService) RequestPasswordReset(ctx context.Context, emailAddr string) error {
	user, err := s.userRepo.GetUserByEmail(ctx, strings.ToLower(strings.TrimSpace(emailAddr)))
	if err != nil {
		if !errors.Is(err, apperrors.ErrUserNotFound) {
			s.logger.Error().Err(err).Msg("Password reset lookup failed")
		}
		return nil
	}

	if err := s.emailService.SendPasswordResetEmail(user.Email, user.Name); err != nil {
		s.logger.Error().Err(err).Int64("userID", user.ID).Msg("Failed to send password reset email")
	}
	return nil
}

func (s *AuthService) attachProfile(ctx context.Context, user *models.User) error {
	switch user.Role {
	case models.RoleStudent:
		profile, err := s.userRepo.GetStudentByUserID(ctx, user.ID)
		if err != nil && !errors.Is(err, apperrors.ErrStudentProfileNotFound) {
			return err
		}
		user.StudentProfile = profile
	case models.RoleMentor:
		profile, err := s.userRepo.GetMentorByUserID(ctx, user.ID)
		if err != nil && !errors.Is(err, apperrors.ErrMentorProfileNotFound) {
			return err
		}
		user.MentorProfile = profile
	}
	return nil
}

func (s *AuthService) buildAuthResponse(user *models.User) (*dto.AuthResponse, error) {
	token, expiresIn, err := s.jwtService.GenerateToken(user)
	if err != nil {
		s.logger.Error().Err(err).Int64("userID", user.ID).Msg("Failed to generate token")
		return nil, apperrors.ErrInternal
	}

	return &dto.AuthResponse{
		Token: dto.TokenResponse{
			AccessToken: token,
			TokenType:   "Bearer",
			ExpiresIn:   int64(expiresIn),
		},
		User: dto.NewUserResponse(user),
	}, nil
}
