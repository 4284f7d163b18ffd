package services

import (
	"context"

	"github.com/rs/zerolog"

	appauth "github.com/careerconnect/backend/internal/app/auth"
	"github.com/careerconnect/backend/internal/app/models"
	"github.com/careerconnect/backend/internal/app/models/dto"
	"github.com/careerconnect/backend/internal/app/repositories"
	"github.com/careerconnect/backend/internal/pkg/apperrors"
	"github.com/careerconnect/backend/internal/pkg/logger"
)

// recentSessionsReportLimit caps the admin activity report.
const recentSessionsReportLimit = 100

// AdminService handles moderation and platform oversight. Every operation
// requires the admin role; admin grants nothing outside this surface.
type AdminService struct {
	userRepo    repositories.IUserRepository
	statsRepo   repositories.IStatsRepository
	sessionRepo repositories.ISessionRepository
	authz       *appauth.AuthorizationService
	logger      zerolog.Logger
}

// NewAdminService creates a new AdminService
func NewAdminService(
	userRepo repositories.IUserRepository,
	statsRepo repositories.IStatsRepository,
	sessionRepo repositories.ISessionRepository,
	authz *appauth.AuthorizationService,
) *AdminService {
	return &AdminService{
		userRepo:    userRepo,
		statsRepo:   statsRepo,
		sessionRepo: sessionRepo,
		authz:       authz,
		logger:      logger.With().Str("component", "admin_service").Logger(),
	}
}

// ListUsers returns all users newest-first, optionally filtered by role,
// each enriched with its role profile.
func (s *AdminService) ListUsers(ctx context.Context, principal *models.User, roleFilter string) ([]dto.UserResponse, error) {
	if err := s.authz.RequireRole(principal, models.RoleAdmin); err != nil {
		return nil, err
	}

	filter := models.RoleType(roleFilter)
	if filter != "" && filter != models.RoleStudent && filter != models.RoleMentor && filter != models.RoleAdmin {
		return nil, apperrors.NewValidationError("unknown role filter: " + roleFilter)
	}

	users, err := s.userRepo.ListUsers(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.UserResponse, 0, len(users))
	for _, user := range users {
		responses = append(responses, dto.NewUserResponse(user))
	}
	return responses, nil
}

// DeleteUser removes a user and, through the schema cascades, everything
// hanging off its profile. Admin accounts cannot be deleted.
func (s *AdminService) DeleteUser(ctx context.Context, principal *models.User, userID int64) error {
	if err := s.authz.RequireRole(principal, models.RoleAdmin); err != nil {
		return err
	}

	target, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return err
	}
	if target.IsAdmin() {
		return apperrors.ErrCannotDeleteAdmin
	}

	if err := s.userRepo.DeleteUser(ctx, userID); err != nil {
		return err
	}

	s.logger.Info().
		Int64("adminID", principal.ID).
		Int64("deletedUserID", userID).
		Str("deletedRole", string(target.Role)).
		Msg("User removed by admin")
	return nil
}

// VerifyMentor records the admin's verification decision on a mentor.
func (s *AdminService) VerifyMentor(ctx context.Context, principal *models.User, mentorID int64, status string) (*dto.MentorResponse, error) {
	if err := s.authz.RequireRole(principal, models.RoleAdmin); err != nil {
		return nil, err
	}

	decision := models.VerificationStatus(status)
	if decision != models.VerificationVerified && decision != models.VerificationRejected {
		return nil, apperrors.NewCustomError(apperrors.ErrInvalidVerificationStat, "status must be verified or rejected")
	}

	if err := s.userRepo.SetVerificationStatus(ctx, mentorID, decision); err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("adminID", principal.ID).
		Int64("mentorID", mentorID).
		Str("status", string(decision)).
		Msg("Mentor verification decided")

	mentor, err := s.userRepo.GetMentorByID(ctx, mentorID)
	if err != nil {
		return nil, err
	}
	resp := dto.NewMentorResponse(mentor)
	return &resp, nil
}

// ListPendingMentors returns mentors awaiting verification with user data.
func (s *AdminService) ListPendingMentors(ctx context.Context, principal *models.User) ([]dto.MentorResponse, error) {
	if err := s.authz.RequireRole(principal, models.RoleAdmin); err != nil {
		return nil, err
	}

	mentors, err := s.userRepo.ListMentorsByStatus(ctx, models.VerificationPending)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.MentorResponse, 0, len(mentors))
	for _, mentor := range mentors {
		responses = append(responses, dto.NewMentorResponse(mentor))
	}
	return responses, nil
}

// GetDashboardStats returns fresh aggregate counts for the dashboard.
func (s *AdminService) GetDashboardStats(ctx context.Context, principal *models.User) (*dto.StatsResponse, error) {
	if err := s.authz.RequireRole(principal, models.RoleAdmin); err != nil {
		return nil, err
	}

	stats, err := s.statsRepo.GetDashboardStats(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.StatsResponse{Stats: *stats}, nil
}

// GetSessionReport returns the most recent sessions across the platform.
func (s *AdminService) GetSessionReport(ctx context.Context, principal *models.User) (*dto.SessionReportResponse, error) {
	if err := s.authz.RequireRole(principal, models.RoleAdmin); err != nil {
		return nil, err
	}

	sessions, err := s.sessionRepo.ListRecentSessions(ctx, recentSessionsReportLimit)
	if err != nil {
		return nil, err
	}

	report := &dto.SessionReportResponse{
		Count:    len(sessions),
		Sessions: make([]dto.SessionResponse, 0, len(sessions)),
	}
	for _, session := range sessions {
		report.Sessions = append(report.Sessions, dto.NewSessionResponse(session))
	}
	return report, nil
}

// UpdateProfile updates the admin's own contact details. Email uniqueness
// is enforced.
func (s *AdminService) UpdateProfile(ctx context.Context, principal *models.User, req *dto.UpdateAdminProfileRequest) (*dto.UserResponse, error) {
	if err := s.authz.RequireRole(principal, models.RoleAdmin); err != nil {
		return nil, err
	}

	if req.Name != nil || req.PhoneNumber != nil {
		if err := s.userRepo.UpdateContact(ctx, principal.ID, req.Name, req.PhoneNumber); err != nil {
			return nil, err
		}
	}
	if req.Email != nil {
		if err := s.userRepo.UpdateEmail(ctx, principal.ID, *req.Email); err != nil {
			return nil, err
		}
	}

	updated, err := s.userRepo.GetUserByID(ctx, principal.ID)
	if err != nil {
		return nil, err
	}
	resp := dto.NewUserResponse(updated)
	return &resp, nil
}
