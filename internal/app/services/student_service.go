package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	appauth "github.com/careerconnect/backend/internal/app/auth"
	"github.com/careerconnect/backend/internal/app/models"
	"github.com/careerconnect/backend/internal/app/models/dto"
	"github.com/careerconnect/backend/internal/app/repositories"
	"github.com/careerconnect/backend/internal/pkg/apperrors"
	"github.com/careerconnect/backend/internal/pkg/logger"
)

// StudentService handles student profiles, career assessments and progress
// trackers.
type StudentService struct {
	userRepo       repositories.IUserRepository
	assessmentRepo repositories.IAssessmentRepository
	progressRepo   repositories.IProgressRepository
	authz          *appauth.AuthorizationService
	logger         zerolog.Logger
}

// NewStudentService creates a new StudentService
func NewStudentService(
	userRepo repositories.IUserRepository,
	assessmentRepo repositories.IAssessmentRepository,
	progressRepo repositories.IProgressRepository,
	authz *appauth.AuthorizationService,
) *StudentService {
	return &StudentService{
		userRepo:       userRepo,
		assessmentRepo: assessmentRepo,
		progressRepo:   progressRepo,
		authz:          authz,
		logger:         logger.With().Str("component", "student_service").Logger(),
	}
}

// GetProfile returns the principal's account with its student profile.
func (s *StudentService) GetProfile(ctx context.Context, principal *models.User) (*dto.UserResponse, error) {
	profile, err := s.authz.RequireStudentProfile(ctx, principal)
	if err != nil {
		return nil, err
	}
	principal.StudentProfile = profile
	resp := dto.NewUserResponse(principal)
	return &resp, nil
}

// UpdateProfile updates the account contact fields and the student profile.
// A missing profile row is created on first write.
func (s *StudentService) UpdateProfile(ctx context.Context, principal *models.User, req *dto.UpdateStudentProfileRequest) (*dto.UserResponse, error) {
	if err := s.authz.RequireRole(principal, models.RoleStudent); err != nil {
		return nil, err
	}

	if req.Name != nil || req.PhoneNumber != nil {
		if err := s.userRepo.UpdateContact(ctx, principal.ID, req.Name, req.PhoneNumber); err != nil {
			return nil, err
		}
		if req.Name != nil {
			principal.Name = *req.Name
		}
		if req.PhoneNumber != nil {
			principal.PhoneNumber = req.PhoneNumber
		}
	}

	_, err := s.userRepo.GetStudentByUserID(ctx, principal.ID)
	switch {
	case errors.Is(err, apperrors.ErrStudentProfileNotFound):
		profile := &models.Student{
			UserID:                principal.ID,
			EducationalBackground: req.EducationalBackground,
			CareerInterests:       req.CareerInterests,
			Goals:                 req.Goals,
		}
		if err := s.userRepo.CreateStudentProfile(ctx, profile); err != nil {
			return nil, err
		}
	case err != nil:
		return nil, err
	default:
		if err := s.userRepo.UpdateStudent(ctx, principal.ID, req.EducationalBackground, req.CareerInterests, req.Goals); err != nil {
			return nil, err
		}
	}

	return s.GetProfile(ctx, principal)
}

// SubmitAssessment records an immutable career assessment for the principal.
func (s *StudentService) SubmitAssessment(ctx context.Context, principal *models.User, req *dto.AssessmentRequest) (*dto.AssessmentResponse, error) {
	profile, err := s.authz.RequireStudentProfile(ctx, principal)
	if err != nil {
		return nil, err
	}

	assessment := &models.CareerAssessment{
		AssessmentID:    uuid.NewString(),
		StudentID:       profile.ID,
		Questionnaire:   req.Questionnaire,
		Results:         req.Results,
		Recommendations: req.Recommendations,
	}
	if err := s.assessmentRepo.CreateAssessment(ctx, assessment); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("studentID", profile.ID).Str("assessmentID", assessment.AssessmentID).Msg("Assessment recorded")
	resp := dto.NewAssessmentResponse(assessment)
	return &resp, nil
}

// ListAssessments returns the principal's assessments, newest first.
func (s *StudentService) ListAssessments(ctx context.Context, principal *models.User) ([]dto.AssessmentResponse, error) {
	profile, err := s.authz.RequireStudentProfile(ctx, principal)
	if err != nil {
		return nil, err
	}

	assessments, err := s.assessmentRepo.ListAssessmentsByStudent(ctx, profile.ID)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.AssessmentResponse, 0, len(assessments))
	for _, assessment := range assessments {
		responses = append(responses, dto.NewAssessmentResponse(assessment))
	}
	return responses, nil
}

// CreateTracker starts a new progress tracker for the principal.
func (s *StudentService) CreateTracker(ctx context.Context, principal *models.User, req *dto.CreateTrackerRequest) (*dto.TrackerResponse, error) {
	profile, err := s.authz.RequireStudentProfile(ctx, principal)
	if err != nil {
		return nil, err
	}

	tracker := &models.ProgressTracker{
		TrackerID:  uuid.NewString(),
		StudentID:  profile.ID,
		Goals:      req.Goals,
		Milestones: req.Milestones,
	}
	if err := s.progressRepo.CreateTracker(ctx, tracker); err != nil {
		return nil, err
	}

	resp := dto.NewTrackerResponse(tracker)
	return &resp, nil
}

// ListTrackers returns the principal's trackers, most recently updated first.
func (s *StudentService) ListTrackers(ctx context.Context, principal *models.User) ([]dto.TrackerResponse, error) {
	profile, err := s.authz.RequireStudentProfile(ctx, principal)
	if err != nil {
		return nil, err
	}

	trackers, err := s.progressRepo.ListTrackersByStudent(ctx, profile.ID)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.TrackerResponse, 0, len(trackers))
	for _, tracker := range trackers {
		responses = append(responses, dto.NewTrackerResponse(tracker))
	}
	return responses, nil
}

// UpdateTracker updates one of the principal's own trackers. Updating
// another student's tracker is forbidden regardless of role.
func (s *StudentService) UpdateTracker(ctx context.Context, principal *models.User, trackerID int64, req *dto.UpdateTrackerRequest) (*dto.TrackerResponse, error) {
	profile, err := s.authz.RequireStudentProfile(ctx, principal)
	if err != nil {
		return nil, err
	}

	tracker, err := s.progressRepo.GetTrackerByID(ctx, trackerID)
	if err != nil {
		return nil, err
	}
	if tracker.StudentID != profile.ID {
		return nil, apperrors.NewForbiddenError("progress tracker belongs to another student")
	}

	if err := s.progressRepo.UpdateTracker(ctx, trackerID, req.Goals, req.Milestones); err != nil {
		return nil, err
	}

	updated, err := s.progressRepo.GetTrackerByID(ctx, trackerID)
	if err != nil {
		return nil, err
	}
	resp := dto.NewTrackerResponse(updated)
	return &resp, nil
}
