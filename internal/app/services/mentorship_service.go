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
	"github.com/careerconnect/backend/internal/pkg/metrics"
)

// MentorshipService handles the request/approval workflow between students
// and mentors.
type MentorshipService struct {
	userRepo       repositories.IUserRepository
	mentorshipRepo repositories.IMentorshipRepository
	authz          *appauth.AuthorizationService
	logger         zerolog.Logger
}

// NewMentorshipService creates a new MentorshipService
func NewMentorshipService(
	userRepo repositories.IUserRepository,
	mentorshipRepo repositories.IMentorshipRepository,
	authz *appauth.AuthorizationService,
) *MentorshipService {
	return &MentorshipService{
		userRepo:       userRepo,
		mentorshipRepo: mentorshipRepo,
		authz:          authz,
		logger:         logger.With().Str("component", "mentorship_service").Logger(),
	}
}

// RequestMentorship creates a pending request from the principal to a
// verified mentor. At most one pending request per student/mentor pair can
// exist; the unique index below the repository closes the race between
// concurrent submissions.
func (s *MentorshipService) RequestMentorship(ctx context.Context, principal *models.User, req *dto.CreateMentorshipRequest) (*dto.MentorshipRequestResponse, error) {
	profile, err := s.authz.RequireStudentProfile(ctx, principal)
	if err != nil {
		return nil, err
	}

	mentor, err := s.userRepo.GetMentorByID(ctx, req.MentorID)
	if err != nil {
		return nil, err
	}
	if !mentor.IsVerified() {
		return nil, apperrors.ErrMentorNotVerified
	}

	request := &models.MentorshipRequest{
		StudentID: profile.ID,
		MentorID:  mentor.ID,
		Message:   req.Message,
	}
	if err := s.mentorshipRepo.CreateRequest(ctx, request); err != nil {
		return nil, err
	}
	metrics.MentorshipRequestsTotal.WithLabelValues("created").Inc()

	resp := dto.NewMentorshipRequestResponse(request)
	return &resp, nil
}

// ListIncomingRequests returns requests addressed to the principal, newest
// first, each with a snapshot of the requesting student.
func (s *MentorshipService) ListIncomingRequests(ctx context.Context, principal *models.User) ([]dto.MentorshipRequestResponse, error) {
	profile, err := s.authz.RequireMentorProfile(ctx, principal)
	if err != nil {
		return nil, err
	}

	requests, err := s.mentorshipRepo.ListRequestsByMentor(ctx, profile.ID)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.MentorshipRequestResponse, 0, len(requests))
	for _, request := range requests {
		responses = append(responses, dto.NewMentorshipRequestResponse(request))
	}
	return responses, nil
}

// RespondToRequest records the principal's decision on one of their incoming
// requests. A later decision may overwrite an earlier one.
func (s *MentorshipService) RespondToRequest(ctx context.Context, principal *models.User, requestID int64, decision string) (*dto.MentorshipRequestResponse, error) {
	profile, err := s.authz.RequireMentorProfile(ctx, principal)
	if err != nil {
		return nil, err
	}

	status := models.RequestStatus(decision)
	if status != models.RequestApproved && status != models.RequestRejected {
		return nil, apperrors.NewCustomError(apperrors.ErrInvalidRequestDecision, "status must be approved or rejected")
	}

	request, err := s.mentorshipRepo.GetRequestByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if request.MentorID != profile.ID {
		return nil, apperrors.NewForbiddenError("request is addressed to another mentor")
	}

	if err := s.mentorshipRepo.UpdateRequestStatus(ctx, requestID, status); err != nil {
		return nil, err
	}
	metrics.MentorshipRequestsTotal.WithLabelValues(string(status)).Inc()

	s.logger.Info().
		Int64("requestID", requestID).
		Int64("mentorID", profile.ID).
		Str("decision", string(status)).
		Msg("Mentorship request decided")

	updated, err := s.mentorshipRepo.GetRequestByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	resp := dto.NewMentorshipRequestResponse(updated)
	return &resp, nil
}
