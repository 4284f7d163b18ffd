package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	appauth "github.com/careerconnect/backend/internal/app/auth"
	"github.com/careerconnect/backend/internal/app/models"
	"github.com/careerconnect/backend/internal/app/models/dto"
	"github.com/careerconnect/backend/internal/app/repositories"
	"github.com/careerconnect/backend/internal/pkg/logger"
)

// MentorService handles mentor profiles, discovery and shared resources.
type MentorService struct {
	userRepo     repositories.IUserRepository
	resourceRepo repositories.IResourceRepository
	authz        *appauth.AuthorizationService
	logger       zerolog.Logger
}

// NewMentorService creates a new MentorService
func NewMentorService(
	userRepo repositories.IUserRepository,
	resourceRepo repositories.IResourceRepository,
	authz *appauth.AuthorizationService,
) *MentorService {
	return &MentorService{
		userRepo:     userRepo,
		resourceRepo: resourceRepo,
		authz:        authz,
		logger:       logger.With().Str("component", "mentor_service").Logger(),
	}
}

// GetProfile returns the principal's account with its mentor profile.
func (s *MentorService) GetProfile(ctx context.Context, principal *models.User) (*dto.UserResponse, error) {
	profile, err := s.authz.RequireMentorProfile(ctx, principal)
	if err != nil {
		return nil, err
	}
	principal.MentorProfile = profile
	resp := dto.NewUserResponse(principal)
	return &resp, nil
}

// UpdateProfile updates the account contact fields and the mentor profile.
// Verification status is untouchable here.
func (s *MentorService) UpdateProfile(ctx context.Context, principal *models.User, req *dto.UpdateMentorProfileRequest) (*dto.UserResponse, error) {
	if err := s.authz.RequireRole(principal, models.RoleMentor); err != nil {
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

	if err := s.userRepo.UpdateMentor(ctx, principal.ID, req.ProfessionalTitle, req.Industry, req.Bio, req.Expertise); err != nil {
		return nil, err
	}

	return s.GetProfile(ctx, principal)
}

// Search returns verified mentors matching the optional industry and
// expertise filters. Unverified mentors never appear in results.
func (s *MentorService) Search(ctx context.Context, industry, expertise string) ([]dto.MentorResponse, error) {
	mentors, err := s.userRepo.SearchVerifiedMentors(ctx, industry, expertise)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.MentorResponse, 0, len(mentors))
	for _, mentor := range mentors {
		responses = append(responses, dto.NewMentorResponse(mentor))
	}
	return responses, nil
}

// GetMentor returns a single mentor with user data.
func (s *MentorService) GetMentor(ctx context.Context, mentorID int64) (*dto.MentorResponse, error) {
	mentor, err := s.userRepo.GetMentorByID(ctx, mentorID)
	if err != nil {
		return nil, err
	}
	resp := dto.NewMentorResponse(mentor)
	return &resp, nil
}

// CreateResource records a resource shared by the principal.
func (s *MentorService) CreateResource(ctx context.Context, principal *models.User, req *dto.CreateResourceRequest) (*dto.ResourceResponse, error) {
	profile, err := s.authz.RequireMentorProfile(ctx, principal)
	if err != nil {
		return nil, err
	}

	resource := &models.Resource{
		ResourceID:  uuid.NewString(),
		MentorID:    profile.ID,
		Title:       req.Title,
		FileType:    req.FileType,
		Description: req.Description,
		FileURL:     req.FileURL,
	}
	if err := s.resourceRepo.CreateResource(ctx, resource); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("mentorID", profile.ID).Str("resourceID", resource.ResourceID).Msg("Resource shared")
	resp := dto.NewResourceResponse(resource)
	return &resp, nil
}

// ListResources returns the principal's shared resources, newest first.
func (s *MentorService) ListResources(ctx context.Context, principal *models.User) ([]dto.ResourceResponse, error) {
	profile, err := s.authz.RequireMentorProfile(ctx, principal)
	if err != nil {
		return nil, err
	}

	resources, err := s.resourceRepo.ListResourcesByMentor(ctx, profile.ID)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.ResourceResponse, 0, len(resources))
	for _, resource := range resources {
		responses = append(responses, dto.NewResourceResponse(resource))
	}
	return responses, nil
}
