package dto

import (
	"time"

	"github.com/careerconnect/backend/internal/app/models"
	"github.com/careerconnect/backend/internal/pkg/helpers"
)

// MentorProfileResponse represents a mentor's profile data
type MentorProfileResponse struct {
	ID                 int64  `json:"id"`
	ProfessionalTitle  string `json:"professionalTitle"`
	Industry           string `json:"industry"`
	Bio                string `json:"bio"`
	Expertise          string `json:"expertise"`
	VerificationStatus string `json:"verificationStatus"`
}

// UpdateMentorProfileRequest represents a mentor profile update. Absent
// fields are left unchanged; verification status is admin-only and cannot
// be changed here.
type UpdateMentorProfileRequest struct {
	Name              *string `json:"name,omitempty"`
	PhoneNumber       *string `json:"phoneNumber,omitempty"`
	ProfessionalTitle *string `json:"professionalTitle,omitempty"`
	Industry          *string `json:"industry,omitempty"`
	Bio               *string `json:"bio,omitempty"`
	Expertise         *string `json:"expertise,omitempty"`
}

// MentorResponse represents a mentor as shown to other users
type MentorResponse struct {
	ID                 int64  `json:"id"`
	Name               string `json:"name"`
	Email              string `json:"email"`
	ProfessionalTitle  string `json:"professionalTitle"`
	Industry           string `json:"industry"`
	Bio                string `json:"bio"`
	Expertise          string `json:"expertise"`
	VerificationStatus string `json:"verificationStatus"`
}

// CreateResourceRequest represents a resource shared by a mentor
type CreateResourceRequest struct {
	Title       string  `json:"title" binding:"required"`
	FileType    *string `json:"fileType,omitempty"`
	Description *string `json:"description,omitempty"`
	FileURL     *string `json:"fileUrl,omitempty"`
}

// ResourceResponse represents a shared resource
type ResourceResponse struct {
	ID          int64     `json:"id"`
	ResourceID  string    `json:"resourceId"`
	Title       string    `json:"title"`
	FileType    string    `json:"fileType"`
	Description string    `json:"description"`
	FileURL     string    `json:"fileUrl"`
	UploadDate  time.Time `json:"uploadDate"`
}

// NewMentorProfileResponse maps a mentor profile to the API shape.
func NewMentorProfileResponse(mentor *models.Mentor) MentorProfileResponse {
	return MentorProfileResponse{
		ID:                 mentor.ID,
		ProfessionalTitle:  helpers.StringOrEmpty(mentor.ProfessionalTitle),
		Industry:           helpers.StringOrEmpty(mentor.Industry),
		Bio:                helpers.StringOrEmpty(mentor.Bio),
		Expertise:          helpers.StringOrEmpty(mentor.Expertise),
		VerificationStatus: string(mentor.VerificationStatus),
	}
}

// NewMentorResponse maps a mentor and its user account to the public shape.
// The user must be attached.
func NewMentorResponse(mentor *models.Mentor) MentorResponse {
	resp := MentorResponse{
		ID:                 mentor.ID,
		ProfessionalTitle:  helpers.StringOrEmpty(mentor.ProfessionalTitle),
		Industry:           helpers.StringOrEmpty(mentor.Industry),
		Bio:                helpers.StringOrEmpty(mentor.Bio),
		Expertise:          helpers.StringOrEmpty(mentor.Expertise),
		VerificationStatus: string(mentor.VerificationStatus),
	}
	if mentor.User != nil {
		resp.Name = mentor.User.Name
		resp.Email = mentor.User.Email
	}
	return resp
}

// NewResourceResponse maps a resource to the API shape.
func NewResourceResponse(resource *models.Resource) ResourceResponse {
	return ResourceResponse{
		ID:          resource.ID,
		ResourceID:  resource.ResourceID,
		Title:       resource.Title,
		FileType:    helpers.StringOrEmpty(resource.FileType),
		Description: helpers.StringOrEmpty(resource.Description),
		FileURL:     helpers.StringOrEmpty(resource.FileURL),
		UploadDate:  resource.UploadDate,
	}
}
