package dto

import (
	"time"

	"github.com/careerconnect/backend/internal/app/models"
	"github.com/careerconnect/backend/internal/pkg/helpers"
)

// CreateMentorshipRequest represents a student's request for mentorship
type CreateMentorshipRequest struct {
	MentorID int64   `json:"mentorId" binding:"required,min=1"`
	Message  *string `json:"message,omitempty"`
}

// MentorshipDecisionRequest represents a mentor's decision on a request
type MentorshipDecisionRequest struct {
	Status string `json:"status" binding:"required"`
}

// MentorshipStudentInfo is a snapshot of the requesting student attached to
// incoming requests.
type MentorshipStudentInfo struct {
	StudentID             int64  `json:"studentId"`
	Name                  string `json:"name"`
	Email                 string `json:"email"`
	EducationalBackground string `json:"educationalBackground"`
	CareerInterests       string `json:"careerInterests"`
	Goals                 string `json:"goals"`
}

// MentorshipRequestResponse represents a mentorship request
type MentorshipRequestResponse struct {
	ID        int64                  `json:"id"`
	StudentID int64                  `json:"studentId"`
	MentorID  int64                  `json:"mentorId"`
	Status    string                 `json:"status"`
	Message   string                 `json:"message"`
	CreatedAt time.Time              `json:"createdAt"`
	UpdatedAt time.Time              `json:"updatedAt"`
	Student   *MentorshipStudentInfo `json:"student,omitempty"`
}

// NewMentorshipRequestResponse maps a mentorship request to the API shape,
// including the student snapshot when loaded.
func NewMentorshipRequestResponse(request *models.MentorshipRequest) MentorshipRequestResponse {
	resp := MentorshipRequestResponse{
		ID:        request.ID,
		StudentID: request.StudentID,
		MentorID:  request.MentorID,
		Status:    string(request.Status),
		Message:   helpers.StringOrEmpty(request.Message),
		CreatedAt: request.CreatedAt,
		UpdatedAt: request.UpdatedAt,
	}
	if request.StudentUser != nil && request.StudentProfile != nil {
		resp.Student = &MentorshipStudentInfo{
			StudentID:             request.StudentProfile.ID,
			Name:                  request.StudentUser.Name,
			Email:                 request.StudentUser.Email,
			EducationalBackground: helpers.StringOrEmpty(request.StudentProfile.EducationalBackground),
			CareerInterests:       helpers.StringOrEmpty(request.StudentProfile.CareerInterests),
			Goals:                 helpers.StringOrEmpty(request.StudentProfile.Goals),
		}
	}
	return resp
}
