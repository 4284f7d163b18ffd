package dto

import (
	"time"

	"github.com/careerconnect/backend/internal/app/models"
	"github.com/careerconnect/backend/internal/pkg/helpers"
)

// StudentProfileResponse represents a student's profile data
type StudentProfileResponse struct {
	ID                    int64  `json:"id"`
	EducationalBackground string `json:"educationalBackground"`
	CareerInterests       string `json:"careerInterests"`
	Goals                 string `json:"goals"`
}

// UpdateStudentProfileRequest represents a student profile update. Absent
// fields are left unchanged.
type UpdateStudentProfileRequest struct {
	Name                  *string `json:"name,omitempty"`
	PhoneNumber           *string `json:"phoneNumber,omitempty"`
	EducationalBackground *string `json:"educationalBackground,omitempty"`
	CareerInterests       *string `json:"careerInterests,omitempty"`
	Goals                 *string `json:"goals,omitempty"`
}

// AssessmentRequest represents a completed career assessment submission.
// Questionnaire and results are opaque JSON blobs supplied by the client.
type AssessmentRequest struct {
	Questionnaire   string `json:"questionnaire" binding:"required"`
	Results         string `json:"results" binding:"required"`
	Recommendations string `json:"recommendations"`
}

// AssessmentResponse represents a recorded career assessment
type AssessmentResponse struct {
	ID              int64     `json:"id"`
	AssessmentID    string    `json:"assessmentId"`
	Questionnaire   string    `json:"questionnaire"`
	Results         string    `json:"results"`
	Recommendations string    `json:"recommendations"`
	CreatedAt       time.Time `json:"createdAt"`
}

// CreateTrackerRequest represents a new progress tracker
type CreateTrackerRequest struct {
	Goals      string `json:"goals" binding:"required"`
	Milestones string `json:"milestones" binding:"required"`
}

// UpdateTrackerRequest represents a progress tracker update. Absent fields
// are left unchanged.
type UpdateTrackerRequest struct {
	Goals      *string `json:"goals,omitempty"`
	Milestones *string `json:"milestones,omitempty"`
}

// TrackerResponse represents a progress tracker
type TrackerResponse struct {
	ID             int64     `json:"id"`
	TrackerID      string    `json:"trackerId"`
	Goals          string    `json:"goals"`
	Milestones     string    `json:"milestones"`
	MentorFeedback string    `json:"mentorFeedback"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// NewStudentProfileResponse maps a student profile to the API shape.
func NewStudentProfileResponse(student *models.Student) StudentProfileResponse {
	return StudentProfileResponse{
		ID:                    student.ID,
		EducationalBackground: helpers.StringOrEmpty(student.EducationalBackground),
		CareerInterests:       helpers.StringOrEmpty(student.CareerInterests),
		Goals:                 helpers.StringOrEmpty(student.Goals),
	}
}

// NewAssessmentResponse maps an assessment to the API shape.
func NewAssessmentResponse(assessment *models.CareerAssessment) AssessmentResponse {
	return AssessmentResponse{
		ID:              assessment.ID,
		AssessmentID:    assessment.AssessmentID,
		Questionnaire:   assessment.Questionnaire,
		Results:         assessment.Results,
		Recommendations: assessment.Recommendations,
		CreatedAt:       assessment.CreatedAt,
	}
}

// NewTrackerResponse maps a progress tracker to the API shape.
func NewTrackerResponse(tracker *models.ProgressTracker) TrackerResponse {
	return TrackerResponse{
		ID:             tracker.ID,
		TrackerID:      tracker.TrackerID,
		Goals:          tracker.Goals,
		Milestones:     tracker.Milestones,
		MentorFeedback: helpers.StringOrEmpty(tracker.MentorFeedback),
		CreatedAt:      tracker.CreatedAt,
		UpdatedAt:      tracker.UpdatedAt,
	}
}
