package dto

import (
	"github.com/careerconnect/backend/internal/app/models"
)

// VerifyMentorRequest represents an admin decision on mentor verification
type VerifyMentorRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateAdminProfileRequest represents the admin's own profile update.
// Absent fields are left unchanged.
type UpdateAdminProfileRequest struct {
	Name        *string `json:"name,omitempty"`
	PhoneNumber *string `json:"phoneNumber,omitempty"`
	Email       *string `json:"email,omitempty" binding:"omitempty,email"`
}

// StatsResponse represents the admin dashboard aggregates
type StatsResponse struct {
	Stats models.DashboardStats `json:"stats"`
}

// SessionReportResponse represents the recent-session activity report
type SessionReportResponse struct {
	Count    int               `json:"count"`
	Sessions []SessionResponse `json:"sessions"`
}
