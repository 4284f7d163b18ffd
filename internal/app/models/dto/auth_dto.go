package dto

import (
	"time"

	"github.com/careerconnect/backend/internal/app/models"
)

// LoginRequest represents login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// TokenResponse represents JWT token information
type TokenResponse struct {
	AccessToken string `json:"accessToken"`
	TokenType   string `json:"tokenType" example:"Bearer"`
	ExpiresIn   int64  `json:"expiresIn"`
}

// RegisterRequest represents a user registration request
type RegisterRequest struct {
	Name        string          `json:"name" binding:"required"`
	Email       string          `json:"email" binding:"required,email"`
	Password    string          `json:"password" binding:"required,min=6"`
	PhoneNumber *string         `json:"phoneNumber,omitempty"`
	Role        models.RoleType `json:"role" binding:"required"`
}

// PasswordResetRequest represents a password reset initiation request
type PasswordResetRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// UserResponse represents basic user information
type UserResponse struct {
	ID             int64                   `json:"id"`
	UserID         string                  `json:"userId"`
	Name           string                  `json:"name"`
	Email          string                  `json:"email"`
	PhoneNumber    *string                 `json:"phoneNumber,omitempty"`
	Role           string                  `json:"role"`
	CreatedAt      time.Time               `json:"createdAt"`
	StudentProfile *StudentProfileResponse `json:"studentProfile,omitempty"`
	MentorProfile  *MentorProfileResponse  `json:"mentorProfile,omitempty"`
}

// AuthResponse represents successful authentication response
type AuthResponse struct {
	Token TokenResponse `json:"token"`
	User  UserResponse  `json:"user"`
}

// NewUserResponse maps a user and its role profile to the API shape.
func NewUserResponse(user *models.User) UserResponse {
	resp := UserResponse{
		ID:          user.ID,
		UserID:      user.UserID,
		Name:        user.Name,
		Email:       user.Email,
		PhoneNumber: user.PhoneNumber,
		Role:        string(user.Role),
		CreatedAt:   user.CreatedAt,
	}
	if user.StudentProfile != nil {
		profile := NewStudentProfileResponse(user.StudentProfile)
		resp.StudentProfile = &profile
	}
	if user.MentorProfile != nil {
		profile := NewMentorProfileResponse(user.MentorProfile)
		resp.MentorProfile = &profile
	}
	return resp
}
