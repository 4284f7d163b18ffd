package models

import (
	"time"
)

// User defines the user model based on the 'users' table
type User struct {
	ID          int64     `json:"id" db:"id" example:"1"`                                   // Internal identifier
	UserID      string    `json:"userId" db:"user_id" example:"7f9c24e5-..."`               // External UUID
	Name        string    `json:"name" db:"name" example:"Jane Doe"`                        // Display name
	Email       string    `json:"email" db:"email" example:"jane@example.com"`              // Unique email address
	PhoneNumber *string   `json:"phoneNumber,omitempty" db:"phone_number"`                  // Phone number (nullable)
	Password    string    `json:"-" db:"password_hash"`                                     // Hashed password (excluded from JSON)
	Role        RoleType  `json:"role" db:"role" example:"student"`                         // Role: student, mentor or admin
	CreatedAt   time.Time `json:"createdAt" db:"created_at" example:"2024-01-01T10:00:00Z"` // Creation timestamp

	// Role profile (populated when needed, at most one matches Role)
	StudentProfile *Student `json:"studentProfile,omitempty"`
	MentorProfile  *Mentor  `json:"mentorProfile,omitempty"`
}

// IsStudent reports whether the user carries the student role.
func (u *User) IsStudent() bool { return u.Role == RoleStudent }

// IsMentor reports whether the user carries the mentor role.
func (u *User) IsMentor() bool { return u.Role == RoleMentor }

// IsAdmin reports whether the user carries the admin role.
func (u *User) IsAdmin() bool { return u.Role == RoleAdmin }
