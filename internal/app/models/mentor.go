package models

// Mentor defines the mentor profile model based on the 'mentors' table
type Mentor struct {
	ID                 int64              `json:"id" db:"id" example:"1"`          // Unique identifier for the mentor record
	UserID             int64              `json:"userId" db:"user_id" example:"5"` // ID of the owning user account
	ProfessionalTitle  *string            `json:"professionalTitle,omitempty" db:"professional_title"`
	Industry           *string            `json:"industry,omitempty" db:"industry"`
	Bio                *string            `json:"bio,omitempty" db:"bio"`
	Expertise          *string            `json:"expertise,omitempty" db:"expertise"`
	VerificationStatus VerificationStatus `json:"verificationStatus" db:"verification_status" example:"pending"`

	// Relations (populated when needed)
	User *User `json:"user,omitempty"` // Owning user account
}

// IsVerified reports whether an admin has verified the mentor.
func (m *Mentor) IsVerified() bool {
	return m.VerificationStatus == VerificationVerified
}
