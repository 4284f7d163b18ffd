package models

// Student defines the student profile model based on the 'students' table
type Student struct {
	ID                    int64   `json:"id" db:"id" example:"1"`          // Unique identifier for the student record
	UserID                int64   `json:"userId" db:"user_id" example:"5"` // ID of the owning user account
	EducationalBackground *string `json:"educationalBackground,omitempty" db:"educational_background"`
	CareerInterests       *string `json:"careerInterests,omitempty" db:"career_interests"`
	Goals                 *string `json:"goals,omitempty" db:"goals"`

	// Relations (populated when needed)
	User *User `json:"user,omitempty"` // Owning user account
}
