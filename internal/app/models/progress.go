package models

import "time"

// ProgressTracker belongs to one student; goals and milestones are opaque
// JSON blobs mutable by the owning student only.
type ProgressTracker struct {
	ID             int64     `json:"id" db:"id"`
	StudentID      int64     `json:"studentId" db:"student_id"`
	TrackerID      string    `json:"trackerId" db:"tracker_id"` // External UUID
	Goals          string    `json:"goals" db:"goals"`
	Milestones     string    `json:"milestones" db:"milestones"`
	MentorFeedback *string   `json:"mentorFeedback,omitempty" db:"mentor_feedback"`
	CreatedAt      time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt      time.Time `json:"updatedAt" db:"updated_at"`
}
