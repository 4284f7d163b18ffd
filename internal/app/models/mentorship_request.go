package models

import "time"

// MentorshipRequest links a student and a mentor; at most one pending
// request may exist per (student, mentor) pair, enforced by a partial
// unique index at the store level.
type MentorshipRequest struct {
	ID        int64         `json:"id" db:"id"`
	StudentID int64         `json:"studentId" db:"student_id"`
	MentorID  int64         `json:"mentorId" db:"mentor_id"`
	Status    RequestStatus `json:"status" db:"status" example:"pending"`
	Message   *string       `json:"message,omitempty" db:"message"`
	CreatedAt time.Time     `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time     `json:"updatedAt" db:"updated_at"`

	// Requesting student snapshot (populated on mentor listing)
	StudentUser    *User    `json:"studentUser,omitempty"`
	StudentProfile *Student `json:"studentProfile,omitempty"`
}
