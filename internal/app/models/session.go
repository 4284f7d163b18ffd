package models

import "time"

// SessionStatus represents the lifecycle state of a mentorship session.
type SessionStatus string

const (
	SessionPending   SessionStatus = "pending"
	SessionScheduled SessionStatus = "scheduled"
	SessionCompleted SessionStatus = "completed"
	SessionCancelled SessionStatus = "cancelled"
)

// validSessionTransitions defines the allowed state machine transitions.
// Completed and cancelled are terminal.
var validSessionTransitions = map[SessionStatus][]SessionStatus{
	SessionPending:   {SessionScheduled, SessionCancelled},
	SessionScheduled: {SessionCompleted, SessionCancelled},
}

// CanTransitionTo reports whether a transition from the current status to next is valid.
func (s SessionStatus) CanTransitionTo(next SessionStatus) bool {
	for _, allowed := range validSessionTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// IsValid reports whether the value is a recognized session status.
func (s SessionStatus) IsValid() bool {
	switch s {
	case SessionPending, SessionScheduled, SessionCompleted, SessionCancelled:
		return true
	}
	return false
}

// Session defines a scheduled mentorship session based on the 'sessions' table
type Session struct {
	ID        int64         `json:"id" db:"id"`
	SessionID string        `json:"sessionId" db:"session_id"` // External UUID
	StudentID int64         `json:"studentId" db:"student_id"`
	MentorID  int64         `json:"mentorId" db:"mentor_id"`
	DateTime  time.Time     `json:"dateTime" db:"date_time"`
	Status    SessionStatus `json:"status" db:"status" example:"pending"`
	Notes     *string       `json:"notes,omitempty" db:"notes"`
	CreatedAt time.Time     `json:"createdAt" db:"created_at"`

	// Display names of both parties (populated on list/report queries)
	StudentName string `json:"studentName,omitempty"`
	MentorName  string `json:"mentorName,omitempty"`
}
