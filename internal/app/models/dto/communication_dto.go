package dto

import (
	"time"

	"github.com/careerconnect/backend/internal/app/models"
	"github.com/careerconnect/backend/internal/pkg/helpers"
)

// SendMessageRequest represents a student-to-mentor message
type SendMessageRequest struct {
	MentorID int64  `json:"mentorId" binding:"required,min=1"`
	Content  string `json:"content" binding:"required"`
}

// MessageResponse represents a delivered message
type MessageResponse struct {
	ID           int64     `json:"id"`
	MessageID    string    `json:"messageId"`
	SenderName   string    `json:"senderName"`
	ReceiverName string    `json:"receiverName"`
	Content      string    `json:"content"`
	Timestamp    time.Time `json:"timestamp"`
	Read         bool      `json:"read"`
}

// CreateSessionRequest represents a student's session request. DateTime
// accepts RFC 3339, with or without a timezone offset.
type CreateSessionRequest struct {
	MentorID int64   `json:"mentorId" binding:"required,min=1"`
	DateTime string  `json:"dateTime" binding:"required"`
	Notes    *string `json:"notes,omitempty"`
}

// UpdateSessionRequest represents a session update. Absent fields are left
// unchanged. Which fields a caller may set depends on their role in the
// session.
type UpdateSessionRequest struct {
	Status   *string `json:"status,omitempty"`
	DateTime *string `json:"dateTime,omitempty"`
	Notes    *string `json:"notes,omitempty"`
}

// SessionResponse represents a mentoring session
type SessionResponse struct {
	ID          int64     `json:"id"`
	SessionID   string    `json:"sessionId"`
	StudentName string    `json:"studentName"`
	MentorName  string    `json:"mentorName"`
	DateTime    time.Time `json:"dateTime"`
	Status      string    `json:"status"`
	Notes       string    `json:"notes"`
	CreatedAt   time.Time `json:"createdAt"`
}

// NewMessageResponse maps a message to the API shape.
func NewMessageResponse(message *models.Message) MessageResponse {
	return MessageResponse{
		ID:           message.ID,
		MessageID:    message.MessageID,
		SenderName:   message.SenderName,
		ReceiverName: message.ReceiverName,
		Content:      message.Content,
		Timestamp:    message.Timestamp,
		Read:         message.Read,
	}
}

// NewSessionResponse maps a session to the API shape.
func NewSessionResponse(session *models.Session) SessionResponse {
	return SessionResponse{
		ID:          session.ID,
		SessionID:   session.SessionID,
		StudentName: session.StudentName,
		MentorName:  session.MentorName,
		DateTime:    session.DateTime,
		Status:      string(session.Status),
		Notes:       helpers.StringOrEmpty(session.Notes),
		CreatedAt:   session.CreatedAt,
	}
}
