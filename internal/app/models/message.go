package models

import "time"

// Message defines a student-to-mentor message based on the 'messages' table.
// Messages flow in one direction only: a student sends, a mentor receives.
type Message struct {
	ID         int64     `json:"id" db:"id"`
	MessageID  string    `json:"messageId" db:"message_id"` // External UUID
	SenderID   int64     `json:"senderId" db:"sender_id"`   // Student profile ID
	ReceiverID int64     `json:"receiverId" db:"receiver_id"` // Mentor profile ID
	Content    string    `json:"content" db:"content"`
	Timestamp  time.Time `json:"timestamp" db:"timestamp"`
	Read       bool      `json:"read" db:"read"`

	// Display names (populated on list queries)
	SenderName   string `json:"senderName,omitempty"`
	ReceiverName string `json:"receiverName,omitempty"`
}
