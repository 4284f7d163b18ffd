package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/careerconnect/backend/internal/app/models"
	"github.com/careerconnect/backend/internal/pkg/apperrors"
)

// IMessageRepository defines the persistence surface for direct messages.
type IMessageRepository interface {
	CreateMessage(ctx context.Context, message *models.Message) error
	GetMessageByID(ctx context.Context, id int64) (*models.Message, error)
	MarkMessageRead(ctx context.Context, id int64) error
	ListMessagesBySender(ctx context.Context, studentID int64) ([]*models.Message, error)
	ListMessagesByReceiver(ctx context.Context, mentorID int64) ([]*models.Message, error)
}

// MessageRepository handles direct-message database operations.
type MessageRepository struct {
	db *pgxpool.Pool
}

// NewMessageRepository creates a new MessageRepository
func NewMessageRepository(db *pgxpool.Pool) *MessageRepository {
	return &MessageRepository{db: db}
}

const messageJoinQuery = `
	SELECT msg.id, msg.message_id, msg.sender_id, msg.receiver_id, msg.content, msg.timestamp, msg.read,
	       su.name, mu.name
	FROM messages msg
	JOIN students s ON s.id = msg.sender_id
	JOIN users su ON su.id = s.user_id
	JOIN mentors m ON m.id = msg.receiver_id
	JOIN users mu ON mu.id = m.user_id`

func scanMessage(row pgx.Row) (*models.Message, error) {
	message := &models.Message{}
	err := row.Scan(
		&message.ID, &message.MessageID, &message.SenderID, &message.ReceiverID,
		&message.Content, &message.Timestamp, &message.Read,
		&message.SenderName, &message.ReceiverName)
	if err != nil {
		return nil, err
	}
	return message, nil
}

// CreateMessage inserts a student-to-mentor message.
func (r *MessageRepository) CreateMessage(ctx context.Context, message *models.Message) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO messages (message_id, sender_id, receiver_id, content)
		VALUES ($1, $2, $3, $4)
		RETURNING id, timestamp, read`,
		message.MessageID, message.SenderID, message.ReceiverID, message.Content,
	).Scan(&message.ID, &message.Timestamp, &message.Read)
	if err != nil {
		return fmt.Errorf("error creating message: %w", err)
	}
	return nil
}

// GetMessageByID retrieves a message by ID with participant names attached.
func (r *MessageRepository) GetMessageByID(ctx context.Context, id int64) (*models.Message, error) {
	message, err := scanMessage(r.db.QueryRow(ctx, messageJoinQuery+` WHERE msg.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrMessageNotFound
		}
		return nil, fmt.Errorf("error retrieving message: %w", err)
	}
	return message, nil
}

// MarkMessageRead flags a delivered message as read.
func (r *MessageRepository) MarkMessageRead(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `UPDATE messages SET read = TRUE WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error marking message read: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrMessageNotFound
	}
	return nil
}

// ListMessagesBySender returns messages sent by the student, newest first.
func (r *MessageRepository) ListMessagesBySender(ctx context.Context, studentID int64) ([]*models.Message, error) {
	rows, err := r.db.Query(ctx, messageJoinQuery+`
		WHERE msg.sender_id = $1
		ORDER BY msg.timestamp DESC`, studentID)
	if err != nil {
		return nil, fmt.Errorf("error listing messages: %w", err)
	}
	defer rows.Close()
	return collectMessages(rows)
}

// ListMessagesByReceiver returns messages addressed to the mentor, newest first.
func (r *MessageRepository) ListMessagesByReceiver(ctx context.Context, mentorID int64) ([]*models.Message, error) {
	rows, err := r.db.Query(ctx, messageJoinQuery+`
		WHERE msg.receiver_id = $1
		ORDER BY msg.timestamp DESC`, mentorID)
	if err != nil {
		return nil, fmt.Errorf("error listing messages: %w", err)
	}
	defer rows.Close()
	return collectMessages(rows)
}

func collectMessages(rows pgx.Rows) ([]*models.Message, error) {
	var messages []*models.Message
	for rows.Next() {
		message, err := scanMessage(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning message row: %w", err)
		}
		messages = append(messages, message)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating message rows: %w", err)
	}
	return messages, nil
}
