package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/careerconnect/backend/internal/app/models"
	"github.com/careerconnect/backend/internal/pkg/apperrors"
)

// ISessionRepository defines the persistence surface for mentoring sessions.
type ISessionRepository interface {
	CreateSession(ctx context.Context, session *models.Session) error
	GetSessionByID(ctx context.Context, id int64) (*models.Session, error)
	UpdateSession(ctx context.Context, id int64, status *models.SessionStatus, dateTime *time.Time, notes *string) error
	ListSessionsByStudent(ctx context.Context, studentID int64) ([]*models.Session, error)
	ListSessionsByMentor(ctx context.Context, mentorID int64) ([]*models.Session, error)
	ListRecentSessions(ctx context.Context, limit uint64) ([]*models.Session, error)
}

// SessionRepository handles mentoring-session database operations.
type SessionRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewSessionRepository creates a new SessionRepository
func NewSessionRepository(db *pgxpool.Pool) *SessionRepository {
	return &SessionRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

const sessionJoinQuery = `
	SELECT se.id, se.session_id, se.student_id, se.mentor_id, se.date_time, se.status, se.notes, se.created_at,
	       su.name, mu.name
	FROM sessions se
	JOIN students s ON s.id = se.student_id
	JOIN users su ON su.id = s.user_id
	JOIN mentors m ON m.id = se.mentor_id
	JOIN users mu ON mu.id = m.user_id`

func scanSession(row pgx.Row) (*models.Session, error) {
	session := &models.Session{}
	err := row.Scan(
		&session.ID, &session.SessionID, &session.StudentID, &session.MentorID,
		&session.DateTime, &session.Status, &session.Notes, &session.CreatedAt,
		&session.StudentName, &session.MentorName)
	if err != nil {
		return nil, err
	}
	return session, nil
}

// CreateSession inserts a pending session between a student and a mentor.
func (r *SessionRepository) CreateSession(ctx context.Context, session *models.Session) error {
	if session.Status == "" {
		session.Status = models.SessionPending
	}
	err := r.db.QueryRow(ctx, `
		INSERT INTO sessions (session_id, student_id, mentor_id, date_time, status, notes)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at`,
		session.SessionID, session.StudentID, session.MentorID,
		session.DateTime, session.Status, session.Notes,
	).Scan(&session.ID, &session.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating session: %w", err)
	}
	return nil
}

// GetSessionByID retrieves a session by ID with participant names attached.
func (r *SessionRepository) GetSessionByID(ctx context.Context, id int64) (*models.Session, error) {
	session, err := scanSession(r.db.QueryRow(ctx, sessionJoinQuery+` WHERE se.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrSessionNotFound
		}
		return nil, fmt.Errorf("error retrieving session: %w", err)
	}
	return session, nil
}

// UpdateSession applies the provided changes. Nil fields are left unchanged.
func (r *SessionRepository) UpdateSession(ctx context.Context, id int64, status *models.SessionStatus, dateTime *time.Time, notes *string) error {
	builder := r.sb.Update("sessions").Where(squirrel.Eq{"id": id})
	changed := false
	if status != nil {
		builder = builder.Set("status", *status)
		changed = true
	}
	if dateTime != nil {
		builder = builder.Set("date_time", *dateTime)
		changed = true
	}
	if notes != nil {
		builder = builder.Set("notes", *notes)
		changed = true
	}
	if !changed {
		return nil
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update session query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error updating session: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrSessionNotFound
	}
	return nil
}

// ListSessionsByStudent returns the student's sessions, most recent first.
func (r *SessionRepository) ListSessionsByStudent(ctx context.Context, studentID int64) ([]*models.Session, error) {
	rows, err := r.db.Query(ctx, sessionJoinQuery+`
		WHERE se.student_id = $1
		ORDER BY se.date_time DESC`, studentID)
	if err != nil {
		return nil, fmt.Errorf("error listing sessions: %w", err)
	}
	defer rows.Close()
	return collectSessions(rows)
}

// ListSessionsByMentor returns the mentor's sessions, most recent first.
func (r *SessionRepository) ListSessionsByMentor(ctx context.Context, mentorID int64) ([]*models.Session, error) {
	rows, err := r.db.Query(ctx, sessionJoinQuery+`
		WHERE se.mentor_id = $1
		ORDER BY se.date_time DESC`, mentorID)
	if err != nil {
		return nil, fmt.Errorf("error listing sessions: %w", err)
	}
	defer rows.Close()
	return collectSessions(rows)
}

// ListRecentSessions returns the most recent sessions across the platform,
// capped at limit. Used by the admin activity report.
func (r *SessionRepository) ListRecentSessions(ctx context.Context, limit uint64) ([]*models.Session, error) {
	rows, err := r.db.Query(ctx, sessionJoinQuery+`
		ORDER BY se.date_time DESC
		LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("error listing recent sessions: %w", err)
	}
	defer rows.Close()
	return collectSessions(rows)
}

func collectSessions(rows pgx.Rows) ([]*models.Session, error) {
	var sessions []*models.Session
	for rows.Next() {
		session, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning session row: %w", err)
		}
		sessions = append(sessions, session)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating session rows: %w", err)
	}
	return sessions, nil
}
