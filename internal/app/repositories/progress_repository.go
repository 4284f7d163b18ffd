package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/careerconnect/backend/internal/app/models"
	"github.com/careerconnect/backend/internal/pkg/apperrors"
)

// IProgressRepository defines the persistence surface for progress trackers.
type IProgressRepository interface {
	CreateTracker(ctx context.Context, tracker *models.ProgressTracker) error
	GetTrackerByID(ctx context.Context, id int64) (*models.ProgressTracker, error)
	UpdateTracker(ctx context.Context, id int64, goals, milestones *string) error
	ListTrackersByStudent(ctx context.Context, studentID int64) ([]*models.ProgressTracker, error)
}

// ProgressRepository handles progress-tracker database operations.
type ProgressRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewProgressRepository creates a new ProgressRepository
func NewProgressRepository(db *pgxpool.Pool) *ProgressRepository {
	return &ProgressRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// CreateTracker inserts a new progress tracker for a student.
func (r *ProgressRepository) CreateTracker(ctx context.Context, tracker *models.ProgressTracker) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO progress_trackers (tracker_id, student_id, goals, milestones, mentor_feedback)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at`,
		tracker.TrackerID, tracker.StudentID,
		tracker.Goals, tracker.Milestones, tracker.MentorFeedback,
	).Scan(&tracker.ID, &tracker.CreatedAt, &tracker.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error creating progress tracker: %w", err)
	}
	return nil
}

// GetTrackerByID retrieves a progress tracker by ID
func (r *ProgressRepository) GetTrackerByID(ctx context.Context, id int64) (*models.ProgressTracker, error) {
	tracker := &models.ProgressTracker{}
	err := r.db.QueryRow(ctx, `
		SELECT id, tracker_id, student_id, goals, milestones, mentor_feedback, created_at, updated_at
		FROM progress_trackers
		WHERE id = $1`, id).Scan(
		&tracker.ID, &tracker.TrackerID, &tracker.StudentID,
		&tracker.Goals, &tracker.Milestones, &tracker.MentorFeedback,
		&tracker.CreatedAt, &tracker.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrTrackerNotFound
		}
		return nil, fmt.Errorf("error retrieving progress tracker: %w", err)
	}
	return tracker, nil
}

// UpdateTracker applies the provided changes and bumps updated_at. Nil
// fields are left unchanged. Mentor feedback is not writable here; the
// column only carries what was recorded at creation.
func (r *ProgressRepository) UpdateTracker(ctx context.Context, id int64, goals, milestones *string) error {
	builder := r.sb.Update("progress_trackers").Where(squirrel.Eq{"id": id})
	changed := false
	if goals != nil {
		builder = builder.Set("goals", *goals)
		changed = true
	}
	if milestones != nil {
		builder = builder.Set("milestones", *milestones)
		changed = true
	}
	if !changed {
		return nil
	}
	builder = builder.Set("updated_at", squirrel.Expr("NOW()"))

	sql, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update tracker query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error updating progress tracker: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrTrackerNotFound
	}
	return nil
}

// ListTrackersByStudent returns the student's trackers, most recently
// updated first.
func (r *ProgressRepository) ListTrackersByStudent(ctx context.Context, studentID int64) ([]*models.ProgressTracker, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, tracker_id, student_id, goals, milestones, mentor_feedback, created_at, updated_at
		FROM progress_trackers
		WHERE student_id = $1
		ORDER BY updated_at DESC`, studentID)
	if err != nil {
		return nil, fmt.Errorf("error listing progress trackers: %w", err)
	}
	defer rows.Close()

	var trackers []*models.ProgressTracker
	for rows.Next() {
		tracker := &models.ProgressTracker{}
		err := rows.Scan(
			&tracker.ID, &tracker.TrackerID, &tracker.StudentID,
			&tracker.Goals, &tracker.Milestones, &tracker.MentorFeedback,
			&tracker.CreatedAt, &tracker.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("error scanning tracker row: %w", err)
		}
		trackers = append(trackers, tracker)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating tracker rows: %w", err)
	}
	return trackers, nil
}
