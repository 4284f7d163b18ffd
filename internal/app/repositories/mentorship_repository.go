package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/careerconnect/backend/internal/app/models"
	"github.com/careerconnect/backend/internal/pkg/apperrors"
	"github.com/careerconnect/backend/internal/pkg/dberrors"
	"github.com/careerconnect/backend/internal/pkg/logger"
)

// IMentorshipRepository defines the persistence surface for mentorship requests.
type IMentorshipRepository interface {
	CreateRequest(ctx context.Context, request *models.MentorshipRequest) error
	GetRequestByID(ctx context.Context, id int64) (*models.MentorshipRequest, error)
	UpdateRequestStatus(ctx context.Context, id int64, status models.RequestStatus) error
	ListRequestsByMentor(ctx context.Context, mentorID int64) ([]*models.MentorshipRequest, error)
}

// MentorshipRepository handles mentorship-request database operations.
type MentorshipRepository struct {
	db *pgxpool.Pool
}

// NewMentorshipRepository creates a new MentorshipRepository
func NewMentorshipRepository(db *pgxpool.Pool) *MentorshipRepository {
	return &MentorshipRepository{db: db}
}

// CreateRequest inserts a pending mentorship request. The partial unique
// index on (student_id, mentor_id) for pending rows rejects a second open
// request to the same mentor, including under concurrent inserts.
func (r *MentorshipRepository) CreateRequest(ctx context.Context, request *models.MentorshipRequest) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO mentorship_requests (student_id, mentor_id, status, message)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at`,
		request.StudentID, request.MentorID, models.RequestPending, request.Message,
	).Scan(&request.ID, &request.CreatedAt, &request.UpdatedAt)

	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "mentorship_requests_pending_pair_key") {
			return apperrors.ErrRequestAlreadyPending
		}
		return fmt.Errorf("error creating mentorship request: %w", err)
	}

	request.Status = models.RequestPending
	logger.Info().
		Int64("requestID", request.ID).
		Int64("studentID", request.StudentID).
		Int64("mentorID", request.MentorID).
		Msg("Mentorship request created")
	return nil
}

// GetRequestByID retrieves a mentorship request by ID
func (r *MentorshipRepository) GetRequestByID(ctx context.Context, id int64) (*models.MentorshipRequest, error) {
	request := &models.MentorshipRequest{}
	err := r.db.QueryRow(ctx, `
		SELECT id, student_id, mentor_id, status, message, created_at, updated_at
		FROM mentorship_requests
		WHERE id = $1`, id).Scan(
		&request.ID, &request.StudentID, &request.MentorID,
		&request.Status, &request.Message, &request.CreatedAt, &request.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrRequestNotFound
		}
		return nil, fmt.Errorf("error retrieving mentorship request: %w", err)
	}
	return request, nil
}

// UpdateRequestStatus records the mentor's decision on a request.
func (r *MentorshipRepository) UpdateRequestStatus(ctx context.Context, id int64, status models.RequestStatus) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE mentorship_requests
		SET status = $1, updated_at = NOW()
		WHERE id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("error updating mentorship request: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrRequestNotFound
	}
	return nil
}

// ListRequestsByMentor returns requests addressed to the mentor, newest
// first, enriched with the requesting student's account and profile.
func (r *MentorshipRepository) ListRequestsByMentor(ctx context.Context, mentorID int64) ([]*models.MentorshipRequest, error) {
	rows, err := r.db.Query(ctx, `
		SELECT mr.id, mr.student_id, mr.mentor_id, mr.status, mr.message, mr.created_at, mr.updated_at,
		       u.id, u.user_id, u.name, u.email, u.phone_number, u.role, u.created_at,
		       s.id, s.educational_background, s.career_interests, s.goals
		FROM mentorship_requests mr
		JOIN students s ON s.id = mr.student_id
		JOIN users u ON u.id = s.user_id
		WHERE mr.mentor_id = $1
		ORDER BY mr.created_at DESC`, mentorID)
	if err != nil {
		return nil, fmt.Errorf("error listing mentorship requests: %w", err)
	}
	defer rows.Close()

	return scanEnrichedRequests(rows)
}

func scanEnrichedRequests(rows pgx.Rows) ([]*models.MentorshipRequest, error) {
	var requests []*models.MentorshipRequest
	for rows.Next() {
		request := &models.MentorshipRequest{
			StudentUser:    &models.User{},
			StudentProfile: &models.Student{},
		}
		err := rows.Scan(
			&request.ID, &request.StudentID, &request.MentorID,
			&request.Status, &request.Message, &request.CreatedAt, &request.UpdatedAt,
			&request.StudentUser.ID, &request.StudentUser.UserID, &request.StudentUser.Name,
			&request.StudentUser.Email, &request.StudentUser.PhoneNumber,
			&request.StudentUser.Role, &request.StudentUser.CreatedAt,
			&request.StudentProfile.ID, &request.StudentProfile.EducationalBackground,
			&request.StudentProfile.CareerInterests, &request.StudentProfile.Goals)
		if err != nil {
			return nil, fmt.Errorf("error scanning mentorship request row: %w", err)
		}
		request.StudentProfile.UserID = request.StudentUser.ID
		requests = append(requests, request)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating mentorship request rows: %w", err)
	}
	return requests, nil
}
