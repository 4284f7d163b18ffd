package user

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/careerconnect/backend/internal/app/models"
	"github.com/careerconnect/backend/internal/pkg/apperrors"
)

// MentorRepository handles mentor-profile database operations.
type MentorRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewMentorRepository creates a new MentorRepository
func NewMentorRepository(db *pgxpool.Pool) *MentorRepository {
	return &MentorRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

const mentorColumns = "id, user_id, professional_title, industry, bio, expertise, verification_status"

func scanMentor(row pgx.Row) (*models.Mentor, error) {
	mentor := &models.Mentor{}
	err := row.Scan(
		&mentor.ID, &mentor.UserID,
		&mentor.ProfessionalTitle, &mentor.Industry, &mentor.Bio, &mentor.Expertise,
		&mentor.VerificationStatus)
	if err != nil {
		return nil, err
	}
	return mentor, nil
}

// CreateMentor inserts a pending mentor profile row for the user.
func (r *MentorRepository) CreateMentor(ctx context.Context, q Querier, mentor *models.Mentor) error {
	if mentor.VerificationStatus == "" {
		mentor.VerificationStatus = models.VerificationPending
	}
	err := q.QueryRow(ctx, `
		INSERT INTO mentors (user_id, professional_title, industry, bio, expertise, verification_status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`,
		mentor.UserID, mentor.ProfessionalTitle, mentor.Industry, mentor.Bio, mentor.Expertise,
		mentor.VerificationStatus,
	).Scan(&mentor.ID)
	if err != nil {
		return fmt.Errorf("error creating mentor profile: %w", err)
	}
	return nil
}

// GetMentorByUserID retrieves the mentor profile owned by the given user account.
func (r *MentorRepository) GetMentorByUserID(ctx context.Context, userID int64) (*models.Mentor, error) {
	mentor, err := scanMentor(r.db.QueryRow(ctx,
		`SELECT `+mentorColumns+` FROM mentors WHERE user_id = $1`, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrMentorProfileNotFound
		}
		return nil, fmt.Errorf("error retrieving mentor profile: %w", err)
	}
	return mentor, nil
}

// GetMentorByID retrieves a mentor profile by its primary key, with the
// owning user attached.
func (r *MentorRepository) GetMentorByID(ctx context.Context, id int64) (*models.Mentor, error) {
	mentor := &models.Mentor{User: &models.User{}}
	err := r.db.QueryRow(ctx, `
		SELECT m.id, m.user_id, m.professional_title, m.industry, m.bio, m.expertise, m.verification_status,
		       u.id, u.user_id, u.name, u.email, u.phone_number, u.role, u.created_at
		FROM mentors m
		JOIN users u ON u.id = m.user_id
		WHERE m.id = $1`, id).Scan(
		&mentor.ID, &mentor.UserID,
		&mentor.ProfessionalTitle, &mentor.Industry, &mentor.Bio, &mentor.Expertise,
		&mentor.VerificationStatus,
		&mentor.User.ID, &mentor.User.UserID, &mentor.User.Name, &mentor.User.Email,
		&mentor.User.PhoneNumber, &mentor.User.Role, &mentor.User.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrMentorNotFound
		}
		return nil, fmt.Errorf("error retrieving mentor: %w", err)
	}
	return mentor, nil
}

// UpdateMentor overwrites the provided profile fields. Nil fields are left
// unchanged. Verification status is never touched here.
func (r *MentorRepository) UpdateMentor(ctx context.Context, userID int64, professionalTitle, industry, bio, expertise *string) error {
	builder := r.sb.Update("mentors").Where(squirrel.Eq{"user_id": userID})
	changed := false
	if professionalTitle != nil {
		builder = builder.Set("professional_title", *professionalTitle)
		changed = true
	}
	if industry != nil {
		builder = builder.Set("industry", *industry)
		changed = true
	}
	if bio != nil {
		builder = builder.Set("bio", *bio)
		changed = true
	}
	if expertise != nil {
		builder = builder.Set("expertise", *expertise)
		changed = true
	}
	if !changed {
		return nil
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update mentor query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error updating mentor profile: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrMentorProfileNotFound
	}
	return nil
}

// SearchVerifiedMentors returns verified mentors whose industry and expertise
// match the given case-insensitive substring filters. Empty filters match
// everything.
func (r *MentorRepository) SearchVerifiedMentors(ctx context.Context, industry, expertise string) ([]*models.Mentor, error) {
	builder := r.sb.Select(
		"m.id", "m.user_id", "m.professional_title", "m.industry", "m.bio", "m.expertise", "m.verification_status",
		"u.id", "u.user_id", "u.name", "u.email", "u.phone_number", "u.role", "u.created_at",
	).
		From("mentors m").
		Join("users u ON u.id = m.user_id").
		Where(squirrel.Eq{"m.verification_status": models.VerificationVerified}).
		OrderBy("u.name ASC")

	if industry != "" {
		builder = builder.Where(squirrel.ILike{"m.industry": "%" + strings.TrimSpace(industry) + "%"})
	}
	if expertise != "" {
		builder = builder.Where(squirrel.ILike{"m.expertise": "%" + strings.TrimSpace(expertise) + "%"})
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build mentor search query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error searching mentors: %w", err)
	}
	defer rows.Close()

	return scanMentorsWithUsers(rows)
}

// ListMentorsByStatus returns mentors in the given verification state,
// newest accounts first, with owning users attached.
func (r *MentorRepository) ListMentorsByStatus(ctx context.Context, status models.VerificationStatus) ([]*models.Mentor, error) {
	rows, err := r.db.Query(ctx, `
		SELECT m.id, m.user_id, m.professional_title, m.industry, m.bio, m.expertise, m.verification_status,
		       u.id, u.user_id, u.name, u.email, u.phone_number, u.role, u.created_at
		FROM mentors m
		JOIN users u ON u.id = m.user_id
		WHERE m.verification_status = $1
		ORDER BY u.created_at DESC`, status)
	if err != nil {
		return nil, fmt.Errorf("error listing mentors: %w", err)
	}
	defer rows.Close()

	return scanMentorsWithUsers(rows)
}

// SetVerificationStatus moves a mentor to the given verification state.
func (r *MentorRepository) SetVerificationStatus(ctx context.Context, mentorID int64, status models.VerificationStatus) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE mentors SET verification_status = $1 WHERE id = $2`, status, mentorID)
	if err != nil {
		return fmt.Errorf("error updating verification status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrMentorNotFound
	}
	return nil
}

func scanMentorsWithUsers(rows pgx.Rows) ([]*models.Mentor, error) {
	var mentors []*models.Mentor
	for rows.Next() {
		mentor := &models.Mentor{User: &models.User{}}
		err := rows.Scan(
			&mentor.ID, &mentor.UserID,
			&mentor.ProfessionalTitle, &mentor.Industry, &mentor.Bio, &mentor.Expertise,
			&mentor.VerificationStatus,
			&mentor.User.ID, &mentor.User.UserID, &mentor.User.Name, &mentor.User.Email,
			&mentor.User.PhoneNumber, &mentor.User.Role, &mentor.User.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("error scanning mentor row: %w", err)
		}
		mentors = append(mentors, mentor)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating mentor rows: %w", err)
	}
	return mentors, nil
}
