package user

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

// StudentRepository handles student-profile database operations.
type StudentRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

const studentColumns = "id, user_id, educational_background, career_interests, goals"

func scanStudent(row pgx.Row) (*models.Student, error) {
	student := &models.Student{}
	err := row.Scan(
		&student.ID, &student.UserID,
		&student.EducationalBackground, &student.CareerInterests, &student.Goals)
	if err != nil {
		return nil, err
	}
	return student, nil
}

// CreateStudent inserts a student profile row for the user.
func (r *StudentRepository) CreateStudent(ctx context.Context, q Querier, student *models.Student) error {
	err := q.QueryRow(ctx, `
		INSERT INTO students (user_id, educational_background, career_interests, goals)
		VALUES ($1, $2, $3, $4)
		RETURNING id`,
		student.UserID, student.EducationalBackground, student.CareerInterests, student.Goals,
	).Scan(&student.ID)
	if err != nil {
		return fmt.Errorf("error creating student profile: %w", err)
	}
	return nil
}

// GetStudentByUserID retrieves the student profile owned by the given user account.
func (r *StudentRepository) GetStudentByUserID(ctx context.Context, userID int64) (*models.Student, error) {
	student, err := scanStudent(r.db.QueryRow(ctx,
		`SELECT `+studentColumns+` FROM students WHERE user_id = $1`, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentProfileNotFound
		}
		return nil, fmt.Errorf("error retrieving student profile: %w", err)
	}
	return student, nil
}

// GetStudentByID retrieves a student profile by its primary key.
func (r *StudentRepository) GetStudentByID(ctx context.Context, id int64) (*models.Student, error) {
	student, err := scanStudent(r.db.QueryRow(ctx,
		`SELECT `+studentColumns+` FROM students WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentProfileNotFound
		}
		return nil, fmt.Errorf("error retrieving student profile: %w", err)
	}
	return student, nil
}

// UpdateStudent overwrites the provided profile fields. Nil fields are left
// unchanged.
func (r *StudentRepository) UpdateStudent(ctx context.Context, userID int64, educationalBackground, careerInterests, goals *string) error {
	builder := r.sb.Update("students").Where(squirrel.Eq{"user_id": userID})
	changed := false
	if educationalBackground != nil {
		builder = builder.Set("educational_background", *educationalBackground)
		changed = true
	}
	if careerInterests != nil {
		builder = builder.Set("career_interests", *careerInterests)
		changed = true
	}
	if goals != nil {
		builder = builder.Set("goals", *goals)
		changed = true
	}
	if !changed {
		return nil
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update student query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error updating student profile: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrStudentProfileNotFound
	}
	return nil
}
