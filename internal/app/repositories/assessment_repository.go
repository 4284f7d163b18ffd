package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/careerconnect/backend/internal/app/models"
)

// IAssessmentRepository defines the persistence surface for career assessments.
type IAssessmentRepository interface {
	CreateAssessment(ctx context.Context, assessment *models.CareerAssessment) error
	ListAssessmentsByStudent(ctx context.Context, studentID int64) ([]*models.CareerAssessment, error)
}

// AssessmentRepository handles career-assessment database operations.
// Assessments are immutable once recorded.
type AssessmentRepository struct {
	db *pgxpool.Pool
}

// NewAssessmentRepository creates a new AssessmentRepository
func NewAssessmentRepository(db *pgxpool.Pool) *AssessmentRepository {
	return &AssessmentRepository{db: db}
}

// CreateAssessment inserts a completed assessment for a student.
func (r *AssessmentRepository) CreateAssessment(ctx context.Context, assessment *models.CareerAssessment) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO career_assessments (assessment_id, student_id, questionnaire, results, recommendations)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`,
		assessment.AssessmentID, assessment.StudentID,
		assessment.Questionnaire, assessment.Results, assessment.Recommendations,
	).Scan(&assessment.ID, &assessment.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating assessment: %w", err)
	}
	return nil
}

// ListAssessmentsByStudent returns the student's assessments, newest first.
func (r *AssessmentRepository) ListAssessmentsByStudent(ctx context.Context, studentID int64) ([]*models.CareerAssessment, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, assessment_id, student_id, questionnaire, results, recommendations, created_at
		FROM career_assessments
		WHERE student_id = $1
		ORDER BY created_at DESC`, studentID)
	if err != nil {
		return nil, fmt.Errorf("error listing assessments: %w", err)
	}
	defer rows.Close()

	var assessments []*models.CareerAssessment
	for rows.Next() {
		assessment := &models.CareerAssessment{}
		err := rows.Scan(
			&assessment.ID, &assessment.AssessmentID, &assessment.StudentID,
			&assessment.Questionnaire, &assessment.Results, &assessment.Recommendations,
			&assessment.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("error scanning assessment row: %w", err)
		}
		assessments = append(assessments, assessment)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating assessment rows: %w", err)
	}
	return assessments, nil
}
