package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/careerconnect/backend/internal/app/models"
)

// IResourceRepository defines the persistence surface for shared resources.
type IResourceRepository interface {
	CreateResource(ctx context.Context, resource *models.Resource) error
	ListResourcesByMentor(ctx context.Context, mentorID int64) ([]*models.Resource, error)
}

// ResourceRepository handles mentor-resource database operations.
type ResourceRepository struct {
	db *pgxpool.Pool
}

// NewResourceRepository creates a new ResourceRepository
func NewResourceRepository(db *pgxpool.Pool) *ResourceRepository {
	return &ResourceRepository{db: db}
}

// CreateResource inserts a resource shared by a mentor.
func (r *ResourceRepository) CreateResource(ctx context.Context, resource *models.Resource) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO resources (resource_id, mentor_id, title, file_type, description, file_url)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, upload_date`,
		resource.ResourceID, resource.MentorID, resource.Title,
		resource.FileType, resource.Description, resource.FileURL,
	).Scan(&resource.ID, &resource.UploadDate)
	if err != nil {
		return fmt.Errorf("error creating resource: %w", err)
	}
	return nil
}

// ListResourcesByMentor returns the mentor's resources, newest first.
func (r *ResourceRepository) ListResourcesByMentor(ctx context.Context, mentorID int64) ([]*models.Resource, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, resource_id, mentor_id, title, file_type, description, file_url, upload_date
		FROM resources
		WHERE mentor_id = $1
		ORDER BY upload_date DESC`, mentorID)
	if err != nil {
		return nil, fmt.Errorf("error listing resources: %w", err)
	}
	defer rows.Close()

	var resources []*models.Resource
	for rows.Next() {
		resource := &models.Resource{}
		err := rows.Scan(
			&resource.ID, &resource.ResourceID, &resource.MentorID, &resource.Title,
			&resource.FileType, &resource.Description, &resource.FileURL, &resource.UploadDate)
		if err != nil {
			return nil, fmt.Errorf("error scanning resource row: %w", err)
		}
		resources = append(resources, resource)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating resource rows: %w", err)
	}
	return resources, nil
}
