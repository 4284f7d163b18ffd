package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/careerconnect/backend/internal/app/models"
)

// IStatsRepository defines the aggregate-count queries for the admin dashboard.
type IStatsRepository interface {
	GetDashboardStats(ctx context.Context) (*models.DashboardStats, error)
}

// StatsRepository computes platform-wide aggregates.
type StatsRepository struct {
	db *pgxpool.Pool
}

// NewStatsRepository creates a new StatsRepository
func NewStatsRepository(db *pgxpool.Pool) *StatsRepository {
	return &StatsRepository{db: db}
}

// GetDashboardStats gathers all dashboard counts in a single round trip.
func (r *StatsRepository) GetDashboardStats(ctx context.Context) (*models.DashboardStats, error) {
	stats := &models.DashboardStats{}
	err := r.db.QueryRow(ctx, `
		SELECT
			(SELECT COUNT(*) FROM users),
			(SELECT COUNT(*) FROM users WHERE role = 'student'),
			(SELECT COUNT(*) FROM users WHERE role = 'mentor'),
			(SELECT COUNT(*) FROM mentors WHERE verification_status = 'verified'),
			(SELECT COUNT(*) FROM mentors WHERE verification_status = 'pending'),
			(SELECT COUNT(*) FROM sessions),
			(SELECT COUNT(*) FROM sessions WHERE status = 'completed'),
			(SELECT COUNT(*) FROM messages),
			(SELECT COUNT(*) FROM mentorship_requests WHERE status = 'pending')`).Scan(
		&stats.TotalUsers, &stats.TotalStudents, &stats.TotalMentors,
		&stats.VerifiedMentors, &stats.PendingMentors,
		&stats.TotalSessions, &stats.CompletedSessions,
		&stats.TotalMessages, &stats.PendingRequests)
	if err != nil {
		return nil, fmt.Errorf("error computing dashboard stats: %w", err)
	}
	return stats, nil
}
