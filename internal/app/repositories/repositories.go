package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories bundles every repository behind its interface for injection
// into the service layer.
type Repositories struct {
	User       IUserRepository
	Mentorship IMentorshipRepository
	Session    ISessionRepository
	Message    IMessageRepository
	Assessment IAssessmentRepository
	Progress   IProgressRepository
	Resource   IResourceRepository
	Stats      IStatsRepository
}

// NewRepositories wires all repositories onto the shared connection pool.
func NewRepositories(pool *pgxpool.Pool) *Repositories {
	return &Repositories{
		User:       NewUserRepository(pool),
		Mentorship: NewMentorshipRepository(pool),
		Session:    NewSessionRepository(pool),
		Message:    NewMessageRepository(pool),
		Assessment: NewAssessmentRepository(pool),
		Progress:   NewProgressRepository(pool),
		Resource:   NewResourceRepository(pool),
		Stats:      NewStatsRepository(pool),
	}
}
