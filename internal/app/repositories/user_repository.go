package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/careerconnect/backend/internal/app/models"
	userrepo "github.com/careerconnect/backend/internal/app/repositories/user"
	"github.com/careerconnect/backend/internal/db"
	"github.com/careerconnect/backend/internal/pkg/logger"
)

// IUserRepository defines the persistence surface for user accounts and
// their role profiles.
type IUserRepository interface {
	CreateWithProfile(ctx context.Context, user *models.User) error
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	UpdateContact(ctx context.Context, userID int64, name, phoneNumber *string) error
	UpdateEmail(ctx context.Context, userID int64, email string) error
	DeleteUser(ctx context.Context, id int64) error
	ListUsers(ctx context.Context, roleFilter models.RoleType) ([]*models.User, error)

	CreateStudentProfile(ctx context.Context, student *models.Student) error
	CreateMentorProfile(ctx context.Context, mentor *models.Mentor) error
	GetStudentByUserID(ctx context.Context, userID int64) (*models.Student, error)
	GetStudentByID(ctx context.Context, id int64) (*models.Student, error)
	UpdateStudent(ctx context.Context, userID int64, educationalBackground, careerInterests, goals *string) error

	GetMentorByUserID(ctx context.Context, userID int64) (*models.Mentor, error)
	GetMentorByID(ctx context.Context, id int64) (*models.Mentor, error)
	UpdateMentor(ctx context.Context, userID int64, professionalTitle, industry, bio, expertise *string) error
	SearchVerifiedMentors(ctx context.Context, industry, expertise string) ([]*models.Mentor, error)
	ListMentorsByStatus(ctx context.Context, status models.VerificationStatus) ([]*models.Mentor, error)
	SetVerificationStatus(ctx context.Context, mentorID int64, status models.VerificationStatus) error
}

// UserRepository composes the account, student and mentor repositories into
// a single persistence facade.
type UserRepository struct {
	*userrepo.CommonRepository
	*userrepo.StudentRepository
	*userrepo.MentorRepository

	db *pgxpool.Pool
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{
		CommonRepository:  userrepo.NewCommonRepository(pool),
		StudentRepository: userrepo.NewStudentRepository(pool),
		MentorRepository:  userrepo.NewMentorRepository(pool),
		db:                pool,
	}
}

// CreateStudentProfile inserts a student profile row outside a transaction.
// Used to lazily backfill profiles for accounts that predate them.
func (r *UserRepository) CreateStudentProfile(ctx context.Context, student *models.Student) error {
	return r.StudentRepository.CreateStudent(ctx, r.db, student)
}

// CreateMentorProfile inserts a mentor profile row outside a transaction.
func (r *UserRepository) CreateMentorProfile(ctx context.Context, mentor *models.Mentor) error {
	return r.MentorRepository.CreateMentor(ctx, r.db, mentor)
}

// CreateWithProfile atomically inserts the user account together with its
// role profile. Either both rows land or neither does.
func (r *UserRepository) CreateWithProfile(ctx context.Context, user *models.User) error {
	err := db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		if err := r.CommonRepository.CreateUser(ctx, tx, user); err != nil {
			return err
		}

		switch user.Role {
		case models.RoleStudent:
			user.StudentProfile = &models.Student{UserID: user.ID}
			return r.StudentRepository.CreateStudent(ctx, tx, user.StudentProfile)
		case models.RoleMentor:
			user.MentorProfile = &models.Mentor{
				UserID:             user.ID,
				VerificationStatus: models.VerificationPending,
			}
			return r.MentorRepository.CreateMentor(ctx, tx, user.MentorProfile)
		}
		return nil
	})
	if err != nil {
		return err
	}

	logger.Info().
		Int64("userID", user.ID).
		Str("role", string(user.Role)).
		Msg("User registered with profile")
	return nil
}
