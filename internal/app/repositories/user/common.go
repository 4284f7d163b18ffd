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
	"github.com/careerconnect/backend/internal/pkg/dberrors"
	"github.com/careerconnect/backend/internal/pkg/logger"
)

// Querier is the query surface shared by *pgxpool.Pool and pgx.Tx, so the
// insert helpers work both inside and outside a transaction.
type Querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// CommonRepository handles user-account database operations shared by all roles.
type CommonRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewCommonRepository creates a new CommonRepository
func NewCommonRepository(db *pgxpool.Pool) *CommonRepository {
	return &CommonRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

const userColumns = "id, user_id, name, email, phone_number, password_hash, role, created_at"

func scanUser(row pgx.Row) (*models.User, error) {
	user := &models.User{}
	err := row.Scan(
		&user.ID, &user.UserID, &user.Name, &user.Email, &user.PhoneNumber,
		&user.Password, &user.Role, &user.CreatedAt)
	if err != nil {
		return nil, err
	}
	return user, nil
}

// CreateUser inserts a user row and sets the generated id and creation
// timestamp on the model.
func (r *CommonRepository) CreateUser(ctx context.Context, q Querier, user *models.User) error {
	err := q.QueryRow(ctx, `
		INSERT INTO users (user_id, name, email, phone_number, password_hash, role)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at`,
		user.UserID, user.Name, user.Email, user.PhoneNumber, user.Password, user.Role,
	).Scan(&user.ID, &user.CreatedAt)

	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "users_email_key") {
			return apperrors.ErrEmailAlreadyExists
		}
		return fmt.Errorf("error creating user: %w", err)
	}

	return nil
}

// GetUserByEmail retrieves a user by email
func (r *CommonRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	user, err := scanUser(r.db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = $1`, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error retrieving user by email: %w", err)
	}
	return user, nil
}

// GetUserByID retrieves a user by ID
func (r *CommonRepository) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	user, err := scanUser(r.db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}
	return user, nil
}

// EmailExists checks if an email is already registered
func (r *CommonRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`, email).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking email: %w", err)
	}
	return exists, nil
}

// UpdateContact updates a user's display name and phone number. Nil fields
// are left unchanged.
func (r *CommonRepository) UpdateContact(ctx context.Context, userID int64, name, phoneNumber *string) error {
	builder := r.sb.Update("users").Where(squirrel.Eq{"id": userID})
	if name != nil {
		builder = builder.Set("name", *name)
	}
	if phoneNumber != nil {
		builder = builder.Set("phone_number", *phoneNumber)
	}
	if name == nil && phoneNumber == nil {
		return nil
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update contact query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error updating user contact: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}

// UpdateEmail changes a user's email address, enforcing uniqueness.
func (r *CommonRepository) UpdateEmail(ctx context.Context, userID int64, email string) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE users SET email = $1 WHERE id = $2`, email, userID)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "users_email_key") {
			return apperrors.ErrEmailAlreadyExists
		}
		return fmt.Errorf("error updating user email: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}

// DeleteUser removes a user row. Role profiles and everything chained from
// them go with it via ON DELETE CASCADE.
func (r *CommonRepository) DeleteUser(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}
	logger.Info().Int64("userID", id).Msg("User deleted with cascades")
	return nil
}

// ListUsers returns users newest-first, each enriched with its role profile
// when one exists. An empty roleFilter returns all users.
func (r *CommonRepository) ListUsers(ctx context.Context, roleFilter models.RoleType) ([]*models.User, error) {
	builder := r.sb.Select(
		"u.id", "u.user_id", "u.name", "u.email", "u.phone_number", "u.role", "u.created_at",
		"s.id", "s.educational_background", "s.career_interests", "s.goals",
		"m.id", "m.professional_title", "m.industry", "m.bio", "m.expertise", "m.verification_status",
	).
		From("users u").
		LeftJoin("students s ON s.user_id = u.id").
		LeftJoin("mentors m ON m.user_id = u.id").
		OrderBy("u.created_at DESC")

	if roleFilter != "" {
		builder = builder.Where(squirrel.Eq{"u.role": roleFilter})
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list users query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing users: %w", err)
	}
	defer rows.Close()

	var users []*models.User
	for rows.Next() {
		user := &models.User{}
		var (
			studentID          *int64
			eduBackground      *string
			careerInterests    *string
			goals              *string
			mentorID           *int64
			professionalTitle  *string
			industry           *string
			bio                *string
			expertise          *string
			verificationStatus *string
		)

		err := rows.Scan(
			&user.ID, &user.UserID, &user.Name, &user.Email, &user.PhoneNumber, &user.Role, &user.CreatedAt,
			&studentID, &eduBackground, &careerInterests, &goals,
			&mentorID, &professionalTitle, &industry, &bio, &expertise, &verificationStatus,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning user row: %w", err)
		}

		if user.Role == models.RoleStudent && studentID != nil {
			user.StudentProfile = &models.Student{
				ID:                    *studentID,
				UserID:                user.ID,
				EducationalBackground: eduBackground,
				CareerInterests:       careerInterests,
				Goals:                 goals,
			}
		}
		if user.Role == models.RoleMentor && mentorID != nil {
			user.MentorProfile = &models.Mentor{
				ID:                *mentorID,
				UserID:            user.ID,
				ProfessionalTitle: professionalTitle,
				Industry:          industry,
				Bio:               bio,
				Expertise:         expertise,
			}
			if verificationStatus != nil {
				user.MentorProfile.VerificationStatus = models.VerificationStatus(*verificationStatus)
			}
		}

		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating user rows: %w", err)
	}

	return users, nil
}
