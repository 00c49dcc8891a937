package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/dtroode/helpdesk-auth/internal/model"
)

var _ model.CredentialStore = (*UserRepository)(nil)

type UserRepository struct {
	db DB
}

func NewUserRepository(db DB) *UserRepository {
	return &UserRepository{
		db: db,
	}
}

const userColumns = `u.id, u.email, u.password_hash, u.status, u.email_verified, u.email_verified_at,
	u.last_login_at, u.last_login_ip, u.created_at, u.updated_at,
	COALESCE(p.first_name, ''), COALESCE(p.last_name, ''), p.phone_number,
	COALESCE(p.language, ''), COALESCE(p.timezone, ''), COALESCE(p.theme, '')`

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (model.User, error) {
	query := `SELECT ` + userColumns + `
		FROM users u LEFT JOIN user_profiles p ON p.user_id = u.id
		WHERE LOWER(u.email) = LOWER($1)`

	user, err := scanUser(r.db.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, model.ErrNotFound
		}
		return model.User{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	return user, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (model.User, error) {
	query := `SELECT ` + userColumns + `
		FROM users u LEFT JOIN user_profiles p ON p.user_id = u.id
		WHERE u.id = $1`

	user, err := scanUser(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, model.ErrNotFound
		}
		return model.User{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	return user, nil
}

// Create inserts the account and its profile in one transaction.
func (r *UserRepository) Create(ctx context.Context, user model.User, profile model.Profile, roleCode string) (model.User, error) {
	const insertUser = `INSERT INTO users (id, email, password_hash, status, email_verified, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $6)
		RETURNING created_at, updated_at`
	const insertProfile = `INSERT INTO user_profiles (user_id, first_name, last_name, phone_number, language, timezone, theme)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	// global (company-less) role
	const insertRole = `INSERT INTO user_roles (user_id, role_code, company_id, assigned_by, assigned_at)
		VALUES ($1, $2, NULL, NULL, NOW())
		ON CONFLICT (user_id, role_code) WHERE company_id IS NULL DO NOTHING`

	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	err = tx.QueryRow(ctx, insertUser,
		user.ID, user.Email, user.PasswordHash, string(user.Status), user.EmailVerified, user.CreatedAt,
	).Scan(&user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return model.User{}, model.ErrAlreadyExists
		}
		return model.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	if _, err := tx.Exec(ctx, insertProfile,
		user.ID, profile.FirstName, profile.LastName, profile.PhoneNumber,
		profile.Language, profile.Timezone, profile.Theme,
	); err != nil {
		return model.User{}, fmt.Errorf("failed to create user profile: %w", err)
	}

	if _, err := tx.Exec(ctx, insertRole, user.ID, roleCode); err != nil {
		return model.User{}, fmt.Errorf("failed to assign role: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return model.User{}, fmt.Errorf("failed to commit user: %w", err)
	}

	user.Profile = profile
	return user, nil
}

func (r *UserRepository) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	const query = `UPDATE users SET password_hash = $2, updated_at = NOW() WHERE id = $1`
	return r.exec(ctx, "update password", query, id, passwordHash)
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time, ip string) error {
	const query = `UPDATE users SET last_login_at = $2, last_login_ip = NULLIF($3, ''), updated_at = NOW() WHERE id = $1`
	return r.exec(ctx, "update last login", query, id, at, ip)
}

func (r *UserRepository) MarkEmailVerified(ctx context.Context, id uuid.UUID, at time.Time) error {
	const query = `UPDATE users SET email_verified = TRUE, email_verified_at = $2, updated_at = NOW() WHERE id = $1`
	return r.exec(ctx, "mark email verified", query, id, at)
}

func (r *UserRepository) exec(ctx context.Context, op, query string, args ...any) error {
	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to %s: %w", op, err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotFound
	}
	return nil
}

func scanUser(row pgx.Row) (model.User, error) {
	var (
		u      model.User
		status string
	)
	err := row.Scan(
		&u.ID, &u.Email, &u.PasswordHash, &status, &u.EmailVerified, &u.EmailVerifiedAt,
		&u.LastLoginAt, &u.LastLoginIP, &u.CreatedAt, &u.UpdatedAt,
		&u.Profile.FirstName, &u.Profile.LastName, &u.Profile.PhoneNumber,
		&u.Profile.Language, &u.Profile.Timezone, &u.Profile.Theme,
	)
	u.Status = model.UserStatus(status)
	return u, err
}
