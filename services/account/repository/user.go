package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/RehanWaris/vbudget/internal/pkg/apperrors"
	"github.com/RehanWaris/vbudget/internal/pkg/models"
)

// CreateUser creates a new user in the database
func (r *AccountRepo) CreateUser(ctx context.Context, user *models.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	query := `
		INSERT INTO users (id, name, email, phone, designation, team, supervisor,
			hashed_password, role, status, created_at, updated_at
		) VALUES (:id, :name, :email, :phone, :designation, :team, :supervisor,
			:hashed_password, :role, :status, :created_at, :updated_at)
	`
	if _, err := r.db.NamedExecContext(ctx, query, user); err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}
	return nil
}

// GetUserByEmail retrieves a user by email
func (r *AccountRepo) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `
		SELECT id, name, email, phone, designation, team, supervisor,
			hashed_password, role, status, created_at, updated_at
		FROM users
		WHERE email = $1
	`

	var user models.User
	err := r.db.GetContext(ctx, &user, query, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("user", email)
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}

// GetUserByID retrieves a user by ID
func (r *AccountRepo) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	query := `
		SELECT id, name, email, phone, designation, team, supervisor,
			hashed_password, role, status, created_at, updated_at
		FROM users
		WHERE id = $1
	`

	var user models.User
	err := r.db.GetContext(ctx, &user, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("user", id.String())
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}

// UpdateUserStatus applies a conditional status transition. The WHERE clause
// pins the expected current status so concurrent transitions serialize: the
// loser sees zero rows affected.
func (r *AccountRepo) UpdateUserStatus(ctx context.Context, id uuid.UUID, from, to models.UserStatus) (bool, error) {
	query := `
		UPDATE users
		SET status = $1, updated_at = $2
		WHERE id = $3 AND status = $4
	`

	result, err := r.db.ExecContext(ctx, query, to, time.Now(), id, from)
	if err != nil {
		return false, fmt.Errorf("failed to update user status: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}
	return affected == 1, nil
}

// ListUsersByStatus retrieves all users with a given activation status
func (r *AccountRepo) ListUsersByStatus(ctx context.Context, status models.UserStatus) ([]*models.User, error) {
	query := `
		SELECT id, name, email, phone, designation, team, supervisor,
			hashed_password, role, status, created_at, updated_at
		FROM users
		WHERE status = $1
		ORDER BY created_at
	`

	var users []*models.User
	if err := r.db.SelectContext(ctx, &users, query, status); err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}
