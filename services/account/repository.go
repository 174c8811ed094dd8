package account

import (
	"context"

	"github.com/google/uuid"

	"github.com/RehanWaris/vbudget/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/RehanWaris/vbudget/services/account AccountRepo

// AccountRepo represents the user persistence interface
type AccountRepo interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error)

	// UpdateUserStatus applies the transition only when the stored status
	// still equals from; returns false when another writer got there first.
	UpdateUserStatus(ctx context.Context, id uuid.UUID, from, to models.UserStatus) (bool, error)

	ListUsersByStatus(ctx context.Context, status models.UserStatus) ([]*models.User, error)
}
