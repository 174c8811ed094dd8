package account

import (
	"context"

	"github.com/google/uuid"

	"github.com/RehanWaris/vbudget/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/RehanWaris/vbudget/services/account AccountUC

// AccountUC represents the account activation usecase interface
type AccountUC interface {
	// Register creates a user in pending_self and issues a
	// self-registration OTP challenge.
	Register(ctx context.Context, req *models.RegisterRequest) (*models.User, error)

	// VerifySelf consumes the self-registration challenge and moves the
	// user to pending_admin, issuing an admin approval challenge.
	VerifySelf(ctx context.Context, email, code string) (*models.User, error)

	// AdminApprove consumes the admin challenge and activates the user.
	AdminApprove(ctx context.Context, actor *models.Actor, userID uuid.UUID, code string) (*models.User, error)

	// RejectUser moves a pending user to rejected.
	RejectUser(ctx context.Context, actor *models.Actor, userID uuid.UUID, comment string) (*models.User, error)

	// Login authenticates an active user and issues a JWT.
	Login(ctx context.Context, email, password string) (*models.AuthResponse, error)

	// PendingUsers lists accounts awaiting admin approval.
	PendingUsers(ctx context.Context) ([]*models.User, error)

	// GetUser returns a single user by id.
	GetUser(ctx context.Context, id uuid.UUID) (*models.User, error)

	// EnsureAdmin seeds the bootstrap admin account if it does not exist.
	EnsureAdmin(ctx context.Context) error
}
