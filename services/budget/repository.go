package budget

import (
	"context"

	"github.com/google/uuid"

	"github.com/RehanWaris/vbudget/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/RehanWaris/vbudget/services/budget BudgetRepo

// BudgetRepo represents budget persistence
type BudgetRepo interface {
	// CreateBudget inserts the budget, its line items and its initial
	// activity entry in one transaction.
	CreateBudget(ctx context.Context, budget *models.Budget) error

	// GetBudget loads a budget with its line items and activity log.
	GetBudget(ctx context.Context, id uuid.UUID) (*models.Budget, error)

	// ListBudgets lists budgets without items or activity, newest first.
	// A non-nil ownerID restricts the listing to that owner.
	ListBudgets(ctx context.Context, ownerID *uuid.UUID) ([]*models.Budget, error)

	// TransitionStatus applies a conditional status transition and appends
	// the activity entry in one transaction. It returns false when the
	// budget was not in the expected status, in which case nothing changes.
	TransitionStatus(ctx context.Context, id uuid.UUID, from, to models.BudgetStatus, entry *models.ActivityEntry) (bool, error)
}
