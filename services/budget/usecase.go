package budget

import (
	"context"
	"io"

	"github.com/google/uuid"

	"github.com/RehanWaris/vbudget/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/RehanWaris/vbudget/services/budget BudgetUC

// BudgetUC represents the budget pipeline usecase interface
type BudgetUC interface {
	// CreateBudget resolves the raw rows against the approved vendor
	// catalogue and drafts a budget. Resolution is all-or-nothing: one
	// unresolvable row fails the whole request and nothing is persisted.
	CreateBudget(ctx context.Context, actor *models.Actor, req *models.BudgetCreateRequest) (*models.Budget, error)

	// ImportBudget parses an element sheet (xlsx) into rows and drafts a
	// budget from them with the same atomicity as CreateBudget.
	ImportBudget(ctx context.Context, actor *models.Actor, req *models.BudgetCreateRequest, sheet io.Reader) (*models.Budget, error)

	// SubmitBudget moves the owner's draft into the first review stage.
	SubmitBudget(ctx context.Context, actor *models.Actor, budgetID uuid.UUID) (*models.Budget, error)

	// RecordApproval applies a reviewer decision at the budget's current
	// stage; a stage or role mismatch fails without side effects.
	RecordApproval(ctx context.Context, actor *models.Actor, budgetID uuid.UUID, req *models.ApprovalRequest) (*models.Budget, error)

	GetBudget(ctx context.Context, actor *models.Actor, id uuid.UUID) (*models.Budget, error)
	ListBudgets(ctx context.Context, actor *models.Actor) ([]*models.Budget, error)
}
