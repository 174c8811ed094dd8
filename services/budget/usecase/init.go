package usecase

import (
	"github.com/RehanWaris/vbudget/internal/pkg/models"
	"github.com/RehanWaris/vbudget/services/budget"
	"github.com/RehanWaris/vbudget/services/vendor"
)

// BudgetUC implements the budget pipeline usecase
type BudgetUC struct {
	budgetRepo budget.BudgetRepo
	vendorRepo vendor.VendorRepo
	budgetGW   budget.BudgetGW
	cfg        *models.Config
}

// NewBudgetUC creates a new budget usecase instance
func NewBudgetUC(
	budgetRepo budget.BudgetRepo,
	vendorRepo vendor.VendorRepo,
	budgetGW budget.BudgetGW,
	cfg *models.Config,
) *BudgetUC {
	return &BudgetUC{
		budgetRepo: budgetRepo,
		vendorRepo: vendorRepo,
		budgetGW:   budgetGW,
		cfg:        cfg,
	}
}
