package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/RehanWaris/vbudget/internal/pkg/models"
)

// DashboardRepo aggregates workflow counts over PostgreSQL
type DashboardRepo struct {
	db *sqlx.DB
}

// NewDashboardRepo creates a new dashboard repository instance
func NewDashboardRepo(db *sqlx.DB) *DashboardRepo {
	return &DashboardRepo{
		db: db,
	}
}

// CountMetrics runs the rollup in a single query
func (r *DashboardRepo) CountMetrics(ctx context.Context) (*models.DashboardMetrics, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM users WHERE status = 'pending_admin') AS pending_users,
			(SELECT COUNT(*) FROM vendors WHERE status = 'pending_approval') AS pending_vendors,
			(SELECT COUNT(*) FROM budgets WHERE status IN ('approver_review', 'accounts_review')) AS pending_approvals,
			(SELECT COUNT(*) FROM budgets WHERE status NOT IN ('approved', 'rejected')) AS active_budgets,
			(SELECT COUNT(*) FROM budgets WHERE status = 'approved') AS approved_budgets
	`

	var metrics models.DashboardMetrics
	if err := r.db.GetContext(ctx, &metrics, query); err != nil {
		return nil, fmt.Errorf("failed to count workflow metrics: %w", err)
	}
	return &metrics, nil
}
