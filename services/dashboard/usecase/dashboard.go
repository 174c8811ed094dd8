package usecase

import (
	"context"

	"github.com/RehanWaris/vbudget/internal/pkg/apperrors"
	"github.com/RehanWaris/vbudget/internal/pkg/models"
	"github.com/RehanWaris/vbudget/services/dashboard"
)

// DashboardUC implements the workflow metrics usecase
type DashboardUC struct {
	dashboardRepo dashboard.DashboardRepo
}

// NewDashboardUC creates a new dashboard usecase instance
func NewDashboardUC(dashboardRepo dashboard.DashboardRepo) *DashboardUC {
	return &DashboardUC{
		dashboardRepo: dashboardRepo,
	}
}

// Metrics returns the workflow rollup. Reviewer or admin capability is
// required; employees see their budgets through the listing endpoints.
func (u *DashboardUC) Metrics(ctx context.Context, actor *models.Actor) (*models.DashboardMetrics, error) {
	caps := actor.Role.Capabilities()
	if !caps.CanApprove && !caps.CanAccount && !caps.CanAdminister {
		return nil, apperrors.Authorization("role %s cannot view workflow metrics", actor.Role)
	}
	return u.dashboardRepo.CountMetrics(ctx)
}
