package dashboard

import (
	"context"

	"github.com/RehanWaris/vbudget/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_dashboard.go -package=mocks github.com/RehanWaris/vbudget/services/dashboard DashboardUC,DashboardRepo

// DashboardUC represents the workflow metrics usecase interface
type DashboardUC interface {
	// Metrics returns the read-only rollup over workflow states.
	Metrics(ctx context.Context, actor *models.Actor) (*models.DashboardMetrics, error)
}

// DashboardRepo represents the metrics aggregation queries
type DashboardRepo interface {
	CountMetrics(ctx context.Context) (*models.DashboardMetrics, error)
}
