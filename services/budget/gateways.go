package budget

import (
	"context"

	"github.com/RehanWaris/vbudget/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/RehanWaris/vbudget/services/budget BudgetGW

// BudgetGW represents the budget gateway interface for side-channel
// publications. Failures are logged by the caller and never fail the
// workflow operation.
type BudgetGW interface {
	// PublishStatusChange emits a budget pipeline transition event.
	PublishStatusChange(ctx context.Context, event *models.BudgetStatusEvent) error

	// NotifyAdmin publishes a notification addressed per the configured
	// recipient rule.
	NotifyAdmin(ctx context.Context, subject, message string) error
}
