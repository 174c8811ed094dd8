package gateway

import (
	"context"
	"time"

	nsqpkg "github.com/RehanWaris/vbudget/internal/pkg/nsq"

	"github.com/RehanWaris/vbudget/internal/pkg/constants"
	"github.com/RehanWaris/vbudget/internal/pkg/models"
)

// BudgetGW publishes budget pipeline events and notifications over NSQ
type BudgetGW struct {
	producer *nsqpkg.Producer
	cfg      *models.Config
}

// NewBudgetGW creates a new budget gateway instance
func NewBudgetGW(producer *nsqpkg.Producer, cfg *models.Config) *BudgetGW {
	return &BudgetGW{
		producer: producer,
		cfg:      cfg,
	}
}

// PublishStatusChange emits a budget pipeline transition event
func (g *BudgetGW) PublishStatusChange(_ context.Context, event *models.BudgetStatusEvent) error {
	return g.producer.Publish(constants.TopicBudgetEvents, event)
}

type notificationMessage struct {
	Recipient string    `json:"recipient"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	SentAt    time.Time `json:"sent_at"`
}

// NotifyAdmin publishes a notification addressed per the configured
// recipient rule.
func (g *BudgetGW) NotifyAdmin(_ context.Context, subject, message string) error {
	recipient := g.cfg.Admin.Email
	if g.cfg.Admin.RecipientRule == "role-based" {
		recipient = "role:" + string(models.RoleAdmin)
	}

	return g.producer.Publish(g.cfg.NSQ.NotifyTopic, notificationMessage{
		Recipient: recipient,
		Subject:   subject,
		Message:   message,
		SentAt:    time.Now(),
	})
}
