package gateway

import (
	"context"
	"time"

	nsqpkg "github.com/RehanWaris/vbudget/internal/pkg/nsq"

	"github.com/RehanWaris/vbudget/internal/pkg/models"
)

// AccountGW publishes admin notifications over NSQ
type AccountGW struct {
	producer *nsqpkg.Producer
	cfg      *models.Config
}

// NewAccountGW creates a new account gateway instance
func NewAccountGW(producer *nsqpkg.Producer, cfg *models.Config) *AccountGW {
	return &AccountGW{
		producer: producer,
		cfg:      cfg,
	}
}

// NotificationMessage is the payload consumed by the mailer service
type NotificationMessage struct {
	Recipient string    `json:"recipient"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	SentAt    time.Time `json:"sent_at"`
}

// NotifyAdmin publishes a notification addressed per the configured
// recipient rule: a fixed address, or the admin role for fan-out delivery.
func (g *AccountGW) NotifyAdmin(_ context.Context, subject, message string) error {
	recipient := g.cfg.Admin.Email
	if g.cfg.Admin.RecipientRule == "role-based" {
		recipient = "role:" + string(models.RoleAdmin)
	}

	return g.producer.Publish(g.cfg.NSQ.NotifyTopic, NotificationMessage{
		Recipient: recipient,
		Subject:   subject,
		Message:   message,
		SentAt:    time.Now(),
	})
}
