package account

import (
	"context"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/RehanWaris/vbudget/services/account AccountGW

// AccountGW defines the account gateways interface. Notification delivery is
// best-effort: a publish failure never rolls back the state transition that
// triggered it.
type AccountGW interface {
	NotifyAdmin(ctx context.Context, subject, message string) error
}
