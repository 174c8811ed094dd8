package usecase

import (
	"github.com/RehanWaris/vbudget/internal/pkg/models"
	"github.com/RehanWaris/vbudget/services/account"
	"github.com/RehanWaris/vbudget/services/otp"
)

// AccountUC implements the account activation usecase
type AccountUC struct {
	accountRepo account.AccountRepo
	otpManager  otp.Manager
	accountGW   account.AccountGW
	cfg         *models.Config
}

// NewAccountUC creates a new account usecase instance
func NewAccountUC(
	accountRepo account.AccountRepo,
	otpManager otp.Manager,
	accountGW account.AccountGW,
	cfg *models.Config,
) *AccountUC {
	return &AccountUC{
		accountRepo: accountRepo,
		otpManager:  otpManager,
		accountGW:   accountGW,
		cfg:         cfg,
	}
}
