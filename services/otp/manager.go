package otp

import (
	"context"
	"fmt"
	"time"

	"github.com/RehanWaris/vbudget/internal/pkg/apperrors"
	"github.com/RehanWaris/vbudget/internal/pkg/logger"
	"github.com/RehanWaris/vbudget/internal/pkg/models"
	"github.com/RehanWaris/vbudget/internal/utils"
)

// ChallengeManager is the Manager implementation backed by a ChallengeRepo.
type ChallengeManager struct {
	repo ChallengeRepo
	cfg  *models.Config
}

// NewChallengeManager creates a new challenge manager instance
func NewChallengeManager(repo ChallengeRepo, cfg *models.Config) *ChallengeManager {
	return &ChallengeManager{
		repo: repo,
		cfg:  cfg,
	}
}

// expiry returns the challenge lifetime for a purpose. Admin approval codes
// live longer because they wait on a human administrator.
func (m *ChallengeManager) expiry(purpose models.OTPPurpose) time.Duration {
	minutes := m.cfg.OTP.ExpiryMinutes
	if purpose == models.OTPPurposeAdminApproval {
		minutes = m.cfg.OTP.AdminExpiryMinutes
	}
	if minutes <= 0 {
		minutes = 15
	}
	return time.Duration(minutes) * time.Minute
}

// Issue creates and stores a fresh challenge for the (subject, purpose) pair.
func (m *ChallengeManager) Issue(ctx context.Context, subject string, purpose models.OTPPurpose) (*models.OTPChallenge, error) {
	code, err := utils.GenerateOTPCode(m.cfg.OTP.Length)
	if err != nil {
		return nil, fmt.Errorf("failed to generate challenge code: %w", err)
	}

	ttl := m.expiry(purpose)
	now := time.Now()
	challenge := &models.OTPChallenge{
		Subject:   subject,
		Purpose:   purpose,
		Code:      code,
		IssuedAt:  now,
		ExpiresAt: now.Add(ttl),
	}

	if err := m.repo.Put(ctx, challenge, ttl); err != nil {
		return nil, fmt.Errorf("failed to store challenge: %w", err)
	}

	logger.Info("Issued OTP challenge",
		logger.String("subject", subject),
		logger.String("purpose", string(purpose)),
		logger.Time("expires_at", challenge.ExpiresAt))

	return challenge, nil
}

// Consume validates and consumes a challenge; failure modes collapse into a
// single InvalidOrExpiredOTP so callers cannot distinguish wrong code from
// expired code.
func (m *ChallengeManager) Consume(ctx context.Context, subject string, purpose models.OTPPurpose, code string) error {
	ok, err := m.repo.ConsumeIfMatch(ctx, subject, purpose, code, time.Now())
	if err != nil {
		return fmt.Errorf("failed to consume challenge: %w", err)
	}
	if !ok {
		return apperrors.OTP(apperrors.CodeInvalidOrExpiredOTP, "invalid or expired OTP for %s", subject)
	}
	return nil
}
