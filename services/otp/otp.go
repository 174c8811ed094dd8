// Package otp implements the OTP challenge manager shared by the account
// activation and vendor onboarding workflows. A challenge is scoped to a
// (subject, purpose) pair, single-use and time-limited; issuing a new
// challenge for the same pair invalidates the previous one.
package otp

import (
	"context"
	"time"

	"github.com/RehanWaris/vbudget/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_otp.go -package=mocks github.com/RehanWaris/vbudget/services/otp Manager,ChallengeRepo

// Manager issues and consumes OTP challenges.
type Manager interface {
	// Issue creates a fresh challenge for the pair, replacing any live one.
	Issue(ctx context.Context, subject string, purpose models.OTPPurpose) (*models.OTPChallenge, error)

	// Consume validates and atomically consumes the challenge. Exactly one
	// of two concurrent calls with the same code succeeds.
	Consume(ctx context.Context, subject string, purpose models.OTPPurpose, code string) error
}

// ChallengeRepo stores challenges with a bounded lifetime.
type ChallengeRepo interface {
	Put(ctx context.Context, challenge *models.OTPChallenge, ttl time.Duration) error

	// ConsumeIfMatch deletes the stored challenge if its code matches and it
	// has not expired at the given instant; the compare and the delete are a
	// single atomic step. Returns false when no live matching challenge exists.
	ConsumeIfMatch(ctx context.Context, subject string, purpose models.OTPPurpose, code string, now time.Time) (bool, error)
}
