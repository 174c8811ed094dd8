package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/RehanWaris/vbudget/internal/pkg/constants"
	"github.com/RehanWaris/vbudget/internal/pkg/database"
	"github.com/RehanWaris/vbudget/internal/pkg/models"
)

// ChallengeRepo stores OTP challenges in Redis. The key encodes the
// (purpose, subject) pair, so a SET for the same pair overwrites the prior
// challenge and the key TTL bounds storage of expired codes.
type ChallengeRepo struct {
	redisClient *database.RedisClient
}

// NewChallengeRepo creates a new Redis-backed challenge repository
func NewChallengeRepo(redisClient *database.RedisClient) *ChallengeRepo {
	return &ChallengeRepo{
		redisClient: redisClient,
	}
}

// storedChallenge is the Redis value layout. Expiry is kept as a unix
// timestamp so the consume script can compare it numerically.
type storedChallenge struct {
	Subject       string `json:"subject"`
	Purpose       string `json:"purpose"`
	Code          string `json:"code"`
	IssuedAtUnix  int64  `json:"issued_at_unix"`
	ExpiresAtUnix int64  `json:"expires_at_unix"`
}

func challengeKey(purpose models.OTPPurpose, subject string) string {
	return fmt.Sprintf(constants.KeyOTPChallenge, purpose, subject)
}

// Put stores the challenge, replacing any live challenge for the same pair.
func (r *ChallengeRepo) Put(ctx context.Context, challenge *models.OTPChallenge, ttl time.Duration) error {
	value, err := json.Marshal(storedChallenge{
		Subject:       challenge.Subject,
		Purpose:       string(challenge.Purpose),
		Code:          challenge.Code,
		IssuedAtUnix:  challenge.IssuedAt.Unix(),
		ExpiresAtUnix: challenge.ExpiresAt.Unix(),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal challenge: %w", err)
	}

	key := challengeKey(challenge.Purpose, challenge.Subject)
	if err := r.redisClient.Set(ctx, key, value, ttl); err != nil {
		return fmt.Errorf("failed to store challenge: %w", err)
	}
	return nil
}

// consumeScript compares the code and expiry and deletes the key in one
// atomic step, so two concurrent consumers see exactly one success.
const consumeScript = `
local raw = redis.call('GET', KEYS[1])
if not raw then
	return 0
end
local challenge = cjson.decode(raw)
if tostring(challenge.code) ~= ARGV[1] then
	return 0
end
if tonumber(challenge.expires_at_unix) < tonumber(ARGV[2]) then
	return 0
end
redis.call('DEL', KEYS[1])
return 1
`

// ConsumeIfMatch atomically validates and deletes the stored challenge.
func (r *ChallengeRepo) ConsumeIfMatch(ctx context.Context, subject string, purpose models.OTPPurpose, code string, now time.Time) (bool, error) {
	key := challengeKey(purpose, subject)
	result, err := r.redisClient.Eval(ctx, consumeScript, []string{key}, code, now.Unix())
	if err != nil {
		return false, fmt.Errorf("failed to consume challenge: %w", err)
	}

	consumed, ok := result.(int64)
	if !ok {
		return false, fmt.Errorf("unexpected consume script result: %v", result)
	}
	return consumed == 1, nil
}
