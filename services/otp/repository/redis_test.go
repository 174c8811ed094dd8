package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RehanWaris/vbudget/internal/pkg/database"
	"github.com/RehanWaris/vbudget/internal/pkg/models"
)

func setupRepo(t *testing.T) (*ChallengeRepo, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := &database.RedisClient{
		Client: redis.NewClient(&redis.Options{Addr: mr.Addr()}),
	}
	return NewChallengeRepo(client), mr
}

func liveChallenge(subject string, purpose models.OTPPurpose, code string) *models.OTPChallenge {
	now := time.Now()
	return &models.OTPChallenge{
		Subject:   subject,
		Purpose:   purpose,
		Code:      code,
		IssuedAt:  now,
		ExpiresAt: now.Add(15 * time.Minute),
	}
}

func TestConsumeIfMatch_Success(t *testing.T) {
	repo, _ := setupRepo(t)
	ctx := context.Background()

	challenge := liveChallenge("user@agency.test", models.OTPPurposeSelfRegistration, "482913")
	require.NoError(t, repo.Put(ctx, challenge, 15*time.Minute))

	ok, err := repo.ConsumeIfMatch(ctx, "user@agency.test", models.OTPPurposeSelfRegistration, "482913", time.Now())

	require.NoError(t, err)
	assert.True(t, ok)
}

func TestConsumeIfMatch_SingleUse(t *testing.T) {
	repo, _ := setupRepo(t)
	ctx := context.Background()

	challenge := liveChallenge("user@agency.test", models.OTPPurposeSelfRegistration, "482913")
	require.NoError(t, repo.Put(ctx, challenge, 15*time.Minute))

	first, err := repo.ConsumeIfMatch(ctx, "user@agency.test", models.OTPPurposeSelfRegistration, "482913", time.Now())
	require.NoError(t, err)
	second, err := repo.ConsumeIfMatch(ctx, "user@agency.test", models.OTPPurposeSelfRegistration, "482913", time.Now())
	require.NoError(t, err)

	// The compare-and-delete is atomic: exactly one consumer wins.
	assert.True(t, first)
	assert.False(t, second)
}

func TestConsumeIfMatch_WrongCode(t *testing.T) {
	repo, _ := setupRepo(t)
	ctx := context.Background()

	challenge := liveChallenge("user@agency.test", models.OTPPurposeSelfRegistration, "482913")
	require.NoError(t, repo.Put(ctx, challenge, 15*time.Minute))

	ok, err := repo.ConsumeIfMatch(ctx, "user@agency.test", models.OTPPurposeSelfRegistration, "000000", time.Now())

	require.NoError(t, err)
	assert.False(t, ok)

	// A failed attempt must not consume the challenge.
	ok, err = repo.ConsumeIfMatch(ctx, "user@agency.test", models.OTPPurposeSelfRegistration, "482913", time.Now())
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestConsumeIfMatch_Expired(t *testing.T) {
	repo, _ := setupRepo(t)
	ctx := context.Background()

	challenge := liveChallenge("user@agency.test", models.OTPPurposeSelfRegistration, "482913")
	require.NoError(t, repo.Put(ctx, challenge, 15*time.Minute))

	// Validate against an instant past the embedded expiry.
	ok, err := repo.ConsumeIfMatch(ctx, "user@agency.test", models.OTPPurposeSelfRegistration, "482913",
		time.Now().Add(16*time.Minute))

	require.NoError(t, err)
	assert.False(t, ok)
}

func TestPut_ReplacesPriorChallenge(t *testing.T) {
	repo, _ := setupRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Put(ctx, liveChallenge("user@agency.test", models.OTPPurposeSelfRegistration, "111111"), 15*time.Minute))
	require.NoError(t, repo.Put(ctx, liveChallenge("user@agency.test", models.OTPPurposeSelfRegistration, "222222"), 15*time.Minute))

	ok, err := repo.ConsumeIfMatch(ctx, "user@agency.test", models.OTPPurposeSelfRegistration, "111111", time.Now())
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = repo.ConsumeIfMatch(ctx, "user@agency.test", models.OTPPurposeSelfRegistration, "222222", time.Now())
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestChallenges_AreScopedByPurpose(t *testing.T) {
	repo, _ := setupRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Put(ctx, liveChallenge("subject-1", models.OTPPurposeSelfRegistration, "111111"), 15*time.Minute))
	require.NoError(t, repo.Put(ctx, liveChallenge("subject-1", models.OTPPurposeVendorUnlock, "222222"), 15*time.Minute))

	ok, err := repo.ConsumeIfMatch(ctx, "subject-1", models.OTPPurposeVendorUnlock, "111111", time.Now())
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = repo.ConsumeIfMatch(ctx, "subject-1", models.OTPPurposeVendorUnlock, "222222", time.Now())
	require.NoError(t, err)
	assert.True(t, ok)
}
