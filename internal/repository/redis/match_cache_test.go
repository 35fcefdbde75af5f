package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roomnest-app/roomnest-backend/internal/domain"
)

func newTestClient(t *testing.T) (*goredis.Client, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return client, mr
}

func sampleScores() []domain.CompatibilityScore {
	return []domain.CompatibilityScore{
		{UserID: 2, Score: 92, MatchingFactors: []string{"sleep_schedule"}, ConflictingFactors: []string{}},
		{UserID: 3, Score: 48, MatchingFactors: []string{}, ConflictingFactors: []string{"smoking_preference"}},
	}
}

func TestMatchCacheMiss(t *testing.T) {
	client, _ := newTestClient(t)
	cache := NewMatchCache(client)

	scores, ok, err := cache.Get(context.Background(), 1, 10)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, scores)
}

func TestMatchCacheRoundTrip(t *testing.T) {
	client, _ := newTestClient(t)
	cache := NewMatchCache(client)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, 1, 10, sampleScores(), time.Minute))

	got, ok, err := cache.Get(ctx, 1, 10)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, sampleScores(), got)
}

func TestMatchCacheExpires(t *testing.T) {
	client, mr := newTestClient(t)
	cache := NewMatchCache(client)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, 1, 10, sampleScores(), time.Minute))
	mr.FastForward(2 * time.Minute)

	_, ok, err := cache.Get(ctx, 1, 10)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestInvalidatePropertyClearsAllUsers(t *testing.T) {
	client, _ := newTestClient(t)
	cache := NewMatchCache(client)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, 1, 10, sampleScores(), time.Minute))
	require.NoError(t, cache.Set(ctx, 2, 10, sampleScores(), time.Minute))
	require.NoError(t, cache.Set(ctx, 1, 20, sampleScores(), time.Minute))

	require.NoError(t, cache.InvalidateProperty(ctx, 10))

	_, ok, err := cache.Get(ctx, 1, 10)
	require.NoError(t, err)
	assert.False(t, ok)

	_, ok, err = cache.Get(ctx, 2, 10)
	require.NoError(t, err)
	assert.False(t, ok)

	// The other property's entries survive.
	_, ok, err = cache.Get(ctx, 1, 20)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestTokenDenylist(t *testing.T) {
	client, mr := newTestClient(t)
	denylist := NewTokenDenylist(client)
	ctx := context.Background()

	revoked, err := denylist.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, denylist.Revoke(ctx, "jti-1", time.Hour))

	revoked, err = denylist.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.True(t, revoked)

	// The entry lapses with the token's own lifetime.
	mr.FastForward(2 * time.Hour)
	revoked, err = denylist.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, revoked)
}

func TestRevokeExpiredTokenIsNoop(t *testing.T) {
	client, _ := newTestClient(t)
	denylist := NewTokenDenylist(client)

	require.NoError(t, denylist.Revoke(context.Background(), "jti-2", -time.Minute))
}
