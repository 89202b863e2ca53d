package adapters

import (
	"context"
	"testing"
	"time"

	"loadtracker/internal/features/usage/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisSubscriptionRepository(t *testing.T) {
	store, mr := newTestStore(t)
	repo := NewRedisSubscriptionRepository(store)
	repo.now = func() time.Time { return time.Date(2026, time.March, 3, 12, 0, 0, 0, time.UTC) }
	ctx := context.Background()

	t.Run("Unassigned", func(t *testing.T) {
		tier, err := repo.GetTier(ctx, "acme")
		require.NoError(t, err)
		assert.Empty(t, tier)
	})

	t.Run("SetAndGet", func(t *testing.T) {
		require.NoError(t, repo.SetTier(ctx, "acme", "professional"))

		tier, err := repo.GetTier(ctx, "acme")
		require.NoError(t, err)
		assert.Equal(t, "professional", tier)

		raw, err := mr.Get("subscription:acme")
		require.NoError(t, err)
		assert.JSONEq(t, `{"tier":"professional","assigned_at":"2026-03-03T12:00:00Z"}`, raw)
		assert.Zero(t, mr.TTL("subscription:acme"))
	})

	t.Run("Corrupt", func(t *testing.T) {
		require.NoError(t, mr.Set("subscription:globex", "not-json"))

		_, err := repo.GetTier(ctx, "globex")
		assert.Error(t, err)
	})
}

func TestStaticTierCatalog(t *testing.T) {
	catalog := NewStaticTierCatalog(domain.DefaultTiers())

	tier, ok := catalog.Tier("enterprise")
	require.True(t, ok)
	assert.Equal(t, "Enterprise", tier.DisplayName)

	_, ok = catalog.Tier("platinum")
	assert.False(t, ok)

	tiers := catalog.Tiers()
	require.Len(t, tiers, 3)
	tiers[0].Name = "changed"
	assert.Equal(t, "starter", catalog.Tiers()[0].Name)
}
