package adapters

import (
	"context"
	"testing"
	"time"

	"loadtracker/internal/core/cache"
	"loadtracker/internal/features/usage/domain"

	"github.com/alicebob/miniredis/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var march = domain.Period{Year: 2026, Month: time.March}

func newTestStore(t *testing.T) (*cache.RedisAdapter, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)

	adapter, err := cache.NewRedisAdapter("redis://" + mr.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { adapter.Close() })

	return adapter, mr
}

func event(id string, r domain.Resource, qty string) domain.Event {
	return domain.Event{ID: id, Resource: r, Quantity: decimal.RequireFromString(qty)}
}

func TestRedisUsageRepository_ApplyAndSnapshot(t *testing.T) {
	store, mr := newTestStore(t)
	repo := NewRedisUsageRepository(store)
	ctx := context.Background()

	for _, e := range []domain.Event{
		event("e1", domain.ResourceSMS, "3"),
		event("e2", domain.ResourceSMS, "4"),
		event("e3", domain.ResourceStorageGB, "1.5"),
	} {
		applied, err := repo.Apply(ctx, "acme", march, e)
		require.NoError(t, err)
		assert.True(t, applied, e.ID)
	}

	key := "usage:counters:acme:2026-03"
	assert.True(t, mr.Exists(key))
	assert.Equal(t, RetentionTTL, mr.TTL(key))
	assert.Equal(t, "7000000", mr.HGet(key, "sms"))

	counters, err := repo.Snapshot(ctx, "acme", march)
	require.NoError(t, err)
	assert.True(t, counters.Get(domain.ResourceSMS).Equal(decimal.NewFromInt(7)))
	assert.True(t, counters.Get(domain.ResourceStorageGB).Equal(decimal.RequireFromString("1.5")))
	assert.Len(t, counters, 2)
}

func TestRedisUsageRepository_FractionalQuantitiesStayExact(t *testing.T) {
	store, _ := newTestStore(t)
	repo := NewRedisUsageRepository(store)
	ctx := context.Background()

	for i := 0; i < 10; i++ {
		_, err := repo.Apply(ctx, "acme", march, event(string(rune('a'+i)), domain.ResourceStorageGB, "0.1"))
		require.NoError(t, err)
	}

	counters, err := repo.Snapshot(ctx, "acme", march)
	require.NoError(t, err)
	assert.Equal(t, "1", counters.Get(domain.ResourceStorageGB).String())
}

func TestRedisUsageRepository_DuplicateEvent(t *testing.T) {
	store, mr := newTestStore(t)
	repo := NewRedisUsageRepository(store)
	ctx := context.Background()

	applied, err := repo.Apply(ctx, "acme", march, event("evt-1", domain.ResourceSMS, "2"))
	require.NoError(t, err)
	assert.True(t, applied)

	applied, err = repo.Apply(ctx, "acme", march, event("evt-1", domain.ResourceSMS, "2"))
	require.NoError(t, err)
	assert.False(t, applied)

	assert.Equal(t, "2000000", mr.HGet("usage:counters:acme:2026-03", "sms"))
	assert.Equal(t, RetentionTTL, mr.TTL("usage:events:acme:evt-1"))
}

func TestRedisUsageRepository_EventIDsAreScopedToAccount(t *testing.T) {
	store, _ := newTestStore(t)
	repo := NewRedisUsageRepository(store)
	ctx := context.Background()

	applied, err := repo.Apply(ctx, "acme", march, event("evt-1", domain.ResourceSMS, "1"))
	require.NoError(t, err)
	assert.True(t, applied)

	applied, err = repo.Apply(ctx, "globex", march, event("evt-1", domain.ResourceSMS, "1"))
	require.NoError(t, err)
	assert.True(t, applied)
}

func TestRedisUsageRepository_CountersAndEventsDoNotCollide(t *testing.T) {
	store, _ := newTestStore(t)
	repo := NewRedisUsageRepository(store)
	ctx := context.Background()
	april := domain.Period{Year: 2026, Month: time.April}

	// an account named "event" with period-shaped event ids
	applied, err := repo.Apply(ctx, "event", march, event("2026-04", domain.ResourceSMS, "1"))
	require.NoError(t, err)
	assert.True(t, applied)

	applied, err = repo.Apply(ctx, "event", april, event("2026-03", domain.ResourceSMS, "1"))
	require.NoError(t, err)
	assert.True(t, applied)

	for _, p := range []domain.Period{march, april} {
		counters, err := repo.Snapshot(ctx, "event", p)
		require.NoError(t, err)
		assert.True(t, counters.Get(domain.ResourceSMS).Equal(decimal.NewFromInt(1)), p.String())
	}
}

func TestRedisUsageRepository_RejectsColonInAccount(t *testing.T) {
	store, mr := newTestStore(t)
	repo := NewRedisUsageRepository(store)

	_, err := repo.Apply(context.Background(), "acme:2026-03", march, event("e1", domain.ResourceSMS, "1"))
	assert.ErrorIs(t, err, domain.ErrInvalidAccount)
	assert.Empty(t, mr.Keys())
}

func TestRedisUsageRepository_FailedApplyCanBeRetried(t *testing.T) {
	store, mr := newTestStore(t)
	repo := NewRedisUsageRepository(store)
	ctx := context.Background()
	key := "usage:counters:acme:2026-03"

	require.NoError(t, mr.Set(key, "corrupt"))

	_, err := repo.Apply(ctx, "acme", march, event("evt-9", domain.ResourceSMS, "5"))
	require.Error(t, err)
	assert.False(t, mr.Exists("usage:events:acme:evt-9"))

	mr.Del(key)

	applied, err := repo.Apply(ctx, "acme", march, event("evt-9", domain.ResourceSMS, "5"))
	require.NoError(t, err)
	assert.True(t, applied)

	counters, err := repo.Snapshot(ctx, "acme", march)
	require.NoError(t, err)
	assert.True(t, counters.Get(domain.ResourceSMS).Equal(decimal.NewFromInt(5)))
}

func TestRedisUsageRepository_SnapshotIsolation(t *testing.T) {
	store, _ := newTestStore(t)
	repo := NewRedisUsageRepository(store)
	ctx := context.Background()

	_, err := repo.Apply(ctx, "acme", march, event("e1", domain.ResourceEmail, "10"))
	require.NoError(t, err)

	april := domain.Period{Year: 2026, Month: time.April}
	counters, err := repo.Snapshot(ctx, "acme", april)
	require.NoError(t, err)
	assert.Empty(t, counters)

	counters, err = repo.Snapshot(ctx, "globex", march)
	require.NoError(t, err)
	assert.Empty(t, counters)
}

func TestRedisUsageRepository_SnapshotSkipsUnknownFields(t *testing.T) {
	store, mr := newTestStore(t)
	repo := NewRedisUsageRepository(store)

	mr.HSet("usage:counters:acme:2026-03", "fax", "9000000", "sms", "2000000")

	counters, err := repo.Snapshot(context.Background(), "acme", march)
	require.NoError(t, err)
	assert.Len(t, counters, 1)
	assert.True(t, counters.Get(domain.ResourceSMS).Equal(decimal.NewFromInt(2)))
}

func TestRedisUsageRepository_SnapshotCorruptValue(t *testing.T) {
	store, mr := newTestStore(t)
	repo := NewRedisUsageRepository(store)

	mr.HSet("usage:counters:acme:2026-03", "sms", "lots")

	_, err := repo.Snapshot(context.Background(), "acme", march)
	assert.Error(t, err)
}

func TestRedisUsageRepository_Reset(t *testing.T) {
	store, mr := newTestStore(t)
	repo := NewRedisUsageRepository(store)
	ctx := context.Background()

	_, err := repo.Apply(ctx, "acme", march, event("e1", domain.ResourceSMS, "1"))
	require.NoError(t, err)
	require.NoError(t, repo.Reset(ctx, "acme", march))
	assert.False(t, mr.Exists("usage:counters:acme:2026-03"))

	// a replay after reset is still a duplicate
	applied, err := repo.Apply(ctx, "acme", march, event("e1", domain.ResourceSMS, "1"))
	require.NoError(t, err)
	assert.False(t, applied)

	// resetting an empty period is fine
	assert.NoError(t, repo.Reset(ctx, "acme", march))
}

func TestRedisUsageRepository_ConnectionError(t *testing.T) {
	store, mr := newTestStore(t)
	repo := NewRedisUsageRepository(store)
	mr.Close()

	_, err := repo.Apply(context.Background(), "acme", march, event("e1", domain.ResourceSMS, "1"))
	assert.Error(t, err)
}
