package adapters

import (
	"context"
	"fmt"
	"time"

	"loadtracker/internal/core/cache"
	"loadtracker/internal/features/usage/domain"

	"github.com/shopspring/decimal"
)

// RetentionTTL is the expiry of period counters and event ids: one period past close.
const RetentionTTL = 62 * 24 * time.Hour

// CounterStore is the subset of the cache adapter the usage repository needs.
type CounterStore interface {
	cache.Cache
	cache.Counters
}

// RedisUsageRepository implements ports.UsageRepository on Redis hashes.
//
// Keys:
//
//	usage:counters:{account}:{YYYY-MM}  hash of resource -> quantity * 10^QuantityScale
//	usage:events:{account}:{event id}   applied-event marker
//
// Accounts never contain ':' (domain.ValidateAccount), so the two families cannot collide.
type RedisUsageRepository struct {
	store CounterStore
}

// NewRedisUsageRepository creates a new RedisUsageRepository.
func NewRedisUsageRepository(store CounterStore) *RedisUsageRepository {
	return &RedisUsageRepository{store: store}
}

func countersKey(account string, period domain.Period) string {
	return fmt.Sprintf("usage:counters:%s:%s", account, period)
}

func eventKey(account, id string) string {
	return fmt.Sprintf("usage:events:%s:%s", account, id)
}

// Apply increments the period hash and claims the event id in one atomic step.
func (r *RedisUsageRepository) Apply(ctx context.Context, account string, period domain.Period, event domain.Event) (bool, error) {
	if err := domain.ValidateAccount(account); err != nil {
		return false, err
	}

	applied, err := r.store.IncrementFieldOnce(ctx,
		eventKey(account, event.ID),
		countersKey(account, period),
		string(event.Resource),
		domain.ScaledQuantity(event.Quantity),
		RetentionTTL,
	)
	if err != nil {
		return false, fmt.Errorf("failed to apply usage event: %w", err)
	}
	return applied, nil
}

// Snapshot reads the period hash. Fields that are not metered resources are ignored.
func (r *RedisUsageRepository) Snapshot(ctx context.Context, account string, period domain.Period) (domain.Counters, error) {
	fields, err := r.store.Fields(ctx, countersKey(account, period))
	if err != nil {
		return nil, fmt.Errorf("failed to read usage: %w", err)
	}

	counters := make(domain.Counters, len(fields))
	for name, raw := range fields {
		res, err := domain.ParseResource(name)
		if err != nil {
			continue
		}
		v, err := decimal.NewFromString(raw)
		if err != nil {
			return nil, fmt.Errorf("corrupt counter %s=%q: %w", name, raw, err)
		}
		counters[res] = domain.QuantityFromScaled(v)
	}
	return counters, nil
}

// Reset deletes the period hash. Applied-event markers are kept, so replays of
// events from before the reset are still rejected.
func (r *RedisUsageRepository) Reset(ctx context.Context, account string, period domain.Period) error {
	if err := r.store.Delete(ctx, countersKey(account, period)); err != nil {
		return fmt.Errorf("failed to reset usage: %w", err)
	}
	return nil
}
