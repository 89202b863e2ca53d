package adapters

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"loadtracker/internal/core/cache"
)

type subscription struct {
	Tier       string    `json:"tier"`
	AssignedAt time.Time `json:"assigned_at"`
}

// RedisSubscriptionRepository implements ports.SubscriptionRepository using the cache adapter.
type RedisSubscriptionRepository struct {
	cache cache.Cache
	now   func() time.Time
}

// NewRedisSubscriptionRepository creates a new RedisSubscriptionRepository.
func NewRedisSubscriptionRepository(c cache.Cache) *RedisSubscriptionRepository {
	return &RedisSubscriptionRepository{
		cache: c,
		now:   time.Now,
	}
}

func subscriptionKey(account string) string {
	return "subscription:" + account
}

// GetTier returns the tier assigned to account, or "" when none is stored.
func (r *RedisSubscriptionRepository) GetTier(ctx context.Context, account string) (string, error) {
	data, err := r.cache.Get(ctx, subscriptionKey(account))
	if errors.Is(err, cache.ErrNotFound) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get subscription: %w", err)
	}

	var sub subscription
	if err := json.Unmarshal(data, &sub); err != nil {
		return "", fmt.Errorf("failed to unmarshal subscription: %w", err)
	}
	return sub.Tier, nil
}

// SetTier stores the assignment without expiration.
func (r *RedisSubscriptionRepository) SetTier(ctx context.Context, account, tier string) error {
	data, err := json.Marshal(subscription{Tier: tier, AssignedAt: r.now().UTC()})
	if err != nil {
		return fmt.Errorf("failed to marshal subscription: %w", err)
	}

	if err := r.cache.Set(ctx, subscriptionKey(account), data, 0); err != nil {
		return fmt.Errorf("failed to save subscription: %w", err)
	}
	return nil
}
