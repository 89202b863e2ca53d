package ports

import (
	"context"

	"loadtracker/internal/features/usage/domain"
)

// UsageRepository stores per-account usage counters.
// This is a Secondary Port (Driven Port).
type UsageRepository interface {
	// Apply adds event.Quantity to the resource counter of account for period, once per
	// (account, event.ID). It reports false without changing counters when the id was
	// already applied. A failed call leaves the id unclaimed, so it can be retried.
	Apply(ctx context.Context, account string, period domain.Period, event domain.Event) (bool, error)
	// Snapshot returns the counters of account for period. A period with no usage yields empty counters.
	Snapshot(ctx context.Context, account string, period domain.Period) (domain.Counters, error)
	// Reset clears the counters of account for period.
	Reset(ctx context.Context, account string, period domain.Period) error
}

// SubscriptionRepository stores the tier assigned to each account.
type SubscriptionRepository interface {
	// GetTier returns the assigned tier name, or "" when the account has none.
	GetTier(ctx context.Context, account string) (string, error)
	SetTier(ctx context.Context, account, tier string) error
}

// TierCatalog resolves tier names to plans.
type TierCatalog interface {
	Tier(name string) (domain.Tier, bool)
	Tiers() []domain.Tier
}

// UsageService defines the primary port for usage metering and billing.
type UsageService interface {
	Record(ctx context.Context, account string, event domain.Event) (*domain.Event, error)
	Bill(ctx context.Context, account string, period domain.Period) (*domain.Bill, error)
	AssignTier(ctx context.Context, account, tier string) error
	ResetPeriod(ctx context.Context, account string, period domain.Period) error
	Tiers() []domain.Tier
}
