package service

import (
	"context"
	"fmt"
	"time"

	"loadtracker/internal/core/logger"
	"loadtracker/internal/features/usage/domain"
	"loadtracker/internal/features/usage/ports"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// BillingPolicy holds the pricing applied to every account.
type BillingPolicy struct {
	DefaultTier string
	Rates       domain.RateTable
	AdminFee    domain.AdminFee
}

// UsageServiceImpl implements ports.UsageService.
type UsageServiceImpl struct {
	usage   ports.UsageRepository
	subs    ports.SubscriptionRepository
	catalog ports.TierCatalog
	policy  BillingPolicy
	log     *zap.Logger
	now     func() time.Time
}

// NewUsageService creates a new UsageServiceImpl.
func NewUsageService(usage ports.UsageRepository, subs ports.SubscriptionRepository, catalog ports.TierCatalog, policy BillingPolicy) *UsageServiceImpl {
	return &UsageServiceImpl{
		usage:   usage,
		subs:    subs,
		catalog: catalog,
		policy:  policy,
		log:     logger.Named("usage"),
		now:     time.Now,
	}
}

// Record adds a usage event to the counters of the period it occurred in.
// Events are deduplicated per account by id; an event without an id gets a fresh one.
// A failed attempt does not consume the id.
func (s *UsageServiceImpl) Record(ctx context.Context, account string, event domain.Event) (*domain.Event, error) {
	if err := domain.ValidateAccount(account); err != nil {
		return nil, err
	}
	if err := event.Validate(); err != nil {
		return nil, err
	}

	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.OccurredAt.IsZero() {
		event.OccurredAt = s.now()
	}
	event.OccurredAt = event.OccurredAt.UTC()

	period := domain.PeriodOf(event.OccurredAt)
	applied, err := s.usage.Apply(ctx, account, period, event)
	if err != nil {
		return nil, fmt.Errorf("service: failed to record usage: %w", err)
	}
	if !applied {
		return nil, fmt.Errorf("%w: %s", domain.ErrDuplicateEvent, event.ID)
	}

	s.log.Debug("Usage recorded",
		zap.String("account", account),
		zap.String("event_id", event.ID),
		zap.String("resource", string(event.Resource)),
		zap.String("quantity", event.Quantity.String()),
		zap.Stringer("period", period),
	)

	return &event, nil
}

func (s *UsageServiceImpl) tierFor(ctx context.Context, account string) (domain.Tier, error) {
	name, err := s.subs.GetTier(ctx, account)
	if err != nil {
		return domain.Tier{}, fmt.Errorf("service: failed to get subscription: %w", err)
	}
	if name == "" {
		name = s.policy.DefaultTier
	}

	tier, ok := s.catalog.Tier(name)
	if !ok {
		return domain.Tier{}, fmt.Errorf("%w: %q", domain.ErrUnknownTier, name)
	}
	return tier, nil
}

// Bill prices the account's usage for period against its tier.
func (s *UsageServiceImpl) Bill(ctx context.Context, account string, period domain.Period) (*domain.Bill, error) {
	if err := domain.ValidateAccount(account); err != nil {
		return nil, err
	}

	tier, err := s.tierFor(ctx, account)
	if err != nil {
		return nil, err
	}

	counters, err := s.usage.Snapshot(ctx, account, period)
	if err != nil {
		return nil, fmt.Errorf("service: failed to read usage: %w", err)
	}

	bill := domain.Calculate(counters, tier, s.policy.Rates, s.policy.AdminFee)
	bill.Period = period

	if bill.OverageTotal.IsPositive() {
		s.log.Info("Overage billed",
			zap.String("account", account),
			zap.Stringer("period", period),
			zap.String("tier", tier.Name),
			zap.String("overage_total", bill.OverageTotal.StringFixed(2)),
		)
	}

	return &bill, nil
}

// AssignTier subscribes account to a tier from the catalog.
func (s *UsageServiceImpl) AssignTier(ctx context.Context, account, tier string) error {
	if err := domain.ValidateAccount(account); err != nil {
		return err
	}
	if _, ok := s.catalog.Tier(tier); !ok {
		return fmt.Errorf("%w: %q", domain.ErrUnknownTier, tier)
	}

	if err := s.subs.SetTier(ctx, account, tier); err != nil {
		return fmt.Errorf("service: failed to assign tier: %w", err)
	}

	s.log.Info("Tier assigned", zap.String("account", account), zap.String("tier", tier))
	return nil
}

// ResetPeriod clears the account's counters for period.
func (s *UsageServiceImpl) ResetPeriod(ctx context.Context, account string, period domain.Period) error {
	if err := domain.ValidateAccount(account); err != nil {
		return err
	}
	if err := s.usage.Reset(ctx, account, period); err != nil {
		return fmt.Errorf("service: failed to reset usage: %w", err)
	}

	s.log.Warn("Usage reset", zap.String("account", account), zap.Stringer("period", period))
	return nil
}

// Tiers lists the catalog.
func (s *UsageServiceImpl) Tiers() []domain.Tier {
	return s.catalog.Tiers()
}
