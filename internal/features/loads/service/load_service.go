package service

import (
	"context"
	"fmt"

	"loadtracker/internal/core/logger"
	"loadtracker/internal/features/loads/domain"
	"loadtracker/internal/features/loads/ports"

	"go.uber.org/zap"
)

// LoadServiceImpl implements ports.LoadService on top of a LoadProvider.
type LoadServiceImpl struct {
	provider ports.LoadProvider
	log      *zap.Logger
}

// NewLoadService creates a new LoadServiceImpl.
func NewLoadService(provider ports.LoadProvider) *LoadServiceImpl {
	return &LoadServiceImpl{
		provider: provider,
		log:      logger.Named("loads"),
	}
}

// Describe returns the label, next action and progress of a load as seen from view.
func (s *LoadServiceImpl) Describe(ctx context.Context, loadID string, view domain.View) (*domain.StatusView, error) {
	load, err := s.provider.GetLoad(ctx, loadID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get load: %w", err)
	}

	return describe(load, view), nil
}

// Advance moves a load one guided step forward for view.
func (s *LoadServiceImpl) Advance(ctx context.Context, loadID string, view domain.View) (*domain.StatusView, error) {
	load, err := s.provider.GetLoad(ctx, loadID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get load: %w", err)
	}

	action, ok := domain.NextAction(view, load.Status)
	if !ok {
		return nil, fmt.Errorf("%w: %q (%s view)", domain.ErrNoNextAction, load.Status, view)
	}

	updated, err := s.provider.UpdateStatus(ctx, loadID, action.Target)
	if err != nil {
		return nil, fmt.Errorf("service: failed to update load status: %w", err)
	}

	s.log.Info("Load advanced",
		zap.String("load_id", loadID),
		zap.String("view", string(view)),
		zap.String("from", string(load.Status)),
		zap.String("to", string(action.Target)),
	)

	return describe(updated, view), nil
}

// ForceAdvance moves a load along the administrative override path, bypassing the
// guided tables. The caller must have confirmed the override.
func (s *LoadServiceImpl) ForceAdvance(ctx context.Context, loadID string, confirmed bool) (*domain.StatusView, error) {
	if !confirmed {
		return nil, domain.ErrConfirmationRequired
	}

	load, err := s.provider.GetLoad(ctx, loadID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get load: %w", err)
	}

	next, ok := domain.ForceNext(load.Status)
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrNoNextStage, load.Status)
	}

	updated, err := s.provider.UpdateStatus(ctx, loadID, next)
	if err != nil {
		return nil, fmt.Errorf("service: failed to update load status: %w", err)
	}

	s.log.Warn("Load force-advanced",
		zap.String("load_id", loadID),
		zap.String("from", string(load.Status)),
		zap.String("to", string(next)),
	)

	return describe(updated, domain.ViewDispatcher), nil
}

func describe(load *domain.Load, view domain.View) *domain.StatusView {
	sv := domain.Describe(view, load.Status)
	sv.LoadID = load.ID
	return &sv
}
