package ports

import (
	"context"

	"loadtracker/internal/features/loads/domain"
)

// LoadProvider defines the interface to the load persistence API.
// This is a Secondary Port (Driven Port).
type LoadProvider interface {
	// GetLoad retrieves a load by id. Returns domain.ErrLoadNotFound when it does not exist.
	GetLoad(ctx context.Context, loadID string) (*domain.Load, error)
	// UpdateStatus sets the load's status and returns the updated record.
	UpdateStatus(ctx context.Context, loadID string, status domain.Status) (*domain.Load, error)
	// HealthCheck verifies that the API is reachable and the credentials are accepted.
	HealthCheck(ctx context.Context) error
}

// LoadService defines the primary port for load status operations.
type LoadService interface {
	Describe(ctx context.Context, loadID string, view domain.View) (*domain.StatusView, error)
	Advance(ctx context.Context, loadID string, view domain.View) (*domain.StatusView, error)
	ForceAdvance(ctx context.Context, loadID string, confirmed bool) (*domain.StatusView, error)
}
