package ports

import (
	"context"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/trip"
)

// TripRepository defines the persistence contract for trip aggregates.
type TripRepository interface {
	// Add persists a new trip aggregate to storage.
	Add(ctx context.Context, trip *trip.Trip) error

	// Update persists changes to an existing trip aggregate.
	Update(ctx context.Context, trip *trip.Trip) error

	// UpdateWithStatus persists a trip whose status changed, guarded by a
	// compare-and-swap on the status the aggregate was loaded with. If the
	// stored row no longer carries prevStatus the write is rejected with a
	// ConcurrentUpdateError so a trip is never completed twice.
	UpdateWithStatus(ctx context.Context, trip *trip.Trip, prevStatus trip.Status) error

	// Get retrieves a trip aggregate by its unique identifier,
	// including its route samples.
	Get(ctx context.Context, id kernel.UUID) (*trip.Trip, error)

	// GetStartedByDriver retrieves the driver's trip in started status.
	// Returns a nil trip without error when the driver is not on a trip.
	// A driver never has more than one started trip.
	GetStartedByDriver(ctx context.Context, driverID kernel.UUID) (*trip.Trip, error)
}
