package ports

import (
	"context"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/load"
)

// LoadRepository defines the persistence contract for load aggregates.
type LoadRepository interface {
	// Add persists a new load aggregate to storage.
	Add(ctx context.Context, load *load.Load) error

	// Update persists changes to an existing load aggregate.
	Update(ctx context.Context, load *load.Load) error

	// UpdateWithStatus persists a load whose status changed, guarded by a
	// compare-and-swap on the status the aggregate was loaded with. If the
	// stored row no longer carries prevStatus the write is rejected with a
	// ConcurrentUpdateError so two racing transitions cannot both win.
	UpdateWithStatus(ctx context.Context, load *load.Load, prevStatus load.Status) error

	// Get retrieves a load aggregate by its unique identifier,
	// including its tracking history.
	Get(ctx context.Context, id kernel.UUID) (*load.Load, error)

	// GetFirstPending retrieves the oldest load still in pending status.
	// Returns a nil load without error when none is waiting.
	// Used by the assignment job to work the backlog in posting order.
	GetFirstPending(ctx context.Context) (*load.Load, error)

	// GetAllPending retrieves every pending load, oldest first.
	// Feeds the matching service with candidates.
	GetAllPending(ctx context.Context) ([]*load.Load, error)
}
