// Package ports defines the outbound contracts of the freight core:
// repositories for the three aggregates, the unit of work that scopes
// them to one transaction, and the domain event publisher.
// These interfaces establish contracts between the domain layer and
// infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"freight/internal/core/domain/model/driver"
	"freight/internal/core/domain/model/kernel"
)

// DriverRepository defines the persistence contract for driver aggregates.
type DriverRepository interface {
	// Add persists a new driver aggregate to storage.
	// Fails if the user, license, or vehicle registration is already taken.
	Add(ctx context.Context, driver *driver.Driver) error

	// Update persists changes to an existing driver aggregate.
	Update(ctx context.Context, driver *driver.Driver) error

	// UpdateWithStatus persists a driver whose status changed, guarded by a
	// compare-and-swap on the status the aggregate was loaded with. If the
	// stored row no longer carries prevStatus the write is rejected with a
	// ConcurrentUpdateError so two racing transitions cannot both win.
	UpdateWithStatus(ctx context.Context, driver *driver.Driver, prevStatus driver.Status) error

	// Get retrieves a driver aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*driver.Driver, error)

	// GetByUserID retrieves the driver owned by a user identity, if any.
	// Returns a nil driver without error when the user has no profile yet.
	GetByUserID(ctx context.Context, userID kernel.UUID) (*driver.Driver, error)

	// ExistsWithProfile reports whether a driver already uses the user ID,
	// license number, or vehicle registration. Used to reject duplicate
	// onboarding before insert.
	ExistsWithProfile(ctx context.Context, userID kernel.UUID, licenseNumber string, registrationNumber string) (bool, error)

	// GetAllAvailable retrieves every driver in available status, oldest
	// first. Feeds the matching service with candidates.
	GetAllAvailable(ctx context.Context) ([]*driver.Driver, error)
}
