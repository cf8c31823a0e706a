// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"
	"time"

	"freight/internal/core/domain/model/kernel"
)

var (
	ErrGetDriverQueryIsNotConstructed = errors.New(
		"GetDriverQuery must be created via NewGetDriverQuery constructor",
	)
)

// GetDriverQuery retrieves a single driver profile by its identifier.
// Returns the full read model: license, vehicle, position, availability,
// and the earnings ledger.
//
// Example:
//
//	query, err := NewGetDriverQuery(driverID)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewGetDriverQueryHandler(db)
//	profile, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve driver: %w", err)
//	}
//
//	fmt.Printf("Driver %s is %s at (%.4f, %.4f)\n",
//	    profile.LicenseNumber, profile.Status, profile.Location.Lon(), profile.Location.Lat())
type GetDriverQuery struct {
	driverID kernel.UUID

	isConstructed bool
}

// NewGetDriverQuery creates a query to retrieve one driver profile.
func NewGetDriverQuery(driverID kernel.UUID) (GetDriverQuery, error) {
	if err := driverID.Validate(); err != nil {
		return GetDriverQuery{}, err
	}

	return GetDriverQuery{
		driverID:      driverID,
		isConstructed: true,
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetDriverQueryIsNotConstructed if validation fails.
func (q GetDriverQuery) Validate() error {
	if !q.isConstructed {
		return ErrGetDriverQueryIsNotConstructed
	}
	return nil
}

// DriverID returns the driver to look up.
func (q GetDriverQuery) DriverID() kernel.UUID {
	return q.driverID
}

// GetDriverQueryResponse represents a driver profile in the read model.
type GetDriverQueryResponse struct {
	ID                kernel.UUID
	UserID            kernel.UUID
	LicenseNumber     string
	LicenseExpiry     time.Time
	ExperienceYears   int
	VehicleType       string
	RegistrationNo    string
	CapacityTons      float64
	Location          kernel.GeoPoint
	LocationUpdatedAt time.Time
	Status            string
	ActiveLoadID      *kernel.UUID
	TotalEarnings     float64
	PendingPayouts    float64
}
