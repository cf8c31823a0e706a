package queries

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/services"

	"freight/internal/pkg/errs"
)

var (
	ErrFindNearbyDriversQueryIsNotConstructed = errors.New(
		"FindNearbyDriversQuery must be created via NewFindNearbyDriversQuery constructor",
	)
)

// FindNearbyDriversQuery retrieves available drivers close to a point,
// nearest first. Used by shippers scouting capacity and by dispatch
// tooling.
//
// Example:
//
//	origin, _ := kernel.NewGeoPoint(77.5946, 12.9716)
//	query, err := NewFindNearbyDriversQuery(origin, 0, 0)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewFindNearbyDriversQueryHandler(db, services.NewMatcher())
//	drivers, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to find nearby drivers: %w", err)
//	}
type FindNearbyDriversQuery struct {
	origin      kernel.GeoPoint
	maxDistance float64
	limit       int

	isConstructed bool
}

// NewFindNearbyDriversQuery creates a proximity search for available
// drivers. A non-positive maxDistance falls back to the default driver
// search radius; a non-positive limit falls back to the default match
// limit.
func NewFindNearbyDriversQuery(origin kernel.GeoPoint, maxDistance float64, limit int) (FindNearbyDriversQuery, error) {
	if err := origin.Validate(); err != nil {
		return FindNearbyDriversQuery{}, errs.NewValueIsInvalidErrorWithCause("origin", err)
	}

	if maxDistance <= 0 {
		maxDistance = services.DriverSearchRadiusMeters
	}
	if limit <= 0 {
		limit = services.DefaultMatchLimit
	}

	return FindNearbyDriversQuery{
		origin:        origin,
		maxDistance:   maxDistance,
		limit:         limit,
		isConstructed: true,
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrFindNearbyDriversQueryIsNotConstructed if validation fails.
func (q FindNearbyDriversQuery) Validate() error {
	if !q.isConstructed {
		return ErrFindNearbyDriversQueryIsNotConstructed
	}
	return nil
}

// Origin returns the centre of the search.
func (q FindNearbyDriversQuery) Origin() kernel.GeoPoint {
	return q.origin
}

// MaxDistance returns the search radius in meters.
func (q FindNearbyDriversQuery) MaxDistance() float64 {
	return q.maxDistance
}

// Limit returns the maximum number of drivers to return.
func (q FindNearbyDriversQuery) Limit() int {
	return q.limit
}

// NearbyDriverResponse represents one available driver in the proximity
// read model. DistanceMeters is the great-circle distance from the
// search origin.
type NearbyDriverResponse struct {
	ID             kernel.UUID
	Location       kernel.GeoPoint
	VehicleType    string
	CapacityTons   float64
	DistanceMeters float64
}
