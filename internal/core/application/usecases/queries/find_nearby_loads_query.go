package queries

import (
	"errors"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/services"

	"freight/internal/pkg/errs"
)

var (
	ErrFindNearbyLoadsQueryIsNotConstructed = errors.New(
		"FindNearbyLoadsQuery must be created via NewFindNearbyLoadsQuery constructor",
	)
)

// FindNearbyLoadsQuery retrieves pending loads whose pickup point is
// close to the caller, nearest first. This is the driver-facing side of
// the marketplace: a driver looking for work searches around their
// current position.
type FindNearbyLoadsQuery struct {
	origin      kernel.GeoPoint
	maxDistance float64
	limit       int

	isConstructed bool
}

// NewFindNearbyLoadsQuery creates a proximity search for pending loads.
// A non-positive maxDistance falls back to the default load search
// radius; a non-positive limit falls back to the default match limit.
func NewFindNearbyLoadsQuery(origin kernel.GeoPoint, maxDistance float64, limit int) (FindNearbyLoadsQuery, error) {
	if err := origin.Validate(); err != nil {
		return FindNearbyLoadsQuery{}, errs.NewValueIsInvalidErrorWithCause("origin", err)
	}

	if maxDistance <= 0 {
		maxDistance = services.LoadSearchRadiusMeters
	}
	if limit <= 0 {
		limit = services.DefaultMatchLimit
	}

	return FindNearbyLoadsQuery{
		origin:        origin,
		maxDistance:   maxDistance,
		limit:         limit,
		isConstructed: true,
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrFindNearbyLoadsQueryIsNotConstructed if validation fails.
func (q FindNearbyLoadsQuery) Validate() error {
	if !q.isConstructed {
		return ErrFindNearbyLoadsQueryIsNotConstructed
	}
	return nil
}

// Origin returns the centre of the search.
func (q FindNearbyLoadsQuery) Origin() kernel.GeoPoint {
	return q.origin
}

// MaxDistance returns the search radius in meters.
func (q FindNearbyLoadsQuery) MaxDistance() float64 {
	return q.maxDistance
}

// Limit returns the maximum number of loads to return.
func (q FindNearbyLoadsQuery) Limit() int {
	return q.limit
}

// NearbyLoadResponse represents one pending load in the proximity read
// model. DistanceMeters is measured from the search origin to the
// pickup point.
type NearbyLoadResponse struct {
	ID             kernel.UUID
	Pickup         kernel.GeoPoint
	PickupCity     string
	DeliveryCity   string
	CargoType      string
	WeightTons     float64
	TotalPrice     float64
	PickupDate     time.Time
	DistanceMeters float64
}
