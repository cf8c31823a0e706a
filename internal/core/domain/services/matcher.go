// Package services contains domain services: stateless operations that
// span aggregates or operate on collections of them.
package services

import (
	"sort"

	"freight/internal/core/domain/model/kernel"
)

// Default matching parameters. Callers may override per call.
const (
	// DriverSearchRadiusMeters is the default radius for nearby-driver search.
	DriverSearchRadiusMeters = 50_000
	// LoadSearchRadiusMeters is the default radius for nearby-load search.
	LoadSearchRadiusMeters = 100_000
	// DefaultMatchLimit caps how many candidates a match returns.
	DefaultMatchLimit = 20
)

// Candidate is a match input: an entity reduced to its identity and the
// location relevant for matching (a driver's current position, a load's
// pickup point).
type Candidate struct {
	ID    kernel.UUID
	Point kernel.GeoPoint
}

// Match is a ranked match output: a candidate plus its great-circle
// distance from the search origin.
type Match struct {
	ID             kernel.UUID
	DistanceMeters float64
}

// Matcher is a domain service that ranks candidates by proximity to an
// origin point.
//
// Business rules:
//   - Only candidates strictly within the radius are returned
//   - Results are ordered by ascending great-circle distance
//   - Ties keep the candidates' input order (stable, deterministic)
//   - Results are truncated to the limit
//   - No candidates in range yields an empty slice, not an error
//
// Status filtering (available drivers, pending loads) is the caller's
// concern: repositories hand the Matcher pre-filtered candidates.
type Matcher struct{}

// NewMatcher creates a new Matcher instance.
func NewMatcher() Matcher {
	return Matcher{}
}

// Rank returns the candidates within maxDistanceMeters of origin, closest
// first, truncated to limit. A non-positive limit falls back to
// DefaultMatchLimit.
func (m Matcher) Rank(
	origin kernel.GeoPoint,
	candidates []Candidate,
	maxDistanceMeters float64,
	limit int,
) ([]Match, error) {
	if err := origin.Validate(); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = DefaultMatchLimit
	}

	matches := make([]Match, 0, len(candidates))
	for _, c := range candidates {
		distance, err := origin.DistanceMeters(c.Point)
		if err != nil {
			return nil, err
		}

		if distance > maxDistanceMeters {
			continue
		}

		matches = append(matches, Match{ID: c.ID, DistanceMeters: distance})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].DistanceMeters < matches[j].DistanceMeters
	})

	if len(matches) > limit {
		matches = matches[:limit]
	}

	return matches, nil
}
