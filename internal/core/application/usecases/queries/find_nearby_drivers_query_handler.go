package queries

import (
	"context"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/services"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FindNearbyDriversQueryHandler retrieves available drivers and ranks
// them by proximity to the search origin. Status filtering happens in
// SQL; distance ranking is delegated to the domain matcher so that the
// query and the assignment job share one notion of "nearby".
type FindNearbyDriversQueryHandler struct {
	db      *gorm.DB
	matcher services.Matcher
}

// NewFindNearbyDriversQueryHandler creates a handler for nearby-driver
// searches. Requires a GORM database connection for query execution.
func NewFindNearbyDriversQueryHandler(db *gorm.DB, matcher services.Matcher) FindNearbyDriversQueryHandler {
	return FindNearbyDriversQueryHandler{db: db, matcher: matcher}
}

type nearbyDriverRow struct {
	id           kernel.UUID
	point        kernel.GeoPoint
	vehicleType  string
	capacityTons float64
}

// Handle executes the proximity search. Returns available drivers
// strictly within the radius, nearest first, truncated to the query
// limit. No drivers in range yields an empty slice.
func (h FindNearbyDriversQueryHandler) Handle(
	ctx context.Context,
	query FindNearbyDriversQuery,
) ([]NearbyDriverResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			location_lon,
			location_lat,
			vehicle_type,
			vehicle_capacity_tons
		FROM drivers
		WHERE status = 'available'
		ORDER BY created_at
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	byID := make(map[kernel.UUID]nearbyDriverRow)
	candidates := make([]services.Candidate, 0)

	for rows.Next() {
		var id uuid.UUID
		var lon, lat float64
		var row nearbyDriverRow

		err = rows.Scan(
			&id,
			&lon,
			&lat,
			&row.vehicleType,
			&row.capacityTons,
		)
		if err != nil {
			return nil, err
		}

		driverID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		row.id = driverID

		point, pointErr := kernel.NewGeoPoint(lon, lat)
		if pointErr != nil {
			return nil, pointErr
		}
		row.point = point

		byID[driverID] = row
		candidates = append(candidates, services.Candidate{ID: driverID, Point: point})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	matches, err := h.matcher.Rank(query.Origin(), candidates, query.MaxDistance(), query.Limit())
	if err != nil {
		return nil, err
	}

	drivers := make([]NearbyDriverResponse, 0, len(matches))
	for _, match := range matches {
		row := byID[match.ID]
		drivers = append(drivers, NearbyDriverResponse{
			ID:             row.id,
			Location:       row.point,
			VehicleType:    row.vehicleType,
			CapacityTons:   row.capacityTons,
			DistanceMeters: match.DistanceMeters,
		})
	}

	return drivers, nil
}
