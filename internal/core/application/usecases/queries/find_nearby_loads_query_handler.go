package queries

import (
	"context"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/services"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FindNearbyLoadsQueryHandler retrieves pending loads and ranks them by
// pickup-point proximity to the search origin.
type FindNearbyLoadsQueryHandler struct {
	db      *gorm.DB
	matcher services.Matcher
}

// NewFindNearbyLoadsQueryHandler creates a handler for nearby-load
// searches. Requires a GORM database connection for query execution.
func NewFindNearbyLoadsQueryHandler(db *gorm.DB, matcher services.Matcher) FindNearbyLoadsQueryHandler {
	return FindNearbyLoadsQueryHandler{db: db, matcher: matcher}
}

type nearbyLoadRow struct {
	id           kernel.UUID
	pickup       kernel.GeoPoint
	pickupCity   string
	deliveryCity string
	cargoType    string
	weightTons   float64
	totalPrice   float64
	pickupDate   time.Time
}

// Handle executes the proximity search. Returns pending loads whose
// pickup point lies strictly within the radius, nearest first,
// truncated to the query limit.
func (h FindNearbyLoadsQueryHandler) Handle(
	ctx context.Context,
	query FindNearbyLoadsQuery,
) ([]NearbyLoadResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			pickup_lon,
			pickup_lat,
			pickup_city,
			delivery_city,
			cargo_type,
			cargo_weight_tons,
			price_total,
			pickup_date
		FROM loads
		WHERE status = 'pending'
		ORDER BY created_at
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	byID := make(map[kernel.UUID]nearbyLoadRow)
	candidates := make([]services.Candidate, 0)

	for rows.Next() {
		var id uuid.UUID
		var lon, lat float64
		var row nearbyLoadRow

		err = rows.Scan(
			&id,
			&lon,
			&lat,
			&row.pickupCity,
			&row.deliveryCity,
			&row.cargoType,
			&row.weightTons,
			&row.totalPrice,
			&row.pickupDate,
		)
		if err != nil {
			return nil, err
		}

		loadID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		row.id = loadID

		pickup, pointErr := kernel.NewGeoPoint(lon, lat)
		if pointErr != nil {
			return nil, pointErr
		}
		row.pickup = pickup

		byID[loadID] = row
		candidates = append(candidates, services.Candidate{ID: loadID, Point: pickup})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	matches, err := h.matcher.Rank(query.Origin(), candidates, query.MaxDistance(), query.Limit())
	if err != nil {
		return nil, err
	}

	loads := make([]NearbyLoadResponse, 0, len(matches))
	for _, match := range matches {
		row := byID[match.ID]
		loads = append(loads, NearbyLoadResponse{
			ID:             row.id,
			Pickup:         row.pickup,
			PickupCity:     row.pickupCity,
			DeliveryCity:   row.deliveryCity,
			CargoType:      row.cargoType,
			WeightTons:     row.weightTons,
			TotalPrice:     row.totalPrice,
			PickupDate:     row.pickupDate.UTC(),
			DistanceMeters: match.DistanceMeters,
		})
	}

	return loads, nil
}
