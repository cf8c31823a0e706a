package queries

import (
	"context"
	"time"

	"freight/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetLoadsQueryHandler retrieves pages of loads from the database.
// Supports optional status and shipper filters for marketplace listings.
//
// Example:
//
//	handler := NewGetLoadsQueryHandler(db)
//	query, _ := NewGetLoadsQuery(nil, nil, 1, 20)
//
//	page, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get loads: %v", err)
//	    return err
//	}
//
//	fmt.Printf("%d loads on this page\n", len(page.Loads))
type GetLoadsQueryHandler struct {
	db *gorm.DB
}

// NewGetLoadsQueryHandler creates a handler for paginated load queries.
// Requires a GORM database connection for query execution.
func NewGetLoadsQueryHandler(db *gorm.DB) GetLoadsQueryHandler {
	return GetLoadsQueryHandler{db: db}
}

// Handle executes the query to retrieve one page of loads.
// Results are sorted newest first; Total and Pages describe the full
// filtered result set, not just the returned page.
func (h GetLoadsQueryHandler) Handle(
	ctx context.Context,
	query GetLoadsQuery,
) (GetLoadsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetLoadsQueryResponse{}, err
	}

	where := "1 = 1"
	args := make([]any, 0, 2)
	if query.Status() != nil {
		where += " AND status = ?"
		args = append(args, query.Status().String())
	}
	if query.ShipperID() != nil {
		where += " AND shipper_id = ?"
		args = append(args, query.ShipperID().String())
	}

	var total int64
	err := h.db.WithContext(ctx).Raw(
		"SELECT COUNT(*) FROM loads WHERE "+where, args...,
	).Row().Scan(&total)
	if err != nil {
		return GetLoadsQueryResponse{}, err
	}

	loads := make([]LoadSummary, 0)

	offset := (query.Page() - 1) * query.Limit()
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			shipper_id,
			driver_id,
			status,
			pickup_city,
			delivery_city,
			pickup_lon,
			pickup_lat,
			delivery_lon,
			delivery_lat,
			cargo_type,
			cargo_weight_tons,
			price_total,
			pickup_date,
			created_at
		FROM loads
		WHERE `+where+`
		ORDER BY created_at DESC
		LIMIT ? OFFSET ?
	`, append(args, query.Limit(), offset)...).Rows()
	if err != nil {
		return GetLoadsQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var summary LoadSummary
		var id, shipperID uuid.UUID
		var driverID uuid.NullUUID
		var pickupLon, pickupLat, deliveryLon, deliveryLat float64
		var pickupDate, createdAt time.Time

		err = rows.Scan(
			&id,
			&shipperID,
			&driverID,
			&summary.Status,
			&summary.PickupCity,
			&summary.DeliveryCity,
			&pickupLon,
			&pickupLat,
			&deliveryLon,
			&deliveryLat,
			&summary.CargoType,
			&summary.WeightTons,
			&summary.TotalPrice,
			&pickupDate,
			&createdAt,
		)
		if err != nil {
			return GetLoadsQueryResponse{}, err
		}

		loadID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return GetLoadsQueryResponse{}, idErr
		}
		summary.ID = loadID

		shipper, idErr := kernel.UUIDFromBytes(shipperID[:])
		if idErr != nil {
			return GetLoadsQueryResponse{}, idErr
		}
		summary.ShipperID = shipper

		if driverID.Valid {
			driver, idErr := kernel.UUIDFromBytes(driverID.UUID[:])
			if idErr != nil {
				return GetLoadsQueryResponse{}, idErr
			}
			summary.DriverID = &driver
		}

		pickup, pointErr := kernel.NewGeoPoint(pickupLon, pickupLat)
		if pointErr != nil {
			return GetLoadsQueryResponse{}, pointErr
		}
		summary.Pickup = pickup

		delivery, pointErr := kernel.NewGeoPoint(deliveryLon, deliveryLat)
		if pointErr != nil {
			return GetLoadsQueryResponse{}, pointErr
		}
		summary.Delivery = delivery

		summary.PickupDate = pickupDate.UTC()
		summary.CreatedAt = createdAt.UTC()
		loads = append(loads, summary)
	}

	if err = rows.Err(); err != nil {
		return GetLoadsQueryResponse{}, err
	}

	pages := int((total + int64(query.Limit()) - 1) / int64(query.Limit()))

	return GetLoadsQueryResponse{
		Loads: loads,
		Total: total,
		Page:  query.Page(),
		Pages: pages,
	}, nil
}
