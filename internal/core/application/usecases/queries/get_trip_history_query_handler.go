package queries

import (
	"context"
	"database/sql"
	"time"

	"freight/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetTripHistoryQueryHandler retrieves pages of one driver's trips from
// the database, most recent first.
type GetTripHistoryQueryHandler struct {
	db *gorm.DB
}

// NewGetTripHistoryQueryHandler creates a handler for trip history
// queries. Requires a GORM database connection for query execution.
func NewGetTripHistoryQueryHandler(db *gorm.DB) GetTripHistoryQueryHandler {
	return GetTripHistoryQueryHandler{db: db}
}

// Handle executes the query to retrieve one page of the driver's trips.
// Results are sorted by start time descending; Total and Pages describe
// the driver's full history, not just the returned page.
func (h GetTripHistoryQueryHandler) Handle(
	ctx context.Context,
	query GetTripHistoryQuery,
) (GetTripHistoryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetTripHistoryQueryResponse{}, err
	}

	var total int64
	err := h.db.WithContext(ctx).Raw(
		"SELECT COUNT(*) FROM trips WHERE driver_id = ?", query.DriverID().String(),
	).Row().Scan(&total)
	if err != nil {
		return GetTripHistoryQueryResponse{}, err
	}

	trips := make([]TripSummary, 0)

	offset := (query.Page() - 1) * query.Limit()
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			load_id,
			status,
			start_address,
			end_address,
			start_time,
			end_time,
			distance_km,
			earnings_total
		FROM trips
		WHERE driver_id = ?
		ORDER BY start_time DESC
		LIMIT ? OFFSET ?
	`, query.DriverID().String(), query.Limit(), offset).Rows()
	if err != nil {
		return GetTripHistoryQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var summary TripSummary
		var id, loadID uuid.UUID
		var endAddress sql.NullString
		var startTime time.Time
		var endTime sql.NullTime
		var earnings sql.NullFloat64

		err = rows.Scan(
			&id,
			&loadID,
			&summary.Status,
			&summary.StartAddress,
			&endAddress,
			&startTime,
			&endTime,
			&summary.DistanceKm,
			&earnings,
		)
		if err != nil {
			return GetTripHistoryQueryResponse{}, err
		}

		tripID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return GetTripHistoryQueryResponse{}, idErr
		}
		summary.ID = tripID

		haulID, idErr := kernel.UUIDFromBytes(loadID[:])
		if idErr != nil {
			return GetTripHistoryQueryResponse{}, idErr
		}
		summary.LoadID = haulID

		summary.StartTime = startTime.UTC()
		if endAddress.Valid {
			summary.EndAddress = &endAddress.String
		}
		if endTime.Valid {
			ended := endTime.Time.UTC()
			summary.EndTime = &ended
		}
		if earnings.Valid {
			summary.Earnings = &earnings.Float64
		}

		trips = append(trips, summary)
	}

	if err = rows.Err(); err != nil {
		return GetTripHistoryQueryResponse{}, err
	}

	pages := int((total + int64(query.Limit()) - 1) / int64(query.Limit()))

	return GetTripHistoryQueryResponse{
		Trips: trips,
		Total: total,
		Page:  query.Page(),
		Pages: pages,
	}, nil
}
