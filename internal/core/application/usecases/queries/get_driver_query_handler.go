package queries

import (
	"context"
	"database/sql"
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetDriverQueryHandler retrieves driver profiles from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetDriverQueryHandler struct {
	db *gorm.DB
}

// NewGetDriverQueryHandler creates a handler for driver profile queries.
// Requires a GORM database connection for query execution.
func NewGetDriverQueryHandler(db *gorm.DB) GetDriverQueryHandler {
	return GetDriverQueryHandler{db: db}
}

// Handle executes the query to retrieve one driver profile.
// Returns an ObjectNotFoundError when no driver carries the identifier.
func (h GetDriverQueryHandler) Handle(
	ctx context.Context,
	query GetDriverQuery,
) (GetDriverQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDriverQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			user_id,
			license_number,
			license_expiry,
			experience_years,
			vehicle_type,
			vehicle_registration_number,
			vehicle_capacity_tons,
			location_lon,
			location_lat,
			location_updated_at,
			status,
			active_load_id,
			earnings_total,
			earnings_pending_payouts
		FROM drivers
		WHERE id = ?
	`, query.DriverID().Bytes()).Row()

	var response GetDriverQueryResponse
	var id, userID uuid.UUID
	var activeLoadID uuid.NullUUID
	var lon, lat float64

	err := row.Scan(
		&id,
		&userID,
		&response.LicenseNumber,
		&response.LicenseExpiry,
		&response.ExperienceYears,
		&response.VehicleType,
		&response.RegistrationNo,
		&response.CapacityTons,
		&lon,
		&lat,
		&response.LocationUpdatedAt,
		&response.Status,
		&activeLoadID,
		&response.TotalEarnings,
		&response.PendingPayouts,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetDriverQueryResponse{}, errs.NewObjectNotFoundError("driver", query.DriverID().String())
		}
		return GetDriverQueryResponse{}, err
	}

	driverID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetDriverQueryResponse{}, err
	}
	response.ID = driverID

	ownerID, err := kernel.UUIDFromBytes(userID[:])
	if err != nil {
		return GetDriverQueryResponse{}, err
	}
	response.UserID = ownerID

	location, err := kernel.NewGeoPoint(lon, lat)
	if err != nil {
		return GetDriverQueryResponse{}, err
	}
	response.Location = location

	if activeLoadID.Valid {
		loadID, loadErr := kernel.UUIDFromBytes(activeLoadID.UUID[:])
		if loadErr != nil {
			return GetDriverQueryResponse{}, loadErr
		}
		response.ActiveLoadID = &loadID
	}

	response.LicenseExpiry = response.LicenseExpiry.UTC()
	response.LocationUpdatedAt = response.LocationUpdatedAt.UTC()

	return response, nil
}
