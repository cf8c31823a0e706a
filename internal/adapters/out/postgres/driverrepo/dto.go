// Package driverrepo provides data transfer objects and mapping functions for driver persistence.
// This package implements the repository pattern for the driver domain aggregate, handling
// the conversion between domain entities and database representations.
package driverrepo

import (
	"time"

	"freight/internal/core/domain/model/driver"
	"freight/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DriverDTO represents the database structure for persisting driver aggregates.
// The vehicle, location, and earnings value objects are flattened into the
// drivers table with column prefixes.
type DriverDTO struct {
	ID                uuid.UUID   `gorm:"type:uuid;primaryKey"`
	UserID            uuid.UUID   `gorm:"type:uuid;not null;uniqueIndex"`
	LicenseNumber     string      `gorm:"type:varchar(64);not null;uniqueIndex"`
	LicenseExpiry     time.Time   `gorm:"not null"`
	ExperienceYears   int         `gorm:"type:int;not null"`
	Vehicle           VehicleDTO  `gorm:"embedded;embeddedPrefix:vehicle_"`
	Location          GeoPointDTO `gorm:"embedded;embeddedPrefix:location_"`
	LocationUpdatedAt time.Time   `gorm:"not null"`
	Status            string      `gorm:"type:varchar(32);not null;index"`
	ActiveLoadID      *uuid.UUID  `gorm:"type:uuid;index"`
	Earnings          EarningsDTO `gorm:"embedded;embeddedPrefix:earnings_"`
	CreatedAt         time.Time   `gorm:"autoCreateTime"`
}

// TableName specifies the database table name for driver entities.
// Overrides GORM's default naming convention to use "drivers" instead of "driver_dtos".
func (DriverDTO) TableName() string {
	return "drivers"
}

// VehicleDTO represents the embedded vehicle columns within the drivers table.
type VehicleDTO struct {
	Type               string  `gorm:"type:varchar(32);not null"`
	RegistrationNumber string  `gorm:"type:varchar(32);not null;uniqueIndex:idx_drivers_vehicle_registration"`
	CapacityTons       float64 `gorm:"not null"`
}

// GeoPointDTO represents embedded geographic coordinates.
type GeoPointDTO struct {
	Lon float64 `gorm:"not null"`
	Lat float64 `gorm:"not null"`
}

// EarningsDTO represents the embedded earnings ledger columns within the drivers table.
// The last payout is optional and stored as nullable columns.
type EarningsDTO struct {
	Total            float64    `gorm:"not null;default:0"`
	PendingPayouts   float64    `gorm:"not null;default:0"`
	LastPayoutAmount *float64   `gorm:""`
	LastPayoutDate   *time.Time `gorm:""`
}

// fromDomain converts a driver domain aggregate to its database representation.
func fromDomain(d *driver.Driver) DriverDTO {
	var activeLoadID *uuid.UUID
	if d.ActiveLoadID() != nil {
		raw := d.ActiveLoadID().Bytes()
		activeLoadID = &raw
	}

	earnings := EarningsDTO{
		Total:          d.Earnings().Total,
		PendingPayouts: d.Earnings().PendingPayouts,
	}
	if d.Earnings().LastPayout != nil {
		amount := d.Earnings().LastPayout.Amount
		date := d.Earnings().LastPayout.Date
		earnings.LastPayoutAmount = &amount
		earnings.LastPayoutDate = &date
	}

	return DriverDTO{
		ID:              d.ID().Bytes(),
		UserID:          d.UserID().Bytes(),
		LicenseNumber:   d.LicenseNumber(),
		LicenseExpiry:   d.LicenseExpiry(),
		ExperienceYears: d.ExperienceYears(),
		Vehicle: VehicleDTO{
			Type:               d.Vehicle().Type,
			RegistrationNumber: d.Vehicle().RegistrationNumber,
			CapacityTons:       d.Vehicle().CapacityTons,
		},
		Location: GeoPointDTO{
			Lon: d.Location().Lon(),
			Lat: d.Location().Lat(),
		},
		LocationUpdatedAt: d.LocationUpdatedAt(),
		Status:            d.Status().String(),
		ActiveLoadID:      activeLoadID,
		Earnings:          earnings,
	}
}

// toDomain converts a database DTO to a driver domain aggregate.
func toDomain(dto DriverDTO) (*driver.Driver, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	location, err := kernel.NewGeoPoint(dto.Location.Lon, dto.Location.Lat)
	if err != nil {
		return nil, err
	}

	status, err := driver.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	var activeLoadID *kernel.UUID
	if dto.ActiveLoadID != nil {
		loadID, loadErr := kernel.UUIDFromBytes((*dto.ActiveLoadID)[:])
		if loadErr != nil {
			return nil, loadErr
		}
		activeLoadID = &loadID
	}

	earnings := driver.Earnings{
		Total:          dto.Earnings.Total,
		PendingPayouts: dto.Earnings.PendingPayouts,
	}
	if dto.Earnings.LastPayoutAmount != nil && dto.Earnings.LastPayoutDate != nil {
		earnings.LastPayout = &driver.Payout{
			Amount: *dto.Earnings.LastPayoutAmount,
			Date:   *dto.Earnings.LastPayoutDate,
		}
	}

	return driver.RestoreDriver(
		id,
		userID,
		dto.LicenseNumber,
		dto.LicenseExpiry,
		dto.ExperienceYears,
		driver.Vehicle{
			Type:               dto.Vehicle.Type,
			RegistrationNumber: dto.Vehicle.RegistrationNumber,
			CapacityTons:       dto.Vehicle.CapacityTons,
		},
		location,
		dto.LocationUpdatedAt,
		status,
		activeLoadID,
		earnings,
	)
}
