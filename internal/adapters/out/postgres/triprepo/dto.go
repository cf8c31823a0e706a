// Package triprepo provides data transfer objects and mapping functions for trip persistence.
// This package implements the repository pattern for the trip domain aggregate, handling
// the conversion between domain entities and database representations.
package triprepo

import (
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/trip"

	"github.com/google/uuid"
)

// TripDTO represents the database structure for persisting trip aggregates.
// Completion fields are nullable and stay empty while the trip is running;
// the recorded route lives in a child table.
type TripDTO struct {
	ID                 uuid.UUID        `gorm:"type:uuid;primaryKey"`
	DriverID           uuid.UUID        `gorm:"type:uuid;not null;index"`
	LoadID             uuid.UUID        `gorm:"type:uuid;not null;index"`
	Status             string           `gorm:"type:varchar(32);not null;index"`
	StartLon           float64          `gorm:"not null"`
	StartLat           float64          `gorm:"not null"`
	StartAddress       string           `gorm:"type:varchar(255)"`
	EndLon             *float64         `gorm:""`
	EndLat             *float64         `gorm:""`
	EndAddress         *string          `gorm:"type:varchar(255)"`
	StartTime          time.Time        `gorm:"not null"`
	EndTime            *time.Time       `gorm:""`
	DistanceKm         float64          `gorm:"not null;default:0"`
	EarningsBaseAmount *float64         `gorm:""`
	EarningsBonus      *float64         `gorm:""`
	EarningsTotal      *float64         `gorm:""`
	RouteSamples       []RouteSampleDTO `gorm:"foreignKey:TripID;constraint:OnDelete:CASCADE"`
	CreatedAt          time.Time        `gorm:"autoCreateTime"`
}

// TableName specifies the database table name for trip entities.
// Overrides GORM's default naming convention to use "trips" instead of "trip_dtos".
func (TripDTO) TableName() string {
	return "trips"
}

// RouteSampleDTO represents one recorded position along a trip's route.
type RouteSampleDTO struct {
	ID         uint      `gorm:"primaryKey;autoIncrement"`
	TripID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Lon        float64   `gorm:"not null"`
	Lat        float64   `gorm:"not null"`
	RecordedAt time.Time `gorm:"not null"`
	Status     string    `gorm:"type:varchar(32);not null"`
}

// TableName specifies the database table name for route sample rows.
func (RouteSampleDTO) TableName() string {
	return "trip_route_samples"
}

// fromDomain converts a trip domain aggregate to its database representation.
func fromDomain(t *trip.Trip) TripDTO {
	tripID := t.ID().Bytes()

	dto := TripDTO{
		ID:           tripID,
		DriverID:     t.DriverID().Bytes(),
		LoadID:       t.LoadID().Bytes(),
		Status:       t.Status().String(),
		StartLon:     t.Start().Point.Lon(),
		StartLat:     t.Start().Point.Lat(),
		StartAddress: t.Start().Address,
		StartTime:    t.StartTime(),
		EndTime:      t.EndTime(),
		DistanceKm:   t.DistanceKm(),
	}

	if t.End() != nil {
		endLon := t.End().Point.Lon()
		endLat := t.End().Point.Lat()
		endAddress := t.End().Address
		dto.EndLon = &endLon
		dto.EndLat = &endLat
		dto.EndAddress = &endAddress
	}

	if t.Earnings() != nil {
		base := t.Earnings().BaseAmount
		bonus := t.Earnings().BonusAmount
		total := t.Earnings().TotalAmount
		dto.EarningsBaseAmount = &base
		dto.EarningsBonus = &bonus
		dto.EarningsTotal = &total
	}

	samples := make([]RouteSampleDTO, 0, len(t.Route()))
	for _, sample := range t.Route() {
		samples = append(samples, RouteSampleDTO{
			TripID:     tripID,
			Lon:        sample.Point.Lon(),
			Lat:        sample.Point.Lat(),
			RecordedAt: sample.RecordedAt,
			Status:     sample.Status,
		})
	}
	dto.RouteSamples = samples

	return dto
}

// toDomain converts a database DTO to a trip domain aggregate.
func toDomain(dto TripDTO) (*trip.Trip, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	driverID, err := kernel.UUIDFromBytes(dto.DriverID[:])
	if err != nil {
		return nil, err
	}

	loadID, err := kernel.UUIDFromBytes(dto.LoadID[:])
	if err != nil {
		return nil, err
	}

	status, err := trip.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	startPoint, err := kernel.NewGeoPoint(dto.StartLon, dto.StartLat)
	if err != nil {
		return nil, err
	}
	start := trip.Stop{Point: startPoint, Address: dto.StartAddress}

	var end *trip.Stop
	if dto.EndLon != nil && dto.EndLat != nil {
		endPoint, endErr := kernel.NewGeoPoint(*dto.EndLon, *dto.EndLat)
		if endErr != nil {
			return nil, endErr
		}

		endStop := trip.Stop{Point: endPoint}
		if dto.EndAddress != nil {
			endStop.Address = *dto.EndAddress
		}
		end = &endStop
	}

	var earnings *trip.Earnings
	if dto.EarningsBaseAmount != nil && dto.EarningsBonus != nil && dto.EarningsTotal != nil {
		earnings = &trip.Earnings{
			BaseAmount:  *dto.EarningsBaseAmount,
			BonusAmount: *dto.EarningsBonus,
			TotalAmount: *dto.EarningsTotal,
		}
	}

	route := make([]trip.RouteSample, 0, len(dto.RouteSamples))
	for _, sampleDto := range dto.RouteSamples {
		point, pointErr := kernel.NewGeoPoint(sampleDto.Lon, sampleDto.Lat)
		if pointErr != nil {
			return nil, pointErr
		}

		route = append(route, trip.RouteSample{
			Point:      point,
			RecordedAt: sampleDto.RecordedAt,
			Status:     sampleDto.Status,
		})
	}

	return trip.RestoreTrip(
		id,
		driverID,
		loadID,
		status,
		start,
		end,
		dto.StartTime,
		dto.EndTime,
		dto.DistanceKm,
		earnings,
		route,
	)
}
