// Package loadrepo provides data transfer objects and mapping functions for load persistence.
// This package implements the repository pattern for the load domain aggregate, handling
// the conversion between domain entities and database representations.
package loadrepo

import (
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/load"

	"github.com/google/uuid"
)

// LoadDTO represents the database structure for persisting load aggregates.
// Endpoint, cargo, pricing, and schedule value objects are flattened into
// the loads table; the tracking history lives in a child table.
type LoadDTO struct {
	ID                uuid.UUID          `gorm:"type:uuid;primaryKey"`
	ShipperID         uuid.UUID          `gorm:"type:uuid;not null;index"`
	DriverID          *uuid.UUID         `gorm:"type:uuid;index"`
	Status            string             `gorm:"type:varchar(32);not null;index"`
	Pickup            LocationDTO        `gorm:"embedded;embeddedPrefix:pickup_"`
	Delivery          LocationDTO        `gorm:"embedded;embeddedPrefix:delivery_"`
	Cargo             CargoDTO           `gorm:"embedded;embeddedPrefix:cargo_"`
	Pricing           PricingDTO         `gorm:"embedded;embeddedPrefix:price_"`
	PickupDate        time.Time          `gorm:"not null"`
	DeliveryDate      time.Time          `gorm:"not null"`
	FlexibleTiming    bool               `gorm:"not null;default:false"`
	TrackingLon       *float64           `gorm:""`
	TrackingLat       *float64           `gorm:""`
	TrackingUpdatedAt time.Time          `gorm:""`
	TrackingEntries   []TrackingEntryDTO `gorm:"foreignKey:LoadID;constraint:OnDelete:CASCADE"`
	CreatedAt         time.Time          `gorm:"autoCreateTime"`
}

// TableName specifies the database table name for load entities.
// Overrides GORM's default naming convention to use "loads" instead of "load_dtos".
func (LoadDTO) TableName() string {
	return "loads"
}

// LocationDTO represents an embedded haul endpoint: coordinates plus a
// postal address.
type LocationDTO struct {
	Lon     float64 `gorm:"not null"`
	Lat     float64 `gorm:"not null"`
	Street  string  `gorm:"type:varchar(255)"`
	City    string  `gorm:"type:varchar(128)"`
	State   string  `gorm:"type:varchar(128)"`
	Pincode string  `gorm:"type:varchar(16)"`
}

// CargoDTO represents the embedded cargo columns within the loads table.
type CargoDTO struct {
	Type        string  `gorm:"type:varchar(32);not null"`
	WeightTons  float64 `gorm:"not null"`
	VolumeCubic float64 `gorm:"not null"`
	Description string  `gorm:"type:varchar(512)"`
}

// PricingDTO represents the embedded price breakdown within the loads table.
type PricingDTO struct {
	Base       float64 `gorm:"not null"`
	Commission float64 `gorm:"not null"`
	Total      float64 `gorm:"not null"`
}

// TrackingEntryDTO represents one row of a load's tracking history.
type TrackingEntryDTO struct {
	ID         uint      `gorm:"primaryKey;autoIncrement"`
	LoadID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Lon        float64   `gorm:"not null"`
	Lat        float64   `gorm:"not null"`
	RecordedAt time.Time `gorm:"not null"`
	Status     string    `gorm:"type:varchar(32);not null"`
}

// TableName specifies the database table name for tracking history rows.
func (TrackingEntryDTO) TableName() string {
	return "load_tracking_entries"
}

// fromDomain converts a load domain aggregate to its database representation.
func fromDomain(l *load.Load) LoadDTO {
	loadID := l.ID().Bytes()

	var driverID *uuid.UUID
	if l.DriverID() != nil {
		raw := l.DriverID().Bytes()
		driverID = &raw
	}

	var trackingLon, trackingLat *float64
	if l.TrackingPoint() != nil {
		lon := l.TrackingPoint().Lon()
		lat := l.TrackingPoint().Lat()
		trackingLon = &lon
		trackingLat = &lat
	}

	entries := make([]TrackingEntryDTO, 0, len(l.TrackingHistory()))
	for _, entry := range l.TrackingHistory() {
		entries = append(entries, TrackingEntryDTO{
			LoadID:     loadID,
			Lon:        entry.Point.Lon(),
			Lat:        entry.Point.Lat(),
			RecordedAt: entry.RecordedAt,
			Status:     entry.Status.String(),
		})
	}

	return LoadDTO{
		ID:        loadID,
		ShipperID: l.ShipperID().Bytes(),
		DriverID:  driverID,
		Status:    l.Status().String(),
		Pickup:    locationFromDomain(l.Pickup()),
		Delivery:  locationFromDomain(l.Delivery()),
		Cargo: CargoDTO{
			Type:        l.Cargo().Type,
			WeightTons:  l.Cargo().WeightTons,
			VolumeCubic: l.Cargo().VolumeCubic,
			Description: l.Cargo().Description,
		},
		Pricing: PricingDTO{
			Base:       l.Pricing().BasePrice,
			Commission: l.Pricing().Commission,
			Total:      l.Pricing().TotalPrice,
		},
		PickupDate:        l.Schedule().PickupDate,
		DeliveryDate:      l.Schedule().DeliveryDate,
		FlexibleTiming:    l.Schedule().FlexibleTiming,
		TrackingLon:       trackingLon,
		TrackingLat:       trackingLat,
		TrackingUpdatedAt: l.TrackingUpdatedAt(),
		TrackingEntries:   entries,
	}
}

func locationFromDomain(location load.Location) LocationDTO {
	return LocationDTO{
		Lon:     location.Point.Lon(),
		Lat:     location.Point.Lat(),
		Street:  location.Address.Street,
		City:    location.Address.City,
		State:   location.Address.State,
		Pincode: location.Address.Pincode,
	}
}

// toDomain converts a database DTO to a load domain aggregate.
func toDomain(dto LoadDTO) (*load.Load, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	shipperID, err := kernel.UUIDFromBytes(dto.ShipperID[:])
	if err != nil {
		return nil, err
	}

	var driverID *kernel.UUID
	if dto.DriverID != nil {
		drvID, drvErr := kernel.UUIDFromBytes((*dto.DriverID)[:])
		if drvErr != nil {
			return nil, drvErr
		}
		driverID = &drvID
	}

	status, err := load.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	pickup, err := locationToDomain(dto.Pickup)
	if err != nil {
		return nil, err
	}

	delivery, err := locationToDomain(dto.Delivery)
	if err != nil {
		return nil, err
	}

	var trackingPoint *kernel.GeoPoint
	if dto.TrackingLon != nil && dto.TrackingLat != nil {
		point, pointErr := kernel.NewGeoPoint(*dto.TrackingLon, *dto.TrackingLat)
		if pointErr != nil {
			return nil, pointErr
		}
		trackingPoint = &point
	}

	history := make([]load.TrackingEntry, 0, len(dto.TrackingEntries))
	for _, entryDto := range dto.TrackingEntries {
		entry, entryErr := trackingEntryToDomain(entryDto)
		if entryErr != nil {
			return nil, entryErr
		}
		history = append(history, entry)
	}

	return load.RestoreLoad(
		id,
		shipperID,
		pickup,
		delivery,
		load.Cargo{
			Type:        dto.Cargo.Type,
			WeightTons:  dto.Cargo.WeightTons,
			VolumeCubic: dto.Cargo.VolumeCubic,
			Description: dto.Cargo.Description,
		},
		load.Pricing{
			BasePrice:  dto.Pricing.Base,
			Commission: dto.Pricing.Commission,
			TotalPrice: dto.Pricing.Total,
		},
		load.Schedule{
			PickupDate:     dto.PickupDate,
			DeliveryDate:   dto.DeliveryDate,
			FlexibleTiming: dto.FlexibleTiming,
		},
		status,
		driverID,
		trackingPoint,
		dto.TrackingUpdatedAt,
		history,
	)
}

func locationToDomain(dto LocationDTO) (load.Location, error) {
	point, err := kernel.NewGeoPoint(dto.Lon, dto.Lat)
	if err != nil {
		return load.Location{}, err
	}

	return load.Location{
		Point: point,
		Address: kernel.Address{
			Street:  dto.Street,
			City:    dto.City,
			State:   dto.State,
			Pincode: dto.Pincode,
		},
	}, nil
}

func trackingEntryToDomain(dto TrackingEntryDTO) (load.TrackingEntry, error) {
	point, err := kernel.NewGeoPoint(dto.Lon, dto.Lat)
	if err != nil {
		return load.TrackingEntry{}, err
	}

	status, err := load.StatusFromString(dto.Status)
	if err != nil {
		return load.TrackingEntry{}, err
	}

	return load.TrackingEntry{
		Point:      point,
		RecordedAt: dto.RecordedAt,
		Status:     status,
	}, nil
}
