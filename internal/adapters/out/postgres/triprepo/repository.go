package triprepo

import (
	"context"
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/trip"
	"freight/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormTripRepository implements TripRepository using GORM.
type GormTripRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormTripRepository creates a new GORM trip repository.
func NewGormTripRepository(db *gorm.DB, tracker aggregateTracker) *GormTripRepository {
	return &GormTripRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new trip to the database.
func (r *GormTripRepository) Add(ctx context.Context, aggregate *trip.Trip) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing trip to the database.
func (r *GormTripRepository) Update(ctx context.Context, aggregate *trip.Trip) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&TripDTO{}).
		Where("id = ?", dto.ID).
		Select("*").Omit("created_at", "RouteSamples").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	if err := r.replaceRouteSamples(ctx, dto); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// UpdateWithStatus saves a trip whose status changed.
// The write compares against the status the aggregate was loaded with, so
// a trip already completed by another transaction is left untouched and
// the caller gets a ConcurrentUpdateError.
func (r *GormTripRepository) UpdateWithStatus(
	ctx context.Context,
	aggregate *trip.Trip,
	prevStatus trip.Status,
) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&TripDTO{}).
		Where("id = ? AND status = ?", dto.ID, prevStatus.String()).
		Select("*").Omit("created_at", "RouteSamples").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewConcurrentUpdateError("trip", aggregate.ID().String())
	}

	if err := r.replaceRouteSamples(ctx, dto); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// replaceRouteSamples rewrites the trip's recorded route rows.
func (r *GormTripRepository) replaceRouteSamples(ctx context.Context, dto TripDTO) error {
	if err := r.db.WithContext(ctx).
		Where("trip_id = ?", dto.ID).
		Delete(&RouteSampleDTO{}).Error; err != nil {
		return err
	}

	if len(dto.RouteSamples) == 0 {
		return nil
	}

	return r.db.WithContext(ctx).Create(&dto.RouteSamples).Error
}

// Get retrieves a trip by ID, including its route samples.
func (r *GormTripRepository) Get(ctx context.Context, id kernel.UUID) (*trip.Trip, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto TripDTO
	if err := r.db.WithContext(ctx).
		Preload("RouteSamples", func(db *gorm.DB) *gorm.DB { return db.Order("recorded_at") }).
		First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("trip", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetStartedByDriver retrieves the driver's trip in started status.
// Returns a nil trip without error when the driver is not on a trip.
func (r *GormTripRepository) GetStartedByDriver(ctx context.Context, driverID kernel.UUID) (*trip.Trip, error) {
	if err := driverID.Validate(); err != nil {
		return nil, err
	}

	var dto TripDTO
	if err := r.db.WithContext(ctx).
		Preload("RouteSamples", func(db *gorm.DB) *gorm.DB { return db.Order("recorded_at") }).
		Where("driver_id = ? AND status = ?", driverID.Bytes(), trip.Started.String()).
		First(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return toDomain(dto)
}
