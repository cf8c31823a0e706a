package loadrepo

import (
	"context"
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/load"
	"freight/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormLoadRepository implements LoadRepository using GORM.
type GormLoadRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormLoadRepository creates a new GORM load repository.
func NewGormLoadRepository(db *gorm.DB, tracker aggregateTracker) *GormLoadRepository {
	return &GormLoadRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new load to the database.
func (r *GormLoadRepository) Add(ctx context.Context, aggregate *load.Load) error {
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

// Update saves an existing load to the database.
func (r *GormLoadRepository) Update(ctx context.Context, aggregate *load.Load) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&LoadDTO{}).
		Where("id = ?", dto.ID).
		Select("*").Omit("created_at", "TrackingEntries").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	if err := r.replaceTrackingEntries(ctx, dto); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// UpdateWithStatus saves a load whose status changed.
// The write compares against the status the aggregate was loaded with, so
// a row already moved by another transaction is left untouched and the
// caller gets a ConcurrentUpdateError.
func (r *GormLoadRepository) UpdateWithStatus(
	ctx context.Context,
	aggregate *load.Load,
	prevStatus load.Status,
) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&LoadDTO{}).
		Where("id = ? AND status = ?", dto.ID, prevStatus.String()).
		Select("*").Omit("created_at", "TrackingEntries").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewConcurrentUpdateError("load", aggregate.ID().String())
	}

	if err := r.replaceTrackingEntries(ctx, dto); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// replaceTrackingEntries rewrites the load's tracking history rows.
// The history is append-only and short, so a delete-and-insert keeps the
// child table consistent without diffing rows.
func (r *GormLoadRepository) replaceTrackingEntries(ctx context.Context, dto LoadDTO) error {
	if err := r.db.WithContext(ctx).
		Where("load_id = ?", dto.ID).
		Delete(&TrackingEntryDTO{}).Error; err != nil {
		return err
	}

	if len(dto.TrackingEntries) == 0 {
		return nil
	}

	return r.db.WithContext(ctx).Create(&dto.TrackingEntries).Error
}

// Get retrieves a load by ID, including its tracking history.
func (r *GormLoadRepository) Get(ctx context.Context, id kernel.UUID) (*load.Load, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto LoadDTO
	if err := r.db.WithContext(ctx).
		Preload("TrackingEntries", func(db *gorm.DB) *gorm.DB { return db.Order("recorded_at") }).
		First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("load", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetFirstPending retrieves the oldest load still in pending status.
// Returns a nil load without error when none is waiting.
func (r *GormLoadRepository) GetFirstPending(ctx context.Context) (*load.Load, error) {
	var dto LoadDTO
	if err := r.db.WithContext(ctx).
		Preload("TrackingEntries", func(db *gorm.DB) *gorm.DB { return db.Order("recorded_at") }).
		Where("status = ?", load.Pending.String()).
		Order("created_at").
		First(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllPending retrieves every pending load, oldest first.
func (r *GormLoadRepository) GetAllPending(ctx context.Context) ([]*load.Load, error) {
	var dtos []LoadDTO
	if err := r.db.WithContext(ctx).
		Preload("TrackingEntries", func(db *gorm.DB) *gorm.DB { return db.Order("recorded_at") }).
		Where("status = ?", load.Pending.String()).
		Order("created_at").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	loads := make([]*load.Load, 0, len(dtos))
	for _, dto := range dtos {
		l, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		loads = append(loads, l)
	}

	return loads, nil
}
