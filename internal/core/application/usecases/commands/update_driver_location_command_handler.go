package commands

import (
	"context"
	"log/slog"
	"time"

	"freight/internal/core/ports"
)

// UpdateDriverLocationCommandHandler handles driver position reports.
//
// The report overwrites the driver's current location last-write-wins,
// except that a report older than the stored one is silently dropped. An
// optional availability change rides along and goes through the state
// machine. When the driver is hauling a load the report also extends the
// started trip's route and is announced downstream with a
// DRIVER_LOCATION_UPDATED event, which is how dispatch learns of en-route
// position without polling.
type UpdateDriverLocationCommandHandler struct {
	uowFactory UoWFactory
	publisher  ports.EventPublisher
	logger     *slog.Logger
}

// NewUpdateDriverLocationCommandHandler creates a handler for driver position reports.
func NewUpdateDriverLocationCommandHandler(
	uowFactory UoWFactory,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) UpdateDriverLocationCommandHandler {
	return UpdateDriverLocationCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		logger:     logger,
	}
}

// Handle processes the position report.
// The driver row is written with a compare-and-swap on the status the
// aggregate was loaded with, so a report racing a trip start (or two
// racing transitions) cannot silently win. The event is published only
// after the transaction commits.
func (h UpdateDriverLocationCommandHandler) Handle(ctx context.Context, cmd UpdateDriverLocationCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	driverRepo := uow.DriverRepository()
	tripRepo := uow.TripRepository()

	d, err := driverRepo.Get(ctx, cmd.DriverID())
	if err != nil {
		return err
	}

	prevStatus := d.Status()

	recordedAt := time.Now().UTC()
	if cmd.RecordedAt() != nil {
		recordedAt = *cmd.RecordedAt()
	}

	applied, err := d.UpdateLocation(cmd.Point(), recordedAt)
	if err != nil {
		return err
	}

	if cmd.Status() != nil {
		if err = d.ChangeStatus(*cmd.Status()); err != nil {
			return err
		}
	}

	if applied && d.ActiveLoadID() != nil {
		if err = h.extendRoute(ctx, tripRepo, cmd, d.Status().String(), recordedAt); err != nil {
			return err
		}
	}

	// The write always compares against the loaded status, even when the
	// report carries no status change: an unguarded full-row update would
	// let a location report overwrite a trip start committed in between.
	if err = driverRepo.UpdateWithStatus(ctx, d, prevStatus); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if applied && d.ActiveLoadID() != nil {
		publishEvent(ctx, h.logger, h.publisher, ports.Event{
			Type: ports.EventDriverLocationUpdated,
			Data: map[string]any{
				"driverId":    d.ID().String(),
				"loadId":      d.ActiveLoadID().String(),
				"coordinates": []float64{cmd.Point().Lon(), cmd.Point().Lat()},
				"status":      d.Status().String(),
			},
		})
	}

	return nil
}

// extendRoute appends the report to the driver's started trip.
// A hauling driver without a started trip is tolerated: the route is
// best-effort telemetry and must not fail the report.
func (h UpdateDriverLocationCommandHandler) extendRoute(
	ctx context.Context,
	tripRepo ports.TripRepository,
	cmd UpdateDriverLocationCommand,
	driverStatus string,
	recordedAt time.Time,
) error {
	tr, err := tripRepo.GetStartedByDriver(ctx, cmd.DriverID())
	if err != nil {
		return err
	}
	if tr == nil {
		return nil
	}

	if err = tr.AppendRouteSample(cmd.Point(), recordedAt, driverStatus); err != nil {
		return err
	}

	return tripRepo.Update(ctx, tr)
}
