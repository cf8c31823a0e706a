package commands

import (
	"context"
	"errors"
	"log/slog"

	"freight/internal/core/domain/model/driver"
	"freight/internal/core/domain/model/load"
	"freight/internal/core/domain/model/trip"
	"freight/internal/core/ports"
)

var (
	// ErrDriverAlreadyOnTrip is returned when starting a trip for a driver
	// that is already hauling a load.
	ErrDriverAlreadyOnTrip = errors.New("driver is already on a trip")

	// ErrLoadNotAssignedToDriver is returned when the load is not in
	// assigned status pointing at the requesting driver.
	ErrLoadNotAssignedToDriver = errors.New("load is not assigned to this driver")
)

// StartTripCommandHandler orchestrates trip start: it creates the Trip
// record and occupies the driver in one transaction.
//
// The load must already be assigned to this driver (assignment and trip
// start are decoupled operations), and the driver's transition to
// on_trip is written with a compare-and-swap on the prior status so two
// racing starts on the same driver cannot both succeed.
type StartTripCommandHandler struct {
	uowFactory UoWFactory
	publisher  ports.EventPublisher
	logger     *slog.Logger
}

// NewStartTripCommandHandler creates a handler for trip start operations.
func NewStartTripCommandHandler(
	uowFactory UoWFactory,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) StartTripCommandHandler {
	return StartTripCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		logger:     logger,
	}
}

// Handle processes the trip start command.
// On success a Trip exists in started status, the driver is on_trip with
// the load active, and a TRIP_STARTED event has been published.
func (h StartTripCommandHandler) Handle(ctx context.Context, cmd StartTripCommand) error {
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
	loadRepo := uow.LoadRepository()
	tripRepo := uow.TripRepository()

	d, err := driverRepo.Get(ctx, cmd.DriverID())
	if err != nil {
		return err
	}
	if d.Status() == driver.OnTrip {
		return ErrDriverAlreadyOnTrip
	}

	l, err := loadRepo.Get(ctx, cmd.LoadID())
	if err != nil {
		return err
	}
	if l.Status() != load.Assigned || l.DriverID() == nil || !l.DriverID().IsEqual(cmd.DriverID()) {
		return ErrLoadNotAssignedToDriver
	}

	prevStatus := d.Status()
	if err = d.BeginTrip(cmd.LoadID()); err != nil {
		return err
	}

	newTrip, err := trip.NewTrip(cmd.TripID(), cmd.DriverID(), cmd.LoadID(), cmd.Start())
	if err != nil {
		return err
	}

	if err = tripRepo.Add(ctx, newTrip); err != nil {
		return err
	}

	if err = driverRepo.UpdateWithStatus(ctx, d, prevStatus); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	publishEvent(ctx, h.logger, h.publisher, ports.Event{
		Type: ports.EventTripStarted,
		Data: map[string]any{
			"tripId":        newTrip.ID().String(),
			"driverId":      newTrip.DriverID().String(),
			"loadId":        newTrip.LoadID().String(),
			"startLocation": []float64{cmd.Start().Point.Lon(), cmd.Start().Point.Lat()},
		},
	})

	return nil
}
