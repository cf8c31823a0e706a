package commands

import (
	"context"
	"log/slog"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/trip"
	"freight/internal/core/ports"
)

// EndTripResult reports what a completed trip settled: who hauled it, how
// long it ran, and what it paid. Returned so callers (and the metrics
// wrapper) can observe the outcome without reloading the trip.
type EndTripResult struct {
	TripID   kernel.UUID
	DriverID kernel.UUID
	LoadID   kernel.UUID
	Duration time.Duration
	Earnings trip.Earnings
}

// EndTripCommandHandler orchestrates trip completion: it closes the Trip
// record, frees the driver, and credits the earnings, all in one
// transaction.
//
// Completing an already-completed trip fails with an
// InvalidStateTransition error before anything is written, so earnings
// are credited exactly once per trip. Both status transitions are written
// with a compare-and-swap on the prior status.
type EndTripCommandHandler struct {
	uowFactory UoWFactory
	publisher  ports.EventPublisher
	logger     *slog.Logger
}

// NewEndTripCommandHandler creates a handler for trip completion operations.
func NewEndTripCommandHandler(
	uowFactory UoWFactory,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) EndTripCommandHandler {
	return EndTripCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		logger:     logger,
	}
}

// Handle processes the trip completion command.
// On success the trip is completed with its final figures, the driver is
// available again with the trip's total credited to the earnings ledger,
// and a TRIP_COMPLETED event has been published. The load's own status is
// not transitioned here; delivery marking is a separate load operation.
func (h EndTripCommandHandler) Handle(ctx context.Context, cmd EndTripCommand) (EndTripResult, error) {
	if err := cmd.Validate(); err != nil {
		return EndTripResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return EndTripResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	driverRepo := uow.DriverRepository()
	tripRepo := uow.TripRepository()

	tr, err := tripRepo.Get(ctx, cmd.TripID())
	if err != nil {
		return EndTripResult{}, err
	}

	prevTripStatus := tr.Status()
	if err = tr.Complete(cmd.End(), cmd.DistanceKm(), cmd.Earnings()); err != nil {
		return EndTripResult{}, err
	}

	d, err := driverRepo.Get(ctx, tr.DriverID())
	if err != nil {
		return EndTripResult{}, err
	}

	prevDriverStatus := d.Status()
	if err = d.FinishTrip(cmd.Earnings().TotalAmount); err != nil {
		return EndTripResult{}, err
	}

	if err = tripRepo.UpdateWithStatus(ctx, tr, prevTripStatus); err != nil {
		return EndTripResult{}, err
	}

	if err = driverRepo.UpdateWithStatus(ctx, d, prevDriverStatus); err != nil {
		return EndTripResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return EndTripResult{}, err
	}

	publishEvent(ctx, h.logger, h.publisher, ports.Event{
		Type: ports.EventTripCompleted,
		Data: map[string]any{
			"tripId":   tr.ID().String(),
			"driverId": tr.DriverID().String(),
			"loadId":   tr.LoadID().String(),
			"earnings": map[string]float64{
				"baseAmount":  cmd.Earnings().BaseAmount,
				"bonusAmount": cmd.Earnings().BonusAmount,
				"totalAmount": cmd.Earnings().TotalAmount,
			},
		},
	})

	return EndTripResult{
		TripID:   tr.ID(),
		DriverID: tr.DriverID(),
		LoadID:   tr.LoadID(),
		Duration: tr.EndTime().Sub(tr.StartTime()),
		Earnings: cmd.Earnings(),
	}, nil
}
