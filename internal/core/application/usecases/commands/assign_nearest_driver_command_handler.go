package commands

import (
	"context"
	"errors"

	"freight/internal/core/domain/services"
)

var (
	// ErrNoPendingLoads is returned when the marketplace has no load waiting
	// for a driver.
	ErrNoPendingLoads = errors.New("no pending loads to assign")

	// ErrNoAvailableDrivers is returned when no driver is in available status.
	ErrNoAvailableDrivers = errors.New("no available drivers")

	// ErrNoDriversInRange is returned when available drivers exist but none
	// is within the search radius of the load's pickup point.
	ErrNoDriversInRange = errors.New("no available drivers within search radius")
)

// AssignNearestDriverCommandHandler handles the automatic matching of
// pending loads with available drivers. Takes the oldest pending load,
// ranks available drivers by distance to the pickup point, and assigns
// the nearest one within the search radius.
type AssignNearestDriverCommandHandler struct {
	uowFactory UoWFactory
	matcher    services.Matcher
}

// NewAssignNearestDriverCommandHandler creates a handler for automatic matching.
func NewAssignNearestDriverCommandHandler(uowFactory UoWFactory, matcher services.Matcher) AssignNearestDriverCommandHandler {
	return AssignNearestDriverCommandHandler{
		uowFactory: uowFactory,
		matcher:    matcher,
	}
}

// Handle processes the matching command.
// Assignment only reserves the load for the driver; the driver's status
// changes when the trip actually starts.
func (h AssignNearestDriverCommandHandler) Handle(ctx context.Context, cmd AssignNearestDriverCommand) error {
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

	loadRepo := uow.LoadRepository()

	pendingLoad, err := loadRepo.GetFirstPending(ctx)
	if err != nil {
		return err
	}
	if pendingLoad == nil {
		return ErrNoPendingLoads
	}

	availableDrivers, err := uow.DriverRepository().GetAllAvailable(ctx)
	if err != nil {
		return err
	}
	if len(availableDrivers) == 0 {
		return ErrNoAvailableDrivers
	}

	candidates := make([]services.Candidate, 0, len(availableDrivers))
	for _, d := range availableDrivers {
		candidates = append(candidates, services.Candidate{
			ID:    d.ID(),
			Point: d.Location(),
		})
	}

	matches, err := h.matcher.Rank(pendingLoad.Pickup().Point, candidates, services.DriverSearchRadiusMeters, 1)
	if err != nil {
		return err
	}
	if len(matches) == 0 {
		return ErrNoDriversInRange
	}

	prevStatus := pendingLoad.Status()

	if err = pendingLoad.Assign(matches[0].ID); err != nil {
		return err
	}

	if err = loadRepo.UpdateWithStatus(ctx, pendingLoad, prevStatus); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
