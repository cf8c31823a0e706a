package commands

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/trip"
)

var (
	ErrStartTripCommandIsNotConstructed = errors.New(
		"StartTripCommand must be created via NewStartTripCommand constructor",
	)
)

// StartTripCommand represents a driver picking up an assigned load and
// beginning the haul.
//
// Example:
//
//	cmd, err := NewStartTripCommand(kernel.NewUUID(), driverID, loadID,
//	    trip.Stop{Point: point, Address: "Bengaluru depot"})
//	if err != nil {
//	    return err
//	}
//
//	handler := NewStartTripCommandHandler(uowFactory, publisher, logger)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to start trip: %w", err)
//	}
type StartTripCommand struct { //nolint:recvcheck //using for validation
	tripID   kernel.UUID
	driverID kernel.UUID
	loadID   kernel.UUID
	start    trip.Stop

	isConstructed bool
}

// NewStartTripCommand creates a command to start a haul.
func NewStartTripCommand(
	tripID kernel.UUID,
	driverID kernel.UUID,
	loadID kernel.UUID,
	start trip.Stop,
) (StartTripCommand, error) {
	command := StartTripCommand{
		isConstructed: true,
	}

	if err := errors.Join(
		command.setTripID(tripID),
		command.setDriverID(driverID),
		command.setLoadID(loadID),
		command.setStart(start),
	); err != nil {
		return StartTripCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrStartTripCommandIsNotConstructed if validation fails.
func (c StartTripCommand) Validate() error {
	if !c.isConstructed {
		return ErrStartTripCommandIsNotConstructed
	}
	return nil
}

// TripID returns the unique identifier for the new trip.
func (c StartTripCommand) TripID() kernel.UUID {
	return c.tripID
}

// DriverID returns the hauling driver's identifier.
func (c StartTripCommand) DriverID() kernel.UUID {
	return c.driverID
}

// LoadID returns the hauled load's identifier.
func (c StartTripCommand) LoadID() kernel.UUID {
	return c.loadID
}

// Start returns where the haul begins.
func (c StartTripCommand) Start() trip.Stop {
	return c.start
}

func (c *StartTripCommand) setTripID(tripID kernel.UUID) error {
	if err := tripID.Validate(); err != nil {
		return err
	}

	c.tripID = tripID
	return nil
}

func (c *StartTripCommand) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	c.driverID = driverID
	return nil
}

func (c *StartTripCommand) setLoadID(loadID kernel.UUID) error {
	if err := loadID.Validate(); err != nil {
		return err
	}

	c.loadID = loadID
	return nil
}

func (c *StartTripCommand) setStart(start trip.Stop) error {
	if err := start.Point.Validate(); err != nil {
		return err
	}

	c.start = start
	return nil
}
