package commands

import (
	"errors"
	"fmt"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/trip"
	"freight/internal/pkg/errs"
)

var (
	ErrEndTripCommandIsNotConstructed = errors.New(
		"EndTripCommand must be created via NewEndTripCommand constructor",
	)
)

// EndTripCommand represents a driver completing a haul, carrying the final
// figures: where the trip ended, the hauled distance, and the earnings
// breakdown.
type EndTripCommand struct { //nolint:recvcheck //using for validation
	tripID     kernel.UUID
	end        trip.Stop
	distanceKm float64
	earnings   trip.Earnings

	isConstructed bool
}

// NewEndTripCommand creates a command to complete a haul.
func NewEndTripCommand(
	tripID kernel.UUID,
	end trip.Stop,
	distanceKm float64,
	earnings trip.Earnings,
) (EndTripCommand, error) {
	command := EndTripCommand{
		isConstructed: true,
	}

	if err := errors.Join(
		command.setTripID(tripID),
		command.setEnd(end),
		command.setDistanceKm(distanceKm),
		command.setEarnings(earnings),
	); err != nil {
		return EndTripCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrEndTripCommandIsNotConstructed if validation fails.
func (c EndTripCommand) Validate() error {
	if !c.isConstructed {
		return ErrEndTripCommandIsNotConstructed
	}
	return nil
}

// TripID returns the trip to complete.
func (c EndTripCommand) TripID() kernel.UUID {
	return c.tripID
}

// End returns where the haul finished.
func (c EndTripCommand) End() trip.Stop {
	return c.end
}

// DistanceKm returns the hauled distance.
func (c EndTripCommand) DistanceKm() float64 {
	return c.distanceKm
}

// Earnings returns the price breakdown to record.
func (c EndTripCommand) Earnings() trip.Earnings {
	return c.earnings
}

func (c *EndTripCommand) setTripID(tripID kernel.UUID) error {
	if err := tripID.Validate(); err != nil {
		return err
	}

	c.tripID = tripID
	return nil
}

func (c *EndTripCommand) setEnd(end trip.Stop) error {
	if err := end.Point.Validate(); err != nil {
		return err
	}

	c.end = end
	return nil
}

func (c *EndTripCommand) setDistanceKm(distanceKm float64) error {
	if distanceKm < 0 {
		return errs.NewValueIsInvalidErrorWithCause("distance", fmt.Errorf("%f is negative", distanceKm))
	}

	c.distanceKm = distanceKm
	return nil
}

func (c *EndTripCommand) setEarnings(earnings trip.Earnings) error {
	if earnings.BaseAmount < 0 || earnings.BonusAmount < 0 || earnings.TotalAmount < 0 {
		return errs.NewValueIsInvalidErrorWithCause("earnings", errors.New("amounts cannot be negative"))
	}

	c.earnings = earnings
	return nil
}
