package commands

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/load"
)

var (
	ErrCreateLoadCommandIsNotConstructed = errors.New(
		"CreateLoadCommand must be created via NewCreateLoadCommand constructor",
	)
)

// CreateLoadCommand represents a shipper posting a new load to the
// marketplace: haul endpoints, cargo, pricing, and schedule.
type CreateLoadCommand struct { //nolint:recvcheck //using for validation
	loadID    kernel.UUID
	shipperID kernel.UUID
	pickup    load.Location
	delivery  load.Location
	cargo     load.Cargo
	pricing   load.Pricing
	schedule  load.Schedule

	isConstructed bool
}

// NewCreateLoadCommand creates a command to post a new load.
// Field validation beyond identifier and endpoint checks is left to the
// Load constructor, which owns the posting business rules.
func NewCreateLoadCommand(
	loadID kernel.UUID,
	shipperID kernel.UUID,
	pickup load.Location,
	delivery load.Location,
	cargo load.Cargo,
	pricing load.Pricing,
	schedule load.Schedule,
) (CreateLoadCommand, error) {
	command := CreateLoadCommand{
		isConstructed: true,
	}

	if err := errors.Join(
		command.setLoadID(loadID),
		command.setShipperID(shipperID),
		command.setEndpoints(pickup, delivery),
	); err != nil {
		return CreateLoadCommand{}, err
	}

	command.cargo = cargo
	command.pricing = pricing
	command.schedule = schedule

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateLoadCommandIsNotConstructed if validation fails.
func (c CreateLoadCommand) Validate() error {
	if !c.isConstructed {
		return ErrCreateLoadCommandIsNotConstructed
	}
	return nil
}

// LoadID returns the unique identifier for the new load.
func (c CreateLoadCommand) LoadID() kernel.UUID {
	return c.loadID
}

// ShipperID returns the posting shipper's identifier.
func (c CreateLoadCommand) ShipperID() kernel.UUID {
	return c.shipperID
}

// Pickup returns where the haul starts.
func (c CreateLoadCommand) Pickup() load.Location {
	return c.pickup
}

// Delivery returns where the haul ends.
func (c CreateLoadCommand) Delivery() load.Location {
	return c.delivery
}

// Cargo returns the shipment details.
func (c CreateLoadCommand) Cargo() load.Cargo {
	return c.cargo
}

// Pricing returns the price breakdown.
func (c CreateLoadCommand) Pricing() load.Pricing {
	return c.pricing
}

// Schedule returns the haul windows.
func (c CreateLoadCommand) Schedule() load.Schedule {
	return c.schedule
}

func (c *CreateLoadCommand) setLoadID(loadID kernel.UUID) error {
	if err := loadID.Validate(); err != nil {
		return err
	}

	c.loadID = loadID
	return nil
}

func (c *CreateLoadCommand) setShipperID(shipperID kernel.UUID) error {
	if err := shipperID.Validate(); err != nil {
		return err
	}

	c.shipperID = shipperID
	return nil
}

func (c *CreateLoadCommand) setEndpoints(pickup load.Location, delivery load.Location) error {
	if err := pickup.Point.Validate(); err != nil {
		return err
	}
	if err := delivery.Point.Validate(); err != nil {
		return err
	}

	c.pickup = pickup
	c.delivery = delivery
	return nil
}
