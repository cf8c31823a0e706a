package commands

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
)

var (
	ErrAssignLoadCommandIsNotConstructed = errors.New(
		"AssignLoadCommand must be created via NewAssignLoadCommand constructor",
	)
)

// AssignLoadCommand represents a request to assign a pending load to a
// specific driver, chosen by the caller.
type AssignLoadCommand struct { //nolint:recvcheck //using for validation
	loadID   kernel.UUID
	driverID kernel.UUID

	isConstructed bool
}

// NewAssignLoadCommand creates a command to assign a load to a driver.
func NewAssignLoadCommand(loadID kernel.UUID, driverID kernel.UUID) (AssignLoadCommand, error) {
	command := AssignLoadCommand{
		isConstructed: true,
	}

	if err := errors.Join(
		command.setLoadID(loadID),
		command.setDriverID(driverID),
	); err != nil {
		return AssignLoadCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAssignLoadCommandIsNotConstructed if validation fails.
func (c AssignLoadCommand) Validate() error {
	if !c.isConstructed {
		return ErrAssignLoadCommandIsNotConstructed
	}
	return nil
}

// LoadID returns the load to assign.
func (c AssignLoadCommand) LoadID() kernel.UUID {
	return c.loadID
}

// DriverID returns the driver receiving the load.
func (c AssignLoadCommand) DriverID() kernel.UUID {
	return c.driverID
}

func (c *AssignLoadCommand) setLoadID(loadID kernel.UUID) error {
	if err := loadID.Validate(); err != nil {
		return err
	}

	c.loadID = loadID
	return nil
}

func (c *AssignLoadCommand) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	c.driverID = driverID
	return nil
}
