package commands

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/load"
)

var (
	ErrUpdateLoadStatusCommandIsNotConstructed = errors.New(
		"UpdateLoadStatusCommand must be created via NewUpdateLoadStatusCommand constructor",
	)
)

// UpdateLoadStatusCommand represents a request to move a load through
// its lifecycle, optionally recording the position where the change
// happened.
type UpdateLoadStatusCommand struct { //nolint:recvcheck //using for validation
	loadID kernel.UUID
	target load.Status
	point  *kernel.GeoPoint

	isConstructed bool
}

// NewUpdateLoadStatusCommand creates a command to change a load's status.
// point is optional; when present it is appended to the load's tracking
// history together with the new status.
func NewUpdateLoadStatusCommand(
	loadID kernel.UUID,
	target load.Status,
	point *kernel.GeoPoint,
) (UpdateLoadStatusCommand, error) {
	command := UpdateLoadStatusCommand{
		isConstructed: true,
	}

	if err := errors.Join(
		command.setLoadID(loadID),
		command.setTarget(target),
		command.setPoint(point),
	); err != nil {
		return UpdateLoadStatusCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateLoadStatusCommandIsNotConstructed if validation fails.
func (c UpdateLoadStatusCommand) Validate() error {
	if !c.isConstructed {
		return ErrUpdateLoadStatusCommandIsNotConstructed
	}
	return nil
}

// LoadID returns the load to update.
func (c UpdateLoadStatusCommand) LoadID() kernel.UUID {
	return c.loadID
}

// Target returns the requested status.
func (c UpdateLoadStatusCommand) Target() load.Status {
	return c.target
}

// Point returns the position reported with the change, or nil.
func (c UpdateLoadStatusCommand) Point() *kernel.GeoPoint {
	return c.point
}

func (c *UpdateLoadStatusCommand) setLoadID(loadID kernel.UUID) error {
	if err := loadID.Validate(); err != nil {
		return err
	}

	c.loadID = loadID
	return nil
}

func (c *UpdateLoadStatusCommand) setTarget(target load.Status) error {
	if err := target.Validate(); err != nil {
		return err
	}

	c.target = target
	return nil
}

func (c *UpdateLoadStatusCommand) setPoint(point *kernel.GeoPoint) error {
	if point == nil {
		return nil
	}
	if err := point.Validate(); err != nil {
		return err
	}

	c.point = point
	return nil
}
