package commands

import (
	"errors"
	"time"

	"freight/internal/core/domain/model/driver"
	"freight/internal/core/domain/model/kernel"
)

var (
	ErrUpdateDriverLocationCommandIsNotConstructed = errors.New(
		"UpdateDriverLocationCommand must be created via NewUpdateDriverLocationCommand constructor",
	)
)

// UpdateDriverLocationCommand represents a position report from a driver,
// optionally combined with a manual availability change.
//
// The recordedAt timestamp is optional: clients that sample positions on
// device pass it so delayed reports can be detected; without it the
// server receive time is used.
type UpdateDriverLocationCommand struct { //nolint:recvcheck //using for validation
	driverID   kernel.UUID
	point      kernel.GeoPoint
	recordedAt *time.Time
	status     *driver.Status

	isConstructed bool
}

// NewUpdateDriverLocationCommand creates a command to report a driver position.
// recordedAt and status are optional; pass nil to omit them.
func NewUpdateDriverLocationCommand(
	driverID kernel.UUID,
	point kernel.GeoPoint,
	recordedAt *time.Time,
	status *driver.Status,
) (UpdateDriverLocationCommand, error) {
	command := UpdateDriverLocationCommand{
		isConstructed: true,
	}

	if err := errors.Join(
		command.setDriverID(driverID),
		command.setPoint(point),
		command.setStatus(status),
	); err != nil {
		return UpdateDriverLocationCommand{}, err
	}

	command.recordedAt = recordedAt

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateDriverLocationCommandIsNotConstructed if validation fails.
func (c UpdateDriverLocationCommand) Validate() error {
	if !c.isConstructed {
		return ErrUpdateDriverLocationCommandIsNotConstructed
	}
	return nil
}

// DriverID returns the reporting driver's identifier.
func (c UpdateDriverLocationCommand) DriverID() kernel.UUID {
	return c.driverID
}

// Point returns the reported position.
func (c UpdateDriverLocationCommand) Point() kernel.GeoPoint {
	return c.point
}

// RecordedAt returns the client sample time, or nil when not supplied.
func (c UpdateDriverLocationCommand) RecordedAt() *time.Time {
	return c.recordedAt
}

// Status returns the requested availability change, or nil when not supplied.
func (c UpdateDriverLocationCommand) Status() *driver.Status {
	return c.status
}

func (c *UpdateDriverLocationCommand) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	c.driverID = driverID
	return nil
}

func (c *UpdateDriverLocationCommand) setPoint(point kernel.GeoPoint) error {
	if err := point.Validate(); err != nil {
		return err
	}

	c.point = point
	return nil
}

func (c *UpdateDriverLocationCommand) setStatus(status *driver.Status) error {
	if status != nil {
		if err := status.Validate(); err != nil {
			return err
		}
	}

	c.status = status
	return nil
}
