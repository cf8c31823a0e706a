package commands

import (
	"errors"
	"time"

	"freight/internal/core/domain/model/driver"
	"freight/internal/core/domain/model/kernel"
)

var (
	ErrCreateDriverCommandIsNotConstructed = errors.New(
		"CreateDriverCommand must be created via NewCreateDriverCommand constructor",
	)
)

// CreateDriverCommand represents a request to onboard a new driver.
// Encapsulates the driver's identity, license, vehicle, and starting
// position.
//
// Example:
//
//	cmd, err := NewCreateDriverCommand(
//	    kernel.NewUUID(), userID,
//	    "DL-2026-001", expiry, 5,
//	    driver.Vehicle{Type: "container", RegistrationNumber: "KA01AB1234", CapacityTons: 12},
//	    location,
//	)
//	if err != nil {
//	    return fmt.Errorf("invalid driver data: %w", err)
//	}
//
//	handler := NewCreateDriverCommandHandler(uowFactory, publisher, logger)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to onboard driver: %w", err)
//	}
type CreateDriverCommand struct { //nolint:recvcheck //using for validation
	driverID        kernel.UUID
	userID          kernel.UUID
	licenseNumber   string
	licenseExpiry   time.Time
	experienceYears int
	vehicle         driver.Vehicle
	location        kernel.GeoPoint

	isConstructed bool
}

// NewCreateDriverCommand creates a command to onboard a new driver.
// Field validation beyond identifier checks is left to the Driver
// constructor, which owns the onboarding business rules.
func NewCreateDriverCommand(
	driverID kernel.UUID,
	userID kernel.UUID,
	licenseNumber string,
	licenseExpiry time.Time,
	experienceYears int,
	vehicle driver.Vehicle,
	location kernel.GeoPoint,
) (CreateDriverCommand, error) {
	command := CreateDriverCommand{
		isConstructed: true,
	}

	if err := errors.Join(
		command.setDriverID(driverID),
		command.setUserID(userID),
		command.setLocation(location),
	); err != nil {
		return CreateDriverCommand{}, err
	}

	command.licenseNumber = licenseNumber
	command.licenseExpiry = licenseExpiry
	command.experienceYears = experienceYears
	command.vehicle = vehicle

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateDriverCommandIsNotConstructed if validation fails.
func (c CreateDriverCommand) Validate() error {
	if !c.isConstructed {
		return ErrCreateDriverCommandIsNotConstructed
	}
	return nil
}

// DriverID returns the unique identifier for the new driver.
func (c CreateDriverCommand) DriverID() kernel.UUID {
	return c.driverID
}

// UserID returns the owning user identity.
func (c CreateDriverCommand) UserID() kernel.UUID {
	return c.userID
}

// LicenseNumber returns the driver's license number.
func (c CreateDriverCommand) LicenseNumber() string {
	return c.licenseNumber
}

// LicenseExpiry returns the license expiry date.
func (c CreateDriverCommand) LicenseExpiry() time.Time {
	return c.licenseExpiry
}

// ExperienceYears returns the driver's years of freight experience.
func (c CreateDriverCommand) ExperienceYears() int {
	return c.experienceYears
}

// Vehicle returns the vehicle to register.
func (c CreateDriverCommand) Vehicle() driver.Vehicle {
	return c.vehicle
}

// Location returns the driver's starting position.
func (c CreateDriverCommand) Location() kernel.GeoPoint {
	return c.location
}

func (c *CreateDriverCommand) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	c.driverID = driverID
	return nil
}

func (c *CreateDriverCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	c.userID = userID
	return nil
}

func (c *CreateDriverCommand) setLocation(location kernel.GeoPoint) error {
	if err := location.Validate(); err != nil {
		return err
	}

	c.location = location
	return nil
}
