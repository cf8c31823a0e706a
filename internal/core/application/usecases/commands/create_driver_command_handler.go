package commands

import (
	"context"
	"errors"
	"log/slog"

	"freight/internal/core/domain/model/driver"
	"freight/internal/core/ports"
)

// ErrDriverProfileAlreadyExists is returned when the user, license, or
// vehicle registration is already attached to another driver.
var ErrDriverProfileAlreadyExists = errors.New("driver profile already exists")

// CreateDriverCommandHandler handles the business logic for driver onboarding.
// Rejects duplicate profiles, persists the new driver in offline status, and
// announces the onboarding with a DRIVER_CREATED event.
type CreateDriverCommandHandler struct {
	uowFactory DriverUoWFactory
	publisher  ports.EventPublisher
	logger     *slog.Logger
}

// NewCreateDriverCommandHandler creates a handler for driver onboarding operations.
func NewCreateDriverCommandHandler(
	uowFactory DriverUoWFactory,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) CreateDriverCommandHandler {
	return CreateDriverCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		logger:     logger,
	}
}

// Handle processes the driver onboarding command.
// Uniqueness of the user, license, and vehicle registration is checked
// before insert; the DRIVER_CREATED event is published only after the
// transaction commits.
func (h CreateDriverCommandHandler) Handle(ctx context.Context, cmd CreateDriverCommand) error {
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

	exists, err := driverRepo.ExistsWithProfile(ctx, cmd.UserID(), cmd.LicenseNumber(), cmd.Vehicle().RegistrationNumber)
	if err != nil {
		return err
	}
	if exists {
		return ErrDriverProfileAlreadyExists
	}

	newDriver, err := driver.NewDriver(
		cmd.DriverID(),
		cmd.UserID(),
		cmd.LicenseNumber(),
		cmd.LicenseExpiry(),
		cmd.ExperienceYears(),
		cmd.Vehicle(),
		cmd.Location(),
	)
	if err != nil {
		return err
	}

	if err = driverRepo.Add(ctx, newDriver); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	publishEvent(ctx, h.logger, h.publisher, ports.Event{
		Type: ports.EventDriverCreated,
		Data: map[string]any{
			"driverId": newDriver.ID().String(),
			"userId":   newDriver.UserID().String(),
			"status":   newDriver.Status().String(),
		},
	})

	return nil
}
