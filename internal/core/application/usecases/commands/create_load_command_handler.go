package commands

import (
	"context"

	"freight/internal/core/domain/model/load"
)

// CreateLoadCommandHandler handles the business logic for posting loads.
// Persists the new load in pending status, making it visible to
// nearby-load searches and the assignment job.
type CreateLoadCommandHandler struct {
	uowFactory LoadUoWFactory
}

// NewCreateLoadCommandHandler creates a handler for load posting operations.
func NewCreateLoadCommandHandler(uowFactory LoadUoWFactory) CreateLoadCommandHandler {
	return CreateLoadCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the load posting command.
func (h CreateLoadCommandHandler) Handle(ctx context.Context, cmd CreateLoadCommand) error {
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

	newLoad, err := load.NewLoad(
		cmd.LoadID(),
		cmd.ShipperID(),
		cmd.Pickup(),
		cmd.Delivery(),
		cmd.Cargo(),
		cmd.Pricing(),
		cmd.Schedule(),
	)
	if err != nil {
		return err
	}

	if err = uow.LoadRepository().Add(ctx, newLoad); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
