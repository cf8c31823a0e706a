package commands

import (
	"context"
)

// UpdateLoadStatusCommandHandler handles load lifecycle transitions.
type UpdateLoadStatusCommandHandler struct {
	uowFactory LoadUoWFactory
}

// NewUpdateLoadStatusCommandHandler creates a handler for load status operations.
func NewUpdateLoadStatusCommandHandler(uowFactory LoadUoWFactory) UpdateLoadStatusCommandHandler {
	return UpdateLoadStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the status change command.
// Transitions are validated against the load lifecycle; the update is
// guarded against concurrent changes to the same load.
func (h UpdateLoadStatusCommandHandler) Handle(ctx context.Context, cmd UpdateLoadStatusCommand) error {
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

	trackedLoad, err := loadRepo.Get(ctx, cmd.LoadID())
	if err != nil {
		return err
	}

	prevStatus := trackedLoad.Status()

	if err = trackedLoad.UpdateStatus(cmd.Target(), cmd.Point()); err != nil {
		return err
	}

	if err = loadRepo.UpdateWithStatus(ctx, trackedLoad, prevStatus); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
