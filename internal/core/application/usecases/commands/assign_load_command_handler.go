package commands

import (
	"context"
)

// AssignLoadCommandHandler handles direct load assignment.
// The driver identity is trusted as supplied; availability is enforced
// at trip start, not at assignment time.
type AssignLoadCommandHandler struct {
	uowFactory LoadUoWFactory
}

// NewAssignLoadCommandHandler creates a handler for direct assignment operations.
func NewAssignLoadCommandHandler(uowFactory LoadUoWFactory) AssignLoadCommandHandler {
	return AssignLoadCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the assignment command.
// Only pending loads can be assigned; the update is guarded against
// a concurrent assignment of the same load.
func (h AssignLoadCommandHandler) Handle(ctx context.Context, cmd AssignLoadCommand) error {
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

	pendingLoad, err := loadRepo.Get(ctx, cmd.LoadID())
	if err != nil {
		return err
	}

	prevStatus := pendingLoad.Status()

	if err = pendingLoad.Assign(cmd.DriverID()); err != nil {
		return err
	}

	if err = loadRepo.UpdateWithStatus(ctx, pendingLoad, prevStatus); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
