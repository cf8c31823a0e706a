package commands_test

import (
	"testing"

	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/load"
	"freight/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAssignLoadCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	testLd := testLoad(t)
	driverID := kernel.NewUUID()

	cmd, err := commands.NewAssignLoadCommand(testLd.ID(), driverID)
	require.NoError(t, err)

	loadRepo := new(MockLoadRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("LoadRepository").Return(loadRepo).Once(),
		loadRepo.On("Get", ctx, testLd.ID()).Return(testLd, nil).Once(),
		loadRepo.On("UpdateWithStatus", ctx, mock.AnythingOfType("*load.Load"), load.Pending).
			Return(nil).
			Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockLoadUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAssignLoadCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, load.Assigned, testLd.Status())
	require.NotNil(t, testLd.DriverID())
	assert.True(t, testLd.DriverID().IsEqual(driverID))

	loadRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAssignLoadCommandHandler_Handle_LoadAlreadyAssigned(t *testing.T) {
	ctx := t.Context()

	testLd := testLoad(t)
	require.NoError(t, testLd.Assign(kernel.NewUUID()))

	cmd, err := commands.NewAssignLoadCommand(testLd.ID(), kernel.NewUUID())
	require.NoError(t, err)

	loadRepo := new(MockLoadRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("LoadRepository").Return(loadRepo).Once(),
		loadRepo.On("Get", ctx, testLd.ID()).Return(testLd, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockLoadUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAssignLoadCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	loadRepo.AssertNotCalled(t, "UpdateWithStatus")
}

func TestAssignLoadCommandHandler_Handle_LoadNotFound(t *testing.T) {
	ctx := t.Context()

	loadID := kernel.NewUUID()
	cmd, err := commands.NewAssignLoadCommand(loadID, kernel.NewUUID())
	require.NoError(t, err)

	loadRepo := new(MockLoadRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("LoadRepository").Return(loadRepo).Once(),
		loadRepo.On("Get", ctx, loadID).Return(nil, errs.NewObjectNotFoundError("load", loadID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockLoadUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAssignLoadCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestAssignLoadCommandHandler_Handle_ConcurrentAssignment(t *testing.T) {
	ctx := t.Context()

	testLd := testLoad(t)
	cmd, err := commands.NewAssignLoadCommand(testLd.ID(), kernel.NewUUID())
	require.NoError(t, err)

	loadRepo := new(MockLoadRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("LoadRepository").Return(loadRepo).Once(),
		loadRepo.On("Get", ctx, testLd.ID()).Return(testLd, nil).Once(),
		loadRepo.On("UpdateWithStatus", ctx, mock.AnythingOfType("*load.Load"), load.Pending).
			Return(errs.NewConcurrentUpdateError("load", testLd.ID())).
			Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockLoadUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAssignLoadCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrConcurrentUpdate)
	uow.AssertNotCalled(t, "Commit")
}

func TestAssignLoadCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.AssignLoadCommand{} // not constructed properly

	factory := new(MockLoadUoWFactory)
	handler := commands.NewAssignLoadCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrAssignLoadCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}
