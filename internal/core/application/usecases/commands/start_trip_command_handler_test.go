package commands_test

import (
	"errors"
	"testing"

	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/domain/model/driver"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/trip"
	"freight/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestStartTripCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	testDrv := testDriver(t, driver.Available, nil)
	testLd := testLoad(t)
	require.NoError(t, testLd.Assign(testDrv.ID()))

	cmd, err := commands.NewStartTripCommand(
		kernel.NewUUID(), testDrv.ID(), testLd.ID(), testStop(t, 77.5946, 12.9716),
	)
	require.NoError(t, err)

	driverRepo := new(MockDriverRepository)
	loadRepo := new(MockLoadRepository)
	tripRepo := new(MockTripRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		uow.On("LoadRepository").Return(loadRepo).Once(),
		uow.On("TripRepository").Return(tripRepo).Once(),
		driverRepo.On("Get", ctx, testDrv.ID()).Return(testDrv, nil).Once(),
		loadRepo.On("Get", ctx, testLd.ID()).Return(testLd, nil).Once(),
		tripRepo.On("Add", ctx, mock.AnythingOfType("*trip.Trip")).Return(nil).Once(),
		driverRepo.On("UpdateWithStatus", ctx, mock.AnythingOfType("*driver.Driver"), driver.Available).
			Return(nil).
			Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := new(MockEventPublisher)
	publisher.On("Publish", ctx, ports.TopicDriverEvents, mock.MatchedBy(func(e ports.Event) bool {
		return e.Type == ports.EventTripStarted
	})).Return(nil).Once()

	handler := commands.NewStartTripCommandHandler(factory, publisher, discardLogger())
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)

	// The driver is occupied and the persisted trip is in started status
	assert.Equal(t, driver.OnTrip, testDrv.Status())
	require.NotNil(t, testDrv.ActiveLoadID())
	assert.True(t, testDrv.ActiveLoadID().IsEqual(testLd.ID()))

	addCall := tripRepo.Calls[0]
	added := addCall.Arguments[1].(*trip.Trip)
	assert.Equal(t, trip.Started, added.Status())
	assert.True(t, added.DriverID().IsEqual(testDrv.ID()))
	assert.True(t, added.LoadID().IsEqual(testLd.ID()))

	driverRepo.AssertExpectations(t)
	loadRepo.AssertExpectations(t)
	tripRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestStartTripCommandHandler_Handle_DriverAlreadyOnTrip(t *testing.T) {
	ctx := t.Context()

	loadID := kernel.NewUUID()
	testDrv := testDriver(t, driver.OnTrip, &loadID)

	cmd, err := commands.NewStartTripCommand(
		kernel.NewUUID(), testDrv.ID(), kernel.NewUUID(), testStop(t, 77.5946, 12.9716),
	)
	require.NoError(t, err)

	driverRepo := new(MockDriverRepository)
	loadRepo := new(MockLoadRepository)
	tripRepo := new(MockTripRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		uow.On("LoadRepository").Return(loadRepo).Once(),
		uow.On("TripRepository").Return(tripRepo).Once(),
		driverRepo.On("Get", ctx, testDrv.ID()).Return(testDrv, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewStartTripCommandHandler(factory, nil, discardLogger())
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrDriverAlreadyOnTrip)
	loadRepo.AssertNotCalled(t, "Get")
	tripRepo.AssertNotCalled(t, "Add")
}

func TestStartTripCommandHandler_Handle_LoadNotAssigned(t *testing.T) {
	ctx := t.Context()

	testDrv := testDriver(t, driver.Available, nil)
	testLd := testLoad(t) // still pending

	cmd, err := commands.NewStartTripCommand(
		kernel.NewUUID(), testDrv.ID(), testLd.ID(), testStop(t, 77.5946, 12.9716),
	)
	require.NoError(t, err)

	driverRepo := new(MockDriverRepository)
	loadRepo := new(MockLoadRepository)
	tripRepo := new(MockTripRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		uow.On("LoadRepository").Return(loadRepo).Once(),
		uow.On("TripRepository").Return(tripRepo).Once(),
		driverRepo.On("Get", ctx, testDrv.ID()).Return(testDrv, nil).Once(),
		loadRepo.On("Get", ctx, testLd.ID()).Return(testLd, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewStartTripCommandHandler(factory, nil, discardLogger())
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrLoadNotAssignedToDriver)
	assert.Equal(t, driver.Available, testDrv.Status())
}

func TestStartTripCommandHandler_Handle_LoadAssignedToAnotherDriver(t *testing.T) {
	ctx := t.Context()

	testDrv := testDriver(t, driver.Available, nil)
	testLd := testLoad(t)
	require.NoError(t, testLd.Assign(kernel.NewUUID()))

	cmd, err := commands.NewStartTripCommand(
		kernel.NewUUID(), testDrv.ID(), testLd.ID(), testStop(t, 77.5946, 12.9716),
	)
	require.NoError(t, err)

	driverRepo := new(MockDriverRepository)
	loadRepo := new(MockLoadRepository)
	tripRepo := new(MockTripRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		uow.On("LoadRepository").Return(loadRepo).Once(),
		uow.On("TripRepository").Return(tripRepo).Once(),
		driverRepo.On("Get", ctx, testDrv.ID()).Return(testDrv, nil).Once(),
		loadRepo.On("Get", ctx, testLd.ID()).Return(testLd, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewStartTripCommandHandler(factory, nil, discardLogger())
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrLoadNotAssignedToDriver)
}

func TestStartTripCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()

	testDrv := testDriver(t, driver.Available, nil)
	testLd := testLoad(t)
	require.NoError(t, testLd.Assign(testDrv.ID()))

	cmd, err := commands.NewStartTripCommand(
		kernel.NewUUID(), testDrv.ID(), testLd.ID(), testStop(t, 77.5946, 12.9716),
	)
	require.NoError(t, err)

	driverRepo := new(MockDriverRepository)
	loadRepo := new(MockLoadRepository)
	tripRepo := new(MockTripRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		uow.On("LoadRepository").Return(loadRepo).Once(),
		uow.On("TripRepository").Return(tripRepo).Once(),
		driverRepo.On("Get", ctx, testDrv.ID()).Return(testDrv, nil).Once(),
		loadRepo.On("Get", ctx, testLd.ID()).Return(testLd, nil).Once(),
		tripRepo.On("Add", ctx, mock.AnythingOfType("*trip.Trip")).Return(nil).Once(),
		driverRepo.On("UpdateWithStatus", ctx, mock.AnythingOfType("*driver.Driver"), driver.Available).
			Return(nil).
			Once(),
		uow.On("Commit", ctx).Return(errors.New("commit error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := new(MockEventPublisher)

	handler := commands.NewStartTripCommandHandler(factory, publisher, discardLogger())
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.EqualError(t, err, "commit error")
	publisher.AssertNotCalled(t, "Publish")
}

func TestStartTripCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.StartTripCommand{} // not constructed properly

	factory := new(MockUoWFactory)
	handler := commands.NewStartTripCommandHandler(factory, nil, discardLogger())
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrStartTripCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}
