package commands_test

import (
	"testing"
	"time"

	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/domain/model/driver"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/trip"
	"freight/internal/core/ports"
	"freight/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUpdateDriverLocationCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	testDrv := testDriver(t, driver.Available, nil)
	point := testGeoPoint(t, 77.6, 13.0)

	cmd, err := commands.NewUpdateDriverLocationCommand(testDrv.ID(), point, nil, nil)
	require.NoError(t, err)

	driverRepo := new(MockDriverRepository)
	tripRepo := new(MockTripRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		uow.On("TripRepository").Return(tripRepo).Once(),
		driverRepo.On("Get", ctx, testDrv.ID()).Return(testDrv, nil).Once(),
		driverRepo.On("UpdateWithStatus", ctx, mock.AnythingOfType("*driver.Driver"), driver.Available).
			Return(nil).
			Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := new(MockEventPublisher)

	handler := commands.NewUpdateDriverLocationCommandHandler(factory, publisher, discardLogger())
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)

	equal, err := testDrv.Location().IsEqual(point)
	require.NoError(t, err)
	assert.True(t, equal)

	// No active load means no route extension and no event
	tripRepo.AssertNotCalled(t, "GetStartedByDriver")
	publisher.AssertNotCalled(t, "Publish")
	driverRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdateDriverLocationCommandHandler_Handle_WithStatusChange(t *testing.T) {
	ctx := t.Context()

	testDrv := testDriver(t, driver.Offline, nil)
	point := testGeoPoint(t, 77.6, 13.0)
	target := driver.Available

	cmd, err := commands.NewUpdateDriverLocationCommand(testDrv.ID(), point, nil, &target)
	require.NoError(t, err)

	driverRepo := new(MockDriverRepository)
	tripRepo := new(MockTripRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		uow.On("TripRepository").Return(tripRepo).Once(),
		driverRepo.On("Get", ctx, testDrv.ID()).Return(testDrv, nil).Once(),
		driverRepo.On("UpdateWithStatus", ctx, mock.AnythingOfType("*driver.Driver"), driver.Offline).
			Return(nil).
			Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpdateDriverLocationCommandHandler(factory, nil, discardLogger())
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, driver.Available, testDrv.Status())
	driverRepo.AssertExpectations(t)
}

func TestUpdateDriverLocationCommandHandler_Handle_LostRaceAgainstTripStart(t *testing.T) {
	ctx := t.Context()

	testDrv := testDriver(t, driver.Available, nil)
	point := testGeoPoint(t, 77.6, 13.0)

	cmd, err := commands.NewUpdateDriverLocationCommand(testDrv.ID(), point, nil, nil)
	require.NoError(t, err)

	driverRepo := new(MockDriverRepository)
	tripRepo := new(MockTripRepository)
	uow := new(MockUoW)

	// A trip start committed between the read and the write moved the row
	// off Available, so the guarded write matches nothing.
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		uow.On("TripRepository").Return(tripRepo).Once(),
		driverRepo.On("Get", ctx, testDrv.ID()).Return(testDrv, nil).Once(),
		driverRepo.On("UpdateWithStatus", ctx, mock.AnythingOfType("*driver.Driver"), driver.Available).
			Return(errs.NewConcurrentUpdateError("driver", testDrv.ID())).
			Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpdateDriverLocationCommandHandler(factory, nil, discardLogger())
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrConcurrentUpdate)

	// The report must never fall back to an unguarded full-row write.
	driverRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestUpdateDriverLocationCommandHandler_Handle_StaleReportIsDropped(t *testing.T) {
	ctx := t.Context()

	testDrv := testDriver(t, driver.Available, nil)
	original := testDrv.Location()
	point := testGeoPoint(t, 77.6, 13.0)
	stale := time.Now().UTC().Add(-time.Hour)

	cmd, err := commands.NewUpdateDriverLocationCommand(testDrv.ID(), point, &stale, nil)
	require.NoError(t, err)

	driverRepo := new(MockDriverRepository)
	tripRepo := new(MockTripRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		uow.On("TripRepository").Return(tripRepo).Once(),
		driverRepo.On("Get", ctx, testDrv.ID()).Return(testDrv, nil).Once(),
		driverRepo.On("UpdateWithStatus", ctx, mock.AnythingOfType("*driver.Driver"), driver.Available).
			Return(nil).
			Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpdateDriverLocationCommandHandler(factory, nil, discardLogger())
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)

	// Stored position must survive the out-of-order report
	equal, err := testDrv.Location().IsEqual(original)
	require.NoError(t, err)
	assert.True(t, equal)
}

func TestUpdateDriverLocationCommandHandler_Handle_ExtendsRouteWhileHauling(t *testing.T) {
	ctx := t.Context()

	loadID := kernel.NewUUID()
	testDrv := testDriver(t, driver.OnTrip, &loadID)
	point := testGeoPoint(t, 76.0, 15.0)

	startedTrip, err := trip.NewTrip(kernel.NewUUID(), testDrv.ID(), loadID, testStop(t, 77.5946, 12.9716))
	require.NoError(t, err)

	cmd, err := commands.NewUpdateDriverLocationCommand(testDrv.ID(), point, nil, nil)
	require.NoError(t, err)

	driverRepo := new(MockDriverRepository)
	tripRepo := new(MockTripRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		uow.On("TripRepository").Return(tripRepo).Once(),
		driverRepo.On("Get", ctx, testDrv.ID()).Return(testDrv, nil).Once(),
		tripRepo.On("GetStartedByDriver", ctx, testDrv.ID()).Return(startedTrip, nil).Once(),
		tripRepo.On("Update", ctx, mock.AnythingOfType("*trip.Trip")).Return(nil).Once(),
		driverRepo.On("UpdateWithStatus", ctx, mock.AnythingOfType("*driver.Driver"), driver.OnTrip).
			Return(nil).
			Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := new(MockEventPublisher)
	publisher.On("Publish", ctx, ports.TopicDriverEvents, mock.MatchedBy(func(e ports.Event) bool {
		return e.Type == ports.EventDriverLocationUpdated
	})).Return(nil).Once()

	handler := commands.NewUpdateDriverLocationCommandHandler(factory, publisher, discardLogger())
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.Len(t, startedTrip.Route(), 1)
	assert.Equal(t, driver.OnTrip.String(), startedTrip.Route()[0].Status)
	tripRepo.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestUpdateDriverLocationCommandHandler_Handle_HaulingWithoutStartedTrip(t *testing.T) {
	ctx := t.Context()

	loadID := kernel.NewUUID()
	testDrv := testDriver(t, driver.OnTrip, &loadID)
	point := testGeoPoint(t, 76.0, 15.0)

	cmd, err := commands.NewUpdateDriverLocationCommand(testDrv.ID(), point, nil, nil)
	require.NoError(t, err)

	driverRepo := new(MockDriverRepository)
	tripRepo := new(MockTripRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		uow.On("TripRepository").Return(tripRepo).Once(),
		driverRepo.On("Get", ctx, testDrv.ID()).Return(testDrv, nil).Once(),
		tripRepo.On("GetStartedByDriver", ctx, testDrv.ID()).Return(nil, nil).Once(),
		driverRepo.On("UpdateWithStatus", ctx, mock.AnythingOfType("*driver.Driver"), driver.OnTrip).
			Return(nil).
			Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := new(MockEventPublisher)
	publisher.On("Publish", ctx, ports.TopicDriverEvents, mock.AnythingOfType("ports.Event")).
		Return(nil).
		Once()

	handler := commands.NewUpdateDriverLocationCommandHandler(factory, publisher, discardLogger())
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	tripRepo.AssertNotCalled(t, "Update")
}

func TestUpdateDriverLocationCommandHandler_Handle_DriverNotFound(t *testing.T) {
	ctx := t.Context()

	driverID := kernel.NewUUID()
	point := testGeoPoint(t, 77.6, 13.0)

	cmd, err := commands.NewUpdateDriverLocationCommand(driverID, point, nil, nil)
	require.NoError(t, err)

	driverRepo := new(MockDriverRepository)
	tripRepo := new(MockTripRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		uow.On("TripRepository").Return(tripRepo).Once(),
		driverRepo.On("Get", ctx, driverID).Return(nil, errs.NewObjectNotFoundError("driver", driverID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpdateDriverLocationCommandHandler(factory, nil, discardLogger())
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestUpdateDriverLocationCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.UpdateDriverLocationCommand{} // not constructed properly

	factory := new(MockUoWFactory)
	handler := commands.NewUpdateDriverLocationCommandHandler(factory, nil, discardLogger())
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrUpdateDriverLocationCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}
