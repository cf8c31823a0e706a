package commands_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/domain/model/driver"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/load"
	"freight/internal/core/domain/model/trip"
	"freight/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockDriverRepository struct{ mock.Mock }

func (m *MockDriverRepository) Add(ctx context.Context, d *driver.Driver) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDriverRepository) Update(ctx context.Context, d *driver.Driver) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDriverRepository) UpdateWithStatus(ctx context.Context, d *driver.Driver, prevStatus driver.Status) error {
	args := m.Called(ctx, d, prevStatus)
	return args.Error(0)
}

func (m *MockDriverRepository) Get(ctx context.Context, id kernel.UUID) (*driver.Driver, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*driver.Driver), args.Error(1)
}

func (m *MockDriverRepository) GetByUserID(ctx context.Context, userID kernel.UUID) (*driver.Driver, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*driver.Driver), args.Error(1)
}

func (m *MockDriverRepository) ExistsWithProfile(
	ctx context.Context,
	userID kernel.UUID,
	licenseNumber string,
	registrationNumber string,
) (bool, error) {
	args := m.Called(ctx, userID, licenseNumber, registrationNumber)
	return args.Bool(0), args.Error(1)
}

func (m *MockDriverRepository) GetAllAvailable(ctx context.Context) ([]*driver.Driver, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*driver.Driver), args.Error(1)
}

type MockLoadRepository struct{ mock.Mock }

func (m *MockLoadRepository) Add(ctx context.Context, l *load.Load) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}

func (m *MockLoadRepository) Update(ctx context.Context, l *load.Load) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}

func (m *MockLoadRepository) UpdateWithStatus(ctx context.Context, l *load.Load, prevStatus load.Status) error {
	args := m.Called(ctx, l, prevStatus)
	return args.Error(0)
}

func (m *MockLoadRepository) Get(ctx context.Context, id kernel.UUID) (*load.Load, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*load.Load), args.Error(1)
}

func (m *MockLoadRepository) GetFirstPending(ctx context.Context) (*load.Load, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*load.Load), args.Error(1)
}

func (m *MockLoadRepository) GetAllPending(ctx context.Context) ([]*load.Load, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*load.Load), args.Error(1)
}

type MockTripRepository struct{ mock.Mock }

func (m *MockTripRepository) Add(ctx context.Context, t *trip.Trip) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockTripRepository) Update(ctx context.Context, t *trip.Trip) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockTripRepository) UpdateWithStatus(ctx context.Context, t *trip.Trip, prevStatus trip.Status) error {
	args := m.Called(ctx, t, prevStatus)
	return args.Error(0)
}

func (m *MockTripRepository) Get(ctx context.Context, id kernel.UUID) (*trip.Trip, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*trip.Trip), args.Error(1)
}

func (m *MockTripRepository) GetStartedByDriver(ctx context.Context, driverID kernel.UUID) (*trip.Trip, error) {
	args := m.Called(ctx, driverID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*trip.Trip), args.Error(1)
}

// MockUoW implements every unit of work flavor the handlers depend on;
// tests only register expectations for the repositories a handler uses.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) DriverRepository() ports.DriverRepository {
	args := m.Called()
	return args.Get(0).(ports.DriverRepository)
}

func (m *MockUoW) LoadRepository() ports.LoadRepository {
	args := m.Called()
	return args.Get(0).(ports.LoadRepository)
}

func (m *MockUoW) TripRepository() ports.TripRepository {
	args := m.Called()
	return args.Get(0).(ports.TripRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockDriverUoWFactory struct{ mock.Mock }

func (m *MockDriverUoWFactory) Create() commands.DriverUoW {
	args := m.Called()
	return args.Get(0).(commands.DriverUoW)
}

type MockLoadUoWFactory struct{ mock.Mock }

func (m *MockLoadUoWFactory) Create() commands.LoadUoW {
	args := m.Called()
	return args.Get(0).(commands.LoadUoW)
}

type MockEventPublisher struct{ mock.Mock }

func (m *MockEventPublisher) Publish(ctx context.Context, topic string, event ports.Event) error {
	args := m.Called(ctx, topic, event)
	return args.Error(0)
}

func (m *MockEventPublisher) Close() error {
	args := m.Called()
	return args.Error(0)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func testGeoPoint(t *testing.T, lon, lat float64) kernel.GeoPoint {
	t.Helper()
	point, err := kernel.NewGeoPoint(lon, lat)
	require.NoError(t, err)
	return point
}

func testVehicle() driver.Vehicle {
	return driver.Vehicle{
		Type:               "container",
		RegistrationNumber: "KA01AB1234",
		CapacityTons:       12,
	}
}

// testDriver builds a driver in the given status, hauling loadID when
// the status is on_trip.
func testDriver(t *testing.T, status driver.Status, loadID *kernel.UUID) *driver.Driver {
	t.Helper()

	d, err := driver.NewDriver(
		kernel.NewUUID(),
		kernel.NewUUID(),
		"DL-2026-0042",
		time.Now().UTC().AddDate(3, 0, 0),
		5,
		testVehicle(),
		testGeoPoint(t, 77.5946, 12.9716),
	)
	require.NoError(t, err)

	switch status {
	case driver.Available:
		require.NoError(t, d.ChangeStatus(driver.Available))
	case driver.OnTrip:
		require.NoError(t, d.ChangeStatus(driver.Available))
		require.NotNil(t, loadID)
		require.NoError(t, d.BeginTrip(*loadID))
	case driver.Offline, driver.Maintenance, driver.Unknown:
		// offline is the onboarding default
	}

	return d
}

func testLoadLocation(t *testing.T, lon, lat float64) load.Location {
	t.Helper()
	return load.Location{
		Point: testGeoPoint(t, lon, lat),
		Address: kernel.Address{
			Street:  "1 Industrial Estate",
			City:    "Bengaluru",
			State:   "Karnataka",
			Pincode: "560001",
		},
	}
}

// testLoad builds a pending load picked up near Bengaluru.
func testLoad(t *testing.T) *load.Load {
	t.Helper()

	l, err := load.NewLoad(
		kernel.NewUUID(),
		kernel.NewUUID(),
		testLoadLocation(t, 77.5946, 12.9716),
		testLoadLocation(t, 72.8777, 19.0760),
		load.Cargo{Type: "electronics", WeightTons: 8, VolumeCubic: 20, Description: "palletized"},
		load.Pricing{BasePrice: 45000, Commission: 4500, TotalPrice: 49500},
		load.Schedule{
			PickupDate:   time.Now().UTC().Add(24 * time.Hour),
			DeliveryDate: time.Now().UTC().Add(72 * time.Hour),
		},
	)
	require.NoError(t, err)

	return l
}

func testStop(t *testing.T, lon, lat float64) trip.Stop {
	t.Helper()
	return trip.Stop{
		Point:   testGeoPoint(t, lon, lat),
		Address: "1 Industrial Estate, Bengaluru",
	}
}
