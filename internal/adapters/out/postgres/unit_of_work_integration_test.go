package postgres_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "freight/internal/adapters/out/postgres"
	"freight/internal/adapters/out/postgres/driverrepo"
	"freight/internal/adapters/out/postgres/loadrepo"
	"freight/internal/adapters/out/postgres/triprepo"
	"freight/internal/core/domain/model/driver"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/load"
	"freight/internal/core/domain/model/trip"
	"freight/internal/core/ports"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite provides integration testing for the
// GORM-based Unit of Work implementation with a real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

// SetupSuite initializes the PostgreSQL container and database connection
// and runs migrations to prepare the schema.
func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(
		&driverrepo.DriverDTO{},
		&loadrepo.LoadDTO{},
		&loadrepo.TrackingEntryDTO{},
		&triprepo.TripDTO{},
		&triprepo.RouteSampleDTO{},
	)
	suite.Require().NoError(err)

	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

// SetupTest ensures clean database state before each test.
func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE drivers, loads, load_tracking_entries, trips, trip_route_samples").Error
	suite.Require().NoError(err)
}

// TearDownSuite cleans up the PostgreSQL container after all tests complete.
func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

// TestUnitOfWorkFactory_Create verifies the factory creates isolated unit
// of work instances that each expose all three repositories.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")

	suite.NotNil(uow1.DriverRepository(), "First instance should provide driver repository")
	suite.NotNil(uow1.LoadRepository(), "First instance should provide load repository")
	suite.NotNil(uow1.TripRepository(), "First instance should provide trip repository")
	suite.NotNil(uow2.DriverRepository(), "Second instance should provide driver repository")
	suite.NotNil(uow2.LoadRepository(), "Second instance should provide load repository")
	suite.NotNil(uow2.TripRepository(), "Second instance should provide trip repository")
}

// TestUnitOfWork_TransactionLifecycle verifies begin, commit and rollback.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Begin(ctx)
	suite.Require().NoError(err, "Should begin transaction successfully")

	err = uow.Begin(ctx)
	suite.Require().NoError(err, "Multiple begin calls should be safe")

	err = uow.Commit(ctx)
	suite.Require().NoError(err, "Should commit transaction successfully")

	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err, "Should rollback transaction successfully")
}

// TestUnitOfWork_TransactionErrors verifies error handling for commit and
// rollback without an active transaction.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Commit(ctx)
	suite.Require().Error(err, "Should error when committing without active transaction")

	err = uow.Rollback(ctx)
	suite.Require().Error(err, "Should error when rolling back without active transaction")
}

// TestUnitOfWork_SingleRepositoryTransaction verifies repository operations
// within a single transaction boundary persist after commit.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_SingleRepositoryTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testDriver := suite.createTestDriver("DL-2026-5001")

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.DriverRepository().Add(ctx, testDriver)
	suite.Require().NoError(err)

	retrieved, err := uow.DriverRepository().Get(ctx, testDriver.ID())
	suite.Require().NoError(err)
	suite.True(retrieved.ID().IsEqual(testDriver.ID()))

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()
	retrieved, err = newUow.DriverRepository().Get(ctx, testDriver.ID())
	suite.Require().NoError(err)
	suite.True(retrieved.ID().IsEqual(testDriver.ID()))
}

// TestUnitOfWork_MultiRepositoryTransaction verifies the trip start
// choreography persists atomically: the trip row, the driver's on_trip
// status, and the load assignment all land in one commit.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_MultiRepositoryTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testDriver := suite.createTestDriver("DL-2026-5002")
	err := testDriver.ChangeStatus(driver.Available)
	suite.Require().NoError(err)

	testLoad := suite.createTestLoad()
	err = testLoad.Assign(testDriver.ID())
	suite.Require().NoError(err)

	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.DriverRepository().Add(ctx, testDriver)
	suite.Require().NoError(err)
	err = uow.LoadRepository().Add(ctx, testLoad)
	suite.Require().NoError(err)

	err = testDriver.BeginTrip(testLoad.ID())
	suite.Require().NoError(err)
	err = uow.DriverRepository().Update(ctx, testDriver)
	suite.Require().NoError(err)

	testTrip, err := trip.NewTrip(
		kernel.NewUUID(),
		testDriver.ID(),
		testLoad.ID(),
		trip.Stop{Point: testDriver.Location(), Address: "Bengaluru"},
	)
	suite.Require().NoError(err)
	err = uow.TripRepository().Add(ctx, testTrip)
	suite.Require().NoError(err)

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()

	retrievedDriver, err := newUow.DriverRepository().Get(ctx, testDriver.ID())
	suite.Require().NoError(err)
	suite.Equal(driver.OnTrip, retrievedDriver.Status())
	suite.Require().NotNil(retrievedDriver.ActiveLoadID())
	suite.True(retrievedDriver.ActiveLoadID().IsEqual(testLoad.ID()))

	retrievedLoad, err := newUow.LoadRepository().Get(ctx, testLoad.ID())
	suite.Require().NoError(err)
	suite.Equal(load.Assigned, retrievedLoad.Status())

	retrievedTrip, err := newUow.TripRepository().Get(ctx, testTrip.ID())
	suite.Require().NoError(err)
	suite.Equal(trip.Started, retrievedTrip.Status())
	suite.True(retrievedTrip.DriverID().IsEqual(testDriver.ID()))
}

// TestUnitOfWork_TransactionRollback verifies rollback discards all changes
// across repositories.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionRollback() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testDriver := suite.createTestDriver("DL-2026-5003")
	testLoad := suite.createTestLoad()

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.DriverRepository().Add(ctx, testDriver)
	suite.Require().NoError(err)
	err = uow.LoadRepository().Add(ctx, testLoad)
	suite.Require().NoError(err)

	_, err = uow.DriverRepository().Get(ctx, testDriver.ID())
	suite.Require().NoError(err)
	_, err = uow.LoadRepository().Get(ctx, testLoad.ID())
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()

	_, err = newUow.DriverRepository().Get(ctx, testDriver.ID())
	suite.Require().Error(err, "Driver should not exist after rollback")

	_, err = newUow.LoadRepository().Get(ctx, testLoad.ID())
	suite.Require().Error(err, "Load should not exist after rollback")
}

// TestUnitOfWork_RepositoryIsolation verifies that uncommitted changes in
// one unit of work are invisible to another.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RepositoryIsolation() {
	ctx := context.Background()

	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	testDriver := suite.createTestDriver("DL-2026-5004")

	err := uow1.Begin(ctx)
	suite.Require().NoError(err)
	err = uow1.DriverRepository().Add(ctx, testDriver)
	suite.Require().NoError(err)

	_, err = uow2.DriverRepository().Get(ctx, testDriver.ID())
	suite.Require().Error(err, "Uncommitted driver should be invisible to other unit of work")

	err = uow1.Commit(ctx)
	suite.Require().NoError(err)

	retrieved, err := uow2.DriverRepository().Get(ctx, testDriver.ID())
	suite.Require().NoError(err)
	suite.True(retrieved.ID().IsEqual(testDriver.ID()))
}

func (suite *UnitOfWorkIntegrationTestSuite) createTestDriver(licenseNumber string) *driver.Driver {
	location, err := kernel.NewGeoPoint(77.5946, 12.9716)
	suite.Require().NoError(err)

	testDriver, err := driver.NewDriver(
		kernel.NewUUID(),
		kernel.NewUUID(),
		licenseNumber,
		time.Now().UTC().AddDate(2, 0, 0),
		6,
		driver.Vehicle{
			Type:               "container",
			RegistrationNumber: "KA01" + licenseNumber[len(licenseNumber)-4:],
			CapacityTons:       12,
		},
		location,
	)
	suite.Require().NoError(err)

	return testDriver
}

func (suite *UnitOfWorkIntegrationTestSuite) createTestLoad() *load.Load {
	pickupPoint, err := kernel.NewGeoPoint(77.5946, 12.9716)
	suite.Require().NoError(err)
	deliveryPoint, err := kernel.NewGeoPoint(72.8777, 19.0760)
	suite.Require().NoError(err)

	testLoad, err := load.NewLoad(
		kernel.NewUUID(),
		kernel.NewUUID(),
		load.Location{
			Point:   pickupPoint,
			Address: kernel.Address{Street: "12 Residency Rd", City: "Bengaluru", State: "Karnataka", Pincode: "560025"},
		},
		load.Location{
			Point:   deliveryPoint,
			Address: kernel.Address{Street: "8 Marine Dr", City: "Mumbai", State: "Maharashtra", Pincode: "400020"},
		},
		load.Cargo{Type: "electronics", WeightTons: 8, VolumeCubic: 20},
		load.Pricing{BasePrice: 45000, Commission: 4500, TotalPrice: 49500},
		load.Schedule{
			PickupDate:   time.Now().UTC().AddDate(0, 0, 1),
			DeliveryDate: time.Now().UTC().AddDate(0, 0, 3),
		},
	)
	suite.Require().NoError(err)

	return testLoad
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
