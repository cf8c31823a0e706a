package cmd

import (
	"log/slog"

	"freight/internal/adapters/out/postgres"
	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/application/usecases/queries"
	"freight/internal/core/domain/services"
	"freight/internal/core/ports"
	"freight/internal/observability"

	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	publisher  ports.EventPublisher
	logger     *slog.Logger
	metrics    *observability.Metrics
}

func NewCompositionRoot(
	_ Config,
	gormDB *gorm.DB,
	publisher ports.EventPublisher,
	logger *slog.Logger,
	registry prometheus.Registerer,
) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		publisher:  publisher,
		logger:     logger,
		metrics:    observability.NewMetrics(registry),
	}
}

func (c *CompositionRoot) CreateCreateDriverCommandHandler() commands.CreateDriverCommandHandler {
	var f commands.DriverUoWFactory = FuncDriverUoWFactory(func() commands.DriverUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateDriverCommandHandler(f, c.publisher, c.logger)
}

func (c *CompositionRoot) CreateUpdateDriverLocationCommandHandler() observability.InstrumentedUpdateDriverLocationHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	inner := commands.NewUpdateDriverLocationCommandHandler(f, c.publisher, c.logger)
	return observability.NewInstrumentedUpdateDriverLocationHandler(inner, c.metrics)
}

func (c *CompositionRoot) CreateStartTripCommandHandler() observability.InstrumentedStartTripHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	inner := commands.NewStartTripCommandHandler(f, c.publisher, c.logger)
	return observability.NewInstrumentedStartTripHandler(inner, c.metrics)
}

func (c *CompositionRoot) CreateEndTripCommandHandler() observability.InstrumentedEndTripHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	inner := commands.NewEndTripCommandHandler(f, c.publisher, c.logger)
	return observability.NewInstrumentedEndTripHandler(inner, c.metrics)
}

func (c *CompositionRoot) CreateCreateLoadCommandHandler() commands.CreateLoadCommandHandler {
	var f commands.LoadUoWFactory = FuncLoadUoWFactory(func() commands.LoadUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateLoadCommandHandler(f)
}

func (c *CompositionRoot) CreateAssignLoadCommandHandler() commands.AssignLoadCommandHandler {
	var f commands.LoadUoWFactory = FuncLoadUoWFactory(func() commands.LoadUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignLoadCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateLoadStatusCommandHandler() commands.UpdateLoadStatusCommandHandler {
	var f commands.LoadUoWFactory = FuncLoadUoWFactory(func() commands.LoadUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateLoadStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateAssignNearestDriverCommandHandler() commands.AssignNearestDriverCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignNearestDriverCommandHandler(f, services.NewMatcher())
}

func (c *CompositionRoot) CreateGetDriverQueryHandler() queries.GetDriverQueryHandler {
	return queries.NewGetDriverQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetLoadsQueryHandler() queries.GetLoadsQueryHandler {
	return queries.NewGetLoadsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateFindNearbyDriversQueryHandler() queries.FindNearbyDriversQueryHandler {
	return queries.NewFindNearbyDriversQueryHandler(c.gormDB, services.NewMatcher())
}

func (c *CompositionRoot) CreateFindNearbyLoadsQueryHandler() queries.FindNearbyLoadsQueryHandler {
	return queries.NewFindNearbyLoadsQueryHandler(c.gormDB, services.NewMatcher())
}

func (c *CompositionRoot) CreateGetTripHistoryQueryHandler() queries.GetTripHistoryQueryHandler {
	return queries.NewGetTripHistoryQueryHandler(c.gormDB)
}

type FuncDriverUoWFactory func() commands.DriverUoW

func (f FuncDriverUoWFactory) Create() commands.DriverUoW {
	return f()
}

type FuncLoadUoWFactory func() commands.LoadUoW

func (f FuncLoadUoWFactory) Create() commands.LoadUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
