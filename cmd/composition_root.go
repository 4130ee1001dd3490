package cmd

import (
	"log/slog"

	httpadapter "routeboard/internal/adapters/in/http"
	"routeboard/internal/adapters/out/postgres"
	"routeboard/internal/adapters/out/sequencegw"
	"routeboard/internal/core/application/editor"
	"routeboard/internal/core/application/usecases/commands"
	"routeboard/internal/core/application/usecases/queries"
	"routeboard/internal/core/ports"
	"routeboard/internal/jobs"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	logger     *slog.Logger

	registry *editor.Registry
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) *CompositionRoot {
	c := &CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:     logger,
	}

	c.registry = editor.NewRegistry(c.CreateOrderReader(), c.CreateSequenceGateway(), editor.Config{
		SaveTimeout:          config.SaveTimeout,
		DropOverlapThreshold: config.DropOverlapThreshold,
		Logger:               logger,
	})

	return c
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateDeliverOrderCommandHandler() commands.DeliverOrderCommandHandler {
	return commands.NewDeliverOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateSaveSequenceCommandHandler() commands.SaveSequenceCommandHandler {
	return commands.NewSaveSequenceCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateGetDayOrdersQueryHandler() queries.GetDayOrdersQueryHandler {
	return queries.NewGetDayOrdersQueryHandler(c.gormDB)
}

// CreateOrderReader returns a repository outside any transaction, for board loads.
func (c *CompositionRoot) CreateOrderReader() ports.OrderReader {
	return c.uowFactory.Create().OrderRepository()
}

func (c *CompositionRoot) CreateSequenceGateway() ports.SequenceGateway {
	return sequencegw.New(c.CreateSaveSequenceCommandHandler(), sequencegw.WithLogger(c.logger))
}

func (c *CompositionRoot) Registry() *editor.Registry {
	return c.registry
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.registry, c.CreateOrderReader(), jobs.Config{
		RefreshSchedule: c.config.RefreshSchedule,
		IdleTimeout:     c.config.SessionIdleTimeout,
	}, c.logger)
}

func (c *CompositionRoot) CreateHTTPServer() (*echo.Echo, error) {
	createOrder := c.CreateCreateOrderCommandHandler()

	server := httpadapter.NewServer(
		&createOrder,
		c.CreateDeliverOrderCommandHandler(),
		c.CreateCancelOrderCommandHandler(),
		c.CreateSaveSequenceCommandHandler(),
		c.CreateGetDayOrdersQueryHandler(),
		c.registry,
		c.logger,
	)

	return httpadapter.NewEcho(server, c.logger)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
