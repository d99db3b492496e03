package cmd

import (
	"log/slog"
	"strings"

	"linenflow/internal/adapters/out/kafka"
	"linenflow/internal/adapters/out/kvstore"
	"linenflow/internal/adapters/out/postgres"
	"linenflow/internal/adapters/out/postgres/orderrepo"
	"linenflow/internal/adapters/out/propertysvc"
	"linenflow/internal/core/application/projections"
	"linenflow/internal/core/application/usecases/commands"
	"linenflow/internal/core/application/usecases/queries"
	"linenflow/internal/core/domain/services"
	"linenflow/internal/core/ports"
	"linenflow/internal/jobs"

	"gorm.io/gorm"
)

// CompositionRoot wires adapters into the application's use cases. One
// instance is created at startup and shared; every Create* method hands out
// a handler bound to the shared infrastructure.
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory

	reconciler      *services.PickupReconciler
	publisher       ports.OrderEventPublisher
	localCache      ports.LocalCache
	propertyClient  *propertysvc.Client
	projectionStore *projections.Store
	recomputer      *projections.Recomputer

	logger *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) (*CompositionRoot, error) {
	root := &CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		reconciler: services.NewPickupReconciler(),
		localCache: kvstore.NewMemoryStore(),
		logger:     logger,
	}

	producer, err := kafka.NewOrderChangedProducer(
		strings.Split(config.KafkaHost, ","), config.KafkaOrderChangedTopic)
	if err != nil {
		return nil, err
	}
	root.publisher = producer

	propertyClient, err := propertysvc.NewClient(config.PropertyServiceHost, root.localCache, logger)
	if err != nil {
		return nil, err
	}
	root.propertyClient = propertyClient

	root.projectionStore = projections.NewStore(root.localCache, logger)

	readRepo := orderrepo.NewGormOrderRepository(gormDB, orderrepo.NoTracking{})
	recomputer, err := projections.NewRecomputer(readRepo, root.reconciler, root.projectionStore)
	if err != nil {
		return nil, err
	}
	root.recomputer = recomputer

	return root, nil
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory(), c.publisher, c.logger)
}

func (c *CompositionRoot) CreateClaimOrderCommandHandler() commands.ClaimOrderCommandHandler {
	return commands.NewClaimOrderCommandHandler(c.orderUoWFactory(), c.publisher, c.logger)
}

func (c *CompositionRoot) CreateReleaseOrderCommandHandler() commands.ReleaseOrderCommandHandler {
	return commands.NewReleaseOrderCommandHandler(c.orderUoWFactory(), c.publisher, c.logger)
}

func (c *CompositionRoot) CreateDepartCommandHandler() commands.DepartCommandHandler {
	return commands.NewDepartCommandHandler(c.orderUoWFactory(), c.publisher, c.logger)
}

func (c *CompositionRoot) CreateDeliverOrderCommandHandler() commands.DeliverOrderCommandHandler {
	return commands.NewDeliverOrderCommandHandler(c.orderUoWFactory(), c.publisher, c.logger)
}

func (c *CompositionRoot) CreateSettlePickupCommandHandler() commands.SettlePickupCommandHandler {
	return commands.NewSettlePickupCommandHandler(c.orderUoWFactory(), c.reconciler, c.publisher, c.logger)
}

func (c *CompositionRoot) CreateGetAvailableOrdersQueryHandler() queries.GetAvailableOrdersQueryHandler {
	return queries.NewGetAvailableOrdersQueryHandler(c.gormDB, c.propertyClient, c.propertyClient, c.logger)
}

func (c *CompositionRoot) CreateGetInTransitOrdersQueryHandler() queries.GetInTransitOrdersQueryHandler {
	return queries.NewGetInTransitOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDeliveredTodayQueryHandler() queries.GetDeliveredTodayQueryHandler {
	return queries.NewGetDeliveredTodayQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPickupProjectionQueryHandler() queries.GetPickupProjectionQueryHandler {
	readRepo := orderrepo.NewGormOrderRepository(c.gormDB, orderrepo.NoTracking{})
	return queries.NewGetPickupProjectionQueryHandler(readRepo, c.reconciler)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.recomputer, c.logger)
}

// CreateOrderChangedConsumer builds the change-feed consumer. Every received
// tick triggers a full projection recompute from the repository.
func (c *CompositionRoot) CreateOrderChangedConsumer(config Config) (*kafka.OrderChangedConsumer, error) {
	return kafka.NewOrderChangedConsumer(
		strings.Split(config.KafkaHost, ","),
		config.KafkaConsumerGroup,
		config.KafkaOrderChangedTopic,
		c.recomputer.Recompute,
		c.logger,
	)
}

func (c *CompositionRoot) ProjectionStore() *projections.Store {
	return c.projectionStore
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
