package cmd

import (
	"log/slog"

	httpadapter "marketplace/internal/adapters/in/http"
	"marketplace/internal/adapters/out/postgres"
	"marketplace/internal/adapters/out/redis/restaurantcache"
	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/ports"
	"marketplace/internal/jobs"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	cache      *restaurantcache.Cache
	metrics    *httpadapter.Metrics
	logger     *slog.Logger
}

// NewCompositionRoot wires the application. redisClient and publisher may be nil, which
// disables the restaurant cache and order event publishing.
func NewCompositionRoot(
	config Config,
	gormDB *gorm.DB,
	redisClient redis.Cmdable,
	publisher ports.OrderEventPublisher,
	logger *slog.Logger,
) CompositionRoot {
	root := CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB, publisher, logger),
		metrics:    httpadapter.NewMetrics(),
		logger:     logger,
	}
	if redisClient != nil {
		root.cache = restaurantcache.NewCache(redisClient, config.CacheTTL)
	}
	return root
}

func (c *CompositionRoot) CreateCreateRestaurantCommandHandler() commands.CreateRestaurantCommandHandler {
	var f commands.RestaurantUoWFactory = FuncRestaurantUoWFactory(func() commands.RestaurantUoW {
		return c.uowFactory.Create()
	})
	var invalidator commands.RestaurantCacheInvalidator
	if c.cache != nil {
		invalidator = c.cache
	}
	return commands.NewCreateRestaurantCommandHandler(f, invalidator)
}

func (c *CompositionRoot) CreateCreateDriverCommandHandler() commands.CreateDriverCommandHandler {
	var f commands.DriverUoWFactory = FuncDriverUoWFactory(func() commands.DriverUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateDriverCommandHandler(f)
}

func (c *CompositionRoot) CreateAddDriverBagCommandHandler() commands.AddDriverBagCommandHandler {
	var f commands.DriverUoWFactory = FuncDriverUoWFactory(func() commands.DriverUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddDriverBagCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, nil)
}

func (c *CompositionRoot) CreateAssignDriverCommandHandler() commands.AssignDriverCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignDriverCommandHandler(f)
}

func (c *CompositionRoot) CreateMoveDriversCommandHandler() commands.MoveDriversCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewMoveDriversCommandHandler(f)
}

func (c *CompositionRoot) CreateListRestaurantsQueryHandler() queries.ListRestaurantsQueryHandler {
	var cache queries.RestaurantPageCache
	if c.cache != nil {
		cache = c.cache
	}
	return queries.NewListRestaurantsQueryHandler(c.gormDB, cache)
}

func (c *CompositionRoot) CreateGetDeliveryQuoteQueryHandler() queries.GetDeliveryQuoteQueryHandler {
	return queries.NewGetDeliveryQuoteQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetActiveOrdersQueryHandler() queries.GetActiveOrdersQueryHandler {
	return queries.NewGetActiveOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllDriversQueryHandler() queries.GetAllDriversQueryHandler {
	return queries.NewGetAllDriversQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateMoveDriversCommandHandler(),
		c.CreateAssignDriverCommandHandler(),
		c.logger,
	)
}

func (c *CompositionRoot) CreateHTTPServer() *httpadapter.Server {
	return httpadapter.NewServer(httpadapter.Handlers{
		CreateRestaurant: c.CreateCreateRestaurantCommandHandler(),
		CreateDriver:     c.CreateCreateDriverCommandHandler(),
		AddDriverBag:     c.CreateAddDriverBagCommandHandler(),
		CreateOrder:      c.CreateCreateOrderCommandHandler(),
		ListRestaurants:  c.CreateListRestaurantsQueryHandler(),
		GetDeliveryQuote: c.CreateGetDeliveryQuoteQueryHandler(),
		GetActiveOrders:  c.CreateGetActiveOrdersQueryHandler(),
		GetAllDrivers:    c.CreateGetAllDriversQueryHandler(),
	}, c.metrics, c.config.DefaultLocale, c.config.Currency)
}

func (c *CompositionRoot) Metrics() *httpadapter.Metrics {
	return c.metrics
}

type FuncRestaurantUoWFactory func() commands.RestaurantUoW

func (f FuncRestaurantUoWFactory) Create() commands.RestaurantUoW {
	return f()
}

type FuncDriverUoWFactory func() commands.DriverUoW

func (f FuncDriverUoWFactory) Create() commands.DriverUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
