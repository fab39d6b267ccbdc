package cmd

import (
	"log/slog"
	"time"

	httpadapter "studiodesk/internal/adapters/in/http"
	"studiodesk/internal/adapters/out/cloudinarystore"
	"studiodesk/internal/adapters/out/postgres"
	"studiodesk/internal/adapters/out/postgres/catalogrepo"
	"studiodesk/internal/adapters/out/postgres/cleanupqueuerepo"
	"studiodesk/internal/adapters/out/postgres/transactionrepo"
	"studiodesk/internal/adapters/out/rediscache"
	"studiodesk/internal/core/application/usecases/commands"
	"studiodesk/internal/core/application/usecases/queries"
	"studiodesk/internal/core/domain/model/kernel"
	"studiodesk/internal/core/domain/services"
	"studiodesk/internal/core/ports"
	"studiodesk/internal/jobs"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	config          Config
	gormDB          *gorm.DB
	uowFactory      postgres.GormUnitOfWorkFactory
	catalogRepo     ports.CatalogRepository
	fileStore       ports.FileStore
	transitionGuard *commands.TransitionGuard
	logger          *slog.Logger
}

// NewCompositionRoot wires the adapters once; handler factories hand out
// cheap per-request values on top of them. A nil redis client disables
// catalog caching.
func NewCompositionRoot(
	config Config,
	gormDB *gorm.DB,
	redisClient *redis.Client,
	cloudinaryClient *cloudinary.Cloudinary,
	logger *slog.Logger,
) CompositionRoot {
	var catalogRepo ports.CatalogRepository = catalogrepo.NewGormCatalogRepository(gormDB)
	if redisClient != nil {
		catalogRepo = rediscache.NewCachedCatalogRepository(
			catalogRepo, redisClient, parseDuration(config.CatalogCacheTTL, 0), logger)
	}

	return CompositionRoot{
		config:          config,
		gormDB:          gormDB,
		uowFactory:      *postgres.NewGormUnitOfWorkFactory(gormDB),
		catalogRepo:     catalogRepo,
		fileStore:       cloudinarystore.NewCloudinaryFileStore(cloudinaryClient, config.CloudinaryFolder),
		transitionGuard: commands.NewTransitionGuard(),
		logger:          logger,
	}
}

func (c *CompositionRoot) CreateComposeOrderCommandHandler() commands.ComposeOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	composer := services.NewOrderComposer(services.NewOrderBucketer(), services.NewSettlementAllocator())
	return commands.NewComposeOrderCommandHandler(f, c.catalogRepo, services.NewPriceResolver(), composer)
}

func (c *CompositionRoot) CreateTransitionOrderStatusCommandHandler() commands.TransitionOrderStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewTransitionOrderStatusCommandHandler(f, c.transitionGuard)
}

func (c *CompositionRoot) CreateCreateTransactionCommandHandler() commands.CreateTransactionCommandHandler {
	var f commands.TransactionUoWFactory = FuncTransactionUoWFactory(func() commands.TransactionUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateTransactionCommandHandler(f)
}

func (c *CompositionRoot) CreateTransitionTransactionStatusCommandHandler() commands.TransitionTransactionStatusCommandHandler {
	var f commands.TransactionUoWFactory = FuncTransactionUoWFactory(func() commands.TransactionUoW {
		return c.uowFactory.Create()
	})
	return commands.NewTransitionTransactionStatusCommandHandler(f, c.transitionGuard)
}

func (c *CompositionRoot) CreateCreateServiceOrderCommandHandler() commands.CreateServiceOrderCommandHandler {
	var f commands.ServiceOrderUoWFactory = FuncServiceOrderUoWFactory(func() commands.ServiceOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateServiceOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateCompleteServiceOrderCommandHandler() commands.CompleteServiceOrderCommandHandler {
	var f commands.ServiceOrderUoWFactory = FuncServiceOrderUoWFactory(func() commands.ServiceOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCompleteServiceOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateSavePricingRuleCommandHandler() commands.SavePricingRuleCommandHandler {
	return commands.NewSavePricingRuleCommandHandler(c.catalogRepo)
}

func (c *CompositionRoot) CreateGetPhotoOrdersQueryHandler() queries.GetPhotoOrdersQueryHandler {
	return queries.NewGetPhotoOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetTransactionsQueryHandler() queries.GetTransactionsQueryHandler {
	return queries.NewGetTransactionsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetServiceOrdersQueryHandler() queries.GetServiceOrdersQueryHandler {
	return queries.NewGetServiceOrdersQueryHandler(c.gormDB)
}

// CreateHTTPServer assembles the echo server with every handler wired.
func (c *CompositionRoot) CreateHTTPServer() *httpadapter.Server {
	return httpadapter.NewServer(
		c.CreateComposeOrderCommandHandler(),
		c.CreateTransitionOrderStatusCommandHandler(),
		c.CreateCreateTransactionCommandHandler(),
		c.CreateTransitionTransactionStatusCommandHandler(),
		c.CreateCreateServiceOrderCommandHandler(),
		c.CreateCompleteServiceOrderCommandHandler(),
		c.CreateSavePricingRuleCommandHandler(),
		c.CreateGetPhotoOrdersQueryHandler(),
		c.CreateGetTransactionsQueryHandler(),
		c.CreateGetServiceOrdersQueryHandler(),
		c.catalogRepo,
		c.fileStore,
	)
}

// CreateJobManager assembles the background jobs.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	transactionRepo := transactionrepo.NewGormTransactionRepository(c.gormDB, noopTracker{})
	queueRepo := cleanupqueuerepo.NewGormCleanupQueueRepository(c.gormDB)

	cleanupJob := jobs.NewFileCleanupJob(
		transactionRepo,
		queueRepo,
		c.fileStore,
		c.config.CleanupSchedule,
		parseDuration(c.config.ReceiptAge, 0),
		parseDuration(c.config.UploadRetention, 0),
		c.logger,
	)
	return jobs.NewJobManager(cleanupJob)
}

// noopTracker satisfies the repositories' aggregate tracking hook outside a
// unit of work.
type noopTracker struct{}

func (noopTracker) TrackAggregate(_ kernel.UUID, _ any) {}

// parseDuration returns fallback for empty or malformed values; downstream
// constructors apply their own defaults on non-positive durations.
func parseDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}
	return parsed
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncTransactionUoWFactory func() commands.TransactionUoW

func (f FuncTransactionUoWFactory) Create() commands.TransactionUoW {
	return f()
}

type FuncServiceOrderUoWFactory func() commands.ServiceOrderUoW

func (f FuncServiceOrderUoWFactory) Create() commands.ServiceOrderUoW {
	return f()
}
