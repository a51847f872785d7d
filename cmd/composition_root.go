package cmd

import (
	"log/slog"

	"tracking/internal/adapters/out/notification"
	"tracking/internal/adapters/out/postgres"
	redis_adapter "tracking/internal/adapters/out/redis"
	"tracking/internal/core/application/usecases/commands"
	"tracking/internal/core/application/usecases/queries"
	"tracking/internal/core/ports"
	"tracking/internal/jobs"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	dispatcher ports.NotificationDispatcher
	emailCache ports.RecipientEmailCache
	logger     *slog.Logger
}

func NewCompositionRoot(
	config Config,
	gormDB *gorm.DB,
	redisClient *redis.Client,
	logger *slog.Logger,
) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		dispatcher: notification.NewHTTPDispatcher(config.NotificationServiceURL, logger),
		emailCache: redis_adapter.NewEmailCache(redisClient, logger),
		logger:     logger,
	}
}

func (c *CompositionRoot) parcelUoWFactory() commands.ParcelUoWFactory {
	return FuncParcelUoWFactory(func() commands.ParcelUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateRegisterParcelCommandHandler() commands.RegisterParcelCommandHandler {
	return commands.NewRegisterParcelCommandHandler(c.parcelUoWFactory(), c.dispatcher)
}

func (c *CompositionRoot) CreateMarkAtCentralCommandHandler() commands.MarkAtCentralCommandHandler {
	return commands.NewMarkAtCentralCommandHandler(c.parcelUoWFactory(), c.emailCache, c.dispatcher)
}

func (c *CompositionRoot) CreateMarkInRouteCommandHandler() commands.MarkInRouteCommandHandler {
	return commands.NewMarkInRouteCommandHandler(c.parcelUoWFactory(), c.emailCache, c.dispatcher)
}

func (c *CompositionRoot) CreateMarkDeliveredCommandHandler() commands.MarkDeliveredCommandHandler {
	return commands.NewMarkDeliveredCommandHandler(c.parcelUoWFactory(), c.emailCache, c.dispatcher)
}

func (c *CompositionRoot) CreateGetParcelQueryHandler() queries.GetParcelQueryHandler {
	return queries.NewGetParcelQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOverdueParcelsQueryHandler() queries.GetOverdueParcelsQueryHandler {
	return queries.NewGetOverdueParcelsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateGetOverdueParcelsQueryHandler(), c.logger)
}

type FuncParcelUoWFactory func() commands.ParcelUoW

func (f FuncParcelUoWFactory) Create() commands.ParcelUoW {
	return f()
}
