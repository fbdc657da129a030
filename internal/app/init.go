package app

import (
	"context"
	"fmt"
	"net/http"

	server "github.com/admin/astro-services/natal-api/internal/adapters/primary/http"
	healthcheckController "github.com/admin/astro-services/natal-api/internal/adapters/primary/http/controllers/healthcheck"
	natalController "github.com/admin/astro-services/natal-api/internal/adapters/primary/http/controllers/natal"
	ephemerisAdapter "github.com/admin/astro-services/natal-api/internal/adapters/secondary/ephemeris"
	kafkaAdapter "github.com/admin/astro-services/natal-api/internal/adapters/secondary/kafka"
	"github.com/admin/astro-services/natal-api/internal/adapters/secondary/storage/pg"
	redisAdapter "github.com/admin/astro-services/natal-api/internal/adapters/secondary/storage/redis"
	"github.com/admin/astro-services/natal-api/internal/ports/cache"
	kafkaPort "github.com/admin/astro-services/natal-api/internal/ports/kafka"
	"github.com/admin/astro-services/natal-api/internal/ports/service"
	userRepo "github.com/admin/astro-services/natal-api/internal/repository/user"
	ephemerisService "github.com/admin/astro-services/natal-api/internal/services/ephemeris"
	jobScheduler "github.com/admin/astro-services/natal-api/internal/services/jobs"
	natalUsecase "github.com/admin/astro-services/natal-api/internal/usecases/natal"
	"github.com/jmoiron/sqlx"
)

type Dependencies struct {
	DB           *sqlx.DB
	HTTPServer   *http.Server
	Cache        cache.Cache
	Producer     kafkaPort.IProducer
	JobScheduler *jobScheduler.Scheduler
}

// initDependencies инициализирует все зависимости приложения
func (a *App) initDependencies(ctx context.Context) (*Dependencies, error) {
	db, err := a.initPostgres()
	if err != nil {
		return nil, fmt.Errorf("failed to init postgres: %w", err)
	}

	persistenceLayer := pg.NewDB(db)
	users := userRepo.New(persistenceLayer, a.Log)

	ephemeris, err := a.initEphemeris()
	if err != nil {
		return nil, err
	}

	cacheClient := a.initCache()
	producer := a.initKafka()

	natalService := natalUsecase.New(users, ephemeris, cacheClient, producer, a.Log)

	natal := natalController.New(natalService, a.Log)
	healthCheck := healthcheckController.New(db, a.Log)

	httpServer := server.NewHTTPServer(a.Cfg.Server, a.Log, healthCheck, natal)

	scheduler := a.initJobScheduler(ephemeris, cacheClient)

	return &Dependencies{
		DB:           db,
		HTTPServer:   httpServer,
		Cache:        cacheClient,
		Producer:     producer,
		JobScheduler: scheduler,
	}, nil
}

// initEphemeris инициализирует клиент эфемеридного API (обязательный)
func (a *App) initEphemeris() (service.IEphemerisService, error) {
	if a.Cfg.Ephemeris == nil || a.Cfg.Ephemeris.BaseURL == "" {
		return nil, fmt.Errorf("ephemeris API configuration is missing")
	}

	client := ephemerisAdapter.NewClient(a.Cfg.Ephemeris, a.Log)
	return ephemerisService.New(client), nil
}

// initCache инициализирует Redis-кэш (опциональный)
func (a *App) initCache() cache.Cache {
	if !a.Cfg.CacheOn || a.Cfg.Redis == nil {
		a.Log.Info("cache is disabled")
		return nil
	}

	rdb, err := a.Cfg.Redis.NewConnection()
	if err != nil {
		a.Log.Warn("failed to connect to redis, continuing without cache", "error", err)
		return nil
	}

	a.Log.Info("redis connected successfully")
	return redisAdapter.NewClient(rdb)
}

// initKafka инициализирует Kafka producer (опциональный)
func (a *App) initKafka() kafkaPort.IProducer {
	if a.Cfg.Kafka == nil || !a.Cfg.Kafka.Enabled {
		a.Log.Info("kafka producer is disabled")
		return nil
	}

	producer, err := kafkaAdapter.NewProducer(a.Cfg.Kafka, a.Log)
	if err != nil {
		a.Log.Warn("failed to create kafka producer, continuing without events", "error", err)
		return nil
	}

	return producer
}

// initJobScheduler инициализирует планировщик джоб (работает только при включённом кеше)
func (a *App) initJobScheduler(ephemeris service.IEphemerisService, cacheClient cache.Cache) *jobScheduler.Scheduler {
	if !a.Cfg.Jobs.Enabled {
		return nil
	}

	if cacheClient == nil {
		a.Log.Warn("jobs enabled but cache is not available, scheduler not created")
		return nil
	}

	scheduler := jobScheduler.NewScheduler(a.Log)
	scheduler.Register(jobScheduler.NewPositionsRefresher(ephemeris, cacheClient, a.Cfg.Jobs.PositionsCity, a.Log))
	return scheduler
}
