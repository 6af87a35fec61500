package app

import (
	"myretro/internal/app/health"
	"myretro/internal/app/retro"
	"myretro/internal/config"
	"myretro/internal/db"
	"myretro/internal/db/seeder"
	"myretro/internal/gateways/websocket"
	"myretro/internal/providers/redis"
	"myretro/internal/router"
	"myretro/internal/utils"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Application struct {
	Router *router.Router
	DB     *gorm.DB
	Redis  *redis.RedisProvider
	Hub    *websocket.Hub
}

func Bootstrap(cfg *config.Config, logger *zap.Logger) (*Application, error) {
	dbConn, err := db.Connect(cfg, logger)
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(dbConn, logger); err != nil {
		return nil, err
	}

	if cfg.Seed {
		if err := seeder.NewSeeder(dbConn, logger).Seed(); err != nil {
			logger.Warn("Failed to run seeders", zap.Error(err))
		}
	}

	var redisProvider *redis.RedisProvider
	checker := &utils.HealthChecker{DB: dbConn}
	if cfg.CacheEnabled() {
		redisProvider = redis.NewRedisProvider(cfg.RedisURL, logger, cfg.RedisTTL)
		checker.Redis = redisProvider.Client
	} else {
		logger.Info("REDIS_URL not set, retro board cache disabled")
	}

	eventBus := utils.NewEventBus()
	hub := websocket.NewHub(logger, eventBus)
	go hub.Run()

	retroRepo := retro.NewRepository(dbConn)
	retroService := retro.NewService(retroRepo, redisProvider, eventBus, logger)

	r := router.NewRouter(logger, cfg.FrontendURL)

	r.RegisterHealthRoutes(health.NewHandler(checker))
	r.RegisterWebSocketRoutes(hub)
	r.RegisterRetroRoutes(retro.NewHandler(retroService))
	r.RegisterSwaggerRoutes()

	return &Application{
		Router: r,
		DB:     dbConn,
		Redis:  redisProvider,
		Hub:    hub,
	}, nil
}

// Close releases the database and cache connections.
func (a *Application) Close() error {
	if a.Redis != nil {
		if err := a.Redis.Close(); err != nil {
			return err
		}
	}
	sqlDB, err := a.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
