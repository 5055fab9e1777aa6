package app

import (
	"context"
	"fmt"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/propview/properties-backend/internal/db"
	"github.com/propview/properties-backend/internal/pkg/logger"
	"github.com/propview/properties-backend/internal/platform/cache"
)

type App struct {
	Log      *logger.Logger
	Mongo    *db.MongoService
	Cache    *cache.Service
	Router   *gin.Engine
	Cfg      Config
	Repos    Repos
	Services Services
}

func New(ctx context.Context) (*App, error) {
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	log.Info("Loading environment variables...")
	cfg := LoadConfig(log)

	mongoService, err := db.NewMongoService(ctx, log)
	if err != nil {
		log.Sync()
		return nil, fmt.Errorf("init mongodb: %w", err)
	}
	if err := mongoService.EnsureIndexes(ctx); err != nil {
		log.Sync()
		return nil, fmt.Errorf("ensure mongodb indexes: %w", err)
	}

	cacheService := cache.New(log, cfg.RedisAddr, cfg.RedisPassword, cfg.CacheTTL)

	reposet := wireRepos(mongoService.Database(), log)
	serviceset := wireServices(log, reposet, cacheService)
	handlerset := wireHandlers(log, serviceset)
	router := wireRouter(log, handlerset)

	return &App{
		Log:      log,
		Mongo:    mongoService,
		Cache:    cacheService,
		Router:   router,
		Cfg:      cfg,
		Repos:    reposet,
		Services: serviceset,
	}, nil
}

func (a *App) Run() error {
	if a == nil || a.Router == nil {
		return fmt.Errorf("app not initialized")
	}
	a.Log.Info("Server starting", "port", a.Cfg.HTTPPort)
	return a.Router.Run(":" + a.Cfg.HTTPPort)
}

func (a *App) Close(ctx context.Context) {
	if a == nil {
		return
	}
	if a.Mongo != nil {
		if err := a.Mongo.Close(ctx); err != nil {
			a.Log.Warn("MongoDB disconnect failed", "error", err)
		}
	}
	if a.Log != nil {
		a.Log.Sync()
	}
}
