package bootstrap

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"logo-backend/internal/logos"
	"logo-backend/internal/services/health"
	"logo-backend/internal/shared/cache"
	"logo-backend/internal/shared/config"
	"logo-backend/internal/shared/server"
	"logo-backend/internal/shared/server/middleware"
	"logo-backend/internal/shared/storage/db"
	"logo-backend/internal/shared/storage/object"
	localstore "logo-backend/internal/shared/storage/object/local"
	s3store "logo-backend/internal/shared/storage/object/s3"
	"logo-backend/internal/shared/telemetry"
	"logo-backend/logo/raster"
)

const startupPingTimeout = 3 * time.Second

// App holds shared dependencies and the wired router.
type App struct {
	Config       config.Config
	Router       *gin.Engine
	DB           *sql.DB
	Store        object.ObjectStore
	Cache        cache.Cache
	LogosRepo    logos.Repo
	LogosService *logos.Service
	LogosHandler *logos.Handler
	Health       *health.Service
}

// Build prepares shared dependencies and wires routes.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	if strings.TrimSpace(cfg.ObjectStoreType) == "" {
		cfg.ObjectStoreType = "local"
	}
	if !isDevLike(cfg.Env) {
		gin.SetMode(gin.ReleaseMode)
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	store, err := buildStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	c, err := buildCache(ctx, cfg)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config: cfg,
		DB:     sqlDB,
		Store:  store,
		Cache:  c,
	}
	if err := buildServices(app); err != nil {
		return nil, err
	}

	app.Router = server.NewRouter(server.RouterDeps{
		Config:      app.Config,
		LogoHandler: app.LogosHandler,
		Health:      app.Health,
		Limiter:     middleware.NewRateLimiter(nil),
	})

	return app, nil
}

// Close releases the database and cache connections.
func (a *App) Close() error {
	var errs []error
	if a.Cache != nil {
		errs = append(errs, a.Cache.Close())
	}
	if a.DB != nil {
		errs = append(errs, a.DB.Close())
	}
	return errors.Join(errs...)
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			telemetry.Info("bootstrap.memory_repositories", map[string]any{"reason": "DATABASE_URL empty"})
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if isDevLike(cfg.Env) {
			telemetry.Warn("bootstrap.memory_repositories", map[string]any{"reason": "database connect failed", "error": err})
			return nil, nil
		}
		return nil, err
	}

	if isDevLike(cfg.Env) {
		if err := db.RunMigrations(ctx, sqlDB); err != nil {
			_ = sqlDB.Close()
			return nil, fmt.Errorf("run migrations: %w", err)
		}
	}
	return sqlDB, nil
}

func buildStore(ctx context.Context, cfg config.Config) (object.ObjectStore, error) {
	switch cfg.ObjectStoreType {
	case "s3":
		if strings.TrimSpace(cfg.S3Bucket) == "" {
			return nil, fmt.Errorf("OBJECT_STORE=s3 requires S3_BUCKET")
		}
		return s3store.New(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix, cfg.SSEKMSKeyID)
	default:
		return localstore.New(cfg.LocalStoreDir), nil
	}
}

func buildCache(ctx context.Context, cfg config.Config) (cache.Cache, error) {
	c, err := cache.New(cfg.RedisURL)
	if err != nil {
		return nil, err
	}
	if _, nop := c.(cache.Nop); nop {
		return c, nil
	}

	pingCtx, cancel := context.WithTimeout(ctx, startupPingTimeout)
	defer cancel()
	if err := c.Ping(pingCtx); err != nil {
		if isDevLike(cfg.Env) {
			telemetry.Warn("bootstrap.cache_disabled", map[string]any{"error": err})
			_ = c.Close()
			return cache.Nop{}, nil
		}
		_ = c.Close()
		return nil, err
	}
	return c, nil
}

func buildServices(app *App) error {
	var repo logos.Repo
	if app.DB != nil {
		repo = &logos.PGRepo{DB: app.DB}
	} else {
		repo = logos.NewMemoryRepo()
	}

	maxImage := app.Config.MaxImagePx
	if maxImage <= 0 {
		maxImage = 256
	}
	pngSize := app.Config.PNGDefaultSize
	if pngSize <= 0 {
		pngSize = raster.DefaultSize
	}

	svc := &logos.Service{
		Repo:           repo,
		Store:          app.Store,
		Cache:          app.Cache,
		CacheTTL:       app.Config.CacheTTL,
		MaxImagePx:     maxImage,
		PNGDefaultSize: pngSize,
	}

	checks := map[string]health.Pinger{}
	if app.DB != nil {
		checks["database"] = health.PingFunc(app.DB.PingContext)
	}
	if _, nop := app.Cache.(cache.Nop); app.Cache != nil && !nop {
		checks["cache"] = app.Cache
	}

	app.LogosRepo = repo
	app.LogosService = svc
	app.LogosHandler = logos.NewHandler(svc)
	app.Health = health.NewService(checks)
	return nil
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local", "test":
		return true
	default:
		return false
	}
}
