package main

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"gorm.io/gorm"

	"github.com/rewear/exchange/internal/api"
	v1 "github.com/rewear/exchange/internal/api/v1"
	"github.com/rewear/exchange/internal/api/v1/middleware"
	xvalidator "github.com/rewear/exchange/internal/api/validator"
	"github.com/rewear/exchange/internal/cache"
	"github.com/rewear/exchange/internal/config"
	apperrors "github.com/rewear/exchange/internal/errors"
	"github.com/rewear/exchange/internal/metrics"
	"github.com/rewear/exchange/internal/notify"
	"github.com/rewear/exchange/internal/repository"
	"github.com/rewear/exchange/internal/service"
	"github.com/rewear/exchange/pkg/mysql"

	"github.com/redis/go-redis/v9"
)

func main() {
	fx.New(
		fx.Provide(
			config.Load,
			zap.NewProduction,
			NewFiberApp,
			NewConnectionDB,
			NewRedisClient,
			NewNotifier,
			NewAuthConfig,
			NewValidate,
			metrics.NewMetrics,
			metrics.NewDatabaseMetricsCollector,
			xvalidator.NewXValidator,

			repository.NewTransactionManager,
			repository.NewUserRepository,
			repository.NewItemRepository,
			repository.NewSwapRequestRepository,
			repository.NewTransactionRepository,
			repository.NewCategoryRepository,
			repository.NewFavoriteRepository,

			service.NewLedgerService,
			service.NewUserService,
			service.NewItemService,
			service.NewSwapService,
			service.NewStatsService,
			service.NewFavoriteService,

			v1.NewHandler,
		),
		fx.Invoke(startServer),
	).Run()
}

func startServer(app *fiber.App, handler *v1.Handler, cfg *config.Config,
	userRepo repository.UserRepository, m *metrics.Metrics,
	dbCollector *metrics.DatabaseMetricsCollector, logger *zap.Logger, lc fx.Lifecycle,
) {
	app.Use(metrics.HealthCheckMiddleware("exchange-api", dbCollector))
	app.Use(metrics.HTTPMetricsMiddleware(m, logger))
	app.Use(middleware.NewRateLimiter(rate.Limit(10), 30).Handler())

	api.SetupRoutes(app, handler, cfg.Auth.JWTSecret, userRepo)

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			dbCollector.Start(30 * time.Second)
			go app.Listen(cfg.API.Port)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			dbCollector.Stop()
			return app.ShutdownWithContext(ctx)
		},
	})
}

func NewFiberApp() *fiber.App {
	return fiber.New(fiber.Config{ErrorHandler: apperrors.ErrorHandler()})
}

func NewConnectionDB(cfg *config.Config, logger *zap.Logger) (*gorm.DB, error) {
	return mysql.NewConnection(context.Background(), cfg.Database, logger)
}

func NewRedisClient(cfg *config.Config, logger *zap.Logger) (*redis.Client, error) {
	return cache.NewClient(context.Background(), cfg.Redis, logger)
}

func NewNotifier(cfg *config.Config, logger *zap.Logger) *notify.Service {
	return notify.NewService(cfg.Mailgun, logger)
}

func NewAuthConfig(cfg *config.Config) service.AuthConfig {
	return cfg.Auth
}

func NewValidate() *validator.Validate {
	return validator.New()
}
