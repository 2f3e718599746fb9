package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/interior-market/internal/api/http"
	"github.com/spec-kit/interior-market/internal/api/http/handlers"
	"github.com/spec-kit/interior-market/internal/auth"
	"github.com/spec-kit/interior-market/internal/config"
	"github.com/spec-kit/interior-market/internal/events"
	"github.com/spec-kit/interior-market/internal/observability"
	"github.com/spec-kit/interior-market/internal/payment"
	"github.com/spec-kit/interior-market/internal/persistence"
	"github.com/spec-kit/interior-market/internal/repository"
	"github.com/spec-kit/interior-market/internal/service"
	"github.com/spec-kit/interior-market/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	pool := pg.PoolHandle()
	userRepo := repository.NewUserRepository(pool)
	consultationRepo := repository.NewConsultationRepository(pool)
	designRepo := repository.NewDesignRepository(pool)
	projectRepo := repository.NewProjectRepository(pool)

	dispatcher := events.NewInMemoryDispatcher()

	authService := service.NewAuthService(*cfg, userRepo)
	consultationService := service.NewConsultationService(consultationRepo, userRepo, dispatcher)
	designService := service.NewDesignService(designRepo, dispatcher)
	projectService := service.NewProjectService(projectRepo, dispatcher)

	gateway := payment.NewGateway(cfg.Payment)
	orderStore := payment.NewRedisOrderStore(redis.Client, cfg.Payment.OrderTTL())
	paymentService := service.NewPaymentService(gateway, orderStore, cfg.Payment.KeySecret, dispatcher)

	notificationService := service.NewNotificationService(dispatcher, logger, cfg.Notification)
	worker.StartNotificationWorker(notificationService)

	authMiddleware := auth.NewAuthMiddleware(authService.TokenManager(), userRepo)

	metrics := observability.NewMetrics()

	app := fiber.New(fiber.Config{
		AppName:               cfg.App.Name,
		DisableStartupMessage: cfg.App.IsProduction(),
	})
	httptransport.RegisterMiddlewares(app, logger, metrics, httptransport.MiddlewareConfig{
		Timeout:        cfg.App.RequestTimeout(),
		IncludeDetails: !cfg.App.IsProduction(),
	})

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Auth:           handlers.NewAuthHandler(authService),
		Consultations:  handlers.NewConsultationsHandler(consultationService),
		Designs:        handlers.NewDesignsHandler(designService),
		Projects:       handlers.NewProjectsHandler(projectService),
		Payments:       handlers.NewPaymentsHandler(paymentService),
		AuthMiddleware: authMiddleware,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
