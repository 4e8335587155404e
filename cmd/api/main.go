package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/pawnshop-gateway/internal/api/http"
	"github.com/spec-kit/pawnshop-gateway/internal/api/http/handlers"
	"github.com/spec-kit/pawnshop-gateway/internal/auth"
	"github.com/spec-kit/pawnshop-gateway/internal/backend"
	"github.com/spec-kit/pawnshop-gateway/internal/config"
	"github.com/spec-kit/pawnshop-gateway/internal/events"
	"github.com/spec-kit/pawnshop-gateway/internal/notify"
	"github.com/spec-kit/pawnshop-gateway/internal/observability"
	"github.com/spec-kit/pawnshop-gateway/internal/persistence"
	"github.com/spec-kit/pawnshop-gateway/internal/repository"
	"github.com/spec-kit/pawnshop-gateway/internal/service"
	"github.com/spec-kit/pawnshop-gateway/internal/session"
	"github.com/spec-kit/pawnshop-gateway/internal/worker"
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

	rdb := persistence.NewRedis(cfg.Redis, logger)
	defer rdb.Close()

	metrics := observability.NewMetrics()
	dispatcher := events.NewInMemoryDispatcher()
	bus := notify.NewBus(cfg.Notify.DefaultDuration(), logger)
	sessions := session.NewStore(cfg.Session, rdb.Client, logger)
	upstream := backend.New(cfg.Backend, logger)

	var auditRepo repository.AuditRepository
	if pool := pg.PoolHandle(); pool != nil {
		auditRepo = repository.NewAuditRepository(pool)
	}
	auditService := service.NewAuditService(dispatcher, auditRepo, logger)
	worker.StartAuditWorker(auditService)

	authService := service.NewAuthService(upstream, sessions, bus, dispatcher, logger)
	tokens := auth.NewTokenManager(cfg.Auth.CookieSecret, cfg.Auth.CookieTTL())
	clientMiddleware := auth.NewClientMiddleware(tokens, cfg.Auth, logger)
	guard := auth.NewGuard(sessions, upstream, bus, dispatcher, metrics, logger)

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:        handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, rdb),
		Auth:          handlers.NewAuthHandler(authService),
		AdminAuth:     handlers.NewAdminAuthHandler(authService),
		Dashboard:     handlers.NewDashboardHandler(authService, upstream),
		Pawn:          handlers.NewPawnHandler(authService, upstream),
		Loans:         handlers.NewLoansHandler(authService, upstream),
		Shop:          handlers.NewShopHandler(authService, upstream),
		Admin:         handlers.NewAdminHandler(authService, upstream, auditService),
		Notifications: handlers.NewNotificationsHandler(bus),
		Client:        clientMiddleware,
		Guard:         guard,
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
