package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/portfolio-service/internal/api/http"
	"github.com/spec-kit/portfolio-service/internal/api/http/handlers"
	"github.com/spec-kit/portfolio-service/internal/auth"
	"github.com/spec-kit/portfolio-service/internal/config"
	"github.com/spec-kit/portfolio-service/internal/events"
	"github.com/spec-kit/portfolio-service/internal/observability"
	"github.com/spec-kit/portfolio-service/internal/persistence"
	"github.com/spec-kit/portfolio-service/internal/quotes"
	"github.com/spec-kit/portfolio-service/internal/repository"
	"github.com/spec-kit/portfolio-service/internal/service"
	"github.com/spec-kit/portfolio-service/internal/session"
	"github.com/spec-kit/portfolio-service/internal/worker"
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

	store, pg, err := buildStore(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("failed to build collection store", zap.Error(err))
	}
	defer pg.Close()

	sessions, redis := buildSessions(cfg, logger)
	defer redis.Close()

	users := repository.NewUserCollection(store)
	projects := repository.NewProjectCollection(store)

	dispatcher := events.NewInMemoryDispatcher()
	worker.StartNotificationWorker(service.NewNotificationService(dispatcher, logger))

	accountService := service.NewAccountService(*cfg, service.AccountDependencies{
		Users:    users,
		Sessions: sessions,
	})
	projectService := service.NewProjectService(service.ProjectDependencies{
		Projects:   projects,
		Dispatcher: dispatcher,
	})
	authMiddleware := auth.NewMiddleware(accountService.TokenManager(), sessions)

	metrics := observability.NewMetrics()

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Auth:           handlers.NewAuthHandler(accountService),
		Projects:       handlers.NewProjectsHandler(projectService),
		Review:         handlers.NewReviewHandler(projectService),
		Tips:           handlers.NewTipsHandler(quotes.NewClient(cfg.Quotes, logger)),
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

// buildStore selects the collection store backend. The returned Postgres
// wrapper is non-nil only for the postgres backend; health checks skip it
// otherwise.
func buildStore(ctx context.Context, cfg *config.Config, logger *zap.Logger) (persistence.Store, *persistence.Postgres, error) {
	switch cfg.Storage.CollectionBackend {
	case config.StorageBackendMemory:
		logger.Info("using in-memory collection store")
		return persistence.NewMemoryStore(), nil, nil
	case config.StorageBackendFile:
		store, err := persistence.NewFileStore(cfg.Storage.FileDir, logger)
		if err != nil {
			return nil, nil, err
		}
		return store, nil, nil
	case config.StorageBackendPostgres:
		pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
		if err != nil {
			return nil, nil, err
		}
		if pg.Pool == nil {
			return nil, nil, fmt.Errorf("postgres backend selected but POSTGRES_DSN is empty")
		}
		if cfg.Postgres.EnsureSchema {
			if err := persistence.EnsureSchema(ctx, pg.Pool, logger); err != nil {
				pg.Close()
				return nil, nil, err
			}
		}
		return persistence.NewPostgresStore(pg.Pool), pg, nil
	}
	return nil, nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.CollectionBackend)
}

// buildSessions selects the session holder backend. The returned Redis
// wrapper is non-nil only for the redis backend.
func buildSessions(cfg *config.Config, logger *zap.Logger) (session.Holder, *persistence.Redis) {
	if cfg.Storage.SessionBackend == config.SessionBackendRedis {
		redis := persistence.NewRedis(cfg.Redis, logger)
		return session.NewRedisHolder(redis.Client, cfg.Auth.SessionTTL()), redis
	}
	logger.Info("using in-memory session holder")
	return session.NewMemoryHolder(), nil
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
