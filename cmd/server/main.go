package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/niko-dev25/threadirc/internal/api"
	"github.com/niko-dev25/threadirc/internal/core/ports"
	"github.com/niko-dev25/threadirc/internal/core/service"
	"github.com/niko-dev25/threadirc/internal/core/store"
	"github.com/niko-dev25/threadirc/internal/infrastructure/config"
	mongodb "github.com/niko-dev25/threadirc/internal/infrastructure/db/mongo"
	redisdb "github.com/niko-dev25/threadirc/internal/infrastructure/db/redis"
	"github.com/niko-dev25/threadirc/internal/infrastructure/queue"
	"github.com/niko-dev25/threadirc/pkg/logger"
)

const (
	tokenTTL        = 24 * time.Hour
	shutdownTimeout = 10 * time.Second
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Redis always runs: it holds the session snapshot, and by default the
	// forum document too.
	rdb, err := redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
	if err != nil {
		return fmt.Errorf("connect redis: %w", err)
	}
	defer func() { _ = rdb.Close() }()

	// Mongo always runs too: the audit trail lives there regardless of the
	// forum backend.
	mongoClient, mongoDatabase, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		return fmt.Errorf("connect mongo: %w", err)
	}
	defer func() { _ = mongoClient.Disconnect(context.Background()) }()

	var forumRepo ports.ForumRepository
	switch cfg.StorageBackend {
	case "mongo":
		forumRepo = mongodb.NewForumRepository(mongoDatabase)
	default:
		forumRepo = redisdb.NewForumStore(rdb)
	}

	forum, err := store.Open(ctx, forumRepo, log)
	if err != nil {
		return fmt.Errorf("open forum store: %w", err)
	}

	auditRepo := mongodb.NewAuditRepository(mongoDatabase)
	if err := auditRepo.EnsureIndexes(ctx); err != nil {
		log.Warn().Err(err).Msg("audit index creation failed")
	}
	auditService := service.NewAuditService(auditRepo, log)

	dispatcher := queue.NewDispatcher(cfg.AuditWorkers, auditService, log)
	dispatcher.Start(ctx)

	sessions := redisdb.NewSessionStore(rdb)
	authService := service.NewAuthService(forum, sessions, dispatcher, cfg.JWTSecret, tokenTTL)
	contentService := service.NewContentService(forum, dispatcher, log)
	roleService := service.NewRoleService(forum, dispatcher, log)

	e := api.NewRouter(api.Deps{
		Forum:       forum,
		Auth:        authService,
		Content:     contentService,
		Roles:       roleService,
		Audit:       auditService,
		JWTSecret:   cfg.JWTSecret,
		Log:         log,
		MongoClient: mongoClient,
		RedisClient: rdb,
	})

	errCh := make(chan error, 1)
	go func() {
		log.Info().
			Str("port", cfg.Port).
			Str("env", cfg.Env).
			Str("storage_backend", cfg.StorageBackend).
			Msg("starting threadirc")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server: %w", err)
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
