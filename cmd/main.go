package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"reklamito/internal/adapter/clickhouse"
	httpadapter "reklamito/internal/adapter/http"
	"reklamito/internal/adapter/postgres"
	"reklamito/internal/adapter/redis"
	"reklamito/internal/adapter/usecase"
	"reklamito/internal/config"
	"reklamito/internal/db"
	"reklamito/internal/useragent"
)

// main is the entry point of the service. It loads configuration,
// optionally runs database migrations and seeds demo data, connects to
// PostgreSQL, Redis and ClickHouse, wires the tracking and management
// use cases, then starts the HTTP server. On receiving a termination
// signal it gracefully shuts down the server.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	var logger *slog.Logger
	{
		// Initialise structured logger based on configuration.
		var handler slog.Handler
		level := cfg.Log.SlogLevel()
		switch cfg.Log.SlogFormat() {
		case "json":
			handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		default:
			handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		}
		logger = slog.New(handler)
	}

	// Optionally run migrations if configured. We use the Psql sub‑config.
	if cfg.Psql.RunMigrations {
		if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
			logger.Error("migration error", slog.Any("error", err))
		} else {
			logger.Info("migrations applied successfully")
		}
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		logger.Error("database connection error", slog.Any("error", err))
		os.Exit(1)
	}
	defer pool.Close()

	if cfg.Psql.RunSeed {
		if err = db.Seed(ctx, pool); err != nil {
			logger.Error("seed error", slog.Any("error", err))
		} else {
			logger.Info("demo data loaded")
		}
	}

	rdb, err := db.NewRedisClient(ctx, cfg.Redis)
	if err != nil {
		logger.Error("redis connection error", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() { _ = rdb.Close() }()

	chConn, err := db.NewClickHouseConn(ctx, cfg.ClickHouse)
	if err != nil {
		logger.Error("clickhouse connection error", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() { _ = chConn.Close() }()

	clients := postgres.NewClientRepository(pool)
	campaigns := postgres.NewCampaignRepository(pool)
	banners := postgres.NewBannerRepository(pool)
	billing := postgres.NewBillingRepository(pool)
	experiments := postgres.NewExperimentRepository(pool)
	identity := postgres.NewIdentityRepository(pool)
	counters := redis.NewCounterStore(rdb)
	sink := clickhouse.NewSink(chConn)

	tracking := usecase.NewTracking(banners, sink, counters, useragent.New(), logger, cfg.Strict())
	admin := usecase.NewAdmin(clients, campaigns, banners, clients, counters, billing, experiments, logger)

	handler := httpadapter.NewHandler(tracking, admin, identity, logger)
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler: handler.Router(),
	}

	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err = srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.Any("error", err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	value := <-quit
	exitCode = 128 + int(value.(syscall.Signal))

	ctx, cancel = context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err = srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	} else {
		logger.Info("server gracefully stopped")
	}
}
