package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	httpadapter "adzone/internal/adapter/http"
	"adzone/internal/adapter/memory"
	"adzone/internal/adapter/postgres"
	redisadapter "adzone/internal/adapter/redis"
	"adzone/internal/adapter/usecase"
	"adzone/internal/config"
	"adzone/internal/config/configs"
	"adzone/internal/core/port"
	"adzone/internal/db"
	"adzone/internal/metrics"
)

// main is the entry point of the adzone service. It loads configuration,
// optionally runs database migrations and seeds demo data, wires storage,
// the dedup and selection stores, then starts the HTTP server. On receiving
// a termination signal it gracefully shuts down the server.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		return
	}
	logger := cfg.Log.New(os.Stdout).With(slog.String("env", cfg.Env))

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	repo, closeRepo, err := openRepository(ctx, cfg, logger)
	if err != nil {
		logger.Error("storage init error", slog.Any("error", err))
		return
	}
	defer closeRepo()

	cache, dedup, closeStores, err := openStores(ctx, cfg.Redis, logger)
	if err != nil {
		logger.Error("redis connection error", slog.Any("error", err))
		return
	}
	defer closeStores()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	zones := usecase.NewZoneRegistry(repo)
	if err = zones.Refresh(ctx); err != nil {
		logger.Warn("initial zone load failed", slog.Any("error", err))
	}
	go zones.Run(ctx, cfg.Engine.ZoneRefresh, logger)

	svc := usecase.NewAdUseCase(repo, cache, dedup,
		usecase.WithLogger(logger),
		usecase.WithMetrics(metrics.NewEngine(reg)),
		usecase.WithSelectionTTL(cfg.Engine.SelectionTTL),
		usecase.WithZoneRegistry(zones),
	)

	handler := httpadapter.NewHandler(svc, logger, promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:      handler.Router(),
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)), slog.String("storage", cfg.Engine.Storage))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", slog.Any("error", err))
			cancel()
		}
	}()

	<-ctx.Done()
	exitCode = 0

	shutdownCtx, stop := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer stop()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
		exitCode = 1
	} else {
		logger.Info("server gracefully stopped")
	}
}

func openRepository(ctx context.Context, cfg config.Config, logger *slog.Logger) (port.AdRepository, func(), error) {
	if cfg.Engine.Storage == configs.StorageMemory {
		repo := memory.NewAdRepository()
		if err := db.SeedMemory(ctx, repo, db.NewDemo(time.Now())); err != nil {
			return nil, nil, err
		}
		logger.Info("using in-memory storage with demo data")
		return repo, func() {}, nil
	}

	if cfg.Psql.RunMigrations {
		if err := db.Migrate(cfg.Psql.Addr.String()); err != nil {
			return nil, nil, fmt.Errorf("migrate: %w", err)
		}
		logger.Info("migrations applied successfully")
	}

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		return nil, nil, err
	}
	if cfg.Psql.Seed {
		if err = db.Seed(ctx, pool, db.NewDemo(time.Now())); err != nil {
			pool.Close()
			return nil, nil, fmt.Errorf("seed: %w", err)
		}
		logger.Info("demo data seeded")
	}
	return postgres.NewAdRepository(pool), pool.Close, nil
}

func openStores(ctx context.Context, cfg configs.Redis, logger *slog.Logger) (port.SelectionCache, port.DedupGuard, func(), error) {
	if !cfg.Enabled() {
		logger.Info("redis not configured, using in-process dedup and selection cache")
		return memory.NewSelectionCache(nil), memory.NewDedupGuard(nil), func() {}, nil
	}
	client, err := redisadapter.New(ctx, cfg)
	if err != nil {
		return nil, nil, nil, err
	}
	closeFn := func() {
		if err := client.Close(); err != nil {
			logger.Warn("redis close error", slog.Any("error", err))
		}
	}
	return client.SelectionCache(), client.DedupGuard(), closeFn, nil
}
