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

	httpadapter "mailcamp/internal/adapter/http"
	"mailcamp/internal/adapter/memory"
	"mailcamp/internal/adapter/postgres"
	redisadapter "mailcamp/internal/adapter/redis"
	"mailcamp/internal/adapter/tabular"
	"mailcamp/internal/adapter/usecase"
	"mailcamp/internal/config"
	"mailcamp/internal/core/port"
	"mailcamp/internal/db"
	"mailcamp/internal/metrics"
)

// main loads configuration, optionally migrates the schema, wires the
// store, cache and use cases, seeds an empty store when asked to and
// serves HTTP until a termination signal arrives.
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

	if cfg.Psql.RunMigrations {
		if err = db.Migrate(cfg.Psql.Addr.String(), logger); err != nil {
			logger.Error("migration error", slog.Any("error", err))
		} else {
			logger.Info("migrations applied successfully")
		}
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// The store connects on first use; an unreachable database fails
	// requests, not startup.
	pools := db.NewLazyPool(cfg.Psql)
	defer pools.Close()
	repo := postgres.NewCampaignRepository(pools)

	var cache port.CampaignCache = memory.NewCampaignCache(cfg.Redis.TTL)
	if cfg.Redis.Enabled {
		rdb, err := redisadapter.NewClient(ctx, cfg.Redis)
		if err != nil {
			logger.Warn("redis unavailable, using in-process cache", slog.Any("error", err))
		} else {
			defer rdb.Close()
			cache = redisadapter.NewCampaignCache(rdb, cfg.Redis.Key, cfg.Redis.TTL)
		}
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	rec := metrics.NewRecorder(reg)

	ingest := usecase.NewIngestUseCase(repo, cache, tabular.NewReader(), rec, logger, cfg.Ingest)
	query := usecase.NewCampaignQueryUseCase(repo, cache, rec, logger)

	if cfg.Seed.Campaigns > 0 {
		seedEmptyStore(ctx, logger, repo, ingest, cfg.Seed.Campaigns)
	}

	handler := httpadapter.NewHandler(ingest, query,
		promhttp.HandlerFor(reg, promhttp.HandlerOpts{}), cfg.HTTP.MaxUploadBytes, logger)
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:           handler.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", slog.Any("error", err))
			cancel()
		}
	}()

	<-ctx.Done()
	exitCode = 0

	shutdownCtx, stop := context.WithTimeout(context.Background(), 5*time.Second)
	defer stop()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
		exitCode = 1
	} else {
		logger.Info("server gracefully stopped")
	}
}

func seedEmptyStore(ctx context.Context, logger *slog.Logger, repo port.CampaignRepository, ingest port.IngestUseCase, n int) {
	count, err := repo.Count(ctx)
	if err != nil {
		logger.Error("seed skipped", slog.Any("error", err))
		return
	}
	if count > 0 {
		logger.Info("seed skipped, store is not empty", slog.Int64("documents", count))
		return
	}
	report, err := db.Seed(ctx, ingest, n, time.Now())
	if err != nil {
		logger.Error("seed failed", slog.Any("error", err))
		return
	}
	logger.Info("seeded sample campaigns",
		slog.Int("inserted", report.InsertedCount), slog.Int("failed", len(report.Failures)))
}
