package main

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/flickerrrrrz/iprawnik/internal/adapter/api"
	"github.com/flickerrrrrz/iprawnik/internal/adapter/metrics"
	"github.com/flickerrrrrz/iprawnik/internal/adapter/repository/postgres"
	redisrepo "github.com/flickerrrrrz/iprawnik/internal/adapter/repository/redis"
	"github.com/flickerrrrrz/iprawnik/internal/pkg/config"
	"github.com/flickerrrrrz/iprawnik/internal/pkg/logger"
	"github.com/flickerrrrrz/iprawnik/internal/tenancy"
	"github.com/flickerrrrrz/iprawnik/internal/usecase"

	_ "github.com/lib/pq" // Keep for postgres driver
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := logger.New(cfg.LogLevel)
	slog.SetDefault(logger)

	m := metrics.NewTenancyMetrics()

	// --- Admin and Metrics Server ---
	adminMux := http.NewServeMux()
	adminMux.Handle("/metrics", promhttp.Handler())
	adminMux.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	adminServer := &http.Server{
		Addr:    cfg.AdminAddr,
		Handler: adminMux,
	}

	go func() {
		logger.Info("starting admin & metrics server", "addr", adminServer.Addr)
		if err := adminServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("admin & metrics server failed", "error", err)
		}
	}()

	// --- Graceful Shutdown Context ---
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- Database and Redis Connections ---
	db, err := sql.Open("postgres", cfg.PostgresURL)
	if err != nil {
		logger.Error("failed to connect to postgres", "error", err)
		os.Exit(1)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)

	redisOpts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		logger.Error("failed to parse redis url", "error", err)
		os.Exit(1)
	}
	redisClient := redis.NewClient(redisOpts)
	if err := redisClient.Ping(ctx).Err(); err != nil {
		logger.Warn("could not connect to redis, membership lookups will skip the cache", "error", err)
	}

	// --- Tenancy Layer ---
	var directory tenancy.Directory = postgres.NewDirectory(db, logger)
	directory = redisrepo.NewCachedDirectory(directory, redisClient, cfg.MembershipCacheTTL, logger, m)

	resolver := tenancy.NewContextResolver()
	binder := postgres.NewChannelBinder(db, logger)
	guard := tenancy.NewGuard(directory)
	scoper := tenancy.NewScoper(resolver, directory, binder, logger, m)

	// --- Repositories and Use Cases ---
	accountRepo := postgres.NewAccountRepository(db)
	matterRepo := postgres.NewMatterRepository()
	documentRepo := postgres.NewDocumentRepository()
	taskRepo := postgres.NewTaskRepository()

	deps := api.RouterDeps{
		Logger:     logger,
		Metrics:    m,
		JWTSecret:  cfg.JWTSecret,
		Auth:       usecase.NewAuthService(accountRepo, cfg.JWTSecret),
		Onboarding: usecase.NewOnboardingService(resolver, directory, logger),
		Members:    usecase.NewMemberService(scoper, guard, directory, logger, m),
		Matters:    usecase.NewMatterService(scoper, matterRepo, documentRepo),
		Documents:  usecase.NewDocumentService(scoper, documentRepo, matterRepo),
		Tasks:      usecase.NewTaskService(scoper, taskRepo, matterRepo),
	}

	apiServer := &http.Server{
		Addr:         cfg.ServerAddr,
		Handler:      api.NewRouter(deps),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  15 * time.Second,
	}

	go func() {
		logger.Info("starting api server", "addr", apiServer.Addr)
		if err := apiServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("api server failed", "error", err)
			stop() // Trigger shutdown on server error
		}
	}()

	// --- Wait for shutdown signal ---
	<-ctx.Done()
	logger.Info("shutting down servers...")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()

	if err := adminServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("admin server shutdown failed", "error", err)
	}
	if err := apiServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("api server shutdown failed", "error", err)
	}

	logger.Info("servers shut down gracefully")
}
