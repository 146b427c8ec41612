package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpAdapter "github.com/bayufn/artha/internal/adapter/http"
	"github.com/bayufn/artha/internal/adapter/http/handler"
	"github.com/bayufn/artha/internal/adapter/insight"
	postgresRepo "github.com/bayufn/artha/internal/adapter/repository/postgres"
	redisRepo "github.com/bayufn/artha/internal/adapter/repository/redis"
	"github.com/bayufn/artha/internal/infrastructure/config"
	"github.com/bayufn/artha/internal/infrastructure/logger"
	"github.com/bayufn/artha/internal/infrastructure/metrics"
	"github.com/bayufn/artha/internal/infrastructure/postgres"
	"github.com/bayufn/artha/internal/infrastructure/redis"
	"github.com/bayufn/artha/internal/state"
	"github.com/bayufn/artha/internal/syncer"
	"github.com/bayufn/artha/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})

	ctx := context.Background()

	// Connect to PostgreSQL
	pool, err := postgres.NewPool(ctx, cfg.DatabaseURL, cfg.DatabaseMaxConns, cfg.DatabaseMinConns)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer pool.Close()
	log.Info().Msg("connected to postgres")

	// Run migrations
	if err := postgres.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, log); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	// Connect to Redis
	redisClient, err := redis.NewClient(ctx, cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer redisClient.Close()
	log.Info().Msg("connected to redis")

	// Load the state document
	retrier := postgresRepo.NewRetrier(log)
	stateRepo := postgresRepo.NewStateRepository(pool, retrier)
	initial, activated, err := stateRepo.Load(ctx, cfg.UserID)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load state")
	}
	store := state.New(initial)
	log.Info().
		Str("user_id", cfg.UserID).
		Bool("activated", activated).
		Int("transactions", len(initial.Transactions)).
		Msg("state loaded")

	m := metrics.New()
	idGen := postgresRepo.NewULIDGenerator()
	cache := redisRepo.NewCache(redisClient)
	insightProvider := insight.NewGeminiProvider(cfg.InsightAPIURL, cfg.InsightAPIKey, cfg.InsightTimeout, log)

	// Initialize use cases
	transactionUC := usecase.NewTransactionUseCase(store, idGen, cache, log)
	catalogUC := usecase.NewCatalogUseCase(store, idGen)
	reportUC := usecase.NewReportUseCase(store)
	insightUC := usecase.NewInsightUseCase(store, insightProvider, cache, cfg.InsightTTL, log)
	activationUC := usecase.NewActivationUseCase(stateRepo, cfg.UserID, cfg.ActivationCode, activated)

	// Seed bill reminders for the current day
	if _, err := catalogUC.RefreshBillReminders(ctx, time.Now()); err != nil {
		log.Warn().Err(err).Msg("failed to seed bill reminders")
	}

	// Create router
	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		Logger:             log,
		TransactionHandler: handler.NewTransactionHandler(transactionUC),
		CatalogHandler:     handler.NewCatalogHandler(catalogUC),
		ReportHandler:      handler.NewReportHandler(reportUC),
		InsightHandler:     handler.NewInsightHandler(insightUC),
		StateHandler:       handler.NewStateHandler(store, activationUC),
		HealthHandler:      handler.NewHealthHandler(pool, redisClient),
		ActivationGate:     activationUC,
	})

	// Start the state syncer
	syncCtx, stopSync := context.WithCancel(ctx)
	sync := syncer.New(store, stateRepo, cfg.UserID, cfg.SaveDebounce, m, log)
	syncDone := make(chan struct{})
	go func() {
		defer close(syncDone)
		if err := sync.Run(syncCtx); err != nil {
			log.Error().Err(err).Msg("state syncer stopped with error")
		}
	}()

	// Create server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("port", cfg.HTTPPort).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
	}

	// Stop the syncer after the server so the final state gets flushed.
	stopSync()
	<-syncDone

	log.Info().Msg("server stopped")
}
