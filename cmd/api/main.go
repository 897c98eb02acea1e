package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"marketplace-settlement/config"
	httpHandler "marketplace-settlement/internal/adapter/http/handler"
	"marketplace-settlement/internal/adapter/notify"
	pgStorage "marketplace-settlement/internal/adapter/storage/postgres"
	redisStorage "marketplace-settlement/internal/adapter/storage/redis"
	"marketplace-settlement/internal/core/ports"
	"marketplace-settlement/internal/service"
	"marketplace-settlement/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Msg("Starting Commission Settlement Engine")

	ctx := context.Background()

	// Initialize PostgreSQL pool
	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()
	log.Info().Msg("PostgreSQL connected")

	// Initialize Redis client
	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()
	log.Info().Msg("Redis connected")

	// Initialize Kafka writer
	kafkaWriter := notify.NewWriter(cfg.Kafka)
	defer kafkaWriter.Close()
	dispatcher := notify.NewKafkaDispatcher(kafkaWriter)

	// Initialize repositories
	walletRepo := pgStorage.NewWalletRepo(pool)
	txRepo := pgStorage.NewWalletTransactionRepo(pool)
	commissionRepo := pgStorage.NewCommissionRepo(pool)
	registry := pgStorage.NewVendorRegistryRepo(pool)
	transactor := pgStorage.NewTransactor(pool)

	// Initialize Redis stores
	summaryCache := redisStorage.NewSummaryCache(rdb)

	// Initialize business services
	breaker := service.NewCircuitBreaker(cfg.Settlement.BreakerThreshold, cfg.Settlement.BreakerResetTimeout)
	ledgerSvc := service.NewLedgerService(walletRepo, txRepo, registry, transactor, log)
	settlementSvc := service.NewSettlementService(
		commissionRepo,
		walletRepo,
		txRepo,
		ledgerSvc,
		registry,
		transactor,
		breaker,
		dispatcher,
		dispatcher,
		summaryCache,
		cfg.Settlement,
		log,
	)
	reportingSvc := service.NewReportingService(
		commissionRepo,
		walletRepo,
		txRepo,
		summaryCache,
		cfg.Settlement.SummaryCacheTTL,
		log,
	)

	// Start the daily housekeeping scheduler
	scheduler := service.NewScheduler(commissionRepo, dispatcher, summaryCache, cfg.Settlement, log)
	if err := scheduler.Start(); err != nil {
		log.Fatal().Err(err).Msg("Failed to start scheduler")
	}
	defer scheduler.Stop()

	// Initialize health checkers
	pgHealth := pgStorage.NewHealthCheck(pool)
	redisHealth := redisStorage.NewHealthCheck(rdb)

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		SettlementSvc:  settlementSvc,
		ReportingSvc:   reportingSvc,
		LedgerSvc:      ledgerSvc,
		WalletRepo:     walletRepo,
		HealthCheckers: []ports.HealthChecker{pgHealth, redisHealth},
		Logger:         log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
