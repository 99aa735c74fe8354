package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"lnledger/config"
	httpHandler "lnledger/internal/adapter/http/handler"
	"lnledger/internal/adapter/lightning"
	pgStorage "lnledger/internal/adapter/storage/postgres"
	redisStorage "lnledger/internal/adapter/storage/redis"
	"lnledger/internal/core/ports"
	"lnledger/internal/service"
	"lnledger/pkg/logger"
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
		Msg("Starting lnledger")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Initialize PostgreSQL pool
	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	// Initialize Redis client
	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()

	// Initialize repositories
	walletRepo := pgStorage.NewWalletRepo(pool)
	txRepo := pgStorage.NewTransactionRepo(pool)
	transactor := pgStorage.NewTransactor(pool)

	// Initialize the change notification feed
	publisher := redisStorage.NewPublisher(rdb)

	// Initialize the node gateway client
	gateway := lightning.NewClient(cfg.Gateway, nil)

	// Initialize the settlement engine. Wallet CRUD is the embedding
	// application's surface; the daemon only drives reconciliation.
	settlementSvc := service.NewSettlementService(
		txRepo, walletRepo, gateway, publisher, transactor, pool,
		cfg.Gateway.PayTimeout, logger.Component(log, "settlement"),
	)

	// Start the reconciliation watcher
	watcher := service.NewWatcher(
		txRepo, settlementSvc, gateway, pool,
		cfg.Watcher.Interval, cfg.Watcher.Concurrency, logger.Component(log, "watcher"),
	)
	watcherDone := make(chan struct{})
	go func() {
		defer close(watcherDone)
		if err := watcher.Run(ctx); err != nil && ctx.Err() == nil {
			log.Error().Err(err).Msg("reconciliation watcher exited")
		}
	}()

	// Initialize health checkers
	pgHealth := pgStorage.NewHealthCheck(pool)
	redisHealth := redisStorage.NewHealthCheck(rdb)

	// Setup the operational HTTP surface
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		HealthCheckers: []ports.HealthChecker{pgHealth, redisHealth},
		Logger:         log,
	})

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	<-ctx.Done()
	log.Info().Msg("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	select {
	case <-watcherDone:
	case <-shutdownCtx.Done():
		log.Warn().Msg("reconciliation watcher did not stop in time")
	}

	log.Info().Msg("Exited")
}
