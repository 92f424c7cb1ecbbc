package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/curioyard/studio-api/internal/auth"
	"github.com/curioyard/studio-api/internal/config"
	"github.com/curioyard/studio-api/internal/database"
	"github.com/curioyard/studio-api/internal/http/handler"
	"github.com/curioyard/studio-api/internal/http/middleware"
	"github.com/curioyard/studio-api/internal/http/router"
	"github.com/curioyard/studio-api/internal/jobs"
	"github.com/curioyard/studio-api/internal/logger"
	"github.com/curioyard/studio-api/internal/render"
	"github.com/curioyard/studio-api/internal/repository"
	"github.com/curioyard/studio-api/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Initialize logger
	log, err := logger.NewLogger(&cfg.Logging, &cfg.App)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	log.Info("Starting application",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Environment),
		zap.Int("port", cfg.App.Port),
	)

	// Connect to database
	db, err := database.NewDatabase(&cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	// Auto-migrate in development; deployments run the migrate binary
	if cfg.App.Environment == "development" {
		if err := database.AutoMigrate(db); err != nil {
			return fmt.Errorf("failed to auto-migrate: %w", err)
		}
	}

	// Initialize repositories
	invoiceRepo := repository.NewInvoiceRepository(db)
	contractRepo := repository.NewContractRepository(db)
	sequenceRepo := repository.NewSequenceRepository(db)

	// Initialize services
	sequenceService := service.NewSequenceService(sequenceRepo, log)
	invoiceService := service.NewInvoiceService(invoiceRepo, sequenceService, log)
	contractService := service.NewContractService(contractRepo, sequenceService, log)
	statsService := service.NewStatsService(invoiceRepo, contractRepo, log)

	// Initialize document renderer
	renderer, err := render.NewRenderer()
	if err != nil {
		return fmt.Errorf("failed to initialize renderer: %w", err)
	}

	// Initialize middleware
	authMiddleware := auth.NewMiddleware(cfg, log)
	rateLimiter := middleware.NewRateLimiter(&cfg.RateLimit, log)

	// Initialize handlers
	invoiceHandler := handler.NewInvoiceHandler(invoiceService, renderer, log)
	contractHandler := handler.NewContractHandler(contractService, renderer, log)
	statsHandler := handler.NewStatsHandler(statsService, log)

	// Setup router
	rt := router.NewRouter(
		cfg,
		log,
		db,
		authMiddleware,
		rateLimiter,
		invoiceHandler,
		contractHandler,
		statsHandler,
	)

	// Start scheduler with the periodic stats refresh
	scheduler := jobs.NewScheduler(log)
	if err := jobs.RegisterStatsRefresh(scheduler, statsService, cfg.Stats.RefreshInterval(), log); err != nil {
		log.Error("Failed to register stats refresh job", zap.Error(err))
	} else {
		scheduler.Start()
		log.Info("Scheduler started with stats refresh job",
			zap.Duration("interval", cfg.Stats.RefreshInterval()),
		)
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      rt.Setup(),
		ReadTimeout:  cfg.Server.ReadTimeoutDuration(),
		WriteTimeout: cfg.Server.WriteTimeoutDuration(),
	}

	// Start server in goroutine
	serverErrors := make(chan error, 1)
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		serverErrors <- srv.ListenAndServe()
	}()

	// Wait for interrupt signal
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)
	case sig := <-shutdown:
		log.Info("Shutdown signal received", zap.String("signal", sig.String()))

		// Stop scheduler; running jobs complete first
		stopCtx := scheduler.Stop()
		<-stopCtx.Done()
		log.Info("Scheduler stopped")

		// Graceful shutdown with timeout
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			log.Error("Failed to shutdown gracefully", zap.Error(err))
			return err
		}

		log.Info("Server stopped gracefully")
	}

	return nil
}
