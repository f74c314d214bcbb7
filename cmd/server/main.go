package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nirmaan-labs/nirmaan/internal"
	"github.com/nirmaan-labs/nirmaan/internal/domain"
	"github.com/nirmaan-labs/nirmaan/internal/handler"
	"github.com/nirmaan-labs/nirmaan/internal/metrics"
	"github.com/nirmaan-labs/nirmaan/internal/middleware"
	"github.com/nirmaan-labs/nirmaan/internal/repository"
	"github.com/nirmaan-labs/nirmaan/internal/repository/memory"
	"github.com/nirmaan-labs/nirmaan/internal/repository/postgres"
	"github.com/nirmaan-labs/nirmaan/internal/repository/sqlite"
	"github.com/nirmaan-labs/nirmaan/internal/schema"
	"github.com/nirmaan-labs/nirmaan/internal/seed"
	"github.com/nirmaan-labs/nirmaan/internal/service"
	"github.com/nirmaan-labs/nirmaan/internal/storage"
	"github.com/nirmaan-labs/nirmaan/internal/worker"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func run() error {
	ctx := context.Background()

	// Load configuration
	cfg, err := internal.NewConfig()
	if err != nil {
		return fmt.Errorf("config initialization failed: %w", err)
	}

	// Configure logger
	logger := internal.NewLogger(os.Stdout, cfg.Env, cfg.LogLevel)

	// Open the store
	store, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer store.Close()
	logger.Info("Store ready", "driver", cfg.StoreDriver)

	// Seed portfolio and admin account on first start
	if err := seed.Run(ctx, store, cfg.AdminUsername, cfg.AdminPassword, cfg.AdminName, logger); err != nil {
		return fmt.Errorf("seeding failed: %w", err)
	}

	// Object storage for project images
	files, err := openStorage(cfg, logger)
	if err != nil {
		return err
	}

	// Compile form schemas
	validator, err := schema.NewValidator()
	if err != nil {
		return fmt.Errorf("schema compilation failed: %w", err)
	}

	// Initialize services
	userService := service.NewUserService(store, store, logger)
	contactService := service.NewContactService(store, logger)
	projectService := service.NewProjectService(store, files, service.NewImagingProcessor(), logger)

	// Initialize middleware
	isSecure := cfg.Env != "development"
	authMw := middleware.NewAuthMiddleware(userService, logger, isSecure)
	loggingMw := middleware.NewRequestLoggingMiddleware(logger)
	securityMw := middleware.NewSecurityHeadersMiddleware(isSecure)
	metricsAuthMw := middleware.NewMetricsAuthMiddleware(cfg.MetricsUsername, cfg.MetricsPassword)

	contactLimiter := middleware.NewRateLimiter(cfg.ContactRateLimit, cfg.RateLimitWindow, logger)
	loginLimiter := middleware.NewRateLimiter(cfg.LoginRateLimit, cfg.RateLimitWindow, logger)
	contactLimit := middleware.NewRateLimitMiddleware(contactLimiter, logger).Limit
	loginLimit := middleware.NewRateLimitMiddleware(loginLimiter, logger).Limit

	// Initialize handlers
	contactHandler := handler.NewContactHandler(contactService, validator, logger)
	projectHandler := handler.NewProjectHandler(projectService, logger)
	calculatorHandler := handler.NewCalculatorHandler(logger)
	dashboardHandler := handler.NewDashboardHandler(contactService, logger)
	authHandler := handler.NewAuthHandler(userService, func(r *http.Request) *domain.AdminUser {
		return middleware.GetUser(r.Context())
	}, logger, isSecure)

	// ==========================================================================
	// Create router and register routes
	// ==========================================================================

	mux := http.NewServeMux()

	// Health check
	mux.HandleFunc("GET /health", handler.Health)

	// Metrics (basic auth)
	mux.Handle("GET /metrics", metricsAuthMw.Handler(promhttp.Handler()))

	// Locally stored project images
	if cfg.StorageProvider == storage.ProviderLocal {
		filesFS := http.FileServer(http.Dir(cfg.LocalStoragePath))
		mux.Handle("GET /files/", http.StripPrefix("/files/", filesFS))
	}

	// Public API
	mux.Handle("POST /api/contact", contactLimit(http.HandlerFunc(contactHandler.Submit)))
	mux.Handle("POST /api/hero-contact", contactLimit(http.HandlerFunc(contactHandler.SubmitHero)))
	mux.HandleFunc("GET /api/projects", projectHandler.List)
	mux.HandleFunc("GET /api/projects/featured", projectHandler.ListFeatured)
	mux.HandleFunc("GET /api/projects/{id}", projectHandler.Get)
	mux.HandleFunc("POST /api/calculators/{trade}", calculatorHandler.Calculate)

	// Admin session
	mux.Handle("POST /api/admin/login", loginLimit(http.HandlerFunc(authHandler.Login)))
	mux.HandleFunc("POST /api/admin/logout", authHandler.Logout)
	mux.Handle("GET /api/admin/user", authMw.WithAdmin(http.HandlerFunc(authHandler.CurrentUser)))

	// Admin dashboard (auth required)
	requireAdmin := middleware.Stack(authMw.WithAdmin, authMw.RequireAdmin)
	mux.Handle("GET /api/admin/dashboard/contact-forms",
		requireAdmin(http.HandlerFunc(dashboardHandler.ListContactForms)))
	mux.Handle("GET /api/admin/dashboard/contact-forms/export",
		requireAdmin(http.HandlerFunc(dashboardHandler.ExportCSV)))
	mux.Handle("PATCH /api/admin/dashboard/contact-forms/{id}/process",
		requireAdmin(http.HandlerFunc(dashboardHandler.MarkProcessed)))
	mux.Handle("POST /api/admin/projects",
		requireAdmin(http.HandlerFunc(projectHandler.Create)))
	mux.Handle("POST /api/admin/projects/{id}/image",
		requireAdmin(http.HandlerFunc(projectHandler.UploadImage)))

	// Outer middleware applied to the whole mux
	root := middleware.Stack(
		securityMw.Handler,
		metrics.Middleware,
		loggingMw.Handler,
	)(mux)

	// Maintenance worker
	var maintenance *worker.Worker
	if cfg.MaintenanceEnabled {
		workerCfg := worker.DefaultConfig()
		workerCfg.Interval = cfg.MaintenanceInterval
		maintenance, err = worker.New(userService, workerCfg, logger)
		if err != nil {
			return fmt.Errorf("worker initialization failed: %w", err)
		}
		maintenance.Start(ctx)
	}

	// ==========================================================================
	// Start server
	// ==========================================================================

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: root,
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("Server started", "address", server.Addr, "env", cfg.Env)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Server failed", "error", err)
		}
	}()

	<-sigChan
	logger.Info("Shutdown signal received, initiating graceful shutdown...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}

	if maintenance != nil {
		maintenance.Stop()
	}

	logger.Info("Graceful shutdown complete")
	return nil
}

// openStore picks the repository driver from configuration.
func openStore(ctx context.Context, cfg *internal.Config) (repository.Store, error) {
	switch cfg.StoreDriver {
	case "memory":
		return memory.New(), nil
	case "sqlite":
		store, err := sqlite.Open(cfg.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("sqlite open failed: %w", err)
		}
		return store, nil
	case "postgres":
		store, err := postgres.Open(ctx, cfg.DatabaseUrl)
		if err != nil {
			return nil, fmt.Errorf("postgres open failed: %w", err)
		}
		return store, nil
	default:
		return nil, fmt.Errorf("unknown store driver: %s", cfg.StoreDriver)
	}
}

// openStorage picks the object storage provider from configuration.
func openStorage(cfg *internal.Config, logger *slog.Logger) (storage.Storage, error) {
	switch cfg.StorageProvider {
	case storage.ProviderR2:
		return storage.NewR2Storage(storage.R2Config{
			AccountID:       cfg.R2AccountID,
			AccessKeyID:     cfg.R2AccessKeyID,
			SecretAccessKey: cfg.R2SecretAccessKey,
			BucketName:      cfg.R2BucketName,
			PublicURL:       cfg.R2PublicURL,
		}, logger)
	default:
		return storage.NewLocalStorage(storage.LocalConfig{
			BasePath: cfg.LocalStoragePath,
			BaseURL:  cfg.LocalStorageURL,
		}, logger)
	}
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}
