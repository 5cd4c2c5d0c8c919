package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	httpapi "propdesk-backend/internal/api/http"
	"propdesk-backend/internal/config"
	"propdesk-backend/internal/logger"
	"propdesk-backend/internal/repository/postgres"
	"propdesk-backend/internal/security"
	"propdesk-backend/internal/service"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting PropDesk Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	// Initialize Database
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Test database connection
	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize security
	tokenManager := security.NewTokenManager(
		cfg.JWT.Secret,
		cfg.JWT.AccessTokenExpiry,
		cfg.JWT.RefreshTokenExpiry,
	)

	// Initialize Services
	emailService := service.NewEmailService(cfg.Email)
	authService := service.NewAuthService(store.UserRepository, tokenManager)
	userService := service.NewUserService(store.UserRepository, emailService)
	propertyService := service.NewPropertyService(store.PropertyRepository, store.CondominiumRepository)
	tenantService := service.NewTenantService(store.TenantRepository, store.PropertyRepository)
	renewalService := service.NewRenewalService(store.TenantRepository, nil)
	taskService := service.NewTaskService(
		store.TaskRepository,
		store.PropertyRepository,
		store.PartnerRepository,
		store.SettingsRepository,
		store.LedgerRepository,
		emailService,
		store.NotificationRepository,
		service.ReviewPolicy{ApprovalThresholdCents: cfg.Billing.ApprovalThresholdCents},
	)
	partnerService := service.NewPartnerService(store.PartnerRepository)
	ledgerService := service.NewLedgerService(store.LedgerRepository)
	settingsService := service.NewSettingsService(store.SettingsRepository)
	messageService := service.NewMessageService(store.MessageRepository, store.UserRepository, store.NotificationRepository)
	notificationService := service.NewNotificationService(store.NotificationRepository)

	// Initialize HTTP API
	handlers := httpapi.NewHandlers(
		authService,
		userService,
		propertyService,
		tenantService,
		renewalService,
		taskService,
		partnerService,
		ledgerService,
		settingsService,
		messageService,
		notificationService,
	)
	router := httpapi.NewRouter(handlers, tokenManager, store.UserRepository)

	server := &http.Server{
		Addr:         cfg.GetServerAddress(),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server failed", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	// Graceful shutdown
	logger.Info("Shutting down HTTP server...")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown failed", "error", err)
	}
	logger.Info("Server stopped. Goodbye!")
}
