package main

import (
	"database/sql"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/lib/pq"

	"propdesk-backend/internal/config"
	"propdesk-backend/internal/jobs"
	"propdesk-backend/internal/logger"
	"propdesk-backend/internal/repository/postgres"
	"propdesk-backend/internal/scheduler"
	"propdesk-backend/internal/service"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	runOnce := flag.String("run-once", "", "Run a specific job once and exit (e.g., 'scan-lease-renewals', 'all-nightly', 'all-monthly')")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting PropDesk Cronjob Runner...", "log_level", cfg.Log.Level)

	// Initialize Database
	logger.Info("Connecting to database...", "host", cfg.Database.Host, "port", cfg.Database.Port)
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

	// Initialize Services
	emailService := service.NewEmailService(cfg.Email)
	renewalService := service.NewRenewalService(store.TenantRepository, nil)
	ledgerService := service.NewLedgerService(store.LedgerRepository)
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

	jobServices := &jobs.Services{
		Email:   emailService,
		Renewal: renewalService,
		Ledger:  ledgerService,
		Task:    taskService,
	}

	// Initialize Job Runner
	jobRunner := jobs.NewJobRunner(db, store, jobServices, cfg)

	// Check if running a single job
	if *runOnce != "" {
		logger.Info("Running job once", "job", *runOnce)
		runJobOnce(jobRunner, *runOnce)
		logger.Info("Job execution completed", "job", *runOnce)
		return
	}

	// Initialize Scheduler
	cronScheduler := scheduler.NewScheduler(jobRunner)

	// Start scheduler
	cronScheduler.Start()
	logger.Info("Cronjob scheduler is running. Press Ctrl+C to stop.")

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	// Graceful shutdown
	logger.Info("Shutting down cronjob scheduler...")
	cronScheduler.Stop()
	logger.Info("Cronjob scheduler stopped. Goodbye!")
}

// runJobOnce runs a specific job once and exits
func runJobOnce(jobRunner *jobs.JobRunner, jobName string) {
	switch jobName {
	case "scan-lease-renewals":
		jobRunner.ScanLeaseRenewals()
	case "mark-overdue-tasks":
		jobRunner.MarkOverdueTasks()
	case "materialize-recurring-tasks":
		jobRunner.MaterializeRecurringTasks()
	case "post-monthly-rent-income":
		jobRunner.PostMonthlyRentIncome()
	case "all-nightly":
		jobRunner.RunAllNightlyJobs()
	case "all-monthly":
		jobRunner.RunAllMonthlyJobs()
	default:
		logger.Error("Unknown job name", "job", jobName)
		os.Exit(1)
	}
}
