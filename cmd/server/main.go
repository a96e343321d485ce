package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "fleetdesk-backend/internal/api/http"
	"fleetdesk-backend/internal/config"
	"fleetdesk-backend/internal/logger"
	"fleetdesk-backend/internal/repository/postgres"
	"fleetdesk-backend/internal/security"
	"fleetdesk-backend/internal/service"
	"fleetdesk-backend/internal/storage"

	_ "github.com/lib/pq"
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
	logger.Info("Starting FleetDesk Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)
	logger.Info("SMTP configuration", "host", cfg.SMTP.Host, "port", cfg.SMTP.Port)

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

	// Initialize Security
	tokenManager := security.NewTokenManager(
		cfg.JWT.Secret,
		time.Duration(cfg.JWT.AccessTokenExpiry)*time.Minute,
		time.Duration(cfg.JWT.RefreshTokenExpiry)*time.Minute,
	)

	// Initialize Storage
	var fileStore storage.Storage
	switch cfg.Storage.Type {
	case "local":
		logger.Info("Using local storage", "upload_dir", cfg.Storage.UploadDir)
		fileStore, err = storage.NewLocalStorage(cfg.Storage.BaseURL, cfg.Storage.UploadDir)
		if err != nil {
			logger.Error("Failed to initialize local storage", "error", err)
			log.Fatalf("Failed to initialize local storage: %v", err)
		}
	case "firebase":
		logger.Info("Using firebase storage", "bucket", cfg.Storage.Bucket)
		fileStore, err = storage.NewFirebaseStorage(
			context.Background(),
			cfg.Storage.CredentialsFile,
			cfg.Storage.Bucket,
			time.Duration(cfg.Storage.URLExpiryHours)*time.Hour,
		)
		if err != nil {
			logger.Error("Failed to initialize firebase storage", "error", err)
			log.Fatalf("Failed to initialize firebase storage: %v", err)
		}
	}

	// Initialize Email Service
	emailSvc := service.NewEmailService(
		cfg.SMTP.Host,
		fmt.Sprintf("%d", cfg.SMTP.Port),
		cfg.SMTP.User,
		cfg.SMTP.Password,
		cfg.SMTP.From,
	)

	// Initialize Services
	fieldSvc := service.NewCustomFieldService(store.CustomFieldRepository)
	svcs := httpapi.Services{
		Auth:        service.NewAuthService(store.UserRepository, store.OrganizationRepository, tokenManager),
		Users:       service.NewUserService(store.UserRepository, store.OrganizationRepository, emailSvc),
		Vehicles:    service.NewVehicleService(store.VehicleRepository, fieldSvc),
		Drivers:     service.NewDriverService(store.DriverRepository, fieldSvc),
		Activities:  service.NewActivityService(store.ActivityRepository, fieldSvc),
		Revenues:    service.NewRevenueService(store.RevenueRepository, fieldSvc),
		Expenses:    service.NewExpenseService(store.ExpenseRepository, fieldSvc),
		CustomField: fieldSvc,
		Reports:     service.NewReportService(store.ReportRepository),
	}

	// Set up HTTP server
	router := httpapi.NewRouter(svcs, tokenManager, fileStore, cfg.Storage.MaxFileSizeMB)
	server := &http.Server{
		Addr:         cfg.GetServerAddress(),
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
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
		logger.Error("Graceful shutdown failed", "error", err)
	}
	logger.Info("Server stopped. Goodbye!")
}
