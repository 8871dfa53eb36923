package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	authUseCase "github.com/imnexerio/i2step-backend/internal/domain/usecase/auth"
	ledgerUseCase "github.com/imnexerio/i2step-backend/internal/domain/usecase/ledger"

	"github.com/imnexerio/i2step-backend/internal/infrastructure/adapter/api/handler"
	"github.com/imnexerio/i2step-backend/internal/infrastructure/adapter/api/routes"
	tokenauth "github.com/imnexerio/i2step-backend/internal/infrastructure/adapter/auth"
	"github.com/imnexerio/i2step-backend/internal/infrastructure/adapter/database"
	"github.com/imnexerio/i2step-backend/internal/infrastructure/adapter/database/migration"
	"github.com/imnexerio/i2step-backend/internal/infrastructure/adapter/logger"
	timeProvider "github.com/imnexerio/i2step-backend/internal/infrastructure/adapter/time"
	"github.com/imnexerio/i2step-backend/internal/infrastructure/config"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	// Set Gin mode based on environment
	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create logger
	appLogger := logger.NewZapLogger(cfg.Environment == config.Production)
	defer func() { _ = appLogger.Flush() }()

	// Setup database configuration
	dbConfig := &database.Config{
		Host:            cfg.Database.Host,
		Port:            cfg.Database.Port,
		Username:        cfg.Database.Username,
		Password:        cfg.Database.Password,
		Database:        cfg.Database.Database,
		SSLMode:         cfg.Database.SSLMode,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		ConnMaxIdleTime: cfg.Database.ConnMaxIdleTime,
		LogLevel:        cfg.Logger.Level,
		RetryAttempts:   cfg.Database.RetryAttempts,
		RetryDelay:      cfg.Database.RetryDelay,
	}

	// Connect to the database
	conn, err := database.NewConnection(dbConfig, appLogger)
	if err != nil {
		appLogger.Error("Failed to connect to database", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}
	defer func() { _ = conn.Close() }()

	// Run migrations
	migrationMgr := migration.NewMigrationManager(conn.DB, appLogger)
	if err := migrationMgr.MigrateAll(); err != nil {
		appLogger.Error("Failed to run migrations", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	// Initialize time provider and unit of work
	tp := timeProvider.NewRealTimeProvider()
	uow := database.NewUnitOfWork(conn.DB, appLogger)

	// Seed default accounts
	if err := migration.CreateDefaultUsers(context.Background(), uow.GetUserRepository(context.Background())); err != nil {
		appLogger.Error("Failed to create default users", map[string]any{
			"error": err.Error(),
		})
	}

	// Initialize use cases
	ledgerService := ledgerUseCase.NewService(uow, tp, appLogger)
	authService := authUseCase.NewService(uow.GetUserRepository(context.Background()), appLogger)

	// Token manager for the API edge
	tokens := tokenauth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL, tp)

	// Initialize API handlers
	authHandler := handler.NewAuthHandler(authService, tokens, appLogger)
	transactionHandler := handler.NewTransactionHandler(ledgerService, appLogger)
	orderHandler := handler.NewOrderHandler(ledgerService, appLogger)
	healthHandler := handler.NewHealthHandler(conn.DB)

	// Initialize Gin router
	router := gin.New()

	// Setup middlewares and routes
	routes.SetupMiddlewares(router, appLogger)
	routes.SetupRoutes(router, tokens, authHandler, transactionHandler, orderHandler, healthHandler)

	// Create HTTP server with configurable timeout values
	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	// Start the server in a goroutine
	go func() {
		appLogger.Info("Starting server", map[string]any{
			"port": cfg.Server.Port,
			"env":  cfg.Environment,
		})

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Error("Failed to start server", map[string]any{
				"error": err.Error(),
			})
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	appLogger.Info("Server exited gracefully", nil)
}
