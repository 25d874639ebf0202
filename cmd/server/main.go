package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"cmms-backend/internal/adapters/http/middleware"
	"cmms-backend/internal/adapters/http/routes"
	"cmms-backend/internal/adapters/messaging"
	"cmms-backend/internal/adapters/persistence/models"
	"cmms-backend/internal/adapters/persistence/repositories"
	"cmms-backend/internal/config"
	"cmms-backend/internal/core/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"

	_ "cmms-backend/docs" // Swagger docs
)

// @title CMMS API
// @version 1.0
// @description Maintenance management backend: assets, work requests, work orders and completion reports.

// @contact.name API Support

// @BasePath /
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	if err := run(); err != nil {
		log.Fatalf("❌ %v", err)
	}
}

// run wires the server and blocks until it stops. Deferred cleanup runs on
// every exit path.
func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Connect to database
	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer func() {
		if err := config.CloseDatabase(db); err != nil {
			log.Errorf("❌ Error closing database: %v", err)
		}
	}()

	if err := models.AutoMigrate(db); err != nil {
		return fmt.Errorf("failed to auto migrate: %w", err)
	}
	log.Info("✅ Database migration completed")

	// Seed the bootstrap administrator
	seeder := config.NewSeeder(repositories.NewIdentityRepository(db), cfg.Seed)
	if err := seeder.Run(context.Background()); err != nil {
		log.Warnf("⚠️ Warning: Failed to seed administrator: %v", err)
	}

	// Lifecycle events, sent off the request path
	var events services.EventPublisher = services.NopPublisher{}
	if cfg.AMQP.URL != "" {
		broker := messaging.NewAMQPPublisher(cfg.AMQP.URL, cfg.AMQP.Exchange, cfg.AMQP.DialTimeout)
		async := services.NewAsyncPublisher(broker, cfg.AMQP.QueueSize, cfg.AMQP.PublishTimeout)
		defer async.Close()
		events = async
		log.Infof("✅ Publishing events to exchange %s", cfg.AMQP.Exchange)
	}

	// Shared rate limit storage
	redisClient := config.NewRedisClient(cfg)
	limiterStore := middleware.NewRedisStorage(redisClient)
	if limiterStore != nil {
		defer limiterStore.Close()
	}

	// Overdue work order scan
	if cfg.Cron.OverdueScanSpec != "" {
		overdue := services.NewOverdueService(repositories.NewWorkOrderRepository(db), events)
		if err := overdue.Start(cfg.Cron.OverdueScanSpec); err != nil {
			return fmt.Errorf("invalid OVERDUE_SCAN_SPEC: %w", err)
		}
		defer overdue.Stop()
	}

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "CMMS API v1.0",
		ErrorHandler: middleware.CustomErrorHandler,
		BodyLimit:    cfg.Upload.BodyLimitMB * 1024 * 1024,
	})

	// Setup middlewares
	middleware.Setup(app, cfg, limiterStore)

	// Setup routes
	routes.Setup(app, db, cfg, routes.Options{
		Events:       events,
		LimiterStore: limiterStore,
	})

	// Graceful shutdown
	go gracefulShutdown(app)

	// Start server
	log.Infof("🚀 Server starting on port %s [MODE: %s]", cfg.Port, cfg.AppMode)
	if err := app.Listen(":" + cfg.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}

// gracefulShutdown handles graceful shutdown
func gracefulShutdown(app *fiber.App) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("🛑 Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Errorf("❌ Error during shutdown: %v", err)
	}
	log.Info("✅ Server stopped gracefully")
}
