package routes

import (
	"time"

	"cmms-backend/internal/adapters/http/handlers"
	"cmms-backend/internal/adapters/http/middleware"
	"cmms-backend/internal/adapters/persistence/repositories"
	"cmms-backend/internal/config"
	"cmms-backend/internal/core/domain"
	"cmms-backend/internal/core/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"gorm.io/gorm"
)

// Options carries the optional collaborators built in main
type Options struct {
	Events       services.EventPublisher // nil publishes nothing
	LimiterStore fiber.Storage           // nil keeps rate limits in memory
}

// Setup configures all routes for the application
func Setup(app *fiber.App, db *gorm.DB, cfg *config.Config, opts Options) {
	events := opts.Events
	if events == nil {
		events = services.NopPublisher{}
	}

	// Initialize repositories
	identityRepo := repositories.NewIdentityRepository(db)
	workerRepo := repositories.NewWorkerRepository(db)
	clientRepo := repositories.NewClientRepository(db)
	assetRepo := repositories.NewAssetRepository(db)
	requestRepo := repositories.NewWorkRequestRepository(db)
	orderRepo := repositories.NewWorkOrderRepository(db)
	reportRepo := repositories.NewReportRepository(db)

	// Initialize services
	authService := services.NewAuthService(identityRepo, cfg)
	userService := services.NewUserService(identityRepo, workerRepo, clientRepo)
	assetService := services.NewAssetService(assetRepo)
	requestService := services.NewWorkRequestService(requestRepo, events)
	orderService := services.NewWorkOrderService(orderRepo, events)
	reportService := services.NewReportService(reportRepo, orderRepo, events)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(cfg.AppMode, func() error { return config.HealthCheck(db) })
	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(userService)
	assetHandler := handlers.NewAssetHandler(assetService)
	requestHandler := handlers.NewWorkRequestHandler(requestService)
	orderHandler := handlers.NewWorkOrderHandler(orderService, cfg.Upload.MaxFiles)
	reportHandler := handlers.NewReportHandler(reportService, cfg.Upload.MaxFiles)

	// ============================================================
	// Public routes
	// ============================================================
	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.HealthCheck)
	app.Get("/swagger/*", swagger.HandlerDefault)

	app.Post("/login", middleware.AuthRateLimiter(opts.LimiterStore), authHandler.Login)

	// ============================================================
	// Protected routes
	// ============================================================
	api := app.Group("/", middleware.AuthMiddleware(authService), middleware.NoCacheHeaders())

	admin := middleware.AdminOnly()
	worker := middleware.RoleMiddleware(domain.RoleWorker)
	client := middleware.RoleMiddleware(domain.RoleClient)
	staff := middleware.RoleMiddleware(domain.RoleAdmin, domain.RoleWorker)

	// Accounts
	api.Post("/registerWorker", admin, userHandler.RegisterWorker)
	api.Get("/allWorkers", admin, userHandler.ListWorkers)
	api.Delete("/deleteWorker/:id", admin, userHandler.DeleteWorker)
	api.Get("/workers", userHandler.ListWorkerDirectory)
	api.Post("/registerClient", admin, userHandler.RegisterClient)
	api.Get("/allClients", admin, userHandler.ListClients)
	api.Delete("/deleteClient/:id", admin, userHandler.DeleteClient)

	// Assets
	api.Post("/createAsset", admin, assetHandler.CreateAsset)
	api.Get("/assets", middleware.PrivateCacheHeaders(30*time.Second), assetHandler.ListAssets)
	api.Put("/updateAssetStatus/:id", admin, assetHandler.UpdateAssetStatus)
	api.Delete("/deleteAsset/:id", admin, assetHandler.DeleteAsset)

	// Work requests
	api.Post("/createWorkRequest", client, requestHandler.CreateWorkRequest)
	api.Get("/workRequests", admin, requestHandler.ListWorkRequests)
	api.Get("/myWorkRequests", client, requestHandler.ListMyWorkRequests)
	api.Delete("/deleteWorkRequest/:id", admin, requestHandler.DeleteWorkRequest)

	// Work orders
	api.Post("/createWorkOrder", admin, orderHandler.CreateWorkOrder)
	api.Get("/workerOrders", worker, orderHandler.ListMine)
	api.Get("/allWorkOrders", admin, orderHandler.ListAll)
	api.Get("/workOrder/:id", staff, orderHandler.GetWorkOrder)
	api.Put("/updateWorkOrderStatus/:id", staff, orderHandler.UpdateStatus)
	api.Delete("/deleteWorkOrder/:id", admin, orderHandler.DeleteWorkOrder)

	// Reports
	api.Post("/createReport", worker, reportHandler.CreateReport)
	api.Get("/report/:workOrderId", staff, reportHandler.GetReport)
}
