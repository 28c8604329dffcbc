package routes

import (
	"pharmatrack/internal/adapters/http/handlers"
	"pharmatrack/internal/adapters/http/middleware"
	"pharmatrack/internal/adapters/persistence/repositories"
	"pharmatrack/internal/config"
	"pharmatrack/internal/core/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"gorm.io/gorm"
)

// Setup configures all routes for the application
func Setup(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	refreshTokenRepo := repositories.NewRefreshTokenRepository(db)
	drugRepo := repositories.NewDrugRepository(db)
	saleRepo := repositories.NewSaleRepository(db)
	purchaseRepo := repositories.NewPurchaseRepository(db)
	supplierRepo := repositories.NewSupplierRepository(db)

	// Initialize services
	authService := services.NewAuthService(userRepo, refreshTokenRepo, cfg)
	userService := services.NewUserService(userRepo)
	drugService := services.NewDrugService(drugRepo, cfg.Alerts)
	inventoryService := services.NewInventoryService(db, saleRepo, purchaseRepo)
	alertService := services.NewAlertService(drugRepo, cfg.Alerts)
	reportService := services.NewReportService(drugRepo, saleRepo, cfg.Alerts)
	dashboardService := services.NewDashboardService(drugRepo, saleRepo, userRepo, alertService)
	supplierService := services.NewSupplierService(supplierRepo)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler()
	authHandler := handlers.NewAuthHandler(authService, cfg)
	userHandler := handlers.NewUserHandler(userService)
	drugHandler := handlers.NewDrugHandler(drugService)
	saleHandler := handlers.NewSaleHandler(inventoryService)
	purchaseHandler := handlers.NewPurchaseHandler(inventoryService)
	reportHandler := handlers.NewReportHandler(reportService)
	alertHandler := handlers.NewAlertHandler(alertService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	supplierHandler := handlers.NewSupplierHandler(supplierService)

	// Health check & root routes
	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.HealthCheck)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// API v1 group
	apiV1 := app.Group("/api/v1")
	setupAPIV1Routes(apiV1, authHandler, userHandler, drugHandler, saleHandler,
		purchaseHandler, reportHandler, alertHandler, dashboardHandler,
		supplierHandler, cfg)
}

// setupAPIV1Routes configures API v1 routes
func setupAPIV1Routes(
	router fiber.Router,
	authHandler *handlers.AuthHandler,
	userHandler *handlers.UserHandler,
	drugHandler *handlers.DrugHandler,
	saleHandler *handlers.SaleHandler,
	purchaseHandler *handlers.PurchaseHandler,
	reportHandler *handlers.ReportHandler,
	alertHandler *handlers.AlertHandler,
	dashboardHandler *handlers.DashboardHandler,
	supplierHandler *handlers.SupplierHandler,
	cfg *config.Config,
) {
	// Auth routes (public, rate limited)
	authRoutes := router.Group("/auth")
	setupAuthRoutes(authRoutes, authHandler, cfg)

	// Drug catalog routes (Authenticated; writes are Admin only)
	drugRoutes := router.Group("/drugs")
	drugRoutes.Use(middleware.AuthMiddleware(cfg))
	setupDrugRoutes(drugRoutes, drugHandler)

	// Sale ledger routes
	saleRoutes := router.Group("/sales")
	saleRoutes.Use(middleware.AuthMiddleware(cfg))
	saleRoutes.Get("/", saleHandler.List)
	saleRoutes.Post("/", saleHandler.Record)

	// Purchase ledger routes (Admin only: restocking is a catalog write)
	purchaseRoutes := router.Group("/purchases")
	purchaseRoutes.Use(middleware.AuthMiddleware(cfg))
	purchaseRoutes.Use(middleware.AdminOnly())
	purchaseRoutes.Get("/", purchaseHandler.List)
	purchaseRoutes.Post("/", purchaseHandler.Record)

	// Report routes
	reportRoutes := router.Group("/reports")
	reportRoutes.Use(middleware.AuthMiddleware(cfg))
	reportRoutes.Get("/stock", reportHandler.Stock)
	reportRoutes.Get("/expiry", reportHandler.Expiry)
	reportRoutes.Get("/sales", reportHandler.Sales)

	// Alert routes
	alertRoutes := router.Group("/alerts")
	alertRoutes.Use(middleware.AuthMiddleware(cfg))
	alertRoutes.Get("/", alertHandler.Counts)

	// Dashboard routes
	dashboardRoutes := router.Group("/dashboard")
	dashboardRoutes.Use(middleware.AuthMiddleware(cfg))
	dashboardRoutes.Get("/", dashboardHandler.Get)

	// Supplier directory routes (Authenticated; writes are Admin only)
	supplierRoutes := router.Group("/suppliers")
	supplierRoutes.Use(middleware.AuthMiddleware(cfg))
	setupSupplierRoutes(supplierRoutes, supplierHandler)

	// User management routes (Admin only)
	userRoutes := router.Group("/users")
	userRoutes.Use(middleware.AuthMiddleware(cfg))
	userRoutes.Use(middleware.AdminOnly())
	userRoutes.Get("/", userHandler.List)
	userRoutes.Post("/", userHandler.Create)

	// Profile routes (Authenticated users)
	profileRoutes := router.Group("/profile")
	profileRoutes.Use(middleware.AuthMiddleware(cfg))
	profileRoutes.Get("/", userHandler.Profile)
	profileRoutes.Put("/password", userHandler.ChangePassword)
}

// setupAuthRoutes configures authentication routes
func setupAuthRoutes(router fiber.Router, handler *handlers.AuthHandler, cfg *config.Config) {
	// Public routes
	router.Post("/login", middleware.AuthRateLimiter(), handler.Login)
	router.Post("/refresh", handler.RefreshToken)
	router.Post("/logout", handler.Logout)

	// Protected routes
	router.Get("/me", middleware.AuthMiddleware(cfg), handler.Me)
	router.Post("/logout-all", middleware.AuthMiddleware(cfg), handler.LogoutAll)
}

// setupDrugRoutes configures drug catalog routes
func setupDrugRoutes(router fiber.Router, handler *handlers.DrugHandler) {
	router.Get("/", handler.List)
	router.Get("/search", handler.Search)
	router.Get("/categories", handler.Categories)
	router.Get("/sellable", handler.Sellable)
	router.Get("/:id", handler.GetByID)

	// Catalog writes are Admin only
	router.Post("/", middleware.AdminOnly(), handler.Create)
	router.Put("/:id", middleware.AdminOnly(), handler.Update)
	router.Delete("/:id", middleware.AdminOnly(), handler.Delete)
}

// setupSupplierRoutes configures supplier directory routes
func setupSupplierRoutes(router fiber.Router, handler *handlers.SupplierHandler) {
	router.Get("/", handler.List)
	router.Get("/:id", handler.GetByID)

	// Directory writes are Admin only
	router.Post("/", middleware.AdminOnly(), handler.Create)
	router.Put("/:id", middleware.AdminOnly(), handler.Update)
	router.Delete("/:id", middleware.AdminOnly(), handler.Delete)
}
