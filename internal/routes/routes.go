// Package routes defines the API routing configuration.
// It wires repositories, services and handlers, and applies the
// authentication and permission middleware per route group.
package routes

import (
	"regulariza/internal/config"
	"regulariza/internal/handlers"
	"regulariza/internal/middleware"
	"regulariza/internal/models"
	"regulariza/internal/repositories"
	"regulariza/internal/services/analysis"
	"regulariza/internal/services/assistant"
	"regulariza/internal/services/audit"
	"regulariza/internal/services/auth"
	"regulariza/internal/services/document"
	"regulariza/internal/services/kyc"
	"regulariza/internal/services/marketplace"
	"regulariza/internal/services/order"
	"regulariza/internal/services/payment"
	"regulariza/internal/services/profile"
	"regulariza/internal/services/storage"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SetupRoutes configures all application routes.
func SetupRoutes(app *fiber.App, db *gorm.DB, store *storage.LocalStore) {
	// Repositories
	userRepo := repositories.NewUserRepository(db, repositories.CacheService)
	profileRepo := repositories.NewProfileRepository(db, repositories.CacheService)
	documentRepo := repositories.NewDocumentRepository(db)
	transactionRepo := repositories.NewTransactionRepository(db)
	orderRepo := repositories.NewOrderRepository(db)
	marketplaceRepo := repositories.NewMarketplaceRepository(db)
	auditRepo := repositories.NewAuditRepository(db)

	recorder := audit.NewRecorder(auditRepo)

	// Assistant and analysis share the OpenAI client when a key is set.
	var completer assistant.Completer
	var chatClient analysis.ChatClient
	if key := config.GetEnv("OPENAI_API_KEY", ""); key != "" {
		client := analysis.NewOpenAIClient(key, config.GetEnv("OPENAI_MODEL", ""))
		completer = client
		chatClient = client
	}

	// Checkout provider is optional; without a Stripe key the payment
	// service falls back to internal checkout URLs.
	var checkout payment.CheckoutProvider
	if key := config.GetEnv("STRIPE_SECRET_KEY", ""); key != "" {
		checkout = payment.NewStripeCheckout(
			key,
			config.GetEnv("CHECKOUT_SUCCESS_URL", "http://localhost:3000/payment/success"),
			config.GetEnv("CHECKOUT_CANCEL_URL", "http://localhost:3000/payment/cancel"),
		)
	}

	// Services
	authService := auth.NewService(userRepo)
	profileService := profile.NewService(profileRepo, recorder)
	documentService := document.NewService(documentRepo, store, recorder)
	analysisService := analysis.NewService(documentRepo, chatClient, recorder)
	assistantService := assistant.NewService(completer)
	paymentService := payment.NewService(transactionRepo, checkout, recorder)
	orderService := order.NewService(orderRepo, recorder)
	marketplaceService := marketplace.NewService(marketplaceRepo, recorder)
	kycService := kyc.NewService(profileRepo, store, recorder)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	assistantHandler := handlers.NewAssistantHandler(assistantService)
	documentHandler := handlers.NewDocumentHandler(documentService, analysisService)
	paymentHandler := handlers.NewPaymentHandler(paymentService, transactionRepo)
	profileHandler := handlers.NewProfileHandler(profileService)
	orderHandler := handlers.NewOrderHandler(orderService)
	marketplaceHandler := handlers.NewMarketplaceHandler(marketplaceService)
	kycHandler := handlers.NewKYCHandler(kycService)
	adminHandler := handlers.NewAdminHandler(profileService, auditRepo)

	app.Get("/health", handlers.HealthCheck)
	app.Static("/files", store.Dir())

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Welcome to Regulariza API",
			"version": "1.0.0",
			"docs":    "/api",
		})
	})

	api := app.Group("/api")

	// Public endpoints
	api.Post("/register", authHandler.Register)
	api.Post("/login", authHandler.Login)
	api.Post("/refresh", authHandler.Refresh)

	// Payment provider webhook; unauthenticated by design of the
	// upstream provider contract, trusts the caller-supplied status.
	api.Put("/payment", paymentHandler.Update)

	// Screen-flow metadata and catalog are public read.
	api.Get("/navigation", handlers.Navigation)
	api.Get("/catalog/classes", orderHandler.Classes)
	api.Get("/catalog/classes/:classId/subclasses", orderHandler.Subclasses)
	api.Post("/catalog/quote", orderHandler.Quote)

	authMiddleware := middleware.NewAuthMiddleware(userRepo)
	protected := api.Use(authMiddleware.Handler)

	protected.Post("/logout", authHandler.Logout)
	protected.Post("/change-password", authHandler.ChangePassword)

	// Assistant
	protected.Post("/ai-assistant", assistantHandler.Chat)

	// Documents
	docs := protected.Group("/documents")
	docs.Post("/", middleware.HasPermission(models.PermissionDocumentWrite), documentHandler.Upload)
	docs.Get("/", middleware.HasPermission(models.PermissionDocumentRead), documentHandler.List)
	docs.Get("/reports", middleware.HasPermission(models.PermissionDocumentRead), documentHandler.Reports)
	docs.Get("/:id", middleware.HasPermission(models.PermissionDocumentRead), documentHandler.Get)
	protected.Post("/analyze-document", middleware.HasPermission(models.PermissionDocumentWrite), documentHandler.Analyze)

	// Payments
	protected.Post("/payment", middleware.HasPermission(models.PermissionPaymentWrite), paymentHandler.Create)
	protected.Get("/transactions", paymentHandler.List)

	// Profiles
	protected.Post("/profile", middleware.HasPermission(models.PermissionProfileWrite), profileHandler.Upsert)
	protected.Get("/profile", middleware.HasPermission(models.PermissionProfileRead), profileHandler.Get)

	// KYC
	protected.Post("/kyc", kycHandler.Submit)

	// Orders
	orders := protected.Group("/orders")
	orders.Post("/", middleware.HasPermission(models.PermissionOrderWrite), orderHandler.Create)
	orders.Get("/", middleware.HasPermission(models.PermissionOrderRead), orderHandler.List)
	orders.Get("/:id", middleware.HasPermission(models.PermissionOrderRead), orderHandler.Get)

	// Marketplace
	market := protected.Group("/marketplace")
	market.Get("/services", middleware.HasPermission(models.PermissionMarketplaceRead), marketplaceHandler.ListServices)
	market.Post("/services", middleware.HasPermission(models.PermissionMarketplaceWrite), marketplaceHandler.CreateService)
	market.Get("/my-services", middleware.HasPermission(models.PermissionMarketplaceWrite), marketplaceHandler.MyServices)
	market.Delete("/services/:id", middleware.HasPermission(models.PermissionMarketplaceWrite), marketplaceHandler.DeactivateService)
	market.Post("/requests", middleware.HasPermission(models.PermissionMarketplaceRead), marketplaceHandler.Hire)
	market.Get("/requests", middleware.HasPermission(models.PermissionMarketplaceRead), marketplaceHandler.MyRequests)
	market.Put("/requests/:id/status", middleware.HasPermission(models.PermissionMarketplaceWrite), marketplaceHandler.UpdateRequestStatus)
	market.Post("/budgets", middleware.HasPermission(models.PermissionMarketplaceRead), marketplaceHandler.RequestBudget)
	market.Get("/budgets", middleware.HasPermission(models.PermissionMarketplaceRead), marketplaceHandler.MyBudgets)

	// Admin
	admin := protected.Group("/admin", middleware.AdminAuthMiddleware)
	admin.Get("/profiles", middleware.HasPermission(models.PermissionReadAdmin), adminHandler.ListProfiles)
	admin.Get("/audit-logs", middleware.HasPermission(models.PermissionReadAdmin), adminHandler.ListAuditLogs)
	admin.Get("/transactions", middleware.HasPermission(models.PermissionReadAdmin), paymentHandler.ListAll)
	admin.Put("/orders/:id/status", middleware.HasPermission(models.PermissionWriteAdmin), orderHandler.UpdateStatus)
	admin.Put("/kyc/:userId", middleware.HasPermission(models.PermissionWriteAdmin), kycHandler.Review)
	admin.Get("/cache-stats", handlers.CacheStats)
}
