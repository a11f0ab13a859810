// Package server assembles the services and the HTTP router.
package server

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"arsenal/internal/config"
	_ "arsenal/internal/docs" // Import swagger docs
	"arsenal/internal/handlers"
	"arsenal/internal/middleware"
	"arsenal/internal/models"
	"arsenal/internal/services"
)

// Services holds every service the router depends on.
type Services struct {
	Users        services.UserServicer
	Bases        services.BaseServicer
	Assets       services.AssetServicer
	Purchases    services.PurchaseServicer
	Transfers    services.TransferServicer
	Assignments  services.AssignmentServicer
	Expenditures services.ExpenditureServicer
	Dashboard    services.DashboardServicer
	Audit        services.AuditServicer
}

// NewServices wires the services onto one database handle. The caller owns
// the audit service and must Close it on shutdown.
func NewServices(db *gorm.DB, cfg *config.Config) *Services {
	ledger := services.NewLedgerService()
	return &Services{
		Users:        services.NewUserService(db, cfg.MaxLoginAttempts, cfg.LockoutDuration),
		Bases:        services.NewBaseService(db),
		Assets:       services.NewAssetService(db),
		Purchases:    services.NewPurchaseService(db, ledger),
		Transfers:    services.NewTransferService(db, ledger),
		Assignments:  services.NewAssignmentService(db, ledger),
		Expenditures: services.NewExpenditureService(db, ledger),
		Dashboard:    services.NewDashboardService(db),
		Audit:        services.NewAuditService(db, cfg.AuditBuffer),
	}
}

// NewRouter builds the gin engine with middleware and all API routes.
func NewRouter(cfg *config.Config, svc *Services) *gin.Engine {
	tokens := middleware.NewTokenIssuer(cfg.JWTSecret, cfg.JWTExpirationDur)

	authHandler := handlers.NewAuthHandler(svc.Users, svc.Audit, tokens)
	purchaseHandler := handlers.NewPurchaseHandler(svc.Purchases, svc.Audit)
	transferHandler := handlers.NewTransferHandler(svc.Transfers, svc.Audit)
	assignmentHandler := handlers.NewAssignmentHandler(svc.Assignments, svc.Expenditures, svc.Audit)
	dashboardHandler := handlers.NewDashboardHandler(svc.Dashboard)
	directoryHandler := handlers.NewDirectoryHandler(svc.Bases, svc.Assets, svc.Users, svc.Audit)
	auditHandler := handlers.NewAuditHandler(svc.Audit)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())
	router.Use(cors.New(corsConfig(cfg.CORSOrigins)))

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api")

	// Health check endpoint
	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Public auth routes
	api.POST("/auth/login", authHandler.Login)

	// Protected routes
	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware(tokens, svc.Users, cfg.RestrictLogisticsToBase))

	anyRecorder := middleware.RequireRoles(models.RoleAdmin, models.RoleBaseCommander, models.RoleLogisticsOfficer)
	commandOnly := middleware.RequireRoles(models.RoleAdmin, models.RoleBaseCommander)
	adminOnly := middleware.RequireRoles(models.RoleAdmin)

	protected.GET("/auth/me", authHandler.Me)

	purchases := protected.Group("/purchases")
	purchases.POST("", anyRecorder, purchaseHandler.CreatePurchase)
	purchases.GET("", purchaseHandler.ListPurchases)
	purchases.GET("/:id", purchaseHandler.GetPurchase)

	transfers := protected.Group("/transfers")
	transfers.POST("", anyRecorder, transferHandler.CreateTransfer)
	transfers.GET("", transferHandler.ListTransfers)
	transfers.GET("/:id", transferHandler.GetTransfer)

	assignments := protected.Group("/assignments")
	assignments.POST("", commandOnly, assignmentHandler.CreateAssignment)
	assignments.GET("", assignmentHandler.ListAssignments)
	assignments.PUT("/:id/return", commandOnly, assignmentHandler.ReturnAssignment)
	assignments.POST("/expenditures", commandOnly, assignmentHandler.CreateExpenditure)
	assignments.GET("/expenditures", assignmentHandler.ListExpenditures)

	dashboard := protected.Group("/dashboard")
	dashboard.GET("", dashboardHandler.GetMetrics)
	dashboard.GET("/movements", dashboardHandler.GetMovements)

	bases := protected.Group("/bases")
	bases.GET("", directoryHandler.ListBases)
	bases.GET("/:id", directoryHandler.GetBase)
	bases.POST("", adminOnly, directoryHandler.CreateBase)

	assets := protected.Group("/assets")
	assets.GET("", directoryHandler.ListAssets)
	assets.GET("/:id", directoryHandler.GetAsset)
	assets.POST("", adminOnly, directoryHandler.CreateAsset)

	protected.POST("/users", adminOnly, directoryHandler.CreateUser)
	protected.GET("/audit-logs", adminOnly, auditHandler.ListAuditLogs)

	return router
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization", "Idempotency-Key", "X-Request-ID"},
		ExposeHeaders: []string{"X-Request-ID"},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
		cfg.AllowCredentials = true
	}
	return cfg
}
