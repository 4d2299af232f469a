package app

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/newrelic/go-agent/v3/integrations/nrgin"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/redis/go-redis/v9"

	"fleetops/internal/auth"
	"fleetops/internal/domain"
	"fleetops/internal/handler"
	"fleetops/internal/middleware"
)

// RouterDeps contains all dependencies needed for the router.
type RouterDeps struct {
	AuthHandler        *handler.AuthHandler
	VehicleHandler     *handler.VehicleHandler
	DriverHandler      *handler.DriverHandler
	TripHandler        *handler.TripHandler
	MaintenanceHandler *handler.MaintenanceHandler
	ExpenseHandler     *handler.ExpenseHandler
	AnalyticsHandler   *handler.AnalyticsHandler
	TokenService       *auth.TokenService
	RedisClient        *redis.Client
	NewRelicApp        *newrelic.Application
}

// NewRouter creates a new Gin router with all routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	router := gin.New()

	// Global middleware.
	router.Use(gin.Recovery())
	router.Use(gin.Logger())
	router.Use(cors.Default())

	if deps.NewRelicApp != nil {
		router.Use(nrgin.Middleware(deps.NewRelicApp))
	}

	router.Use(middleware.Idempotency(deps.RedisClient))

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Role sets per route group.
	var (
		manager   = middleware.RequireRole(domain.RoleManager)
		fleetOps  = middleware.RequireRole(domain.RoleManager, domain.RoleDispatcher)
		driverOps = middleware.RequireRole(domain.RoleManager, domain.RoleDispatcher, domain.RoleSafetyOfficer)
		finance   = middleware.RequireRole(domain.RoleManager, domain.RoleFinancialAnalyst)
		dashboard = middleware.RequireRole(domain.RoleManager, domain.RoleFinancialAnalyst, domain.RoleDispatcher)
	)

	// API v1 routes.
	v1 := router.Group("/v1")
	{
		// Auth routes (unauthenticated).
		authGroup := v1.Group("/auth")
		{
			authGroup.POST("/register", deps.AuthHandler.Register)
			authGroup.POST("/login", deps.AuthHandler.Login)
		}

		authed := v1.Group("")
		authed.Use(middleware.Auth(deps.TokenService))

		// Vehicle routes.
		vehicles := authed.Group("/vehicles")
		{
			vehicles.GET("", fleetOps, deps.VehicleHandler.GetAll)
			vehicles.GET("/:id", fleetOps, deps.VehicleHandler.Get)
			vehicles.POST("", manager, deps.VehicleHandler.Create)
			vehicles.PUT("/:id", manager, deps.VehicleHandler.Update)
			vehicles.DELETE("/:id", manager, deps.VehicleHandler.Delete)
			vehicles.PATCH("/:id/status", fleetOps, deps.VehicleHandler.ChangeStatus)
		}

		// Driver routes.
		drivers := authed.Group("/drivers")
		{
			drivers.GET("", driverOps, deps.DriverHandler.GetAll)
			drivers.GET("/:id", driverOps, deps.DriverHandler.Get)
			drivers.POST("", manager, deps.DriverHandler.Create)
			drivers.PUT("/:id", manager, deps.DriverHandler.Update)
			drivers.DELETE("/:id", manager, deps.DriverHandler.Delete)
			drivers.PATCH("/:id/status", driverOps, deps.DriverHandler.ChangeStatus)
		}

		// Trip routes.
		trips := authed.Group("/trips")
		trips.Use(fleetOps)
		{
			trips.GET("", deps.TripHandler.GetAll)
			trips.GET("/:id", deps.TripHandler.Get)
			trips.POST("", deps.TripHandler.Dispatch)
			trips.PATCH("/:id/complete", deps.TripHandler.Complete)
			trips.PATCH("/:id/cancel", deps.TripHandler.Cancel)
		}

		// Maintenance routes.
		maintenance := authed.Group("/maintenance")
		maintenance.Use(fleetOps)
		{
			maintenance.GET("", deps.MaintenanceHandler.GetAll)
			maintenance.POST("", deps.MaintenanceHandler.LogService)
		}

		// Expense routes.
		expenses := authed.Group("/expenses")
		{
			expenses.GET("", finance, deps.ExpenseHandler.GetAll)
			expenses.POST("", fleetOps, deps.ExpenseHandler.LogExpense)
		}

		// Analytics routes.
		analytics := authed.Group("/analytics")
		{
			analytics.GET("/dashboard", dashboard, deps.AnalyticsHandler.Dashboard)
		}
	}

	return router
}
