package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	coreport "github.com/imnexerio/i2step-backend/internal/domain/port/core"
	"github.com/imnexerio/i2step-backend/internal/infrastructure/adapter/api/handler"
	"github.com/imnexerio/i2step-backend/internal/infrastructure/adapter/api/middleware"
	tokenauth "github.com/imnexerio/i2step-backend/internal/infrastructure/adapter/auth"
)

// SetupRoutes configures all the routes for the API
func SetupRoutes(
	router *gin.Engine,
	tokens *tokenauth.TokenManager,
	authHandler *handler.AuthHandler,
	transactionHandler *handler.TransactionHandler,
	orderHandler *handler.OrderHandler,
	healthHandler *handler.HealthHandler,
) {
	// Unauthenticated surface
	router.POST("/login", authHandler.Login)
	router.GET("/health", healthHandler.Check)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Everything else requires a valid bearer token
	authenticated := router.Group("/")
	authenticated.Use(middleware.RequireAuth(tokens))
	{
		authenticated.GET("/logout", authHandler.Logout)
		authenticated.GET("/username", authHandler.Username)

		authenticated.GET("/gettransactions", transactionHandler.List)
		authenticated.POST("/initiatetransaction", transactionHandler.Initiate)
		authenticated.POST("/modifytransaction", transactionHandler.Verify)
		authenticated.POST("/modifytransaction_delete", transactionHandler.Deactivate)

		authenticated.GET("/getorders", orderHandler.List)
		authenticated.POST("/initiateorder", orderHandler.Initiate)
		authenticated.POST("/modifyorder", orderHandler.Verify)
		authenticated.POST("/modifyorder_delete", orderHandler.Deactivate)
	}
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger) {
	// Apply middlewares in the correct order
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(logger))
	router.Use(middleware.Metrics())
	router.Use(middleware.CORS())
}
