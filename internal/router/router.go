package router

import (
	"github.com/gin-gonic/gin"

	"github.com/foodiesapp/backend/internal/api"
	"github.com/foodiesapp/backend/internal/middleware"
)

// SetupRouter configures the application routes
func SetupRouter(
	mealHandler *api.MealHandler,
	healthHandler *api.HealthHandler,
) *gin.Engine {
	router := gin.Default()

	// CORS middleware
	router.Use(middleware.CORS())

	router.GET("/health", healthHandler.Health)

	// API v1 routes
	v1 := router.Group("/api/v1")
	mealHandler.RegisterRoutes(v1)

	return router
}
