package routes

import (
	"github.com/gin-gonic/gin"

	"taskboard/internal/interfaces/http/handlers"
	"taskboard/internal/interfaces/http/middleware"
)

// UserRouteConfig holds dependencies for user routes.
type UserRouteConfig struct {
	UserHandler    *handlers.UserHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupUserRoutes configures profile and user search routes.
func SetupUserRoutes(engine *gin.Engine, cfg *UserRouteConfig) {
	users := engine.Group("/api/users")
	users.Use(cfg.AuthMiddleware.RequireAuth())
	{
		users.GET("/me", cfg.UserHandler.GetProfile)
		users.GET("/search", cfg.UserHandler.SearchUsers)
	}
}
