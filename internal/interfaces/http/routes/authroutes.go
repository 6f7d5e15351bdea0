package routes

import (
	"github.com/gin-gonic/gin"

	"taskboard/internal/interfaces/http/handlers"
)

// AuthRouteConfig holds dependencies for authentication routes.
type AuthRouteConfig struct {
	AuthHandler *handlers.AuthHandler
	RateLimit   gin.HandlerFunc // may be nil when throttling is disabled
}

// SetupAuthRoutes configures registration and login routes.
func SetupAuthRoutes(engine *gin.Engine, cfg *AuthRouteConfig) {
	auth := engine.Group("/api/auth")
	if cfg.RateLimit != nil {
		auth.Use(cfg.RateLimit)
	}
	{
		auth.POST("/register", cfg.AuthHandler.Register)
		auth.POST("/login", cfg.AuthHandler.Login)
	}
}
