package routes

import (
	"github.com/gin-gonic/gin"

	"taskboard/internal/interfaces/http/handlers"
	"taskboard/internal/interfaces/http/middleware"
)

// CommentRouteConfig holds dependencies for comment routes.
type CommentRouteConfig struct {
	CommentHandler *handlers.CommentHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupCommentRoutes configures comment routes.
func SetupCommentRoutes(engine *gin.Engine, cfg *CommentRouteConfig) {
	comments := engine.Group("/api/comments")
	comments.Use(cfg.AuthMiddleware.RequireAuth())
	{
		comments.POST("", cfg.CommentHandler.CreateComment)
		comments.GET("/ticket/:ticketId", cfg.CommentHandler.ListTicketComments)
		comments.PATCH("/:id", cfg.CommentHandler.UpdateComment)
		comments.DELETE("/:id", cfg.CommentHandler.DeleteComment)
	}
}
