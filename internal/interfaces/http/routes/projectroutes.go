package routes

import (
	"github.com/gin-gonic/gin"

	"taskboard/internal/interfaces/http/handlers"
	"taskboard/internal/interfaces/http/middleware"
)

// ProjectRouteConfig holds dependencies for project routes.
type ProjectRouteConfig struct {
	ProjectHandler *handlers.ProjectHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupProjectRoutes configures project, membership, and label routes.
func SetupProjectRoutes(engine *gin.Engine, cfg *ProjectRouteConfig) {
	projects := engine.Group("/api/projects")
	projects.Use(cfg.AuthMiddleware.RequireAuth())
	{
		projects.POST("", cfg.ProjectHandler.CreateProject)
		projects.GET("", cfg.ProjectHandler.ListProjects)
		projects.GET("/:id", cfg.ProjectHandler.GetProject)
		projects.PATCH("/:id", cfg.ProjectHandler.UpdateProject)
		projects.DELETE("/:id", cfg.ProjectHandler.DeleteProject)

		projects.POST("/:id/members", cfg.ProjectHandler.AddMember)
		projects.DELETE("/:id/members/:userId", cfg.ProjectHandler.RemoveMember)
		projects.POST("/:id/admins", cfg.ProjectHandler.AddAdmin)
		projects.DELETE("/:id/admins/:userId", cfg.ProjectHandler.RemoveAdmin)

		projects.POST("/:id/labels", cfg.ProjectHandler.CreateLabel)
		projects.GET("/:id/labels", cfg.ProjectHandler.ListLabels)
		projects.DELETE("/:id/labels/:labelId", cfg.ProjectHandler.DeleteLabel)
	}
}
