package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	authusecases "taskboard/internal/application/auth/usecases"
	commentusecases "taskboard/internal/application/comment/usecases"
	projectusecases "taskboard/internal/application/project/usecases"
	ticketusecases "taskboard/internal/application/ticket/usecases"
	userusecases "taskboard/internal/application/user/usecases"
	"taskboard/internal/infrastructure/auth"
	"taskboard/internal/infrastructure/config"
	"taskboard/internal/infrastructure/ratelimit"
	"taskboard/internal/infrastructure/repository"
	"taskboard/internal/interfaces/http/handlers"
	"taskboard/internal/interfaces/http/middleware"
	"taskboard/internal/interfaces/http/routes"
	"taskboard/internal/shared/db"
	"taskboard/internal/shared/logger"
)

// NewRouter assembles the full HTTP surface: repositories, use cases,
// handlers, middleware, and routes.
func NewRouter(cfg *config.Config, database *gorm.DB) (*gin.Engine, error) {
	log := logger.NewLogger()

	jwtService, err := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.ExpiryDays)
	if err != nil {
		return nil, err
	}
	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)

	userRepo := repository.NewGormUserRepository(database)
	projectRepo := repository.NewGormProjectRepository(database)
	labelRepo := repository.NewGormLabelRepository(database)
	ticketRepo := repository.NewGormTicketRepository(database)
	commentRepo := repository.NewGormCommentRepository(database)
	txManager := db.NewTransactionManager(database)

	registerUC := authusecases.NewRegisterUseCase(userRepo, hasher, jwtService, log)
	loginUC := authusecases.NewLoginUseCase(userRepo, hasher, jwtService, log)

	getProfileUC := userusecases.NewGetProfileUseCase(userRepo, log)
	searchUsersUC := userusecases.NewSearchUsersUseCase(userRepo, log)

	createProjectUC := projectusecases.NewCreateProjectUseCase(projectRepo, log)
	listProjectsUC := projectusecases.NewListProjectsUseCase(projectRepo, log)
	getProjectUC := projectusecases.NewGetProjectUseCase(projectRepo, log)
	updateProjectUC := projectusecases.NewUpdateProjectUseCase(projectRepo, log)
	deleteProjectUC := projectusecases.NewDeleteProjectUseCase(
		projectRepo, labelRepo, ticketRepo, commentRepo, txManager, log)
	addMemberUC := projectusecases.NewAddMemberUseCase(projectRepo, userRepo, log)
	removeMemberUC := projectusecases.NewRemoveMemberUseCase(projectRepo, log)
	addAdminUC := projectusecases.NewAddAdminUseCase(projectRepo, log)
	removeAdminUC := projectusecases.NewRemoveAdminUseCase(projectRepo, log)
	createLabelUC := projectusecases.NewCreateLabelUseCase(projectRepo, labelRepo, log)
	listLabelsUC := projectusecases.NewListLabelsUseCase(projectRepo, labelRepo, log)
	deleteLabelUC := projectusecases.NewDeleteLabelUseCase(projectRepo, labelRepo, log)

	createTicketUC := ticketusecases.NewCreateTicketUseCase(projectRepo, ticketRepo, log)
	listTicketsUC := ticketusecases.NewListProjectTicketsUseCase(projectRepo, ticketRepo, userRepo, log)
	getTicketUC := ticketusecases.NewGetTicketUseCase(projectRepo, ticketRepo, userRepo, log)
	updateTicketUC := ticketusecases.NewUpdateTicketUseCase(projectRepo, ticketRepo, log)
	deleteTicketUC := ticketusecases.NewDeleteTicketUseCase(
		projectRepo, ticketRepo, commentRepo, txManager, log)

	createCommentUC := commentusecases.NewCreateCommentUseCase(projectRepo, ticketRepo, commentRepo, log)
	listCommentsUC := commentusecases.NewListTicketCommentsUseCase(projectRepo, ticketRepo, commentRepo, log)
	updateCommentUC := commentusecases.NewUpdateCommentUseCase(commentRepo, log)
	deleteCommentUC := commentusecases.NewDeleteCommentUseCase(commentRepo, log)

	authHandler := handlers.NewAuthHandler(registerUC, loginUC, log)
	userHandler := handlers.NewUserHandler(getProfileUC, searchUsersUC, log)
	projectHandler := handlers.NewProjectHandler(
		createProjectUC, listProjectsUC, getProjectUC, updateProjectUC, deleteProjectUC,
		addMemberUC, removeMemberUC, addAdminUC, removeAdminUC,
		createLabelUC, listLabelsUC, deleteLabelUC, log)
	ticketHandler := handlers.NewTicketHandler(
		createTicketUC, listTicketsUC, getTicketUC, updateTicketUC, deleteTicketUC, log)
	commentHandler := handlers.NewCommentHandler(
		createCommentUC, listCommentsUC, updateCommentUC, deleteCommentUC, log)

	authMiddleware := middleware.NewAuthMiddleware(jwtService, log)

	gin.SetMode(ginMode(cfg.Server.Mode))
	engine := gin.New()
	engine.Use(middleware.Recovery(log))
	engine.Use(middleware.RequestLogging(log))
	engine.Use(middleware.CORS(cfg.Server.AllowedOrigins))

	engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.SetupAuthRoutes(engine, &routes.AuthRouteConfig{
		AuthHandler: authHandler,
		RateLimit:   authRateLimit(cfg, log),
	})
	routes.SetupUserRoutes(engine, &routes.UserRouteConfig{
		UserHandler:    userHandler,
		AuthMiddleware: authMiddleware,
	})
	routes.SetupProjectRoutes(engine, &routes.ProjectRouteConfig{
		ProjectHandler: projectHandler,
		AuthMiddleware: authMiddleware,
	})
	routes.SetupTicketRoutes(engine, &routes.TicketRouteConfig{
		TicketHandler:  ticketHandler,
		AuthMiddleware: authMiddleware,
	})
	routes.SetupCommentRoutes(engine, &routes.CommentRouteConfig{
		CommentHandler: commentHandler,
		AuthMiddleware: authMiddleware,
	})

	return engine, nil
}

// authRateLimit picks the limiter backend. Redis survives restarts and covers
// multi-instance deployments; the in-process fallback is good enough for a
// single node.
func authRateLimit(cfg *config.Config, log logger.Interface) gin.HandlerFunc {
	if cfg.RateLimit.AuthPerMinute <= 0 {
		return nil
	}

	var limiter ratelimit.RateLimiter
	if cfg.Redis.Enabled {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.GetAddr(),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		limiter = ratelimit.NewRedisRateLimiter(client)
	} else {
		limiter = ratelimit.NewMemoryRateLimiter()
	}

	return middleware.RateLimit(limiter, cfg.RateLimit.AuthPerMinute, log)
}

func ginMode(mode string) string {
	switch mode {
	case "release", "production":
		return gin.ReleaseMode
	case "test":
		return gin.TestMode
	default:
		return gin.DebugMode
	}
}
