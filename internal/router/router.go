package router

import (
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/yukikurage/labourlink-api/internal/constants"
	"github.com/yukikurage/labourlink-api/internal/handlers"
	"github.com/yukikurage/labourlink-api/internal/middleware"
	"github.com/yukikurage/labourlink-api/internal/models"
	"github.com/yukikurage/labourlink-api/internal/repository"
	"github.com/yukikurage/labourlink-api/internal/services"
	"github.com/yukikurage/labourlink-api/internal/utils"
	"gorm.io/gorm"
)

// Dependencies are the process-wide collaborators the HTTP layer is built from.
type Dependencies struct {
	DB             *gorm.DB
	SessionStore   sessions.Store
	ChatLimiter    middleware.Limiter
	JobDrafter     services.JobDrafter
	Tokens         *utils.TokenManager
	ChatRateLimit  int
	ChatRateWindow time.Duration
}

// New wires repositories, services and handlers and registers every route.
func New(deps Dependencies) *gin.Engine {
	userRepo := repository.NewUserRepository(deps.DB)
	jobRepo := repository.NewJobRepository(deps.DB)
	appRepo := repository.NewApplicationRepository(deps.DB)
	chatRepo := repository.NewChatRepository(deps.DB)
	profileRepo := repository.NewProfileRepository(deps.DB)

	authService := services.NewAuthService(userRepo, deps.Tokens)
	jobService := services.NewJobService(jobRepo, deps.JobDrafter)
	applicationService := services.NewApplicationService(appRepo, jobRepo)
	chatService := services.NewChatService(chatRepo, appRepo)
	profileService := services.NewProfileService(profileRepo)

	authHandler := handlers.NewAuthHandler(authService)
	jobHandler := handlers.NewJobHandler(jobService)
	applicationHandler := handlers.NewApplicationHandler(applicationService)
	chatHandler := handlers.NewChatHandler(chatService)
	profileHandler := handlers.NewProfileHandler(profileService)

	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery(), middleware.RequestID())
	r.Use(sessions.Sessions(constants.SessionCookieName, deps.SessionStore))

	requireAuth := middleware.RequireAuth(authService)
	workerOnly := middleware.RequireRole(models.RoleWorker, services.ErrWorkerRoleRequired.Error())
	recruiterOnly := middleware.RequireRole(models.RoleRecruiter, services.ErrRecruiterRoleRequired.Error())

	r.GET("/health", handlers.Health)

	api := r.Group("/api")
	{
		api.GET("/health", handlers.Health)

		// Auth routes (public)
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", authHandler.Logout)
			auth.GET("/me", requireAuth, authHandler.GetCurrentUser)
		}

		jobID := middleware.RequireUUIDParam("id", "Invalid job ID")
		jobs := api.Group("/jobs")
		{
			jobs.GET("", jobHandler.ListJobs)
			jobs.POST("", requireAuth, middleware.RequireRole(models.RoleRecruiter, services.ErrOnlyRecruitersCanPostJobs.Error()), jobHandler.CreateJob)
			jobs.GET("/recruiter", requireAuth, recruiterOnly, jobHandler.ListRecruiterJobs)
			jobs.POST("/draft", requireAuth, recruiterOnly, jobHandler.DraftJob)
			jobs.PATCH("/:id/status", requireAuth, recruiterOnly, jobID, jobHandler.UpdateJobStatus)
		}

		applicationID := middleware.RequireUUIDParam("id", "Invalid application ID")
		applications := api.Group("/applications")
		applications.Use(requireAuth)
		{
			applications.POST("", middleware.RequireRole(models.RoleWorker, services.ErrOnlyWorkersCanApply.Error()), applicationHandler.Apply)
			applications.GET("/worker", workerOnly, applicationHandler.ListWorkerApplications)
			applications.GET("/recruiter", recruiterOnly, applicationHandler.ListRecruiterApplications)
			applications.PATCH("/:id/status", recruiterOnly, applicationID, applicationHandler.UpdateStatus)
			applications.POST("/:id/feedback", recruiterOnly, applicationID, applicationHandler.AddFeedback)
		}

		chatApplicationID := middleware.RequireUUIDParam("applicationId", "Invalid application ID")
		chat := api.Group("/chat")
		chat.Use(requireAuth)
		{
			chat.GET("/conversations", chatHandler.ListConversations)
			chat.GET("/:applicationId", chatApplicationID, chatHandler.GetMessages)
			chat.POST("/:applicationId",
				chatApplicationID,
				middleware.ChatRateLimit(deps.ChatLimiter, "applicationId", deps.ChatRateLimit, deps.ChatRateWindow),
				chatHandler.PostMessage,
			)
		}

		profile := api.Group("/profile")
		profile.Use(requireAuth)
		{
			profile.GET("/me", profileHandler.GetProfile)
			profile.PUT("/me", profileHandler.UpdateProfile)
		}
	}

	return r
}
