package app

import (
	"net/http"

	"craftconnect_backend/docs"
	"craftconnect_backend/internal/config"
	"craftconnect_backend/internal/middleware"
	"craftconnect_backend/internal/model"
	"craftconnect_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok", "message": "CraftConnect API is running"})
	})

	a.registerPublicRoutes(router, c)

	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg))
	{
		a.registerUserRoutes(authGroup, c)
		a.registerAssessmentRoutes(authGroup, c)
		a.registerJobRoutes(authGroup, c)
	}
}

func (a *App) registerPublicRoutes(router *gin.Engine, c *controllers) {
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)

		users := public.Group("/users")
		{
			users.POST("/artisan/register", c.auth.RegisterArtisan)
			users.POST("/client/register", c.auth.RegisterClient)
			users.POST("/login", c.auth.Login)
			users.GET("/profile", c.user.GetProfile)
			users.GET("/trade-categories", c.user.ListTradeCategories)
		}

		public.GET("/jobs/all", c.job.ListJobs)
	}
}

func (a *App) registerUserRoutes(rg *gin.RouterGroup, c *controllers) {
	users := rg.Group("/users")
	{
		users.GET("/me", c.auth.Me)
		users.PUT("/profile/update", c.user.UpdateProfile)
		users.POST("/profile/picture", c.user.UploadProfilePicture)
		users.POST("/trade-categories/add", c.user.AddTradeCategory)
	}
}

func (a *App) registerAssessmentRoutes(rg *gin.RouterGroup, c *controllers) {
	assessment := rg.Group("/assessment")
	{
		assessment.POST("/start", middleware.RoleMiddleware(model.ArtisanUser), c.assessment.StartAssessment)
		assessment.POST("/submit", middleware.RoleMiddleware(model.ArtisanUser), c.assessment.SubmitAssessment)
		assessment.GET("/:id", c.assessment.GetAssessment)
		assessment.GET("/artisan/:artisanId", c.assessment.ListArtisanAssessments)
	}
}

func (a *App) registerJobRoutes(rg *gin.RouterGroup, c *controllers) {
	jobs := rg.Group("/jobs")
	{
		jobs.POST("/create", middleware.RoleMiddleware(model.ClientUser), c.job.CreateJob)
		jobs.POST("/:id/assign", middleware.RoleMiddleware(model.ArtisanUser), c.job.AssignJob)
		jobs.POST("/:id/complete", middleware.RoleMiddleware(model.ClientUser), c.job.CompleteJob)
	}
}
