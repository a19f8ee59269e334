package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"craftconnect_backend/internal/config"
	"craftconnect_backend/internal/controller"
	"craftconnect_backend/internal/repository"
	"craftconnect_backend/internal/service"
	"craftconnect_backend/pkg/database"
	"craftconnect_backend/pkg/logger"
	"craftconnect_backend/pkg/monitoring"
	"craftconnect_backend/pkg/security"
	"craftconnect_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config   *config.Config
	Router   *gin.Engine
	DB       *gorm.DB
	Redis    *redis.Client
	services *services
}

type repositories struct {
	artisan       *repository.ArtisanRepository
	client        *repository.ClientRepository
	tradeCategory *repository.TradeCategoryRepository
	assessment    *repository.AssessmentRepository
	job           *repository.JobRepository
}

type services struct {
	ai         *service.AIService
	storage    *service.StorageService
	auth       *service.AuthService
	user       *service.UserService
	assessment *service.AssessmentService
	job        *service.JobService
}

type controllers struct {
	auth       *controller.AuthController
	user       *controller.UserController
	assessment *controller.AssessmentController
	job        *controller.JobController
	health     *controller.HealthController
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		artisan:       repository.NewArtisanRepository(db),
		client:        repository.NewClientRepository(db),
		tradeCategory: repository.NewTradeCategoryRepository(db),
		assessment:    repository.NewAssessmentRepository(db),
		job:           repository.NewJobRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, rdb *redis.Client) *services {
	s := &services{}

	s.ai = service.NewAIService(cfg.AI)
	s.storage = service.NewStorageService(cfg)
	s.auth = service.NewAuthService(repos.artisan, repos.client, cfg)
	s.user = service.NewUserService(repos.artisan, repos.client, repos.tradeCategory, s.storage, rdb)
	s.assessment = service.NewAssessmentService(repos.assessment, s.ai)
	s.job = service.NewJobService(repos.job)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB) *controllers {
	return &controllers{
		auth:       controller.NewAuthController(s.auth, s.user),
		user:       controller.NewUserController(s.user),
		assessment: controller.NewAssessmentController(s.assessment),
		job:        controller.NewJobController(s.job),
		health:     controller.NewHealthController(db),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	if window <= 0 {
		window = time.Minute
	}
	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 600
	}
	router.Use(security.RateLimiter(maxRequests, window))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

// ReloadConfig applies a freshly loaded config to the running service.
// Only AI provider settings are hot-swappable; everything else needs a
// restart.
func (a *App) ReloadConfig(cfg *config.Config) {
	a.services.ai.UpdateConfig(cfg.AI)
	logger.Log.Info("AI provider config applied", zap.String("model", cfg.AI.Model))
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)

	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Fatal("Failed to initialize redis", zap.Error(err))
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg, rdb)
	app.services = services
	controllers := app.initControllers(services, db)

	monitoring.Init()

	gin.SetMode(ginMode(cfg.Server.Mode))
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("craftconnect", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, cfg)

	if cfg.Storage.Type == "local" {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	return app
}

func ginMode(mode string) string {
	switch mode {
	case "release":
		return gin.ReleaseMode
	case "test":
		return gin.TestMode
	default:
		return gin.DebugMode
	}
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
