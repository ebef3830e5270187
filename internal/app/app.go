package app

import (
	"fmt"

	"github.com/kamranshamim45/ai-job-portal/internal/auth"
	"github.com/kamranshamim45/ai-job-portal/internal/config"
	"github.com/kamranshamim45/ai-job-portal/internal/email"
	"github.com/kamranshamim45/ai-job-portal/internal/handlers"
	"github.com/kamranshamim45/ai-job-portal/internal/logger"
	"github.com/kamranshamim45/ai-job-portal/internal/middleware"
	"github.com/kamranshamim45/ai-job-portal/internal/models"
	"github.com/kamranshamim45/ai-job-portal/internal/recommend"
	"github.com/kamranshamim45/ai-job-portal/internal/repositories"
	"github.com/kamranshamim45/ai-job-portal/internal/routes"
	"github.com/kamranshamim45/ai-job-portal/internal/services"
	"github.com/kamranshamim45/ai-job-portal/internal/storage"
	"github.com/kamranshamim45/ai-job-portal/internal/validator"
	"github.com/kamranshamim45/ai-job-portal/ws"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig

	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	auth.Configure(cfg.JWT.Secret, cfg.JWT.TTL)

	// TranslateError turns driver duplicate-key failures into
	// gorm.ErrDuplicatedKey, which the repositories rely on.
	gormDB, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{TranslateError: true})
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err := sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := migrate(gormDB); err != nil {
		logger.Fatal("Migration failed", "error", err)
	}

	if err := seedFirstAdmin(gormDB, cfg); err != nil {
		logger.Fatal("Failed to seed first admin user", "error", err)
	}

	router := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", "address", address)
	if err := router.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// SetupRouter wires repositories, services and handlers onto a gin engine.
func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	store, err := storage.New(cfg.Storage)
	if err != nil {
		logger.Fatal("Failed to initialize storage", "error", err)
	}
	mailer := email.New(cfg.Email)
	recommender := recommend.NewClient(cfg.Recommender)

	hub := ws.NewHub()
	go hub.Run()

	var redisClient *redis.Client
	if cfg.Redis.Addr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
	}
	limiter := middleware.NewRedisLimiter(redisClient)

	userRepo := repositories.NewUserRepository(gormDB)
	jobRepo := repositories.NewJobRepository(gormDB)
	appRepo := repositories.NewApplicationRepository(gormDB)

	authService := services.NewAuthService(userRepo)
	userService := services.NewUserService(userRepo, store, cfg)
	jobService := services.NewJobService(jobRepo, userRepo, hub, mailer, recommender)
	appService := services.NewApplicationService(appRepo, jobRepo, userRepo, hub, mailer)
	adminService := services.NewAdminService(userRepo, jobRepo, appRepo, hub)

	base := handlers.NewBaseHandler(validator.New())
	h := routes.Handlers{
		Auth:        handlers.NewAuthHandler(base, authService),
		User:        handlers.NewUserHandler(base, userService),
		Job:         handlers.NewJobHandler(base, jobService),
		Application: handlers.NewApplicationHandler(base, appService),
		Admin:       handlers.NewAdminHandler(base, adminService, jobService, appService),
	}

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.RequestIDMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.CORSMiddleware(),
	)

	localFilesDir := ""
	if local, ok := store.(*storage.LocalStorage); ok {
		localFilesDir = local.BasePath()
	}

	routes.Setup(router, h, hub, limiter, localFilesDir)
	return router
}

func migrate(db *gorm.DB) error {
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		return err
	}
	return db.AutoMigrate(
		&models.User{},
		&models.Job{},
		&models.Application{},
	)
}

// seedFirstAdmin creates the configured admin account on first startup.
// Admin accounts cannot be registered through the API.
func seedFirstAdmin(db *gorm.DB, cfg *config.Config) error {
	if cfg.FirstAdminEmail == "" || cfg.FirstAdminPassword == "" {
		logger.Warn("First admin not configured, skipping seed")
		return nil
	}

	var count int64
	if err := db.Model(&models.User{}).
		Where("role = ?", models.UserRoleAdmin).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := auth.HashPassword(cfg.FirstAdminPassword)
	if err != nil {
		return err
	}

	name := cfg.FirstAdminName
	if name == "" {
		name = "Administrator"
	}

	admin := &models.User{
		Name:         name,
		Email:        cfg.FirstAdminEmail,
		PasswordHash: hash,
		Role:         models.UserRoleAdmin,
	}
	if err := db.Create(admin).Error; err != nil {
		return err
	}

	logger.Info("First admin seeded", "email", cfg.FirstAdminEmail)
	return nil
}
