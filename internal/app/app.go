package app

import (
	"fmt"
	"time"

	"taskpay_backend/database"
	"taskpay_backend/internal/config"
	"taskpay_backend/internal/handlers"
	"taskpay_backend/internal/logger"
	"taskpay_backend/internal/middleware"
	"taskpay_backend/internal/repositories"
	"taskpay_backend/internal/routes"
	"taskpay_backend/internal/services"
	"taskpay_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Connecting to database...")
	gormDB, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
	if err != nil {
		logger.Fatal("Failed to connect to GORM", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := database.AutoMigrate(gormDB); err != nil {
		logger.Fatal("Failed to run migrations", "error", err)
	}
	if err := database.SeedPlans(gormDB); err != nil {
		logger.Fatal("Failed to seed plans", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(fmt.Sprintf("Server starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// SetupRouter builds the fully wired gin engine. Tests reuse it against
// their own database handle.
func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	serviceContainer := initializeServices(cfg)

	appHandlers := initializeHandlers(serviceContainer)

	ginRouter := initializeGinRouter(gormDB)

	routes.RegisterRoutes(ginRouter, appHandlers)

	return ginRouter
}

func initializeServices(cfg *config.Config) *services.ServiceContainer {
	userRepo := repositories.NewUserRepository()
	planRepo := repositories.NewPlanRepository()
	taskRepo := repositories.NewTaskRepository()
	transactionRepo := repositories.NewTransactionRepository()

	planService := services.NewPlanService(
		planRepo,
		cfg.Billing.ProPlan,
		time.Duration(cfg.Billing.PlanCacheTTLSeconds)*time.Second,
	)
	taskService := services.NewTaskService(taskRepo, userRepo)
	userService := services.NewUserService(userRepo)
	paymentService := services.NewPaymentService(userRepo, transactionRepo, planService)

	return &services.ServiceContainer{
		TaskService:    taskService,
		UserService:    userService,
		PlanService:    planService,
		PaymentService: paymentService,
	}
}

func initializeHandlers(services *services.ServiceContainer) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	return &handlers.AppHandlers{
		TaskHandler:    handlers.NewTaskHandler(baseHandler, services.TaskService),
		UserHandler:    handlers.NewUserHandler(baseHandler, services.UserService, services.PlanService),
		PaymentHandler: handlers.NewPaymentHandler(baseHandler, services.PaymentService),
	}
}

func initializeGinRouter(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.DBMiddleware(db))
	return router
}
