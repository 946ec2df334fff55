// @title SAT Prep API
// @version 1.0
// @description Question bank, answer checking and AI tutor API for SAT preparation.
// @termsOfService http://swagger.io/terms/
// @contact.name API Support
// @contact.url http://www.swagger.io/support
// @contact.email support@swagger.io
// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html
// @host localhost:8090
// @BasePath /api
// @schemes http https
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
// @description Type 'Bearer YOUR_JWT_TOKEN' to authorize.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"sat-prep/internal/adapter"
	"sat-prep/internal/adapter/tutor"
	"sat-prep/internal/cache"
	"sat-prep/internal/config"
	"sat-prep/internal/database"
	"sat-prep/internal/handler"
	"sat-prep/internal/logger"
	"sat-prep/internal/middleware"
	"sat-prep/internal/questionbank"
	"sat-prep/internal/repository"
	"sat-prep/internal/service"

	_ "sat-prep/cmd/api/docs"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		panic(err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	// Question bank is read once and shared read-only by every request
	bank, report, err := questionbank.Open(cfg.QuestionBank.DatasetPath, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to load question bank", zap.Error(err))
	}
	if len(report.Excluded) > 0 {
		appLogger.Warn("Question bank loaded with exclusions", zap.Int("excluded", len(report.Excluded)))
	}

	db, err := database.NewSQLXDB(cfg.DB.Driver, cfg.GetDSN())
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	chatRepository := repository.NewChatHistoryRepository(db)
	attemptRepository := repository.NewPracticeAttemptRepository(db)
	txManager := repository.NewTransactionManagerAdapter(db)

	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		appLogger.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer redisClient.Close()
	appLogger.Info("Successfully connected to Redis")
	cacheAdapter := adapter.NewRedisCacheAdapter(redisClient)

	tutorClient, err := tutor.NewGroqClient(cfg.Tutor)
	if err != nil {
		appLogger.Fatal("Failed to create tutor client", zap.Error(err))
	}
	appLogger.Info("Tutor client initialized", zap.String("model", cfg.Tutor.Model))

	// Initialize services
	authService, err := service.NewAuthService(cfg.Auth)
	if err != nil {
		appLogger.Fatal("Failed to create AuthService", zap.Error(err))
	}
	statsService := service.NewStatsService(attemptRepository, cfg.Stats)
	questionService := service.NewQuestionService(bank, cfg.QuestionBank, statsService)
	chatHistoryService := service.NewChatHistoryService(chatRepository, txManager)
	favoriteService := service.NewFavoriteService(cacheAdapter, cfg.Favorites)
	tutorService := service.NewTutorService(tutorClient, chatHistoryService, cacheAdapter, cfg.Tutor)

	handlers := &handler.Handlers{
		Question: handler.NewQuestionHandler(questionService),
		Chat:     handler.NewChatHandler(chatHistoryService),
		Tutor:    handler.NewTutorHandler(tutorService),
		Favorite: handler.NewFavoriteHandler(favoriteService),
		Stats:    handler.NewStatsHandler(statsService),
	}

	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  20 * time.Second,
		BodyLimit:    1 * 1024 * 1024,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(middleware.RequestLogger())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PATCH,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization",
		MaxAge:       300,
	}))
	app.Use(recover.New())

	app.Get("/swagger/*", swagger.HandlerDefault)
	handler.SetupRoutes(app, handlers, authService)

	go func() {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("env", cfg.Logger.Env))
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}
