package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/mfrench730/career-cracker/internal/config"
	"github.com/mfrench730/career-cracker/internal/events"
	"github.com/mfrench730/career-cracker/internal/generator"
	"github.com/mfrench730/career-cracker/internal/handlers"
	"github.com/mfrench730/career-cracker/internal/interview"
	"github.com/mfrench730/career-cracker/internal/jobs"
	"github.com/mfrench730/career-cracker/internal/llm"
	_ "github.com/mfrench730/career-cracker/internal/llm/gemini"
	"github.com/mfrench730/career-cracker/internal/models"
	"github.com/mfrench730/career-cracker/internal/occupation"
	"github.com/mfrench730/career-cracker/internal/prompts"
	"github.com/mfrench730/career-cracker/internal/repositories"
	"github.com/mfrench730/career-cracker/internal/routers"
	"github.com/mfrench730/career-cracker/internal/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func registerRoutes(router *chi.Mux, cfg *config.Config, authHandler *handlers.AuthHandler, interviewHandler *handlers.InterviewHandler, ratingHandler *handlers.RatingHandler, jobsHandler *handlers.JobsHandler, healthHandler *handlers.HealthHandler) {
	routers.HealthRoutes(router, healthHandler)
	routers.AuthRoutes(router, authHandler)
	routers.InterviewRoutes(router, cfg.JWTSecret, interviewHandler, ratingHandler)
	routers.JobsRoutes(router, cfg.JWTSecret, jobsHandler)
}

// Helper functions for environment variables
func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultVal
}

// initDatabase initializes the PostgreSQL database connection
func initDatabase() (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(config.DatabaseDSN()), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Question{},
		&models.Interview{},
		&models.InterviewAnswer{},
		&models.QuestionRating{},
		&models.InterviewFeedback{},
	); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return db, nil
}

func main() {
	utils.InitLogger()
	logger := utils.GetLogger()
	defer logger.Sync()

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatal("Failed to load configuration", zap.Error(err))
	}

	logger.Info("Configuration loaded",
		zap.String("provider", cfg.Provider))

	// prompt manager
	promptManager, err := prompts.NewPromptManager()
	if err != nil {
		logger.Fatal("Failed to initialize prompt manager", zap.Error(err))
	}

	// AI provider based on configuration
	aiProvider, err := llm.NewProvider(cfg.Provider)
	if err != nil {
		logger.Fatal("Failed to initialize AI provider", zap.Error(err))
	}

	// occupation-data client
	occupationConfig, err := occupation.NewConfig()
	if err != nil {
		logger.Fatal("Failed to load occupation service configuration", zap.Error(err))
	}
	occupationClient := occupation.NewClient(occupationConfig)

	db, err := initDatabase()
	if err != nil {
		logger.Fatal("Failed to initialize database", zap.Error(err))
	}

	userRepo := &repositories.UserRepository{DB: db}
	questionRepo := &repositories.QuestionRepository{DB: db}
	interviewRepo := &repositories.InterviewRepository{DB: db}
	ratingRepo := &repositories.RatingRepository{DB: db}

	questionGenerator := generator.New(aiProvider, occupationClient, questionRepo, promptManager, logger)

	// event publisher is optional; without REDIS_ADDR completion events are
	// simply not broadcast
	var publisher interview.Publisher
	var eventPublisher *events.Publisher
	if cfg.RedisAddr != "" {
		eventPublisher = events.NewPublisher(cfg.RedisAddr)
		publisher = eventPublisher
		logger.Info("Event publisher enabled", zap.String("redis_addr", cfg.RedisAddr))
	}

	manager := interview.NewManager(interviewRepo, questionRepo, userRepo, ratingRepo, questionGenerator, publisher, logger)
	answerProcessor := interview.NewAnswerProcessor(interviewRepo, aiProvider, promptManager, logger)

	// scheduled export of ratings and feedback for offline analysis
	exporterConfig := &jobs.ExporterConfig{
		Schedule:     getEnv("RATING_EXPORT_SCHEDULE", "0 2 * * *"),
		ExportDir:    getEnv("RATING_EXPORT_DIR", "./exports"),
		Enabled:      getEnv("RATING_EXPORT_ENABLED", "false") == "true",
		LookbackDays: getEnvInt("RATING_EXPORT_LOOKBACK_DAYS", 7),
	}
	exporterJob := jobs.NewRatingExporterJob(ratingRepo, exporterConfig, logger)
	if err := exporterJob.Start(); err != nil {
		logger.Error("Failed to start rating exporter job", zap.Error(err))
	}

	authHandler := handlers.NewAuthHandler(userRepo, cfg.JWTSecret, logger)
	interviewHandler := handlers.NewInterviewHandler(manager, answerProcessor, logger)
	ratingHandler := handlers.NewRatingHandler(manager, logger)
	jobsHandler := handlers.NewJobsHandler(occupationClient, logger)
	healthHandler := handlers.NewHealthHandler(aiProvider, promptManager, db)

	router := chi.NewRouter()

	// cors middleware
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{getEnv("FRONTEND_ORIGIN", "http://localhost:5173")},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	router.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer, middleware.Timeout(60*time.Second))

	registerRoutes(router, cfg, authHandler, interviewHandler, ratingHandler, jobsHandler, healthHandler)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	serverAddr := ":" + port

	// http server with timeouts
	server := &http.Server{
		Addr:         serverAddr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// starting server in a goroutine
	go func() {
		logger.Info("Interview service starting", zap.String("addr", serverAddr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("failed to start server", zap.Error(err))
		}
	}()

	// wait for interrupt signal to gracefully shutdown the server
	shutdownChan := make(chan os.Signal, 1)
	signal.Notify(shutdownChan, syscall.SIGINT, syscall.SIGTERM)
	<-shutdownChan

	logger.Info("Interview service shutting down...")

	exporterJob.Stop()
	if eventPublisher != nil {
		if err := eventPublisher.Close(); err != nil {
			logger.Error("Failed to close event publisher", zap.Error(err))
		}
	}

	// graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Fatal("server forced to shutdown", zap.Error(err))
	}

	logger.Info("Interview service exited")
}
