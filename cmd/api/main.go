package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-interview-backend/config"
	_ "go-interview-backend/docs" // Important for Swagger
	v1 "go-interview-backend/internal/delivery/http/v1"
	"go-interview-backend/internal/events"
	"go-interview-backend/internal/reminder"
	"go-interview-backend/internal/repository/postgres"
	"go-interview-backend/internal/service"
	"go-interview-backend/internal/usecase"
	"go-interview-backend/pkg/auth"
	"go-interview-backend/pkg/database"
	"go-interview-backend/pkg/email"
	"go-interview-backend/pkg/logger"
	"go-interview-backend/pkg/redis"

	"github.com/go-playground/validator/v10"
)

// @title           Interview Prep Backend API
// @version         1.0
// @description     Interview session lifecycle and scheduled-mock API using Clean Architecture.
// @host            localhost:8080
// @BasePath        /v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting interview backend", "port", cfg.Port)

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// 4. Setup Redis (plan cache + rate limiting; optional)
	if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
		logger.Log.Warn("Redis unavailable, continuing without cache", "error", err)
	}

	// 5. Setup Repositories
	userRepo := postgres.NewUserRepository(dbPool)
	interviewRepo := postgres.NewInterviewRepository(dbPool)
	mockRepo := postgres.NewMockRepository(dbPool)

	// 6. Setup outbound collaborators
	timeout := time.Duration(cfg.CollaboratorTimeoutSeconds) * time.Second
	generator := service.NewGeneratorClient(cfg.GeneratorURL, timeout)
	scorer := service.NewScorerClient(cfg.ScorerURL, timeout)
	payment := service.NewPaymentClient(cfg.PaymentAPIURL, cfg.PaymentAPIKey, cfg.CheckoutSuccessURL, cfg.CheckoutCancelURL, timeout)

	// 7. Setup Email Service
	emailService := email.NewEmailService(cfg)
	if !emailService.IsConfigured() {
		logger.Log.Warn("Email service not fully configured - schedule confirmations and reminders will be unavailable")
	}

	// 8. Event bus for camera-release and change notifications
	bus := events.NewBus()
	defer bus.Close()

	// 9. Setup UseCases
	validate := validator.New()
	userUC := usecase.NewUserUsecase(userRepo, interviewRepo, mockRepo)
	interviewUC := usecase.NewInterviewUsecase(interviewRepo, userRepo, generator, scorer, bus, validate, timeout)
	scheduleUC := usecase.NewScheduleUsecase(mockRepo, interviewUC, emailService, bus, validate)
	billingUC := usecase.NewBillingUsecase(userRepo, payment, redis.Client())
	adminUC := usecase.NewAdminUsecase(userRepo, interviewRepo, redis.Client())

	// 10. Setup Auth Provider (JWKS)
	jwksProvider := auth.NewProvider(cfg.ClerkJWKSURL)

	// 11. Reminder worker for scheduled mocks
	reminderWorker := reminder.NewWorker(
		mockRepo,
		emailService,
		time.Duration(cfg.ReminderIntervalSeconds)*time.Second,
		time.Duration(cfg.ReminderLeadMinutes)*time.Minute,
	)
	reminderWorker.Start()
	defer reminderWorker.Stop()

	// 12. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		UserUC:       userUC,
		InterviewUC:  interviewUC,
		ScheduleUC:   scheduleUC,
		BillingUC:    billingUC,
		AdminUC:      adminUC,
		Bus:          bus,
		JWKSProvider: jwksProvider,
		Config:       cfg,
	})

	// 13. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
