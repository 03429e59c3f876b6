package v1

import (
	"net/http"
	"time"

	"go-interview-backend/config"
	"go-interview-backend/internal/delivery/http/middleware"
	"go-interview-backend/internal/delivery/http/response"
	"go-interview-backend/internal/domain"
	"go-interview-backend/internal/events"
	"go-interview-backend/pkg/auth"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	UserUC       domain.UserUsecase
	InterviewUC  domain.InterviewUsecase
	ScheduleUC   domain.ScheduleUsecase
	BillingUC    domain.BillingUsecase
	AdminUC      domain.AdminUsecase
	Bus          *events.Bus
	JWKSProvider *auth.Provider
	Config       *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global middlewares; CORS must run before anything that can abort
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL))
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.RateLimitMiddleware(middleware.GlobalRateLimitConfig(
		deps.Config.RateLimitGlobalThreshold,
		time.Duration(deps.Config.RateLimitWindowSeconds)*time.Second,
	)))
	r.Use(middleware.ErrorHandler())

	v1 := r.Group("/v1")

	// Health check
	v1.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Protected routes
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(deps.JWKSProvider, deps.Config, deps.UserUC))
	{
		NewInterviewHandler(protected, deps.InterviewUC)
		NewScheduleHandler(protected, deps.ScheduleUC)
		NewUserHandler(protected, deps.UserUC, deps.BillingUC)
		NewBillingHandler(protected, deps.BillingUC)
		NewAdminHandler(protected, deps.AdminUC)
		NewEventsHandler(protected, deps.Bus)
	}

	return r
}
