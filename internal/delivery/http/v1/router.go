package v1

import (
	"time"

	"jobify-backend/config"
	"jobify-backend/internal/delivery/http/middleware"
	"jobify-backend/internal/domain"
	"jobify-backend/internal/usecase"

	_ "jobify-backend/docs"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	JobUC    domain.JobUsecase
	CVUC     domain.CVUsecase
	FileUC   domain.FileUsecase
	HealthUC usecase.HealthUsecase
	Redis    *goredis.Client // optional, rate limit counters fall back to memory
	Config   *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()
	r.MaxMultipartMemory = 8 << 20

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeadersMiddleware(deps.Config.FrontendURL))
	r.Use(middleware.ErrorHandler())

	api := r.Group("/api")

	uploadLimiter := middleware.NewRateLimiter(
		middleware.UploadRateLimitConfig(
			deps.Config.RateLimitUploadsPerMin,
			time.Duration(deps.Config.RateLimitWindowSeconds)*time.Second,
		),
		deps.Redis,
	)

	NewFileHandler(api, deps.FileUC, deps.HealthUC, deps.Config.MaxUploadBytes, uploadLimiter.Middleware())
	NewJobHandler(api, deps.JobUC)
	NewCVHandler(api, deps.CVUC)

	// Swagger
	api.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}
