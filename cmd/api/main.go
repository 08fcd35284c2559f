package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"jobify-backend/config"
	_ "jobify-backend/docs" // Important for Swagger
	v1 "jobify-backend/internal/delivery/http/v1"
	"jobify-backend/internal/repository/disk"
	"jobify-backend/internal/repository/kv"
	"jobify-backend/internal/usecase"
	"jobify-backend/pkg/kvstore"
	"jobify-backend/pkg/logger"
	"jobify-backend/pkg/redis"
	"jobify-backend/pkg/security"
	"jobify-backend/pkg/security/antivirus"
	"jobify-backend/pkg/validation"
)

// @title           Jobify API
// @version         1.0
// @description     Job application tracker: CV file uploads plus JSON access to jobs and CVs.
// @host            localhost:5000
// @BasePath        /api
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init(cfg.LogLevel)
	logger.Log.Info("Starting jobify backend", "port", cfg.Port, "store", cfg.StoreBackend)
	audit := security.InitSecurityLogger("jobify-backend", cfg.Environment)
	defer func() { _ = audit.Sync() }()

	// 3. Setup Redis (optional)
	if cfg.RedisURL != "" {
		if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
			logger.Log.Warn("Redis unavailable, using in-memory rate limiting", "error", err)
		} else {
			defer redis.Close()
		}
	}

	// 4. Setup Record Store
	store, err := newStore(cfg)
	if err != nil {
		logger.Log.Error("Failed to open record store", "error", err)
		os.Exit(1)
	}
	jobRepo := kv.NewJobRepository(store)
	cvRepo := kv.NewCVRepository(store)

	// 5. Setup managed upload directory
	files, err := disk.NewFileStorage(cfg.UploadDir)
	if err != nil {
		logger.Log.Error("Failed to prepare upload directory", "dir", cfg.UploadDir, "error", err)
		os.Exit(1)
	}

	// 6. Setup UseCases
	validate := validation.New()
	fileUC := usecase.NewFileUsecase(files, antivirus.New(cfg.ClamAVAddr), usecase.FileUsecaseConfig{
		MaxUploadBytes:     cfg.MaxUploadBytes,
		StrictContentCheck: cfg.StrictContentCheck,
	})
	jobUC := usecase.NewJobUsecase(jobRepo, validate)
	cvUC := usecase.NewCVUsecase(cvRepo, fileUC, validate)
	healthUC := usecase.NewHealthUsecase()

	if cfg.SeedDemoData {
		seeded, err := jobUC.SeedJobs(context.Background(), nil)
		if err != nil {
			logger.Log.Warn("Failed to seed demo jobs", "error", err)
		} else {
			logger.Log.Info("Job store ready", "jobs", len(seeded))
		}
	}

	// 7. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		JobUC:    jobUC,
		CVUC:     cvUC,
		FileUC:   fileUC,
		HealthUC: healthUC,
		Redis:    redis.Client(),
		Config:   cfg,
	})

	// 8. Start Server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Log.Info("Upload directory", "dir", files.Dir())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Error("Listen failed", "error", err)
			os.Exit(1)
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

// newStore picks the Record Store backend. A redis backend without a live
// connection falls back to the file store.
func newStore(cfg *config.Config) (kvstore.Store, error) {
	switch cfg.StoreBackend {
	case "memory":
		return kvstore.NewMemory(), nil
	case "redis":
		if c := redis.Client(); c != nil {
			return kvstore.NewRedis(c, "jobify:"), nil
		}
		logger.Log.Warn("Redis store requested but not connected, falling back to file store")
	}
	return kvstore.NewFile(cfg.StoreDir)
}
