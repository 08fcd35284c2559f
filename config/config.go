package config

import (
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port string

	// Upload Service
	UploadDir          string // managed directory for CV binaries
	MaxUploadBytes     int64
	StrictContentCheck bool   // verify magic bytes on top of the extension whitelist
	ClamAVAddr         string // empty disables virus scanning

	// Record Store
	StoreBackend string // file | redis | memory
	StoreDir     string
	SeedDemoData bool

	// Redis Configuration
	RedisURL      string
	RedisPassword string

	// HTTP
	Environment            string // development | production
	FrontendURL            string
	LogLevel               string
	RateLimitUploadsPerMin int
	RateLimitWindowSeconds int
}

func LoadConfig() (*Config, error) {
	// .env is optional; production reads plain environment variables
	_ = godotenv.Load()

	cfg := &Config{
		Port:                   getEnv("PORT", "5000"),
		UploadDir:              getEnv("UPLOAD_DIR", filepath.Join("uploads", "cvs")),
		MaxUploadBytes:         getEnvInt64("MAX_UPLOAD_BYTES", 10*1024*1024),
		StrictContentCheck:     getEnvBool("STRICT_CONTENT_CHECK", false),
		ClamAVAddr:             getEnv("CLAMAV_ADDR", ""),
		StoreBackend:           strings.ToLower(getEnv("STORE_BACKEND", "file")),
		StoreDir:               getEnv("STORE_DIR", "data"),
		SeedDemoData:           getEnvBool("SEED_DEMO_DATA", false),
		RedisURL:               getEnv("REDIS_URL", ""),
		RedisPassword:          getEnv("REDIS_PASSWORD", ""),
		Environment:            getEnv("APP_ENV", "development"),
		FrontendURL:            strings.TrimRight(getEnv("FRONTEND_URL", "http://localhost:3000"), "/"),
		LogLevel:               getEnv("LOG_LEVEL", "info"),
		RateLimitUploadsPerMin: getEnvInt("RATE_LIMIT_UPLOADS_PER_MINUTE", 10),
		RateLimitWindowSeconds: getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 60),
	}

	if cfg.StoreBackend == "redis" && cfg.RedisURL == "" {
		log.Println("WARNING: STORE_BACKEND=redis but REDIS_URL is missing. Falling back to file store.")
		cfg.StoreBackend = "file"
	}

	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = 10 * 1024 * 1024
	}

	return cfg, nil
}

// ClientConfig is what the jobify CLI needs.
type ClientConfig struct {
	ServerURL string
	DataDir   string
	LogLevel  string
}

func LoadClientConfig() *ClientConfig {
	_ = godotenv.Load()

	dataDir := getEnv("JOBIFY_DATA_DIR", "")
	if dataDir == "" {
		if home, err := os.UserHomeDir(); err == nil {
			dataDir = filepath.Join(home, ".jobify")
		} else {
			dataDir = ".jobify"
		}
	}

	return &ClientConfig{
		ServerURL: strings.TrimRight(getEnv("JOBIFY_SERVER_URL", "http://localhost:5000"), "/"),
		DataDir:   dataDir,
		LogLevel:  getEnv("LOG_LEVEL", "warn"),
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

func getEnvInt64(key string, fallback int64) int64 {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intVal
		}
	}
	return fallback
}

// getEnvBool returns a boolean environment variable or fallback if not set/invalid
func getEnvBool(key string, fallback bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return fallback
}
