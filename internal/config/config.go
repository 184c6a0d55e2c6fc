// Package config assembles service configuration from environment
// variables, with an optional .env file for development.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/textlift/textlift/pkg/logging"
)

// Config holds the complete service configuration.
type Config struct {
	Server     ServerConfig
	Processing ProcessingConfig
	Logging    *logging.LogConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port           string
	CORSOrigins    string
	MaxUploadBytes int64
	BodyLimit      int
}

// ProcessingConfig holds extraction pipeline settings.
type ProcessingConfig struct {
	RenderDPI        int
	MaxPDFPages      int
	MaxOCRConcurrent int64
	ExtractTimeout   time.Duration
}

// Load reads configuration from the environment. A .env file in the
// working directory is applied first when present.
func Load() Config {
	_ = godotenv.Load()

	logCfg := logging.DefaultLogConfig()
	logCfg.Level = getEnv("LOG_LEVEL", logCfg.Level)
	logCfg.Format = getEnv("LOG_FORMAT", logCfg.Format)
	logCfg.OutputFile = getEnv("LOG_FILE", logCfg.OutputFile)

	maxUpload := getEnvInt64("MAX_UPLOAD_BYTES", 50*1024*1024) // 50MB per file

	return Config{
		Server: ServerConfig{
			Port:           getEnv("PORT", "8080"),
			CORSOrigins:    getEnv("CORS_ORIGINS", "*"),
			MaxUploadBytes: maxUpload,
			// Multipart envelope on top of a full batch of files
			BodyLimit: int(maxUpload*4 + 1024*1024),
		},
		Processing: ProcessingConfig{
			RenderDPI:        getEnvInt("RENDER_DPI", 200),
			MaxPDFPages:      getEnvInt("MAX_PDF_PAGES", 500),
			MaxOCRConcurrent: getEnvInt64("MAX_OCR_CONCURRENT", 2),
			ExtractTimeout:   getEnvDuration("EXTRACT_TIMEOUT", 5*time.Minute),
		},
		Logging: logCfg,
	}
}

// getEnv retrieves an environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

func getEnvInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.ParseInt(value, 10, 64); err == nil {
			return n
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
