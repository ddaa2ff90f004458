package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Content  ContentConfig
}

type AppConfig struct {
	Port               string
	BaseURL            string
	ClientURL          string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	NatsURL            string
	RedisURL           string
}

type DatabaseConfig struct {
	Connection string
}

// ContentConfig tunes the rich-text pipeline.
type ContentConfig struct {
	SiteOrigin       string // origin used to classify links as internal
	HighlightStyle   string // chroma style name
	RenderCacheTTL   int    // seconds, rendered article cache in Redis
	ReadingTimeTopic string // watermill topic for write-time recompute
	MaxExtractDepth  int
	MaxExtractNodes  int
	MaxExtractChars  int
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			BaseURL:            getEnv("APP_BASE_URL", "http://localhost:3000"),
			ClientURL:          getEnv("CLIENT_URL", "http://localhost:5173"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "logs/app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			NatsURL:            getEnv("NATS_URL", "nats://localhost:4222"),
			RedisURL:           getEnv("REDIS_URL", "redis://localhost:6379"),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Content: ContentConfig{
			SiteOrigin:       getEnv("SITE_ORIGIN", "http://localhost:5173"),
			HighlightStyle:   getEnv("HIGHLIGHT_STYLE", "github"),
			RenderCacheTTL:   getEnvAsInt("RENDER_CACHE_TTL_SECONDS", 300),
			ReadingTimeTopic: getEnv("READING_TIME_TOPIC_NAME", "COMPUTE_READING_TIME"),
			MaxExtractDepth:  getEnvAsInt("MAX_EXTRACT_DEPTH", 50),
			MaxExtractNodes:  getEnvAsInt("MAX_EXTRACT_NODES", 10000),
			MaxExtractChars:  getEnvAsInt("MAX_EXTRACT_CHARS", 500000),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}
