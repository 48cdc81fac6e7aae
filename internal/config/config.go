package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App         AppConfig
	CMS         CMSConfig
	SearchIndex SearchIndexConfig
	Ai          AIConfig
	Session     SessionConfig
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
	IndexTopic         string
}

type CMSConfig struct {
	SpaceID         string
	DeliveryToken   string
	ManagementToken string
}

type SearchIndexConfig struct {
	AppID     string
	APIKey    string
	IndexName string
}

type AIConfig struct {
	Provider string // "gemini", "openai" or "ollama"
	Model    string
	ApiKey   string
	BaseURL  string
}

type SessionConfig struct {
	TTL time.Duration
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
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			NatsURL:            getEnv("NATS_URL", "nats://localhost:4222"),
			RedisURL:           getEnv("REDIS_URL", ""),
			IndexTopic:         getEnv("INDEX_ARTICLE_TOPIC_NAME", "INDEX_ARTICLE"),
		},
		CMS: CMSConfig{
			SpaceID:         getEnv("CMS_SPACE_ID", ""),
			DeliveryToken:   getEnv("CMS_DELIVERY_TOKEN", ""),
			ManagementToken: getEnv("CMS_MANAGEMENT_TOKEN", ""),
		},
		SearchIndex: SearchIndexConfig{
			AppID:     getEnv("SEARCH_APP_ID", ""),
			APIKey:    getEnv("SEARCH_API_KEY", ""),
			IndexName: getEnv("SEARCH_INDEX_NAME", "articles"),
		},
		Ai: AIConfig{
			Provider: getEnv("LLM_PROVIDER", "gemini"),
			Model:    getEnv("LLM_MODEL", ""),
			ApiKey:   getEnv("LLM_API_KEY", ""),
			BaseURL:  getEnv("LLM_BASE_URL", ""),
		},
		Session: SessionConfig{
			TTL: getEnvAsDuration("SESSION_TTL", time.Hour),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	strValue := getEnv(key, "")
	if seconds, err := strconv.Atoi(strValue); err == nil && seconds > 0 {
		return time.Duration(seconds) * time.Second
	}
	return fallback
}
