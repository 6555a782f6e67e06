package config

import (
	"log"
	"os"
	"strconv"
	"time"
)

type Config struct {
	MongoURI        string
	NATSUrl         string
	Port            string
	RedditBaseURL   string
	RedditUserAgent string
	PostLimit       int
	CommentLimit    int
	HTTPTimeout     time.Duration
	WorkerCount     int
	Version         string
	Environment     string
}

func Load() *Config {
	cfg := &Config{
		MongoURI:        getEnv("MONGO_URI", "mongodb://localhost:27017"),
		NATSUrl:         getEnv("NATS_URL", "nats://localhost:4222"),
		Port:            getEnv("PORT", "8080"),
		RedditBaseURL:   getEnv("REDDIT_BASE_URL", "https://www.reddit.com"),
		RedditUserAgent: getEnv("REDDIT_USER_AGENT", "JustScrolls-Persona-Service/1.0"),
		PostLimit:       getIntEnv("POST_LIMIT", 10),
		CommentLimit:    getIntEnv("COMMENT_LIMIT", 10),
		HTTPTimeout:     getDurationEnv("HTTP_TIMEOUT", "30s"),
		WorkerCount:     getIntEnv("WORKER_COUNT", 3),
		Version:         getEnv("APP_VERSION", "1.0.0"),
		Environment:     getEnv("ENVIRONMENT", "development"),
	}

	log.Printf("Config loaded - PostLimit: %d, CommentLimit: %d, Workers: %d",
		cfg.PostLimit, cfg.CommentLimit, cfg.WorkerCount)

	return cfg
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue string) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	duration, _ := time.ParseDuration(defaultValue)
	return duration
}
