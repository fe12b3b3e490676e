package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port           string
	AppEnv         string
	DatabaseURL    string
	SQLitePath     string
	AIProvider     string
	GeminiApiKey   string
	GeminiModel    string
	OllamaBaseURL  string
	OllamaModel    string
	InsightsAPIURL string
	InsightWorkers int

	GoalCheckInterval time.Duration
	GoalWarningWindow time.Duration
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	port := getEnv("PORT", "8080")

	workers := 2
	if v := os.Getenv("INSIGHT_WORKERS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			workers = parsed
		}
	}

	return &Config{
		Port:              port,
		AppEnv:            getEnv("APP_ENV", "development"),
		DatabaseURL:       getEnv("DATABASE_URL", ""),
		SQLitePath:        getEnv("SQLITE_PATH", "hypotrophy.db"),
		AIProvider:        getEnv("AI_PROVIDER", "auto"),
		GeminiApiKey:      getEnv("GEMINI_API_KEY", ""),
		GeminiModel:       getEnv("GEMINI_MODEL", "gemini-2.0-flash"),
		OllamaBaseURL:     getEnv("OLLAMA_BASE_URL", ""),
		OllamaModel:       getEnv("OLLAMA_MODEL", ""),
		InsightsAPIURL:    getEnv("INSIGHTS_API_URL", "http://localhost:"+port),
		InsightWorkers:    workers,
		GoalCheckInterval: getDuration("GOAL_CHECK_INTERVAL", time.Hour),
		GoalWarningWindow: getDuration("GOAL_WARNING_WINDOW", 72*time.Hour),
	}
}

// GeminiEnvKeys counts environment variables mentioning GEMINI. Diagnostics only.
func GeminiEnvKeys() int {
	count := 0
	for _, kv := range os.Environ() {
		name, _, _ := strings.Cut(kv, "=")
		if strings.Contains(name, "GEMINI") {
			count++
		}
	}
	return count
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			return parsed
		}
	}
	return defaultValue
}
