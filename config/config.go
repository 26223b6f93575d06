package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	RapidAPIKey   string
	RapidAPIHost  string
	SearchBaseURL string
	SearchTimeout time.Duration

	DefaultLocation string
	MaxResults      int
	PriceBackstop   bool

	GeminiAPIKey      string
	GeminiModel       string
	EnrichConcurrency int
	EnrichRateLimitMs int

	LogLevel string
}

// Load reads the .env file and returns a populated Config struct.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("[config] No .env file found, falling back to system env vars")
	}

	return &Config{
		RapidAPIKey:   getEnv("RAPIDAPI_KEY", ""),
		RapidAPIHost:  getEnv("RAPIDAPI_HOST", "zillow-com1.p.rapidapi.com"),
		SearchBaseURL: getEnv("SEARCH_BASE_URL", "https://zillow-com1.p.rapidapi.com"),
		SearchTimeout: time.Duration(getEnvInt("SEARCH_TIMEOUT_SEC", 15)) * time.Second,

		DefaultLocation: getEnv("DEFAULT_LOCATION", "Austin, TX"),
		MaxResults:      getEnvInt("MAX_RESULTS", 3),
		PriceBackstop:   getEnvBool("PRICE_BACKSTOP", true),

		GeminiAPIKey:      getEnv("GEMINI_API_KEY", ""),
		GeminiModel:       getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
		EnrichConcurrency: getEnvInt("ENRICH_CONCURRENCY", 2),
		EnrichRateLimitMs: getEnvInt("ENRICH_RATE_LIMIT_MS", 500),

		LogLevel: getEnv("LOG_LEVEL", "info"),
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		n, err := strconv.Atoi(val)
		if err == nil {
			return n
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if val := os.Getenv(key); val != "" {
		b, err := strconv.ParseBool(strings.TrimSpace(val))
		if err == nil {
			return b
		}
	}
	return fallback
}
