package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Env                     string
	Port                    string
	DatabaseURL             string
	JWTSecret               string
	JWTIssuer               string
	JWTAudience             string
	AccessExpiryMin         int
	LongAccessExpiryMin     int
	RefreshExpiryDays       int
	IdempotencyRetentionHrs int
	CORSOrigins             string
	RateLimitMax            int
	RateLimitWindowMin      int
}

func Load() *Config {
	// Missing .env is fine; production supplies real environment variables.
	_ = godotenv.Load()

	return &Config{
		Env:                     getEnv("ENV", "development"),
		Port:                    getEnv("PORT", "3000"),
		DatabaseURL:             mustGetEnv("DATABASE_URL"),
		JWTSecret:               mustGetEnv("JWT_SECRET"),
		JWTIssuer:               getEnv("JWT_ISSUER", "tally-api"),
		JWTAudience:             getEnv("JWT_AUDIENCE", "tally-client"),
		AccessExpiryMin:         getEnvAsInt("ACCESS_TOKEN_EXPIRY_MIN", 15),
		LongAccessExpiryMin:     getEnvAsInt("LONG_ACCESS_TOKEN_EXPIRY_MIN", 1440),
		RefreshExpiryDays:       getEnvAsInt("REFRESH_TOKEN_EXPIRY_DAYS", 30),
		IdempotencyRetentionHrs: getEnvAsInt("IDEMPOTENCY_RETENTION_HOURS", 24),
		CORSOrigins:             getEnv("CORS_ORIGINS", "http://localhost:5173"),
		RateLimitMax:            getEnvAsInt("RATE_LIMIT_MAX", 1500),
		RateLimitWindowMin:      getEnvAsInt("RATE_LIMIT_WINDOW_MIN", 15),
	}
}

// IsProduction controls the cookie security profile: Secure + SameSite=None
// in production (the web client is served from another origin), Lax otherwise.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func (c *Config) CookieSameSite() string {
	if c.IsProduction() {
		return "None"
	}
	return "Lax"
}

func getEnv(key string, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func mustGetEnv(key string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	log.Fatalf("Missing required environment variable: %s", key)
	return ""
}

func getEnvAsInt(key string, defaultVal int) int {
	valStr := os.Getenv(key)
	if valStr == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		log.Printf("Invalid value for %s, using default %d", key, defaultVal)
		return defaultVal
	}
	return val
}
