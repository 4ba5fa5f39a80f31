package config

import (
	"os"      // For environment variables
	"strconv" // For string to int conversion
	"time"    // For durations

	"github.com/joho/godotenv" // For loading .env files

	"debt_tracker/internal/domain"
)

// Config holds the application configuration. Everything the services need,
// including the signing secret and the fallback rate table, is injected from
// here rather than read from package-level state.
type Config struct {
	AppPort      string          // Application port
	DBUser       string          // Database user
	DBPassword   string          // Database password
	DBHost       string          // Database host
	DBPort       string          // Database port
	DBName       string          // Database name
	JWTSecret    string          // JWT signing secret
	TokenTTL     time.Duration   // Access token validity window
	RedisAddr    string          // Redis server address
	RedisPass    string          // Redis password
	RedisDB      int             // Redis database number
	RateAPIURL   string          // Exchange rate API base URL
	RateTimeout  time.Duration   // Upper bound on a single rate fetch
	RateCacheTTL time.Duration   // How long a fetched rate table may be reused
	BaseCurrency domain.Currency // Currency all amounts are normalized into
	IsProd       bool            // Is production environment
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	_ = godotenv.Load() // Load .env file if present
	redisDB, _ := strconv.Atoi(os.Getenv("REDIS_DB"))
	return &Config{
		AppPort:      getEnv("APP_PORT", "8080"),
		DBUser:       os.Getenv("DB_USER"),
		DBPassword:   os.Getenv("DB_PASSWORD"),
		DBHost:       os.Getenv("DB_HOST"),
		DBPort:       os.Getenv("DB_PORT"),
		DBName:       os.Getenv("DB_NAME"),
		JWTSecret:    os.Getenv("JWT_SECRET"),
		TokenTTL:     minutesEnv("TOKEN_TTL_MINUTES", 30),
		RedisAddr:    os.Getenv("REDIS_ADDR"),
		RedisPass:    os.Getenv("REDIS_PASS"),
		RedisDB:      redisDB,
		RateAPIURL:   getEnv("RATE_API_URL", "https://api.exchangerate-api.com/v4"),
		RateTimeout:  secondsEnv("RATE_TIMEOUT_SECONDS", 5),
		RateCacheTTL: secondsEnv("RATE_CACHE_TTL_SECONDS", 60),
		BaseCurrency: baseCurrencyEnv(),
		IsProd:       os.Getenv("IS_PROD") == "true",
	}
}

// DSN builds the MySQL data source name from the database settings
func (c *Config) DSN() string {
	return c.DBUser + ":" + c.DBPassword + "@tcp(" + c.DBHost + ":" + c.DBPort + ")/" + c.DBName + "?parseTime=true"
}

// getEnv returns the value of key, or fallback when unset
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// minutesEnv reads an integer env var as a duration in minutes
func minutesEnv(key string, fallback int) time.Duration {
	if v, err := strconv.Atoi(os.Getenv(key)); err == nil && v > 0 {
		return time.Duration(v) * time.Minute
	}
	return time.Duration(fallback) * time.Minute
}

// secondsEnv reads an integer env var as a duration in seconds
func secondsEnv(key string, fallback int) time.Duration {
	if v, err := strconv.Atoi(os.Getenv(key)); err == nil && v > 0 {
		return time.Duration(v) * time.Second
	}
	return time.Duration(fallback) * time.Second
}

// baseCurrencyEnv reads the base currency, defaulting to TRY
func baseCurrencyEnv() domain.Currency {
	if c := domain.Currency(os.Getenv("BASE_CURRENCY")); c.Valid() {
		return c
	}
	return domain.CurrencyTRY
}
