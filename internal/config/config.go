package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

// Config holds application configuration
type Config struct {
	// Server
	Port string
	Env  string

	// Database
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Snapshot trigger
	CronSecret       string
	SnapshotCron     string
	SnapshotTimezone *time.Location

	// Collaborators
	RequestTimeout     time.Duration
	FXFallbackRate     decimal.Decimal
	FXCacheTTL         time.Duration
	FXCurrentProvider  string
	FrankfurterBaseURL string
	YahooChartBaseURL  string

	// Valuation and history
	ValuationConcurrency int
	HistoryDays          int
	MonthlyHistoryMonths int
}

var appConfig *Config

// Load loads configuration from environment variables
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	config := &Config{
		// Server
		Port: getEnv("PORT", "8080"),
		Env:  getEnv("ENV", "development"),

		// Database
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "wealthtrack"),
		DBPassword: getEnv("DB_PASSWORD", "wealthtrack"),
		DBName:     getEnv("DB_NAME", "wealthtrack"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		// Snapshot trigger
		CronSecret:   os.Getenv("CRON_SECRET"),
		SnapshotCron: os.Getenv("SNAPSHOT_CRON"),

		// Collaborators
		FXCurrentProvider:  strings.ToLower(getEnv("FX_CURRENT_PROVIDER", "yahoo")),
		FrankfurterBaseURL: getEnv("FRANKFURTER_BASE_URL", "https://api.frankfurter.app"),
		YahooChartBaseURL:  getEnv("YAHOO_CHART_BASE_URL", "https://query1.finance.yahoo.com/v8/finance/chart"),
	}

	config.RequestTimeout = parseDuration("REQUEST_TIMEOUT", 10*time.Second)
	config.FXCacheTTL = parseDuration("FX_CACHE_TTL", time.Hour)
	config.FXFallbackRate = parseDecimal("FX_FALLBACK_RATE", decimal.RequireFromString("0.92"))
	config.ValuationConcurrency = parseInt("VALUATION_CONCURRENCY", 8)
	config.HistoryDays = parseInt("HISTORY_DAYS", 30)
	config.MonthlyHistoryMonths = parseInt("MONTHLY_HISTORY_MONTHS", 12)

	tzName := getEnv("SNAPSHOT_TIMEZONE", "UTC")
	loc, err := time.LoadLocation(tzName)
	if err != nil {
		log.Printf("Warning: invalid SNAPSHOT_TIMEZONE value '%s', falling back to UTC\n", tzName)
		loc = time.UTC
	}
	config.SnapshotTimezone = loc

	appConfig = config
	return config, nil
}

// Get returns the application configuration
func Get() *Config {
	if appConfig == nil {
		var err error
		appConfig, err = Load()
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}
	}
	return appConfig
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseDuration(key string, defaultValue time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		log.Printf("Warning: invalid %s value '%s', falling back to %s\n", key, raw, defaultValue)
		return defaultValue
	}
	return d
}

func parseInt(key string, defaultValue int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		log.Printf("Warning: invalid %s value '%s', falling back to %d\n", key, raw, defaultValue)
		return defaultValue
	}
	return n
}

func parseDecimal(key string, defaultValue decimal.Decimal) decimal.Decimal {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	d, err := decimal.NewFromString(raw)
	if err != nil || !d.IsPositive() {
		log.Printf("Warning: invalid %s value '%s', falling back to %s\n", key, raw, defaultValue)
		return defaultValue
	}
	return d
}
