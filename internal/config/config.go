package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Store drivers understood by the API.
const (
	DriverMongo    = "mongo"
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

// Config holds the application configuration
type Config struct {
	Port string

	// Store configuration
	StoreDriver   string
	MongoURI      string
	MongoDatabase string
	PostgresDSN   string
	StoreTimeout  time.Duration

	// HTTP configuration
	AllowedOrigins []string
	RateLimitRPS   float64
	RateLimitBurst int
	MaxBodyBytes   int64

	LogLevel  string
	LogFormat string

	// DocsSnapshotPath, when set, receives the OpenAPI document at boot.
	DocsSnapshotPath string
}

// LoadEnvFiles loads .env and .env.local if present. Variables already set in
// the process environment win over both files.
func LoadEnvFiles() {
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, error) {
	config := &Config{
		Port:             getEnv("PORT", "3000"),
		StoreDriver:      strings.ToLower(getEnv("STORE_DRIVER", DriverMongo)),
		MongoURI:         os.Getenv("MONGO_URI"),
		MongoDatabase:    getEnv("MONGO_DATABASE", "readinglog"),
		PostgresDSN:      os.Getenv("DB_DSN"),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		LogFormat:        getEnv("LOG_FORMAT", "json"),
		DocsSnapshotPath: os.Getenv("DOCS_SNAPSHOT_PATH"),
		MaxBodyBytes:     1 << 20,
	}

	if _, err := strconv.ParseUint(config.Port, 10, 16); err != nil {
		return nil, fmt.Errorf("invalid PORT %q: %w", config.Port, err)
	}

	switch config.StoreDriver {
	case DriverMongo:
		if config.MongoURI == "" {
			return nil, fmt.Errorf("MONGO_URI is required when STORE_DRIVER is %s", DriverMongo)
		}
	case DriverPostgres:
		if config.PostgresDSN == "" {
			return nil, fmt.Errorf("DB_DSN is required when STORE_DRIVER is %s", DriverPostgres)
		}
	case DriverMemory:
	default:
		return nil, fmt.Errorf("unknown STORE_DRIVER %q (use %s, %s or %s)",
			config.StoreDriver, DriverMongo, DriverPostgres, DriverMemory)
	}

	timeout, err := time.ParseDuration(getEnv("STORE_TIMEOUT", "5s"))
	if err != nil || timeout <= 0 {
		return nil, fmt.Errorf("invalid STORE_TIMEOUT: must be a positive duration")
	}
	config.StoreTimeout = timeout

	for _, origin := range strings.Split(getEnv("CORS_ALLOWED_ORIGINS", "*"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			config.AllowedOrigins = append(config.AllowedOrigins, origin)
		}
	}

	// Rate limiting is off unless RATE_LIMIT_RPS is positive.
	if rps := os.Getenv("RATE_LIMIT_RPS"); rps != "" {
		v, err := strconv.ParseFloat(rps, 64)
		if err != nil || v < 0 {
			return nil, fmt.Errorf("invalid RATE_LIMIT_RPS %q", rps)
		}
		config.RateLimitRPS = v
	}
	burst, err := strconv.Atoi(getEnv("RATE_LIMIT_BURST", "20"))
	if err != nil || burst < 1 {
		return nil, fmt.Errorf("invalid RATE_LIMIT_BURST: must be a positive integer")
	}
	config.RateLimitBurst = burst

	return config, nil
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return ":" + c.Port
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// RedactDSN hides the credentials of a connection string for logging.
func RedactDSN(dsn string) string {
	const marker = "://"
	start := strings.Index(dsn, marker)
	if start < 0 {
		return dsn
	}
	start += len(marker)
	end := strings.LastIndex(dsn[start:], "@")
	if end < 0 {
		return dsn
	}
	return dsn[:start] + "***" + dsn[start+end:]
}
