package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	CORS     CORSConfig
	Feed     FeedConfig
	Security SecurityConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port string
	Host string
	Addr string // Combined host:port for convenience
}

// DatabaseConfig holds database-specific configuration
type DatabaseConfig struct {
	Path string
}

// CORSConfig holds CORS-specific configuration
type CORSConfig struct {
	AllowedOrigins []string
}

// FeedConfig holds the external quote and exchange-rate feed endpoints.
type FeedConfig struct {
	QuoteBaseURL string
	RateBaseURL  string
	// RefreshSchedule is a cron expression for the scheduled rate refresh.
	RefreshSchedule string
}

// SecurityConfig holds secret-handling configuration. FernetKey encrypts the
// feed API key at rest; when empty, the key is stored in plain text.
type SecurityConfig struct {
	FernetKey string
}

// Load reads configuration from environment variables and .env file
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	_ = godotenv.Load()

	config := &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "5001"),
			Host: getEnv("SERVER_HOST", "localhost"),
		},
		Database: DatabaseConfig{
			Path: getEnv("DB_PATH", "./data/wealth_dashboard.db"),
		},
		CORS: CORSConfig{
			AllowedOrigins: []string{
				"http://localhost:3000",
				"http://localhost",
			},
		},
		Feed: FeedConfig{
			QuoteBaseURL:    getEnv("QUOTE_FEED_URL", "https://query1.finance.yahoo.com"),
			RateBaseURL:     getEnv("RATE_FEED_URL", "https://open.er-api.com/v6"),
			RefreshSchedule: getEnv("RATE_REFRESH_SCHEDULE", "0 6 * * *"),
		},
		Security: SecurityConfig{
			FernetKey: getEnv("FERNET_KEY", ""),
		},
	}

	// Combine host and port
	config.Server.Addr = fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port)

	return config, nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
