package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	AppMode  string
	Port     string
	Database DatabaseConfig
	Auth     AuthConfig
}

// DatabaseConfig holds database and connection pool configuration
type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string

	MaxIdleConns        int
	MaxOpenConns        int
	ConnMaxLifetimeMins int
}

// AuthConfig holds registration/login configuration
type AuthConfig struct {
	// SecretKey is the server-side salt mixed into every credential digest.
	SecretKey    string
	MaxSessions  int
	SessionHours int
}

// Global config instance
var AppConfig *Config

// Load reads configuration from .env file and environment variables
func Load() (*Config, error) {
	// Load .env file (ignore error if file doesn't exist in production)
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	// Get APP_MODE (default to "dev") - trim spaces for Windows compatibility
	appMode := strings.TrimSpace(getEnv("APP_MODE", "dev"))
	if appMode != "dev" && appMode != "prod" {
		return nil, fmt.Errorf("invalid APP_MODE: '%s' (must be 'dev' or 'prod')", appMode)
	}

	config := &Config{
		AppMode:  appMode,
		Port:     getEnv("PORT", "3000"),
		Database: loadDatabaseConfig(appMode),
		Auth:     loadAuthConfig(appMode),
	}

	// Set global config
	AppConfig = config

	log.Printf("✅ Configuration loaded successfully [MODE: %s]", appMode)
	return config, nil
}

// loadDatabaseConfig loads database config based on mode
func loadDatabaseConfig(mode string) DatabaseConfig {
	prefix := "DEV_"
	if mode == "prod" {
		prefix = "PROD_"
	}

	return DatabaseConfig{
		Host:     getEnv(prefix+"DB_HOST", "localhost"),
		Port:     getEnv(prefix+"DB_PORT", "3306"),
		User:     getEnv(prefix+"DB_USER", "root"),
		Password: getEnv(prefix+"DB_PASS", ""),
		DBName:   getEnv(prefix+"DB_NAME", "user_onboarding"),

		MaxIdleConns:        getEnvInt("DB_MAX_IDLE_CONNS", 10),
		MaxOpenConns:        getEnvInt("DB_MAX_OPEN_CONNS", 100),
		ConnMaxLifetimeMins: getEnvInt("DB_CONN_LIFETIME_MINUTES", 60),
	}
}

// loadAuthConfig loads auth config based on mode
func loadAuthConfig(mode string) AuthConfig {
	prefix := "DEV_"
	if mode == "prod" {
		prefix = "PROD_"
	}

	return AuthConfig{
		SecretKey:    getEnv(prefix+"AUTH_SECRET_KEY", "default_secret"),
		MaxSessions:  getEnvInt("AUTH_MAX_SESSIONS", 3),
		SessionHours: getEnvInt("AUTH_SESSION_HOURS", 24),
	}
}

// getEnv gets environment variable with default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt gets an integer environment variable. A malformed value falls
// back to the default with a warning instead of silently becoming zero.
func getEnvInt(key string, defaultValue int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		log.Printf("⚠️ Invalid %s: '%s' is not a number, using default %d", key, raw, defaultValue)
		return defaultValue
	}
	return value
}

// IsDev returns true if running in development mode
func (c *Config) IsDev() bool {
	return c.AppMode == "dev"
}

// IsProd returns true if running in production mode
func (c *Config) IsProd() bool {
	return c.AppMode == "prod"
}

// GetAllowedOrigins returns allowed origins for CORS
func (c *Config) GetAllowedOrigins() string {
	origins := getEnv("ALLOWED_ORIGINS", "")
	if origins == "" {
		if c.IsDev() {
			return "*"
		}
		// Default production origins
		return "https://app.onboard.example.com"
	}
	return origins
}
