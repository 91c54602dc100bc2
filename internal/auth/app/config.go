package app

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Issuer    string // Optional: issuer claim for tokens (default: scanpass)
	JWTSecret string // Required: HMAC secret for session and reset tokens

	HashCost     int    // Optional: bcrypt cost for password hashing (default: 10)
	DatabaseFile string // Optional: path to SQLite database file (default: ./scanpass.db)
	FrontendURL  string // Optional: base URL used to build reset links (default: http://localhost:5173)

	SMTPHost     string // Optional: SMTP relay for reset emails (mail disabled when empty)
	SMTPPort     int    // Optional: SMTP port (default: 587)
	SMTPUsername string
	SMTPPassword string
	SMTPFrom     string // Optional: From address (default: no-reply@scanpass.local)
	SMTPTLS      bool   // Optional: require TLS on the SMTP connection (default: true)

	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 8080)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
}

func LoadConfig() Config {
	// A missing .env file is fine, the process environment still applies.
	_ = godotenv.Load()

	return Config{
		Issuer:    getEnvOrDefault("AUTH_ISSUER", "scanpass"),
		JWTSecret: os.Getenv("JWT_SECRET"),

		HashCost:     getEnvIntOrDefault("AUTH_HASH_COST", 10),
		DatabaseFile: getEnvOrDefault("AUTH_DATABASE_FILE", "scanpass.db"),
		FrontendURL:  getEnvOrDefault("FRONTEND_URL", "http://localhost:5173"),

		SMTPHost:     os.Getenv("SMTP_HOST"),
		SMTPPort:     getEnvIntOrDefault("SMTP_PORT", 587),
		SMTPUsername: os.Getenv("SMTP_USERNAME"),
		SMTPPassword: os.Getenv("SMTP_PASSWORD"),
		SMTPFrom:     getEnvOrDefault("SMTP_FROM", "no-reply@scanpass.local"),
		SMTPTLS:      getEnvBoolOrDefault("SMTP_TLS", true),

		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if boolValue, err := strconv.ParseBool(value); err == nil {
		return boolValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Try parsing as duration (e.g., "1h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Try parsing as integer seconds
	if seconds, err := strconv.Atoi(value); err == nil {
		return time.Duration(seconds) * time.Second
	}

	return defaultValue
}
