package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config carries every knob the server needs. Loaded once in main and
// passed down explicitly; nothing in this package is a global.
type Config struct {
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string
	DBTimezone string

	JWTSecret string
	TokenTTL  time.Duration

	// Optional bootstrap admin; skipped when either value is empty.
	AdminEmail    string
	AdminPassword string

	ListenAddr string
	LogFile    string
}

// Load reads .env (if present) and the environment, applying defaults.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found – relying on env vars")
	}

	return Config{
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", "password"),
		DBName:     getEnv("DB_NAME", "bus_depot"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),
		DBTimezone: getEnv("DB_TIMEZONE", "UTC"),

		JWTSecret: getEnv("JWT_SECRET", "supersecret"),
		TokenTTL:  getDurationEnv("TOKEN_TTL", 72*time.Hour),

		AdminEmail:    os.Getenv("ADMIN_EMAIL"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),

		ListenAddr: getEnv("LISTEN_ADDR", "0.0.0.0:8080"),
		LogFile:    getEnv("LOG_FILE", "./logs/app.log"),
	}
}

// getEnv reads an environment variable or returns the provided default
func getEnv(key, defaultValue string) string {
	if v, exists := os.LookupEnv(key); exists {
		return v
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	v, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Printf("invalid %s=%q, using default %s", key, v, defaultValue)
		return defaultValue
	}
	return d
}
