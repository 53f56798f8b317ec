package config

import (
	"os"

	"github.com/gofiber/fiber/v2/log"
	"github.com/joho/godotenv"
)

const defaultDSN = "host=localhost user=postgres password=postgres dbname=multibranch port=5432 sslmode=disable"

type Config struct {
	HTTPPort      string
	StorageDriver string // postgres | sqlite | memory
	DatabaseDSN   string
	SQLitePath    string
	JWTSecret     string
	CORSOrigins   string
	LogLevel      string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Info("No .env file found, using process environment")
	}

	cfg := &Config{
		HTTPPort:      getEnv("HTTP_PORT", "8080"),
		StorageDriver: getEnv("STORAGE_DRIVER", "postgres"),
		DatabaseDSN:   getEnv("DATABASE_DSN", defaultDSN),
		SQLitePath:    getEnv("SQLITE_PATH", "multibranch.db"),
		JWTSecret:     getEnv("JWT_SECRET", ""),
		CORSOrigins:   getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
	}

	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET is not set")
	}
	if len(cfg.JWTSecret) < 32 {
		log.Fatal("JWT_SECRET must be at least 32 characters")
	}
	if cfg.StorageDriver == "postgres" && cfg.DatabaseDSN == defaultDSN {
		log.Warn("DATABASE_DSN is using the default value, set your own Postgres connection for production")
	}
	if cfg.CORSOrigins == "http://localhost:5173" {
		log.Warn("CORS_ALLOWED_ORIGINS is using the default value, set your own domain for production")
	}

	return cfg
}

// Level maps LOG_LEVEL onto fiber's logger levels. Unknown values mean info.
func (c *Config) Level() log.Level {
	switch c.LogLevel {
	case "debug":
		return log.LevelDebug
	case "warn":
		return log.LevelWarn
	case "error":
		return log.LevelError
	default:
		return log.LevelInfo
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
