package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config is everything the service reads from the environment at boot.
type Config struct {
	Port           string
	BackendURL     string
	WhatsAppNumber string
	JWTSecret      string
	StoreDriver    string // memory | postgres | redis
	DatabaseURL    string
	RedisAddr      string
}

const (
	defaultPort           = "8080"
	defaultBackendURL     = "http://localhost:5000/api"
	defaultWhatsAppNumber = "+8801323376571"
	defaultStoreDriver    = "memory"
)

// Load reads the environment, applying a .env file outside production and
// failing fast on anything required but missing.
func Load() Config {
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	cfg := Config{
		Port:           envOr("PORT", defaultPort),
		BackendURL:     envOr("BACKEND_URL", defaultBackendURL),
		WhatsAppNumber: envOr("WHATSAPP_NUMBER", defaultWhatsAppNumber),
		JWTSecret:      os.Getenv("JWT_SECRET"),
		StoreDriver:    envOr("STORE_DRIVER", defaultStoreDriver),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		RedisAddr:      os.Getenv("REDIS_ADDR"),
	}

	if cfg.JWTSecret == "" {
		log.Fatal("❌ Missing env var: JWT_SECRET")
	}

	switch cfg.StoreDriver {
	case "memory":
	case "postgres":
		if cfg.DatabaseURL == "" {
			log.Fatal("❌ Missing env var: DATABASE_URL")
		}
	case "redis":
		if cfg.RedisAddr == "" {
			log.Fatal("❌ Missing env var: REDIS_ADDR")
		}
	default:
		log.Fatalf("❌ Unknown STORE_DRIVER: %s", cfg.StoreDriver)
	}

	return cfg
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
