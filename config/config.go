package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port        string
	Timezone    string
	DBPath      string
	DatabaseURL string
	JWTSecret   string
}

func Load() AppConfig {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Printf("[cfg] No .env file found or error loading: %v", err)
	}

	get := func(k, def string) string {
		if v := os.Getenv(k); v != "" {
			return v
		}
		return def
	}
	cfg := AppConfig{
		Port:        get("PORT", "8080"),
		Timezone:    get("TZ", "America/Bogota"),
		DBPath:      get("DB_PATH", "tumina.db"),
		DatabaseURL: get("DATABASE_URL", ""),
		JWTSecret:   get("JWT_SECRET", "dev-secret"),
	}
	log.Printf("[cfg] port=%s db=%s postgres=%v", cfg.Port, cfg.DBPath, cfg.DatabaseURL != "")
	return cfg
}
