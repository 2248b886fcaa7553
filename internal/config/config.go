package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port           string
	DBDSN          string
	LogFile        string
	AdminTokenHash string // bcrypt hash of the admin token; empty disables admin routes

	LightningDelayMax   time.Duration
	LightningInterval   time.Duration
	RecommendedDelayMax time.Duration
	RecommendedInterval time.Duration
}

func Load() Config {
	// Best-effort .env load; real env vars win.
	_ = godotenv.Load()

	cfg := Config{
		Port:                getenv("PORT", "8080"),
		DBDSN:               getenv("DB_DSN", "techmart.db"),
		LogFile:             getenv("LOG_FILE", "./techmart.log"),
		AdminTokenHash:      os.Getenv("ADMIN_TOKEN_HASH"),
		LightningDelayMax:   getdur("LIGHTNING_DELAY_MAX", 10*time.Second),
		LightningInterval:   getdur("LIGHTNING_INTERVAL", 30*time.Second),
		RecommendedDelayMax: getdur("RECO_DELAY_MAX", 20*time.Second),
		RecommendedInterval: getdur("RECO_INTERVAL", 60*time.Second),
	}
	log.Printf("[config] PORT=%s DB_DSN=%s LOG_FILE=%s lightning=%s/%s recommended=%s/%s",
		cfg.Port, cfg.DBDSN, cfg.LogFile,
		cfg.LightningDelayMax, cfg.LightningInterval,
		cfg.RecommendedDelayMax, cfg.RecommendedInterval)
	return cfg
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getdur(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		log.Printf("[config] ignoring invalid %s=%q", key, v)
		return def
	}
	return d
}
