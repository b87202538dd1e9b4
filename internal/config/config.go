// README: Config loader with env defaults for HTTP, DB, Redis and quote settings.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

type QuoteConfig struct {
	TTL time.Duration
}

type Config struct {
	HTTP struct {
		Addr    string
		GinMode string
	}
	DB struct {
		// DSN is optional; quote history is disabled without it.
		DSN string
	}
	Redis struct {
		// Addr is optional; quote lookup by ID is disabled without it.
		Addr string
	}
	Quote QuoteConfig
}

func Load() (Config, error) {
	var cfg Config
	cfg.HTTP.Addr = envOrDefault("SHIPCOST_HTTP_ADDR", ":8080")
	cfg.HTTP.GinMode = envOrDefault("SHIPCOST_GIN_MODE", gin.ReleaseMode)
	switch cfg.HTTP.GinMode {
	case gin.DebugMode, gin.ReleaseMode, gin.TestMode:
	default:
		return Config{}, fmt.Errorf("SHIPCOST_GIN_MODE %q: want %s, %s or %s",
			cfg.HTTP.GinMode, gin.DebugMode, gin.ReleaseMode, gin.TestMode)
	}
	cfg.DB.DSN = os.Getenv("SHIPCOST_DB_DSN")
	cfg.Redis.Addr = os.Getenv("SHIPCOST_REDIS_ADDR")
	cfg.Quote.TTL = time.Duration(envOrDefaultInt("SHIPCOST_QUOTE_TTL_MINUTES", 30)) * time.Minute
	return cfg, nil
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envOrDefaultInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return def
}
