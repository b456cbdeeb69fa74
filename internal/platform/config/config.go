package config

import (
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Port         string
	IsProduction bool

	// RedisURL selects the persistence store. Empty means the in-process
	// store, which resets the ledger on every restart.
	RedisURL string

	// DefaultCurrency denominates the seed account created on first run.
	DefaultCurrency string

	CORSAllowedOrigins []string
}

// LoadConfig loads configuration from environment variables, with a .env file
// as an optional lower-precedence source.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("REDIS_URL", "")
	viper.SetDefault("DEFAULT_CURRENCY", "EUR")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.AutomaticEnv()

	cfg := &Config{
		Port:            viper.GetString("PORT"),
		IsProduction:    viper.GetBool("IS_PRODUCTION"),
		RedisURL:        viper.GetString("REDIS_URL"),
		DefaultCurrency: viper.GetString("DEFAULT_CURRENCY"),
	}

	for _, origin := range strings.Split(viper.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	return cfg, nil
}
