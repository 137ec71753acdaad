package config

import (
	"log/slog"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	defaultPort           = "8080"
	defaultJWTSecret      = "a-very-secret-key-should-be-longer-and-random"
	defaultRateLimit      = "100-M"
	defaultMigrationsPath = "file://migrations"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL     string `mapstructure:"PGSQL_URL"`
	Port            string `mapstructure:"PORT"`
	IsProduction    bool   `mapstructure:"IS_PRODUCTION"`
	EnableDBCheck   bool   `mapstructure:"ENABLE_DB_CHECK"`
	JWTSecret       string `mapstructure:"JWT_SECRET"`
	FrontendBaseURL string `mapstructure:"FRONTEND_BASE_URL"`

	// RateLimit uses the limiter's formatted rate, e.g. "100-M" or "10-S".
	RateLimit string `mapstructure:"RATE_LIMIT"`
	// RedisURL selects a shared limiter store. Empty keeps counters in memory.
	RedisURL string `mapstructure:"REDIS_URL"`

	MigrationsPath string `mapstructure:"MIGRATIONS_PATH"`
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()
	return load(viper.New())
}

func load(v *viper.Viper) (*Config, error) {
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("PORT", defaultPort)
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("ENABLE_DB_CHECK", false)
	v.SetDefault("JWT_SECRET", defaultJWTSecret)
	v.SetDefault("FRONTEND_BASE_URL", "http://localhost:3000")
	v.SetDefault("RATE_LIMIT", defaultRateLimit)
	v.SetDefault("REDIS_URL", "")
	v.SetDefault("MIGRATIONS_PATH", defaultMigrationsPath)

	// Actual environment variables override .env values and defaults.
	v.AutomaticEnv()

	cfg := &Config{
		DatabaseURL:     v.GetString("PGSQL_URL"),
		Port:            v.GetString("PORT"),
		IsProduction:    v.GetBool("IS_PRODUCTION"),
		EnableDBCheck:   v.GetBool("ENABLE_DB_CHECK"),
		JWTSecret:       v.GetString("JWT_SECRET"),
		FrontendBaseURL: v.GetString("FRONTEND_BASE_URL"),
		RateLimit:       strings.TrimSpace(v.GetString("RATE_LIMIT")),
		RedisURL:        strings.TrimSpace(v.GetString("REDIS_URL")),
		MigrationsPath:  v.GetString("MIGRATIONS_PATH"),
	}

	if cfg.DatabaseURL == "" {
		slog.Warn("PGSQL_URL environment variable not set.")
	}
	if cfg.Port == "" {
		cfg.Port = defaultPort
		slog.Warn("PORT not set, using default", slog.String("port", cfg.Port))
	}
	if cfg.JWTSecret == "" || cfg.JWTSecret == defaultJWTSecret {
		cfg.JWTSecret = defaultJWTSecret // !! CHANGE IN PRODUCTION !!
		slog.Warn("JWT_SECRET not set. Using default insecure key.")
	}
	if cfg.RateLimit == "" {
		cfg.RateLimit = defaultRateLimit
	}
	if cfg.MigrationsPath == "" {
		cfg.MigrationsPath = defaultMigrationsPath
	} else if !strings.Contains(cfg.MigrationsPath, "://") {
		cfg.MigrationsPath = "file://" + cfg.MigrationsPath
	}

	return cfg, nil
}
