package config

import (
	"errors"
	"log"
	"log/slog"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	defaultPort           = "8080"
	defaultMigrationsPath = "file://migrations"
	defaultRateLimit      = "100-M"
	defaultFetchTimeout   = 10 * time.Second
)

// Config holds application configuration.
type Config struct {
	DatabaseURL    string
	Port           string
	IsProduction   bool
	EnableDBCheck  bool
	RunMigrations  bool
	MigrationsPath string

	AuthEnabled bool
	JWTSecret   string

	// RateLimit is a ulule formatted rate, e.g. "100-M" for 100 requests per minute.
	RateLimit          string
	CORSAllowedOrigins []string

	// FetchTimeout bounds each call to the journal and account stores.
	FetchTimeout time.Duration
	LogLevel     slog.Level
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("PORT", defaultPort)
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("ENABLE_DB_CHECK", false)
	v.SetDefault("RUN_MIGRATIONS", true)
	v.SetDefault("MIGRATIONS_PATH", defaultMigrationsPath)
	v.SetDefault("AUTH_ENABLED", false)
	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("RATE_LIMIT", defaultRateLimit)
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("FETCH_TIMEOUT", defaultFetchTimeout.String())
	v.SetDefault("LOG_LEVEL", "info")
	v.AutomaticEnv()

	cfg := &Config{
		DatabaseURL:    v.GetString("PGSQL_URL"),
		Port:           v.GetString("PORT"),
		IsProduction:   v.GetBool("IS_PRODUCTION"),
		EnableDBCheck:  v.GetBool("ENABLE_DB_CHECK"),
		RunMigrations:  v.GetBool("RUN_MIGRATIONS"),
		MigrationsPath: v.GetString("MIGRATIONS_PATH"),
		AuthEnabled:    v.GetBool("AUTH_ENABLED"),
		JWTSecret:      v.GetString("JWT_SECRET"),
		RateLimit:      v.GetString("RATE_LIMIT"),
	}

	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	if cfg.Port == "" {
		cfg.Port = defaultPort
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	if cfg.MigrationsPath == "" {
		cfg.MigrationsPath = defaultMigrationsPath
	}

	if cfg.RateLimit == "" {
		cfg.RateLimit = defaultRateLimit
	}

	if cfg.AuthEnabled && cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET must be set when AUTH_ENABLED is true")
	}

	// Load fetch timeout (e.g., "5s", "1m")
	fetchTimeoutStr := v.GetString("FETCH_TIMEOUT")
	fetchTimeout, err := time.ParseDuration(fetchTimeoutStr)
	if err != nil || fetchTimeout <= 0 {
		fetchTimeout = defaultFetchTimeout
		log.Printf("Warning: Invalid value for FETCH_TIMEOUT ('%s'). Defaulting to %s.\n", fetchTimeoutStr, fetchTimeout.String())
	}
	cfg.FetchTimeout = fetchTimeout

	levelStr := v.GetString("LOG_LEVEL")
	if err := cfg.LogLevel.UnmarshalText([]byte(levelStr)); err != nil {
		cfg.LogLevel = slog.LevelInfo
		log.Printf("Warning: Invalid value for LOG_LEVEL ('%s'). Defaulting to info.\n", levelStr)
	}

	cfg.CORSAllowedOrigins = splitList(v.GetString("CORS_ALLOWED_ORIGINS"))
	if len(cfg.CORSAllowedOrigins) == 0 {
		cfg.CORSAllowedOrigins = []string{"*"}
	}

	return cfg, nil
}

// AllowAllOrigins reports whether CORS is open to every origin.
func (c *Config) AllowAllOrigins() bool {
	for _, o := range c.CORSAllowedOrigins {
		if o == "*" {
			return true
		}
	}
	return false
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
