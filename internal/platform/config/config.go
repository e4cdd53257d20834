package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Port           string
	IsProduction   bool
	DatabaseURL    string
	EnableDBCheck  bool
	RunMigrations  bool
	MigrationsPath string

	// JWTSecret verifies tokens minted by the authentication provider.
	JWTSecret string

	// Remote rate services
	LatestRatesURL  string
	HistoryRatesURL string
	RateAPITimeout  time.Duration

	// Fallback rate slot. Empty RedisAddr keeps the slot in process memory.
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	BackgroundWriteTimeout time.Duration
	HistoryMaxRangeDays    int
	RateLimit              string
	CORSAllowedOrigins     []string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("RUN_MIGRATIONS", true)
	viper.SetDefault("MIGRATIONS_PATH", "file://migrations")
	viper.SetDefault("JWT_SECRET", "")
	viper.SetDefault("LATEST_RATES_URL", "https://open.er-api.com/v6/latest")
	viper.SetDefault("HISTORY_RATES_URL", "https://api.frankfurter.app")
	viper.SetDefault("RATE_API_TIMEOUT", "5s")
	viper.SetDefault("REDIS_ADDR", "")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("BACKGROUND_WRITE_TIMEOUT", "10s")
	viper.SetDefault("HISTORY_MAX_RANGE_DAYS", 366)
	viper.SetDefault("RATE_LIMIT", "120-M")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:19006")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = "a-very-secret-key-should-be-longer-and-random" // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	cfg.RateAPITimeout = durationOrDefault("RATE_API_TIMEOUT", 5*time.Second)
	cfg.BackgroundWriteTimeout = durationOrDefault("BACKGROUND_WRITE_TIMEOUT", 10*time.Second)

	cfg.HistoryMaxRangeDays = viper.GetInt("HISTORY_MAX_RANGE_DAYS")
	if cfg.HistoryMaxRangeDays <= 0 {
		cfg.HistoryMaxRangeDays = 366
		log.Printf("Warning: Invalid HISTORY_MAX_RANGE_DAYS. Defaulting to %d.\n", cfg.HistoryMaxRangeDays)
	}

	for _, origin := range strings.Split(viper.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")
	cfg.RunMigrations = viper.GetBool("RUN_MIGRATIONS")
	cfg.MigrationsPath = viper.GetString("MIGRATIONS_PATH")
	cfg.LatestRatesURL = strings.TrimRight(viper.GetString("LATEST_RATES_URL"), "/")
	cfg.HistoryRatesURL = strings.TrimRight(viper.GetString("HISTORY_RATES_URL"), "/")
	cfg.RedisAddr = viper.GetString("REDIS_ADDR")
	cfg.RedisPassword = viper.GetString("REDIS_PASSWORD")
	cfg.RedisDB = viper.GetInt("REDIS_DB")
	cfg.RateLimit = viper.GetString("RATE_LIMIT")

	return cfg, nil
}

// durationOrDefault parses a duration setting (e.g. "5s"), falling back to def.
func durationOrDefault(key string, def time.Duration) time.Duration {
	raw := viper.GetString(key)
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		if raw != "" {
			log.Printf("Warning: Invalid value for %s ('%s'). Defaulting to %s.\n", key, raw, def.String())
		}
		return def
	}
	return d
}
