package cliparse

import (
	"errors"
	"flag"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port         int
	DatabaseType string // "memory", "sqlite", or "postgres"
	DatabaseURL  string
	BaseURL      string // base for join URLs handed to clients

	CleanupIntervalMinutes int
	SessionMaxAgeHours     int
}

// ParseFlags validates flags, falling back to environment variables
// (including a local .env file) and then defaults.
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	// Load .env if present (non-fatal if missing)
	_ = godotenv.Load()

	fs := flag.NewFlagSet("scrumdeck", flag.ContinueOnError)

	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Store backend (memory, sqlite or postgres)")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL (sqlite path or postgres URL)")
	fs.StringVar(&cfg.BaseURL, "b", "", "Public base URL for join links")
	fs.IntVar(&cfg.CleanupIntervalMinutes, "cleanup-interval", 0, "Minutes between idle-session sweeps")
	fs.IntVar(&cfg.SessionMaxAgeHours, "session-max-age", 0, "Hours before an idle session is deleted")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 3000 // default
		}
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = "memory"
		}
	}
	switch cfg.DatabaseType {
	case "memory", "sqlite", "postgres":
	default:
		return Config{}, errors.New("database type must be memory, sqlite or postgres")
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" && cfg.DatabaseType != "memory" {
		return Config{}, errors.New("database URL required for " + cfg.DatabaseType + " (use -d or DATABASE_URL env)")
	}

	if cfg.BaseURL == "" {
		cfg.BaseURL = os.Getenv("BASE_URL")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:" + strconv.Itoa(cfg.Port)
	}

	if cfg.CleanupIntervalMinutes == 0 {
		cfg.CleanupIntervalMinutes = envInt("CLEANUP_INTERVAL_MINUTES", 60)
	}
	if cfg.SessionMaxAgeHours == 0 {
		cfg.SessionMaxAgeHours = envInt("SESSION_MAX_AGE_HOURS", 24)
	}

	return cfg, nil
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}
