package config

import (
	"os"
	"strconv"
)

type Config struct {
	Port        string
	Environment string
	CORSOrigins string
	// AuthJWKSURL points at the identity provider's JWKS document.
	// Empty disables auth (dev only).
	AuthJWKSURL string
	// SeedFile is an optional YAML file replacing the embedded default seed
	SeedFile string
	// HistoryLimit caps config history length (0 = unbounded)
	HistoryLimit int
	// ActivityLimit caps the activity log length (0 = unbounded)
	ActivityLimit int
	// Logging
	LogDir      string
	LogMaxFiles int
	MetricsPath string
}

func Load() *Config {
	env := getEnv("ENVIRONMENT", "dev")

	return &Config{
		Port:          getEnv("PORT", "8080"),
		Environment:   env,
		CORSOrigins:   getEnv("CORS_ORIGINS", "http://localhost:3000"),
		AuthJWKSURL:   getEnv("AUTH_JWKS_URL", ""),
		SeedFile:      getEnv("SEED_FILE", ""),
		HistoryLimit:  getEnvInt("CONFIG_HISTORY_LIMIT", 0),
		ActivityLimit: getEnvInt("ACTIVITY_LOG_LIMIT", 0),
		LogDir:        getEnv("LOG_DIR", ""),
		LogMaxFiles:   getEnvInt("LOG_MAX_FILES", 10),
		MetricsPath:   getEnv("METRICS_PATH", "/metrics"),
	}
}

// IsProduction reports whether the server runs with production guarantees
func (c *Config) IsProduction() bool {
	return c.Environment == "prod"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt parses an integer env var, falling back to defaultValue when
// unset, malformed or negative
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil || n < 0 {
		return defaultValue
	}
	return n
}
