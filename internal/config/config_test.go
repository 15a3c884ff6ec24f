package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "ENVIRONMENT", "AUTH_JWKS_URL", "CONFIG_HISTORY_LIMIT", "LOG_MAX_FILES", "METRICS_PATH"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "dev", cfg.Environment)
	assert.Empty(t, cfg.AuthJWKSURL)
	assert.Equal(t, 0, cfg.HistoryLimit)
	assert.Equal(t, 10, cfg.LogMaxFiles)
	assert.Equal(t, "/metrics", cfg.MetricsPath)
	assert.False(t, cfg.IsProduction())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("ENVIRONMENT", "prod")
	t.Setenv("CONFIG_HISTORY_LIMIT", "25")
	t.Setenv("ACTIVITY_LOG_LIMIT", "100")

	cfg := Load()

	assert.Equal(t, "9090", cfg.Port)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, 25, cfg.HistoryLimit)
	assert.Equal(t, 100, cfg.ActivityLimit)
}

func TestGetEnvInt(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  int
	}{
		{name: "unset", value: "", want: 7},
		{name: "valid", value: "3", want: 3},
		{name: "malformed", value: "abc", want: 7},
		{name: "negative", value: "-1", want: 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("CONFIGHUB_TEST_INT", tt.value)
			assert.Equal(t, tt.want, getEnvInt("CONFIGHUB_TEST_INT", 7))
		})
	}
}
