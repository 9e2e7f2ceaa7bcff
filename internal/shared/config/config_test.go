package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("SESSION_TTL", "")
	t.Setenv("SHEET_BASE_URL", "")
	t.Setenv("DASHBOARD_IDLE_TTL", "")

	cfg := Load()
	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, time.Duration(0), cfg.Session.TTL)
	assert.Equal(t, "https://docs.google.com", cfg.Sheet.BaseURL)
	assert.Equal(t, 12*time.Hour, cfg.Dashboard.IdleTTL)
	assert.False(t, cfg.IsProduction())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("PORT", "8080")
	t.Setenv("SESSION_TTL", "12h")
	t.Setenv("HTTP_CLIENT_TIMEOUT", "15")
	t.Setenv("SHEET_ID", "abc")
	t.Setenv("DASHBOARD_IDLE_TTL", "30m")

	cfg := Load()
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 12*time.Hour, cfg.Session.TTL)
	assert.Equal(t, 15*time.Second, cfg.Sheet.ClientTimeout)
	assert.Equal(t, "abc", cfg.Sheet.SheetID)
	assert.Equal(t, 30*time.Minute, cfg.Dashboard.IdleTTL)
}

func TestGetEnvDuration_Invalid(t *testing.T) {
	t.Setenv("SOME_DURATION", "soon")
	assert.Equal(t, time.Minute, getEnvDuration("SOME_DURATION", time.Minute))
}
