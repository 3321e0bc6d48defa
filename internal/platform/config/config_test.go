package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("HTTP_ADDR", "")
	t.Setenv("CALENDAR_SYNC_INTERVAL", "")
	t.Setenv("TIMEZONE", "")

	cfg := Load()

	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, 5*time.Minute, cfg.CalendarSyncInterval)
	assert.Equal(t, "Africa/Johannesburg", cfg.Timezone)
	assert.NotNil(t, cfg.Location())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("CALENDAR_SYNC_INTERVAL", "2m")
	t.Setenv("SMTP_PORT", "2525")
	t.Setenv("APP_ENV", "development")

	cfg := Load()

	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.Equal(t, 2*time.Minute, cfg.CalendarSyncInterval)
	assert.Equal(t, 2525, cfg.SMTPPort)
	assert.True(t, cfg.Development())
}

func TestLoad_BadValuesFallBack(t *testing.T) {
	t.Setenv("CALENDAR_SYNC_INTERVAL", "soon")
	t.Setenv("SMTP_PORT", "abc")

	cfg := Load()

	assert.Equal(t, 5*time.Minute, cfg.CalendarSyncInterval)
	assert.Equal(t, 587, cfg.SMTPPort)
}
