package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, EnvDevelopment, cfg.Env)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "/api/v1", cfg.APIPrefix)
	assert.Equal(t, 8, cfg.Schedule.WorkingHourStart)
	assert.Equal(t, 16, cfg.Schedule.WorkingHourEnd)
	assert.Equal(t, 2*time.Hour, cfg.Schedule.SessionIdleTTL)
	assert.Equal(t, time.Hour, cfg.Exports.SessionDuration)
	assert.True(t, cfg.Exports.Enabled)
	assert.True(t, cfg.Metrics.Enabled)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("WORKING_HOUR_START", "9")
	t.Setenv("WORKING_HOUR_END", "15")
	t.Setenv("SESSION_IDLE_TTL", "15m")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example, https://b.example ,")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, 9, cfg.Schedule.WorkingHourStart)
	assert.Equal(t, 15, cfg.Schedule.WorkingHourEnd)
	assert.Equal(t, 15*time.Minute, cfg.Schedule.SessionIdleTTL)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORS.AllowedOrigins)
}

func TestLoadRejectsInvertedWindow(t *testing.T) {
	t.Setenv("WORKING_HOUR_START", "17")
	t.Setenv("WORKING_HOUR_END", "9")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "WORKING_HOUR_START")
}

func TestValidateHourRange(t *testing.T) {
	cfg := &Config{
		Schedule: ScheduleConfig{WorkingHourStart: 8, WorkingHourEnd: 24},
		Exports:  ExportsConfig{SessionDuration: time.Hour},
	}
	require.Error(t, cfg.Validate())

	cfg.Schedule.WorkingHourEnd = 23
	require.NoError(t, cfg.Validate())
}

func TestParseDurationFallback(t *testing.T) {
	assert.Equal(t, time.Minute, parseDuration("", time.Minute))
	assert.Equal(t, time.Minute, parseDuration("soon", time.Minute))
	assert.Equal(t, 90*time.Second, parseDuration("90s", time.Minute))
}
