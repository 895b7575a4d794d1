package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	Env       string
	Port      int
	APIPrefix string

	CORS     CORSConfig
	Log      LogConfig
	Schedule ScheduleConfig
	Exports  ExportsConfig
	Metrics  MetricsConfig
}

type CORSConfig struct {
	AllowedOrigins []string
}

type LogConfig struct {
	Level  string
	Format string
}

// ScheduleConfig bounds when guidance sessions may be booked and how long
// an idle screen session is kept in memory.
type ScheduleConfig struct {
	WorkingHourStart int
	WorkingHourEnd   int
	SessionIdleTTL   time.Duration
}

// ExportsConfig controls CSV/PDF/ICS downloads.
type ExportsConfig struct {
	Enabled         bool
	SessionDuration time.Duration
	ProductID       string
	EventSummary    string
	DocumentTitle   string
}

// MetricsConfig toggles the Prometheus endpoints.
type MetricsConfig struct {
	Enabled bool
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	cfg := fromViper(v)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func fromViper(v *viper.Viper) *Config {
	cfg := &Config{}

	cfg.Env = v.GetString("ENV")
	cfg.Port = v.GetInt("PORT")
	cfg.APIPrefix = v.GetString("API_PREFIX")

	cfg.CORS = CORSConfig{AllowedOrigins: splitAndTrim(v.GetString("ALLOWED_ORIGINS"))}

	cfg.Log = LogConfig{
		Level:  v.GetString("LOG_LEVEL"),
		Format: v.GetString("LOG_FORMAT"),
	}

	cfg.Schedule = ScheduleConfig{
		WorkingHourStart: v.GetInt("WORKING_HOUR_START"),
		WorkingHourEnd:   v.GetInt("WORKING_HOUR_END"),
		SessionIdleTTL:   parseDuration(v.GetString("SESSION_IDLE_TTL"), 2*time.Hour),
	}

	cfg.Exports = ExportsConfig{
		Enabled:         v.GetBool("ENABLE_EXPORTS"),
		SessionDuration: parseDuration(v.GetString("GUIDANCE_SESSION_DURATION"), time.Hour),
		ProductID:       v.GetString("CALENDAR_PRODUCT_ID"),
		EventSummary:    v.GetString("CALENDAR_EVENT_SUMMARY"),
		DocumentTitle:   v.GetString("EXPORT_DOCUMENT_TITLE"),
	}

	cfg.Metrics = MetricsConfig{
		Enabled: v.GetBool("ENABLE_METRICS"),
	}

	return cfg
}

// Validate rejects settings the schedule rules cannot work with.
func (c *Config) Validate() error {
	s := c.Schedule
	if s.WorkingHourStart < 0 || s.WorkingHourStart > 23 {
		return fmt.Errorf("WORKING_HOUR_START must be within 0-23, got %d", s.WorkingHourStart)
	}
	if s.WorkingHourEnd < 0 || s.WorkingHourEnd > 23 {
		return fmt.Errorf("WORKING_HOUR_END must be within 0-23, got %d", s.WorkingHourEnd)
	}
	if s.WorkingHourStart > s.WorkingHourEnd {
		return fmt.Errorf("WORKING_HOUR_START (%d) is after WORKING_HOUR_END (%d)", s.WorkingHourStart, s.WorkingHourEnd)
	}
	if c.Exports.SessionDuration <= 0 {
		return fmt.Errorf("GUIDANCE_SESSION_DURATION must be positive")
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)
	v.SetDefault("PORT", 8080)
	v.SetDefault("API_PREFIX", "/api/v1")

	v.SetDefault("ALLOWED_ORIGINS", "")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")

	v.SetDefault("WORKING_HOUR_START", 8)
	v.SetDefault("WORKING_HOUR_END", 16)
	v.SetDefault("SESSION_IDLE_TTL", "2h")

	v.SetDefault("ENABLE_EXPORTS", true)
	v.SetDefault("GUIDANCE_SESSION_DURATION", "1h")
	v.SetDefault("CALENDAR_PRODUCT_ID", "-//Teling//Guidance Schedule//EN")
	v.SetDefault("CALENDAR_EVENT_SUMMARY", "Guidance session")
	v.SetDefault("EXPORT_DOCUMENT_TITLE", "Jadwal Bimbingan")

	v.SetDefault("ENABLE_METRICS", true)
}

func parseDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}

	d, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}

	return d
}

func splitAndTrim(raw string) []string {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}

	return result
}
