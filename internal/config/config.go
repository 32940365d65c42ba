package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Config holds all runtime configuration. Values load from YAML, then
// RUNESCORE_* environment variables override individual fields.
type Config struct {
	HTTP        HTTPConfig `yaml:"http"`
	XPTablePath string     `yaml:"xp_table_path" env:"RUNESCORE_XP_TABLE"`
	LogLevel    string     `yaml:"log_level" env:"RUNESCORE_LOG_LEVEL"`
}

// HTTPConfig holds hiscores client settings.
type HTTPConfig struct {
	TimeoutSeconds int    `yaml:"timeout_seconds" env:"RUNESCORE_HTTP_TIMEOUT"`
	UserAgent      string `yaml:"user_agent" env:"RUNESCORE_USER_AGENT"`

	// BaseURL overrides the hiscores service root. Empty means the
	// official endpoint; set it to point the client at a test server.
	BaseURL string `yaml:"base_url" env:"RUNESCORE_BASE_URL"`
}

// Timeout returns the request timeout as a duration.
func (h HTTPConfig) Timeout() time.Duration {
	return time.Duration(h.TimeoutSeconds) * time.Second
}

// Default returns a Config with sensible defaults.
func Default() Config {
	return Config{
		HTTP: HTTPConfig{
			TimeoutSeconds: 5,
			UserAgent:      "runescore/1.0",
		},
		XPTablePath: "data/xp_table.json",
		LogLevel:    "info",
	}
}

// Load reads config from a YAML file and applies environment overrides.
// A missing file is not an error: defaults plus env apply.
func Load(path string) (Config, error) {
	cfg := Default()

	raw, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return cfg, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("applying env overrides: %w", err)
	}

	return cfg, nil
}

// SlogLevel maps the configured log level string onto a slog.Level.
// Unknown values fall back to info.
func (c Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
