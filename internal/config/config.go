package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/PoluyanbIch/cmdbot/internal/logging"
)

type Config struct {
	BotToken    string `env:"BOT_TOKEN"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"INFO"`
	LogFormat   string `env:"LOG_FORMAT" envDefault:"json"`
	PollTimeout int    `env:"POLL_TIMEOUT" envDefault:"60"`
	BotDebug    bool   `env:"BOT_DEBUG" envDefault:"false"`

	SentryDSN         string `env:"SENTRY_DSN"`
	SentryEnvironment string `env:"SENTRY_ENVIRONMENT" envDefault:"production"`
}

// ConfigurationError means the bot cannot start with the given settings.
type ConfigurationError struct {
	Field  string
	Reason string
	Err    error
}

func (e *ConfigurationError) Error() string {
	msg := fmt.Sprintf("configuration: %s: %s", e.Field, e.Reason)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ConfigurationError) Unwrap() error { return e.Err }

// Load reads the given env files (".env" when none are given) into the
// process environment and parses it. Missing files are not an error.
// Variables already set in the environment win over file values.
func Load(files ...string) (*Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, &ConfigurationError{Field: "env file", Reason: "cannot parse", Err: err}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, &ConfigurationError{Field: "environment", Reason: "cannot parse", Err: err}
	}
	if err := cfg.check(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// FromMap parses cfg from vars instead of the process environment.
func FromMap(vars map[string]string) (*Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: vars}); err != nil {
		return nil, &ConfigurationError{Field: "environment", Reason: "cannot parse", Err: err}
	}
	if err := cfg.check(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate reports whether the bot can start. The token is checked here and
// not in Load so that logging can be set up before the failure is reported.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.BotToken) == "" {
		return &ConfigurationError{Field: "BOT_TOKEN", Reason: "is required"}
	}
	return nil
}

func (c *Config) check() error {
	if c.PollTimeout < 0 {
		return &ConfigurationError{Field: "POLL_TIMEOUT", Reason: "must not be negative"}
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return &ConfigurationError{Field: "LOG_LEVEL", Reason: "unknown level", Err: err}
	}
	switch strings.ToLower(c.LogFormat) {
	case "json", "console":
	default:
		return &ConfigurationError{Field: "LOG_FORMAT", Reason: fmt.Sprintf("unknown format %q", c.LogFormat)}
	}
	return nil
}
