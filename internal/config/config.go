// Package config holds the server settings, read from flags with environment
// overrides.
package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2/log"
)

// ErrInvalidConfig indicates invalid configuration values.
var ErrInvalidConfig = errors.New("invalid configuration")

type Config struct {
	Addr           string
	AllowedOrigins string
	IdleTTL        time.Duration
	ReapInterval   time.Duration
	LogLevel       string
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Addr:           ":3000",
		AllowedOrigins: "http://localhost:5173",
		IdleTTL:        2 * time.Hour,
		ReapInterval:   time.Minute,
		LogLevel:       "info",
	}
}

// Load parses args (without the program name) on top of the defaults. The
// CHESS_* environment variables, looked up through getenv, override both.
func Load(args []string, getenv func(string) string) (*Config, error) {
	cfg := NewConfig()

	fs := flag.NewFlagSet("server", flag.ContinueOnError)
	fs.StringVar(&cfg.Addr, "addr", cfg.Addr, "listen address")
	fs.StringVar(&cfg.AllowedOrigins, "origins", cfg.AllowedOrigins, "comma separated CORS origins")
	fs.DurationVar(&cfg.IdleTTL, "idle-ttl", cfg.IdleTTL, "drop games untouched for this long")
	fs.DurationVar(&cfg.ReapInterval, "reap-interval", cfg.ReapInterval, "how often idle games are looked for")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "trace, debug, info, warn or error")
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	if v := getenv("CHESS_ADDR"); v != "" {
		cfg.Addr = v
	}
	if v := getenv("CHESS_ALLOWED_ORIGINS"); v != "" {
		cfg.AllowedOrigins = v
	}
	if v := getenv("CHESS_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	for name, dst := range map[string]*time.Duration{
		"CHESS_IDLE_TTL":      &cfg.IdleTTL,
		"CHESS_REAP_INTERVAL": &cfg.ReapInterval,
	} {
		v := getenv(name)
		if v == "" {
			continue
		}
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, name, err)
		}
		*dst = d
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// FromEnvironment loads the process flags and environment.
func FromEnvironment() (*Config, error) {
	return Load(os.Args[1:], os.Getenv)
}

func (c *Config) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("%w: empty listen address", ErrInvalidConfig)
	}
	if c.IdleTTL <= 0 {
		return fmt.Errorf("%w: idle ttl must be positive", ErrInvalidConfig)
	}
	if c.ReapInterval <= 0 {
		return fmt.Errorf("%w: reap interval must be positive", ErrInvalidConfig)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level maps LogLevel onto the fiber logger levels.
func (c *Config) Level() (log.Level, error) {
	switch strings.ToLower(c.LogLevel) {
	case "trace":
		return log.LevelTrace, nil
	case "debug":
		return log.LevelDebug, nil
	case "info":
		return log.LevelInfo, nil
	case "warn":
		return log.LevelWarn, nil
	case "error":
		return log.LevelError, nil
	}
	return log.LevelInfo, fmt.Errorf("%w: unknown log level %q", ErrInvalidConfig, c.LogLevel)
}
