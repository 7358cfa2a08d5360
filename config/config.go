/*
Package config loads runtime settings for the planner CLI and the static
data server.

PURPOSE:
  Settings come from the environment, optionally seeded from a .env file
  during development. Every variable is prefixed with FPG_ so the binaries
  can share a shell with other tools.

VARIABLES:
  FPG_ENV                    development | production
  FPG_DEFAULT_TAX_RATE       fraction used when a plan names no municipality
  FPG_MAX_PROJECTION_MONTHS  row cap for the monthly income table
  FPG_HTTP_ADDR              listen address of the server
  FPG_STATIC_DIR             built frontend served at /
  FPG_ALLOWED_ORIGINS        comma-separated CORS origins
  FPG_RATE_LIMIT             requests per minute per client IP
  FPG_LOG_LEVEL              debug | info | warn | error
  FPG_LOG_FORMAT             json | text

SEE ALSO:
  - cmd/server/main.go, cmd/planner/main.go: flags override these values
*/
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/shopspring/decimal"
)

// Prefix is prepended to every environment variable name.
const Prefix = "FPG"

var ErrInvalidConfig = errors.New("invalid config")

// Config holds runtime configuration.
type Config struct {
	Env string `envconfig:"ENV" default:"development"`

	DefaultTaxRate      float64 `envconfig:"DEFAULT_TAX_RATE" default:"0.30"`
	MaxProjectionMonths int     `envconfig:"MAX_PROJECTION_MONTHS" default:"36"`

	HTTPAddr       string        `envconfig:"HTTP_ADDR" default:":8080"`
	ReadTimeout    time.Duration `envconfig:"READ_TIMEOUT" default:"15s"`
	WriteTimeout   time.Duration `envconfig:"WRITE_TIMEOUT" default:"15s"`
	IdleTimeout    time.Duration `envconfig:"IDLE_TIMEOUT" default:"60s"`
	StaticDir      string        `envconfig:"STATIC_DIR" default:"./web/dist"`
	AllowedOrigins []string      `envconfig:"ALLOWED_ORIGINS" default:"http://localhost:5173,http://localhost:3000"`
	RateLimit      int           `envconfig:"RATE_LIMIT" default:"60"`

	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"json"`
}

// Load reads the given .env files (default ".env"), then the environment.
// Missing .env files are ignored; variables already set in the
// environment win over .env values.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", f, err)
		}
	}

	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks value ranges that struct tags cannot express.
func (c *Config) Validate() error {
	var problems []string
	if c.DefaultTaxRate < 0 || c.DefaultTaxRate > 1 {
		problems = append(problems, fmt.Sprintf("DEFAULT_TAX_RATE %v outside [0, 1]", c.DefaultTaxRate))
	}
	if c.MaxProjectionMonths < 1 {
		problems = append(problems, fmt.Sprintf("MAX_PROJECTION_MONTHS %d below 1", c.MaxProjectionMonths))
	}
	if c.RateLimit < 1 {
		problems = append(problems, fmt.Sprintf("RATE_LIMIT %d below 1", c.RateLimit))
	}
	if _, err := c.Level(); err != nil {
		problems = append(problems, err.Error())
	}
	switch c.LogFormat {
	case "json", "text":
	default:
		problems = append(problems, fmt.Sprintf("LOG_FORMAT %q is not json or text", c.LogFormat))
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
	}
	return nil
}

// IsProduction returns true when the application runs in production.
func (c *Config) IsProduction() bool {
	return c != nil && c.Env == "production"
}

// TaxRate returns DefaultTaxRate as a decimal.
func (c *Config) TaxRate() decimal.Decimal {
	return decimal.NewFromFloat(c.DefaultTaxRate)
}

// Level parses LogLevel.
func (c *Config) Level() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("LOG_LEVEL %q: %w", c.LogLevel, err)
	}
	return lvl, nil
}

// Logger builds a slog logger writing to w in the configured format.
// replace, when non-nil, rewrites attributes (used for the ECS schema).
func (c *Config) Logger(w io.Writer, replace func([]string, slog.Attr) slog.Attr) *slog.Logger {
	lvl, err := c.Level()
	if err != nil {
		lvl = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: lvl, ReplaceAttr: replace}
	if c.LogFormat == "text" {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}
