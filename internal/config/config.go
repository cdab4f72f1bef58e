// Package config loads and validates all environment variables at startup.
// Other packages receive typed values and never call os.Getenv themselves.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"strconv"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// Config is the fully-parsed application configuration.
type Config struct {
	// ── Server ────────────────────────────────────────────────────────────────
	Port           string        `env:"PORT" envDefault:"8080"`
	Env            string        `env:"ENV" envDefault:"development"` // development | staging | production
	ServiceName    string        `env:"SERVICE_NAME" envDefault:"wellbeing-risk-engine"`
	AllowedOrigins []string      `env:"ALLOWED_ORIGINS" envSeparator:","`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"15s"`

	// ── Logging ───────────────────────────────────────────────────────────────
	Log LogConfig

	// ── Model inference service ───────────────────────────────────────────────
	// Optional. When MLServiceURL is empty, /predict is served by the rule
	// predictor alone.
	MLServiceURL     string        `env:"ML_SERVICE_URL"`
	MLServiceTimeout time.Duration `env:"ML_SERVICE_TIMEOUT" envDefault:"3s"`

	// ── Tracing ───────────────────────────────────────────────────────────────
	// Spans are exported only when OTLPEndpoint is set (e.g. "localhost:4318").
	OTLPEndpoint    string  `env:"OTLP_ENDPOINT"`
	OTLPInsecure    bool    `env:"OTLP_INSECURE" envDefault:"false"`
	TraceSampleRate float64 `env:"TRACE_SAMPLE_RATE" envDefault:"1"`
}

// LogConfig controls the slog handler and the optional rotating log file.
type LogConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`  // debug | info | warn | error
	Format string `env:"LOG_FORMAT" envDefault:"text"` // text | json; production is always json
	// File enables lumberjack file output in addition to stdout.
	File         string `env:"LOG_FILE"`
	MaxSizeMB    int    `env:"LOG_FILE_MAX_SIZE_MB" envDefault:"100"`
	MaxBackups   int    `env:"LOG_FILE_MAX_BACKUPS" envDefault:"5"`
	MaxAgeDays   int    `env:"LOG_FILE_MAX_AGE_DAYS" envDefault:"28"`
	CompressFile bool   `env:"LOG_FILE_COMPRESS" envDefault:"true"`
}

// IsProduction reports whether the service runs in production.
func (c *Config) IsProduction() bool { return c.Env == "production" }

// Load reads all environment variables and returns a validated Config.
// A .env file in the working directory is loaded first when present, so plain
// `go run ./cmd/api` works in development. Real environment variables always
// take precedence over .env values.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	c := &Config{}
	if err := env.Parse(c); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return c, c.validate()
}

func (c *Config) validate() error {
	var errs []error

	if p, err := strconv.Atoi(c.Port); err != nil || p < 1 || p > 65535 {
		errs = append(errs, fmt.Errorf("PORT must be a TCP port number, got %q", c.Port))
	}

	switch c.Env {
	case "development", "staging", "production":
	default:
		errs = append(errs, fmt.Errorf("ENV must be development, staging or production, got %q", c.Env))
	}

	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("LOG_LEVEL must be debug, info, warn or error, got %q", c.Log.Level))
	}

	if c.Log.Format != "text" && c.Log.Format != "json" {
		errs = append(errs, fmt.Errorf("LOG_FORMAT must be text or json, got %q", c.Log.Format))
	}

	if c.RequestTimeout <= 0 {
		errs = append(errs, fmt.Errorf("REQUEST_TIMEOUT must be positive"))
	}

	if c.MLServiceURL != "" {
		if u, err := url.Parse(c.MLServiceURL); err != nil || u.Scheme == "" || u.Host == "" {
			errs = append(errs, fmt.Errorf("ML_SERVICE_URL must be an absolute URL, got %q", c.MLServiceURL))
		}
		if c.MLServiceTimeout <= 0 {
			errs = append(errs, fmt.Errorf("ML_SERVICE_TIMEOUT must be positive"))
		}
	}

	if c.TraceSampleRate < 0 || c.TraceSampleRate > 1 {
		errs = append(errs, fmt.Errorf("TRACE_SAMPLE_RATE must be within [0,1], got %v", c.TraceSampleRate))
	}

	return errors.Join(errs...)
}
