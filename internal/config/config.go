package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/ulule/limiter/v3"
)

type RateLimitOptions struct {
	Enabled bool   `env:"RATE_LIMIT_ENABLED" envDefault:"false"`
	Rate    string `env:"RATE_LIMIT_RATE" envDefault:"100-S"` // limiter formatted rate, e.g. 100-S, 1000-M
}

type MetricsOptions struct {
	Enabled bool   `env:"METRICS_ENABLED" envDefault:"true"`
	Path    string `env:"METRICS_PATH" envDefault:"/metrics"`
}

type AppConfig struct {
	Port      string `env:"PORT" envDefault:"8080"`
	GinMode   string `env:"GIN_MODE" envDefault:"release"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`

	DefaultCount    int     `env:"DEFAULT_EMPLOYEE_COUNT" envDefault:"5"`
	MaxCount        int     `env:"MAX_EMPLOYEE_COUNT" envDefault:"10000"` // 0 disables the bound
	Seed            int64   `env:"RANDOM_SEED" envDefault:"0"`
	NullProbability float64 `env:"NULL_PROBABILITY" envDefault:"0.2"`

	CORSAllowedOrigins []string      `env:"CORS_ALLOWED_ORIGINS" envDefault:"*" envSeparator:","`
	ShutdownTimeout    time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`

	RateLimit RateLimitOptions
	Metrics   MetricsOptions
}

// LoadEnv loads whichever of the given dotenv files exist and reports how many did.
func LoadEnv(files []string) (int, error) {
	existing := make([]string, 0, len(files))
	for _, f := range files {
		if _, err := os.Stat(f); err == nil {
			existing = append(existing, f)
		}
	}
	if len(existing) == 0 {
		return 0, nil
	}
	return len(existing), godotenv.Load(existing...)
}

// Load reads .env (if present) and the process environment.
func Load() (AppConfig, error) {
	if _, err := LoadEnv([]string{".env", ".env.local"}); err != nil {
		return AppConfig{}, fmt.Errorf("load .env: %w", err)
	}
	cfg, err := env.ParseAs[AppConfig]()
	if err != nil {
		return AppConfig{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return AppConfig{}, err
	}
	return cfg, nil
}

func (c AppConfig) Validate() error {
	var errs []error
	if c.Port == "" {
		errs = append(errs, errors.New("PORT cannot be empty"))
	}
	if c.DefaultCount < 0 {
		errs = append(errs, fmt.Errorf("DEFAULT_EMPLOYEE_COUNT must be non-negative, got %d", c.DefaultCount))
	}
	if c.MaxCount < 0 {
		errs = append(errs, fmt.Errorf("MAX_EMPLOYEE_COUNT must be non-negative, got %d", c.MaxCount))
	}
	if c.MaxCount > 0 && c.DefaultCount > c.MaxCount {
		errs = append(errs, fmt.Errorf("DEFAULT_EMPLOYEE_COUNT (%d) exceeds MAX_EMPLOYEE_COUNT (%d)", c.DefaultCount, c.MaxCount))
	}
	if c.NullProbability < 0 || c.NullProbability > 1 {
		errs = append(errs, fmt.Errorf("NULL_PROBABILITY must be within [0,1], got %v", c.NullProbability))
	}
	switch c.GinMode {
	case gin.DebugMode, gin.ReleaseMode, gin.TestMode:
	default:
		errs = append(errs, fmt.Errorf("GIN_MODE must be one of debug, release, test, got '%s'", c.GinMode))
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		errs = append(errs, fmt.Errorf("LOG_FORMAT must be 'text' or 'json', got '%s'", c.LogFormat))
	}
	if c.RateLimit.Enabled {
		if _, err := limiter.NewRateFromFormatted(c.RateLimit.Rate); err != nil {
			errs = append(errs, fmt.Errorf("RATE_LIMIT_RATE: %w", err))
		}
	}
	if c.ShutdownTimeout < 0 {
		errs = append(errs, fmt.Errorf("SHUTDOWN_TIMEOUT must be non-negative, got %s", c.ShutdownTimeout))
	}
	return errors.Join(errs...)
}

func (c AppConfig) Addr() string {
	return ":" + c.Port
}
