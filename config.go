package conform

import (
	"errors"
	"fmt"

	"github.com/dmitrymomot/conform/pkg/config"
	"github.com/dmitrymomot/conform/pkg/logger"
	"github.com/dmitrymomot/conform/pkg/processor"
)

// Config holds engine settings read from the environment.
type Config struct {
	// MaxDepth bounds input nesting; 0 disables the guard.
	MaxDepth  int    `env:"CONFORM_MAX_DEPTH" envDefault:"256"`
	LogLevel  string `env:"CONFORM_LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"CONFORM_LOG_FORMAT" envDefault:"json"`
	// Language is used when the context carries none.
	Language string `env:"CONFORM_LANGUAGE" envDefault:"en"`
}

// DefaultConfig returns the settings used when nothing is configured.
func DefaultConfig() Config {
	return Config{
		MaxDepth:  processor.DefaultMaxDepth,
		LogLevel:  "info",
		LogFormat: string(logger.FormatJSON),
		Language:  "en",
	}
}

// LoadConfig reads Config from the environment and the optional .env file.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports every invalid setting.
func (c Config) Validate() error {
	var errs []error
	if c.MaxDepth < 0 {
		errs = append(errs, fmt.Errorf("%w: max depth must not be negative, got %d", ErrInvalidConfig, c.MaxDepth))
	}
	switch logger.Format(c.LogFormat) {
	case logger.FormatJSON, logger.FormatText:
	default:
		errs = append(errs, fmt.Errorf("%w: log format must be %q or %q, got %q",
			ErrInvalidConfig, logger.FormatJSON, logger.FormatText, c.LogFormat))
	}
	return errors.Join(errs...)
}
