package config

import (
	"errors"
	"sync"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	AppPort               int    `mapstructure:"APP_PORT"`
	LogLevel              string `mapstructure:"LOG_LEVEL"`
	LogFormat             string `mapstructure:"LOG_FORMAT"`
	RequestLoggingEnabled bool   `mapstructure:"REQUEST_LOGGING_ENABLED"`
	RouteMetricsEnabled   bool   `mapstructure:"ROUTE_METRICS_ENABLED"`
	SubmitRatePerMin      int    `mapstructure:"SUBMIT_RATE_PER_MIN"`
	ValidateRatePerMin    int    `mapstructure:"VALIDATE_RATE_PER_MIN"`
	WSMaxSessionSec       int    `mapstructure:"WS_MAX_SESSION_SEC"`
	SuccessBannerSec      int    `mapstructure:"SUCCESS_BANNER_SEC"`
	WebRoot               string `mapstructure:"WEB_ROOT"`
	PyroscopeAddress      string `mapstructure:"PYROSCOPE_SERVER_ADDRESS"`
}

// Validation errors returned by Config.Validate.
var (
	ErrAppPortRange         = errors.New("APP_PORT must be between 1 and 65535")
	ErrLogLevelEmpty        = errors.New("LOG_LEVEL cannot be empty")
	ErrLogFormatEmpty       = errors.New("LOG_FORMAT cannot be empty")
	ErrSubmitRateNegative   = errors.New("SUBMIT_RATE_PER_MIN cannot be negative")
	ErrValidateRateNegative = errors.New("VALIDATE_RATE_PER_MIN cannot be negative")
	ErrWSMaxSession         = errors.New("WS_MAX_SESSION_SEC must be greater than 0")
	ErrSuccessBannerSec     = errors.New("SUCCESS_BANNER_SEC must be greater than 0")
	ErrWebRootEmpty         = errors.New("WEB_ROOT cannot be empty")
)

var (
	cachedConfig *Config
	configMutex  sync.RWMutex
)

// Load loads configuration from environment variables and .env file
// It caches the result for subsequent calls
func Load() (Config, error) {
	configMutex.RLock()
	if cachedConfig != nil {
		defer configMutex.RUnlock()
		return *cachedConfig, nil
	}
	configMutex.RUnlock()

	configMutex.Lock()
	defer configMutex.Unlock()

	// Double-check in case another goroutine loaded it while we waited for the lock
	if cachedConfig != nil {
		return *cachedConfig, nil
	}

	v := viper.New()

	v.SetDefault("APP_PORT", 8080)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
	v.SetDefault("REQUEST_LOGGING_ENABLED", false)
	v.SetDefault("ROUTE_METRICS_ENABLED", true)
	v.SetDefault("SUBMIT_RATE_PER_MIN", 10)
	v.SetDefault("VALIDATE_RATE_PER_MIN", 600)
	v.SetDefault("WS_MAX_SESSION_SEC", 900)
	v.SetDefault("SUCCESS_BANNER_SEC", 5) // how long "Account created successfully!" stays up
	v.SetDefault("WEB_ROOT", "./web-ui")
	v.SetDefault("PYROSCOPE_SERVER_ADDRESS", "")

	// Configure Viper to read from .env file (if present)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")

	// Try to read .env file (it's okay if it doesn't exist)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, err
		}
	}

	// Override with OS environment variables
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	cachedConfig = &cfg

	return cfg, nil
}

// ResetCache clears the cached configuration (for testing purposes)
func ResetCache() {
	configMutex.Lock()
	defer configMutex.Unlock()
	cachedConfig = nil
}

// Validate checks if required configuration fields are properly set
func (c Config) Validate() error {
	if c.AppPort <= 0 || c.AppPort > 65535 {
		return ErrAppPortRange
	}
	if c.LogLevel == "" {
		return ErrLogLevelEmpty
	}
	if c.LogFormat == "" {
		return ErrLogFormatEmpty
	}
	if c.SubmitRatePerMin < 0 {
		return ErrSubmitRateNegative
	}
	if c.ValidateRatePerMin < 0 {
		return ErrValidateRateNegative
	}
	if c.WSMaxSessionSec <= 0 {
		return ErrWSMaxSession
	}
	if c.SuccessBannerSec <= 0 {
		return ErrSuccessBannerSec
	}
	if c.WebRoot == "" {
		return ErrWebRootEmpty
	}
	return nil
}

// BannerDuration is how long the success banner stays visible after a submission.
func (c Config) BannerDuration() time.Duration {
	return time.Duration(c.SuccessBannerSec) * time.Second
}

// WSMaxSession caps the lifetime of one live form connection.
func (c Config) WSMaxSession() time.Duration {
	return time.Duration(c.WSMaxSessionSec) * time.Second
}
