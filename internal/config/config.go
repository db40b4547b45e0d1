package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	PodName        string
	LogLevel       string
	LogFormat      string
	HTTPPort       string
	MetricsPort    string
	ErrorRate      float64
	MinDelay       time.Duration
	MaxDelay       time.Duration
	PingerInterval time.Duration
}

// Load reads configuration from the environment. A local .env file is loaded
// first when present, so development runs behave like deployed ones.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		PodName:     os.Getenv(envKeyPodName),
		LogLevel:    getEnvOrDefault(envKeyLogLevel, defaultLogLevel),
		LogFormat:   getEnvOrDefault(envKeyLogFormat, defaultLogFormat),
		HTTPPort:    getEnvOrDefault(envKeyHTTPPort, defaultHTTPPort),
		MetricsPort: getEnvOrDefault(envKeyMetricsPort, defaultMetricsPort),
	}

	errorRate, err := getEnvFloat(envKeyErrorRate, defaultErrorRate)
	if err != nil {
		return nil, fmt.Errorf("parse error rate: %w", err)
	}

	if errorRate < 0 || errorRate > 1 {
		return nil, fmt.Errorf("error rate %v: %w", errorRate, ErrErrorRateOutOfRange)
	}

	cfg.ErrorRate = errorRate

	cfg.MinDelay, err = getEnvDuration(envKeyMinDelay, defaultMinDelay)
	if err != nil {
		return nil, fmt.Errorf("parse min delay: %w", err)
	}

	cfg.MaxDelay, err = getEnvDuration(envKeyMaxDelay, defaultMaxDelay)
	if err != nil {
		return nil, fmt.Errorf("parse max delay: %w", err)
	}

	if cfg.MinDelay < 0 || cfg.MaxDelay <= cfg.MinDelay {
		return nil, fmt.Errorf("delay window [%s, %s): %w", cfg.MinDelay, cfg.MaxDelay, ErrInvalidDelayWindow)
	}

	cfg.PingerInterval, err = getEnvDuration(envKeyPingerInterval, defaultPingerInterval)
	if err != nil {
		return nil, fmt.Errorf("parse pinger interval: %w", err)
	}

	if cfg.PingerInterval < envMinPingerInterval {
		return nil, fmt.Errorf("pinger interval %s below minimum %s: %w",
			cfg.PingerInterval, envMinPingerInterval, ErrIntervalTooShort)
	}

	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	return value
}

func getEnvFloat(key string, defaultValue float64) (float64, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}

	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("%s=%q: %w", key, value, err)
	}

	return parsed, nil
}

func getEnvDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}

	parsed, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("%s=%q: %w", key, value, err)
	}

	return parsed, nil
}
