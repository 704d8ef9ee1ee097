package config

import (
	"fmt"
	"os"
	"time"
)

// HiveConfig is the central server configuration. The hive is deployed
// from environment only; there is no YAML file on that side.
type HiveConfig struct {
	// Addr is the HTTP listen address.
	Addr string

	// IngestSecret is the shared secret agents present in X-Bot-Secret.
	IngestSecret string

	// EventRetention is how long telemetry events are kept.
	EventRetention time.Duration

	// AlertRetention is how long acknowledged alerts are kept.
	AlertRetention time.Duration

	// SessionIdleClose marks sessions inactive after this much silence.
	SessionIdleClose time.Duration

	// CleanupInterval is how often the retention sweep runs.
	CleanupInterval time.Duration
}

// LoadHiveFromEnv reads the hive configuration from the environment.
// Database settings are loaded separately by the database package.
func LoadHiveFromEnv() (*HiveConfig, error) {
	secret := os.Getenv("INGEST_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("%w: INGEST_SECRET", ErrMissingRequiredField)
	}

	cfg := &HiveConfig{
		Addr:         getEnvOrDefault("HTTP_ADDR", ":9090"),
		IngestSecret: secret,
	}

	var err error
	if cfg.EventRetention, err = getEnvDuration("EVENT_RETENTION", 30*24*time.Hour); err != nil {
		return nil, err
	}
	if cfg.AlertRetention, err = getEnvDuration("ALERT_RETENTION", 7*24*time.Hour); err != nil {
		return nil, err
	}
	if cfg.SessionIdleClose, err = getEnvDuration("SESSION_IDLE_CLOSE", 24*time.Hour); err != nil {
		return nil, err
	}
	if cfg.CleanupInterval, err = getEnvDuration("CLEANUP_INTERVAL", time.Hour); err != nil {
		return nil, err
	}

	return cfg, nil
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvDuration(key string, defaultVal time.Duration) (time.Duration, error) {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal, nil
	}
	d, err := time.ParseDuration(val)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("invalid %s: must be positive", key)
	}
	return d, nil
}
