package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// Initialize loads, validates, and returns ready-to-use agent
// configuration. This is the primary entry point.
//
// Steps performed:
//  1. Start from built-in defaults
//  2. Merge the YAML file (if given) with environment expansion
//  3. Apply environment overrides
//  4. Validate, collecting every problem before failing
func Initialize(_ context.Context, path string) (*Config, error) {
	log := slog.With("config_file", path)
	log.Info("Initializing configuration")

	cfg, err := load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrValidationFailed, err)
	}

	log.Info("Configuration initialized successfully",
		"sensitivity", cfg.Detection.Sensitivity,
		"model_enabled", cfg.Model.Enabled,
		"central_logging", cfg.Central.Enabled())

	return cfg, nil
}

func load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		fileCfg, err := loadYAML(path)
		if err != nil {
			return nil, NewLoadError(path, err)
		}
		if err := mergo.Merge(cfg, fileCfg, mergo.WithOverride); err != nil {
			return nil, NewLoadError(path, fmt.Errorf("failed to merge configuration: %w", err))
		}
	}

	applyEnvOverrides(cfg)

	if cfg.Persona.Name == "" && cfg.Persona.File != "" {
		cfg.Persona.Name = personaNameFromFile(cfg.Persona.File)
	}

	return cfg, nil
}

func loadYAML(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, err
	}

	// Expand environment variables using {{.VAR}} template syntax.
	// ExpandEnv passes the original data through on template errors so
	// the YAML parser can produce a clearer message.
	data = ExpandEnv(data)

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}
	return &cfg, nil
}

// applyEnvOverrides layers the well-known environment variables over the
// merged configuration. Environment wins over file values.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("CENTRAL_LOGGING_URL"); v != "" {
		cfg.Central.URL = v
	}
	if v := os.Getenv("BOT_ID"); v != "" {
		cfg.Central.BotID = v
	}
	if v := os.Getenv("BOT_SECRET"); v != "" {
		cfg.Central.BotSecret = v
	}
	if v := os.Getenv("PERSONA_FILE"); v != "" {
		cfg.Persona.File = v
	}
}

func validate(cfg *Config) error {
	return NewValidator(cfg).ValidateAll()
}
