package config

import (
	"github.com/honeybotlabs/honeybot/pkg/alert"
	"github.com/honeybotlabs/honeybot/pkg/llm"
	"github.com/honeybotlabs/honeybot/pkg/score"
)

// DefaultConfig returns the built-in agent defaults. A YAML file and
// environment overrides are merged on top of this.
func DefaultConfig() *Config {
	return &Config{
		Persona: PersonaConfig{
			Category: "customer_support",
		},
		Detection: DetectionConfig{
			Sensitivity: score.DefaultSensitivity,
		},
		Model: ModelConfig{
			BaseURL: llm.DefaultBaseURL,
			Name:    llm.DefaultModel,
		},
		Alerts: AlertsConfig{
			HistorySize: alert.DefaultHistorySize,
			Email: EmailConfig{
				Port: 587,
			},
		},
		Feed: FeedConfig{
			Interval: "1h",
		},
		Server: ServerConfig{
			Addr: ":8080",
		},
	}
}
