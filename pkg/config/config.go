// Package config loads and validates honeybot configuration.
//
// Agent configuration comes from an optional YAML file merged over
// built-in defaults, with a small set of environment overrides on top.
// Central (hive) configuration is environment-only. Both are immutable
// after load.
package config

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/honeybotlabs/honeybot/pkg/score"
)

// Config is the root agent configuration.
type Config struct {
	Persona   PersonaConfig   `yaml:"persona" json:"persona"`
	Detection DetectionConfig `yaml:"detection" json:"detection"`
	Model     ModelConfig     `yaml:"model" json:"model"`
	Alerts    AlertsConfig    `yaml:"alerts" json:"alerts"`
	Central   CentralConfig   `yaml:"central" json:"central"`
	Redis     RedisConfig     `yaml:"redis" json:"redis"`
	Feed      FeedConfig      `yaml:"feed" json:"feed"`
	Server    ServerConfig    `yaml:"server" json:"server"`
}

// PersonaConfig describes the identity the honeypot presents.
type PersonaConfig struct {
	Name     string `yaml:"name" json:"name"`
	Category string `yaml:"category" json:"category"`
	Company  string `yaml:"company" json:"company"`
	// File points at a persona definition. Only the path is carried here;
	// its base name seeds Name when Name is unset.
	File string `yaml:"file" json:"file"`
}

// DetectionConfig selects the threat thresholds, either by sensitivity
// preset or with an explicit thresholds block.
type DetectionConfig struct {
	Sensitivity string            `yaml:"sensitivity" json:"sensitivity"`
	Thresholds  *score.Thresholds `yaml:"thresholds,omitempty" json:"thresholds,omitempty"`
}

// ResolveThresholds returns the explicit thresholds when present,
// otherwise the preset named by Sensitivity.
func (c DetectionConfig) ResolveThresholds() (score.Thresholds, error) {
	if c.Thresholds != nil {
		return *c.Thresholds, nil
	}
	return score.Preset(c.Sensitivity)
}

// ModelConfig configures the local model used for honeypot replies and
// deep analysis. Disabled by default; templates carry the honeypot
// without it.
type ModelConfig struct {
	Enabled  bool   `yaml:"enabled" json:"enabled"`
	BaseURL  string `yaml:"base_url" json:"base_url"`
	Name     string `yaml:"name" json:"name"`
	Analyzer bool   `yaml:"analyzer" json:"analyzer"`
}

// AlertsConfig wires the optional alert sinks. Empty settings leave the
// corresponding sink unconfigured; the log sink is always on.
type AlertsConfig struct {
	WebhookURL  string         `yaml:"webhook_url" json:"webhook_url"`
	Telegram    TelegramConfig `yaml:"telegram" json:"telegram"`
	Email       EmailConfig    `yaml:"email" json:"email"`
	Slack       SlackConfig    `yaml:"slack" json:"slack"`
	HistorySize int            `yaml:"history_size" json:"history_size"`
}

// TelegramConfig holds telegram bot API settings.
type TelegramConfig struct {
	Token  string `yaml:"token" json:"token"`
	ChatID string `yaml:"chat_id" json:"chat_id"`
}

// EmailConfig holds SMTP settings for the email sink.
type EmailConfig struct {
	Host     string   `yaml:"host" json:"host"`
	Port     int      `yaml:"port" json:"port"`
	Username string   `yaml:"username" json:"username"`
	Password string   `yaml:"password" json:"password"`
	From     string   `yaml:"from" json:"from"`
	To       []string `yaml:"to" json:"to"`
}

// SlackConfig holds slack sink settings.
type SlackConfig struct {
	Token   string `yaml:"token" json:"token"`
	Channel string `yaml:"channel" json:"channel"`
}

// CentralConfig connects the agent to the central ingestion API.
// Reporting is enabled only when all three values are present.
type CentralConfig struct {
	URL       string `yaml:"url" json:"url"`
	BotID     string `yaml:"bot_id" json:"bot_id"`
	BotSecret string `yaml:"bot_secret" json:"bot_secret"`
}

// Enabled reports whether central logging is fully configured.
func (c CentralConfig) Enabled() bool {
	return c.URL != "" && c.BotID != "" && c.BotSecret != ""
}

// RedisConfig selects the blocklist store. An empty Addr keeps the
// blocklist in process memory.
type RedisConfig struct {
	Addr     string `yaml:"addr" json:"addr"`
	Password string `yaml:"password" json:"password"`
	DB       int    `yaml:"db" json:"db"`
}

// FeedConfig points at a community blocklist feed.
type FeedConfig struct {
	URL      string `yaml:"url" json:"url"`
	Interval string `yaml:"interval" json:"interval"`
}

// ResolveInterval parses the sync interval, falling back to the default
// on empty or malformed values.
func (c FeedConfig) ResolveInterval() time.Duration {
	const fallback = time.Hour
	if c.Interval == "" {
		return fallback
	}
	d, err := time.ParseDuration(c.Interval)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}

// ServerConfig holds the chat ingress listener settings.
type ServerConfig struct {
	Addr string `yaml:"addr" json:"addr"`
}

// Hash returns a stable fingerprint of the configuration with
// credentials redacted, suitable for the registration payload.
func (c *Config) Hash() string {
	redacted := *c
	redacted.Central.BotSecret = ""
	redacted.Alerts.Telegram.Token = ""
	redacted.Alerts.Email.Password = ""
	redacted.Alerts.Slack.Token = ""
	redacted.Redis.Password = ""

	data, err := json.Marshal(redacted)
	if err != nil {
		return ""
	}
	return fmt.Sprintf("%x", sha256.Sum256(data))
}

// personaNameFromFile derives a persona name from a file path, e.g.
// "personas/maya_support.yaml" becomes "maya_support".
func personaNameFromFile(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
