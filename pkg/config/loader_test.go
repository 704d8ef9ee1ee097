package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/honeybotlabs/honeybot/pkg/score"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "honeybot.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestInitializeDefaultsOnly(t *testing.T) {
	// Empty values are treated as unset by the override pass.
	t.Setenv("CENTRAL_LOGGING_URL", "")
	t.Setenv("BOT_ID", "")
	t.Setenv("BOT_SECRET", "")
	t.Setenv("PERSONA_FILE", "")

	cfg, err := Initialize(context.Background(), "")
	require.NoError(t, err)

	assert.Equal(t, score.SensitivityMedium, cfg.Detection.Sensitivity)
	assert.False(t, cfg.Model.Enabled)
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, 100, cfg.Alerts.HistorySize)
	assert.False(t, cfg.Central.Enabled())

	thresholds, err := cfg.Detection.ResolveThresholds()
	require.NoError(t, err)
	assert.Equal(t, 30.0, thresholds.Monitor)
	assert.Equal(t, 80.0, thresholds.Block)
}

func TestInitializeMergesFileOverDefaults(t *testing.T) {
	path := writeConfigFile(t, `
persona:
  name: maya
  company: Acme Widgets
detection:
  sensitivity: paranoid
model:
  enabled: true
  name: mistral
server:
  addr: ":9000"
`)

	cfg, err := Initialize(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, "maya", cfg.Persona.Name)
	assert.Equal(t, score.SensitivityParanoid, cfg.Detection.Sensitivity)
	assert.True(t, cfg.Model.Enabled)
	assert.Equal(t, "mistral", cfg.Model.Name)
	// Unset file fields keep their defaults.
	assert.Equal(t, "http://localhost:11434", cfg.Model.BaseURL)
	assert.Equal(t, ":9000", cfg.Server.Addr)
	assert.Equal(t, "customer_support", cfg.Persona.Category)
}

func TestInitializeExplicitThresholds(t *testing.T) {
	path := writeConfigFile(t, `
detection:
  thresholds:
    monitor: 25
    honeypot: 50
    alert: 55
    block: 75
`)

	cfg, err := Initialize(context.Background(), path)
	require.NoError(t, err)

	thresholds, err := cfg.Detection.ResolveThresholds()
	require.NoError(t, err)
	assert.Equal(t, score.Thresholds{Monitor: 25, Honeypot: 50, Alert: 55, Block: 75}, thresholds)
}

func TestInitializeEnvOverrides(t *testing.T) {
	path := writeConfigFile(t, `
central:
  url: http://file.example.com
  bot_id: file-bot
  bot_secret: file-secret
`)
	t.Setenv("CENTRAL_LOGGING_URL", "http://env.example.com")
	t.Setenv("BOT_ID", "env-bot")
	t.Setenv("BOT_SECRET", "env-secret")

	cfg, err := Initialize(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, "http://env.example.com", cfg.Central.URL)
	assert.Equal(t, "env-bot", cfg.Central.BotID)
	assert.Equal(t, "env-secret", cfg.Central.BotSecret)
	assert.True(t, cfg.Central.Enabled())
}

func TestInitializeExpandsEnvInYAML(t *testing.T) {
	t.Setenv("HOOK_URL", "http://hooks.example.com/alerts")
	path := writeConfigFile(t, `
alerts:
  webhook_url: "{{.HOOK_URL}}"
`)

	cfg, err := Initialize(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "http://hooks.example.com/alerts", cfg.Alerts.WebhookURL)
}

func TestPersonaFileSeedsName(t *testing.T) {
	t.Setenv("PERSONA_FILE", "personas/maya_support.yaml")

	cfg, err := Initialize(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, "maya_support", cfg.Persona.Name)
}

func TestPersonaFileDoesNotOverrideName(t *testing.T) {
	t.Setenv("PERSONA_FILE", "personas/maya_support.yaml")
	path := writeConfigFile(t, `
persona:
  name: explicit-name
`)

	cfg, err := Initialize(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "explicit-name", cfg.Persona.Name)
}

func TestInitializeMissingFile(t *testing.T) {
	_, err := Initialize(context.Background(), filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConfigNotFound)

	var loadErr *LoadError
	assert.ErrorAs(t, err, &loadErr)
}

func TestInitializeInvalidYAML(t *testing.T) {
	path := writeConfigFile(t, "detection: [unclosed")
	_, err := Initialize(context.Background(), path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidYAML)
}

func TestInitializeValidationFailure(t *testing.T) {
	path := writeConfigFile(t, `
detection:
  sensitivity: extreme
`)
	_, err := Initialize(context.Background(), path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidationFailed)
	assert.Contains(t, err.Error(), "extreme")
}

func TestConfigHashStableAndRedacted(t *testing.T) {
	build := func(secret string) *Config {
		cfg := DefaultConfig()
		cfg.Central = CentralConfig{URL: "http://h", BotID: "b", BotSecret: secret}
		return cfg
	}

	h1 := build("secret-a").Hash()
	h2 := build("secret-b").Hash()
	h3 := build("secret-a").Hash()
	require.NotEmpty(t, h1)
	assert.Equal(t, h1, h3)
	// Secrets must not influence the fingerprint.
	assert.Equal(t, h1, h2)

	changed := build("secret-a")
	changed.Detection.Sensitivity = score.SensitivityHigh
	assert.NotEqual(t, h1, changed.Hash())
}

func TestFeedResolveInterval(t *testing.T) {
	tests := []struct {
		name     string
		interval string
		want     string
	}{
		{"empty uses default", "", "1h0m0s"},
		{"explicit", "15m", "15m0s"},
		{"malformed uses default", "soon", "1h0m0s"},
		{"negative uses default", "-5m", "1h0m0s"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := FeedConfig{Interval: tt.interval}
			assert.Equal(t, tt.want, c.ResolveInterval().String())
		})
	}
}

func TestLoadHiveFromEnv(t *testing.T) {
	t.Setenv("INGEST_SECRET", "hive-secret")
	t.Setenv("HTTP_ADDR", ":7070")
	t.Setenv("EVENT_RETENTION", "48h")

	cfg, err := LoadHiveFromEnv()
	require.NoError(t, err)
	assert.Equal(t, ":7070", cfg.Addr)
	assert.Equal(t, "hive-secret", cfg.IngestSecret)
	assert.Equal(t, "48h0m0s", cfg.EventRetention.String())
	// Unset windows keep defaults.
	assert.Equal(t, "168h0m0s", cfg.AlertRetention.String())
	assert.Equal(t, "1h0m0s", cfg.CleanupInterval.String())
}

func TestLoadHiveFromEnvRequiresSecret(t *testing.T) {
	t.Setenv("INGEST_SECRET", "")
	_, err := LoadHiveFromEnv()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingRequiredField)
}

func TestLoadHiveFromEnvRejectsBadDuration(t *testing.T) {
	t.Setenv("INGEST_SECRET", "s")
	t.Setenv("CLEANUP_INTERVAL", "whenever")
	_, err := LoadHiveFromEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CLEANUP_INTERVAL")
}

func TestValidationErrorUnwrap(t *testing.T) {
	inner := errors.New("boom")
	err := NewValidationError("alerts", "telegram", inner)
	assert.ErrorIs(t, err, inner)
	assert.Contains(t, err.Error(), "alerts")
	assert.Contains(t, err.Error(), "telegram")
}
