package score

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/honeybotlabs/honeybot/pkg/models"
)

func TestPresets(t *testing.T) {
	tests := []struct {
		sensitivity string
		want        Thresholds
	}{
		{SensitivityLow, Thresholds{Monitor: 40, Honeypot: 70, Alert: 70, Block: 90}},
		{SensitivityMedium, Thresholds{Monitor: 30, Honeypot: 60, Alert: 60, Block: 80}},
		{SensitivityHigh, Thresholds{Monitor: 20, Honeypot: 45, Alert: 45, Block: 65}},
		{SensitivityParanoid, Thresholds{Monitor: 10, Honeypot: 30, Alert: 30, Block: 50}},
	}
	for _, tt := range tests {
		t.Run(tt.sensitivity, func(t *testing.T) {
			got, err := Preset(tt.sensitivity)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.NoError(t, got.Validate())
		})
	}

	t.Run("unknown sensitivity", func(t *testing.T) {
		_, err := Preset("extreme")
		assert.ErrorContains(t, err, "unknown sensitivity")
	})
}

func TestThresholdsValidate(t *testing.T) {
	tests := []struct {
		name    string
		t       Thresholds
		wantErr string
	}{
		{"ordered", Thresholds{Monitor: 30, Honeypot: 60, Alert: 60, Block: 80}, ""},
		{"honeypot equals block", Thresholds{Monitor: 30, Honeypot: 80, Alert: 80, Block: 80}, ""},
		{"monitor equals honeypot", Thresholds{Monitor: 60, Honeypot: 60, Alert: 60, Block: 80}, "must be below honeypot"},
		{"monitor above honeypot", Thresholds{Monitor: 70, Honeypot: 60, Alert: 60, Block: 80}, "must be below honeypot"},
		{"honeypot above block", Thresholds{Monitor: 30, Honeypot: 90, Alert: 90, Block: 80}, "must not exceed block"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.t.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.ErrorContains(t, err, tt.wantErr)
			}
		})
	}
}

func TestLevelAndModeBands(t *testing.T) {
	th, err := Preset(SensitivityMedium)
	require.NoError(t, err)

	tests := []struct {
		score     float64
		wantLevel ThreatLevel
		wantMode  models.Mode
	}{
		{0, ThreatNone, models.ModeNormal},
		{29.9, ThreatNone, models.ModeNormal},
		{30, ThreatLow, models.ModeMonitoring},
		{59.9, ThreatLow, models.ModeMonitoring},
		{60, ThreatHigh, models.ModeHoneypot},
		{79.9, ThreatHigh, models.ModeHoneypot},
		{80, ThreatCritical, models.ModeBlocked},
		{100, ThreatCritical, models.ModeBlocked},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.wantLevel, th.LevelFor(tt.score), "level for %.1f", tt.score)
		assert.Equal(t, tt.wantMode, th.ModeFor(tt.score), "mode for %.1f", tt.score)
	}
}

// With alert and honeypot split apart a score can sit in the honeypot band
// without crossing the alert line.
func TestLevelMediumBand(t *testing.T) {
	th := Thresholds{Monitor: 20, Honeypot: 45, Alert: 55, Block: 80}
	require.NoError(t, th.Validate())

	assert.Equal(t, ThreatMedium, th.LevelFor(50))
	assert.Equal(t, models.ModeHoneypot, th.ModeFor(50))
	assert.Equal(t, ThreatHigh, th.LevelFor(56))
}
