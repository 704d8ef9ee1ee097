package score

import (
	"fmt"

	"github.com/honeybotlabs/honeybot/pkg/models"
)

// Sensitivity preset names for threshold configuration.
const (
	SensitivityLow      = "low"
	SensitivityMedium   = "medium"
	SensitivityHigh     = "high"
	SensitivityParanoid = "paranoid"

	DefaultSensitivity = SensitivityMedium
)

// Thresholds are the score boundaries that drive mode transitions and
// alerting. Immutable after load.
type Thresholds struct {
	Monitor  float64 `yaml:"monitor" json:"monitor"`
	Honeypot float64 `yaml:"honeypot" json:"honeypot"`
	Alert    float64 `yaml:"alert" json:"alert"`
	Block    float64 `yaml:"block" json:"block"`
}

var presets = map[string]Thresholds{
	SensitivityLow:      {Monitor: 40, Honeypot: 70, Alert: 70, Block: 90},
	SensitivityMedium:   {Monitor: 30, Honeypot: 60, Alert: 60, Block: 80},
	SensitivityHigh:     {Monitor: 20, Honeypot: 45, Alert: 45, Block: 65},
	SensitivityParanoid: {Monitor: 10, Honeypot: 30, Alert: 30, Block: 50},
}

// Preset returns the thresholds for a named sensitivity.
func Preset(sensitivity string) (Thresholds, error) {
	t, ok := presets[sensitivity]
	if !ok {
		return Thresholds{}, fmt.Errorf("unknown sensitivity %q", sensitivity)
	}
	return t, nil
}

// Validate enforces the threshold ordering required for a coherent state
// machine: monitor below honeypot, honeypot at or below block.
func (t Thresholds) Validate() error {
	if t.Monitor >= t.Honeypot {
		return fmt.Errorf("monitor threshold (%.0f) must be below honeypot threshold (%.0f)", t.Monitor, t.Honeypot)
	}
	if t.Honeypot > t.Block {
		return fmt.Errorf("honeypot threshold (%.0f) must not exceed block threshold (%.0f)", t.Honeypot, t.Block)
	}
	return nil
}

// ThreatLevel buckets a score against the thresholds.
type ThreatLevel string

const (
	ThreatNone     ThreatLevel = "none"
	ThreatLow      ThreatLevel = "low"
	ThreatMedium   ThreatLevel = "medium"
	ThreatHigh     ThreatLevel = "high"
	ThreatCritical ThreatLevel = "critical"
)

// LevelFor maps a score to its threat level bucket.
func (t Thresholds) LevelFor(score float64) ThreatLevel {
	switch {
	case score >= t.Block:
		return ThreatCritical
	case score >= t.Alert:
		return ThreatHigh
	case score >= t.Honeypot:
		return ThreatMedium
	case score >= t.Monitor:
		return ThreatLow
	default:
		return ThreatNone
	}
}

// ModeFor maps a score to the conversation mode it demands. Terminality of
// blocked is enforced by the state machine, not here.
func (t Thresholds) ModeFor(score float64) models.Mode {
	switch {
	case score >= t.Block:
		return models.ModeBlocked
	case score >= t.Honeypot:
		return models.ModeHoneypot
	case score >= t.Monitor:
		return models.ModeMonitoring
	default:
		return models.ModeNormal
	}
}
