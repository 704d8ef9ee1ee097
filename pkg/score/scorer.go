// Package score turns per-turn detection findings and conversation history
// into a cumulative threat score with a bounded range and time decay.
package score

import (
	"math"
	"time"

	"github.com/honeybotlabs/honeybot/pkg/detect"
)

const (
	// DecayInterval is the idle period after which the cumulative score
	// decays by one factor step.
	DecayInterval = 5 * time.Minute

	decayFactor = 0.9
	maxScore    = 100.0

	repeatMultiplier   = 1.5
	combinedMultiplier = 1.3

	rapidFireWindow = 10
	rapidFireGap    = 2 * time.Second
)

// baseScores weight each detection type before confidence scaling.
var baseScores = map[string]float64{
	detect.TypePromptInjection:     30,
	detect.TypeSocialEngineering:   20,
	detect.TypePrivilegeEscalation: 40,
	detect.TypeDataExfiltration:    35,
}

// defaultBaseScore applies to types without an explicit weight, such as
// evasion, trust and analyzer-supplied types.
const defaultBaseScore = 20.0

// View is the read-only slice of session state the scorer consumes. The
// caller owns the underlying state; the scorer keeps no reference to it.
type View struct {
	// Score is the cumulative score before this turn.
	Score float64
	// LastMessageAt is the previous turn's arrival time. Zero on the
	// first turn, which disables decay.
	LastMessageAt time.Time
	// RecentTimes holds up to the last ten message arrival times, oldest
	// first, including the current turn.
	RecentTimes []time.Time
	// PriorTypes lists detection types recorded before this turn.
	PriorTypes []string
}

// FindingScore is one finding's contribution in the breakdown.
type FindingScore struct {
	Type         string  `json:"type"`
	Base         float64 `json:"base"`
	Confidence   float64 `json:"confidence"`
	Repeat       bool    `json:"repeat,omitempty"`
	Contribution float64 `json:"contribution"`
}

// Breakdown explains how a turn's score was computed.
type Breakdown struct {
	Decayed            float64        `json:"decayed"`
	DecayPeriods       int            `json:"decay_periods,omitempty"`
	Findings           []FindingScore `json:"findings,omitempty"`
	CombinedMultiplier float64        `json:"combined_multiplier,omitempty"`
	RapidFireBonus     float64        `json:"rapid_fire_bonus,omitempty"`
}

// Result is the scored outcome of one turn.
type Result struct {
	Score         float64     `json:"score"`
	Level         ThreatLevel `json:"level"`
	Added         float64     `json:"added"`
	PreviousScore float64     `json:"previous_score"`
	Breakdown     Breakdown   `json:"breakdown"`
}

// Scorer combines findings with session history into a cumulative score.
// Stateless and safe for concurrent use.
type Scorer struct {
	thresholds Thresholds
}

// NewScorer creates a scorer bound to a validated threshold set.
func NewScorer(thresholds Thresholds) *Scorer {
	return &Scorer{thresholds: thresholds}
}

// Thresholds returns the threshold set the scorer classifies against.
func (s *Scorer) Thresholds() Thresholds {
	return s.thresholds
}

// Score computes the new cumulative score for one turn. The result never
// leaves the [0, 100] range.
func (s *Scorer) Score(view View, findings []detect.Finding, now time.Time) Result {
	decayed, periods := applyDecay(view.Score, view.LastMessageAt, now)

	bd := Breakdown{Decayed: decayed, DecayPeriods: periods}

	prior := make(map[string]bool, len(view.PriorTypes))
	for _, typ := range view.PriorTypes {
		prior[typ] = true
	}

	distinct := make(map[string]bool, len(findings))
	var added float64
	for _, f := range findings {
		base, ok := baseScores[f.Type]
		if !ok {
			base = defaultBaseScore
		}
		contribution := base * f.Confidence
		repeat := prior[f.Type]
		if repeat {
			contribution *= repeatMultiplier
		}
		distinct[f.Type] = true
		bd.Findings = append(bd.Findings, FindingScore{
			Type:         f.Type,
			Base:         base,
			Confidence:   f.Confidence,
			Repeat:       repeat,
			Contribution: contribution,
		})
		added += contribution
	}
	if len(distinct) >= 2 {
		added *= combinedMultiplier
		bd.CombinedMultiplier = combinedMultiplier
	}

	if bonus := rapidFireBonus(view.RecentTimes); bonus > 0 {
		added += bonus
		bd.RapidFireBonus = bonus
	}

	total := decayed + added
	if total > maxScore {
		total = maxScore
	}
	if total < 0 {
		total = 0
	}

	return Result{
		Score:         total,
		Level:         s.thresholds.LevelFor(total),
		Added:         total - decayed,
		PreviousScore: view.Score,
		Breakdown:     bd,
	}
}

// applyDecay reduces the prior score by the decay factor once per full idle
// interval between the previous message and now.
func applyDecay(score float64, last, now time.Time) (float64, int) {
	if score == 0 || last.IsZero() || !now.After(last) {
		return score, 0
	}
	periods := int(now.Sub(last) / DecayInterval)
	if periods <= 0 {
		return score, 0
	}
	return score * math.Pow(decayFactor, float64(periods)), periods
}

// rapidFireBonus counts consecutive sub-two-second gaps within the recent
// arrival window and converts them into a flat bonus.
func rapidFireBonus(times []time.Time) float64 {
	if len(times) > rapidFireWindow {
		times = times[len(times)-rapidFireWindow:]
	}
	pairs := 0
	for i := 1; i < len(times); i++ {
		if times[i].Sub(times[i-1]) < rapidFireGap {
			pairs++
		}
	}
	switch {
	case pairs >= 4:
		return 15
	case pairs >= 2:
		return 10
	default:
		return 0
	}
}
