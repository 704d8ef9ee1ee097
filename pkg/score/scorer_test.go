package score

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/honeybotlabs/honeybot/pkg/detect"
)

func mediumScorer(t *testing.T) *Scorer {
	t.Helper()
	th, err := Preset(SensitivityMedium)
	require.NoError(t, err)
	return NewScorer(th)
}

func TestScoreSingleTurn(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	s := mediumScorer(t)

	tests := []struct {
		name      string
		view      View
		findings  []detect.Finding
		wantScore float64
		wantLevel ThreatLevel
	}{
		{
			name: "injection plus credential request combines",
			view: View{RecentTimes: []time.Time{now}},
			findings: []detect.Finding{
				{Type: detect.TypePromptInjection, Confidence: 0.9},
				{Type: detect.TypeDataExfiltration, Confidence: 0.85},
			},
			// (30*0.9 + 35*0.85) * 1.3
			wantScore: 73.775,
			wantLevel: ThreatHigh,
		},
		{
			name: "exfiltration with evasion stays below honeypot band",
			view: View{RecentTimes: []time.Time{now}},
			findings: []detect.Finding{
				{Type: detect.TypeDataExfiltration, Confidence: 0.85},
				{Type: detect.TypeEvasion, Confidence: 0.75},
			},
			// (35*0.85 + 20*0.75) * 1.3
			wantScore: 58.175,
			wantLevel: ThreatLow,
		},
		{
			name: "single type skips combined multiplier",
			view: View{RecentTimes: []time.Time{now}},
			findings: []detect.Finding{
				{Type: detect.TypeSocialEngineering, Confidence: 0.8},
			},
			wantScore: 16,
			wantLevel: ThreatNone,
		},
		{
			name: "two findings of one type are not a combination",
			view: View{RecentTimes: []time.Time{now}},
			findings: []detect.Finding{
				{Type: detect.TypeSocialEngineering, Confidence: 0.8},
				{Type: detect.TypeSocialEngineering, Confidence: 0.5},
			},
			wantScore: 26,
			wantLevel: ThreatNone,
		},
		{
			name: "repeated type draws escalation multiplier",
			view: View{
				RecentTimes: []time.Time{now},
				PriorTypes:  []string{detect.TypeSocialEngineering},
			},
			findings: []detect.Finding{
				{Type: detect.TypeSocialEngineering, Confidence: 0.8},
			},
			// 20*0.8*1.5
			wantScore: 24,
			wantLevel: ThreatNone,
		},
		{
			name: "unknown type falls back to default base",
			view: View{RecentTimes: []time.Time{now}},
			findings: []detect.Finding{
				{Type: "novel_attack", Confidence: 1.0},
			},
			wantScore: 20,
			wantLevel: ThreatNone,
		},
		{
			name:      "benign turn leaves score untouched",
			view:      View{Score: 42, LastMessageAt: now.Add(-time.Minute), RecentTimes: []time.Time{now}},
			findings:  nil,
			wantScore: 42,
			wantLevel: ThreatLow,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.Score(tt.view, tt.findings, now)
			assert.InDelta(t, tt.wantScore, got.Score, 0.01)
			assert.Equal(t, tt.wantLevel, got.Level)
			assert.Equal(t, tt.view.Score, got.PreviousScore)
		})
	}
}

func TestScoreDecay(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	s := mediumScorer(t)

	tests := []struct {
		name        string
		idle        time.Duration
		wantScore   float64
		wantPeriods int
	}{
		{"under one interval", 4 * time.Minute, 50, 0},
		{"one interval", 6 * time.Minute, 45, 1},
		{"two intervals", 12 * time.Minute, 40.5, 2},
		{"many intervals", time.Hour, 50 * 0.9 * 0.9 * 0.9 * 0.9 * 0.9 * 0.9 * 0.9 * 0.9 * 0.9 * 0.9 * 0.9 * 0.9, 12},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view := View{
				Score:         50,
				LastMessageAt: base,
				RecentTimes:   []time.Time{base.Add(tt.idle)},
			}
			got := s.Score(view, nil, base.Add(tt.idle))
			assert.InDelta(t, tt.wantScore, got.Score, 0.01)
			assert.Equal(t, tt.wantPeriods, got.Breakdown.DecayPeriods)
			assert.InDelta(t, tt.wantScore, got.Breakdown.Decayed, 0.01)
		})
	}

	t.Run("first turn never decays", func(t *testing.T) {
		got := s.Score(View{Score: 50, RecentTimes: []time.Time{base}}, nil, base)
		assert.InDelta(t, 50.0, got.Score, 0.01)
		assert.Zero(t, got.Breakdown.DecayPeriods)
	})
}

func TestScoreRapidFire(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	s := mediumScorer(t)

	arrivals := func(gaps ...time.Duration) []time.Time {
		out := []time.Time{base}
		cur := base
		for _, g := range gaps {
			cur = cur.Add(g)
			out = append(out, cur)
		}
		return out
	}

	tests := []struct {
		name      string
		times     []time.Time
		wantBonus float64
	}{
		{"no history", arrivals(), 0},
		{"one fast pair", arrivals(time.Second), 0},
		{"two fast pairs", arrivals(time.Second, time.Second), 10},
		{"three fast pairs", arrivals(time.Second, time.Second, time.Second), 10},
		{"four fast pairs", arrivals(time.Second, time.Second, time.Second, time.Second), 15},
		{"separated fast pairs still count", arrivals(time.Second, 5*time.Second, time.Second), 10},
		{"two second gap is not rapid", arrivals(2*time.Second, 2*time.Second), 0},
		{
			"window ignores old pairs",
			append(
				arrivals(time.Second, time.Second, time.Second),
				// ten more slow arrivals push the fast ones out of the window
				arrivals(time.Hour, time.Hour, time.Hour, time.Hour, time.Hour, time.Hour, time.Hour, time.Hour, time.Hour, time.Hour)[1:]...,
			),
			0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.Score(View{RecentTimes: tt.times}, nil, tt.times[len(tt.times)-1])
			assert.InDelta(t, tt.wantBonus, got.Breakdown.RapidFireBonus, 0.01)
			assert.InDelta(t, tt.wantBonus, got.Score, 0.01)
		})
	}
}

// Four machine-speed messages with no findings must still accumulate at
// least fifteen points across the burst.
func TestScoreRapidFireAccumulates(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	s := mediumScorer(t)

	var (
		score float64
		last  time.Time
		times []time.Time
	)
	for i := 0; i < 4; i++ {
		now := base.Add(time.Duration(i) * time.Second)
		times = append(times, now)
		got := s.Score(View{Score: score, LastMessageAt: last, RecentTimes: times}, nil, now)
		score = got.Score
		last = now
	}
	assert.GreaterOrEqual(t, score, 15.0)
}

func TestScoreCap(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	s := mediumScorer(t)

	got := s.Score(View{
		Score:         95,
		LastMessageAt: now.Add(-time.Second),
		RecentTimes:   []time.Time{now},
		PriorTypes:    []string{detect.TypePrivilegeEscalation},
	}, []detect.Finding{
		{Type: detect.TypePrivilegeEscalation, Confidence: 1.0},
		{Type: detect.TypePromptInjection, Confidence: 1.0},
	}, now)

	assert.Equal(t, 100.0, got.Score)
	assert.Equal(t, ThreatCritical, got.Level)
	// Added reflects the capped gain, not the raw contribution sum.
	assert.InDelta(t, 5.0, got.Added, 0.01)
}

func TestScoreBreakdownRecordsContributions(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	s := mediumScorer(t)

	got := s.Score(View{
		RecentTimes: []time.Time{now},
		PriorTypes:  []string{detect.TypePromptInjection},
	}, []detect.Finding{
		{Type: detect.TypePromptInjection, Confidence: 0.9},
		{Type: detect.TypeTrust, Confidence: 0.5},
	}, now)

	require.Len(t, got.Breakdown.Findings, 2)

	first := got.Breakdown.Findings[0]
	assert.Equal(t, detect.TypePromptInjection, first.Type)
	assert.True(t, first.Repeat)
	assert.InDelta(t, 30*0.9*1.5, first.Contribution, 0.01)

	second := got.Breakdown.Findings[1]
	assert.Equal(t, detect.TypeTrust, second.Type)
	assert.False(t, second.Repeat)
	assert.InDelta(t, 20*0.5, second.Contribution, 0.01)

	assert.InDelta(t, 1.3, got.Breakdown.CombinedMultiplier, 0.01)
	assert.InDelta(t, (30*0.9*1.5+20*0.5)*1.3, got.Score, 0.01)
}
