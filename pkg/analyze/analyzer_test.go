package analyze

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/honeybotlabs/honeybot/pkg/detect"
	"github.com/honeybotlabs/honeybot/pkg/llm"
)

type fakeModel struct {
	response string
	err      error
	lastReq  llm.Request
}

func (f *fakeModel) Generate(_ context.Context, req llm.Request) (string, error) {
	f.lastReq = req
	return f.response, f.err
}

func TestAnalyzeParsesVerdict(t *testing.T) {
	tests := []struct {
		name     string
		response string
		want     *Result
	}{
		{
			name:     "clean JSON",
			response: `{"attack": true, "confidence": 0.9, "types": ["prompt_injection"], "suggested_response": "Hmm, let me look into that."}`,
			want: &Result{
				Attack:            true,
				Confidence:        0.9,
				Types:             []string{"prompt_injection"},
				SuggestedResponse: "Hmm, let me look into that.",
			},
		},
		{
			name:     "JSON wrapped in prose",
			response: "Sure! Here is my analysis:\n{\"attack\": false, \"confidence\": 0.2}\nLet me know if you need more.",
			want:     &Result{Attack: false, Confidence: 0.2},
		},
		{
			name:     "confidence clamped and types normalized",
			response: `{"attack": true, "confidence": 1.7, "types": [" Social_Engineering "]}`,
			want:     &Result{Attack: true, Confidence: 1, Types: []string{"social_engineering"}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewAnalyzer(&fakeModel{response: tt.response})
			got := a.Analyze(context.Background(), "some message", nil)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAnalyzeFailuresReturnNil(t *testing.T) {
	tests := []struct {
		name  string
		model *fakeModel
	}{
		{"model error", &fakeModel{err: errors.New("connection refused")}},
		{"no JSON at all", &fakeModel{response: "I cannot help with that."}},
		{"malformed JSON", &fakeModel{response: `{"attack": maybe}`}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewAnalyzer(tt.model)
			assert.Nil(t, a.Analyze(context.Background(), "msg", nil))
		})
	}
}

func TestNilAnalyzerIsSafe(t *testing.T) {
	var a *Analyzer
	assert.Nil(t, a.Analyze(context.Background(), "msg", nil))
	assert.Nil(t, NewAnalyzer(nil))
}

func TestAnalyzePromptCarriesHints(t *testing.T) {
	m := &fakeModel{response: `{"attack": false, "confidence": 0.1}`}
	a := NewAnalyzer(m)

	a.Analyze(context.Background(), "the message under review", []detect.Finding{
		{Type: detect.TypePromptInjection, Confidence: 0.9},
		{Type: detect.TypeTrust, Confidence: 0.5},
	})

	assert.Contains(t, m.lastReq.Prompt, "prompt_injection, trust")
	assert.Contains(t, m.lastReq.Prompt, "the message under review")
	assert.InDelta(t, analysisTemperature, m.lastReq.Temperature, 0.001)
}

func TestMergeFindings(t *testing.T) {
	base := []detect.Finding{{Type: detect.TypePromptInjection, Confidence: 0.9}}

	t.Run("adds new types above the floor", func(t *testing.T) {
		got := MergeFindings(base, &Result{
			Attack:     true,
			Confidence: 0.8,
			Types:      []string{detect.TypePromptInjection, detect.TypeDataExfiltration},
		})
		require.Len(t, got, 2)
		assert.Equal(t, detect.TypeDataExfiltration, got[1].Type)
		assert.InDelta(t, 0.8, got[1].Confidence, 0.001)
		assert.Equal(t, []string{"model_analysis"}, got[1].Patterns)
	})

	t.Run("nil result is a no-op", func(t *testing.T) {
		assert.Equal(t, base, MergeFindings(base, nil))
	})

	t.Run("non-attack verdict is a no-op", func(t *testing.T) {
		got := MergeFindings(base, &Result{Attack: false, Confidence: 0.9, Types: []string{"evasion"}})
		assert.Len(t, got, 1)
	})

	t.Run("low confidence is a no-op", func(t *testing.T) {
		got := MergeFindings(base, &Result{Attack: true, Confidence: 0.3, Types: []string{"evasion"}})
		assert.Len(t, got, 1)
	})
}
