// Package alert formats threat alerts and fans them out to the configured
// sinks. One failing sink never suppresses the others.
package alert

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/honeybotlabs/honeybot/pkg/detect"
	"github.com/honeybotlabs/honeybot/pkg/models"
)

// Alert is the raw input from the coordinator.
type Alert struct {
	Level        models.Level
	UserID       string
	SessionID    string
	Score        float64
	Detections   []detect.Finding
	Conversation []models.ConversationTurn
}

// DetectionSummary is one finding reduced to what an alert reader needs.
type DetectionSummary struct {
	Type          string `json:"type"`
	ConfidencePct int    `json:"confidence"`
	PatternCount  int    `json:"patterns"`
}

// Record is the formatted alert delivered to sinks and kept in history.
type Record struct {
	Title        string                    `json:"title"`
	Summary      string                    `json:"summary"`
	Timestamp    time.Time                 `json:"timestamp"`
	Level        models.Level              `json:"level"`
	UserID       string                    `json:"userId"`
	SessionID    string                    `json:"sessionId,omitempty"`
	Score        float64                   `json:"score"`
	Detections   []DetectionSummary        `json:"detections"`
	Conversation []models.ConversationTurn `json:"conversation,omitempty"`
}

var levelTitles = map[models.Level]string{
	models.LevelCritical: "Critical threat detected",
	models.LevelWarning:  "Suspicious activity detected",
	models.LevelInfo:     "Activity notice",
}

// Format turns a raw alert into the record sinks receive.
func Format(a Alert) Record {
	title, ok := levelTitles[a.Level]
	if !ok {
		title = "Activity notice"
	}

	detections := make([]DetectionSummary, 0, len(a.Detections))
	types := make([]string, 0, len(a.Detections))
	for _, f := range a.Detections {
		detections = append(detections, DetectionSummary{
			Type:          f.Type,
			ConfidencePct: int(math.Round(f.Confidence * 100)),
			PatternCount:  len(f.Patterns),
		})
		types = append(types, f.Type)
	}

	summary := fmt.Sprintf("User %s reached threat score %.1f", a.UserID, a.Score)
	if len(types) > 0 {
		summary += fmt.Sprintf(" with %d detection(s): %s", len(types), strings.Join(types, ", "))
	}

	return Record{
		Title:        title,
		Summary:      summary,
		Timestamp:    time.Now().UTC(),
		Level:        a.Level,
		UserID:       a.UserID,
		SessionID:    a.SessionID,
		Score:        a.Score,
		Detections:   detections,
		Conversation: a.Conversation,
	}
}

// Text renders the record as plain text for sinks without structured
// payloads (telegram, email, slack).
func (r Record) Text() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n%s\n", r.Title, r.Summary)
	fmt.Fprintf(&b, "Time: %s\n", r.Timestamp.Format(time.RFC3339))
	for _, d := range r.Detections {
		fmt.Fprintf(&b, "- %s: %d%% confidence, %d pattern(s)\n", d.Type, d.ConfidencePct, d.PatternCount)
	}
	return b.String()
}
