package models

// EventType classifies a telemetry event emitted by an agent.
type EventType string

const (
	EventTypeMessage           EventType = "message"
	EventTypeDetection         EventType = "detection"
	EventTypeHoneypotActivated EventType = "honeypot_activated"
	EventTypeUserBlocked       EventType = "user_blocked"
	EventTypeAlert             EventType = "alert"
)

// Valid reports whether t is one of the known event types.
func (t EventType) Valid() bool {
	switch t {
	case EventTypeMessage, EventTypeDetection, EventTypeHoneypotActivated,
		EventTypeUserBlocked, EventTypeAlert:
		return true
	}
	return false
}

// Level is the severity attached to an event or alert.
type Level string

const (
	LevelInfo     Level = "info"
	LevelWarning  Level = "warning"
	LevelCritical Level = "critical"
)

// Valid reports whether l is one of the known levels.
func (l Level) Valid() bool {
	switch l {
	case LevelInfo, LevelWarning, LevelCritical:
		return true
	}
	return false
}

// ReportEvent is the wire shape an agent sends to the ingestion API.
// Zero-valued optional fields are omitted on the wire; the server applies
// defaults (event_type "message", level "info").
type ReportEvent struct {
	EventID        string           `json:"event_id,omitempty"`
	EventType      EventType        `json:"event_type,omitempty"`
	Level          Level            `json:"level,omitempty"`
	UserID         string           `json:"user_id,omitempty"`
	SessionID      string           `json:"session_id,omitempty"`
	ThreatScore    *float64         `json:"threat_score,omitempty"`
	DetectionTypes []string         `json:"detection_types,omitempty"`
	MessageContent string           `json:"message_content,omitempty"`
	AnalysisResult map[string]any   `json:"analysis_result,omitempty"`
	Metadata       map[string]any   `json:"metadata,omitempty"`
	NovelPatterns  []NovelPatternIn `json:"novel_patterns,omitempty"`
	QueuedAt       string           `json:"queued_at,omitempty"`
}

// NovelPatternIn is a candidate attack template attached to an event.
type NovelPatternIn struct {
	Text       string `json:"text"`
	AttackType string `json:"attack_type"`
}

// BatchItemResult reports the outcome of one event inside a batch.
type BatchItemResult struct {
	EventID string `json:"eventId,omitempty"`
	Status  string `json:"status"`
	Error   string `json:"error,omitempty"`
}

// BatchResult aggregates per-event outcomes for POST /api/events/batch.
type BatchResult struct {
	Processed int               `json:"processed"`
	Failed    int               `json:"failed"`
	Results   []BatchItemResult `json:"results"`
}
