package models

import "time"

// SessionUpsert is the wire shape for creating or patching a hive session
// row. Creation is idempotent on session_id; on update, nil fields are left
// untouched (COALESCE semantics) and metadata deep-merges.
type SessionUpsert struct {
	SessionID         string           `json:"session_id"`
	BotID             string           `json:"bot_id,omitempty"`
	UserID            string           `json:"user_id,omitempty"`
	StartedAt         *time.Time       `json:"started_at,omitempty"`
	EndedAt           *time.Time       `json:"ended_at,omitempty"`
	FinalMode         Mode             `json:"final_mode,omitempty"`
	FinalScore        *float64         `json:"final_score,omitempty"`
	MaxScore          *float64         `json:"max_score,omitempty"`
	TotalMessages     *int             `json:"total_messages,omitempty"`
	DetectionCount    *int             `json:"detection_count,omitempty"`
	HoneypotResponses *int             `json:"honeypot_responses,omitempty"`
	AttackTypes       []string         `json:"attack_types,omitempty"`
	ConversationLog   []map[string]any `json:"conversation_log,omitempty"`
	Metadata          map[string]any   `json:"metadata,omitempty"`
}

// SessionFilters narrows hive session listings.
type SessionFilters struct {
	BotID      string `json:"bot_id,omitempty"`
	UserID     string `json:"user_id,omitempty"`
	ActiveOnly bool   `json:"active_only,omitempty"`
	Limit      int    `json:"limit,omitempty"`
	Offset     int    `json:"offset,omitempty"`
}

// EventFilters narrows event queries on GET /api/events.
type EventFilters struct {
	BotID         string     `json:"bot_id,omitempty"`
	UserID        string     `json:"user_id,omitempty"`
	SessionID     string     `json:"session_id,omitempty"`
	EventType     string     `json:"event_type,omitempty"`
	Level         string     `json:"level,omitempty"`
	DetectionType string     `json:"detection_type,omitempty"`
	MinScore      *float64   `json:"min_score,omitempty"`
	From          *time.Time `json:"from,omitempty"`
	To            *time.Time `json:"to,omitempty"`
	Limit         int        `json:"limit,omitempty"`
	Offset        int        `json:"offset,omitempty"`
}
