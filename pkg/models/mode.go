package models

import "time"

// Mode is the agent's stance toward the current user of a conversation.
type Mode string

const (
	ModeNormal     Mode = "normal"
	ModeMonitoring Mode = "monitoring"
	ModeHoneypot   Mode = "honeypot"
	ModeBlocked    Mode = "blocked"
)

// Valid reports whether m is one of the four conversation modes.
func (m Mode) Valid() bool {
	switch m {
	case ModeNormal, ModeMonitoring, ModeHoneypot, ModeBlocked:
		return true
	}
	return false
}

// Role names for conversation turns.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ConversationTurn is one entry of a session's conversation log.
type ConversationTurn struct {
	Role        string    `json:"role"`
	Content     string    `json:"content"`
	Timestamp   time.Time `json:"timestamp"`
	Detections  []string  `json:"detections,omitempty"`
	ThreatScore float64   `json:"threat_score"`
	Mode        Mode      `json:"mode"`
	IsHoneypot  bool      `json:"is_honeypot,omitempty"`
}
