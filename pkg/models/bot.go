package models

// BotStatus is the fleet-visible state of an agent.
type BotStatus string

const (
	BotStatusOnline   BotStatus = "online"
	BotStatusOffline  BotStatus = "offline"
	BotStatusDegraded BotStatus = "degraded"
)

// Valid reports whether s is one of the known bot statuses.
func (s BotStatus) Valid() bool {
	switch s {
	case BotStatusOnline, BotStatusOffline, BotStatusDegraded:
		return true
	}
	return false
}

// RegisterPayload is sent by an agent on startup to announce itself.
type RegisterPayload struct {
	BotID           string         `json:"bot_id"`
	PersonaCategory string         `json:"persona_category,omitempty"`
	PersonaName     string         `json:"persona_name,omitempty"`
	CompanyName     string         `json:"company_name,omitempty"`
	Version         string         `json:"version,omitempty"`
	ConfigHash      string         `json:"config_hash,omitempty"`
	Metadata        map[string]any `json:"metadata,omitempty"`
}

// HeartbeatPayload is posted by the reporter every heartbeat interval.
type HeartbeatPayload struct {
	Status         BotStatus `json:"status"`
	ActiveSessions int       `json:"active_sessions"`
	MemoryUsage    uint64    `json:"memory_usage"`
	Version        string    `json:"version"`
}
