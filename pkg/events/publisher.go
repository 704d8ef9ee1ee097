package events

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
)

// EventPublisher announces processed events to peer ingestion instances
// over a shared Postgres NOTIFY channel. The event row itself is already
// persisted by the event service before publish, so the publisher only
// signals: each peer's NotifyListener picks the payload up and fans it
// out to its local ConnectionManager.
//
// NOTIFY payloads are capped by PostgreSQL at 8000 bytes. Oversized
// payloads are replaced with a routing envelope carrying just the fields
// the hub needs; subscribers fetch the full event from the REST API.
type EventPublisher struct {
	db      *sql.DB
	channel string
}

// NewEventPublisher creates a new EventPublisher on the given channel
// (NotifyChannel in production). The db parameter should be the *sql.DB
// from database.Client.DB().
func NewEventPublisher(db *sql.DB, channel string) *EventPublisher {
	if channel == "" {
		channel = NotifyChannel
	}
	return &EventPublisher{db: db, channel: channel}
}

// PublishEvent broadcasts a sanitized event payload to every listening
// instance, this one included. The hub's dedup window absorbs the local
// echo. Payloads without a type are sent as event:new.
func (p *EventPublisher) PublishEvent(ctx context.Context, payload map[string]any) error {
	envelope := make(map[string]any, len(payload)+1)
	for k, v := range payload {
		envelope[k] = v
	}
	if _, ok := envelope["type"]; !ok {
		envelope["type"] = EventTypeEventNew
	}

	payloadJSON, err := json.Marshal(envelope)
	if err != nil {
		return fmt.Errorf("failed to marshal notify payload: %w", err)
	}

	notifyPayload, err := truncateIfNeeded(string(payloadJSON))
	if err != nil {
		return err
	}

	_, err = p.db.ExecContext(ctx, "SELECT pg_notify($1, $2)", p.channel, notifyPayload)
	if err != nil {
		return fmt.Errorf("pg_notify failed: %w", err)
	}
	return nil
}

// truncateIfNeeded returns the payload string as-is if it fits within
// PostgreSQL's 8000-byte NOTIFY limit, otherwise returns a minimal
// truncation envelope with only routing fields.
func truncateIfNeeded(payloadStr string) (string, error) {
	if len(payloadStr) <= 7900 {
		return payloadStr, nil
	}
	return buildTruncatedPayload([]byte(payloadStr))
}

// buildTruncatedPayload creates a minimal truncation envelope from the
// full JSON payload bytes, keeping only what the hub needs to route the
// frame and what the client needs to fetch the complete event.
func buildTruncatedPayload(payloadBytes []byte) (string, error) {
	var routing struct {
		Type        string   `json:"type"`
		EventID     string   `json:"event_id"`
		BotID       string   `json:"bot_id"`
		SessionID   string   `json:"session_id"`
		ThreatScore *float64 `json:"threat_score"`
	}
	if err := json.Unmarshal(payloadBytes, &routing); err != nil {
		return "", fmt.Errorf("failed to extract routing fields for truncation: %w", err)
	}

	truncated := map[string]any{
		"type":      routing.Type,
		"event_id":  routing.EventID,
		"bot_id":    routing.BotID,
		"truncated": true,
	}
	if routing.SessionID != "" {
		truncated["session_id"] = routing.SessionID
	}
	if routing.ThreatScore != nil {
		truncated["threat_score"] = *routing.ThreatScore
	}

	truncBytes, err := json.Marshal(truncated)
	if err != nil {
		return "", fmt.Errorf("failed to marshal truncated payload: %w", err)
	}
	return string(truncBytes), nil
}
