// Package events provides real-time fan-out of fleet telemetry to
// dashboard subscribers, plus cross-instance distribution over
// PostgreSQL NOTIFY/LISTEN.
//
// Every frame on the wire is a flat JSON object with a "type" field and
// a "_timestamp" field (unix milliseconds, stamped at broadcast time).
// A Broadcast(type, data) call fans out as follows:
//
//   - the frame is emitted globally, to every connected subscriber;
//   - if data carries bot_id, a copy typed "bot:{type}" goes to the
//     room "bot:{bot_id}";
//   - if data carries persona_category, a copy typed "category:{type}"
//     goes to the room "category:{persona_category}";
//   - if data carries threat_score, a "threat" frame with a "threshold"
//     field goes to each "threats:{t}" room whose floor t is at or
//     below the score;
//   - alert-prefixed types additionally go to the "alerts" room.
//
// Subscribers are WebSocket connections (dashboard) and SSE streams.
// Each one drains a bounded send queue; when a slow client falls
// behind, frames are dropped and a "connection.lagged" notice with the
// drop count precedes the next frame that fits, so the client knows to
// re-sync through the REST API.
//
// On room subscribe the hub replays recent persisted activity for that
// room (up to catchupLimit frames, oldest first). If older history
// exists beyond the window, a "catchup.overflow" frame follows.
//
// The NOTIFY channel carries processed events between ingestion
// instances. Deliveries are idempotent by event id: the hub suppresses
// duplicate broadcasts inside a short window, which also absorbs the
// echo of this instance's own publishes.
package events

import (
	"fmt"
	"strconv"
	"strings"
)

// Realtime event types pushed to dashboard subscribers. Room-scoped
// copies carry a "bot:" or "category:" prefix on top of these.
const (
	EventTypeBotRegistered  = "bot:registered"
	EventTypeBotHeartbeat   = "bot:heartbeat"
	EventTypeSessionStarted = "session:started"
	EventTypeSessionUpdated = "session:updated"
	EventTypeEventNew       = "event:new"
	EventTypeAlertNew       = "alert:new"
	EventTypeThreat         = "threat"
	EventTypeFleetStatus    = "fleet:status"
)

// NotifyChannel is the default Postgres NOTIFY channel carrying
// processed events between ingestion instances.
const NotifyChannel = "honeybot:events"

// RoomAlerts receives every elevated alert regardless of which bot
// reported the underlying event.
const RoomAlerts = "alerts"

// ThreatThresholds are the score floors with a dedicated threat room
// each. A broadcast with a threat_score fans out into every room whose
// floor is at or below the score.
var ThreatThresholds = []float64{30, 60, 80}

// BotRoom returns the room scoped to a single bot's activity.
func BotRoom(botID string) string {
	return "bot:" + botID
}

// CategoryRoom returns the room scoped to one persona category.
func CategoryRoom(category string) string {
	return "category:" + category
}

// ThreatRoom returns the room for a threat score floor.
func ThreatRoom(threshold float64) string {
	return fmt.Sprintf("threats:%d", int(threshold))
}

// ParseThreatRoom extracts the score floor from a threats room name.
// Only the floors in ThreatThresholds are recognized.
func ParseThreatRoom(room string) (float64, bool) {
	rest, ok := strings.CutPrefix(room, "threats:")
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(rest)
	if err != nil {
		return 0, false
	}
	for _, threshold := range ThreatThresholds {
		if float64(n) == threshold {
			return threshold, true
		}
	}
	return 0, false
}

// ValidRoom reports whether a client-supplied room name is one the hub
// will ever route to. Subscribing to anything else would be a silent
// black hole, so the hub rejects it up front.
func ValidRoom(room string) bool {
	switch {
	case room == RoomAlerts:
		return true
	case strings.HasPrefix(room, "bot:"):
		return len(room) > len("bot:")
	case strings.HasPrefix(room, "category:"):
		return len(room) > len("category:")
	default:
		_, ok := ParseThreatRoom(room)
		return ok
	}
}

// ClientMessage is the JSON structure for client → server WebSocket messages.
type ClientMessage struct {
	Action string `json:"action"`          // "subscribe", "unsubscribe", "catchup", "ping"
	Room   string `json:"room,omitempty"`  // room name (e.g., "bot:abc-123")
	Limit  int    `json:"limit,omitempty"` // catchup only; capped at catchupLimit
}
