package events

import (
	"context"
	"strings"

	"github.com/honeybotlabs/honeybot/ent"
	"github.com/honeybotlabs/honeybot/pkg/models"
	"github.com/honeybotlabs/honeybot/pkg/services"
)

// eventLister is the slice of the event service the adapter reads from.
type eventLister interface {
	ListEvents(ctx context.Context, f models.EventFilters) ([]*ent.Event, int, error)
}

// alertLister is the slice of the alert service the adapter reads from.
type alertLister interface {
	List(ctx context.Context, level string, acknowledged *bool, limit, offset int) ([]*ent.Alert, int, error)
}

// HistoryAdapter answers room catch-up queries from the persisted
// telemetry tables, implementing RoomHistory. Replayed frames mirror the
// live broadcast shape for the room, except that _timestamp carries the
// original persistence time rather than the replay time.
type HistoryAdapter struct {
	events eventLister
	alerts alertLister
}

// NewHistoryAdapter creates a RoomHistory backed by the event and alert
// services.
func NewHistoryAdapter(events eventLister, alerts alertLister) *HistoryAdapter {
	return &HistoryAdapter{events: events, alerts: alerts}
}

// RecentRoomEvents returns up to limit frames of recent room activity in
// chronological order.
func (a *HistoryAdapter) RecentRoomEvents(ctx context.Context, room string, limit int) ([]map[string]any, error) {
	switch {
	case room == RoomAlerts:
		return a.recentAlerts(ctx, limit)
	case strings.HasPrefix(room, "bot:"):
		botID := strings.TrimPrefix(room, "bot:")
		return a.recentEvents(ctx, models.EventFilters{BotID: botID, Limit: limit}, "bot:"+EventTypeEventNew, nil)
	default:
		if threshold, ok := ParseThreatRoom(room); ok {
			return a.recentEvents(ctx,
				models.EventFilters{MinScore: &threshold, Limit: limit},
				EventTypeThreat,
				map[string]any{"threshold": threshold})
		}
		// Category rooms have no per-event history to replay: events
		// record the bot, not its persona category.
		return nil, nil
	}
}

// recentEvents loads matching events (the service returns newest first)
// and rebuilds them as room frames, oldest first.
func (a *HistoryAdapter) recentEvents(ctx context.Context, filters models.EventFilters, frameType string, extra map[string]any) ([]map[string]any, error) {
	evts, _, err := a.events.ListEvents(ctx, filters)
	if err != nil {
		return nil, err
	}

	frames := make([]map[string]any, 0, len(evts))
	for i := len(evts) - 1; i >= 0; i-- {
		evt := evts[i]
		frame := services.SanitizedEventPayload(evt)
		for k, v := range extra {
			frame[k] = v
		}
		frame["type"] = frameType
		frame["_timestamp"] = evt.CreatedAt.UnixMilli()
		frames = append(frames, frame)
	}
	return frames, nil
}

// recentAlerts rebuilds the newest alerts as alert:new frames, oldest
// first.
func (a *HistoryAdapter) recentAlerts(ctx context.Context, limit int) ([]map[string]any, error) {
	alerts, _, err := a.alerts.List(ctx, "", nil, limit, 0)
	if err != nil {
		return nil, err
	}

	frames := make([]map[string]any, 0, len(alerts))
	for i := len(alerts) - 1; i >= 0; i-- {
		al := alerts[i]
		frame := map[string]any{
			"type":         EventTypeAlertNew,
			"alert_id":     al.ID,
			"level":        string(al.Level),
			"title":        al.Title,
			"summary":      al.Summary,
			"acknowledged": al.Acknowledged,
			"_timestamp":   al.CreatedAt.UnixMilli(),
		}
		if al.BotID != "" {
			frame["bot_id"] = al.BotID
		}
		if al.EventID != "" {
			frame["event_id"] = al.EventID
		}
		if al.SessionID != "" {
			frame["session_id"] = al.SessionID
		}
		frames = append(frames, frame)
	}
	return frames, nil
}
