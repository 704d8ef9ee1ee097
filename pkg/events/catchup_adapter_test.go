package events

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/honeybotlabs/honeybot/ent"
	"github.com/honeybotlabs/honeybot/ent/alert"
	"github.com/honeybotlabs/honeybot/ent/event"
	"github.com/honeybotlabs/honeybot/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockEventLister implements eventLister, recording the filters it saw.
type mockEventLister struct {
	events  []*ent.Event
	err     error
	filters models.EventFilters
}

func (m *mockEventLister) ListEvents(_ context.Context, f models.EventFilters) ([]*ent.Event, int, error) {
	m.filters = f
	if m.err != nil {
		return nil, 0, m.err
	}
	return m.events, len(m.events), nil
}

// mockAlertLister implements alertLister, recording the limit it saw.
type mockAlertLister struct {
	alerts []*ent.Alert
	err    error
	limit  int
}

func (m *mockAlertLister) List(_ context.Context, _ string, _ *bool, limit, _ int) ([]*ent.Alert, int, error) {
	m.limit = limit
	if m.err != nil {
		return nil, 0, m.err
	}
	return m.alerts, len(m.alerts), nil
}

func TestHistoryAdapter_BotRoom(t *testing.T) {
	older := time.Date(2026, 2, 10, 9, 0, 0, 0, time.UTC)
	newer := older.Add(time.Minute)
	score := 45.0

	// The event service returns newest first.
	lister := &mockEventLister{events: []*ent.Event{
		{
			ID:             "evt-2",
			BotID:          "bot-1",
			EventType:      event.EventTypeDetection,
			Level:          event.LevelWarning,
			ThreatScore:    &score,
			DetectionTypes: []string{"prompt_injection"},
			MessageHash:    "a3f5",
			CreatedAt:      newer,
		},
		{
			ID:        "evt-1",
			BotID:     "bot-1",
			EventType: event.EventTypeMessage,
			Level:     event.LevelInfo,
			CreatedAt: older,
		},
	}}

	adapter := NewHistoryAdapter(lister, &mockAlertLister{})
	frames, err := adapter.RecentRoomEvents(context.Background(), "bot:bot-1", 50)
	require.NoError(t, err)
	require.Len(t, frames, 2)

	// Frames come back oldest first, shaped like live room copies.
	assert.Equal(t, "evt-1", frames[0]["event_id"])
	assert.Equal(t, "bot:"+EventTypeEventNew, frames[0]["type"])
	assert.Equal(t, older.UnixMilli(), frames[0]["_timestamp"])

	assert.Equal(t, "evt-2", frames[1]["event_id"])
	assert.Equal(t, "detection", frames[1]["event_type"])
	assert.Equal(t, score, frames[1]["threat_score"])
	assert.Equal(t, "a3f5", frames[1]["message_hash"])
	assert.NotContains(t, frames[1], "message_content")

	// The room name drives the query filter.
	assert.Equal(t, "bot-1", lister.filters.BotID)
	assert.Equal(t, 50, lister.filters.Limit)
}

func TestHistoryAdapter_ThreatsRoom(t *testing.T) {
	score := 85.0
	lister := &mockEventLister{events: []*ent.Event{
		{
			ID:          "evt-hot",
			BotID:       "bot-2",
			EventType:   event.EventTypeDetection,
			Level:       event.LevelCritical,
			ThreatScore: &score,
			CreatedAt:   time.Date(2026, 2, 10, 9, 0, 0, 0, time.UTC),
		},
	}}

	adapter := NewHistoryAdapter(lister, &mockAlertLister{})
	frames, err := adapter.RecentRoomEvents(context.Background(), "threats:60", 10)
	require.NoError(t, err)
	require.Len(t, frames, 1)

	// Replayed threat frames carry the room's floor like live ones do.
	assert.Equal(t, EventTypeThreat, frames[0]["type"])
	assert.Equal(t, float64(60), frames[0]["threshold"])
	assert.Equal(t, "evt-hot", frames[0]["event_id"])

	require.NotNil(t, lister.filters.MinScore)
	assert.Equal(t, float64(60), *lister.filters.MinScore)
}

func TestHistoryAdapter_AlertsRoom(t *testing.T) {
	older := time.Date(2026, 2, 10, 9, 0, 0, 0, time.UTC)
	newer := older.Add(time.Minute)

	alerts := &mockAlertLister{alerts: []*ent.Alert{
		{
			ID:        "al-2",
			Level:     alert.LevelCritical,
			Title:     "Critical event from bot-1",
			Summary:   "user_blocked",
			BotID:     "bot-1",
			EventID:   "evt-9",
			SessionID: "sess-3",
			CreatedAt: newer,
		},
		{
			ID:        "al-1",
			Level:     alert.LevelWarning,
			Title:     "Warning event",
			Summary:   "detection",
			CreatedAt: older,
		},
	}}

	adapter := NewHistoryAdapter(&mockEventLister{}, alerts)
	frames, err := adapter.RecentRoomEvents(context.Background(), RoomAlerts, 25)
	require.NoError(t, err)
	require.Len(t, frames, 2)
	assert.Equal(t, 25, alerts.limit)

	// Oldest first; empty association fields are omitted.
	assert.Equal(t, EventTypeAlertNew, frames[0]["type"])
	assert.Equal(t, "al-1", frames[0]["alert_id"])
	assert.Equal(t, "warning", frames[0]["level"])
	assert.Equal(t, false, frames[0]["acknowledged"])
	assert.Equal(t, older.UnixMilli(), frames[0]["_timestamp"])
	assert.NotContains(t, frames[0], "bot_id")
	assert.NotContains(t, frames[0], "event_id")

	assert.Equal(t, "al-2", frames[1]["alert_id"])
	assert.Equal(t, "bot-1", frames[1]["bot_id"])
	assert.Equal(t, "evt-9", frames[1]["event_id"])
	assert.Equal(t, "sess-3", frames[1]["session_id"])
}

func TestHistoryAdapter_CategoryRoomHasNoHistory(t *testing.T) {
	// Category membership isn't recorded on events, so there is nothing
	// to replay. Nil listers prove no query is made.
	adapter := NewHistoryAdapter(nil, nil)

	frames, err := adapter.RecentRoomEvents(context.Background(), "category:crypto_trader", 10)
	require.NoError(t, err)
	assert.Empty(t, frames)

	// Unrecognized rooms behave the same way.
	frames, err = adapter.RecentRoomEvents(context.Background(), "fleet", 10)
	require.NoError(t, err)
	assert.Empty(t, frames)
}

func TestHistoryAdapter_EmptyHistory(t *testing.T) {
	adapter := NewHistoryAdapter(&mockEventLister{}, &mockAlertLister{})

	frames, err := adapter.RecentRoomEvents(context.Background(), "bot:quiet", 10)
	require.NoError(t, err)
	assert.Empty(t, frames)
}

func TestHistoryAdapter_Error(t *testing.T) {
	t.Run("event query failure", func(t *testing.T) {
		adapter := NewHistoryAdapter(&mockEventLister{err: fmt.Errorf("database connection lost")}, &mockAlertLister{})

		frames, err := adapter.RecentRoomEvents(context.Background(), "bot:bot-1", 10)
		assert.Error(t, err)
		assert.Nil(t, frames)
		assert.Contains(t, err.Error(), "database connection lost")
	})

	t.Run("alert query failure", func(t *testing.T) {
		adapter := NewHistoryAdapter(&mockEventLister{}, &mockAlertLister{err: fmt.Errorf("database connection lost")})

		frames, err := adapter.RecentRoomEvents(context.Background(), RoomAlerts, 10)
		assert.Error(t, err)
		assert.Nil(t, frames)
	})
}
