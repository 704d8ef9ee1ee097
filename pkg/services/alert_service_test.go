package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/honeybotlabs/honeybot/ent"
	"github.com/honeybotlabs/honeybot/ent/alert"
	"github.com/honeybotlabs/honeybot/ent/event"
	testdb "github.com/honeybotlabs/honeybot/test/database"
)

func seedEvent(t *testing.T, client *ent.Client, id string, level event.Level, eventType event.EventType, score float64) *ent.Event {
	t.Helper()
	evt, err := client.Event.Create().
		SetID(id).
		SetBotID("bot-dental-1").
		SetUserID("user-9").
		SetSessionID("sess-1").
		SetEventType(eventType).
		SetLevel(level).
		SetThreatScore(score).
		SetDetectionTypes([]string{"prompt_injection"}).
		Save(context.Background())
	require.NoError(t, err)
	return evt
}

func TestAlertService_CreateFromEvent(t *testing.T) {
	client := testdb.NewTestClient(t)
	hub := &stubHub{}
	bus := &stubBus{}
	svc := NewAlertService(client.Client, hub, bus)
	ctx := context.Background()

	t.Run("critical block event", func(t *testing.T) {
		evt := seedEvent(t, client.Client, "evt-block", event.LevelCritical, event.EventTypeUserBlocked, 100)

		row, err := svc.CreateFromEvent(ctx, evt)
		require.NoError(t, err)

		assert.Equal(t, alert.LevelCritical, row.Level)
		assert.Equal(t, "User blocked", row.Title)
		assert.Contains(t, row.Summary, "bot-dental-1")
		assert.Contains(t, row.Summary, "user-9")
		assert.Contains(t, row.Summary, "100.0")
		assert.Equal(t, "evt-block", row.EventID)
		assert.Equal(t, "sess-1", row.SessionID)
		assert.False(t, row.Acknowledged)

		announcements := hub.byType("alert:new")
		require.Len(t, announcements, 1)
		assert.Equal(t, row.ID, announcements[0].Data["alert_id"])
		assert.Equal(t, 100.0, announcements[0].Data["threat_score"])
		assert.NotContains(t, announcements[0].Data, "type")

		// The peer envelope carries the frame type explicitly.
		published := bus.published()
		require.Len(t, published, 1)
		assert.Equal(t, "alert:new", published[0]["type"])
		assert.Equal(t, row.ID, published[0]["alert_id"])
		assert.Equal(t, "evt-block", published[0]["event_id"])
	})

	t.Run("warning honeypot event", func(t *testing.T) {
		evt := seedEvent(t, client.Client, "evt-honeypot", event.LevelWarning, event.EventTypeHoneypotActivated, 75)

		row, err := svc.CreateFromEvent(ctx, evt)
		require.NoError(t, err)
		assert.Equal(t, alert.LevelWarning, row.Level)
		assert.Equal(t, "Honeypot engaged", row.Title)
	})

	t.Run("info events are rejected", func(t *testing.T) {
		evt := seedEvent(t, client.Client, "evt-info", event.LevelInfo, event.EventTypeMessage, 0)

		_, err := svc.CreateFromEvent(ctx, evt)
		assert.True(t, IsValidationError(err))
	})

	t.Run("nil event is rejected", func(t *testing.T) {
		_, err := svc.CreateFromEvent(ctx, nil)
		assert.True(t, IsValidationError(err))
	})
}

func TestAlertService_List(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewAlertService(client.Client, nil, nil)
	ctx := context.Background()

	warned := seedEvent(t, client.Client, "evt-w", event.LevelWarning, event.EventTypeDetection, 60)
	blocked := seedEvent(t, client.Client, "evt-c", event.LevelCritical, event.EventTypeUserBlocked, 100)

	warnRow, err := svc.CreateFromEvent(ctx, warned)
	require.NoError(t, err)
	critRow, err := svc.CreateFromEvent(ctx, blocked)
	require.NoError(t, err)

	_, err = svc.Acknowledge(ctx, warnRow.ID)
	require.NoError(t, err)

	t.Run("all alerts", func(t *testing.T) {
		rows, total, err := svc.List(ctx, "", nil, 0, 0)
		require.NoError(t, err)
		assert.Equal(t, 2, total)
		assert.Len(t, rows, 2)
	})

	t.Run("filter by level", func(t *testing.T) {
		rows, total, err := svc.List(ctx, "critical", nil, 0, 0)
		require.NoError(t, err)
		assert.Equal(t, 1, total)
		require.Len(t, rows, 1)
		assert.Equal(t, critRow.ID, rows[0].ID)
	})

	t.Run("filter by acknowledgement", func(t *testing.T) {
		unacked := false
		rows, _, err := svc.List(ctx, "", &unacked, 0, 0)
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, critRow.ID, rows[0].ID)

		acked := true
		rows, _, err = svc.List(ctx, "", &acked, 0, 0)
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, warnRow.ID, rows[0].ID)
	})

	t.Run("unknown level rejected", func(t *testing.T) {
		_, _, err := svc.List(ctx, "severe", nil, 0, 0)
		assert.True(t, IsValidationError(err))
	})
}

func TestAlertService_Acknowledge(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewAlertService(client.Client, nil, nil)
	ctx := context.Background()

	evt := seedEvent(t, client.Client, "evt-ack", event.LevelWarning, event.EventTypeDetection, 55)
	row, err := svc.CreateFromEvent(ctx, evt)
	require.NoError(t, err)

	acked, err := svc.Acknowledge(ctx, row.ID)
	require.NoError(t, err)
	assert.True(t, acked.Acknowledged)

	_, err = svc.Acknowledge(ctx, "missing-alert")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.Acknowledge(ctx, "")
	assert.True(t, IsValidationError(err))
}

func TestAlertService_DeleteAcknowledgedBefore(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewAlertService(client.Client, nil, nil)
	ctx := context.Background()

	// Backdated acknowledged alert, should be swept
	_, err := client.Alert.Create().
		SetID("alert-old").
		SetLevel(alert.LevelWarning).
		SetTitle("Old alert").
		SetSummary("stale").
		SetAcknowledged(true).
		SetCreatedAt(time.Now().Add(-60 * 24 * time.Hour)).
		Save(ctx)
	require.NoError(t, err)

	// Backdated but unacknowledged, must survive
	_, err = client.Alert.Create().
		SetID("alert-open").
		SetLevel(alert.LevelCritical).
		SetTitle("Open alert").
		SetSummary("still pending").
		SetCreatedAt(time.Now().Add(-60 * 24 * time.Hour)).
		Save(ctx)
	require.NoError(t, err)

	count, err := svc.DeleteAcknowledgedBefore(ctx, time.Now().Add(-30*24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	rows, total, err := svc.List(ctx, "", nil, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, rows, 1)
	assert.Equal(t, "alert-open", rows[0].ID)
}
