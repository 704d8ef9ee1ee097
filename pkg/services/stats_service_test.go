package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/honeybotlabs/honeybot/ent/event"
	"github.com/honeybotlabs/honeybot/pkg/models"
	testdb "github.com/honeybotlabs/honeybot/test/database"
)

func TestStatsService_Overview(t *testing.T) {
	client := testdb.NewTestClient(t)
	botService := NewBotService(client.Client, nil)
	sessionService := NewSessionService(client.Client, nil)
	patternService := NewPatternService(client.Client)
	alertService := NewAlertService(client.Client, nil, nil)
	eventService := NewEventService(client.Client, patternService, alertService, nil, nil)
	svc := NewStatsService(client.Client, botService)
	ctx := context.Background()

	// Fleet: two online, one offline
	for _, id := range []string{"bot-1", "bot-2", "bot-3"} {
		_, err := botService.Register(ctx, models.RegisterPayload{BotID: id})
		require.NoError(t, err)
	}
	degraded, offline, err := botService.MarkStale(ctx, time.Minute, time.Hour)
	require.NoError(t, err)
	assert.Zero(t, degraded)
	assert.Zero(t, offline)
	require.NoError(t, client.Bot.UpdateOneID("bot-3").SetStatus("offline").Exec(ctx))

	// Sessions: one open, one closed
	ended := time.Now()
	_, _, err = sessionService.Upsert(ctx, models.SessionUpsert{SessionID: "s-open", BotID: "bot-1", UserID: "u1"})
	require.NoError(t, err)
	_, _, err = sessionService.Upsert(ctx, models.SessionUpsert{SessionID: "s-done", BotID: "bot-1", UserID: "u2", EndedAt: &ended})
	require.NoError(t, err)

	// Events inside the window: two info messages, one warning detection
	for _, in := range []models.ReportEvent{
		{EventID: "e1"},
		{EventID: "e2"},
		{EventID: "e3", EventType: models.EventTypeDetection, Level: models.LevelWarning, ThreatScore: fptr(60)},
	} {
		_, err := eventService.ProcessEvent(ctx, "bot-1", in)
		require.NoError(t, err)
	}

	// One event well outside the window
	_, err = client.Event.Create().
		SetID("e-ancient").
		SetBotID("bot-1").
		SetEventType(event.EventTypeMessage).
		SetLevel(event.LevelInfo).
		SetCreatedAt(time.Now().Add(-72 * time.Hour)).
		Save(ctx)
	require.NoError(t, err)

	stats, err := svc.Overview(ctx, 24*time.Hour)
	require.NoError(t, err)

	assert.Equal(t, 2, stats.Bots["online"])
	assert.Equal(t, 1, stats.Bots["offline"])
	assert.Equal(t, 1, stats.ActiveSessions)
	assert.Equal(t, 3, stats.TotalEvents, "ancient event is outside the window")
	assert.Equal(t, 2, stats.EventsByLevel["info"])
	assert.Equal(t, 1, stats.EventsByLevel["warning"])
	assert.Equal(t, 2, stats.EventsByType["message"])
	assert.Equal(t, 1, stats.EventsByType["detection"])
	assert.Equal(t, 1, stats.UnacknowledgedAlerts, "warning event derived an alert")
	assert.Equal(t, 24, stats.WindowHours)

	t.Run("payload mirrors the struct", func(t *testing.T) {
		payload := stats.Payload()
		assert.Equal(t, stats.ActiveSessions, payload["active_sessions"])
		assert.Equal(t, stats.Bots, payload["bots"])
	})

	t.Run("zero window defaults to a day", func(t *testing.T) {
		stats, err := svc.Overview(ctx, 0)
		require.NoError(t, err)
		assert.Equal(t, 24, stats.WindowHours)
	})
}
