package cleanup

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/honeybotlabs/honeybot/ent/alert"
	"github.com/honeybotlabs/honeybot/ent/bot"
	"github.com/honeybotlabs/honeybot/pkg/config"
	"github.com/honeybotlabs/honeybot/pkg/database"
	"github.com/honeybotlabs/honeybot/pkg/models"
	"github.com/honeybotlabs/honeybot/pkg/services"
	testdb "github.com/honeybotlabs/honeybot/test/database"
)

// recordingHub captures broadcasts so tests can assert on fleet:status.
type recordingHub struct {
	mu     sync.Mutex
	frames []recordedFrame
}

type recordedFrame struct {
	eventType string
	data      map[string]any
}

func (h *recordingHub) Broadcast(eventType string, data map[string]any) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.frames = append(h.frames, recordedFrame{eventType: eventType, data: data})
}

func (h *recordingHub) byType(eventType string) []recordedFrame {
	h.mu.Lock()
	defer h.mu.Unlock()
	var out []recordedFrame
	for _, f := range h.frames {
		if f.eventType == eventType {
			out = append(out, f)
		}
	}
	return out
}

type cleanupTestEnv struct {
	client   *database.Client
	service  *Service
	hub      *recordingHub
	warnings *services.SystemWarningsService

	bots     *services.BotService
	events   *services.EventService
	sessions *services.SessionService
	alerts   *services.AlertService
}

func setupCleanup(t *testing.T, cfg *config.HiveConfig) *cleanupTestEnv {
	t.Helper()
	client := testdb.NewTestClient(t)

	hub := &recordingHub{}
	warnings := services.NewSystemWarningsService()
	bots := services.NewBotService(client.Client, nil)
	patterns := services.NewPatternService(client.Client)
	alerts := services.NewAlertService(client.Client, nil, nil)
	eventService := services.NewEventService(client.Client, patterns, alerts, nil, nil)
	sessions := services.NewSessionService(client.Client, nil)
	stats := services.NewStatsService(client.Client, bots)

	svc := NewService(cfg, bots, eventService, sessions, alerts, stats, hub, warnings)
	return &cleanupTestEnv{
		client:   client,
		service:  svc,
		hub:      hub,
		warnings: warnings,
		bots:     bots,
		events:   eventService,
		sessions: sessions,
		alerts:   alerts,
	}
}

func retentionConfig() *config.HiveConfig {
	return &config.HiveConfig{
		EventRetention:   30 * 24 * time.Hour,
		AlertRetention:   7 * 24 * time.Hour,
		SessionIdleClose: 24 * time.Hour,
		CleanupInterval:  time.Hour,
	}
}

func TestService_DeletesOldEvents(t *testing.T) {
	env := setupCleanup(t, retentionConfig())
	ctx := context.Background()

	_, err := env.client.Event.Create().
		SetID("evt-old").
		SetBotID("bot-1").
		SetCreatedAt(time.Now().Add(-40 * 24 * time.Hour)).
		Save(ctx)
	require.NoError(t, err)
	_, err = env.client.Event.Create().
		SetID("evt-recent").
		SetBotID("bot-1").
		Save(ctx)
	require.NoError(t, err)

	env.service.runAll(ctx)

	rows, total, err := env.events.ListEvents(ctx, models.EventFilters{})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, rows, 1)
	assert.Equal(t, "evt-recent", rows[0].ID)
	assert.Empty(t, env.warnings.GetWarnings())
}

func TestService_DeletesAcknowledgedAlerts(t *testing.T) {
	env := setupCleanup(t, retentionConfig())
	ctx := context.Background()

	old := time.Now().Add(-8 * 24 * time.Hour)
	_, err := env.client.Alert.Create().
		SetID(uuid.New().String()).
		SetLevel(alert.LevelWarning).
		SetTitle("acked long ago").
		SetSummary("done").
		SetAcknowledged(true).
		SetCreatedAt(old).
		Save(ctx)
	require.NoError(t, err)

	// Unacknowledged alerts survive the sweep regardless of age.
	openID := uuid.New().String()
	_, err = env.client.Alert.Create().
		SetID(openID).
		SetLevel(alert.LevelCritical).
		SetTitle("still open").
		SetSummary("pending").
		SetCreatedAt(old).
		Save(ctx)
	require.NoError(t, err)

	env.service.runAll(ctx)

	rows, total, err := env.alerts.List(ctx, "", nil, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, rows, 1)
	assert.Equal(t, openID, rows[0].ID)
}

func TestService_ClosesIdleSessions(t *testing.T) {
	env := setupCleanup(t, retentionConfig())
	ctx := context.Background()

	_, err := env.client.Session.Create().
		SetID("sess-idle").
		SetBotID("bot-1").
		SetUserID("user-1").
		SetStartedAt(time.Now().Add(-48 * time.Hour)).
		Save(ctx)
	require.NoError(t, err)
	_, err = env.client.Session.Create().
		SetID("sess-live").
		SetBotID("bot-1").
		SetUserID("user-2").
		Save(ctx)
	require.NoError(t, err)

	env.service.runAll(ctx)

	idle, err := env.sessions.GetSession(ctx, "sess-idle")
	require.NoError(t, err)
	assert.NotNil(t, idle.EndedAt, "idle session gets an end stamp")

	live, err := env.sessions.GetSession(ctx, "sess-live")
	require.NoError(t, err)
	assert.Nil(t, live.EndedAt, "recent session stays open")
}

func TestService_FleetStatusSweep(t *testing.T) {
	env := setupCleanup(t, retentionConfig())
	ctx := context.Background()

	now := time.Now()
	seed := []struct {
		id        string
		heartbeat time.Time
	}{
		{"bot-fresh", now.Add(-10 * time.Second)},
		{"bot-quiet", now.Add(-2 * time.Minute)},
		{"bot-gone", now.Add(-10 * time.Minute)},
	}
	for _, b := range seed {
		_, err := env.client.Bot.Create().
			SetID(b.id).
			SetPersonaCategory("tech_support").
			SetPersonaName(b.id).
			SetStatus(bot.StatusOnline).
			SetLastHeartbeat(b.heartbeat).
			Save(ctx)
		require.NoError(t, err)
	}

	env.service.refreshFleetStatus(ctx)

	status := func(id string) string {
		row, err := env.bots.GetBot(ctx, id)
		require.NoError(t, err)
		return string(row.Status)
	}
	assert.Equal(t, "online", status("bot-fresh"))
	assert.Equal(t, "degraded", status("bot-quiet"))
	assert.Equal(t, "offline", status("bot-gone"))

	frames := env.hub.byType("fleet:status")
	require.Len(t, frames, 1)
	counts, ok := frames[0].data["bots"].(map[string]int)
	require.True(t, ok)
	assert.Equal(t, 1, counts["online"])
	assert.Equal(t, 1, counts["degraded"])
	assert.Equal(t, 1, counts["offline"])
	assert.Empty(t, env.warnings.GetWarnings())
}

func TestService_StartStop(t *testing.T) {
	env := setupCleanup(t, retentionConfig())

	env.service.Start(context.Background())
	// The initial pass runs before the tickers engage; fleet:status must be
	// broadcast once on startup.
	require.Eventually(t, func() bool {
		return len(env.hub.byType("fleet:status")) >= 1
	}, 5*time.Second, 20*time.Millisecond)

	done := make(chan struct{})
	go func() {
		env.service.Stop()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Stop did not return")
	}

	// Stop on an already stopped service is a no-op.
	env.service.Stop()
}
