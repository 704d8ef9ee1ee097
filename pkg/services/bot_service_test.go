package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/honeybotlabs/honeybot/ent/bot"
	"github.com/honeybotlabs/honeybot/pkg/models"
	testdb "github.com/honeybotlabs/honeybot/test/database"
)

func TestBotService_Register(t *testing.T) {
	client := testdb.NewTestClient(t)
	hub := &stubHub{}
	service := NewBotService(client.Client, hub)
	ctx := context.Background()

	t.Run("creates the bot online", func(t *testing.T) {
		row, err := service.Register(ctx, models.RegisterPayload{
			BotID:           "bot-dental-1",
			PersonaCategory: "dental_office",
			PersonaName:     "Dana",
			CompanyName:     "Coastal Dental",
			Version:         "1.4.0",
			ConfigHash:      MessageHash("config"),
		})
		require.NoError(t, err)

		assert.Equal(t, "bot-dental-1", row.ID)
		assert.Equal(t, "dental_office", row.PersonaCategory)
		assert.Equal(t, "Dana", row.PersonaName)
		require.NotNil(t, row.CompanyName)
		assert.Equal(t, "Coastal Dental", *row.CompanyName)
		assert.Equal(t, bot.StatusOnline, row.Status)
		assert.Equal(t, "1.4.0", row.Version)
		assert.False(t, row.RegisteredAt.IsZero())

		broadcasts := hub.byType("bot:registered")
		require.Len(t, broadcasts, 1)
		assert.Equal(t, "bot-dental-1", broadcasts[0].Data["bot_id"])
		assert.Equal(t, "dental_office", broadcasts[0].Data["persona_category"])
	})

	t.Run("re-registering keeps a single row", func(t *testing.T) {
		row, err := service.Register(ctx, models.RegisterPayload{
			BotID:           "bot-dental-1",
			PersonaCategory: "dental_office",
			PersonaName:     "Dana v2",
			Version:         "1.5.0",
		})
		require.NoError(t, err)
		assert.Equal(t, "Dana v2", row.PersonaName)
		assert.Equal(t, "1.5.0", row.Version)

		count, err := client.Bot.Query().Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("defaults for sparse payloads", func(t *testing.T) {
		row, err := service.Register(ctx, models.RegisterPayload{BotID: "bot-bare"})
		require.NoError(t, err)
		assert.Equal(t, "unknown", row.PersonaCategory)
		assert.Equal(t, "bot-bare", row.PersonaName, "name falls back to the id")
	})

	t.Run("missing bot id", func(t *testing.T) {
		_, err := service.Register(ctx, models.RegisterPayload{})
		assert.True(t, IsValidationError(err))
	})
}

func TestBotService_Heartbeat(t *testing.T) {
	client := testdb.NewTestClient(t)
	hub := &stubHub{}
	service := NewBotService(client.Client, hub)
	ctx := context.Background()

	_, err := service.Register(ctx, models.RegisterPayload{
		BotID:           "bot-law-1",
		PersonaCategory: "law_firm",
		Metadata:        map[string]any{"region": "us-east"},
	})
	require.NoError(t, err)

	t.Run("records heartbeat and merges runtime figures", func(t *testing.T) {
		row, err := service.Heartbeat(ctx, "bot-law-1", models.HeartbeatPayload{
			Status:         models.BotStatusOnline,
			ActiveSessions: 4,
			MemoryUsage:    1 << 26,
		})
		require.NoError(t, err)

		require.NotNil(t, row.LastHeartbeat)
		assert.WithinDuration(t, time.Now(), *row.LastHeartbeat, 5*time.Second)
		assert.Equal(t, "us-east", row.Metadata["region"], "registration metadata survives")
		assert.Contains(t, row.Metadata, "active_sessions")
		assert.Contains(t, row.Metadata, "memory_usage")

		broadcasts := hub.byType("bot:heartbeat")
		require.Len(t, broadcasts, 1)
		assert.Equal(t, 4, broadcasts[0].Data["active_sessions"])
	})

	t.Run("degraded status is accepted", func(t *testing.T) {
		row, err := service.Heartbeat(ctx, "bot-law-1", models.HeartbeatPayload{
			Status: models.BotStatusDegraded,
		})
		require.NoError(t, err)
		assert.Equal(t, bot.StatusDegraded, row.Status)
	})

	t.Run("unknown status rejected", func(t *testing.T) {
		_, err := service.Heartbeat(ctx, "bot-law-1", models.HeartbeatPayload{Status: "sleeping"})
		assert.True(t, IsValidationError(err))
	})

	t.Run("unregistered bot", func(t *testing.T) {
		_, err := service.Heartbeat(ctx, "bot-ghost", models.HeartbeatPayload{})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestBotService_MarkStale(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewBotService(client.Client, nil)
	ctx := context.Background()

	register := func(id string) {
		_, err := service.Register(ctx, models.RegisterPayload{BotID: id})
		require.NoError(t, err)
	}
	beatAt := func(id string, at time.Time) {
		err := client.Bot.UpdateOneID(id).SetLastHeartbeat(at).Exec(ctx)
		require.NoError(t, err)
	}

	register("bot-fresh")
	register("bot-quiet")
	register("bot-silent")
	register("bot-never") // registered but never sent a heartbeat

	beatAt("bot-fresh", time.Now())
	beatAt("bot-quiet", time.Now().Add(-2*time.Minute))
	beatAt("bot-silent", time.Now().Add(-10*time.Minute))

	degraded, offline, err := service.MarkStale(ctx, 90*time.Second, 5*time.Minute)
	require.NoError(t, err)
	assert.Equal(t, 2, degraded, "quiet and silent both trip the degrade pass")
	assert.Equal(t, 1, offline)

	assertStatus := func(id string, want bot.Status) {
		row, err := service.GetBot(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, want, row.Status, id)
	}
	assertStatus("bot-fresh", bot.StatusOnline)
	assertStatus("bot-quiet", bot.StatusDegraded)
	assertStatus("bot-silent", bot.StatusOffline)
	// No heartbeat yet means no staleness verdict
	assertStatus("bot-never", bot.StatusOnline)
}

func TestBotService_ListAndCounts(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewBotService(client.Client, nil)
	ctx := context.Background()

	for _, id := range []string{"bot-a", "bot-b", "bot-c"} {
		_, err := service.Register(ctx, models.RegisterPayload{BotID: id})
		require.NoError(t, err)
	}
	err := client.Bot.UpdateOneID("bot-c").SetStatus(bot.StatusOffline).Exec(ctx)
	require.NoError(t, err)

	t.Run("list all ordered by id", func(t *testing.T) {
		bots, err := service.ListBots(ctx, "")
		require.NoError(t, err)
		require.Len(t, bots, 3)
		assert.Equal(t, "bot-a", bots[0].ID)
	})

	t.Run("list by status", func(t *testing.T) {
		bots, err := service.ListBots(ctx, "offline")
		require.NoError(t, err)
		require.Len(t, bots, 1)
		assert.Equal(t, "bot-c", bots[0].ID)
	})

	t.Run("unknown status rejected", func(t *testing.T) {
		_, err := service.ListBots(ctx, "hibernating")
		assert.True(t, IsValidationError(err))
	})

	t.Run("status counts", func(t *testing.T) {
		counts, err := service.StatusCounts(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, counts["online"])
		assert.Equal(t, 1, counts["offline"])
	})
}
