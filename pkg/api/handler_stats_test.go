package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/honeybotlabs/honeybot/pkg/models"
	"github.com/honeybotlabs/honeybot/pkg/services"
)

func TestStats(t *testing.T) {
	env := setupTestServer(t)

	rec := env.do(t, http.MethodPost, "/api/bots/register",
		models.RegisterPayload{BotID: "bot-1"}, secretOnly())
	require.Equal(t, http.StatusCreated, rec.Code)

	env.submitEvent(t, "bot-1", models.ReportEvent{
		EventID: "evt-s1", UserID: "user-1",
	})
	env.submitEvent(t, "bot-1", models.ReportEvent{
		EventID: "evt-s2", UserID: "user-1",
		EventType: models.EventTypeDetection, Level: models.LevelWarning,
	})
	rec = env.do(t, http.MethodPost, "/api/sessions", models.SessionUpsert{
		SessionID: "sess-1", BotID: "bot-1", UserID: "user-1",
	}, secretOnly())
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = env.do(t, http.MethodGet, "/api/stats", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var stats services.FleetStats
	decodeBody(t, rec, &stats)
	assert.Equal(t, 1, stats.Bots["online"])
	assert.Equal(t, 1, stats.ActiveSessions)
	assert.Equal(t, 2, stats.TotalEvents)
	assert.Equal(t, 1, stats.EventsByLevel["info"])
	assert.Equal(t, 1, stats.EventsByLevel["warning"])
	assert.Equal(t, 1, stats.EventsByType["detection"])
	assert.Equal(t, 1, stats.UnacknowledgedAlerts, "the warning event derives one alert")
	assert.Equal(t, 24, stats.WindowHours)

	t.Run("custom window", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/api/stats?window_hours=72", nil, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var stats services.FleetStats
		decodeBody(t, rec, &stats)
		assert.Equal(t, 72, stats.WindowHours)
	})

	t.Run("window bounds", func(t *testing.T) {
		for _, q := range []string{"0", "-3", "721", "soon"} {
			rec := env.do(t, http.MethodGet, "/api/stats?window_hours="+q, nil, nil)
			assert.Equal(t, http.StatusBadRequest, rec.Code, "window_hours=%s", q)
		}
	})
}
