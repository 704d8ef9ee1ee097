package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/honeybotlabs/honeybot/pkg/models"
)

func TestRegisterBot(t *testing.T) {
	env := setupTestServer(t)

	rec := env.do(t, http.MethodPost, "/api/bots/register", models.RegisterPayload{
		BotID:           "bot-1",
		PersonaCategory: "tech_support",
		PersonaName:     "Rachel from CloudNine",
		CompanyName:     "CloudNine",
		Version:         "1.4.0",
	}, secretOnly())
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var bot map[string]any
	decodeBody(t, rec, &bot)
	assert.Equal(t, "bot-1", bot["id"])
	assert.Equal(t, "tech_support", bot["persona_category"])
	assert.Equal(t, "Rachel from CloudNine", bot["persona_name"])
	assert.Equal(t, "online", bot["status"])

	t.Run("re-register refreshes the same row", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/api/bots/register", models.RegisterPayload{
			BotID:       "bot-1",
			PersonaName: "Rachel v2",
			Version:     "1.5.0",
		}, secretOnly())
		require.Equal(t, http.StatusCreated, rec.Code)

		var bot map[string]any
		decodeBody(t, rec, &bot)
		assert.Equal(t, "Rachel v2", bot["persona_name"])
		assert.Equal(t, "1.5.0", bot["version"])

		list := env.do(t, http.MethodGet, "/api/bots", nil, nil)
		require.Equal(t, http.StatusOK, list.Code)
		var resp BotListResponse
		decodeBody(t, list, &resp)
		assert.Equal(t, 1, resp.Total)
	})

	t.Run("bot id falls back to the header", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/api/bots/register",
			models.RegisterPayload{PersonaCategory: "ecommerce"}, agentHeaders("bot-2"))
		require.Equal(t, http.StatusCreated, rec.Code)

		var bot map[string]any
		decodeBody(t, rec, &bot)
		assert.Equal(t, "bot-2", bot["id"])
	})

	t.Run("missing bot id rejected", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/api/bots/register",
			models.RegisterPayload{PersonaCategory: "banking"}, secretOnly())
		require.Equal(t, http.StatusBadRequest, rec.Code)

		var resp ErrorResponse
		decodeBody(t, rec, &resp)
		assert.Contains(t, resp.Error, "bot_id")
	})
}

func TestHeartbeat(t *testing.T) {
	env := setupTestServer(t)

	rec := env.do(t, http.MethodPost, "/api/bots/register",
		models.RegisterPayload{BotID: "bot-hb"}, secretOnly())
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = env.do(t, http.MethodPost, "/api/bots/bot-hb/heartbeat", models.HeartbeatPayload{
		Status:         models.BotStatusOnline,
		ActiveSessions: 3,
		Version:        "1.4.1",
	}, secretOnly())
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var bot map[string]any
	decodeBody(t, rec, &bot)
	assert.Equal(t, "online", bot["status"])
	assert.Equal(t, "1.4.1", bot["version"])
	assert.NotEmpty(t, bot["last_heartbeat"])

	t.Run("unknown bot", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/api/bots/ghost/heartbeat",
			models.HeartbeatPayload{}, secretOnly())
		require.Equal(t, http.StatusNotFound, rec.Code)

		var resp ErrorResponse
		decodeBody(t, rec, &resp)
		assert.Equal(t, "resource not found", resp.Error)
	})

	t.Run("unknown status", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/api/bots/bot-hb/heartbeat",
			models.HeartbeatPayload{Status: "hibernating"}, secretOnly())
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestListBots(t *testing.T) {
	env := setupTestServer(t)

	for _, id := range []string{"bot-a", "bot-b", "bot-c"} {
		rec := env.do(t, http.MethodPost, "/api/bots/register",
			models.RegisterPayload{BotID: id}, secretOnly())
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	rec := env.do(t, http.MethodGet, "/api/bots", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp BotListResponse
	decodeBody(t, rec, &resp)
	assert.Equal(t, 3, resp.Total)
	assert.Len(t, resp.Bots, 3)

	t.Run("status filter", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/api/bots?status=online", nil, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		var resp BotListResponse
		decodeBody(t, rec, &resp)
		assert.Equal(t, 3, resp.Total)

		rec = env.do(t, http.MethodGet, "/api/bots?status=offline", nil, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		decodeBody(t, rec, &resp)
		assert.Equal(t, 0, resp.Total)
	})

	t.Run("invalid status filter", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/api/bots?status=bogus", nil, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestGetBot(t *testing.T) {
	env := setupTestServer(t)

	rec := env.do(t, http.MethodPost, "/api/bots/register",
		models.RegisterPayload{BotID: "bot-get", PersonaCategory: "travel"}, secretOnly())
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = env.do(t, http.MethodGet, "/api/bots/bot-get", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var bot map[string]any
	decodeBody(t, rec, &bot)
	assert.Equal(t, "bot-get", bot["id"])
	assert.Equal(t, "travel", bot["persona_category"])

	t.Run("unknown bot", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/api/bots/ghost", nil, nil)
		require.Equal(t, http.StatusNotFound, rec.Code)

		var resp ErrorResponse
		decodeBody(t, rec, &resp)
		assert.Equal(t, "resource not found", resp.Error)
	})
}
