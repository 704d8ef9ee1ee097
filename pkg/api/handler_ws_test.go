package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/honeybotlabs/honeybot/pkg/config"
	"github.com/honeybotlabs/honeybot/pkg/events"
)

func TestWebSocketEndpoint(t *testing.T) {
	env := setupTestServer(t)
	srv := httptest.NewServer(env.server.echo)
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	conn, _, err := websocket.Dial(ctx, wsURL, nil)
	require.NoError(t, err)
	defer conn.Close(websocket.StatusNormalClosure, "")

	_, data, err := conn.Read(ctx)
	require.NoError(t, err)

	var frame map[string]any
	require.NoError(t, json.Unmarshal(data, &frame))
	assert.Equal(t, "connection.established", frame["type"])
	assert.NotEmpty(t, frame["connection_id"])

	t.Run("broadcasts reach the socket", func(t *testing.T) {
		env.hub.Broadcast(events.EventTypeBotRegistered, map[string]any{"bot_id": "bot-ws"})

		_, data, err := conn.Read(ctx)
		require.NoError(t, err)

		var frame map[string]any
		require.NoError(t, json.Unmarshal(data, &frame))
		assert.Equal(t, events.EventTypeBotRegistered, frame["type"])
		assert.Equal(t, "bot-ws", frame["bot_id"])
	})
}

func TestWebSocketUnavailableWithoutHub(t *testing.T) {
	cfg := &config.HiveConfig{IngestSecret: testIngestSecret}
	s := NewServer(cfg, nil, nil, nil, nil, nil, nil, nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/ws", nil)
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
