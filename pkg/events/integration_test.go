package events

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/honeybotlabs/honeybot/pkg/database"
	"github.com/honeybotlabs/honeybot/pkg/models"
	"github.com/honeybotlabs/honeybot/pkg/services"
	testdb "github.com/honeybotlabs/honeybot/test/database"
	"github.com/honeybotlabs/honeybot/test/util"
)

// bridgeTestEnv wires real components together against a real PostgreSQL
// database (testcontainers locally, service container in CI). Every env
// gets its own NOTIFY channel so concurrent tests never hear each other.
type bridgeTestEnv struct {
	dbClient  *database.Client
	publisher *EventPublisher
	events    *services.EventService
	alerts    *services.AlertService
	manager   *ConnectionManager
	listener  *NotifyListener
	server    *httptest.Server
	channel   string
}

func setupBridgeTest(t *testing.T) *bridgeTestEnv {
	t.Helper()

	dbClient := testdb.NewTestClient(t)
	ctx := context.Background()

	channel := fmt.Sprintf("honeybot:test:%s", uuid.New().String()[:8])

	// Real components, wired the way cmd/hive wires them.
	manager := NewConnectionManager(nil, 5*time.Second)
	publisher := NewEventPublisher(dbClient.DB(), channel)
	patterns := services.NewPatternService(dbClient.Client)
	alerts := services.NewAlertService(dbClient.Client, manager, publisher)
	eventService := services.NewEventService(dbClient.Client, patterns, alerts, manager, publisher)
	manager.SetHistory(NewHistoryAdapter(eventService, alerts))

	// The listener needs the base connection string (no schema
	// search_path) because NOTIFY/LISTEN is database-level, not
	// schema-level.
	listener := NewNotifyListener(util.GetBaseConnectionString(t), channel, manager, nil)
	require.NoError(t, listener.Start(ctx))
	t.Cleanup(func() { listener.Stop(context.Background()) })

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			InsecureSkipVerify: true,
		})
		if err != nil {
			t.Logf("WebSocket accept error: %v", err)
			return
		}
		manager.HandleConnection(r.Context(), conn)
	}))
	t.Cleanup(func() { server.Close() })

	return &bridgeTestEnv{
		dbClient:  dbClient,
		publisher: publisher,
		events:    eventService,
		alerts:    alerts,
		manager:   manager,
		listener:  listener,
		server:    server,
		channel:   channel,
	}
}

// connectWS opens a WebSocket to the env's server and consumes the
// connection.established frame.
func (env *bridgeTestEnv) connectWS(t *testing.T) *websocket.Conn {
	t.Helper()
	url := "ws" + env.server.URL[len("http"):]
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn, _, err := websocket.Dial(ctx, url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close(websocket.StatusNormalClosure, "") })

	msg := readJSON(t, conn)
	require.Equal(t, "connection.established", msg["type"])
	return conn
}

// subscribeAndWait connects, subscribes to the room, and consumes the
// confirmation frame.
func (env *bridgeTestEnv) subscribeAndWait(t *testing.T, room string) *websocket.Conn {
	t.Helper()
	conn := env.connectWS(t)
	subscribeRoom(t, conn, room)
	return conn
}

// --- Tests ---

func TestIntegration_ListenerLifecycle(t *testing.T) {
	manager := NewConnectionManager(&stubRoomHistory{}, 5*time.Second)
	channel := fmt.Sprintf("honeybot:test:%s", uuid.New().String()[:8])
	listener := NewNotifyListener(util.GetBaseConnectionString(t), channel, manager, nil)

	require.NoError(t, listener.Start(context.Background()))
	assert.True(t, listener.Listening())

	listener.Stop(context.Background())
	assert.False(t, listener.Listening())
}

func TestIntegration_PublishDeliversToSubscriber(t *testing.T) {
	env := setupBridgeTest(t)
	ctx := context.Background()

	conn := env.connectWS(t)
	time.Sleep(50 * time.Millisecond)

	// Publish directly, the way a peer instance announces its events.
	eventID := uuid.New().String()
	err := env.publisher.PublishEvent(ctx, map[string]any{
		"event_id": eventID,
		"bot_id":   "bot-remote",
		"level":    "info",
	})
	require.NoError(t, err)

	// The frame arrives via pg_notify → listener → hub.
	msg := readJSON(t, conn)
	assert.Equal(t, EventTypeEventNew, msg["type"], "missing type defaults to event:new")
	assert.Equal(t, eventID, msg["event_id"])
	assert.Equal(t, "bot-remote", msg["bot_id"])
	assert.Contains(t, msg, "_timestamp")

	assertNoFrame(t, conn)
}

func TestIntegration_LocalEchoSuppressed(t *testing.T) {
	env := setupBridgeTest(t)
	ctx := context.Background()

	conn := env.connectWS(t)
	time.Sleep(50 * time.Millisecond)

	evt, err := env.events.ProcessEvent(ctx, "bot-echo", models.ReportEvent{
		MessageContent: "hello there",
	})
	require.NoError(t, err)

	// The local broadcast arrives exactly once. Postgres also delivers
	// our own NOTIFY back through the listener; the hub's dedup window
	// must absorb that echo.
	msg := readJSON(t, conn)
	assert.Equal(t, EventTypeEventNew, msg["type"])
	assert.Equal(t, evt.ID, msg["event_id"])
	assert.Equal(t, services.MessageHash("hello there"), msg["message_hash"])
	assert.NotContains(t, msg, "message_content")

	readCtx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()
	_, _, err = conn.Read(readCtx)
	assert.Error(t, err, "NOTIFY echo must not be delivered twice")

	// The row itself was persisted before the fan-out.
	rows, total, err := env.events.ListEvents(ctx, models.EventFilters{BotID: "bot-echo"})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, rows, 1)
	assert.Equal(t, evt.ID, rows[0].ID)
}

func TestIntegration_AlertElevationDelivery(t *testing.T) {
	env := setupBridgeTest(t)
	ctx := context.Background()

	conn := env.subscribeAndWait(t, RoomAlerts)

	score := 92.0
	evt, err := env.events.ProcessEvent(ctx, "bot-alarm", models.ReportEvent{
		EventType:   models.EventTypeUserBlocked,
		Level:       models.LevelCritical,
		ThreatScore: &score,
	})
	require.NoError(t, err)

	// Pipeline order: the event broadcast precedes the derived alert.
	msg := readJSON(t, conn)
	assert.Equal(t, EventTypeEventNew, msg["type"])
	assert.Equal(t, evt.ID, msg["event_id"])

	alertMsg := readJSON(t, conn)
	assert.Equal(t, EventTypeAlertNew, alertMsg["type"])
	assert.Equal(t, "critical", alertMsg["level"])
	assert.Equal(t, evt.ID, alertMsg["event_id"])
	assert.NotEmpty(t, alertMsg["alert_id"])
	assert.Equal(t, score, alertMsg["threat_score"])

	// Membership in the alerts room adds the room copy.
	roomCopy := readJSON(t, conn)
	assert.Equal(t, EventTypeAlertNew, roomCopy["type"])
	assert.Equal(t, alertMsg["alert_id"], roomCopy["alert_id"])

	// Echoes of both publishes are suppressed.
	assertNoFrame(t, conn)

	rows, total, err := env.alerts.List(ctx, "critical", nil, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, rows, 1)
	assert.Equal(t, evt.ID, rows[0].EventID)
}

func TestIntegration_TruncatedPublishRoundTrip(t *testing.T) {
	env := setupBridgeTest(t)
	ctx := context.Background()

	conn := env.connectWS(t)
	time.Sleep(50 * time.Millisecond)

	eventID := uuid.New().String()
	score := 61.5
	err := env.publisher.PublishEvent(ctx, map[string]any{
		"event_id":        eventID,
		"bot_id":          "bot-verbose",
		"threat_score":    score,
		"analysis_result": map[string]any{"transcript": strings.Repeat("x", 9000)},
	})
	require.NoError(t, err)

	// The oversized payload crossed the NOTIFY limit, so subscribers get
	// the routing envelope and fetch the rest over REST.
	msg := readJSON(t, conn)
	assert.Equal(t, EventTypeEventNew, msg["type"])
	assert.Equal(t, eventID, msg["event_id"])
	assert.Equal(t, true, msg["truncated"])
	assert.Equal(t, score, msg["threat_score"])
	assert.NotContains(t, msg, "analysis_result")
}

func TestIntegration_RoomRoutingThroughBridge(t *testing.T) {
	env := setupBridgeTest(t)
	ctx := context.Background()

	conn := env.subscribeAndWait(t, BotRoom("bot-routed"))

	eventID := uuid.New().String()
	err := env.publisher.PublishEvent(ctx, map[string]any{
		"event_id": eventID,
		"bot_id":   "bot-routed",
	})
	require.NoError(t, err)

	// One NOTIFY produces the global frame plus the bot-room copy.
	msg := readJSON(t, conn)
	assert.Equal(t, EventTypeEventNew, msg["type"])
	copyMsg := readJSON(t, conn)
	assert.Equal(t, "bot:"+EventTypeEventNew, copyMsg["type"])
	assert.Equal(t, eventID, copyMsg["event_id"])
}

func TestIntegration_CatchupFromRealDB(t *testing.T) {
	env := setupBridgeTest(t)
	ctx := context.Background()

	// Seed persisted history before anyone subscribes.
	var seededIDs []string
	var seededAt []time.Time
	for i := 1; i <= 3; i++ {
		score := float64(20 * i)
		evt, err := env.events.ProcessEvent(ctx, "bot-history", models.ReportEvent{
			EventType:   models.EventTypeDetection,
			ThreatScore: &score,
		})
		require.NoError(t, err)
		seededIDs = append(seededIDs, evt.ID)
		seededAt = append(seededAt, evt.CreatedAt)
		time.Sleep(10 * time.Millisecond) // distinct created_at ordering
	}

	count, err := env.dbClient.Event.Query().Count(ctx)
	require.NoError(t, err)
	require.Equal(t, 3, count)

	// A later subscriber replays the room history right after the
	// confirmation, oldest first, stamped with the original event times.
	conn := env.connectWS(t)
	subscribeRoom(t, conn, BotRoom("bot-history"))

	for i := 0; i < 3; i++ {
		frame := readJSON(t, conn)
		assert.Equal(t, "bot:"+EventTypeEventNew, frame["type"])
		assert.Equal(t, seededIDs[i], frame["event_id"])

		ts, ok := frame["_timestamp"].(float64)
		require.True(t, ok, "_timestamp should be a number")
		assert.Equal(t, seededAt[i].UnixMilli(), int64(ts))
	}

	// Under the limit: no overflow marker, no further frames.
	assertNoFrame(t, conn)
}
