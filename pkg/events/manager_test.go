package events

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubRoomHistory implements RoomHistory for tests.
type stubRoomHistory struct {
	frames map[string][]map[string]any
	err    error
}

func (s *stubRoomHistory) RecentRoomEvents(_ context.Context, room string, limit int) ([]map[string]any, error) {
	if s.err != nil {
		return nil, s.err
	}
	frames := s.frames[room]
	if limit > 0 && len(frames) > limit {
		return frames[:limit], nil
	}
	return frames, nil
}

func newEventsServer(t *testing.T, manager *ConnectionManager) *httptest.Server {
	t.Helper()
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
	return server
}

func setupTestManager(t *testing.T) (*ConnectionManager, *httptest.Server) {
	t.Helper()
	manager := NewConnectionManager(&stubRoomHistory{}, 5*time.Second)
	return manager, newEventsServer(t, manager)
}

func connectWS(t *testing.T, server *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + server.URL[len("http"):]
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn, _, err := websocket.Dial(ctx, url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close(websocket.StatusNormalClosure, "") })
	return conn
}

func writeClient(t *testing.T, conn *websocket.Conn, msg ClientMessage) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	data, err := json.Marshal(msg)
	require.NoError(t, err)
	require.NoError(t, conn.Write(ctx, websocket.MessageText, data))
}

func readJSON(t *testing.T, conn *websocket.Conn) map[string]interface{} {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, data, err := conn.Read(ctx)
	require.NoError(t, err)

	var msg map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &msg))
	return msg
}

// assertNoFrame verifies nothing arrives within a short window. The timed
// read tears the websocket down on expiry, so this must be the last read
// on the connection.
func assertNoFrame(t *testing.T, conn *websocket.Conn) {
	t.Helper()
	readCtx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	_, _, err := conn.Read(readCtx)
	assert.Error(t, err, "expected no further frames")
}

// subscribeRoom subscribes and consumes the confirmation frame.
func subscribeRoom(t *testing.T, conn *websocket.Conn, room string) {
	t.Helper()
	writeClient(t, conn, ClientMessage{Action: "subscribe", Room: room})
	msg := readJSON(t, conn)
	require.Equal(t, "subscription.confirmed", msg["type"])
	require.Equal(t, room, msg["room"])
}

func TestConnectionManager_ConnectionEstablished(t *testing.T) {
	_, server := setupTestManager(t)
	conn := connectWS(t, server)

	msg := readJSON(t, conn)
	assert.Equal(t, "connection.established", msg["type"])
	assert.NotEmpty(t, msg["connection_id"])
}

func TestConnectionManager_SubscribeConfirmed(t *testing.T) {
	manager, server := setupTestManager(t)
	conn := connectWS(t, server)

	// Read connection.established
	readJSON(t, conn)

	subscribeRoom(t, conn, "bot:test-123")

	// Verify active connections count
	time.Sleep(50 * time.Millisecond) // Let subscription propagate
	assert.Equal(t, 1, manager.ActiveConnections())
}

func TestConnectionManager_GlobalBroadcast(t *testing.T) {
	manager, server := setupTestManager(t)

	// Two clients, neither subscribed to any room: global frames still
	// reach both.
	conn1 := connectWS(t, server)
	conn2 := connectWS(t, server)
	readJSON(t, conn1)
	readJSON(t, conn2)

	time.Sleep(50 * time.Millisecond)

	manager.Broadcast(EventTypeBotHeartbeat, map[string]any{"bot_id": "bot-1"})

	msg1 := readJSON(t, conn1)
	msg2 := readJSON(t, conn2)

	assert.Equal(t, EventTypeBotHeartbeat, msg1["type"])
	assert.Equal(t, "bot-1", msg1["bot_id"])
	ts, ok := msg1["_timestamp"].(float64)
	require.True(t, ok, "_timestamp should be a number")
	assert.Greater(t, ts, float64(0))

	assert.Equal(t, EventTypeBotHeartbeat, msg2["type"])
	assert.Equal(t, "bot-1", msg2["bot_id"])
}

func TestConnectionManager_BotRoomCopies(t *testing.T) {
	manager, server := setupTestManager(t)

	conn1 := connectWS(t, server)
	conn2 := connectWS(t, server)
	readJSON(t, conn1)
	readJSON(t, conn2)

	// Only conn1 joins the bot room.
	subscribeRoom(t, conn1, "bot:abc")
	time.Sleep(100 * time.Millisecond)

	manager.Broadcast(EventTypeEventNew, map[string]any{
		"event_id": "ev-room-copy",
		"bot_id":   "abc",
	})

	// conn1 receives the global frame and then the room-prefixed copy.
	msg := readJSON(t, conn1)
	assert.Equal(t, EventTypeEventNew, msg["type"])
	copyMsg := readJSON(t, conn1)
	assert.Equal(t, "bot:"+EventTypeEventNew, copyMsg["type"])
	assert.Equal(t, "ev-room-copy", copyMsg["event_id"])

	// conn2 receives only the global frame.
	msg2 := readJSON(t, conn2)
	assert.Equal(t, EventTypeEventNew, msg2["type"])
	assertNoFrame(t, conn2)
}

func TestConnectionManager_CategoryRoomCopies(t *testing.T) {
	manager, server := setupTestManager(t)
	conn := connectWS(t, server)
	readJSON(t, conn)

	subscribeRoom(t, conn, "category:crypto_trader")
	time.Sleep(100 * time.Millisecond)

	manager.Broadcast(EventTypeSessionStarted, map[string]any{
		"session_id":       "sess-1",
		"bot_id":           "bot-1",
		"persona_category": "crypto_trader",
	})

	msg := readJSON(t, conn)
	assert.Equal(t, EventTypeSessionStarted, msg["type"])
	copyMsg := readJSON(t, conn)
	assert.Equal(t, "category:"+EventTypeSessionStarted, copyMsg["type"])
	assert.Equal(t, "sess-1", copyMsg["session_id"])
}

func TestConnectionManager_ThreatFanOut(t *testing.T) {
	manager, server := setupTestManager(t)
	conn := connectWS(t, server)
	readJSON(t, conn)

	subscribeRoom(t, conn, "threats:30")
	subscribeRoom(t, conn, "threats:60")
	subscribeRoom(t, conn, "threats:80")
	time.Sleep(100 * time.Millisecond)

	manager.Broadcast(EventTypeEventNew, map[string]any{
		"event_id":     "ev-threat",
		"threat_score": 75.0,
	})

	// Global frame first, without a threshold field.
	msg := readJSON(t, conn)
	assert.Equal(t, EventTypeEventNew, msg["type"])
	assert.NotContains(t, msg, "threshold")

	// Score 75 crosses the 30 and 60 floors but not 80.
	threat30 := readJSON(t, conn)
	assert.Equal(t, EventTypeThreat, threat30["type"])
	assert.Equal(t, float64(30), threat30["threshold"])
	assert.Equal(t, float64(75), threat30["threat_score"])

	threat60 := readJSON(t, conn)
	assert.Equal(t, EventTypeThreat, threat60["type"])
	assert.Equal(t, float64(60), threat60["threshold"])

	assertNoFrame(t, conn)
}

func TestConnectionManager_AlertsRoom(t *testing.T) {
	manager, server := setupTestManager(t)
	conn := connectWS(t, server)
	readJSON(t, conn)

	subscribeRoom(t, conn, RoomAlerts)
	time.Sleep(100 * time.Millisecond)

	// Alert-prefixed types land in the alerts room with the type
	// unchanged, so a member sees the global frame plus the room copy.
	manager.Broadcast(EventTypeAlertNew, map[string]any{
		"alert_id": "al-1",
		"level":    "warning",
	})

	msg := readJSON(t, conn)
	assert.Equal(t, EventTypeAlertNew, msg["type"])
	copyMsg := readJSON(t, conn)
	assert.Equal(t, EventTypeAlertNew, copyMsg["type"])
	assert.Equal(t, "al-1", copyMsg["alert_id"])

	// Non-alert types don't produce an alerts-room copy.
	manager.Broadcast(EventTypeFleetStatus, map[string]any{"total_bots": 3})
	status := readJSON(t, conn)
	assert.Equal(t, EventTypeFleetStatus, status["type"])
	assertNoFrame(t, conn)
}

func TestConnectionManager_DuplicateSuppression(t *testing.T) {
	manager, server := setupTestManager(t)
	conn := connectWS(t, server)
	readJSON(t, conn)

	time.Sleep(50 * time.Millisecond)

	manager.Broadcast(EventTypeEventNew, map[string]any{"event_id": "dup-1", "seq": 1})
	msg := readJSON(t, conn)
	assert.Equal(t, float64(1), msg["seq"])

	// Same type and event id inside the window: suppressed. Delivery is
	// in order per connection, so broadcasting a fresh id right after and
	// seeing it as the very next frame proves the duplicate never went out.
	manager.Broadcast(EventTypeEventNew, map[string]any{"event_id": "dup-1", "seq": 2})
	manager.Broadcast(EventTypeEventNew, map[string]any{"event_id": "dup-2", "seq": 3})
	nextMsg := readJSON(t, conn)
	assert.Equal(t, float64(3), nextMsg["seq"])

	// Same event id but a different type still goes out; alerts carry
	// the id of the event that triggered them.
	manager.Broadcast(EventTypeAlertNew, map[string]any{"event_id": "dup-1", "alert_id": "al-1"})
	alertMsg := readJSON(t, conn)
	assert.Equal(t, EventTypeAlertNew, alertMsg["type"])
}

func TestConnectionManager_Unsubscribe(t *testing.T) {
	manager, server := setupTestManager(t)
	conn := connectWS(t, server)
	readJSON(t, conn)

	room := "bot:unsub-test"
	subscribeRoom(t, conn, room)

	// Unsubscribe sends no confirmation.
	writeClient(t, conn, ClientMessage{Action: "unsubscribe", Room: room})
	time.Sleep(100 * time.Millisecond)

	manager.Broadcast(EventTypeEventNew, map[string]any{
		"event_id": "ev-after-unsub",
		"bot_id":   "unsub-test",
	})

	// The global frame still arrives; the room copy must not.
	msg := readJSON(t, conn)
	assert.Equal(t, EventTypeEventNew, msg["type"])
	assertNoFrame(t, conn)
}

func TestConnectionManager_PingPong(t *testing.T) {
	_, server := setupTestManager(t)
	conn := connectWS(t, server)

	// Read connection.established
	readJSON(t, conn)

	writeClient(t, conn, ClientMessage{Action: "ping"})

	msg := readJSON(t, conn)
	assert.Equal(t, "pong", msg["type"])
}

func TestConnectionManager_SubscribeValidation(t *testing.T) {
	_, server := setupTestManager(t)
	conn := connectWS(t, server)
	readJSON(t, conn)

	// Subscribe without a room should return an error
	writeClient(t, conn, ClientMessage{Action: "subscribe"})
	msg := readJSON(t, conn)
	assert.Equal(t, "error", msg["type"])
	assert.Contains(t, msg["message"], "room is required")

	// Subscribe to an unrecognized room should return an error
	writeClient(t, conn, ClientMessage{Action: "subscribe", Room: "threats:55"})
	msg = readJSON(t, conn)
	assert.Equal(t, "error", msg["type"])
	assert.Contains(t, msg["message"], "unknown room")

	// Unsubscribe without a room should return an error
	writeClient(t, conn, ClientMessage{Action: "unsubscribe"})
	msg = readJSON(t, conn)
	assert.Equal(t, "error", msg["type"])
	assert.Contains(t, msg["message"], "room is required")

	// Catchup without a room should return an error
	writeClient(t, conn, ClientMessage{Action: "catchup"})
	msg = readJSON(t, conn)
	assert.Equal(t, "error", msg["type"])
	assert.Contains(t, msg["message"], "room is required")

	// Connection should still be alive after validation errors
	writeClient(t, conn, ClientMessage{Action: "ping"})
	msg = readJSON(t, conn)
	assert.Equal(t, "pong", msg["type"])
}

func TestConnectionManager_AutoCatchupOnSubscribe(t *testing.T) {
	room := "bot:seeded"
	history := &stubRoomHistory{
		frames: map[string][]map[string]any{
			room: {
				{"type": "bot:event:new", "seq": 1, "_timestamp": int64(1000)},
				{"type": "bot:event:new", "seq": 2, "_timestamp": int64(2000)},
				{"type": "bot:event:new", "seq": 3, "_timestamp": int64(3000)},
			},
		},
	}
	manager := NewConnectionManager(history, 5*time.Second)
	server := newEventsServer(t, manager)

	conn := connectWS(t, server)
	readJSON(t, conn) // connection.established

	// Subscribing replays recent room history right after the
	// confirmation, oldest first.
	subscribeRoom(t, conn, room)
	for i := 1; i <= 3; i++ {
		msg := readJSON(t, conn)
		assert.Equal(t, float64(i), msg["seq"])
		assert.Equal(t, "bot:event:new", msg["type"])
	}

	// Under the limit: no overflow marker follows.
	assertNoFrame(t, conn)
}

func TestConnectionManager_CatchupOverflow(t *testing.T) {
	// Seed more frames than the catchup limit.
	room := "bot:overflow-test"
	manyFrames := make([]map[string]any, catchupLimit+5)
	for i := range manyFrames {
		manyFrames[i] = map[string]any{"type": "bot:event:new", "seq": i, "_timestamp": int64(i)}
	}

	manager := NewConnectionManager(&stubRoomHistory{
		frames: map[string][]map[string]any{room: manyFrames},
	}, 5*time.Second)
	server := newEventsServer(t, manager)

	conn := connectWS(t, server)
	readJSON(t, conn) // connection.established

	subscribeRoom(t, conn, room)

	// Read replayed frames until the overflow marker appears.
	var overflowReceived bool
	for i := 0; i < catchupLimit+5; i++ {
		msg := readJSON(t, conn)
		if msg["type"] == "catchup.overflow" {
			overflowReceived = true
			assert.Equal(t, true, msg["has_more"])
			assert.Equal(t, room, msg["room"])
			break
		}
	}
	assert.True(t, overflowReceived, "expected catchup.overflow message")
}

func TestConnectionManager_ExplicitCatchupKeepsNewest(t *testing.T) {
	room := "bot:windowed"
	history := &stubRoomHistory{
		frames: map[string][]map[string]any{
			room: {
				{"type": "bot:event:new", "seq": 1, "_timestamp": int64(1000)},
				{"type": "bot:event:new", "seq": 2, "_timestamp": int64(2000)},
				{"type": "bot:event:new", "seq": 3, "_timestamp": int64(3000)},
			},
		},
	}
	manager := NewConnectionManager(history, 5*time.Second)
	server := newEventsServer(t, manager)

	conn := connectWS(t, server)
	readJSON(t, conn) // connection.established

	subscribeRoom(t, conn, room)
	for i := 1; i <= 3; i++ {
		readJSON(t, conn) // auto catch-up replay
	}

	// An explicit catchup with a smaller limit keeps the newest frames
	// and flags the truncation.
	writeClient(t, conn, ClientMessage{Action: "catchup", Room: room, Limit: 2})

	msg := readJSON(t, conn)
	assert.Equal(t, float64(2), msg["seq"])
	msg = readJSON(t, conn)
	assert.Equal(t, float64(3), msg["seq"])

	overflow := readJSON(t, conn)
	assert.Equal(t, "catchup.overflow", overflow["type"])
	assert.Equal(t, true, overflow["has_more"])
}

func TestConnectionManager_CatchupError(t *testing.T) {
	// Catchup error should be logged but not crash the connection.
	// Verify the connection remains usable after a history query failure.
	manager := NewConnectionManager(&stubRoomHistory{err: fmt.Errorf("database unreachable")}, 5*time.Second)
	server := newEventsServer(t, manager)

	conn := connectWS(t, server)
	readJSON(t, conn) // connection.established

	subscribeRoom(t, conn, "bot:err-test")

	// Give server time to process catchup and log error
	time.Sleep(100 * time.Millisecond)

	// Connection should still be alive — ping/pong works
	writeClient(t, conn, ClientMessage{Action: "ping"})
	msg := readJSON(t, conn)
	assert.Equal(t, "pong", msg["type"])
}

func TestConnection_EnqueueDropsWhenFull(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	c := &Connection{
		ID:            "lag-test",
		send:          make(chan []byte, 2),
		subscriptions: make(map[string]bool),
		ctx:           ctx,
		cancel:        cancel,
	}

	frame := func(i int) []byte {
		data, _ := json.Marshal(map[string]any{"type": "event:new", "seq": i})
		return data
	}

	// Fill the queue; the third frame is dropped and counted.
	c.enqueue(frame(1))
	c.enqueue(frame(2))
	c.enqueue(frame(3))
	assert.Equal(t, int64(1), c.dropped.Load())

	// Drain, then enqueue again: the lagged notice precedes the frame.
	<-c.send
	<-c.send
	c.enqueue(frame(4))

	var notice map[string]interface{}
	require.NoError(t, json.Unmarshal(<-c.send, &notice))
	assert.Equal(t, "connection.lagged", notice["type"])
	assert.Equal(t, float64(1), notice["dropped"])

	var next map[string]interface{}
	require.NoError(t, json.Unmarshal(<-c.send, &next))
	assert.Equal(t, float64(4), next["seq"])

	assert.Equal(t, int64(0), c.dropped.Load())
}

func TestConnectionManager_StreamSubscribe(t *testing.T) {
	manager := NewConnectionManager(&stubRoomHistory{}, 5*time.Second)

	id, frames, stop := manager.Subscribe(BotRoom("abc"))
	defer stop()
	assert.NotEmpty(t, id)
	assert.Equal(t, 1, manager.ActiveConnections())

	manager.Broadcast(EventTypeEventNew, map[string]any{
		"event_id": "ev-stream",
		"bot_id":   "abc",
	})

	readFrame := func() map[string]interface{} {
		select {
		case data := <-frames:
			var msg map[string]interface{}
			require.NoError(t, json.Unmarshal(data, &msg))
			return msg
		case <-time.After(5 * time.Second):
			t.Fatal("timed out waiting for frame")
			return nil
		}
	}

	msg := readFrame()
	assert.Equal(t, EventTypeEventNew, msg["type"])
	copyMsg := readFrame()
	assert.Equal(t, "bot:"+EventTypeEventNew, copyMsg["type"])

	// Stop releases the subscription; later broadcasts no longer land.
	stop()
	stop() // idempotent
	assert.Equal(t, 0, manager.ActiveConnections())

	manager.Broadcast(EventTypeEventNew, map[string]any{"event_id": "ev-after-stop"})
	select {
	case data := <-frames:
		t.Fatalf("unexpected frame after stop: %s", data)
	case <-time.After(200 * time.Millisecond):
	}
}

func TestConnectionManager_ConcurrentBroadcast(t *testing.T) {
	manager, server := setupTestManager(t)
	conn := connectWS(t, server)
	readJSON(t, conn) // connection.established

	time.Sleep(50 * time.Millisecond)

	// Broadcast 20 messages concurrently. Fleet snapshots carry no event
	// id, so none are deduplicated.
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			manager.Broadcast(EventTypeFleetStatus, map[string]any{"idx": idx})
		}(i)
	}
	wg.Wait()

	// Read all 20 messages (order may vary due to concurrency)
	received := 0
	var firstErr error
	for i := 0; i < 20; i++ {
		readCtx, readCancel := context.WithTimeout(context.Background(), 5*time.Second)
		_, _, err := conn.Read(readCtx)
		readCancel()
		if err != nil {
			firstErr = err
			break
		}
		received++
	}
	assert.Equal(t, 20, received, "should receive all 20 broadcast messages; first error: %v", firstErr)
}

func TestConnectionManager_BroadcastWithoutSubscribers(t *testing.T) {
	manager, _ := setupTestManager(t)

	// Should not panic with no connections, a nil payload, or an empty
	// type.
	assert.NotPanics(t, func() {
		manager.Broadcast(EventTypeEventNew, map[string]any{"event_id": "ev-nobody"})
		manager.Broadcast(EventTypeFleetStatus, nil)
		manager.Broadcast("", map[string]any{"ignored": true})
	})
}

func TestConnectionManager_CleanupOnDisconnect(t *testing.T) {
	manager, server := setupTestManager(t)

	// Connect and subscribe
	url := "ws" + server.URL[len("http"):]
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn, _, err := websocket.Dial(ctx, url, nil)
	require.NoError(t, err)

	// Read connection.established
	_, _, err = conn.Read(ctx)
	require.NoError(t, err)

	// Subscribe
	subMsg, _ := json.Marshal(ClientMessage{Action: "subscribe", Room: "bot:cleanup-test"})
	require.NoError(t, conn.Write(ctx, websocket.MessageText, subMsg))
	_, _, err = conn.Read(ctx) // subscription.confirmed
	require.NoError(t, err)

	assert.Equal(t, 1, manager.ActiveConnections())

	// Close the connection
	conn.Close(websocket.StatusNormalClosure, "")
	time.Sleep(200 * time.Millisecond)

	// Connection should be cleaned up
	assert.Equal(t, 0, manager.ActiveConnections())

	// Broadcast should not panic
	assert.NotPanics(t, func() {
		manager.Broadcast(EventTypeEventNew, map[string]any{
			"event_id": "ev-cleanup",
			"bot_id":   "cleanup-test",
		})
	})
}
