package events

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"
)

// catchupLimit is the maximum number of frames replayed per room
// catch-up. If more history was missed, a catchup.overflow message tells
// the client to do a full REST reload.
const catchupLimit = 200

// catchupTimeout bounds the history query behind a catch-up so a slow
// database cannot pin the client's read loop indefinitely.
const catchupTimeout = 10 * time.Second

// sendQueueSize is the per-connection frame buffer. When it fills the
// connection is lagging; further frames are dropped and counted.
const sendQueueSize = 256

// dedupWindow is how long a broadcast event id suppresses duplicates.
// Covers the NOTIFY echo of this instance's own publishes as well as
// redeliveries from peers.
const dedupWindow = 10 * time.Second

// seenSweepSize triggers a sweep of expired dedup entries once the seen
// map grows past it.
const seenSweepSize = 1024

// RoomHistory supplies recent persisted frames for a room so late
// subscribers can backfill what they missed. Implementations return
// ready-to-send frames (type and _timestamp already set) in
// chronological order. Implemented by HistoryAdapter.
type RoomHistory interface {
	RecentRoomEvents(ctx context.Context, room string, limit int) ([]map[string]any, error)
}

// ConnectionManager manages realtime subscribers and room memberships.
// Each ingestion process has one ConnectionManager instance; remote
// instances reach its subscribers through the NOTIFY listener.
type ConnectionManager struct {
	// Active connections: connection_id → *Connection
	connections map[string]*Connection
	mu          sync.RWMutex

	// Room memberships: room → set of connection_ids
	rooms  map[string]map[string]bool
	roomMu sync.RWMutex

	// RoomHistory for subscribe catch-up. Set after construction: the
	// adapter wraps services that broadcast through this manager.
	history   RoomHistory
	historyMu sync.RWMutex

	// Recently broadcast event keys for duplicate suppression
	seen   map[string]time.Time
	seenMu sync.Mutex

	// Write timeout for WebSocket sends and control replies
	writeTimeout time.Duration
}

// Connection represents a single realtime subscriber. Frames are queued
// on a bounded channel; the transport drains it (a writer goroutine for
// WebSocket clients, the SSE handler loop for stream clients). The
// channel is never closed — transports stop on the connection context.
//
// subscriptions is accessed WITHOUT a lock. This is safe because all
// reads and writes (subscribe, unsubscribe, unregisterConnection) happen
// on the single goroutine that owns the connection: HandleConnection's
// read loop and its deferred cleanup for WebSocket clients, the caller
// of Subscribe and its cancel func for stream clients. If a Connection
// is ever mutated from another goroutine (e.g. an admin "kick" feature),
// subscriptions must gain a mutex.
type Connection struct {
	ID string

	send    chan []byte
	dropped atomic.Int64 // frames dropped since the last lagged notice

	subscriptions map[string]bool // rooms this connection has joined

	ctx    context.Context
	cancel context.CancelFunc
}

// enqueue hands a frame to the connection without blocking. On a full
// queue the frame is dropped and counted; a connection.lagged notice
// goes out ahead of the next frame that fits so the client knows it
// missed data and can re-sync through the REST API.
func (c *Connection) enqueue(frame []byte) {
	if c.ctx.Err() != nil {
		return
	}

	if n := c.dropped.Load(); n > 0 {
		notice, err := json.Marshal(map[string]any{
			"type":       "connection.lagged",
			"dropped":    n,
			"_timestamp": time.Now().UnixMilli(),
		})
		if err == nil {
			select {
			case c.send <- notice:
				// Another goroutine may have counted more drops since the
				// Load; only clear what this notice reported.
				c.dropped.CompareAndSwap(n, 0)
			default:
			}
		}
	}

	select {
	case c.send <- frame:
	default:
		c.dropped.Add(1)
	}
}

// NewConnectionManager creates a new ConnectionManager. history may be
// nil when catch-up is wired later via SetHistory.
func NewConnectionManager(history RoomHistory, writeTimeout time.Duration) *ConnectionManager {
	return &ConnectionManager{
		connections:  make(map[string]*Connection),
		rooms:        make(map[string]map[string]bool),
		history:      history,
		seen:         make(map[string]time.Time),
		writeTimeout: writeTimeout,
	}
}

// SetHistory sets the RoomHistory for subscribe catch-up. Called once
// during startup after the services that feed the adapter are built.
func (m *ConnectionManager) SetHistory(h RoomHistory) {
	m.historyMu.Lock()
	defer m.historyMu.Unlock()
	m.history = h
}

// HandleConnection manages the lifecycle of a single WebSocket
// connection. Called by the WebSocket HTTP handler after upgrade.
// Blocks until the connection closes.
func (m *ConnectionManager) HandleConnection(parentCtx context.Context, conn *websocket.Conn) {
	ctx, cancel := context.WithCancel(parentCtx)
	c := &Connection{
		ID:            uuid.New().String(),
		send:          make(chan []byte, sendQueueSize),
		subscriptions: make(map[string]bool),
		ctx:           ctx,
		cancel:        cancel,
	}

	m.registerConnection(c)
	defer func() {
		m.unregisterConnection(c)
		_ = conn.Close(websocket.StatusNormalClosure, "")
	}()

	go m.writeLoop(c, conn)

	m.sendJSON(c, map[string]string{
		"type":          "connection.established",
		"connection_id": c.ID,
	})

	// Read loop — process client messages until the connection closes
	for {
		_, data, err := conn.Read(ctx)
		if err != nil {
			return
		}

		var msg ClientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			slog.Warn("Invalid WebSocket message",
				"connection_id", c.ID, "error", err)
			continue
		}

		m.handleClientMessage(ctx, c, &msg)
	}
}

// Subscribe registers a transport-less subscriber and returns its frame
// channel. Used by the SSE stream endpoint; WebSocket clients go through
// HandleConnection instead. The subscriber receives every global emit
// plus room copies for the rooms given here. The channel is never
// closed: callers stop reading and call cancel, which releases the
// subscription.
func (m *ConnectionManager) Subscribe(rooms ...string) (string, <-chan []byte, func()) {
	ctx, cancel := context.WithCancel(context.Background())
	c := &Connection{
		ID:            uuid.New().String(),
		send:          make(chan []byte, sendQueueSize),
		subscriptions: make(map[string]bool),
		ctx:           ctx,
		cancel:        cancel,
	}

	m.registerConnection(c)
	for _, room := range rooms {
		if room != "" {
			m.subscribe(c, room)
		}
	}

	var once sync.Once
	stop := func() {
		once.Do(func() { m.unregisterConnection(c) })
	}
	return c.ID, c.send, stop
}

// Broadcast fans an event out to subscribers. The frame goes to every
// connection; room-scoped copies go to the bot room, category room,
// matching threat rooms, and the alerts room per the routing rules in
// the package doc. Every payload is stamped with _timestamp (unix ms).
func (m *ConnectionManager) Broadcast(eventType string, data map[string]any) {
	if eventType == "" {
		return
	}
	if data == nil {
		data = map[string]any{}
	}

	// Event-carrying broadcasts are idempotent by id: the NOTIFY channel
	// echoes this instance's own publishes back through the listener.
	if id, ok := stringField(data, "event_id"); ok {
		if m.suppressDuplicate(eventType + "|" + id) {
			slog.Debug("Suppressed duplicate broadcast",
				"type", eventType, "event_id", id)
			return
		}
	}

	ts := time.Now().UnixMilli()

	global, err := marshalFrame(eventType, data, ts)
	if err != nil {
		slog.Error("Failed to marshal broadcast frame",
			"type", eventType, "error", err)
		return
	}
	m.sendAll(global)

	if botID, ok := stringField(data, "bot_id"); ok {
		m.emitRoom(BotRoom(botID), "bot:"+eventType, data, ts)
	}
	if category, ok := stringField(data, "persona_category"); ok {
		m.emitRoom(CategoryRoom(category), "category:"+eventType, data, ts)
	}
	if score, ok := numberField(data, "threat_score"); ok {
		for _, threshold := range ThreatThresholds {
			if score < threshold {
				continue
			}
			enriched := make(map[string]any, len(data)+1)
			for k, v := range data {
				enriched[k] = v
			}
			enriched["threshold"] = threshold
			m.emitRoom(ThreatRoom(threshold), EventTypeThreat, enriched, ts)
		}
	}
	if strings.HasPrefix(eventType, "alert") {
		m.sendRoom(RoomAlerts, global)
	}
}

// ActiveConnections returns the count of active subscribers.
func (m *ConnectionManager) ActiveConnections() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.connections)
}

// subscriberCount returns the number of members in a room.
func (m *ConnectionManager) subscriberCount(room string) int {
	m.roomMu.RLock()
	defer m.roomMu.RUnlock()
	return len(m.rooms[room])
}

// handleClientMessage dispatches a client message to the appropriate handler.
func (m *ConnectionManager) handleClientMessage(ctx context.Context, c *Connection, msg *ClientMessage) {
	switch msg.Action {
	case "subscribe":
		if msg.Room == "" {
			m.sendJSON(c, map[string]string{"type": "error", "message": "room is required for subscribe"})
			return
		}
		if !ValidRoom(msg.Room) {
			m.sendJSON(c, map[string]string{"type": "error", "message": "unknown room: " + msg.Room})
			return
		}
		m.subscribe(c, msg.Room)
		m.sendJSON(c, map[string]string{
			"type": "subscription.confirmed",
			"room": msg.Room,
		})
		// Auto catch-up: replay recent room activity so late subscribers
		// don't start from a blank dashboard.
		m.handleCatchup(ctx, c, msg.Room, catchupLimit)

	case "unsubscribe":
		if msg.Room == "" {
			m.sendJSON(c, map[string]string{"type": "error", "message": "room is required for unsubscribe"})
			return
		}
		m.unsubscribe(c, msg.Room)

	case "catchup":
		if msg.Room == "" {
			m.sendJSON(c, map[string]string{"type": "error", "message": "room is required for catchup"})
			return
		}
		m.handleCatchup(ctx, c, msg.Room, msg.Limit)

	case "ping":
		m.sendJSON(c, map[string]string{"type": "pong"})
	}
}

// subscribe adds a connection to a room. Rooms are hub-local: remote
// instances deliver through the shared NOTIFY channel, so joining a room
// never touches the database connection.
func (m *ConnectionManager) subscribe(c *Connection, room string) {
	m.roomMu.Lock()
	if _, exists := m.rooms[room]; !exists {
		m.rooms[room] = make(map[string]bool)
	}
	m.rooms[room][c.ID] = true
	m.roomMu.Unlock()

	c.subscriptions[room] = true
}

// unsubscribe removes a connection from a room, dropping the room once
// its last member leaves.
func (m *ConnectionManager) unsubscribe(c *Connection, room string) {
	m.roomMu.Lock()
	if subs, exists := m.rooms[room]; exists {
		delete(subs, c.ID)
		if len(subs) == 0 {
			delete(m.rooms, room)
		}
	}
	m.roomMu.Unlock()

	delete(c.subscriptions, room)
}

// handleCatchup replays recent persisted activity for a room to one
// connection, oldest first. Replay frames travel the same bounded queue
// as live frames, so an overrun client drops them like any other frame.
func (m *ConnectionManager) handleCatchup(ctx context.Context, c *Connection, room string, limit int) {
	m.historyMu.RLock()
	history := m.history
	m.historyMu.RUnlock()
	if history == nil {
		return
	}
	if limit <= 0 || limit > catchupLimit {
		limit = catchupLimit
	}

	queryCtx, cancel := context.WithTimeout(ctx, catchupTimeout)
	defer cancel()

	// One extra row detects overflow.
	frames, err := history.RecentRoomEvents(queryCtx, room, limit+1)
	if err != nil {
		slog.Error("Catchup query failed", "room", room, "error", err)
		return
	}

	// Frames come back oldest first; on overflow keep the newest limit
	// and flag that older history exists.
	hasMore := len(frames) > limit
	if hasMore {
		frames = frames[len(frames)-limit:]
	}

	for _, frame := range frames {
		data, err := json.Marshal(frame)
		if err != nil {
			slog.Warn("Failed to marshal catchup frame", "room", room, "error", err)
			continue
		}
		c.enqueue(data)
	}

	// If more history was missed than the catchup limit, tell the client
	// to do a full REST reload instead of paginating catchup requests.
	if hasMore {
		m.sendJSON(c, map[string]interface{}{
			"type":     "catchup.overflow",
			"room":     room,
			"has_more": true,
		})
	}
}

// registerConnection adds a connection to the tracking map.
func (m *ConnectionManager) registerConnection(c *Connection) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.connections[c.ID] = c
}

// unregisterConnection removes a connection and all its room
// memberships, then cancels its context so transport goroutines exit.
func (m *ConnectionManager) unregisterConnection(c *Connection) {
	for room := range c.subscriptions {
		m.unsubscribe(c, room)
	}

	m.mu.Lock()
	delete(m.connections, c.ID)
	m.mu.Unlock()

	c.cancel()
}

// writeLoop drains the send queue to the WebSocket. Runs as a dedicated
// goroutine per connection so one slow client never blocks a broadcast.
func (m *ConnectionManager) writeLoop(c *Connection, conn *websocket.Conn) {
	for {
		select {
		case <-c.ctx.Done():
			return
		case frame := <-c.send:
			writeCtx, cancel := context.WithTimeout(c.ctx, m.writeTimeout)
			err := conn.Write(writeCtx, websocket.MessageText, frame)
			cancel()
			if err != nil {
				slog.Debug("WebSocket write failed",
					"connection_id", c.ID, "error", err)
				c.cancel()
				return
			}
		}
	}
}

// sendAll enqueues a frame for every active connection.
func (m *ConnectionManager) sendAll(frame []byte) {
	// Snapshot under the lock, enqueue after releasing it, so a burst of
	// broadcasts never stalls connection register/unregister.
	m.mu.RLock()
	conns := make([]*Connection, 0, len(m.connections))
	for _, c := range m.connections {
		conns = append(conns, c)
	}
	m.mu.RUnlock()

	for _, c := range conns {
		c.enqueue(frame)
	}
}

// sendRoom enqueues a frame for every member of a room.
func (m *ConnectionManager) sendRoom(room string, frame []byte) {
	m.roomMu.RLock()
	connIDs, exists := m.rooms[room]
	if !exists {
		m.roomMu.RUnlock()
		return
	}
	ids := make([]string, 0, len(connIDs))
	for id := range connIDs {
		ids = append(ids, id)
	}
	m.roomMu.RUnlock()

	m.mu.RLock()
	conns := make([]*Connection, 0, len(ids))
	for _, id := range ids {
		if c, ok := m.connections[id]; ok {
			conns = append(conns, c)
		}
	}
	m.mu.RUnlock()

	for _, c := range conns {
		c.enqueue(frame)
	}
}

// emitRoom marshals a room-scoped copy of a broadcast and delivers it.
// Skips the marshal entirely when the room has no members.
func (m *ConnectionManager) emitRoom(room, frameType string, data map[string]any, ts int64) {
	if m.subscriberCount(room) == 0 {
		return
	}
	frame, err := marshalFrame(frameType, data, ts)
	if err != nil {
		slog.Error("Failed to marshal room frame",
			"room", room, "type", frameType, "error", err)
		return
	}
	m.sendRoom(room, frame)
}

// suppressDuplicate records a broadcast key and reports whether it was
// already seen inside the dedup window. Expired entries are swept lazily
// once the map grows past seenSweepSize.
func (m *ConnectionManager) suppressDuplicate(key string) bool {
	now := time.Now()
	m.seenMu.Lock()
	defer m.seenMu.Unlock()

	if seenAt, ok := m.seen[key]; ok && now.Sub(seenAt) < dedupWindow {
		return true
	}
	m.seen[key] = now

	if len(m.seen) > seenSweepSize {
		for k, seenAt := range m.seen {
			if now.Sub(seenAt) >= dedupWindow {
				delete(m.seen, k)
			}
		}
	}
	return false
}

// sendJSON queues a control reply for a single connection. Unlike
// broadcast frames these wait briefly for queue space: silently dropping
// a subscription.confirmed would leave the client unable to trust its
// own state.
func (m *ConnectionManager) sendJSON(c *Connection, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		slog.Warn("Failed to marshal WebSocket message",
			"connection_id", c.ID, "error", err)
		return
	}

	timer := time.NewTimer(m.writeTimeout)
	defer timer.Stop()
	select {
	case c.send <- data:
	case <-c.ctx.Done():
	case <-timer.C:
		slog.Warn("Dropped control message on full queue", "connection_id", c.ID)
	}
}

// marshalFrame builds the wire form of a broadcast: the payload plus the
// frame type and the broadcast timestamp in unix milliseconds.
func marshalFrame(frameType string, data map[string]any, ts int64) ([]byte, error) {
	frame := make(map[string]any, len(data)+2)
	for k, v := range data {
		frame[k] = v
	}
	frame["type"] = frameType
	frame["_timestamp"] = ts
	return json.Marshal(frame)
}

func stringField(data map[string]any, key string) (string, bool) {
	v, ok := data[key].(string)
	return v, ok && v != ""
}

func numberField(data map[string]any, key string) (float64, bool) {
	switch v := data[key].(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	default:
		return 0, false
	}
}
