package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/honeybotlabs/honeybot/pkg/services"
)

// NotifyListener receives PostgreSQL NOTIFY payloads on the shared
// events channel and dispatches them to the local ConnectionManager.
// It holds a dedicated connection: LISTEN state is per-connection and
// pooled connections would lose it between checkouts.
//
// The channel is fixed for the lifetime of the listener. Rooms are
// hub-local, so there is nothing to LISTEN or UNLISTEN as dashboard
// clients come and go.
type NotifyListener struct {
	connString string
	channel    string
	conn       *pgx.Conn // Dedicated connection for LISTEN
	connMu     sync.Mutex
	manager    *ConnectionManager
	warnings   *services.SystemWarningsService

	listening atomic.Bool

	// cancelLoop and loopDone coordinate graceful shutdown of the receive loop.
	cancelLoop context.CancelFunc
	loopDone   chan struct{}
}

// NewNotifyListener creates a new PostgreSQL NOTIFY listener for the
// given channel (NotifyChannel in production). warnings may be nil; when
// set, a bus_health warning is raised while the connection is down and
// cleared on recovery.
func NewNotifyListener(connString, channel string, manager *ConnectionManager, warnings *services.SystemWarningsService) *NotifyListener {
	if channel == "" {
		channel = NotifyChannel
	}
	return &NotifyListener{
		connString: connString,
		channel:    channel,
		manager:    manager,
		warnings:   warnings,
	}
}

// Start establishes the dedicated connection, issues LISTEN, and begins
// receiving notifications.
func (l *NotifyListener) Start(ctx context.Context) error {
	conn, err := pgx.Connect(ctx, l.connString)
	if err != nil {
		return fmt.Errorf("failed to connect for LISTEN: %w", err)
	}
	if _, err := conn.Exec(ctx, "LISTEN "+pgx.Identifier{l.channel}.Sanitize()); err != nil {
		_ = conn.Close(ctx)
		return fmt.Errorf("LISTEN %s failed: %w", l.channel, err)
	}

	l.connMu.Lock()
	l.conn = conn
	l.connMu.Unlock()

	l.listening.Store(true)

	// Start the notification receive loop with a cancellable context
	// so Stop() can signal it to exit before closing the connection.
	loopCtx, cancel := context.WithCancel(ctx)
	l.cancelLoop = cancel
	l.loopDone = make(chan struct{})
	go func() {
		defer close(l.loopDone)
		l.receiveLoop(loopCtx)
	}()

	slog.Info("NotifyListener started", "channel", l.channel)
	return nil
}

// Listening reports whether the LISTEN connection is currently live.
func (l *NotifyListener) Listening() bool {
	return l.listening.Load()
}

// receiveLoop continuously receives notifications and dispatches them to
// the ConnectionManager. It is the sole goroutine that touches the pgx
// connection while running.
func (l *NotifyListener) receiveLoop(ctx context.Context) {
	for {
		if ctx.Err() != nil {
			return
		}

		l.connMu.Lock()
		conn := l.conn
		l.connMu.Unlock()

		if conn == nil {
			l.reconnect(ctx)
			continue
		}

		notification, err := conn.WaitForNotification(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return // Context cancelled — shutting down
			}
			slog.Error("NOTIFY receive error", "channel", l.channel, "error", err)
			l.listening.Store(false)
			l.raiseWarning("Pub/sub listener lost its database connection", err)
			l.reconnect(ctx)
			continue
		}

		l.dispatch(notification.Payload)
	}
}

// dispatch unpacks a NOTIFY payload and hands it to the local hub. The
// hub's dedup window filters the echo of this instance's own publishes,
// so every payload can be broadcast unconditionally here.
func (l *NotifyListener) dispatch(payload string) {
	var data map[string]any
	if err := json.Unmarshal([]byte(payload), &data); err != nil {
		slog.Error("Malformed NOTIFY payload", "channel", l.channel, "error", err)
		return
	}

	eventType, _ := data["type"].(string)
	if eventType == "" {
		eventType = EventTypeEventNew
	}
	delete(data, "type")

	l.manager.Broadcast(eventType, data)
}

// reconnect re-establishes the LISTEN connection with exponential
// backoff, re-issuing LISTEN on the fresh connection.
func (l *NotifyListener) reconnect(ctx context.Context) {
	l.connMu.Lock()
	defer l.connMu.Unlock()

	// Close old connection
	if l.conn != nil {
		_ = l.conn.Close(ctx)
		l.conn = nil
	}

	backoff := time.Second
	for {
		select {
		case <-ctx.Done():
			return
		case <-time.After(backoff):
		}

		conn, err := pgx.Connect(ctx, l.connString)
		if err != nil {
			slog.Error("LISTEN reconnect failed", "error", err, "backoff", backoff)
			l.raiseWarning("Pub/sub listener cannot reach the database", err)
			backoff = min(backoff*2, 30*time.Second)
			continue
		}
		if _, err := conn.Exec(ctx, "LISTEN "+pgx.Identifier{l.channel}.Sanitize()); err != nil {
			slog.Error("Re-LISTEN failed", "channel", l.channel, "error", err)
			l.raiseWarning("Pub/sub listener cannot re-establish LISTEN", err)
			_ = conn.Close(ctx)
			backoff = min(backoff*2, 30*time.Second)
			continue
		}

		l.conn = conn
		l.listening.Store(true)
		l.clearWarning()
		slog.Info("NotifyListener reconnected", "channel", l.channel)
		return
	}
}

// Stop signals the receive loop to exit, waits for it to finish,
// then closes the LISTEN connection.
func (l *NotifyListener) Stop(ctx context.Context) {
	l.listening.Store(false)

	// Signal the receive loop to exit and wait for it to finish
	// before closing the connection. This prevents a race between
	// WaitForNotification and conn.Close().
	if l.cancelLoop != nil {
		l.cancelLoop()
	}
	if l.loopDone != nil {
		<-l.loopDone
	}

	l.connMu.Lock()
	defer l.connMu.Unlock()
	if l.conn != nil {
		_ = l.conn.Close(ctx)
		l.conn = nil
	}
}

func (l *NotifyListener) raiseWarning(message string, err error) {
	if l.warnings == nil {
		return
	}
	l.warnings.AddWarning(services.WarningCategoryBusHealth, message, err.Error(), l.channel)
}

func (l *NotifyListener) clearWarning() {
	if l.warnings == nil {
		return
	}
	l.warnings.ClearBySourceID(services.WarningCategoryBusHealth, l.channel)
}
