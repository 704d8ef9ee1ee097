// Package report ships agent telemetry to the central ingestion API.
//
// The reporter is nil-safe: NewReporter returns nil when central logging
// is not configured, and every method on a nil reporter is a no-op. Events
// are queued in memory and flushed in batches; critical events bypass the
// queue and are delivered immediately with retries.
package report

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"runtime"
	"sync"
	"time"

	"github.com/honeybotlabs/honeybot/pkg/models"
	"github.com/honeybotlabs/honeybot/pkg/version"
)

const (
	// maxQueueSize triggers an early flush when reached. Events are never
	// dropped; the queue grows past the cap until the flush drains it.
	maxQueueSize = 100

	// maxBatchSize bounds how many events one batch request carries.
	maxBatchSize = 100

	flushInterval     = 5 * time.Second
	heartbeatInterval = 30 * time.Second
	requestTimeout    = 10 * time.Second
	shutdownTimeout   = 30 * time.Second

	criticalAttempts = 3
)

// criticalRetryBase scales the backoff between critical delivery
// attempts (1x, 2x, 3x). Overridden in tests.
var criticalRetryBase = time.Second

// Config holds the connection settings for the central API.
type Config struct {
	BaseURL   string
	BotID     string
	BotSecret string
	Version   string
}

// Reporter queues telemetry events and ships them to the central API in
// the background. Create one with NewReporter and call Start.
type Reporter struct {
	cfg        Config
	httpClient *http.Client
	logger     *slog.Logger

	// activeSessions is polled for heartbeats. May be nil.
	activeSessions func() int

	mu    sync.Mutex
	queue []models.ReportEvent

	flushCh  chan struct{}
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewReporter creates a reporter, or returns nil when any of the base
// URL, bot ID, or bot secret is missing. A nil reporter is safe to use.
func NewReporter(cfg Config, activeSessions func() int) *Reporter {
	if cfg.BaseURL == "" || cfg.BotID == "" || cfg.BotSecret == "" {
		return nil
	}
	if cfg.Version == "" {
		cfg.Version = version.Full()
	}
	return &Reporter{
		cfg:            cfg,
		httpClient:     &http.Client{Timeout: requestTimeout},
		logger:         slog.Default().With("component", "reporter"),
		activeSessions: activeSessions,
		flushCh:        make(chan struct{}, 1),
		stopCh:         make(chan struct{}),
	}
}

// Enabled reports whether central logging is configured.
func (r *Reporter) Enabled() bool {
	return r != nil
}

// Register announces the bot to the central API. Called once at startup.
func (r *Reporter) Register(ctx context.Context, payload models.RegisterPayload) error {
	if r == nil {
		return nil
	}
	payload.BotID = r.cfg.BotID
	if payload.Version == "" {
		payload.Version = r.cfg.Version
	}
	if err := r.post(ctx, "/api/bots/register", payload); err != nil {
		return fmt.Errorf("failed to register bot: %w", err)
	}
	r.logger.Info("Registered with central API", "bot_id", r.cfg.BotID)
	return nil
}

// Start launches the flush and heartbeat loops.
func (r *Reporter) Start(ctx context.Context) {
	if r == nil {
		return
	}
	r.wg.Add(2)
	go r.runFlush(ctx)
	go r.runHeartbeat(ctx)
	r.logger.Info("Reporter started", "url", r.cfg.BaseURL, "bot_id", r.cfg.BotID)
}

// Stop halts the background loops, flushes what remains, and marks the
// bot offline. Bounded by the shutdown timeout.
func (r *Reporter) Stop() {
	if r == nil {
		return
	}
	r.stopOnce.Do(func() { close(r.stopCh) })
	r.wg.Wait()

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	for r.QueueLen() > 0 && ctx.Err() == nil {
		before := r.QueueLen()
		r.flush(ctx)
		if r.QueueLen() >= before {
			break
		}
	}
	if err := r.sendHeartbeat(ctx, models.BotStatusOffline); err != nil {
		r.logger.Warn("Failed to send offline heartbeat", "error", err)
	}
	r.logger.Info("Reporter stopped")
}

// Report queues an event for the next batch flush (thread-safe). When
// the queue reaches its cap an immediate flush is signalled instead of
// dropping events.
func (r *Reporter) Report(event models.ReportEvent) {
	if r == nil {
		return
	}
	event.QueuedAt = time.Now().UTC().Format(time.RFC3339)

	r.mu.Lock()
	r.queue = append(r.queue, event)
	full := len(r.queue) >= maxQueueSize
	r.mu.Unlock()

	if full {
		select {
		case r.flushCh <- struct{}{}:
		default:
		}
	}
}

// ReportCritical delivers one event immediately, bypassing the queue.
// After all retries fail the event is placed at the queue head so the
// next flush carries it.
func (r *Reporter) ReportCritical(ctx context.Context, event models.ReportEvent) error {
	if r == nil {
		return nil
	}

	var lastErr error
	for attempt := 1; attempt <= criticalAttempts; attempt++ {
		if lastErr = r.post(ctx, "/api/events", event); lastErr == nil {
			return nil
		}
		r.logger.Warn("Critical event delivery failed",
			"attempt", attempt,
			"error", lastErr)
		if !r.sleep(ctx, time.Duration(attempt)*criticalRetryBase) {
			break
		}
	}

	event.QueuedAt = time.Now().UTC().Format(time.RFC3339)
	r.mu.Lock()
	r.queue = append([]models.ReportEvent{event}, r.queue...)
	r.mu.Unlock()
	return fmt.Errorf("critical event queued after %d failed attempts: %w", criticalAttempts, lastErr)
}

// QueueLen reports how many events await the next flush (thread-safe).
func (r *Reporter) QueueLen() int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.queue)
}

func (r *Reporter) runFlush(ctx context.Context) {
	defer r.wg.Done()

	ticker := time.NewTicker(flushInterval)
	defer ticker.Stop()

	for {
		select {
		case <-r.stopCh:
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.flush(ctx)
		case <-r.flushCh:
			r.flush(ctx)
		}
	}
}

func (r *Reporter) runHeartbeat(ctx context.Context) {
	defer r.wg.Done()

	ticker := time.NewTicker(heartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case <-r.stopCh:
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := r.sendHeartbeat(ctx, models.BotStatusOnline); err != nil {
				r.logger.Warn("Heartbeat failed", "error", err)
			}
		}
	}
}

// flush sends one batch from the queue head. On failure the batch is
// placed back at the head so ordering within it is preserved.
func (r *Reporter) flush(ctx context.Context) {
	batch := r.takeBatch()
	if len(batch) == 0 {
		return
	}

	payload := struct {
		Events []models.ReportEvent `json:"events"`
	}{Events: batch}

	if err := r.post(ctx, "/api/events/batch", payload); err != nil {
		r.logger.Warn("Batch flush failed, requeueing",
			"events", len(batch),
			"error", err)
		r.mu.Lock()
		r.queue = append(batch, r.queue...)
		r.mu.Unlock()
		return
	}
	r.logger.Debug("Flushed events", "count", len(batch))
}

func (r *Reporter) takeBatch() []models.ReportEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.queue) == 0 {
		return nil
	}
	n := len(r.queue)
	if n > maxBatchSize {
		n = maxBatchSize
	}
	batch := r.queue[:n]
	r.queue = append([]models.ReportEvent(nil), r.queue[n:]...)
	return batch
}

func (r *Reporter) sendHeartbeat(ctx context.Context, status models.BotStatus) error {
	sessions := 0
	if r.activeSessions != nil {
		sessions = r.activeSessions()
	}
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)

	return r.post(ctx, "/api/bots/"+r.cfg.BotID+"/heartbeat", models.HeartbeatPayload{
		Status:         status,
		ActiveSessions: sessions,
		MemoryUsage:    ms.HeapAlloc,
		Version:        r.cfg.Version,
	})
}

func (r *Reporter) post(ctx context.Context, path string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.cfg.BaseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Bot-Id", r.cfg.BotID)
	req.Header.Set("X-Bot-Secret", r.cfg.BotSecret)

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request to %s failed: %w", path, err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("central API returned status %d for %s", resp.StatusCode, path)
	}
	return nil
}

// sleep waits for the duration unless the reporter is stopped or the
// context is cancelled first.
func (r *Reporter) sleep(ctx context.Context, d time.Duration) bool {
	select {
	case <-r.stopCh:
		return false
	case <-ctx.Done():
		return false
	case <-time.After(d):
		return true
	}
}
