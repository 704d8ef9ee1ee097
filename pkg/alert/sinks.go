package alert

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/honeybotlabs/honeybot/pkg/models"
)

// LogSink writes alerts to structured logs. Always available.
type LogSink struct {
	logger *slog.Logger
}

func NewLogSink() *LogSink {
	return &LogSink{logger: slog.Default().With("component", "alerts")}
}

func (s *LogSink) Name() string { return "log" }

func (s *LogSink) Send(_ context.Context, rec Record) error {
	attrs := []any{
		"title", rec.Title,
		"user_id", rec.UserID,
		"score", rec.Score,
		"detections", len(rec.Detections),
	}
	if rec.Level == models.LevelCritical {
		s.logger.Error(rec.Summary, attrs...)
	} else {
		s.logger.Warn(rec.Summary, attrs...)
	}
	return nil
}

// WebhookSink POSTs the full alert record as JSON to a configured URL.
type WebhookSink struct {
	url        string
	httpClient *http.Client
}

// NewWebhookSink returns nil when no URL is configured.
func NewWebhookSink(url string) *WebhookSink {
	if url == "" {
		return nil
	}
	return &WebhookSink{
		url:        url,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

func (s *WebhookSink) Name() string { return "webhook" }

func (s *WebhookSink) Send(ctx context.Context, rec Record) error {
	if s == nil {
		return nil
	}
	body, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to marshal alert: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("webhook request failed: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("webhook returned status %d", resp.StatusCode)
	}
	return nil
}

// CriticalReporter is the slice of the fleet reporter the central sink
// needs: immediate delivery that bypasses the batching queue.
type CriticalReporter interface {
	ReportCritical(ctx context.Context, event models.ReportEvent) error
}

// CentralSink forwards alerts to the central ingestion API through the
// reporter's critical path.
type CentralSink struct {
	reporter CriticalReporter
}

// NewCentralSink returns nil when central reporting is not configured.
func NewCentralSink(r CriticalReporter) *CentralSink {
	if r == nil {
		return nil
	}
	return &CentralSink{reporter: r}
}

func (s *CentralSink) Name() string { return "central" }

func (s *CentralSink) Send(ctx context.Context, rec Record) error {
	if s == nil {
		return nil
	}
	types := make([]string, 0, len(rec.Detections))
	for _, d := range rec.Detections {
		types = append(types, d.Type)
	}
	score := rec.Score
	return s.reporter.ReportCritical(ctx, models.ReportEvent{
		EventType:      models.EventTypeAlert,
		Level:          rec.Level,
		UserID:         rec.UserID,
		SessionID:      rec.SessionID,
		ThreatScore:    &score,
		DetectionTypes: types,
		Metadata: map[string]any{
			"title":   rec.Title,
			"summary": rec.Summary,
		},
	})
}
