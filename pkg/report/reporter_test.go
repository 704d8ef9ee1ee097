package report

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/honeybotlabs/honeybot/pkg/models"
)

type capturedRequest struct {
	Path    string
	Headers http.Header
	Body    []byte
}

// centralServer records every request and answers with the configured
// status code (200 unless failPaths matches).
type centralServer struct {
	srv *httptest.Server

	mu        sync.Mutex
	requests  []capturedRequest
	failPaths map[string]int
}

func newCentralServer(t *testing.T) *centralServer {
	t.Helper()
	cs := &centralServer{failPaths: map[string]int{}}
	cs.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)

		cs.mu.Lock()
		cs.requests = append(cs.requests, capturedRequest{
			Path:    r.URL.Path,
			Headers: r.Header.Clone(),
			Body:    body,
		})
		status, failing := cs.failPaths[r.URL.Path]
		cs.mu.Unlock()

		if failing {
			w.WriteHeader(status)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(cs.srv.Close)
	return cs
}

func (cs *centralServer) fail(path string, status int) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	cs.failPaths[path] = status
}

func (cs *centralServer) recover(path string) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	delete(cs.failPaths, path)
}

func (cs *centralServer) captured(path string) []capturedRequest {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	var out []capturedRequest
	for _, req := range cs.requests {
		if req.Path == path {
			out = append(out, req)
		}
	}
	return out
}

func newTestReporter(t *testing.T, cs *centralServer, sessions func() int) *Reporter {
	t.Helper()
	r := NewReporter(Config{
		BaseURL:   cs.srv.URL,
		BotID:     "bot-1",
		BotSecret: "secret-1",
		Version:   "1.2.3",
	}, sessions)
	require.NotNil(t, r)
	return r
}

func TestNewReporterDisabled(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"no url", Config{BotID: "b", BotSecret: "s"}},
		{"no bot id", Config{BaseURL: "http://x", BotSecret: "s"}},
		{"no secret", Config{BaseURL: "http://x", BotID: "b"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewReporter(tt.cfg, nil)
			assert.Nil(t, r)
			assert.False(t, r.Enabled())

			// Every method must be a no-op on the nil reporter.
			r.Report(models.ReportEvent{EventType: models.EventTypeMessage})
			assert.NoError(t, r.ReportCritical(context.Background(), models.ReportEvent{}))
			assert.NoError(t, r.Register(context.Background(), models.RegisterPayload{}))
			r.Start(context.Background())
			r.Stop()
			assert.Equal(t, 0, r.QueueLen())
		})
	}
}

func TestRegister(t *testing.T) {
	cs := newCentralServer(t)
	r := newTestReporter(t, cs, nil)

	err := r.Register(context.Background(), models.RegisterPayload{
		PersonaName:     "Maya",
		PersonaCategory: "customer_support",
		CompanyName:     "Acme Widgets",
	})
	require.NoError(t, err)

	reqs := cs.captured("/api/bots/register")
	require.Len(t, reqs, 1)
	assert.Equal(t, "application/json", reqs[0].Headers.Get("Content-Type"))
	assert.Equal(t, "bot-1", reqs[0].Headers.Get("X-Bot-Id"))
	assert.Equal(t, "secret-1", reqs[0].Headers.Get("X-Bot-Secret"))

	var payload models.RegisterPayload
	require.NoError(t, json.Unmarshal(reqs[0].Body, &payload))
	assert.Equal(t, "bot-1", payload.BotID)
	assert.Equal(t, "Maya", payload.PersonaName)
}

func TestRegisterFailure(t *testing.T) {
	cs := newCentralServer(t)
	cs.fail("/api/bots/register", http.StatusUnauthorized)
	r := newTestReporter(t, cs, nil)

	err := r.Register(context.Background(), models.RegisterPayload{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 401")
}

func TestFlushSendsQueuedBatch(t *testing.T) {
	cs := newCentralServer(t)
	r := newTestReporter(t, cs, nil)

	r.Report(models.ReportEvent{EventType: models.EventTypeMessage, UserID: "u1"})
	r.Report(models.ReportEvent{EventType: models.EventTypeDetection, UserID: "u2"})
	require.Equal(t, 2, r.QueueLen())

	r.flush(context.Background())
	assert.Equal(t, 0, r.QueueLen())

	reqs := cs.captured("/api/events/batch")
	require.Len(t, reqs, 1)

	var batch struct {
		Events []models.ReportEvent `json:"events"`
	}
	require.NoError(t, json.Unmarshal(reqs[0].Body, &batch))
	require.Len(t, batch.Events, 2)
	assert.Equal(t, "u1", batch.Events[0].UserID)
	assert.Equal(t, "u2", batch.Events[1].UserID)
	assert.NotEmpty(t, batch.Events[0].QueuedAt)
}

func TestFlushFailureRequeuesInOrder(t *testing.T) {
	cs := newCentralServer(t)
	r := newTestReporter(t, cs, nil)

	for i := 0; i < 3; i++ {
		r.Report(models.ReportEvent{EventType: models.EventTypeMessage, UserID: fmt.Sprintf("u%d", i)})
	}

	cs.fail("/api/events/batch", http.StatusInternalServerError)
	r.flush(context.Background())
	assert.Equal(t, 3, r.QueueLen())

	cs.recover("/api/events/batch")
	r.flush(context.Background())
	assert.Equal(t, 0, r.QueueLen())

	reqs := cs.captured("/api/events/batch")
	require.Len(t, reqs, 2)

	var batch struct {
		Events []models.ReportEvent `json:"events"`
	}
	require.NoError(t, json.Unmarshal(reqs[1].Body, &batch))
	require.Len(t, batch.Events, 3)
	assert.Equal(t, "u0", batch.Events[0].UserID)
	assert.Equal(t, "u2", batch.Events[2].UserID)
}

func TestFlushRespectsBatchLimit(t *testing.T) {
	cs := newCentralServer(t)
	r := newTestReporter(t, cs, nil)

	for i := 0; i < maxBatchSize+20; i++ {
		r.Report(models.ReportEvent{EventType: models.EventTypeMessage})
	}

	r.flush(context.Background())
	assert.Equal(t, 20, r.QueueLen())

	r.flush(context.Background())
	assert.Equal(t, 0, r.QueueLen())
}

func TestReportCriticalBypassesQueue(t *testing.T) {
	cs := newCentralServer(t)
	r := newTestReporter(t, cs, nil)

	score := 95.0
	err := r.ReportCritical(context.Background(), models.ReportEvent{
		EventType:   models.EventTypeUserBlocked,
		Level:       models.LevelCritical,
		UserID:      "u1",
		ThreatScore: &score,
	})
	require.NoError(t, err)
	assert.Equal(t, 0, r.QueueLen())

	reqs := cs.captured("/api/events")
	require.Len(t, reqs, 1)

	var ev models.ReportEvent
	require.NoError(t, json.Unmarshal(reqs[0].Body, &ev))
	assert.Equal(t, models.EventTypeUserBlocked, ev.EventType)
	assert.Equal(t, "u1", ev.UserID)
}

func TestReportCriticalRetriesThenQueuesAtHead(t *testing.T) {
	old := criticalRetryBase
	criticalRetryBase = time.Millisecond
	t.Cleanup(func() { criticalRetryBase = old })

	cs := newCentralServer(t)
	cs.fail("/api/events", http.StatusBadGateway)
	r := newTestReporter(t, cs, nil)

	r.Report(models.ReportEvent{EventType: models.EventTypeMessage, UserID: "queued-first"})

	err := r.ReportCritical(context.Background(), models.ReportEvent{
		EventType: models.EventTypeUserBlocked,
		UserID:    "critical-user",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "3 failed attempts")
	assert.Len(t, cs.captured("/api/events"), criticalAttempts)
	assert.Equal(t, 2, r.QueueLen())

	// The failed critical event must be first out on the next flush.
	r.flush(context.Background())
	reqs := cs.captured("/api/events/batch")
	require.Len(t, reqs, 1)

	var batch struct {
		Events []models.ReportEvent `json:"events"`
	}
	require.NoError(t, json.Unmarshal(reqs[0].Body, &batch))
	require.Len(t, batch.Events, 2)
	assert.Equal(t, "critical-user", batch.Events[0].UserID)
	assert.Equal(t, "queued-first", batch.Events[1].UserID)
}

func TestHeartbeatPayload(t *testing.T) {
	cs := newCentralServer(t)
	r := newTestReporter(t, cs, func() int { return 7 })

	require.NoError(t, r.sendHeartbeat(context.Background(), models.BotStatusOnline))

	reqs := cs.captured("/api/bots/bot-1/heartbeat")
	require.Len(t, reqs, 1)

	var hb models.HeartbeatPayload
	require.NoError(t, json.Unmarshal(reqs[0].Body, &hb))
	assert.Equal(t, models.BotStatusOnline, hb.Status)
	assert.Equal(t, 7, hb.ActiveSessions)
	assert.Equal(t, "1.2.3", hb.Version)
	assert.Greater(t, hb.MemoryUsage, uint64(0))
}

func TestOverflowTriggersEarlyFlush(t *testing.T) {
	cs := newCentralServer(t)
	r := newTestReporter(t, cs, nil)

	r.Start(context.Background())
	defer r.Stop()

	for i := 0; i < maxQueueSize; i++ {
		r.Report(models.ReportEvent{EventType: models.EventTypeMessage})
	}

	// The overflow signal must drain the queue well before the 5s ticker.
	require.Eventually(t, func() bool {
		return r.QueueLen() == 0
	}, 2*time.Second, 10*time.Millisecond)
	require.NotEmpty(t, cs.captured("/api/events/batch"))
}

func TestStopFlushesAndGoesOffline(t *testing.T) {
	cs := newCentralServer(t)
	r := newTestReporter(t, cs, func() int { return 0 })

	r.Start(context.Background())
	r.Report(models.ReportEvent{EventType: models.EventTypeMessage, UserID: "u1"})
	r.Stop()

	assert.Equal(t, 0, r.QueueLen())
	require.NotEmpty(t, cs.captured("/api/events/batch"))

	hbs := cs.captured("/api/bots/bot-1/heartbeat")
	require.NotEmpty(t, hbs)
	var hb models.HeartbeatPayload
	require.NoError(t, json.Unmarshal(hbs[len(hbs)-1].Body, &hb))
	assert.Equal(t, models.BotStatusOffline, hb.Status)
}

func TestStopIsIdempotent(t *testing.T) {
	cs := newCentralServer(t)
	r := newTestReporter(t, cs, nil)
	r.Start(context.Background())
	r.Stop()
	require.NotPanics(t, r.Stop)
}
