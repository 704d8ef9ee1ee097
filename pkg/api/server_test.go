package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/honeybotlabs/honeybot/pkg/config"
	"github.com/honeybotlabs/honeybot/pkg/database"
	"github.com/honeybotlabs/honeybot/pkg/events"
	"github.com/honeybotlabs/honeybot/pkg/models"
	"github.com/honeybotlabs/honeybot/pkg/services"
	testdb "github.com/honeybotlabs/honeybot/test/database"
)

const testIngestSecret = "test-ingest-secret"

// apiTestEnv wires a full Server over a schema-isolated test database,
// the way cmd/hive does minus the NOTIFY bridge: broadcasts go straight
// to the in-process hub.
type apiTestEnv struct {
	server   *Server
	hub      *events.ConnectionManager
	warnings *services.SystemWarningsService
	dbClient *database.Client
}

func setupTestServer(t *testing.T) *apiTestEnv {
	t.Helper()

	dbClient := testdb.NewTestClient(t)

	hub := events.NewConnectionManager(nil, 5*time.Second)
	botService := services.NewBotService(dbClient.Client, hub)
	patternService := services.NewPatternService(dbClient.Client)
	alertService := services.NewAlertService(dbClient.Client, hub, nil)
	eventService := services.NewEventService(dbClient.Client, patternService, alertService, hub, nil)
	sessionService := services.NewSessionService(dbClient.Client, hub)
	statsService := services.NewStatsService(dbClient.Client, botService)
	hub.SetHistory(events.NewHistoryAdapter(eventService, alertService))

	warnings := services.NewSystemWarningsService()

	cfg := &config.HiveConfig{Addr: ":0", IngestSecret: testIngestSecret}
	server := NewServer(cfg, dbClient, botService, eventService, sessionService,
		patternService, alertService, statsService, hub)
	server.SetWarningsService(warnings)

	return &apiTestEnv{server: server, hub: hub, warnings: warnings, dbClient: dbClient}
}

// do runs one request through the server's router and returns the recorder.
func (env *apiTestEnv) do(t *testing.T, method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(buf)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	env.server.echo.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out), "body: %s", rec.Body.String())
}

// agentHeaders carries the write credentials an agent presents.
func agentHeaders(botID string) map[string]string {
	return map[string]string{
		HeaderBotSecret: testIngestSecret,
		HeaderBotID:     botID,
	}
}

func secretOnly() map[string]string {
	return map[string]string{HeaderBotSecret: testIngestSecret}
}

// submitEvent posts one event and returns its stored id.
func (env *apiTestEnv) submitEvent(t *testing.T, botID string, evt models.ReportEvent) string {
	t.Helper()
	rec := env.do(t, http.MethodPost, "/api/events", evt, agentHeaders(botID))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var resp EventAccepted
	decodeBody(t, rec, &resp)
	require.NotEmpty(t, resp.EventID)
	return resp.EventID
}

func floatPtr(f float64) *float64 { return &f }

func TestWriteEndpointsRequireSecret(t *testing.T) {
	// The secret check rejects before any handler runs, so the server can
	// be built without services or a database.
	cfg := &config.HiveConfig{IngestSecret: testIngestSecret}
	s := NewServer(cfg, nil, nil, nil, nil, nil, nil, nil, nil)

	writes := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/bots/register"},
		{http.MethodPost, "/api/bots/bot-1/heartbeat"},
		{http.MethodPost, "/api/events"},
		{http.MethodPost, "/api/events/batch"},
		{http.MethodPost, "/api/sessions"},
		{http.MethodPut, "/api/sessions/sess-1"},
		{http.MethodPost, "/api/patterns"},
		{http.MethodPost, "/api/alerts/alert-1/ack"},
	}
	for _, tt := range writes {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader("{}"))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()
			s.echo.ServeHTTP(rec, req)

			require.Equal(t, http.StatusUnauthorized, rec.Code)
			var resp ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, "Invalid bot secret", resp.Error)
		})
	}
}

func TestWrongSecretRejected(t *testing.T) {
	cfg := &config.HiveConfig{IngestSecret: testIngestSecret}
	s := NewServer(cfg, nil, nil, nil, nil, nil, nil, nil, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/events", strings.NewReader("{}"))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(HeaderBotSecret, "not-the-secret")
	req.Header.Set(HeaderBotID, "bot-1")
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Invalid bot secret", resp.Error)
}

func TestEventWritesRequireBotID(t *testing.T) {
	cfg := &config.HiveConfig{IngestSecret: testIngestSecret}
	s := NewServer(cfg, nil, nil, nil, nil, nil, nil, nil, nil)

	for _, path := range []string{"/api/events", "/api/events/batch"} {
		t.Run(path, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, path, strings.NewReader("{}"))
			req.Header.Set("Content-Type", "application/json")
			req.Header.Set(HeaderBotSecret, testIngestSecret)
			rec := httptest.NewRecorder()
			s.echo.ServeHTTP(rec, req)

			require.Equal(t, http.StatusBadRequest, rec.Code)
			var resp ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, "x-bot-id header is required", resp.Error)
		})
	}
}

func TestErrorBodyShape(t *testing.T) {
	// Every error, including the router's own 404, must come back as
	// {"error": "..."} for the dashboard.
	cfg := &config.HiveConfig{IngestSecret: testIngestSecret}
	s := NewServer(cfg, nil, nil, nil, nil, nil, nil, nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/nope", nil)
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp, "error")
	assert.NotContains(t, resp, "message")
}
