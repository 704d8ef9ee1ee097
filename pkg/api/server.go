// Package api is the hive's HTTP surface: agent ingestion (bots, events,
// sessions, patterns), dashboard reads, and the realtime endpoints (WebSocket
// and SSE) backed by the broadcast hub.
package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/honeybotlabs/honeybot/pkg/config"
	"github.com/honeybotlabs/honeybot/pkg/database"
	"github.com/honeybotlabs/honeybot/pkg/events"
	"github.com/honeybotlabs/honeybot/pkg/services"
)

// Server is the hive HTTP server.
type Server struct {
	cfg      *config.HiveConfig
	dbClient *database.Client

	botService     *services.BotService
	eventService   *services.EventService
	sessionService *services.SessionService
	patternService *services.PatternService
	alertService   *services.AlertService
	statsService   *services.StatsService
	warningService *services.SystemWarningsService

	connManager    *events.ConnectionManager
	notifyListener *events.NotifyListener

	echo       *echo.Echo
	httpServer *http.Server
	logger     *slog.Logger
}

// NewServer creates the hive HTTP server and registers all routes.
func NewServer(
	cfg *config.HiveConfig,
	dbClient *database.Client,
	botService *services.BotService,
	eventService *services.EventService,
	sessionService *services.SessionService,
	patternService *services.PatternService,
	alertService *services.AlertService,
	statsService *services.StatsService,
	connManager *events.ConnectionManager,
) *Server {
	e := echo.New()
	s := &Server{
		cfg:            cfg,
		dbClient:       dbClient,
		botService:     botService,
		eventService:   eventService,
		sessionService: sessionService,
		patternService: patternService,
		alertService:   alertService,
		statsService:   statsService,
		connManager:    connManager,
		echo:           e,
		logger:         slog.Default().With("component", "api"),
	}

	e.HTTPErrorHandler = s.httpErrorHandler
	e.Use(securityHeaders())
	s.registerRoutes()
	return s
}

// SetWarningsService wires the system warnings service (optional).
func (s *Server) SetWarningsService(ws *services.SystemWarningsService) {
	s.warningService = ws
}

// SetNotifyListener wires the pub/sub listener for health reporting (optional).
func (s *Server) SetNotifyListener(l *events.NotifyListener) {
	s.notifyListener = l
}

// registerRoutes wires every endpoint. Writes pass the shared-secret gate;
// event writes additionally require the X-Bot-Id header. Reads are open.
func (s *Server) registerRoutes() {
	e := s.echo
	secret := s.requireBotSecret()
	botID := requireBotID()

	// Fleet roster.
	e.POST("/api/bots/register", s.registerBotHandler, secret)
	e.POST("/api/bots/:botId/heartbeat", s.heartbeatHandler, secret)
	e.GET("/api/bots", s.listBotsHandler)
	e.GET("/api/bots/:botId", s.getBotHandler)

	// Telemetry ingestion and queries.
	e.POST("/api/events", s.submitEventHandler, secret, botID)
	e.POST("/api/events/batch", s.batchEventsHandler, secret, botID)
	e.GET("/api/events", s.listEventsHandler)
	e.GET("/api/events/stream", s.streamEventsHandler)
	e.GET("/api/events/:eventId", s.getEventHandler)

	// Session lifecycle.
	e.POST("/api/sessions", s.upsertSessionHandler, secret)
	e.PUT("/api/sessions/:sessionId", s.updateSessionHandler, secret)
	e.GET("/api/sessions", s.listSessionsHandler)
	e.GET("/api/sessions/:sessionId", s.getSessionHandler)
	e.GET("/api/sessions/:sessionId/replay", s.replaySessionHandler)

	// Novel attack patterns.
	e.POST("/api/patterns", s.submitPatternHandler, secret)
	e.GET("/api/patterns", s.listPatternsHandler)
	e.GET("/api/patterns/:hash", s.getPatternHandler)

	// Alerts and fleet aggregates.
	e.GET("/api/alerts", s.listAlertsHandler)
	e.POST("/api/alerts/:alertId/ack", s.ackAlertHandler, secret)
	e.GET("/api/stats", s.statsHandler)
	e.GET("/api/system/warnings", s.systemWarningsHandler)

	// Realtime and health.
	e.GET("/ws", s.wsHandler)
	e.GET("/healthz", s.healthHandler)
}

// Start begins serving on addr and blocks until shutdown or failure.
func (s *Server) Start(addr string) error {
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.echo,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s.httpServer.ListenAndServe()
}

// Shutdown drains in-flight requests within ctx's deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}

// httpErrorHandler renders every error as the {"error": string} body the
// agents and the dashboard parse.
func (s *Server) httpErrorHandler(c *echo.Context, err error) {
	if r, _ := echo.UnwrapResponse(c.Response()); r != nil && r.Committed {
		return
	}

	code := http.StatusInternalServerError
	msg := "internal server error"
	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		if he.Message != "" {
			msg = he.Message
		} else {
			msg = http.StatusText(code)
		}
	}

	if jsonErr := c.JSON(code, &ErrorResponse{Error: msg}); jsonErr != nil {
		s.logger.Error("Failed to write error response", "error", jsonErr)
	}
}
