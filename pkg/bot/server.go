package bot

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/honeybotlabs/honeybot/pkg/version"
)

// maxMessageLength caps a single chat message body.
const maxMessageLength = 100_000

// Server is the agent's chat ingress. It fronts the coordinator with the
// HTTP surface the chat widget talks to.
type Server struct {
	echo        *echo.Echo
	coordinator *Coordinator
	sessions    func() int
	logger      *slog.Logger

	httpServer *http.Server
}

// NewServer creates the ingress server. sessions reports the live session
// count for health responses and may be nil.
func NewServer(coordinator *Coordinator, sessions func() int) *Server {
	e := echo.New()
	s := &Server{
		echo:        e,
		coordinator: coordinator,
		sessions:    sessions,
		logger:      slog.Default().With("component", "ingress"),
	}

	e.Use(securityHeaders())
	e.POST("/api/chat", s.chatHandler)
	e.GET("/healthz", s.healthHandler)
	return s
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

// ChatRequest is the body for POST /api/chat.
type ChatRequest struct {
	SessionID string `json:"session_id,omitempty"`
	UserID    string `json:"user_id"`
	Message   string `json:"message"`
}

// chatHandler handles POST /api/chat.
func (s *Server) chatHandler(c *echo.Context) error {
	var req ChatRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.UserID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "user_id is required")
	}
	if req.Message == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "message is required")
	}
	if len(req.Message) > maxMessageLength {
		return echo.NewHTTPError(http.StatusBadRequest, "message exceeds maximum length")
	}

	reply, err := s.coordinator.ProcessMessage(c.Request().Context(), req.UserID, req.Message)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, reply)
}

// healthHandler handles GET /healthz.
func (s *Server) healthHandler(c *echo.Context) error {
	resp := map[string]any{
		"status":  "ok",
		"version": version.Full(),
	}
	if s.sessions != nil {
		resp["active_sessions"] = s.sessions()
	}
	return c.JSON(http.StatusOK, resp)
}

// securityHeaders sets standard security response headers.
func securityHeaders() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c *echo.Context) error {
			h := c.Response().Header()
			h.Set("X-Frame-Options", "DENY")
			h.Set("X-Content-Type-Options", "nosniff")
			h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
			return next(c)
		}
	}
}
