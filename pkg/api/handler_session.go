package api

import (
	"net/http"
	"strconv"

	echo "github.com/labstack/echo/v5"

	"github.com/honeybotlabs/honeybot/pkg/models"
)

// upsertSessionHandler handles POST /api/sessions.
// Creation is idempotent on session_id: the first write answers 201, any
// repeat answers 200 with the merged row.
func (s *Server) upsertSessionHandler(c *echo.Context) error {
	var req models.SessionUpsert
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	sess, created, err := s.sessionService.Upsert(c.Request().Context(), req)
	if err != nil {
		return mapServiceError(err)
	}

	if created {
		return c.JSON(http.StatusCreated, sess)
	}
	return c.JSON(http.StatusOK, sess)
}

// updateSessionHandler handles PUT /api/sessions/:sessionId.
// Partial update: absent fields keep their stored values, metadata deep-merges.
func (s *Server) updateSessionHandler(c *echo.Context) error {
	sessionID := c.Param("sessionId")
	if sessionID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "session id is required")
	}

	var req models.SessionUpsert
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	sess, err := s.sessionService.Update(c.Request().Context(), sessionID, req)
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusOK, sess)
}

// getSessionHandler handles GET /api/sessions/:sessionId.
func (s *Server) getSessionHandler(c *echo.Context) error {
	sessionID := c.Param("sessionId")
	if sessionID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "session id is required")
	}

	sess, err := s.sessionService.GetSession(c.Request().Context(), sessionID)
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusOK, sess)
}

// listSessionsHandler handles GET /api/sessions.
func (s *Server) listSessionsHandler(c *echo.Context) error {
	f := models.SessionFilters{
		BotID:  c.QueryParam("bot_id"),
		UserID: c.QueryParam("user_id"),
	}

	if v := c.QueryParam("active"); v != "" {
		active, err := strconv.ParseBool(v)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid active: must be true or false")
		}
		f.ActiveOnly = active
	}
	if v := c.QueryParam("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			f.Limit = n
		}
	}
	if v := c.QueryParam("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			f.Offset = n
		}
	}

	rows, total, err := s.sessionService.ListSessions(c.Request().Context(), f)
	if err != nil {
		return mapServiceError(err)
	}

	limit := f.Limit
	if limit <= 0 {
		limit = 50
	}
	return c.JSON(http.StatusOK, &SessionListResponse{
		Sessions: rows,
		Total:    total,
		Limit:    limit,
		Offset:   f.Offset,
	})
}

// replaySessionHandler handles GET /api/sessions/:sessionId/replay.
func (s *Server) replaySessionHandler(c *echo.Context) error {
	sessionID := c.Param("sessionId")
	if sessionID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "session id is required")
	}

	sess, turns, err := s.sessionService.Replay(c.Request().Context(), sessionID)
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusOK, &ReplayResponse{Session: sess, Turns: turns})
}
