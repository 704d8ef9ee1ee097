package api

import (
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/honeybotlabs/honeybot/pkg/events"
	"github.com/honeybotlabs/honeybot/pkg/models"
	"github.com/honeybotlabs/honeybot/pkg/services"
)

// maxBatchEvents bounds one batch request. The reporter flushes at most 100
// per batch; the server cap leaves headroom for other clients.
const maxBatchEvents = 500

// submitEventHandler handles POST /api/events.
// Duplicate event ids answer 200 so reporter retries stay idempotent.
func (s *Server) submitEventHandler(c *echo.Context) error {
	var req models.ReportEvent
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	evt, err := s.eventService.ProcessEvent(c.Request().Context(), botIDFromRequest(c), req)
	if err != nil {
		if errors.Is(err, services.ErrAlreadyExists) {
			return c.JSON(http.StatusOK, &EventAccepted{EventID: req.EventID, Status: "duplicate"})
		}
		return mapServiceError(err)
	}

	return c.JSON(http.StatusCreated, &EventAccepted{EventID: evt.ID, Status: "created"})
}

// batchEventsHandler handles POST /api/events/batch.
// Each event is processed independently; one bad event never blocks the rest.
func (s *Server) batchEventsHandler(c *echo.Context) error {
	var items []models.ReportEvent
	if err := c.Bind(&items); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if len(items) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "batch must not be empty")
	}
	if len(items) > maxBatchEvents {
		return echo.NewHTTPError(http.StatusBadRequest,
			fmt.Sprintf("batch exceeds maximum size of %d", maxBatchEvents))
	}

	botID := botIDFromRequest(c)
	result := &BatchResult{Results: make([]BatchItemResult, 0, len(items))}
	for _, in := range items {
		evt, err := s.eventService.ProcessEvent(c.Request().Context(), botID, in)
		switch {
		case err == nil:
			result.Processed++
			result.Results = append(result.Results, BatchItemResult{EventID: evt.ID, Status: "created"})
		case errors.Is(err, services.ErrAlreadyExists):
			result.Processed++
			result.Results = append(result.Results, BatchItemResult{EventID: in.EventID, Status: "duplicate"})
		default:
			result.Failed++
			result.Results = append(result.Results, BatchItemResult{EventID: in.EventID, Status: "error", Error: err.Error()})
		}
	}

	return c.JSON(http.StatusOK, result)
}

// listEventsHandler handles GET /api/events.
func (s *Server) listEventsHandler(c *echo.Context) error {
	f := models.EventFilters{
		BotID:         c.QueryParam("bot_id"),
		UserID:        c.QueryParam("user_id"),
		SessionID:     c.QueryParam("session_id"),
		EventType:     c.QueryParam("event_type"),
		Level:         c.QueryParam("level"),
		DetectionType: c.QueryParam("detection_type"),
	}

	if v := c.QueryParam("min_score"); v != "" {
		score, err := strconv.ParseFloat(v, 64)
		if err != nil || math.IsNaN(score) || math.IsInf(score, 0) {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid min_score: must be a number")
		}
		f.MinScore = &score
	}
	if v := c.QueryParam("from"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid from: must be RFC3339")
		}
		f.From = &t
	}
	if v := c.QueryParam("to"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid to: must be RFC3339")
		}
		f.To = &t
	}

	// Out-of-range values fall back to the service defaults (100, capped
	// at 1000).
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

	rows, total, err := s.eventService.ListEvents(c.Request().Context(), f)
	if err != nil {
		return mapServiceError(err)
	}

	limit := f.Limit
	if limit <= 0 {
		limit = 100
	}
	return c.JSON(http.StatusOK, &EventListResponse{
		Events: rows,
		Total:  total,
		Limit:  limit,
		Offset: f.Offset,
	})
}

// getEventHandler handles GET /api/events/:eventId.
func (s *Server) getEventHandler(c *echo.Context) error {
	eventID := c.Param("eventId")
	if eventID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "event id is required")
	}

	evt, err := s.eventService.GetEvent(c.Request().Context(), eventID)
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusOK, evt)
}

// streamEventsHandler handles GET /api/events/stream.
// A plain SSE subscription to the broadcast hub: every frame the hub emits
// for this subscriber goes out as one data line. Optional repeated `room`
// query parameters join rooms in addition to the global feed.
func (s *Server) streamEventsHandler(c *echo.Context) error {
	if s.connManager == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "event stream not available")
	}

	rooms := c.Request().URL.Query()["room"]
	for _, room := range rooms {
		if !events.ValidRoom(room) {
			return echo.NewHTTPError(http.StatusBadRequest, "unknown room: "+room)
		}
	}

	res := c.Response()
	h := res.Header()
	h.Set("Content-Type", "text/event-stream")
	h.Set("Cache-Control", "no-cache")
	h.Set("Connection", "keep-alive")
	res.WriteHeader(http.StatusOK)

	ctrl := http.NewResponseController(res)
	if err := ctrl.Flush(); err != nil {
		return err
	}

	id, frames, stop := s.connManager.Subscribe(rooms...)
	defer stop()
	s.logger.Debug("SSE subscriber connected", "connection_id", id, "rooms", rooms)

	ctx := c.Request().Context()
	for {
		select {
		case <-ctx.Done():
			return nil
		case frame, ok := <-frames:
			if !ok {
				return nil
			}
			if _, err := fmt.Fprintf(res, "data: %s\n\n", frame); err != nil {
				return nil
			}
			if err := ctrl.Flush(); err != nil {
				return nil
			}
		}
	}
}
