package api

import (
	"net/http"
	"strconv"

	echo "github.com/labstack/echo/v5"

	"github.com/honeybotlabs/honeybot/ent/alert"
)

// listAlertsHandler handles GET /api/alerts.
// Most recent first; filterable by level and acknowledged state.
func (s *Server) listAlertsHandler(c *echo.Context) error {
	level := c.QueryParam("level")
	if level != "" {
		if err := alert.LevelValidator(alert.Level(level)); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid level: "+level)
		}
	}

	var acknowledged *bool
	if v := c.QueryParam("acknowledged"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid acknowledged: must be true or false")
		}
		acknowledged = &b
	}

	limit := 0
	if v := c.QueryParam("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}
	offset := 0
	if v := c.QueryParam("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			offset = n
		}
	}

	rows, total, err := s.alertService.List(c.Request().Context(), level, acknowledged, limit, offset)
	if err != nil {
		return mapServiceError(err)
	}

	if limit <= 0 {
		limit = 50
	}
	return c.JSON(http.StatusOK, &AlertListResponse{
		Alerts: rows,
		Total:  total,
		Limit:  limit,
		Offset: offset,
	})
}

// ackAlertHandler handles POST /api/alerts/:alertId/ack.
func (s *Server) ackAlertHandler(c *echo.Context) error {
	alertID := c.Param("alertId")
	if alertID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "alert id is required")
	}

	row, err := s.alertService.Acknowledge(c.Request().Context(), alertID)
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusOK, row)
}
