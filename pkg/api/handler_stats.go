package api

import (
	"net/http"
	"strconv"
	"time"

	echo "github.com/labstack/echo/v5"
)

// maxStatsWindowHours caps the aggregation window at 30 days.
const maxStatsWindowHours = 720

// statsHandler handles GET /api/stats.
// Fleet aggregates over a trailing window (default 24h).
func (s *Server) statsHandler(c *echo.Context) error {
	window := 24 * time.Hour
	if v := c.QueryParam("window_hours"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 || n > maxStatsWindowHours {
			return echo.NewHTTPError(http.StatusBadRequest,
				"invalid window_hours: must be between 1 and 720")
		}
		window = time.Duration(n) * time.Hour
	}

	stats, err := s.statsService.Overview(c.Request().Context(), window)
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusOK, stats)
}
