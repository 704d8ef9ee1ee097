package api

import (
	"net/http"
	"strconv"

	echo "github.com/labstack/echo/v5"

	"github.com/honeybotlabs/honeybot/pkg/models"
)

// SubmitPatternRequest is the body for POST /api/patterns. Context carries
// optional provenance recorded as a sample context on the pattern row.
type SubmitPatternRequest struct {
	models.NovelPatternIn
	Context map[string]any `json:"context,omitempty"`
}

// submitPatternHandler handles POST /api/patterns.
// Upserts by content hash; repeated sightings bump occurrence_count.
func (s *Server) submitPatternHandler(c *echo.Context) error {
	var req SubmitPatternRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	source := map[string]any{}
	if botID := botIDFromRequest(c); botID != "" {
		source["bot_id"] = botID
	}
	for k, v := range req.Context {
		source[k] = v
	}

	pattern, err := s.patternService.Upsert(c.Request().Context(), req.NovelPatternIn, source)
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusCreated, pattern)
}

// listPatternsHandler handles GET /api/patterns.
// Returns the most-seen patterns first.
func (s *Server) listPatternsHandler(c *echo.Context) error {
	limit := 0
	if v := c.QueryParam("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}

	patterns, err := s.patternService.Top(c.Request().Context(), limit)
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusOK, &PatternListResponse{Patterns: patterns, Total: len(patterns)})
}

// getPatternHandler handles GET /api/patterns/:hash.
func (s *Server) getPatternHandler(c *echo.Context) error {
	hash := c.Param("hash")
	if hash == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "pattern hash is required")
	}

	pattern, err := s.patternService.Get(c.Request().Context(), hash)
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusOK, pattern)
}
