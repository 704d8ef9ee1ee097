package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/honeybotlabs/honeybot/pkg/models"
)

// registerBotHandler handles POST /api/bots/register.
// Registration is an UPSERT: re-registering refreshes the roster row and
// flips the bot online.
func (s *Server) registerBotHandler(c *echo.Context) error {
	var req models.RegisterPayload
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.BotID == "" {
		req.BotID = botIDFromRequest(c)
	}

	bot, err := s.botService.Register(c.Request().Context(), req)
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusCreated, bot)
}

// heartbeatHandler handles POST /api/bots/:botId/heartbeat.
func (s *Server) heartbeatHandler(c *echo.Context) error {
	botID := c.Param("botId")
	if botID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "bot id is required")
	}

	var req models.HeartbeatPayload
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	bot, err := s.botService.Heartbeat(c.Request().Context(), botID, req)
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusOK, bot)
}

// listBotsHandler handles GET /api/bots.
func (s *Server) listBotsHandler(c *echo.Context) error {
	bots, err := s.botService.ListBots(c.Request().Context(), c.QueryParam("status"))
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusOK, &BotListResponse{Bots: bots, Total: len(bots)})
}

// getBotHandler handles GET /api/bots/:botId.
func (s *Server) getBotHandler(c *echo.Context) error {
	botID := c.Param("botId")
	if botID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "bot id is required")
	}

	bot, err := s.botService.GetBot(c.Request().Context(), botID)
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusOK, bot)
}
