package api

import (
	echo "github.com/labstack/echo/v5"
)

// Headers agents present on write requests.
const (
	HeaderBotSecret = "X-Bot-Secret"
	HeaderBotID     = "X-Bot-Id"
)

// botIDFromRequest extracts the sending agent's id from the request header.
// Event write routes guarantee it is present via requireBotID.
func botIDFromRequest(c *echo.Context) string {
	return c.Request().Header.Get(HeaderBotID)
}
