package api

import (
	"crypto/subtle"
	"net/http"

	echo "github.com/labstack/echo/v5"
)

// securityHeaders returns middleware that sets standard security response headers.
func securityHeaders() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c *echo.Context) error {
			h := c.Response().Header()
			h.Set("X-Frame-Options", "DENY")
			h.Set("X-Content-Type-Options", "nosniff")
			h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
			h.Set("Permissions-Policy", "camera=(), microphone=(), geolocation=()")
			return next(c)
		}
	}
}

// requireBotSecret gates write endpoints on the shared ingestion secret.
// The comparison is constant-time; failures carry no detail beyond the
// fixed message.
func (s *Server) requireBotSecret() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c *echo.Context) error {
			presented := c.Request().Header.Get(HeaderBotSecret)
			if subtle.ConstantTimeCompare([]byte(presented), []byte(s.cfg.IngestSecret)) != 1 {
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid bot secret")
			}
			return next(c)
		}
	}
}

// requireBotID rejects event writes that do not identify their sender.
func requireBotID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c *echo.Context) error {
			if c.Request().Header.Get(HeaderBotID) == "" {
				return echo.NewHTTPError(http.StatusBadRequest, "x-bot-id header is required")
			}
			return next(c)
		}
	}
}
