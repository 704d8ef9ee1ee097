package api

import (
	"context"
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/honeybotlabs/honeybot/pkg/database"
	"github.com/honeybotlabs/honeybot/pkg/version"
)

const (
	healthStatusHealthy   = "healthy"
	healthStatusDegraded  = "degraded"
	healthStatusUnhealthy = "unhealthy"
)

// healthHandler handles GET /healthz.
// Only the hive's own components are checked: the database and the pub/sub
// listener. A reconnecting listener degrades the status without turning the
// probe red, so the orchestrator never restarts a pod that is still serving.
func (s *Server) healthHandler(c *echo.Context) error {
	reqCtx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	checks := make(map[string]HealthCheck)
	status := healthStatusHealthy

	dbHealth, err := database.Health(reqCtx, s.dbClient.DB())
	switch {
	case err != nil:
		status = healthStatusUnhealthy
		checks["database"] = HealthCheck{Status: healthStatusUnhealthy, Message: err.Error()}
	case dbHealth.Status == healthStatusDegraded:
		status = healthStatusDegraded
		checks["database"] = HealthCheck{
			Status:  healthStatusDegraded,
			Message: "connection pool saturated",
		}
	default:
		checks["database"] = HealthCheck{Status: healthStatusHealthy}
	}

	if s.notifyListener != nil {
		if s.notifyListener.Listening() {
			checks["pubsub"] = HealthCheck{Status: healthStatusHealthy}
		} else {
			if status == healthStatusHealthy {
				status = healthStatusDegraded
			}
			checks["pubsub"] = HealthCheck{
				Status:  healthStatusDegraded,
				Message: "notify listener is reconnecting",
			}
		}
	}

	connections := 0
	if s.connManager != nil {
		connections = s.connManager.ActiveConnections()
	}

	resp := &HealthResponse{
		Status:      status,
		Version:     version.Full(),
		Connections: connections,
		Checks:      checks,
	}
	if s.warningService != nil {
		resp.Warnings = s.warningService.GetWarnings()
	}

	httpStatus := http.StatusOK
	if status == healthStatusUnhealthy {
		httpStatus = http.StatusServiceUnavailable
	}

	return c.JSON(httpStatus, resp)
}
