package api

import (
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"
)

// SystemWarningsResponse is returned by GET /api/system/warnings.
type SystemWarningsResponse struct {
	Warnings []SystemWarningItem `json:"warnings"`
}

// SystemWarningItem is a single system warning.
type SystemWarningItem struct {
	ID        string `json:"id"`
	Category  string `json:"category"`
	Message   string `json:"message"`
	Details   string `json:"details"`
	SourceID  string `json:"source_id,omitempty"`
	CreatedAt string `json:"created_at"`
}

// systemWarningsHandler handles GET /api/system/warnings.
// Surfaces non-fatal degradations (listener reconnects, dropped broadcast
// frames, failed retention sweeps) to the dashboard.
func (s *Server) systemWarningsHandler(c *echo.Context) error {
	response := SystemWarningsResponse{
		Warnings: []SystemWarningItem{},
	}

	if s.warningService != nil {
		for _, w := range s.warningService.GetWarnings() {
			response.Warnings = append(response.Warnings, SystemWarningItem{
				ID:        w.ID,
				Category:  w.Category,
				Message:   w.Message,
				Details:   w.Details,
				SourceID:  w.SourceID,
				CreatedAt: w.CreatedAt.Format(time.RFC3339),
			})
		}
	}

	return c.JSON(http.StatusOK, response)
}
