package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	echo "github.com/labstack/echo/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/honeybotlabs/honeybot/pkg/services"
)

func TestSystemWarningsHandler(t *testing.T) {
	warnings := services.NewSystemWarningsService()
	warnings.AddWarning(services.WarningCategoryRetention,
		"event retention sweep failed", "context deadline exceeded", "cleanup")

	s := &Server{warningService: warnings}
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/system/warnings", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, s.systemWarningsHandler(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp SystemWarningsResponse
	decodeBody(t, rec, &resp)
	require.Len(t, resp.Warnings, 1)
	w := resp.Warnings[0]
	assert.NotEmpty(t, w.ID)
	assert.Equal(t, services.WarningCategoryRetention, w.Category)
	assert.Equal(t, "event retention sweep failed", w.Message)
	assert.Equal(t, "context deadline exceeded", w.Details)
	assert.Equal(t, "cleanup", w.SourceID)
	assert.NotEmpty(t, w.CreatedAt)
}

func TestSystemWarningsHandlerNoService(t *testing.T) {
	s := &Server{}
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/system/warnings", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, s.systemWarningsHandler(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp SystemWarningsResponse
	decodeBody(t, rec, &resp)
	assert.Empty(t, resp.Warnings)
	assert.Contains(t, rec.Body.String(), `"warnings":[]`)
}
