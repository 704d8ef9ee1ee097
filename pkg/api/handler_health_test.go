package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/honeybotlabs/honeybot/pkg/services"
)

func TestHealthz(t *testing.T) {
	env := setupTestServer(t)

	rec := env.do(t, http.MethodGet, "/healthz", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp HealthResponse
	decodeBody(t, rec, &resp)
	assert.Equal(t, "healthy", resp.Status)
	assert.NotEmpty(t, resp.Version)
	assert.Equal(t, 0, resp.Connections)

	db, ok := resp.Checks["database"]
	require.True(t, ok)
	assert.Equal(t, "healthy", db.Status)

	// No pub/sub listener is wired in tests, so no pubsub check either.
	_, ok = resp.Checks["pubsub"]
	assert.False(t, ok)
	assert.Empty(t, resp.Warnings)
}

func TestHealthzSurfacesWarnings(t *testing.T) {
	env := setupTestServer(t)
	env.warnings.AddWarning(services.WarningCategoryBusHealth,
		"notify listener lost its connection", "connection refused", "listener-1")

	rec := env.do(t, http.MethodGet, "/healthz", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp HealthResponse
	decodeBody(t, rec, &resp)
	assert.Equal(t, "healthy", resp.Status, "warnings alone do not degrade the probe")
	require.Len(t, resp.Warnings, 1)
	assert.Equal(t, services.WarningCategoryBusHealth, resp.Warnings[0].Category)
}
