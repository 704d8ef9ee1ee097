package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	echo "github.com/labstack/echo/v5"
	"github.com/stretchr/testify/assert"
)

func TestBotIDFromRequest(t *testing.T) {
	e := echo.New()

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.Header.Set(HeaderBotID, "bot-7")
	c := e.NewContext(req, httptest.NewRecorder())
	assert.Equal(t, "bot-7", botIDFromRequest(c))

	req = httptest.NewRequest(http.MethodPost, "/", nil)
	c = e.NewContext(req, httptest.NewRecorder())
	assert.Empty(t, botIDFromRequest(c))
}
