package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onur-cay/comingsoon/internal/rendering"
)

func newEcho() *echo.Echo {
	e := echo.New()
	e.Renderer = rendering.NewUniversalRenderer()
	return e
}

func TestHomeHandler_HomeGet(t *testing.T) {
	e := newEcho()
	h := NewHomeHandler()

	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	require.NoError(t, h.HomeGet(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, echo.MIMETextHTMLCharsetUTF8, rec.Header().Get(echo.HeaderContentType))

	body := rec.Body.String()
	assert.Contains(t, body, "<title>Coming Soon - Onur Cay</title>")
	assert.Contains(t, body, `<h1 class="title">`)
	assert.Contains(t, body, `<p class="description">Our website is under construction.`)
	assert.Contains(t, body, `href="https://www.linkedin.com/in/mustafa-onur-cay-54246a260/"`)
	assert.Contains(t, body, `href="https://github.com/Onur-Cay/card-game"`)
}

func TestHomeHandler_SameBodyEveryTime(t *testing.T) {
	e := newEcho()
	h := NewHomeHandler()

	get := func() string {
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
		require.NoError(t, h.HomeGet(c))
		return rec.Body.String()
	}

	first := get()
	require.NotEmpty(t, first)
	assert.Equal(t, first, get())
}

func TestHealthGet(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/health", nil), rec)

	require.NoError(t, HealthGet(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())
}
