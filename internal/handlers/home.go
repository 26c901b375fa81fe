package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/onur-cay/comingsoon/web/src/templates/pages"
)

// HomeHandler serves the placeholder page.
type HomeHandler struct{}

// NewHomeHandler creates a new HomeHandler.
func NewHomeHandler() *HomeHandler {
	return &HomeHandler{}
}

// HomeGet handles the GET request for the home page.
func (h *HomeHandler) HomeGet(c echo.Context) error {
	// The name is ignored by the universal renderer; the component goes in data.
	return c.Render(http.StatusOK, "", pages.ComingSoonPage())
}

// HealthGet reports that the process is serving requests.
func HealthGet(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}
