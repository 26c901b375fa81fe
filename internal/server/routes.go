package server

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/onur-cay/comingsoon/internal/handlers"
	"github.com/onur-cay/comingsoon/internal/middleware"
	"github.com/onur-cay/comingsoon/web"
)

// RegisterRoutes sets up all the application routes.
func (s *Server) RegisterRoutes() {
	rateLimiter := middleware.RateLimiter(s.Cfg.RateLimitPerMinute, s.Cfg.RateLimitBurst)

	s.E.Match([]string{http.MethodGet, http.MethodHead}, "/", s.homeHandler.HomeGet, rateLimiter)

	// Serve the embedded stylesheet and any other assets under /static.
	s.E.StaticFS("/static", echo.MustSubFS(web.FS, "static"))

	s.E.GET("/health", handlers.HealthGet)
}
