package server

import (
	"errors"
	"net/http"
	"runtime/debug"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/onur-cay/comingsoon/internal/config"
	"github.com/onur-cay/comingsoon/internal/handlers"
	"github.com/onur-cay/comingsoon/internal/middleware"
	"github.com/onur-cay/comingsoon/internal/rendering"
)

// Server holds the dependencies for the HTTP server.
type Server struct {
	E           *echo.Echo
	Cfg         *config.Config
	homeHandler *handlers.HomeHandler
}

// New creates a new Server instance with its middleware chain and renderer
// configured. Routes are added by RegisterRoutes.
func New(cfg *config.Config) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(echomw.RequestIDWithConfig(echomw.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.Logger)
	e.Use(middleware.AccessLog())
	// The error handler logs recovered panics with their stack through slog.
	e.Use(echomw.RecoverWithConfig(echomw.RecoverConfig{DisablePrintStack: true}))
	e.Use(echomw.Secure())

	e.Renderer = rendering.NewUniversalRenderer()
	setupErrorHandling(e)

	return &Server{
		E:           e,
		Cfg:         cfg,
		homeHandler: handlers.NewHomeHandler(),
	}
}

// setupErrorHandling installs the central HTTP error handler. HTTP errors are
// answered with their own status; anything else is an unhandled 500 and is
// logged with a stack trace.
func setupErrorHandling(e *echo.Echo) {
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}
		logger := middleware.FromContext(c.Request().Context())

		code := http.StatusInternalServerError
		var he *echo.HTTPError
		if errors.As(err, &he) {
			code = he.Code
			if code >= http.StatusInternalServerError {
				logger.Error("Internal Server Error", "error", err, "path", c.Request().URL.Path)
			}
		} else {
			logger.Error("Internal Server Error (Unhandled)",
				"error", err,
				"method", c.Request().Method,
				"path", c.Request().URL.Path,
				"stack_trace", string(debug.Stack()),
			)
		}

		var respErr error
		if c.Request().Method == http.MethodHead {
			respErr = c.NoContent(code)
		} else {
			respErr = c.String(code, http.StatusText(code))
		}
		if respErr != nil {
			logger.Error("Failed to write error response", "error", respErr)
		}
	}
}
