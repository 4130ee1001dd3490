// Package http is the REST adapter: order use cases and editing sessions over echo,
// with requests validated against api/openapi.json.
package http

import (
	"log/slog"
	"net/http"
	"sync"

	"routeboard/api"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"github.com/swaggo/swag"
)

type swaggerDoc struct{}

func (swaggerDoc) ReadDoc() string {
	return string(api.Document)
}

var registerDocOnce sync.Once

// NewEcho builds the echo instance serving s, the OpenAPI document and the
// swagger UI.
func NewEcho(s *Server, logger *slog.Logger) (*echo.Echo, error) {
	validator, err := RequestValidator(api.Document)
	if err != nil {
		return nil, err
	}

	registerDocOnce.Do(func() {
		swag.Register(swag.Name, swaggerDoc{})
	})

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = errorHandler

	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(requestLogConfig(logger)))
	e.Use(validator)

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/openapi.json", func(c echo.Context) error {
		return c.Blob(http.StatusOK, echo.MIMEApplicationJSON, api.Document)
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	RegisterHandlers(e, s)

	return e, nil
}

func requestLogConfig(logger *slog.Logger) middleware.RequestLoggerConfig {
	logger = logger.With("component", "http")

	return middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []any{
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency,
			}
			if v.Error != nil {
				logger.WarnContext(c.Request().Context(), "request", append(attrs, "error", v.Error)...)
				return nil
			}
			logger.DebugContext(c.Request().Context(), "request", attrs...)
			return nil
		},
	}
}
