package http

import (
	"errors"
	"fmt"
	"net/http"

	"routeboard/internal/core/application/editor"
	"routeboard/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// statusCode maps domain and session errors to HTTP status codes.
func statusCode(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound), errors.Is(err, editor.ErrSessionClosed):
		return http.StatusNotFound
	case errors.Is(err, editor.ErrNumericModeActive),
		errors.Is(err, editor.ErrNumericModeInactive),
		errors.Is(err, editor.ErrNoActiveDrag):
		return http.StatusConflict
	case errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) fail(ctx echo.Context, err error) error {
	code := statusCode(err)

	message := err.Error()
	if code == http.StatusInternalServerError {
		s.logger.ErrorContext(ctx.Request().Context(), "request failed",
			"method", ctx.Request().Method,
			"path", ctx.Path(),
			"error", err,
		)
		message = http.StatusText(code)
	}

	return ctx.JSON(code, Error{Code: code, Message: message})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{Code: http.StatusBadRequest, Message: message})
}

// errorHandler renders errors returned by middleware and parameter binding with
// the same body as handler errors.
func errorHandler(err error, ctx echo.Context) {
	if ctx.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := http.StatusText(code)

	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		message = fmt.Sprint(he.Message)
	}

	if ctx.Request().Method == http.MethodHead {
		_ = ctx.NoContent(code)
		return
	}
	_ = ctx.JSON(code, Error{Code: code, Message: message})
}
