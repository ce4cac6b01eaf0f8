package web

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// Context wraps echo.Context with a request-scoped logger
type Context struct {
	echo.Context
	L *zap.Logger
}

// HandlerFunc is a handler function that uses our custom Context
type HandlerFunc func(ctx Context) error

// Wrap wraps a handler function to use our custom context
func Wrap(h HandlerFunc, l *zap.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		rid := c.Response().Header().Get(echo.HeaderXRequestID)

		ctx := Context{
			Context: c,
			L:       l.With(zap.String("request_id", rid)),
		}

		return h(ctx)
	}
}

// Error sends an error response
func (c Context) Error(status int, message string) error {
	return c.JSON(status, map[string]string{
		"error": message,
	})
}

// InternalError sends a 500 error
func (c Context) InternalError(message string) error {
	return c.Error(http.StatusInternalServerError, message)
}

// OK sends a 200 response with data
func (c Context) OK(data any) error {
	return c.JSON(http.StatusOK, data)
}
