package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"expense-tracker-web/internal/errors"
	"expense-tracker-web/internal/handlers"

	"github.com/labstack/echo/v4"
)

// PanicRecovery is a middleware that recovers from panics and returns a standardized error response
func PanicRecovery(logger *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				if r := recover(); r != nil {
					traceID := GetTraceID(c)
					if traceID == "" {
						traceID = "unknown"
					}

					logger.Error("Panic recovered",
						"trace_id", traceID,
						"panic", fmt.Sprintf("%v", r),
						"stack_trace", string(debug.Stack()),
						"path", c.Request().URL.Path,
						"method", c.Request().Method,
					)

					if c.Response().Committed {
						return
					}

					errorResponse := errors.NewErrorResponse(errors.SystemInternalError, traceID)
					if sendErr := handlers.SendErrorResponse(c, http.StatusInternalServerError, errorResponse); sendErr != nil {
						logger.Error("Failed to send panic recovery response",
							"trace_id", traceID,
							"error", sendErr.Error(),
						)
					}
					err = nil
				}
			}()

			return next(c)
		}
	}
}
