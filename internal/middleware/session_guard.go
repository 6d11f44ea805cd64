package middleware

import (
	"log/slog"

	"expense-tracker-web/internal/errors"
	"expense-tracker-web/internal/handlers"
	"expense-tracker-web/internal/models"
	"expense-tracker-web/internal/services"

	"github.com/labstack/echo/v4"
)

// RequireSession runs the handler only when this client has a stored
// credential. Otherwise the client is sent to the login view and nothing is
// fetched. Token content is never inspected here.
func RequireSession(sessions services.SessionServiceInterface, logger *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			clientID, ok := GetClientID(c)
			if !ok {
				return handlers.SendError(c, errors.AuthInvalidClient)
			}

			status, err := sessions.Check(c.Request().Context(), clientID)
			if err != nil {
				logger.Error("Session check failed",
					"trace_id", GetTraceID(c),
					"client_id", clientID,
					"error", err,
				)
				return handlers.SendStoreError(c, err)
			}

			if !status.Present {
				return handlers.SendMissingSession(c)
			}

			return next(c)
		}
	}
}

// RedirectIfAuthenticated sends clients that already hold a credential from
// the register and login views to the dashboard. A failed check shows the
// form.
func RedirectIfAuthenticated(sessions services.SessionServiceInterface, logger *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			clientID, ok := GetClientID(c)
			if !ok {
				return next(c)
			}

			status, err := sessions.Check(c.Request().Context(), clientID)
			if err != nil {
				logger.Warn("Session check failed, showing form",
					"trace_id", GetTraceID(c),
					"client_id", clientID,
					"error", err,
				)
				return next(c)
			}

			if status.Present {
				return handlers.SendRedirect(c, &models.Redirect{To: services.DashboardPath})
			}

			return next(c)
		}
	}
}
