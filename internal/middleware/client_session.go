package middleware

import (
	"log/slog"
	"net/http"

	"expense-tracker-web/internal/config"
	"expense-tracker-web/internal/errors"
	"expense-tracker-web/internal/handlers"
	"expense-tracker-web/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ClientIDContextKey is the context key for the client instance ID
const ClientIDContextKey = handlers.ClientIDContextKey

// ClientSession identifies the browser as a client instance. A valid signed
// cookie is reused; a missing, expired or forged one is replaced by a fresh
// client ID, which has no stored credential.
func ClientSession(tokens services.ClientTokenServiceInterface, cfg config.SessionConfig, logger *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if cookie, err := c.Cookie(cfg.CookieName); err == nil && cookie.Value != "" {
				clientID, err := tokens.Validate(cookie.Value)
				if err == nil {
					c.Set(ClientIDContextKey, clientID)
					return next(c)
				}
				logger.Debug("Replacing invalid client cookie",
					"trace_id", GetTraceID(c),
					"error", err,
				)
			}

			clientID := uuid.New()
			token, expiresAt, err := tokens.Issue(clientID)
			if err != nil {
				logger.Error("Failed to issue client cookie",
					"trace_id", GetTraceID(c),
					"error", err,
				)
				return handlers.SendError(c, errors.SystemInternalError)
			}

			c.SetCookie(&http.Cookie{
				Name:     cfg.CookieName,
				Value:    token,
				Path:     "/",
				Expires:  expiresAt,
				HttpOnly: true,
				Secure:   cfg.CookieSecure,
				SameSite: http.SameSiteLaxMode,
			})
			c.Set(ClientIDContextKey, clientID)
			return next(c)
		}
	}
}

// GetClientID extracts the client instance ID from the Echo context
func GetClientID(c echo.Context) (uuid.UUID, bool) {
	clientID, ok := c.Get(ClientIDContextKey).(uuid.UUID)
	return clientID, ok
}
