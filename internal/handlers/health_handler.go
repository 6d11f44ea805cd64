package handlers

import (
	"context"
	"net/http"
	"time"

	"expense-tracker-web/internal/errors"
	"expense-tracker-web/internal/models"

	"github.com/labstack/echo/v4"
)

// HealthChecker pings the credential store
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// BreakerState reports the finance API circuit breaker state
type BreakerState interface {
	GetState() models.CircuitBreakerState
}

// HealthCheckHandler handles the health check endpoint
type HealthCheckHandler struct {
	db      HealthChecker
	breaker BreakerState
}

// NewHealthCheckHandler creates a new health check handler
func NewHealthCheckHandler(db HealthChecker, breaker BreakerState) *HealthCheckHandler {
	return &HealthCheckHandler{db: db, breaker: breaker}
}

// HealthCheck reports credential store connectivity and the finance API
// circuit state. Only the store decides health; an open circuit is reported
// but still healthy.
// @Summary Health check
// @Tags Health
// @Produce json
// @Success 200 {object} object{status=string,finance_api=string,time=string} "Service is healthy"
// @Failure 503 {object} errors.ErrorResponse "SYSTEM_003 - Service unavailable (session store unreachable)"
// @Router /health [get]
func (h *HealthCheckHandler) HealthCheck(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
	defer cancel()

	if err := h.db.HealthCheck(ctx); err != nil {
		errorResponse := errors.NewErrorResponse(
			errors.SystemServiceUnavailable,
			getTraceID(c),
			errors.WithDetails("Session store connection failed"),
		)
		return c.JSON(http.StatusServiceUnavailable, errorResponse)
	}

	return c.JSON(http.StatusOK, map[string]string{
		"status":      "healthy",
		"finance_api": h.breaker.GetState().String(),
		"time":        time.Now().UTC().Format(time.RFC3339),
	})
}
