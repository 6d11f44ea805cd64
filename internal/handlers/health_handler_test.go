package handlers

import (
	"context"
	"encoding/json"
	stdErrors "errors"
	"net/http"
	"testing"

	"expense-tracker-web/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubHealthChecker struct {
	err error
}

func (s stubHealthChecker) HealthCheck(ctx context.Context) error {
	return s.err
}

type stubBreaker models.CircuitBreakerState

func (s stubBreaker) GetState() models.CircuitBreakerState {
	return models.CircuitBreakerState(s)
}

func TestHealthCheckHandler_HealthCheck(t *testing.T) {
	t.Run("healthy reports the circuit state", func(t *testing.T) {
		e := newTestEcho()
		c, rec := newClientContext(e, jsonRequest(http.MethodGet, "/health", ""), uuid.Nil)

		handler := NewHealthCheckHandler(stubHealthChecker{}, stubBreaker(models.CircuitOpen))
		require.NoError(t, handler.HealthCheck(c))

		assert.Equal(t, http.StatusOK, rec.Code)
		var body map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "healthy", body["status"])
		assert.Equal(t, "open", body["finance_api"])
		assert.NotEmpty(t, body["time"])
	})

	t.Run("unreachable store is unavailable", func(t *testing.T) {
		e := newTestEcho()
		c, rec := newClientContext(e, jsonRequest(http.MethodGet, "/health", ""), uuid.Nil)

		handler := NewHealthCheckHandler(stubHealthChecker{err: stdErrors.New("dial tcp: refused")}, stubBreaker(models.CircuitClosed))
		require.NoError(t, handler.HealthCheck(c))

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Contains(t, rec.Body.String(), "SYSTEM_003")
		assert.Contains(t, rec.Body.String(), "trace-test")
	})
}
