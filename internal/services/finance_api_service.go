package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"expense-tracker-web/internal/config"
	"expense-tracker-web/internal/dto"
	"expense-tracker-web/internal/models"
)

const maxResponseBytes = 4 << 20

var (
	// ErrTransport matches every failure to get a usable answer from the API
	ErrTransport = errors.New("finance api unreachable")
	// ErrMissingBearerToken is returned when an authenticated call has no token in its context
	ErrMissingBearerToken = errors.New("missing bearer token")
)

// APIError is a non-success HTTP response. Message is the server-supplied
// "message" field, empty when the body had none.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("finance api returned %d", e.StatusCode)
	}
	return fmt.Sprintf("finance api returned %d: %s", e.StatusCode, e.Message)
}

// IsAuthorization reports whether the API rejected the credential itself.
func (e *APIError) IsAuthorization() bool {
	return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
}

// TransportError wraps connectivity failures, unparseable success bodies and
// an open circuit breaker.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

func (e *TransportError) Is(target error) bool { return target == ErrTransport }

type bearerTokenKey struct{}

// WithBearerToken attaches the credential an outgoing API call should carry.
func WithBearerToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, bearerTokenKey{}, token)
}

func bearerTokenFrom(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(bearerTokenKey{}).(string)
	return token, ok && token != ""
}

// BearerTransport sets the JSON headers and, when the request context carries
// one, the Authorization header.
type BearerTransport struct {
	base http.RoundTripper
}

func (t *BearerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())

	req.Header.Set("Accept", "application/json")
	if req.Body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token, ok := bearerTokenFrom(req.Context()); ok {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	return t.base.RoundTrip(req)
}

// FinanceAPIService calls the remote finance API
type FinanceAPIService struct {
	baseURL        string
	client         *http.Client
	circuitBreaker CircuitBreakerInterface
	metrics        MetricsRecorderInterface
	logger         *slog.Logger
}

// NewFinanceAPIService creates a new finance API client. A zero cfg.Timeout
// leaves the client without a timeout.
func NewFinanceAPIService(
	cfg *config.APIConfig,
	circuitBreaker CircuitBreakerInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) FinanceAPIServiceInterface {
	return NewFinanceAPIServiceWithTransport(cfg, http.DefaultTransport, circuitBreaker, metrics, logger)
}

func NewFinanceAPIServiceWithTransport(
	cfg *config.APIConfig,
	base http.RoundTripper,
	circuitBreaker CircuitBreakerInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) FinanceAPIServiceInterface {
	client := &http.Client{
		Transport: &BearerTransport{base: base},
		Timeout:   cfg.Timeout,
	}

	return &FinanceAPIService{
		baseURL:        cfg.BaseURL,
		client:         client,
		circuitBreaker: circuitBreaker,
		metrics:        metrics,
		logger:         logger,
	}
}

func (s *FinanceAPIService) Register(ctx context.Context, req dto.RegisterRequest) (*dto.TokenResponse, error) {
	var out dto.TokenResponse
	if err := s.call(ctx, "register", http.MethodPost, "/user/register", req, false, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *FinanceAPIService) Login(ctx context.Context, req dto.LoginRequest) (*dto.TokenResponse, error) {
	var out dto.TokenResponse
	if err := s.call(ctx, "login", http.MethodPost, "/user/login", req, false, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *FinanceAPIService) Profile(ctx context.Context) (*dto.ProfileResponse, error) {
	var out dto.ProfileResponse
	if err := s.call(ctx, "profile", http.MethodGet, "/user/profile", nil, true, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *FinanceAPIService) AddMoney(ctx context.Context, payload dto.AddMoneyPayload) (*dto.MessageResponse, error) {
	var out dto.MessageResponse
	if err := s.call(ctx, "add_money", http.MethodPost, "/user/add-money", payload, true, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *FinanceAPIService) SpendMoney(ctx context.Context, payload dto.SpendMoneyPayload) (*dto.MessageResponse, error) {
	var out dto.MessageResponse
	if err := s.call(ctx, "spend_money", http.MethodPost, "/user/spend-money", payload, true, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *FinanceAPIService) ListTransactions(ctx context.Context) (*dto.TransactionListResponse, error) {
	var out dto.TransactionListResponse
	if err := s.call(ctx, "list_transactions", http.MethodGet, "/transaction", nil, true, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *FinanceAPIService) MonthlyReport(ctx context.Context, period models.ReportPeriod) (*dto.MonthlyReportResponse, error) {
	query := url.Values{}
	query.Set("month", strconv.Itoa(period.Month))
	query.Set("year", strconv.Itoa(period.Year))

	var out dto.MonthlyReportResponse
	if err := s.call(ctx, "monthly_report", http.MethodGet, "/transaction/monthly?"+query.Encode(), nil, true, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// call performs one request and decodes a 2xx body into out. Errors are
// *APIError, *TransportError or the context's own error.
func (s *FinanceAPIService) call(ctx context.Context, op, method, path string, body any, authenticated bool, out any) error {
	if authenticated {
		if _, ok := bearerTokenFrom(ctx); !ok {
			return ErrMissingBearerToken
		}
	}

	if err := s.circuitBreaker.Allow(); err != nil {
		s.record(op, "circuit_open", 0)
		return &TransportError{Op: op, Err: err}
	}

	req, err := s.buildRequest(ctx, method, path, body)
	if err != nil {
		return err
	}

	start := time.Now()
	resp, respBody, err := s.do(req)
	elapsed := time.Since(start)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			s.record(op, "cancelled", elapsed)
			return ctxErr
		}
		s.circuitBreaker.RecordFailure()
		s.record(op, "transport_error", elapsed)
		return &TransportError{Op: op, Err: err}
	}

	if resp.StatusCode >= http.StatusInternalServerError {
		s.circuitBreaker.RecordFailure()
	} else {
		s.circuitBreaker.RecordSuccess()
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode, Message: decodeMessage(respBody)}
		s.record(op, strconv.Itoa(resp.StatusCode), elapsed)
		s.logger.Warn(
			"finance api rejected request",
			"operation", op,
			"status", resp.StatusCode,
			"message", apiErr.Message,
		)
		return apiErr
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		s.record(op, "decode_error", elapsed)
		s.logger.Error(
			"finance api returned unparseable body",
			"operation", op,
			"status", resp.StatusCode,
			"error", err,
		)
		return &TransportError{Op: op, Err: fmt.Errorf("decode success response: %w", err)}
	}

	s.record(op, strconv.Itoa(resp.StatusCode), elapsed)
	return nil
}

func (s *FinanceAPIService) buildRequest(
	ctx context.Context,
	method, path string,
	body any,
) (*http.Request, error) {

	var buf io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request body: %w", err)
		}
		buf = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		method,
		s.baseURL+path,
		buf,
	)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	return req, nil
}

func (s *FinanceAPIService) do(req *http.Request) (*http.Response, []byte, error) {
	resp, err := s.client.Do(req)
	if err != nil {
		s.logger.Error(
			"finance api request failed",
			"method", req.Method,
			"path", req.URL.Path,
			"error", err,
		)
		return nil, nil, err
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	resp.Body.Close()

	if err != nil {
		return nil, nil, fmt.Errorf("read response body: %w", err)
	}

	return resp, body, nil
}

func (s *FinanceAPIService) record(op, status string, elapsed time.Duration) {
	s.metrics.IncrementCounter("finance_api.request", map[string]string{
		"operation": op,
		"status":    status,
	})
	if elapsed > 0 {
		s.metrics.RecordProcessingTime("finance_api.request", elapsed)
	}
}

// decodeMessage pulls "message" out of an error body, tolerating bodies
// that are not JSON.
func decodeMessage(body []byte) string {
	var msg dto.MessageResponse
	if err := json.Unmarshal(body, &msg); err != nil {
		return ""
	}
	return msg.Message
}
