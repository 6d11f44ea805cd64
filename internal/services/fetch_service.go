package services

import (
	"context"
	"errors"
	"log/slog"

	"expense-tracker-web/internal/dto"
	appErrors "expense-tracker-web/internal/errors"
	"expense-tracker-web/internal/models"

	"github.com/google/uuid"
)

const (
	LoginPath     = "/login"
	DashboardPath = "/dashboard"
)

// TransportFailureMessage is shown when the API could not be reached. The
// credential is left alone.
const TransportFailureMessage = "Could not reach the server. Please try again."

// FetchService performs exactly one API read per view activation
type FetchService struct {
	sessions SessionServiceInterface
	api      FinanceAPIServiceInterface
	metrics  MetricsRecorderInterface
	logger   *slog.Logger
	audit    *SessionLogger
}

func NewFetchService(
	sessions SessionServiceInterface,
	api FinanceAPIServiceInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) FetchServiceInterface {
	return &FetchService{
		sessions: sessions,
		api:      api,
		metrics:  metrics,
		logger:   logger,
		audit:    NewSessionLogger(logger),
	}
}

func (s *FetchService) Profile(ctx context.Context, clientID uuid.UUID) models.FetchResult[dto.ProfileResponse] {
	return fetch(ctx, s, clientID, "profile", s.api.Profile)
}

func (s *FetchService) Transactions(ctx context.Context, clientID uuid.UUID) models.FetchResult[dto.TransactionListResponse] {
	return fetch(ctx, s, clientID, "transactions", s.api.ListTransactions)
}

func (s *FetchService) MonthlyReport(ctx context.Context, clientID uuid.UUID, period models.ReportPeriod) models.FetchResult[dto.MonthlyReportResponse] {
	return fetch(ctx, s, clientID, "monthly_report", func(ctx context.Context) (*dto.MonthlyReportResponse, error) {
		return s.api.MonthlyReport(ctx, period)
	})
}

// fetch runs the authenticated read lifecycle:
//
//	no credential        -> failure(missing_session), no network call
//	non-success status   -> failure(authorization), credential cleared
//	transport failure    -> failure(transport), credential kept
//	context cancelled    -> discarded, nothing mutated
func fetch[T any](
	ctx context.Context,
	s *FetchService,
	clientID uuid.UUID,
	op string,
	call func(context.Context) (*T, error),
) models.FetchResult[T] {
	result := runFetch(ctx, s, clientID, op, call)
	s.metrics.IncrementCounter("fetch_completed", map[string]string{
		"operation": op,
		"status":    fetchOutcome(result.State, result.Failure),
	})
	return result
}

func runFetch[T any](ctx context.Context, s *FetchService, clientID uuid.UUID, op string, call func(context.Context) (*T, error)) models.FetchResult[T] {
	session, err := s.sessions.Check(ctx, clientID)
	if ctx.Err() != nil {
		return models.FetchResult[T]{State: models.StateDiscarded}
	}
	if err != nil {
		s.logger.Error("Session check failed", "operation", op, "client_id", clientID, "error", err)
		return models.FetchResult[T]{
			State:   models.StateFailure,
			Failure: &models.Failure{Kind: models.FailureTransport, Message: TransportFailureMessage},
		}
	}
	if !session.Present {
		return models.FetchResult[T]{
			State:    models.StateFailure,
			Failure:  &models.Failure{Kind: models.FailureMissingSession, Message: appErrors.GetErrorMessage(appErrors.AuthMissingSession)},
			Redirect: &models.Redirect{To: LoginPath},
		}
	}

	payload, err := call(WithBearerToken(ctx, session.Token))

	// a result that arrives after teardown is dropped without touching anything
	if ctx.Err() != nil {
		s.logger.Debug("Discarding fetch result for torn down view", "operation", op, "client_id", clientID)
		return models.FetchResult[T]{State: models.StateDiscarded}
	}

	if err != nil {
		var apiErr *APIError
		switch {
		case errors.As(err, &apiErr):
			s.audit.LogAuthorizationRejected(ctx, clientID, op, apiErr.StatusCode)
			if clearErr := s.sessions.Clear(ctx, clientID); clearErr != nil {
				s.logger.Error("Failed to clear session after authorization failure", "operation", op, "client_id", clientID, "error", clearErr)
			}
			return models.FetchResult[T]{
				State: models.StateFailure,
				Failure: &models.Failure{
					Kind:    models.FailureAuthorization,
					Message: appErrors.GetErrorMessage(appErrors.AuthAuthorizationFailure),
					Status:  apiErr.StatusCode,
				},
				Redirect: &models.Redirect{To: LoginPath},
			}
		default:
			s.logger.Warn("Fetch failed in transport", "operation", op, "client_id", clientID, "error", err)
			message := TransportFailureMessage
			if errors.Is(err, ErrCircuitBreakerOpen) {
				message = appErrors.GetErrorMessage(appErrors.TransportCircuitOpen)
			}
			return models.FetchResult[T]{
				State:   models.StateFailure,
				Failure: &models.Failure{Kind: models.FailureTransport, Message: message},
			}
		}
	}

	return models.FetchResult[T]{State: models.StateSuccess, Payload: payload}
}

func fetchOutcome(state models.FetchState, failure *models.Failure) string {
	if failure != nil {
		return string(failure.Kind)
	}
	return string(state)
}
