package services

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"expense-tracker-web/internal/dto"
	appErrors "expense-tracker-web/internal/errors"
	"expense-tracker-web/internal/models"

	"github.com/google/uuid"
)

// Form names one submittable form; the in-flight guard is per (client, form).
type Form string

const (
	FormRegister   Form = "register"
	FormLogin      Form = "login"
	FormAddMoney   Form = "add_money"
	FormSpendMoney Form = "spend_money"
)

const (
	RegisterSuccessMessage   = "Registration successful. Redirecting..."
	LoginSuccessMessage      = "Login successful. Redirecting..."
	AddMoneySuccessMessage   = "Money Added Successfully"
	SpendMoneySuccessMessage = "Money Spent Successfully"

	RegisterFailedMessage   = "Registration failed"
	LoginFailedMessage      = "Login failed"
	AddMoneyFailedMessage   = "Add Money Failed"
	SpendMoneyFailedMessage = "Spend Money Failed"
)

type inflightKey struct {
	clientID uuid.UUID
	form     Form
}

// SubmitService performs mutations. A second submission of a form that is
// still in flight for the same client is rejected, never queued.
type SubmitService struct {
	sessions      SessionServiceInterface
	api           FinanceAPIServiceInterface
	metrics       MetricsRecorderInterface
	logger        *slog.Logger
	audit         *SessionLogger
	redirectDelay time.Duration

	mu       sync.Mutex
	inflight map[inflightKey]struct{}
}

func NewSubmitService(
	sessions SessionServiceInterface,
	api FinanceAPIServiceInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
	redirectDelay time.Duration,
) SubmitServiceInterface {
	return &SubmitService{
		sessions:      sessions,
		api:           api,
		metrics:       metrics,
		logger:        logger,
		audit:         NewSessionLogger(logger),
		redirectDelay: redirectDelay,
		inflight:      make(map[inflightKey]struct{}),
	}
}

func (s *SubmitService) acquire(clientID uuid.UUID, form Form) (release func(), ok bool) {
	key := inflightKey{clientID: clientID, form: form}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, busy := s.inflight[key]; busy {
		return nil, false
	}
	s.inflight[key] = struct{}{}

	return func() {
		s.mu.Lock()
		delete(s.inflight, key)
		s.mu.Unlock()
	}, true
}

func (s *SubmitService) Register(ctx context.Context, clientID uuid.UUID, req dto.RegisterRequest) models.SubmitResult {
	return s.guarded(ctx, clientID, FormRegister, func() models.SubmitResult {
		resp, err := s.api.Register(ctx, req)
		return s.credentialOutcome(ctx, clientID, FormRegister, resp, err, RegisterSuccessMessage, RegisterFailedMessage)
	})
}

func (s *SubmitService) Login(ctx context.Context, clientID uuid.UUID, req dto.LoginRequest) models.SubmitResult {
	return s.guarded(ctx, clientID, FormLogin, func() models.SubmitResult {
		resp, err := s.api.Login(ctx, req)
		return s.credentialOutcome(ctx, clientID, FormLogin, resp, err, LoginSuccessMessage, LoginFailedMessage)
	})
}

func (s *SubmitService) AddMoney(ctx context.Context, clientID uuid.UUID, req dto.AddMoneyRequest) models.SubmitResult {
	return s.guarded(ctx, clientID, FormAddMoney, func() models.SubmitResult {
		payload := req.ToPayload()
		return s.authenticated(ctx, clientID, FormAddMoney, AddMoneySuccessMessage, AddMoneyFailedMessage,
			func(ctx context.Context) (*dto.MessageResponse, error) {
				return s.api.AddMoney(ctx, payload)
			})
	})
}

func (s *SubmitService) SpendMoney(ctx context.Context, clientID uuid.UUID, req dto.SpendMoneyRequest) models.SubmitResult {
	return s.guarded(ctx, clientID, FormSpendMoney, func() models.SubmitResult {
		payload := req.ToPayload()
		return s.authenticated(ctx, clientID, FormSpendMoney, SpendMoneySuccessMessage, SpendMoneyFailedMessage,
			func(ctx context.Context) (*dto.MessageResponse, error) {
				return s.api.SpendMoney(ctx, payload)
			})
	})
}

func (s *SubmitService) guarded(ctx context.Context, clientID uuid.UUID, form Form, submit func() models.SubmitResult) models.SubmitResult {
	release, ok := s.acquire(clientID, form)
	if !ok {
		s.audit.LogDuplicateSubmission(ctx, clientID, form)
		result := models.SubmitResult{
			State: models.StateFailure,
			Failure: &models.Failure{
				Kind:    models.FailureDuplicateSubmission,
				Message: appErrors.GetErrorMessage(appErrors.RequestDuplicateSubmission),
			},
		}
		s.recordOutcome(form, result)
		return result
	}
	defer release()

	start := time.Now()
	result := submit()
	if ctx.Err() != nil && result.State != models.StateSuccess {
		result = models.SubmitResult{State: models.StateDiscarded}
	}

	s.metrics.RecordProcessingTime("submission", time.Since(start))
	s.recordOutcome(form, result)
	return result
}

// credentialOutcome handles register/login: a success must carry a token,
// which is persisted before navigation is scheduled.
func (s *SubmitService) credentialOutcome(
	ctx context.Context,
	clientID uuid.UUID,
	form Form,
	resp *dto.TokenResponse,
	err error,
	successMessage, fallback string,
) models.SubmitResult {
	if err != nil {
		return s.failureFromError(ctx, form, err, fallback)
	}
	if ctx.Err() != nil {
		return models.SubmitResult{State: models.StateDiscarded}
	}

	if resp == nil || resp.Token == "" {
		message := fallback
		if resp != nil && resp.Message != "" {
			message = resp.Message
		}
		return requestFailure(message, 0)
	}

	// once started, persisting is not interrupted by the caller going away
	if err := s.sessions.Persist(context.WithoutCancel(ctx), clientID, resp.Token); err != nil {
		s.logger.Error("Failed to persist session", "form", form, "client_id", clientID, "error", err)
		return models.SubmitResult{
			State:   models.StateFailure,
			Failure: &models.Failure{Kind: models.FailureTransport, Message: appErrors.GetErrorMessage(appErrors.TransportUnreachable)},
		}
	}

	return models.SubmitResult{
		State:    models.StateSuccess,
		Message:  successMessage,
		Redirect: &models.Redirect{To: DashboardPath, After: s.redirectDelay},
	}
}

// authenticated handles add/spend. A 401 or 403 invalidates the session;
// any other rejection leaves it in place so the user can retry.
func (s *SubmitService) authenticated(
	ctx context.Context,
	clientID uuid.UUID,
	form Form,
	successMessage, fallback string,
	call func(context.Context) (*dto.MessageResponse, error),
) models.SubmitResult {
	session, err := s.sessions.Check(ctx, clientID)
	if err != nil {
		s.logger.Error("Session check failed", "form", form, "client_id", clientID, "error", err)
		return models.SubmitResult{
			State:   models.StateFailure,
			Failure: &models.Failure{Kind: models.FailureTransport, Message: appErrors.GetErrorMessage(appErrors.TransportUnreachable)},
		}
	}
	if !session.Present {
		return models.SubmitResult{
			State:    models.StateFailure,
			Failure:  &models.Failure{Kind: models.FailureMissingSession, Message: appErrors.GetErrorMessage(appErrors.AuthMissingSession)},
			Redirect: &models.Redirect{To: LoginPath},
		}
	}

	resp, err := call(WithBearerToken(ctx, session.Token))
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.IsAuthorization() && ctx.Err() == nil {
			s.audit.LogAuthorizationRejected(ctx, clientID, string(form), apiErr.StatusCode)
			if clearErr := s.sessions.Clear(ctx, clientID); clearErr != nil {
				s.logger.Error("Failed to clear session after authorization failure", "form", form, "client_id", clientID, "error", clearErr)
			}
			return models.SubmitResult{
				State: models.StateFailure,
				Failure: &models.Failure{
					Kind:    models.FailureAuthorization,
					Message: appErrors.GetErrorMessage(appErrors.AuthAuthorizationFailure),
					Status:  apiErr.StatusCode,
				},
				Redirect: &models.Redirect{To: LoginPath},
			}
		}
		return s.failureFromError(ctx, form, err, fallback)
	}

	message := successMessage
	if resp != nil && resp.Message != "" {
		message = resp.Message
	}
	return models.SubmitResult{State: models.StateSuccess, Message: message}
}

func (s *SubmitService) failureFromError(ctx context.Context, form Form, err error, fallback string) models.SubmitResult {
	if ctx.Err() != nil {
		return models.SubmitResult{State: models.StateDiscarded}
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		message := apiErr.Message
		if message == "" {
			message = fallback
		}
		return requestFailure(message, apiErr.StatusCode)
	}

	s.logger.Warn("Submission failed in transport", "form", form, "error", err)
	return models.SubmitResult{
		State:   models.StateFailure,
		Failure: &models.Failure{Kind: models.FailureTransport, Message: appErrors.GetErrorMessage(appErrors.TransportUnreachable)},
	}
}

func requestFailure(message string, status int) models.SubmitResult {
	return models.SubmitResult{
		State:   models.StateFailure,
		Failure: &models.Failure{Kind: models.FailureRequest, Message: message, Status: status},
	}
}

func (s *SubmitService) recordOutcome(form Form, result models.SubmitResult) {
	s.metrics.IncrementCounter("submission_completed", map[string]string{
		"operation": string(form),
		"status":    fetchOutcome(result.State, result.Failure),
	})
}
