package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"expense-tracker-web/internal/config"
	"expense-tracker-web/internal/database"
	"expense-tracker-web/internal/dto"
	"expense-tracker-web/internal/models"
	"expense-tracker-web/internal/repositories"
	"expense-tracker-web/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const testRedirectDelay = 1500 * time.Millisecond

type SubmitServiceTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	sessions *service_mocks.MockSessionServiceInterface
	api      *service_mocks.MockFinanceAPIServiceInterface
	metrics  *service_mocks.MockMetricsRecorderInterface
	service  SubmitServiceInterface
	clientID uuid.UUID
	ctx      context.Context
}

func (s *SubmitServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.sessions = service_mocks.NewMockSessionServiceInterface(s.ctrl)
	s.api = service_mocks.NewMockFinanceAPIServiceInterface(s.ctrl)
	s.metrics = service_mocks.NewMockMetricsRecorderInterface(s.ctrl)
	s.metrics.EXPECT().IncrementCounter("submission_completed", gomock.Any()).AnyTimes()
	s.metrics.EXPECT().RecordProcessingTime("submission", gomock.Any()).AnyTimes()

	s.service = NewSubmitService(s.sessions, s.api, s.metrics, slog.New(slog.NewTextHandler(io.Discard, nil)), testRedirectDelay)
	s.clientID = uuid.New()
	s.ctx = context.Background()
}

func (s *SubmitServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestSubmitServiceSuite(t *testing.T) {
	suite.Run(t, new(SubmitServiceTestSuite))
}

func (s *SubmitServiceTestSuite) withSession(token string) {
	s.sessions.EXPECT().Check(gomock.Any(), s.clientID).Return(models.SessionStatus{Present: true, Token: token}, nil)
}

func (s *SubmitServiceTestSuite) TestLogin_PersistsTokenAndSchedulesRedirect() {
	req := dto.LoginRequest{Email: "a@b.c", Password: "pw"}

	s.api.EXPECT().Login(gomock.Any(), req).Return(&dto.TokenResponse{Token: "T1"}, nil)
	s.sessions.EXPECT().Persist(gomock.Any(), s.clientID, "T1").Return(nil)

	result := s.service.Login(s.ctx, s.clientID, req)
	s.True(result.Succeeded())
	s.Equal(LoginSuccessMessage, result.DisplayMessage())
	s.Require().NotNil(result.Redirect)
	s.Equal(DashboardPath, result.Redirect.To)
	s.Equal(testRedirectDelay, result.Redirect.After)
}

func (s *SubmitServiceTestSuite) TestLogin_RejectedShowsServerMessage() {
	s.api.EXPECT().Login(gomock.Any(), dto.LoginRequest{}).
		Return(nil, &APIError{StatusCode: http.StatusUnauthorized, Message: "Invalid credentials"})

	result := s.service.Login(s.ctx, s.clientID, dto.LoginRequest{})
	s.Equal(models.StateFailure, result.State)
	s.Require().NotNil(result.Failure)
	s.Equal(models.FailureRequest, result.Failure.Kind)
	s.Equal("Invalid credentials", result.DisplayMessage())
	s.Nil(result.Redirect)
}

func (s *SubmitServiceTestSuite) TestLogin_RejectedWithoutMessageUsesFallback() {
	s.api.EXPECT().Login(gomock.Any(), gomock.Any()).Return(nil, &APIError{StatusCode: http.StatusBadRequest})

	result := s.service.Login(s.ctx, s.clientID, dto.LoginRequest{Email: "a@b.c"})
	s.Equal(LoginFailedMessage, result.DisplayMessage())
}

func (s *SubmitServiceTestSuite) TestRegister_SuccessWithoutTokenIsFailure() {
	s.api.EXPECT().Register(gomock.Any(), gomock.Any()).Return(&dto.TokenResponse{Message: "User created"}, nil)

	result := s.service.Register(s.ctx, s.clientID, dto.RegisterRequest{Email: "a@b.c"})
	s.False(result.Succeeded())
	s.Equal("User created", result.DisplayMessage())
	s.Nil(result.Redirect)
}

func (s *SubmitServiceTestSuite) TestRegister_EmptyBodyUsesFallback() {
	s.api.EXPECT().Register(gomock.Any(), gomock.Any()).Return(&dto.TokenResponse{}, nil)

	result := s.service.Register(s.ctx, s.clientID, dto.RegisterRequest{})
	s.Equal(RegisterFailedMessage, result.DisplayMessage())
}

func (s *SubmitServiceTestSuite) TestRegister_Success() {
	s.api.EXPECT().Register(gomock.Any(), gomock.Any()).Return(&dto.TokenResponse{Token: "T2"}, nil)
	s.sessions.EXPECT().Persist(gomock.Any(), s.clientID, "T2").Return(nil)

	result := s.service.Register(s.ctx, s.clientID, dto.RegisterRequest{Name: "Asha", Email: "asha@example.com", Password: "pw"})
	s.True(result.Succeeded())
	s.Equal(RegisterSuccessMessage, result.Message)
	s.Equal(DashboardPath, result.Redirect.To)
}

func (s *SubmitServiceTestSuite) TestLogin_PersistFailureIsServerError() {
	s.api.EXPECT().Login(gomock.Any(), gomock.Any()).Return(&dto.TokenResponse{Token: "T1"}, nil)
	s.sessions.EXPECT().Persist(gomock.Any(), s.clientID, "T1").Return(errors.New("database is locked"))

	result := s.service.Login(s.ctx, s.clientID, dto.LoginRequest{Email: "a@b.c", Password: "pw"})
	s.Require().NotNil(result.Failure)
	s.Equal(models.FailureTransport, result.Failure.Kind)
	s.Equal("Server error", result.DisplayMessage())
	s.Nil(result.Redirect)
}

func (s *SubmitServiceTestSuite) TestLogin_TransportFailure() {
	s.api.EXPECT().Login(gomock.Any(), gomock.Any()).Return(nil, &TransportError{Op: "login", Err: errors.New("dial tcp: connection refused")})

	result := s.service.Login(s.ctx, s.clientID, dto.LoginRequest{Email: "a@b.c", Password: "pw"})
	s.Require().NotNil(result.Failure)
	s.Equal(models.FailureTransport, result.Failure.Kind)
	s.Equal("Server error", result.DisplayMessage())
}

func (s *SubmitServiceTestSuite) TestAddMoney_ShowsServerMessageAndKeepsSession() {
	s.withSession("T1")
	s.api.EXPECT().AddMoney(bearerIs("T1"), dto.AddMoneyPayload{Mode: models.PaymentModeOnline, Amount: "500"}).
		Return(&dto.MessageResponse{Message: "Money Added Successfully"}, nil)

	result := s.service.AddMoney(s.ctx, s.clientID, dto.AddMoneyRequest{Mode: models.PaymentModeOnline, Amount: decimal.RequireFromString("500")})
	s.True(result.Succeeded())
	s.Equal("Money Added Successfully", result.DisplayMessage())
	s.Nil(result.Redirect)
}

func (s *SubmitServiceTestSuite) TestSpendMoney_DefaultMessage() {
	s.withSession("T1")
	s.api.EXPECT().SpendMoney(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, payload dto.SpendMoneyPayload) (*dto.MessageResponse, error) {
			s.Equal(models.TransactionTypeDebit, payload.Type)
			s.Equal(models.CategoryFood, payload.Category)
			return &dto.MessageResponse{}, nil
		})

	result := s.service.SpendMoney(s.ctx, s.clientID, dto.SpendMoneyRequest{
		Mode:     models.PaymentModeCash,
		Amount:   decimal.RequireFromString("80"),
		Category: models.CategoryFood,
	})
	s.True(result.Succeeded())
	s.Equal(SpendMoneySuccessMessage, result.DisplayMessage())
}

func (s *SubmitServiceTestSuite) TestAddMoney_WithoutSession() {
	s.sessions.EXPECT().Check(gomock.Any(), s.clientID).Return(models.SessionStatus{}, nil)

	result := s.service.AddMoney(s.ctx, s.clientID, dto.AddMoneyRequest{Mode: models.PaymentModeCash, Amount: decimal.RequireFromString("1")})
	s.Require().NotNil(result.Failure)
	s.Equal(models.FailureMissingSession, result.Failure.Kind)
	s.Equal(LoginPath, result.Redirect.To)
}

func (s *SubmitServiceTestSuite) TestAddMoney_UnauthorizedClearsSession() {
	for _, status := range []int{http.StatusUnauthorized, http.StatusForbidden} {
		s.Run(http.StatusText(status), func() {
			s.withSession("T1")
			s.api.EXPECT().AddMoney(gomock.Any(), gomock.Any()).Return(nil, &APIError{StatusCode: status, Message: "jwt expired"})
			s.sessions.EXPECT().Clear(gomock.Any(), s.clientID).Return(nil)

			result := s.service.AddMoney(s.ctx, s.clientID, dto.AddMoneyRequest{Mode: models.PaymentModeCash, Amount: decimal.RequireFromString("10")})
			s.Require().NotNil(result.Failure)
			s.Equal(models.FailureAuthorization, result.Failure.Kind)
			s.Require().NotNil(result.Redirect)
			s.Equal(LoginPath, result.Redirect.To)
		})
	}
}

func (s *SubmitServiceTestSuite) TestSpendMoney_BadRequestKeepsSession() {
	s.withSession("T1")
	s.api.EXPECT().SpendMoney(gomock.Any(), gomock.Any()).Return(nil, &APIError{StatusCode: http.StatusBadRequest, Message: "Insufficient balance"})

	result := s.service.SpendMoney(s.ctx, s.clientID, dto.SpendMoneyRequest{Mode: models.PaymentModeCash, Amount: decimal.RequireFromString("10"), Category: models.CategoryRent})
	s.Require().NotNil(result.Failure)
	s.Equal(models.FailureRequest, result.Failure.Kind)
	s.Equal("Insufficient balance", result.DisplayMessage())
	s.Equal(http.StatusBadRequest, result.Failure.Status)
	s.Nil(result.Redirect)
}

func (s *SubmitServiceTestSuite) TestSpendMoney_ServerErrorUsesFallback() {
	s.withSession("T1")
	s.api.EXPECT().SpendMoney(gomock.Any(), gomock.Any()).Return(nil, &APIError{StatusCode: http.StatusInternalServerError})

	result := s.service.SpendMoney(s.ctx, s.clientID, dto.SpendMoneyRequest{Mode: models.PaymentModeCash, Amount: decimal.RequireFromString("10"), Category: models.CategoryRent})
	s.Equal(SpendMoneyFailedMessage, result.DisplayMessage())
}

func (s *SubmitServiceTestSuite) TestDuplicateSubmissionIsRejected() {
	entered := make(chan struct{})
	release := make(chan struct{})

	s.withSession("T1")
	s.api.EXPECT().AddMoney(gomock.Any(), gomock.Any()).DoAndReturn(
		func(context.Context, dto.AddMoneyPayload) (*dto.MessageResponse, error) {
			close(entered)
			<-release
			return &dto.MessageResponse{Message: "Money Added Successfully"}, nil
		})

	req := dto.AddMoneyRequest{Mode: models.PaymentModeOnline, Amount: decimal.RequireFromString("700")}
	first := make(chan models.SubmitResult, 1)
	go func() {
		first <- s.service.AddMoney(s.ctx, s.clientID, req)
	}()
	<-entered

	second := s.service.AddMoney(s.ctx, s.clientID, req)
	s.Require().NotNil(second.Failure)
	s.Equal(models.FailureDuplicateSubmission, second.Failure.Kind)

	close(release)
	s.True((<-first).Succeeded())

	// the guard is released once the first submission settles
	s.withSession("T1")
	s.api.EXPECT().AddMoney(gomock.Any(), gomock.Any()).Return(&dto.MessageResponse{}, nil)
	s.True(s.service.AddMoney(s.ctx, s.clientID, req).Succeeded())
}

func (s *SubmitServiceTestSuite) TestGuardIsPerClientAndForm() {
	entered := make(chan struct{})
	release := make(chan struct{})

	s.withSession("T1")
	s.api.EXPECT().AddMoney(gomock.Any(), gomock.Any()).DoAndReturn(
		func(context.Context, dto.AddMoneyPayload) (*dto.MessageResponse, error) {
			close(entered)
			<-release
			return &dto.MessageResponse{}, nil
		})

	done := make(chan models.SubmitResult, 1)
	go func() {
		done <- s.service.AddMoney(s.ctx, s.clientID, dto.AddMoneyRequest{Mode: models.PaymentModeCash, Amount: decimal.RequireFromString("1")})
	}()
	<-entered

	s.withSession("T1")
	s.api.EXPECT().SpendMoney(gomock.Any(), gomock.Any()).Return(&dto.MessageResponse{}, nil)
	spend := s.service.SpendMoney(s.ctx, s.clientID, dto.SpendMoneyRequest{Mode: models.PaymentModeCash, Amount: decimal.RequireFromString("1"), Category: models.CategoryFood})
	s.True(spend.Succeeded())

	other := uuid.New()
	s.sessions.EXPECT().Check(gomock.Any(), other).Return(models.SessionStatus{Present: true, Token: "T9"}, nil)
	s.api.EXPECT().AddMoney(bearerIs("T9"), gomock.Any()).Return(&dto.MessageResponse{}, nil)
	s.True(s.service.AddMoney(s.ctx, other, dto.AddMoneyRequest{Mode: models.PaymentModeCash, Amount: decimal.RequireFromString("1")}).Succeeded())

	close(release)
	s.True((<-done).Succeeded())
}

func (s *SubmitServiceTestSuite) TestCancelledLoginIsDiscardedWithoutPersisting() {
	ctx, cancel := context.WithCancel(s.ctx)

	s.api.EXPECT().Login(gomock.Any(), gomock.Any()).DoAndReturn(
		func(context.Context, dto.LoginRequest) (*dto.TokenResponse, error) {
			cancel()
			return &dto.TokenResponse{Token: "T1"}, nil
		})

	result := s.service.Login(ctx, s.clientID, dto.LoginRequest{Email: "a@b.c", Password: "pw"})
	s.Equal(models.StateDiscarded, result.State)
	s.Nil(result.Redirect)
}

// TestLoginFlowAgainstStore covers the login screen end to end: a good
// login stores the token, a rejected one leaves nothing behind.
func TestLoginFlowAgainstStore(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	metrics := NewPrometheusMetrics(nil)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/user/login":
			var body dto.LoginRequest
			_ = decodeJSONBody(r, &body)
			if body.Email == "a@b.c" && body.Password == "pw" {
				writeJSON(w, http.StatusOK, map[string]string{"token": "T1"})
				return
			}
			writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "Invalid credentials"})
		case "/user/add-money":
			if r.Header.Get("Authorization") != "Bearer T1" {
				writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "Unauthorized"})
				return
			}
			writeJSON(w, http.StatusOK, map[string]string{"message": "Money Added Successfully"})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	db := database.SetupTestDB(t)
	sessions := NewSessionService(repositories.NewCredentialRepository(db.DB), NewSecretboxCipher(newTestKey(t)), metrics, logger)
	breaker := NewCircuitBreaker(config.CircuitBreakerConfig{MaxFailures: 5, ResetTimeout: time.Minute, HalfOpenMaxSucc: 1}, nil)
	api := NewFinanceAPIService(&config.APIConfig{BaseURL: server.URL}, breaker, metrics, logger)
	submitter := NewSubmitService(sessions, api, metrics, logger, time.Second)

	ctx := context.Background()

	rejected := uuid.New()
	result := submitter.Login(ctx, rejected, dto.LoginRequest{})
	assert.Equal(t, "Invalid credentials", result.DisplayMessage())
	status, err := sessions.Check(ctx, rejected)
	require.NoError(t, err)
	assert.False(t, status.Present)

	accepted := uuid.New()
	result = submitter.Login(ctx, accepted, dto.LoginRequest{Email: "a@b.c", Password: "pw"})
	require.True(t, result.Succeeded())
	assert.Equal(t, "Login successful. Redirecting...", result.Message)
	assert.Equal(t, DashboardPath, result.Redirect.To)
	assert.Equal(t, time.Second, result.Redirect.After)

	status, err = sessions.Check(ctx, accepted)
	require.NoError(t, err)
	assert.Equal(t, "T1", status.Token)

	result = submitter.AddMoney(ctx, accepted, dto.AddMoneyRequest{Mode: models.PaymentModeOnline, Amount: decimal.RequireFromString("700")})
	assert.Equal(t, "Money Added Successfully", result.DisplayMessage())

	status, err = sessions.Check(ctx, accepted)
	require.NoError(t, err)
	assert.Equal(t, "T1", status.Token)
}
