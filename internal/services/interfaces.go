package services

import (
	"context"
	"time"

	"expense-tracker-web/internal/dto"
	"expense-tracker-web/internal/models"

	"github.com/google/uuid"
)

// FinanceAPIServiceInterface is the remote finance API. Authenticated calls
// read the bearer token from the context (see WithBearerToken).
type FinanceAPIServiceInterface interface {
	Register(ctx context.Context, req dto.RegisterRequest) (*dto.TokenResponse, error)
	Login(ctx context.Context, req dto.LoginRequest) (*dto.TokenResponse, error)
	Profile(ctx context.Context) (*dto.ProfileResponse, error)
	AddMoney(ctx context.Context, payload dto.AddMoneyPayload) (*dto.MessageResponse, error)
	SpendMoney(ctx context.Context, payload dto.SpendMoneyPayload) (*dto.MessageResponse, error)
	ListTransactions(ctx context.Context) (*dto.TransactionListResponse, error)
	MonthlyReport(ctx context.Context, period models.ReportPeriod) (*dto.MonthlyReportResponse, error)
}

// SessionServiceInterface guards and mutates the per-client credential
type SessionServiceInterface interface {
	// Check reads the stored credential. It never validates token content.
	Check(ctx context.Context, clientID uuid.UUID) (models.SessionStatus, error)
	Persist(ctx context.Context, clientID uuid.UUID, token string) error
	Clear(ctx context.Context, clientID uuid.UUID) error
}

// FetchServiceInterface performs the single read behind each authenticated view
type FetchServiceInterface interface {
	Profile(ctx context.Context, clientID uuid.UUID) models.FetchResult[dto.ProfileResponse]
	Transactions(ctx context.Context, clientID uuid.UUID) models.FetchResult[dto.TransactionListResponse]
	MonthlyReport(ctx context.Context, clientID uuid.UUID, period models.ReportPeriod) models.FetchResult[dto.MonthlyReportResponse]
}

// SubmitServiceInterface performs user-initiated mutations
type SubmitServiceInterface interface {
	Register(ctx context.Context, clientID uuid.UUID, req dto.RegisterRequest) models.SubmitResult
	Login(ctx context.Context, clientID uuid.UUID, req dto.LoginRequest) models.SubmitResult
	AddMoney(ctx context.Context, clientID uuid.UUID, req dto.AddMoneyRequest) models.SubmitResult
	SpendMoney(ctx context.Context, clientID uuid.UUID, req dto.SpendMoneyRequest) models.SubmitResult
}

// ViewServiceInterface turns fetched payloads into display-ready views and
// keeps mounted transaction snapshots for filter re-derivation
type ViewServiceInterface interface {
	MountTransactions(clientID uuid.UUID, payload *dto.TransactionListResponse, filters models.TransactionFilters) *dto.TransactionsView
	RefilterTransactions(clientID uuid.UUID, viewID string, filters models.TransactionFilters) (*dto.TransactionsView, error)
	UnmountClient(clientID uuid.UUID)
	Profile(payload *dto.ProfileResponse) *dto.ProfileView
	Report(payload *dto.MonthlyReportResponse, period models.ReportPeriod) *dto.ReportView
}

// ClientTokenServiceInterface signs and verifies the client-instance cookie
type ClientTokenServiceInterface interface {
	Issue(clientID uuid.UUID) (string, time.Time, error)
	Validate(token string) (uuid.UUID, error)
}

// CredentialCipherInterface encrypts credentials at rest
type CredentialCipherInterface interface {
	Seal(plaintext []byte) ([]byte, error)
	Open(ciphertext []byte) ([]byte, error)
}

// CircuitBreakerInterface guards calls to the finance API
type CircuitBreakerInterface interface {
	Allow() error
	RecordSuccess()
	RecordFailure()
	GetState() models.CircuitBreakerState
	GetFailureCount() int
}

// MetricsRecorderInterface records service metrics
type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}
