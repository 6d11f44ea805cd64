package services

import (
	"errors"
	"log/slog"
	"time"

	"expense-tracker-web/internal/dto"
	"expense-tracker-web/internal/models"

	"github.com/google/uuid"
)

const (
	DateLayout  = "Jan 2, 2006, 03:04 PM"
	MissingNote = "—"
)

var ErrViewNotFound = errors.New("transaction view not found")

// mountedView is the snapshot a transaction view re-derives from. The
// payload is shared read-only with every derived view.
type mountedView struct {
	clientID uuid.UUID
	payload  *dto.TransactionListResponse
}

// ViewService builds display-ready views from fetched payloads
type ViewService struct {
	views  *ViewCache[mountedView]
	logger *slog.Logger
}

// NewViewService keeps at most maxViews mounted transaction snapshots, each
// unmounted after ttl without use.
func NewViewService(maxViews int, ttl time.Duration, logger *slog.Logger) *ViewService {
	return &ViewService{
		views:  NewViewCache[mountedView](maxViews, ttl),
		logger: logger,
	}
}

// MountTransactions stores a freshly fetched list and derives its first view.
func (s *ViewService) MountTransactions(clientID uuid.UUID, payload *dto.TransactionListResponse, filters models.TransactionFilters) *dto.TransactionsView {
	id := uuid.NewString()
	s.views.Set(id, mountedView{clientID: clientID, payload: payload})
	return deriveTransactions(id, payload, filters)
}

// RefilterTransactions re-derives a mounted view without refetching.
func (s *ViewService) RefilterTransactions(clientID uuid.UUID, viewID string, filters models.TransactionFilters) (*dto.TransactionsView, error) {
	mounted, ok := s.views.Get(viewID)
	if !ok || mounted.clientID != clientID {
		return nil, ErrViewNotFound
	}
	return deriveTransactions(viewID, mounted.payload, filters), nil
}

// UnmountClient drops every snapshot held for a client.
func (s *ViewService) UnmountClient(clientID uuid.UUID) {
	removed := s.views.DeleteFunc(func(v mountedView) bool { return v.clientID == clientID })
	if removed > 0 {
		s.logger.Debug("Unmounted transaction views", "client_id", clientID, "count", removed)
	}
}

// CleanExpired drops snapshots past their TTL.
func (s *ViewService) CleanExpired() int {
	return s.views.CleanExpired()
}

// Mounted is the number of snapshots currently held.
func (s *ViewService) Mounted() int {
	return s.views.Len()
}

func deriveTransactions(id string, payload *dto.TransactionListResponse, filters models.TransactionFilters) *dto.TransactionsView {
	filtered := filters.Apply(payload.Transactions)

	rows := make([]dto.TransactionRow, 0, len(filtered))
	for _, tx := range filtered {
		rows = append(rows, newTransactionRow(tx))
	}

	active := filters.ActiveCount()
	return &dto.TransactionsView{
		ID:                id,
		Filters:           filters,
		ActiveFilterCount: active,
		ShowClearFilters:  active > 0,
		ResultCount:       len(rows),
		TotalTransactions: payload.TotalTransactions,
		Summary:           payload.Summary,
		ModeBalance:       payload.ModeBalance.Points(),
		CategorySummary:   payload.CategorySummary.Points(),
		Rows:              rows,
	}
}

func newTransactionRow(tx models.Transaction) dto.TransactionRow {
	note := tx.Note
	if note == "" {
		note = MissingNote
	}
	return dto.TransactionRow{
		Type:          tx.Type,
		Mode:          tx.Mode,
		Amount:        tx.Amount,
		CategoryLabel: tx.CategoryLabel(),
		NoteLabel:     note,
		Date:          tx.Date.Time,
		DateLabel:     dateLabel(tx.Date),
		IsCredit:      tx.IsCredit(),
	}
}

// dateLabel shows MissingNote for a record whose date could not be read
func dateLabel(date models.Timestamp) string {
	if date.IsZero() {
		return MissingNote
	}
	return date.Format(DateLayout)
}

func (s *ViewService) Profile(payload *dto.ProfileResponse) *dto.ProfileView {
	return &dto.ProfileView{
		Name:     payload.Profile.Name,
		Email:    payload.Profile.Email,
		Balances: payload.Balances.Points(),
		Summary:  payload.Summary,
	}
}

func (s *ViewService) Report(payload *dto.MonthlyReportResponse, period models.ReportPeriod) *dto.ReportView {
	label := period.Label()
	if !payload.Period.From.IsZero() {
		label = payload.Period.From.Format("January 2006")
	}

	daily := make([]models.DailyPoint, len(payload.Charts.DailyExpense))
	copy(daily, payload.Charts.DailyExpense)

	return &dto.ReportView{
		Period:             period,
		PeriodLabel:        label,
		Summary:            payload.Summary,
		SavingsRateLabel:   payload.Summary.SavingsRateLabel(),
		DailyExpense:       daily,
		CategoryExpense:    payload.Charts.CategoryExpense.Points(),
		ModeExpense:        payload.Charts.ModeExpense.Points(),
		HighestSpendingDay: payload.Insights.HighestSpendingDay,
		TopCategory:        payload.Insights.TopCategory,
	}
}
