package dto

import (
	"time"

	"expense-tracker-web/internal/models"

	"github.com/shopspring/decimal"
)

// TransactionRow is one display-ready record.
type TransactionRow struct {
	Type          models.TransactionType `json:"type"`
	Mode          models.PaymentMode     `json:"mode"`
	Amount        decimal.Decimal        `json:"amount"`
	CategoryLabel string                 `json:"category"`
	NoteLabel     string                 `json:"note"`
	Date          time.Time              `json:"date"`
	DateLabel     string                 `json:"dateLabel"`
	IsCredit      bool                   `json:"isCredit"`
}

// TransactionsView is the transaction list as rendered for one filter set.
type TransactionsView struct {
	ID                string                    `json:"viewId"`
	Filters           models.TransactionFilters `json:"filters"`
	ActiveFilterCount int                       `json:"activeFilterCount"`
	ShowClearFilters  bool                      `json:"showClearFilters"`
	ResultCount       int                       `json:"resultCount"`
	TotalTransactions int                       `json:"totalTransactions"`
	Summary           models.Summary            `json:"summary"`
	ModeBalance       []models.SeriesPoint      `json:"modeBalance"`
	CategorySummary   []models.SeriesPoint      `json:"categorySummary"`
	Rows              []TransactionRow          `json:"transactions"`
}

// ProfileView is the profile card plus balances.
type ProfileView struct {
	Name     string               `json:"name"`
	Email    string               `json:"email"`
	Balances []models.SeriesPoint `json:"balances"`
	Summary  models.Summary       `json:"summary"`
}

// ReportView is the monthly report handed to the chart templates.
type ReportView struct {
	Period             models.ReportPeriod        `json:"period"`
	PeriodLabel        string                     `json:"periodLabel"`
	Summary            models.Summary             `json:"summary"`
	SavingsRateLabel   string                     `json:"savingsRateLabel"`
	DailyExpense       []models.DailyPoint        `json:"dailyExpense"`
	CategoryExpense    []models.SeriesPoint       `json:"categoryExpense"`
	ModeExpense        []models.SeriesPoint       `json:"modeExpense"`
	HighestSpendingDay *models.HighestSpendingDay `json:"highestSpendingDay,omitempty"`
	TopCategory        *models.TopCategory        `json:"topCategory,omitempty"`
}
