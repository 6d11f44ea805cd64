package models

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// NoIncomeLabel is shown in place of a savings rate when there is no income.
const NoIncomeLabel = "No income"

var hundred = decimal.NewFromInt(100)

// Summary holds totals computed by the remote API. They are displayed as
// given and never recomputed here.
type Summary struct {
	TotalIncome  decimal.Decimal `json:"totalIncome"`
	TotalExpense decimal.Decimal `json:"totalExpense"`
	NetBalance   decimal.Decimal `json:"netBalance"`
	Savings      decimal.Decimal `json:"savings"`
}

// SavingsRate returns savings / totalIncome * 100. ok is false when total
// income is zero; no division happens in that case.
func (s Summary) SavingsRate() (rate decimal.Decimal, ok bool) {
	if s.TotalIncome.IsZero() {
		return decimal.Zero, false
	}
	return s.Savings.Div(s.TotalIncome).Mul(hundred), true
}

// SavingsRateLabel renders the rate with one decimal, e.g. "37.5% saved".
func (s Summary) SavingsRateLabel() string {
	rate, ok := s.SavingsRate()
	if !ok {
		return NoIncomeLabel
	}
	return fmt.Sprintf("%s%% saved", rate.StringFixed(1))
}

// ReportPeriod identifies a monthly report.
type ReportPeriod struct {
	Month int `query:"month" validate:"min=1,max=12"`
	Year  int `query:"year" validate:"min=1970,max=9999"`
}

// CurrentPeriod returns the period containing now.
func CurrentPeriod(now time.Time) ReportPeriod {
	return ReportPeriod{Month: int(now.Month()), Year: now.Year()}
}

// Label renders the period as "January 2026".
func (p ReportPeriod) Label() string {
	return time.Month(p.Month).String() + " " + fmt.Sprint(p.Year)
}

// HighestSpendingDay is the report insight for the most expensive day.
type HighestSpendingDay struct {
	Date   string          `json:"date"`
	Amount decimal.Decimal `json:"amount"`
}

// TopCategory is the report insight for the largest category.
type TopCategory struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
}
