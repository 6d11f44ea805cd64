package dto

import "expense-tracker-web/internal/models"

// ReportPeriodRange is the period the API computed the report over.
type ReportPeriodRange struct {
	From models.Timestamp  `json:"from"`
	To   *models.Timestamp `json:"to,omitempty"`
}

// ReportCharts holds the pre-aggregated chart series.
type ReportCharts struct {
	DailyExpense    []models.DailyPoint `json:"dailyExpense"`
	CategoryExpense models.AmountSeries `json:"categoryExpense"`
	ModeExpense     models.AmountSeries `json:"modeExpense"`
}

// ReportInsights holds the API's highlights. Either may be absent for an
// empty month.
type ReportInsights struct {
	HighestSpendingDay *models.HighestSpendingDay `json:"highestSpendingDay,omitempty"`
	TopCategory        *models.TopCategory        `json:"topCategory,omitempty"`
}

// MonthlyReportResponse is the body of GET /transaction/monthly.
type MonthlyReportResponse struct {
	Period   ReportPeriodRange `json:"period"`
	Summary  models.Summary    `json:"summary"`
	Charts   ReportCharts      `json:"charts"`
	Insights ReportInsights    `json:"insights"`
}
