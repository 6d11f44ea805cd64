package handlers

import (
	"net/http"
	"testing"
	"time"

	"expense-tracker-web/internal/dto"
	"expense-tracker-web/internal/models"
	"expense-tracker-web/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

func TestReportHandler(t *testing.T) {
	suite.Run(t, new(ReportHandlerSuite))
}

type ReportHandlerSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	fetchService *service_mocks.MockFetchServiceInterface
	viewService  *service_mocks.MockViewServiceInterface
	handler      *ReportHandler
	clientID     uuid.UUID
}

func (s *ReportHandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.fetchService = service_mocks.NewMockFetchServiceInterface(s.ctrl)
	s.viewService = service_mocks.NewMockViewServiceInterface(s.ctrl)
	s.handler = NewReportHandler(s.fetchService, s.viewService)
	s.handler.now = func() time.Time { return time.Date(2026, time.March, 18, 10, 0, 0, 0, time.UTC) }
	s.clientID = uuid.New()
}

func (s *ReportHandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func sampleReportView(period models.ReportPeriod) *dto.ReportView {
	return &dto.ReportView{
		Period:      period,
		PeriodLabel: period.Label(),
		Summary: models.Summary{
			TotalIncome:  decimal.NewFromInt(40000),
			TotalExpense: decimal.NewFromInt(25000),
			NetBalance:   decimal.NewFromInt(15000),
			Savings:      decimal.NewFromInt(15000),
		},
		SavingsRateLabel: "37.5% saved",
		DailyExpense: []models.DailyPoint{
			{Day: "1", Amount: decimal.NewFromInt(500)},
			{Day: "2", Amount: decimal.NewFromInt(1000)},
		},
		CategoryExpense: []models.SeriesPoint{{Label: "RENT", Value: decimal.NewFromInt(20000)}},
		ModeExpense:     []models.SeriesPoint{{Label: "ONLINE", Value: decimal.NewFromInt(25000)}},
		TopCategory:     &models.TopCategory{Category: "RENT", Amount: decimal.NewFromInt(20000)},
	}
}

func (s *ReportHandlerSuite) TestDefaultsToCurrentMonth() {
	period := models.ReportPeriod{Month: 3, Year: 2026}
	payload := &dto.MonthlyReportResponse{}

	s.fetchService.EXPECT().MonthlyReport(gomock.Any(), s.clientID, period).
		Return(models.FetchResult[dto.MonthlyReportResponse]{State: models.StateSuccess, Payload: payload})
	s.viewService.EXPECT().Report(payload, period).Return(sampleReportView(period))

	c, rec := newClientContext(newTestEcho(), formRequest(http.MethodGet, "/reports", ""), s.clientID)

	s.Require().NoError(s.handler.Report(c))
	s.Equal(http.StatusOK, rec.Code)
	body := rec.Body.String()
	s.Contains(body, "Report for March 2026")
	s.Contains(body, "37.5% saved")
	s.Contains(body, `<option value="3" selected>March</option>`)
	s.Contains(body, "No spending this month")
	s.Contains(body, "width: 50.0%")
}

func (s *ReportHandlerSuite) TestExplicitPeriod() {
	period := models.ReportPeriod{Month: 12, Year: 2025}

	s.fetchService.EXPECT().MonthlyReport(gomock.Any(), s.clientID, period).
		Return(models.FetchResult[dto.MonthlyReportResponse]{State: models.StateSuccess, Payload: &dto.MonthlyReportResponse{}})
	s.viewService.EXPECT().Report(gomock.Any(), period).Return(sampleReportView(period))

	c, rec := newClientContext(newTestEcho(), jsonRequest(http.MethodGet, "/reports?month=12&year=2025", ""), s.clientID)

	s.Require().NoError(s.handler.Report(c))
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"periodLabel":"December 2025"`)
}

func (s *ReportHandlerSuite) TestInvalidPeriod() {
	cases := []string{
		"/reports?month=13&year=2026",
		"/reports?month=0&year=2026",
		"/reports?month=abc",
		"/reports?year=1900",
	}

	for _, target := range cases {
		s.Run(target, func() {
			c, rec := newClientContext(newTestEcho(), jsonRequest(http.MethodGet, target, ""), s.clientID)

			s.Require().NoError(s.handler.Report(c))
			s.Equal(http.StatusBadRequest, rec.Code)
			s.Contains(rec.Body.String(), "VALIDATION_006")
		})
	}
}

func (s *ReportHandlerSuite) TestTransportFailure() {
	s.fetchService.EXPECT().MonthlyReport(gomock.Any(), s.clientID, gomock.Any()).
		Return(models.FetchResult[dto.MonthlyReportResponse]{
			State:   models.StateFailure,
			Failure: &models.Failure{Kind: models.FailureTransport, Message: "Server error"},
		})

	c, rec := newClientContext(newTestEcho(), formRequest(http.MethodGet, "/reports?month=2&year=2026", ""), s.clientID)

	s.Require().NoError(s.handler.Report(c))
	s.Equal(http.StatusBadGateway, rec.Code)
	s.Contains(rec.Body.String(), "Server error")
	s.Contains(rec.Body.String(), "/reports?month=2&year=2026")
}
