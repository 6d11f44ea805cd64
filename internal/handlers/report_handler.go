package handlers

import (
	"time"

	"expense-tracker-web/internal/dto"
	"expense-tracker-web/internal/errors"
	"expense-tracker-web/internal/models"
	"expense-tracker-web/internal/services"

	"github.com/labstack/echo/v4"
)

// ReportHandler serves the monthly report view
type ReportHandler struct {
	fetchService services.FetchServiceInterface
	viewService  services.ViewServiceInterface
	now          func() time.Time
}

func NewReportHandler(fetchService services.FetchServiceInterface, viewService services.ViewServiceInterface) *ReportHandler {
	return &ReportHandler{
		fetchService: fetchService,
		viewService:  viewService,
		now:          time.Now,
	}
}

type reportPage struct {
	pageData
	Period  models.ReportPeriod
	View    *dto.ReportView
	Failure *models.Failure
	Months  []int
}

var reportMonths = []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}

// Report fetches the monthly report once. Without month and year it shows
// the current month.
// @Summary Monthly report
// @Tags Reports
// @Produce html,json
// @Param month query int false "1-12, defaults to the current month"
// @Param year query int false "Defaults to the current year"
// @Success 200 {object} ViewResponse{data=dto.ReportView} "Report view"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_006 - Invalid report period"
// @Failure 401 {object} ViewResponse "Session missing or rejected; redirect_to=/login"
// @Failure 502 {object} ViewResponse "Finance API unreachable"
// @Router /reports [get]
func (h *ReportHandler) Report(c echo.Context) error {
	period := models.CurrentPeriod(h.now())
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &period); err != nil {
		return SendError(c, errors.ValidationInvalidPeriod, errors.WithDetails("month and year must be numbers"))
	}
	if err := c.Validate(period); err != nil {
		return SendError(c, errors.ValidationInvalidPeriod, errors.WithDetails("month must be 1-12 and year 1970-9999"))
	}

	clientID, err := getClientIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthInvalidClient)
	}

	result := h.fetchService.MonthlyReport(c.Request().Context(), clientID, period)
	page := reportPage{
		pageData: newPageData(c, "Reports"),
		Period:   period,
		Months:   reportMonths,
	}

	switch result.State {
	case models.StateDiscarded:
		return nil
	case models.StateSuccess:
		page.View = h.viewService.Report(result.Payload, period)
		return SendView(c, "reports.html", page, page.View)
	default:
		if result.Failure.ClearsSession() {
			h.viewService.UnmountClient(clientID)
		}
		page.Failure = result.Failure
		return SendFetchFailure(c, "reports.html", page, result.Failure, result.Redirect)
	}
}
