package handlers

import (
	stdErrors "errors"
	"log/slog"

	"expense-tracker-web/internal/dto"
	"expense-tracker-web/internal/errors"
	"expense-tracker-web/internal/models"
	"expense-tracker-web/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// TransactionHandler serves the transaction list, its filters and the
// add-money / spend-money forms
type TransactionHandler struct {
	fetchService  services.FetchServiceInterface
	submitService services.SubmitServiceInterface
	viewService   services.ViewServiceInterface
	logger        *slog.Logger
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(
	fetchService services.FetchServiceInterface,
	submitService services.SubmitServiceInterface,
	viewService services.ViewServiceInterface,
	logger *slog.Logger,
) *TransactionHandler {
	return &TransactionHandler{
		fetchService:  fetchService,
		submitService: submitService,
		viewService:   viewService,
		logger:        logger,
	}
}

// transactionsPage is the data of the transactions template
type transactionsPage struct {
	pageData
	View       *dto.TransactionsView
	Failure    *models.Failure
	AddMoney   dto.AddMoneyRequest
	SpendMoney dto.SpendMoneyRequest
	Types      []models.TransactionType
	Modes      []models.PaymentMode
	Categories []models.Category
}

// noticePage is the data of the submission outcome template
type noticePage struct {
	pageData
	Message   string
	Succeeded bool
	Back      string
}

func (h *TransactionHandler) newTransactionsPage(c echo.Context) transactionsPage {
	return transactionsPage{
		pageData:   newPageData(c, "Transactions"),
		AddMoney:   dto.AddMoneyRequest{Mode: models.PaymentModeOnline},
		SpendMoney: dto.SpendMoneyRequest{Mode: models.PaymentModeCash, Category: models.CategoryFood},
		Types:      models.TransactionTypes,
		Modes:      models.PaymentModes,
		Categories: models.Categories,
	}
}

// List fetches the transaction list once, mounts it and applies the query filters
// @Summary Transaction list
// @Description Fetches the list from the finance API and mounts it as a view; filters are applied to the mounted snapshot
// @Tags Transactions
// @Produce html,json
// @Param type query string false "credit or debit"
// @Param mode query string false "CASH or ONLINE"
// @Param category query string false "Expense category"
// @Success 200 {object} ViewResponse{data=dto.TransactionsView} "Mounted view"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_005 - Invalid transaction filter"
// @Failure 401 {object} ViewResponse "Session missing or rejected; redirect_to=/login"
// @Failure 502 {object} ViewResponse "Finance API unreachable"
// @Router /transactions [get]
func (h *TransactionHandler) List(c echo.Context) error {
	var filters models.TransactionFilters
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &filters); err != nil {
		return SendError(c, errors.ValidationInvalidFilter, errors.WithDetails("Invalid query parameters"))
	}
	if err := filters.Validate(); err != nil {
		return SendError(c, errors.ValidationInvalidFilter, errors.WithDetails(err.Error()))
	}

	clientID, err := getClientIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthInvalidClient)
	}

	result := h.fetchService.Transactions(c.Request().Context(), clientID)
	page := h.newTransactionsPage(c)

	switch result.State {
	case models.StateDiscarded:
		h.logger.Debug("Transaction list fetch discarded", "trace_id", getTraceID(c), "client_id", clientID)
		return nil
	case models.StateSuccess:
		page.View = h.viewService.MountTransactions(clientID, result.Payload, filters)
		return SendView(c, "transactions.html", page, page.View)
	default:
		if result.Failure.ClearsSession() {
			h.viewService.UnmountClient(clientID)
		}
		page.Failure = result.Failure
		return SendFetchFailure(c, "transactions.html", page, result.Failure, result.Redirect)
	}
}

// Refilter re-derives a mounted view from its snapshot without refetching
// @Summary Re-filter a mounted transaction view
// @Tags Transactions
// @Produce html,json
// @Param id path string true "View ID"
// @Param type query string false "credit or debit"
// @Param mode query string false "CASH or ONLINE"
// @Param category query string false "Expense category"
// @Param reset query bool false "Clear every filter"
// @Success 200 {object} ViewResponse{data=dto.TransactionsView} "Derived view"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_005 - Invalid transaction filter"
// @Failure 410 {object} errors.ErrorResponse "REQUEST_003 - View expired"
// @Router /transactions/views/{id} [get]
func (h *TransactionHandler) Refilter(c echo.Context) error {
	var query dto.ViewFilterQuery
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &query); err != nil {
		return SendError(c, errors.ValidationInvalidFilter, errors.WithDetails("Invalid query parameters"))
	}
	if query.Reset {
		query.TransactionFilters.Reset()
	}
	if err := query.TransactionFilters.Validate(); err != nil {
		return SendError(c, errors.ValidationInvalidFilter, errors.WithDetails(err.Error()))
	}

	viewID := c.Param("id")
	if _, err := uuid.Parse(viewID); err != nil {
		return SendError(c, errors.RequestViewExpired)
	}

	clientID, err := getClientIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthInvalidClient)
	}

	view, err := h.viewService.RefilterTransactions(clientID, viewID, query.TransactionFilters)
	if err != nil {
		if stdErrors.Is(err, services.ErrViewNotFound) {
			return SendError(c, errors.RequestViewExpired)
		}
		return SendSystemError(c, err)
	}

	page := h.newTransactionsPage(c)
	page.View = view
	return SendView(c, "transactions.html", page, view)
}

// AddMoney submits the add-money form
// @Summary Add money
// @Tags Transactions
// @Accept x-www-form-urlencoded,json
// @Produce html,json
// @Param request body dto.AddMoneyRequest true "Credit details"
// @Success 200 {object} ViewResponse "Money Added Successfully or the server's message"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_003 - Body could not be bound"
// @Failure 401 {object} ViewResponse "Session rejected; redirect_to=/login"
// @Failure 409 {object} ViewResponse "Submission already in flight"
// @Failure 422 {object} ViewResponse "Rejected by the finance API"
// @Router /transactions/add-money [post]
func (h *TransactionHandler) AddMoney(c echo.Context) error {
	var req dto.AddMoneyRequest
	if err := c.Bind(&req); err != nil {
		return sendInvalidBody(c)
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	clientID, err := getClientIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthInvalidClient)
	}

	result := h.submitService.AddMoney(c.Request().Context(), clientID, req)
	return h.sendNotice(c, clientID, "Add Money", result)
}

// SpendMoney submits the spend-money form
// @Summary Spend money
// @Tags Transactions
// @Accept x-www-form-urlencoded,json
// @Produce html,json
// @Param request body dto.SpendMoneyRequest true "Debit details"
// @Success 200 {object} ViewResponse "Money Spent Successfully or the server's message"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_003 - Body could not be bound"
// @Failure 401 {object} ViewResponse "Session rejected; redirect_to=/login"
// @Failure 409 {object} ViewResponse "Submission already in flight"
// @Failure 422 {object} ViewResponse "Rejected by the finance API"
// @Router /transactions/spend-money [post]
func (h *TransactionHandler) SpendMoney(c echo.Context) error {
	var req dto.SpendMoneyRequest
	if err := c.Bind(&req); err != nil {
		return sendInvalidBody(c)
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	clientID, err := getClientIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthInvalidClient)
	}

	result := h.submitService.SpendMoney(c.Request().Context(), clientID, req)
	return h.sendNotice(c, clientID, "Spend Money", result)
}

func (h *TransactionHandler) sendNotice(c echo.Context, clientID uuid.UUID, title string, result models.SubmitResult) error {
	if result.State == models.StateDiscarded {
		return nil
	}

	if result.Failure.ClearsSession() {
		h.viewService.UnmountClient(clientID)
	}

	page := noticePage{
		pageData:  newPageData(c, title),
		Message:   result.DisplayMessage(),
		Succeeded: result.Succeeded(),
		Back:      "/transactions",
	}
	return SendSubmitResult(c, "notice.html", page, result)
}
