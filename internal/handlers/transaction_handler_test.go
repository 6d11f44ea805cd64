package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"expense-tracker-web/internal/dto"
	"expense-tracker-web/internal/models"
	"expense-tracker-web/internal/services"
	"expense-tracker-web/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

func TestTransactionHandler(t *testing.T) {
	suite.Run(t, new(TransactionHandlerSuite))
}

type TransactionHandlerSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	fetchService  *service_mocks.MockFetchServiceInterface
	submitService *service_mocks.MockSubmitServiceInterface
	viewService   *service_mocks.MockViewServiceInterface
	handler       *TransactionHandler
	e             *echo.Echo
	clientID      uuid.UUID
}

func (s *TransactionHandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.fetchService = service_mocks.NewMockFetchServiceInterface(s.ctrl)
	s.submitService = service_mocks.NewMockSubmitServiceInterface(s.ctrl)
	s.viewService = service_mocks.NewMockViewServiceInterface(s.ctrl)
	s.handler = NewTransactionHandler(s.fetchService, s.submitService, s.viewService, discardLogger())
	s.e = newTestEcho()
	s.clientID = uuid.New()
}

func (s *TransactionHandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func sampleTransactionsView(filters models.TransactionFilters) *dto.TransactionsView {
	return &dto.TransactionsView{
		ID:                uuid.NewString(),
		Filters:           filters,
		ActiveFilterCount: filters.ActiveCount(),
		ShowClearFilters:  filters.ActiveCount() > 0,
		ResultCount:       1,
		TotalTransactions: 2,
		Summary: models.Summary{
			TotalIncome:  decimal.NewFromInt(5000),
			TotalExpense: decimal.NewFromInt(1200),
			NetBalance:   decimal.NewFromInt(3800),
			Savings:      decimal.NewFromInt(3800),
		},
		ModeBalance: []models.SeriesPoint{
			{Label: "CASH", Value: decimal.NewFromInt(800)},
			{Label: "ONLINE", Value: decimal.NewFromInt(3000)},
		},
		CategorySummary: []models.SeriesPoint{
			{Label: "FOOD", Value: decimal.NewFromInt(1200)},
		},
		Rows: []dto.TransactionRow{
			{
				Type:          models.TransactionTypeDebit,
				Mode:          models.PaymentModeCash,
				Amount:        decimal.NewFromInt(1200),
				CategoryLabel: "FOOD",
				NoteLabel:     "Dinner",
				Date:          time.Date(2026, 3, 14, 19, 0, 0, 0, time.UTC),
				DateLabel:     "14 Mar 2026",
			},
		},
	}
}

func (s *TransactionHandlerSuite) TestList() {
	s.Run("mounts the fetched list with the query filters", func() {
		s.SetupTest()
		payload := &dto.TransactionListResponse{TotalTransactions: 2}
		filters := models.TransactionFilters{Type: models.TransactionTypeDebit}
		view := sampleTransactionsView(filters)

		s.fetchService.EXPECT().Transactions(gomock.Any(), s.clientID).
			Return(models.FetchResult[dto.TransactionListResponse]{State: models.StateSuccess, Payload: payload})
		s.viewService.EXPECT().MountTransactions(s.clientID, payload, filters).Return(view)

		c, rec := newClientContext(s.e, jsonRequest(http.MethodGet, "/transactions?type=debit", ""), s.clientID)

		s.Require().NoError(s.handler.List(c))
		s.Equal(http.StatusOK, rec.Code)

		var resp struct {
			State models.FetchState    `json:"state"`
			Data  dto.TransactionsView `json:"data"`
		}
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
		s.Equal(models.StateSuccess, resp.State)
		s.Equal(view.ID, resp.Data.ID)
		s.Equal(1, resp.Data.ActiveFilterCount)
		s.Len(resp.Data.Rows, 1)
	})

	s.Run("renders the list as HTML", func() {
		s.SetupTest()
		view := sampleTransactionsView(models.TransactionFilters{Mode: models.PaymentModeCash})

		s.fetchService.EXPECT().Transactions(gomock.Any(), s.clientID).
			Return(models.FetchResult[dto.TransactionListResponse]{State: models.StateSuccess, Payload: &dto.TransactionListResponse{}})
		s.viewService.EXPECT().MountTransactions(s.clientID, gomock.Any(), gomock.Any()).Return(view)

		c, rec := newClientContext(s.e, formRequest(http.MethodGet, "/transactions?mode=CASH", ""), s.clientID)

		s.Require().NoError(s.handler.List(c))
		s.Equal(http.StatusOK, rec.Code)
		body := rec.Body.String()
		s.Contains(body, "-₹1,200")
		s.Contains(body, "(1 results)")
		s.Contains(body, "/transactions/views/"+view.ID+"?reset=true")
		s.Contains(body, `class="active" aria-current="page">Transactions`)
	})

	s.Run("invalid filter is rejected without fetching", func() {
		s.SetupTest()
		c, rec := newClientContext(s.e, jsonRequest(http.MethodGet, "/transactions?mode=CHEQUE", ""), s.clientID)

		s.Require().NoError(s.handler.List(c))
		s.Equal(http.StatusBadRequest, rec.Code)
		s.Contains(rec.Body.String(), "VALIDATION_005")
	})

	s.Run("rejected credential unmounts and redirects to login", func() {
		s.SetupTest()
		s.fetchService.EXPECT().Transactions(gomock.Any(), s.clientID).
			Return(models.FetchResult[dto.TransactionListResponse]{
				State:    models.StateFailure,
				Failure:  &models.Failure{Kind: models.FailureAuthorization, Message: "Your session has expired. Please login again", Status: http.StatusUnauthorized},
				Redirect: &models.Redirect{To: services.LoginPath},
			})
		s.viewService.EXPECT().UnmountClient(s.clientID)

		c, rec := newClientContext(s.e, formRequest(http.MethodGet, "/transactions", ""), s.clientID)

		s.Require().NoError(s.handler.List(c))
		s.Equal(http.StatusSeeOther, rec.Code)
		s.Equal("/login", rec.Header().Get(echo.HeaderLocation))
	})

	s.Run("transport failure renders the error state", func() {
		s.SetupTest()
		s.fetchService.EXPECT().Transactions(gomock.Any(), s.clientID).
			Return(models.FetchResult[dto.TransactionListResponse]{
				State:   models.StateFailure,
				Failure: &models.Failure{Kind: models.FailureTransport, Message: "Server error"},
			})

		c, rec := newClientContext(s.e, formRequest(http.MethodGet, "/transactions", ""), s.clientID)

		s.Require().NoError(s.handler.List(c))
		s.Equal(http.StatusBadGateway, rec.Code)
		s.Contains(rec.Body.String(), "Server error")
		s.Contains(rec.Body.String(), "Try again")
	})

	s.Run("discarded fetch writes nothing", func() {
		s.SetupTest()
		s.fetchService.EXPECT().Transactions(gomock.Any(), s.clientID).
			Return(models.FetchResult[dto.TransactionListResponse]{State: models.StateDiscarded})

		c, rec := newClientContext(s.e, jsonRequest(http.MethodGet, "/transactions", ""), s.clientID)

		s.Require().NoError(s.handler.List(c))
		s.False(c.Response().Committed)
		s.Empty(rec.Body.String())
	})
}

func (s *TransactionHandlerSuite) refilterContext(viewID, query string, asJSON bool) (echo.Context, *httptest.ResponseRecorder) {
	target := "/transactions/views/" + viewID + query
	req := formRequest(http.MethodGet, target, "")
	if asJSON {
		req = jsonRequest(http.MethodGet, target, "")
	}
	c, rec := newClientContext(s.e, req, s.clientID)
	c.SetPath("/transactions/views/:id")
	c.SetParamNames("id")
	c.SetParamValues(viewID)
	return c, rec
}

func (s *TransactionHandlerSuite) TestRefilter() {
	s.Run("re-derives the mounted view", func() {
		s.SetupTest()
		viewID := uuid.NewString()
		filters := models.TransactionFilters{Category: models.CategoryFood}
		view := sampleTransactionsView(filters)

		s.viewService.EXPECT().RefilterTransactions(s.clientID, viewID, filters).Return(view, nil)

		c, rec := s.refilterContext(viewID, "?category=FOOD", true)

		s.Require().NoError(s.handler.Refilter(c))
		s.Equal(http.StatusOK, rec.Code)
		s.Contains(rec.Body.String(), `"activeFilterCount":1`)
	})

	s.Run("reset clears every filter", func() {
		s.SetupTest()
		viewID := uuid.NewString()

		s.viewService.EXPECT().
			RefilterTransactions(s.clientID, viewID, models.TransactionFilters{}).
			Return(sampleTransactionsView(models.TransactionFilters{}), nil)

		c, rec := s.refilterContext(viewID, "?reset=true&type=credit", false)

		s.Require().NoError(s.handler.Refilter(c))
		s.Equal(http.StatusOK, rec.Code)
		s.NotContains(rec.Body.String(), "Clear filters")
	})

	s.Run("expired view answers 410", func() {
		s.SetupTest()
		viewID := uuid.NewString()
		s.viewService.EXPECT().
			RefilterTransactions(s.clientID, viewID, gomock.Any()).
			Return(nil, services.ErrViewNotFound)

		c, rec := s.refilterContext(viewID, "", true)

		s.Require().NoError(s.handler.Refilter(c))
		s.Equal(http.StatusGone, rec.Code)
		s.Contains(rec.Body.String(), "REQUEST_003")
	})

	s.Run("malformed view ID answers 410", func() {
		s.SetupTest()
		c, rec := s.refilterContext("not-a-uuid", "", true)

		s.Require().NoError(s.handler.Refilter(c))
		s.Equal(http.StatusGone, rec.Code)
	})

	s.Run("invalid filter answers 400", func() {
		s.SetupTest()
		c, rec := s.refilterContext(uuid.NewString(), "?type=refund", true)

		s.Require().NoError(s.handler.Refilter(c))
		s.Equal(http.StatusBadRequest, rec.Code)
		s.Contains(rec.Body.String(), "VALIDATION_005")
	})
}

func (s *TransactionHandlerSuite) TestAddMoney() {
	s.Run("success renders the notice", func() {
		s.SetupTest()
		s.submitService.EXPECT().
			AddMoney(gomock.Any(), s.clientID, dto.AddMoneyRequest{Mode: models.PaymentModeOnline, Amount: decimal.RequireFromString("2500.50"), Note: "Salary"}).
			Return(models.SubmitResult{State: models.StateSuccess, Message: "Money Added Successfully"})

		c, rec := newClientContext(s.e, formRequest(http.MethodPost, "/transactions/add-money", "mode=ONLINE&amount=2500.50&note=Salary"), s.clientID)

		s.Require().NoError(s.handler.AddMoney(c))
		s.Equal(http.StatusOK, rec.Code)
		s.Contains(rec.Body.String(), "Money Added Successfully")
		s.Contains(rec.Body.String(), `href="/transactions"`)
	})

	s.Run("numeric JSON amount reaches the submitter", func() {
		s.SetupTest()
		s.submitService.EXPECT().
			AddMoney(gomock.Any(), s.clientID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, req dto.AddMoneyRequest) models.SubmitResult {
				s.Equal(models.PaymentModeCash, req.Mode)
				s.True(req.Amount.Equal(decimal.NewFromInt(500)), "amount %s", req.Amount)
				s.Empty(req.Note)
				return models.SubmitResult{State: models.StateSuccess, Message: "Money Added Successfully"}
			})

		c, rec := newClientContext(s.e, jsonRequest(http.MethodPost, "/transactions/add-money", `{"mode":"CASH","amount":500,"note":""}`), s.clientID)

		s.Require().NoError(s.handler.AddMoney(c))
		s.Equal(http.StatusOK, rec.Code)

		var resp ViewResponse
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
		s.Equal(models.StateSuccess, resp.State)
		s.Equal("Money Added Successfully", resp.Message)
	})

	s.Run("malformed amount is an invalid body", func() {
		s.SetupTest()
		c, rec := newClientContext(s.e, jsonRequest(http.MethodPost, "/transactions/add-money", `{"mode":"CASH","amount":"ten"}`), s.clientID)

		s.Require().NoError(s.handler.AddMoney(c))
		s.Equal(http.StatusBadRequest, rec.Code)
		s.Contains(rec.Body.String(), "VALIDATION_003")
		s.Contains(rec.Body.String(), "Invalid request body")
	})

	s.Run("non-positive amount fails validation", func() {
		s.SetupTest()
		c, _ := newClientContext(s.e, formRequest(http.MethodPost, "/transactions/add-money", "mode=ONLINE&amount=0"), s.clientID)

		s.Error(s.handler.AddMoney(c))
	})

	s.Run("rejected credential unmounts and redirects", func() {
		s.SetupTest()
		s.submitService.EXPECT().
			AddMoney(gomock.Any(), s.clientID, gomock.Any()).
			Return(models.SubmitResult{
				State:    models.StateFailure,
				Failure:  &models.Failure{Kind: models.FailureAuthorization, Message: "Your session has expired. Please login again"},
				Redirect: &models.Redirect{To: services.LoginPath},
			})
		s.viewService.EXPECT().UnmountClient(s.clientID)

		c, rec := newClientContext(s.e, formRequest(http.MethodPost, "/transactions/add-money", "mode=CASH&amount=10"), s.clientID)

		s.Require().NoError(s.handler.AddMoney(c))
		s.Equal(http.StatusSeeOther, rec.Code)
		s.Equal("/login", rec.Header().Get(echo.HeaderLocation))
	})
}

func (s *TransactionHandlerSuite) TestSpendMoney() {
	s.Run("server message is shown as JSON", func() {
		s.SetupTest()
		s.submitService.EXPECT().
			SpendMoney(gomock.Any(), s.clientID, dto.SpendMoneyRequest{Mode: models.PaymentModeCash, Amount: decimal.RequireFromString("120"), Category: models.CategoryFuel}).
			Return(models.SubmitResult{
				State:   models.StateFailure,
				Failure: &models.Failure{Kind: models.FailureRequest, Message: "Insufficient CASH balance", Status: http.StatusBadRequest},
			})

		c, rec := newClientContext(s.e, jsonRequest(http.MethodPost, "/transactions/spend-money", `{"mode":"CASH","amount":"120","category":"FUEL"}`), s.clientID)

		s.Require().NoError(s.handler.SpendMoney(c))
		s.Equal(http.StatusUnprocessableEntity, rec.Code)

		var resp ViewResponse
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
		s.Require().NotNil(resp.Failure)
		s.Equal("Insufficient CASH balance", resp.Failure.Message)
	})

	s.Run("fractional JSON amount is forwarded as given", func() {
		s.SetupTest()
		s.submitService.EXPECT().
			SpendMoney(gomock.Any(), s.clientID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, req dto.SpendMoneyRequest) models.SubmitResult {
				s.Equal("75.25", req.Amount.String())
				s.Equal(models.CategoryGroceries, req.Category)
				return models.SubmitResult{State: models.StateSuccess, Message: "Money Spent Successfully"}
			})

		c, rec := newClientContext(s.e, jsonRequest(http.MethodPost, "/transactions/spend-money", `{"mode":"ONLINE","amount":75.25,"category":"GROCERIES","note":"weekly"}`), s.clientID)

		s.Require().NoError(s.handler.SpendMoney(c))
		s.Equal(http.StatusOK, rec.Code)
		s.Contains(rec.Body.String(), "Money Spent Successfully")
	})

	s.Run("unknown category fails validation", func() {
		s.SetupTest()
		c, _ := newClientContext(s.e, jsonRequest(http.MethodPost, "/transactions/spend-money", `{"mode":"CASH","amount":"120","category":"PETS"}`), s.clientID)

		s.Error(s.handler.SpendMoney(c))
	})
}
