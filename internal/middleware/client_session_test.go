package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"expense-tracker-web/internal/config"
	"expense-tracker-web/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

type ClientSessionTestSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	tokens  *service_mocks.MockClientTokenServiceInterface
	echo    *echo.Echo
	cfg     config.SessionConfig
	handler echo.HandlerFunc
	seen    uuid.UUID
}

func (s *ClientSessionTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.tokens = service_mocks.NewMockClientTokenServiceInterface(s.ctrl)
	s.echo = echo.New()
	s.cfg = config.SessionConfig{CookieName: "client", CookieSecure: true}
	s.seen = uuid.Nil

	s.handler = ClientSession(s.tokens, s.cfg, discardLogger())(func(c echo.Context) error {
		clientID, ok := GetClientID(c)
		s.True(ok)
		s.seen = clientID
		return c.NoContent(http.StatusOK)
	})
}

func (s *ClientSessionTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestClientSessionSuite(t *testing.T) {
	suite.Run(t, new(ClientSessionTestSuite))
}

func (s *ClientSessionTestSuite) TestReusesValidCookie() {
	clientID := uuid.New()
	s.tokens.EXPECT().Validate("signed").Return(clientID, nil)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "client", Value: "signed"})
	rec := httptest.NewRecorder()

	s.NoError(s.handler(s.echo.NewContext(req, rec)))
	s.Equal(clientID, s.seen)
	s.Empty(rec.Header().Get(echo.HeaderSetCookie))
}

func (s *ClientSessionTestSuite) TestIssuesCookieForNewClient() {
	expires := time.Now().Add(time.Hour)
	var issued uuid.UUID
	s.tokens.EXPECT().Issue(gomock.Any()).DoAndReturn(func(id uuid.UUID) (string, time.Time, error) {
		issued = id
		return "fresh-token", expires, nil
	})

	rec := httptest.NewRecorder()
	s.NoError(s.handler(s.echo.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)))

	s.NotEqual(uuid.Nil, s.seen)
	s.Equal(issued, s.seen)

	cookies := rec.Result().Cookies()
	s.Require().Len(cookies, 1)
	s.Equal("client", cookies[0].Name)
	s.Equal("fresh-token", cookies[0].Value)
	s.True(cookies[0].HttpOnly)
	s.True(cookies[0].Secure)
	s.Equal("/", cookies[0].Path)
}

func (s *ClientSessionTestSuite) TestReplacesForgedCookie() {
	s.tokens.EXPECT().Validate("forged").Return(uuid.Nil, errors.New("signature is invalid"))
	s.tokens.EXPECT().Issue(gomock.Any()).Return("fresh-token", time.Now().Add(time.Hour), nil)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "client", Value: "forged"})
	rec := httptest.NewRecorder()

	s.NoError(s.handler(s.echo.NewContext(req, rec)))
	s.NotEqual(uuid.Nil, s.seen)
	s.Contains(rec.Header().Get(echo.HeaderSetCookie), "fresh-token")
}

func (s *ClientSessionTestSuite) TestIssueFailureIsSystemError() {
	s.tokens.EXPECT().Issue(gomock.Any()).Return("", time.Time{}, errors.New("rsa failure"))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderAccept, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	s.NoError(s.handler(s.echo.NewContext(req, rec)))
	s.Equal(http.StatusInternalServerError, rec.Code)
	s.Contains(rec.Body.String(), "SYSTEM_001")
	s.Equal(uuid.Nil, s.seen)
}
