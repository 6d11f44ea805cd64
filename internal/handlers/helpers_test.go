package handlers

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"

	"expense-tracker-web/web"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestEcho returns an echo instance with the validator and the embedded
// templates, as the server wires them
func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	renderer, err := NewTemplateRenderer(web.FS)
	if err != nil {
		panic(err)
	}
	e.Renderer = renderer
	return e
}

// newClientContext builds a request context that already carries a client
// instance and a trace ID
func newClientContext(e *echo.Echo, req *http.Request, clientID uuid.UUID) (echo.Context, *httptest.ResponseRecorder) {
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(ClientIDContextKey, clientID)
	c.Set(TraceIDContextKey, "trace-test")
	return c, rec
}

func jsonRequest(method, target, body string) *http.Request {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set(echo.HeaderAccept, echo.MIMEApplicationJSON)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	return req
}

func formRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	return req
}

func newRecorder() *httptest.ResponseRecorder {
	return httptest.NewRecorder()
}
