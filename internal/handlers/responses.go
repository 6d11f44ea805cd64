package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"expense-tracker-web/internal/errors"
	"expense-tracker-web/internal/models"
	"expense-tracker-web/internal/services"

	"github.com/labstack/echo/v4"
)

// RESPONSE PATTERNS
//
// Every screen answers in one of two shapes, chosen by the Accept header:
//
// 1. HTML (default) - the named template is rendered, redirects are 303 See
//    Other, delayed redirects are a Refresh header on the rendered page.
//
// 2. JSON (Accept: application/json) - successful views and submission
//    outcomes use ViewResponse, errors use errors.ErrorResponse.
//
// Handlers must use SendError / SendSystemError for errors and SendView /
// SendRedirect for everything else.

const (
	// TraceIDContextKey is the context key for storing the trace ID
	TraceIDContextKey = "trace_id"
	// ClientIDContextKey is the context key for the client instance ID
	ClientIDContextKey = "client_id"
)

// ViewResponse is the JSON shape of a screen or a submission outcome
type ViewResponse struct {
	State           models.FetchState `json:"state"`
	Data            interface{}       `json:"data,omitempty"`
	Message         string            `json:"message,omitempty"`
	Failure         *models.Failure   `json:"failure,omitempty"`
	RedirectTo      string            `json:"redirect_to,omitempty"`
	RedirectAfterMs int64             `json:"redirect_after_ms,omitempty"`
}

// ErrorResponse is an alias for the standardized error response type
type ErrorResponse = errors.ErrorResponse

// errorPage is the data of the error template
type errorPage struct {
	pageData
	Status  int
	Code    string
	Message string
	TraceID string
}

// getTraceID extracts the trace ID from the Echo context
func getTraceID(c echo.Context) string {
	traceID, ok := c.Get(TraceIDContextKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// WantsJSON reports whether the client asked for JSON view models
func WantsJSON(c echo.Context) bool {
	accept := c.Request().Header.Get(echo.HeaderAccept)
	return strings.Contains(accept, echo.MIMEApplicationJSON)
}

// SendError sends a standardized error response with trace ID from context
func SendError(c echo.Context, code errors.ErrorCode, opts ...errors.ErrorOption) error {
	errorResponse := errors.NewErrorResponse(code, getTraceID(c), opts...)
	return SendErrorResponse(c, errorResponse.GetHTTPStatus(), errorResponse)
}

// SendSystemError wraps a system error with generic message
func SendSystemError(c echo.Context, err error) error {
	errorResponse, _ := errors.WrapSystemError(err, getTraceID(c))
	return SendErrorResponse(c, http.StatusInternalServerError, errorResponse)
}

// SendStoreError reports a credential store failure without exposing it
func SendStoreError(c echo.Context, err error) error {
	errorResponse, _ := errors.WrapDatabaseError(err, getTraceID(c))
	return SendErrorResponse(c, errorResponse.GetHTTPStatus(), errorResponse)
}

// sendInvalidBody answers a request whose body could not be bound
func sendInvalidBody(c echo.Context) error {
	return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid request body"))
}

// SendErrorResponse writes errorResponse as JSON or as the error page
func SendErrorResponse(c echo.Context, status int, errorResponse *errors.ErrorResponse) error {
	if WantsJSON(c) || c.Echo().Renderer == nil {
		return c.JSON(status, errorResponse)
	}

	message := errorResponse.Error.Message
	if len(errorResponse.Error.Details) > 0 {
		message = message + ": " + strings.Join(errorResponse.Error.Details, "; ")
	}

	return c.Render(status, "error.html", errorPage{
		pageData: newPageData(c, ""),
		Status:   status,
		Code:     errorResponse.Error.Code,
		Message:  message,
		TraceID:  errorResponse.Error.TraceID,
	})
}

// SendRedirect navigates to redirect.To. HTML clients get 303 See Other,
// JSON clients get a ViewResponse naming the target.
func SendRedirect(c echo.Context, redirect *models.Redirect) error {
	if WantsJSON(c) {
		return c.JSON(http.StatusOK, ViewResponse{
			State:           models.StateSuccess,
			RedirectTo:      redirect.To,
			RedirectAfterMs: redirect.AfterMillis(),
		})
	}
	return c.Redirect(http.StatusSeeOther, redirect.To)
}

// SendMissingSession answers an authenticated route with no stored
// credential: HTML clients are sent to the login view, JSON clients get a
// 401 naming it.
func SendMissingSession(c echo.Context) error {
	if WantsJSON(c) {
		return c.JSON(http.StatusUnauthorized, ViewResponse{
			State: models.StateFailure,
			Failure: &models.Failure{
				Kind:    models.FailureMissingSession,
				Message: errors.GetErrorMessage(errors.AuthMissingSession),
			},
			RedirectTo: services.LoginPath,
		})
	}
	return c.Redirect(http.StatusSeeOther, services.LoginPath)
}

// SendView renders a successful screen
func SendView(c echo.Context, template string, data interface{}, payload interface{}) error {
	if WantsJSON(c) {
		return c.JSON(http.StatusOK, ViewResponse{State: models.StateSuccess, Data: payload})
	}
	return c.Render(http.StatusOK, template, data)
}

// SendFetchFailure answers a failed view activation. Failures that carry a
// redirect navigate away; the rest render the view's error state.
func SendFetchFailure(c echo.Context, template string, data interface{}, failure *models.Failure, redirect *models.Redirect) error {
	if redirect != nil && !WantsJSON(c) {
		return c.Redirect(http.StatusSeeOther, redirect.To)
	}

	status := failureStatus(failure)
	if WantsJSON(c) {
		resp := ViewResponse{State: models.StateFailure, Failure: failure}
		if redirect != nil {
			resp.RedirectTo = redirect.To
		}
		return c.JSON(status, resp)
	}
	return c.Render(status, template, data)
}

// SendSubmitResult answers a form submission. A delayed redirect keeps the
// rendered page and adds a Refresh header so the message stays visible.
func SendSubmitResult(c echo.Context, template string, data interface{}, result models.SubmitResult) error {
	status := http.StatusOK
	if !result.Succeeded() {
		status = failureStatus(result.Failure)
	}

	if result.Redirect != nil {
		if result.Redirect.After == 0 && !WantsJSON(c) {
			return c.Redirect(http.StatusSeeOther, result.Redirect.To)
		}
		c.Response().Header().Set("Refresh", refreshHeader(result.Redirect))
	}

	if WantsJSON(c) {
		resp := ViewResponse{
			State:   result.State,
			Message: result.Message,
			Failure: result.Failure,
		}
		if result.Redirect != nil {
			resp.RedirectTo = result.Redirect.To
			resp.RedirectAfterMs = result.Redirect.AfterMillis()
		}
		return c.JSON(status, resp)
	}
	return c.Render(status, template, data)
}

// failureStatus maps a failure kind to the status this server answers with
func failureStatus(failure *models.Failure) int {
	if failure == nil {
		return http.StatusOK
	}
	switch failure.Kind {
	case models.FailureMissingSession, models.FailureAuthorization:
		return errors.GetHTTPStatus(errors.AuthAuthorizationFailure)
	case models.FailureDuplicateSubmission:
		return errors.GetHTTPStatus(errors.RequestDuplicateSubmission)
	case models.FailureRequest:
		return errors.GetHTTPStatus(errors.RequestRejected)
	case models.FailureTransport:
		return errors.GetHTTPStatus(errors.TransportUnreachable)
	default:
		return http.StatusInternalServerError
	}
}

// refreshHeader renders "<seconds>; url=<path>" with sub-second precision
func refreshHeader(redirect *models.Redirect) string {
	seconds := strconv.FormatFloat(redirect.After.Seconds(), 'f', -1, 64)
	return seconds + "; url=" + redirect.To
}
