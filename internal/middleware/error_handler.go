package middleware

import (
	stdErrors "errors"
	"fmt"
	"log/slog"
	"net/http"
	"reflect"

	"expense-tracker-web/internal/errors"
	"expense-tracker-web/internal/handlers"
	"expense-tracker-web/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// NewHTTPErrorHandler returns an echo error handler that formats errors as
// standardized error responses (JSON or the error page), logs them and
// counts them by code
func NewHTTPErrorHandler(metrics services.MetricsRecorderInterface, logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		traceID := GetTraceID(c)
		if traceID == "" {
			traceID = "unknown"
		}

		var errorResponse *errors.ErrorResponse
		var httpStatus int

		var echoErr *echo.HTTPError
		var validationErrs validator.ValidationErrors
		switch {
		case stdErrors.As(err, &echoErr):
			errorCode := mapHTTPStatusToErrorCode(echoErr.Code)
			errorResponse = errors.NewErrorResponse(
				errorCode,
				traceID,
				errors.WithDetails(fmt.Sprintf("%v", echoErr.Message)),
			)
			httpStatus = echoErr.Code
		case stdErrors.As(err, &validationErrs):
			fieldErrors := make(map[string]string)
			for _, fieldErr := range validationErrs {
				fieldErrors[fieldErr.Field()] = formatValidationError(fieldErr)
			}
			errorResponse = errors.NewValidationError(fieldErrors, traceID)
			httpStatus = http.StatusBadRequest
		default:
			errorResponse, _ = errors.WrapSystemError(err, traceID)
			httpStatus = errorResponse.GetHTTPStatus()
		}

		logLevel := slog.LevelWarn
		if httpStatus >= 500 {
			logLevel = slog.LevelError
		}

		logger.Log(c.Request().Context(), logLevel, "HTTP error occurred",
			"trace_id", traceID,
			"error_code", errorResponse.Error.Code,
			"status", httpStatus,
			"message", errorResponse.Error.Message,
			"path", c.Request().URL.Path,
			"method", c.Request().Method,
			"error", err.Error(),
		)

		metrics.IncrementCounter("http_error", map[string]string{"code": errorResponse.Error.Code})

		if c.Request().Method == http.MethodHead {
			if sendErr := c.NoContent(httpStatus); sendErr != nil {
				logger.Error("Failed to send error response", "trace_id", traceID, "error", sendErr.Error())
			}
			return
		}

		if sendErr := handlers.SendErrorResponse(c, httpStatus, errorResponse); sendErr != nil {
			logger.Error("Failed to send error response",
				"trace_id", traceID,
				"error", sendErr.Error(),
			)
		}
	}
}

// mapHTTPStatusToErrorCode maps HTTP status codes to error codes
func mapHTTPStatusToErrorCode(status int) errors.ErrorCode {
	switch status {
	case http.StatusBadRequest, http.StatusUnprocessableEntity, http.StatusUnsupportedMediaType:
		return errors.ValidationGeneral
	case http.StatusUnauthorized, http.StatusForbidden:
		return errors.AuthMissingSession
	case http.StatusNotFound, http.StatusMethodNotAllowed:
		return errors.SystemNotFound
	case http.StatusTooManyRequests:
		return errors.SystemRateLimitExceeded
	case http.StatusInternalServerError:
		return errors.SystemInternalError
	case http.StatusServiceUnavailable:
		return errors.SystemServiceUnavailable
	default:
		return errors.SystemUnexpectedError
	}
}

// formatValidationError converts a validator.FieldError to a human-readable message
func formatValidationError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		switch fe.Kind() {
		case reflect.String:
			return fmt.Sprintf("must be at least %s characters long", fe.Param())
		default:
			return fmt.Sprintf("must be at least %s", fe.Param())
		}
	case "max":
		switch fe.Kind() {
		case reflect.String:
			return fmt.Sprintf("must be at most %s characters long", fe.Param())
		default:
			return fmt.Sprintf("must be at most %s", fe.Param())
		}
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	case "positive_amount":
		return "must be a number greater than 0"
	case "payment_mode":
		return "must be a valid payment mode (CASH, ONLINE)"
	case "expense_category":
		return "must be a valid expense category"
	case "transaction_type":
		return "must be a valid transaction type (credit, debit)"
	default:
		return fmt.Sprintf("failed validation for '%s'", fe.Tag())
	}
}
