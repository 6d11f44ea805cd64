package errors

// ErrorCode represents a standardized error code used throughout the web front end
type ErrorCode string

// Session error codes (AUTH_*)
const (
	AuthMissingSession       ErrorCode = "AUTH_001"
	AuthAuthorizationFailure ErrorCode = "AUTH_002"
	AuthInvalidClient        ErrorCode = "AUTH_003"
)

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationInvalidFilter ErrorCode = "VALIDATION_005"
	ValidationInvalidPeriod ErrorCode = "VALIDATION_006"
)

// Remote request error codes (REQUEST_*)
const (
	RequestRejected            ErrorCode = "REQUEST_001"
	RequestDuplicateSubmission ErrorCode = "REQUEST_002"
	RequestViewExpired         ErrorCode = "REQUEST_003"
)

// Transport error codes (TRANSPORT_*)
const (
	TransportUnreachable ErrorCode = "TRANSPORT_001"
	TransportCircuitOpen ErrorCode = "TRANSPORT_002"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemUnexpectedError    ErrorCode = "SYSTEM_004"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_005"
	SystemNotFound           ErrorCode = "SYSTEM_006"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	AuthMissingSession:       "Please login to access this page",
	AuthAuthorizationFailure: "Your session has expired. Please login again",
	AuthInvalidClient:        "Invalid client session",

	ValidationGeneral:       "Validation failed",
	ValidationInvalidFormat: "Invalid field format",
	ValidationInvalidFilter: "Invalid transaction filter",
	ValidationInvalidPeriod: "Invalid report period",

	RequestRejected:            "The request was rejected",
	RequestDuplicateSubmission: "A submission is already in progress",
	RequestViewExpired:         "This view has expired. Please reload the page",

	TransportUnreachable: "Server error",
	TransportCircuitOpen: "Service temporarily unavailable. Please try again shortly",

	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemDatabaseError:      "Session store error",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemUnexpectedError:    "An unexpected error occurred",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
	SystemNotFound:           "Page not found",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}
