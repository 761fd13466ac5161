// Package api provides the centralized error catalog for the service.
//
// Purpose:
//   Every failure the handler can surface maps to one of a small closed set
//   of error codes. Each code carries a fixed user-facing message and a fixed
//   HTTP status. The messages are part of the external contract: client
//   integrations and documentation match on them verbatim, so they must not
//   be reworded.
//
package api

import (
	"errors"
	"net/http"
)

// Validation error codes (caller's fault, HTTP 400).
const (
	ErrCodeMissingBody   = "MISSING_BODY"
	ErrCodeMalformedJSON = "MALFORMED_JSON"
	ErrCodeMissingField  = "MISSING_FIELD"
	ErrCodeInvalidType   = "INVALID_TYPE"
	ErrCodeEmptyPrompt   = "EMPTY_PROMPT"
	ErrCodePromptTooLong = "PROMPT_TOO_LONG"
)

// Inference error codes (service-side fault, HTTP 500).
const (
	ErrCodeInferenceAccessDenied = "INFERENCE_ACCESS_DENIED"
	ErrCodeInferenceThrottled    = "INFERENCE_THROTTLED"
	ErrCodeInferenceRejected     = "INFERENCE_REJECTED"
	ErrCodeInferenceTransport    = "INFERENCE_TRANSPORT"
	ErrCodeInferenceUnknown      = "INFERENCE_UNKNOWN"
)

// messageCatalog holds the verbatim user-facing message for each code.
var messageCatalog = map[string]string{
	ErrCodeMissingBody:   "Request body is required",
	ErrCodeMalformedJSON: "Invalid JSON in request body",
	ErrCodeMissingField:  "Missing 'prompt' field in request body",
	ErrCodeInvalidType:   "Prompt must be a string",
	ErrCodeEmptyPrompt:   "Prompt cannot be empty",
	ErrCodePromptTooLong: "Prompt exceeds maximum length of 4000 characters",

	ErrCodeInferenceAccessDenied: "Access denied to Bedrock model. Please check IAM permissions.",
	ErrCodeInferenceThrottled:    "Request throttled. Please try again later.",
	ErrCodeInferenceRejected:     "Invalid request to Bedrock model.",
	ErrCodeInferenceTransport:    "Network or configuration error accessing Bedrock service",
	ErrCodeInferenceUnknown:      "Internal server error processing AI request",
}

// Message returns the user-facing message for an error code. Unknown codes
// fall back to the generic inference message so nothing internal leaks.
func Message(code string) string {
	if msg, ok := messageCatalog[code]; ok {
		return msg
	}
	return messageCatalog[ErrCodeInferenceUnknown]
}

// GetHTTPStatus maps an error code to an HTTP status code.
func GetHTTPStatus(code string) int {
	if IsValidationCode(code) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// IsValidationCode reports whether a code belongs to the validation class.
func IsValidationCode(code string) bool {
	switch code {
	case ErrCodeMissingBody, ErrCodeMalformedJSON, ErrCodeMissingField,
		ErrCodeInvalidType, ErrCodeEmptyPrompt, ErrCodePromptTooLong:
		return true
	}
	return false
}

// StatusTitle returns the "error" field value for a status code.
func StatusTitle(statusCode int) string {
	if statusCode == http.StatusBadRequest {
		return "Bad Request"
	}
	return "Internal Server Error"
}

// APIError represents a categorized error with a code from the catalog.
// Detail carries the underlying diagnostic for logging only; it never
// appears in a response body.
type APIError struct {
	Code   string
	Detail string
}

func (e *APIError) Error() string {
	if e.Detail == "" {
		return e.Code
	}
	return e.Code + ": " + e.Detail
}

// Is implements errors.Is matching by code.
func (e *APIError) Is(target error) bool {
	t, ok := target.(*APIError)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// NewError creates a categorized error.
func NewError(code, detail string) *APIError {
	return &APIError{Code: code, Detail: detail}
}

// GetErrorCode extracts the catalog code from an error. Errors without a
// code are treated as unknown inference failures.
func GetErrorCode(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Code
	}
	return ErrCodeInferenceUnknown
}
