// Package public implements the public request handler for POST /generate.
//
// Purpose:
//   This package owns the validate -> invoke -> translate cycle: payload
//   parsing, field validation, inference invocation, response shaping, and
//   error mapping. The handler is a pure event-to-result function so the
//   Lambda and HTTP server entrypoints can share it unchanged.
//
package public

import (
	"encoding/json"
	"strings"
	"unicode/utf8"

	"github.com/johngiles12345/BedrockMicroservice/internal/api"
)

// Event is the raw inbound event delivered by the platform. Body may be
// absent or malformed; the validation pipeline decides.
type Event struct {
	Method  string
	Body    string
	Headers map[string]string
}

// Result is the HTTP-shaped outcome of one invocation.
type Result struct {
	StatusCode int
	Headers    map[string]string
	Body       string
}

// GenerateRequest is the inbound payload for POST /generate.
type GenerateRequest struct {
	Prompt string `json:"prompt"`
}

// Usage reports token accounting for one invocation.
type Usage struct {
	InputTokens  int `json:"input_tokens"`
	OutputTokens int `json:"output_tokens"`
}

// GenerateResponse is the success payload.
type GenerateResponse struct {
	Message  string `json:"message"`
	Response string `json:"response"`
	ModelID  string `json:"model_id"`
	Usage    Usage  `json:"usage"`
}

// ErrorResponse is the failure payload for both the 400 and 500 classes.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// validatePrompt runs the validation pipeline over the raw event body.
// It short-circuits at the first failure and returns the prompt to send to
// the model (trimmed, as clients expect surrounding whitespace ignored).
// The length bound applies to the raw string.
func validatePrompt(body string, maxLength int) (string, *api.APIError) {
	if body == "" {
		return "", api.NewError(api.ErrCodeMissingBody, "event carried no body")
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(body), &fields); err != nil {
		return "", api.NewError(api.ErrCodeMalformedJSON, err.Error())
	}

	raw, ok := fields["prompt"]
	if !ok {
		return "", api.NewError(api.ErrCodeMissingField, "prompt key absent")
	}

	var prompt string
	if err := json.Unmarshal(raw, &prompt); err != nil {
		return "", api.NewError(api.ErrCodeInvalidType, "prompt is not a JSON string")
	}

	trimmed := strings.TrimSpace(prompt)
	if trimmed == "" {
		return "", api.NewError(api.ErrCodeEmptyPrompt, "prompt is empty after trimming")
	}

	if utf8.RuneCountInString(prompt) > maxLength {
		return "", api.NewError(api.ErrCodePromptTooLong, "prompt over configured bound")
	}

	return trimmed, nil
}
