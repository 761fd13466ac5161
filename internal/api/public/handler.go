package public

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/johngiles12345/BedrockMicroservice/internal/api"
	"github.com/johngiles12345/BedrockMicroservice/internal/bedrock"
	"github.com/johngiles12345/BedrockMicroservice/internal/config"
	"github.com/johngiles12345/BedrockMicroservice/internal/logging"
	"github.com/johngiles12345/BedrockMicroservice/internal/telemetry"
)

// Generator is the inference capability the handler depends on. The real
// implementation is *bedrock.Client; tests substitute their own.
type Generator interface {
	Generate(ctx context.Context, prompt string) (*bedrock.Result, error)
	ModelID() string
}

// Handler processes generate events. It holds no mutable state; one Handler
// serves any number of concurrent invocations.
type Handler struct {
	logger          *logging.Logger
	generator       Generator
	maxPromptLength int
	tracer          trace.Tracer
}

// NewHandler creates the request handler.
func NewHandler(cfg *config.Config, generator Generator, logger *logging.Logger) *Handler {
	return &Handler{
		logger:          logger,
		generator:       generator,
		maxPromptLength: cfg.MaxPromptLength,
		tracer:          otel.Tracer("bedrock-prompt-service"),
	}
}

// corsHeaders returns the headers attached to every response, errors included.
func corsHeaders() map[string]string {
	return map[string]string{
		"Content-Type":                 "application/json",
		"Access-Control-Allow-Origin":  "*",
		"Access-Control-Allow-Methods": "POST, OPTIONS",
		"Access-Control-Allow-Headers": "Content-Type, Authorization",
	}
}

// HandleEvent runs one validate -> invoke -> translate cycle. It never
// panics outward and never returns an undocumented response shape.
func (h *Handler) HandleEvent(ctx context.Context, event Event) (result Result) {
	ctx, span := h.tracer.Start(ctx, "generate.request")
	defer span.End()

	startTime := time.Now()
	requestID := requestIDFrom(event)
	logger := h.logger.WithContext(ctx).With(zap.String("request_id", requestID))
	modelID := h.generator.ModelID()

	defer func() {
		if r := recover(); r != nil {
			logger.Error("panic recovered in handler", zap.Any("panic", r))
			telemetry.RecordError(modelID, api.ErrCodeInferenceUnknown)
			result = errorResult(api.ErrCodeInferenceUnknown)
		}
	}()

	if event.Method == http.MethodOptions {
		return jsonResult(http.StatusOK, map[string]string{"message": "CORS preflight successful"})
	}

	prompt, vErr := validatePrompt(event.Body, h.maxPromptLength)
	if vErr != nil {
		logger.Warn("request validation failed",
			zap.String("error_code", vErr.Code),
			zap.String("detail", vErr.Detail),
		)
		telemetry.RecordRequest(modelID, "rejected", time.Since(startTime))
		return errorResult(vErr.Code)
	}

	logger.Info("processing prompt", logging.PromptFields(prompt)...)

	genResult, err := h.generator.Generate(ctx, prompt)
	if err != nil {
		code := api.GetErrorCode(err)
		logger.Error("inference invocation failed",
			zap.String("error_code", code),
			logging.RedactError(err),
		)
		telemetry.RecordError(modelID, code)
		telemetry.RecordRequest(modelID, "failed", time.Since(startTime))
		return errorResult(code)
	}

	logger.Info("generated response",
		zap.String("model_id", genResult.ModelID),
		zap.Int("input_tokens", genResult.InputTokens),
		zap.Int("output_tokens", genResult.OutputTokens),
	)
	telemetry.RecordUsage(genResult.ModelID, genResult.InputTokens, genResult.OutputTokens)
	telemetry.RecordRequest(modelID, "success", time.Since(startTime))

	return jsonResult(http.StatusOK, GenerateResponse{
		Message:  "Success",
		Response: genResult.Text,
		ModelID:  genResult.ModelID,
		Usage: Usage{
			InputTokens:  genResult.InputTokens,
			OutputTokens: genResult.OutputTokens,
		},
	})
}

// ServeHTTP adapts HandleEvent onto net/http for the chi server.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		body = nil
	}

	headers := make(map[string]string, len(r.Header))
	for name := range r.Header {
		headers[name] = r.Header.Get(name)
	}

	result := h.HandleEvent(r.Context(), Event{
		Method:  r.Method,
		Body:    string(body),
		Headers: headers,
	})

	for name, value := range result.Headers {
		w.Header().Set(name, value)
	}
	w.WriteHeader(result.StatusCode)
	_, _ = io.WriteString(w, result.Body)
}

// requestIDFrom picks the correlation ID: the platform's, if it forwarded
// one, otherwise a fresh UUID.
func requestIDFrom(event Event) string {
	for _, name := range []string{"X-Request-Id", "X-Request-ID", "X-Amzn-Requestid", "X-Amzn-Trace-Id"} {
		if id := event.Headers[name]; id != "" {
			return id
		}
	}
	return uuid.NewString()
}

// jsonResult builds a Result with the standard headers.
func jsonResult(statusCode int, body interface{}) Result {
	encoded, err := json.Marshal(body)
	if err != nil {
		// The response DTOs cannot fail to marshal; treat it as the generic
		// 500 if that ever changes.
		return errorResult(api.ErrCodeInferenceUnknown)
	}
	return Result{
		StatusCode: statusCode,
		Headers:    corsHeaders(),
		Body:       string(encoded),
	}
}

// errorResult builds the contract error body for a catalog code.
func errorResult(code string) Result {
	statusCode := api.GetHTTPStatus(code)
	encoded, _ := json.Marshal(ErrorResponse{
		Error:   api.StatusTitle(statusCode),
		Message: api.Message(code),
	})
	return Result{
		StatusCode: statusCode,
		Headers:    corsHeaders(),
		Body:       string(encoded),
	}
}
