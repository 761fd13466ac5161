// Package bedrock provides the inference client for Amazon Bedrock.
//
// Purpose:
//   This package wraps the Bedrock Runtime InvokeModel call for Anthropic
//   messages-format models. It owns request body construction, response
//   parsing, and the single translation step from AWS SDK errors into the
//   service's closed error taxonomy (see errors.go).
//
// Key Responsibilities:
//   - Build the anthropic messages request body
//   - Invoke the model with a bounded timeout, exactly one attempt
//   - Parse generated text and token usage from the response
//   - Categorize every failure; nothing propagates uncategorized
//
package bedrock

import (
	"context"
	"encoding/json"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"go.uber.org/zap"

	"github.com/johngiles12345/BedrockMicroservice/internal/api"
	"github.com/johngiles12345/BedrockMicroservice/internal/config"
	"github.com/johngiles12345/BedrockMicroservice/internal/logging"
)

// anthropicVersion is the Bedrock API version for Anthropic messages models.
const anthropicVersion = "bedrock-2023-05-31"

// Invoker abstracts the Bedrock InvokeModel call so the client can be tested
// without a real network dependency.
type Invoker interface {
	InvokeModel(ctx context.Context, params *bedrockruntime.InvokeModelInput, optFns ...func(*bedrockruntime.Options)) (*bedrockruntime.InvokeModelOutput, error)
}

// Result holds the outcome of one successful inference call.
type Result struct {
	Text         string
	InputTokens  int
	OutputTokens int
	ModelID      string
}

// Client invokes a fixed Bedrock model with validated prompts.
type Client struct {
	invoker       Invoker
	logger        *zap.Logger
	modelID       string
	maxTokens     int
	temperature   float64
	invokeTimeout time.Duration
}

// New creates a Client backed by the real Bedrock Runtime service.
func New(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Client, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
	if err != nil {
		return nil, api.NewError(api.ErrCodeInferenceTransport, "load aws config: "+err.Error())
	}
	return NewWithInvoker(bedrockruntime.NewFromConfig(awsCfg), cfg, logger), nil
}

// NewWithInvoker creates a Client with a caller-supplied Invoker.
func NewWithInvoker(invoker Invoker, cfg *config.Config, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		invoker:       invoker,
		logger:        logger,
		modelID:       cfg.ModelID,
		maxTokens:     cfg.MaxCompletionTokens,
		temperature:   cfg.Temperature,
		invokeTimeout: cfg.InvokeTimeout,
	}
}

// ModelID returns the configured model identifier.
func (c *Client) ModelID() string {
	return c.modelID
}

// messagesRequest is the anthropic messages request body.
type messagesRequest struct {
	AnthropicVersion string    `json:"anthropic_version"`
	MaxTokens        int       `json:"max_tokens"`
	Temperature      float64   `json:"temperature"`
	Messages         []message `json:"messages"`
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// messagesResponse is the subset of the anthropic messages response we read.
type messagesResponse struct {
	Content []contentBlock `json:"content"`
	Usage   usage          `json:"usage"`
}

type contentBlock struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type usage struct {
	InputTokens  int `json:"input_tokens"`
	OutputTokens int `json:"output_tokens"`
}

// Generate runs one inference attempt for the prompt. The call is bounded by
// the configured invoke timeout; there is no internal retry. Every returned
// error carries a code from the api catalog.
func (c *Client) Generate(ctx context.Context, prompt string) (*Result, error) {
	ctx, cancel := context.WithTimeout(ctx, c.invokeTimeout)
	defer cancel()

	body, err := json.Marshal(messagesRequest{
		AnthropicVersion: anthropicVersion,
		MaxTokens:        c.maxTokens,
		Temperature:      c.temperature,
		Messages:         []message{{Role: "user", Content: prompt}},
	})
	if err != nil {
		return nil, api.NewError(api.ErrCodeInferenceUnknown, "marshal request body: "+err.Error())
	}

	contentType := "application/json"
	startTime := time.Now()

	out, err := c.invoker.InvokeModel(ctx, &bedrockruntime.InvokeModelInput{
		ModelId:     &c.modelID,
		Body:        body,
		ContentType: &contentType,
		Accept:      &contentType,
	})

	latency := time.Since(startTime)

	if err != nil {
		apiErr := translateError(err)
		c.logger.Error("bedrock invocation failed",
			zap.String("model_id", c.modelID),
			zap.String("error_code", apiErr.Code),
			zap.Duration("latency", latency),
			logging.RedactError(err),
		)
		return nil, apiErr
	}

	var resp messagesResponse
	if err := json.Unmarshal(out.Body, &resp); err != nil {
		return nil, api.NewError(api.ErrCodeInferenceUnknown, "unmarshal model response: "+err.Error())
	}

	if len(resp.Content) == 0 || resp.Content[0].Text == "" {
		c.logger.Error("unexpected response format from model",
			zap.String("model_id", c.modelID),
		)
		return nil, api.NewError(api.ErrCodeInferenceUnknown, "model response carried no text content")
	}

	c.logger.Info("bedrock invocation completed",
		zap.String("model_id", c.modelID),
		zap.Duration("latency", latency),
		zap.Int("input_tokens", resp.Usage.InputTokens),
		zap.Int("output_tokens", resp.Usage.OutputTokens),
	)

	return &Result{
		Text:         resp.Content[0].Text,
		InputTokens:  resp.Usage.InputTokens,
		OutputTokens: resp.Usage.OutputTokens,
		ModelID:      c.modelID,
	}, nil
}
