// Package config provides runtime configuration for the Bedrock prompt service.
//
// Purpose:
//   Configuration is read once from the environment at cold start and treated
//   as immutable afterwards. Handlers receive the loaded Config by injection
//   rather than reading ambient process state.
//
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// MaxPromptLengthContract is the prompt length bound declared in the public
// API schema (api/openapi.yaml). MAX_PROMPT_LENGTH must stay equal to it;
// the two are a cross-system contract with API Gateway and client SDKs.
const MaxPromptLengthContract = 4000

// Config represents the runtime configuration for the service.
type Config struct {
	ServiceName string `envconfig:"SERVICE_NAME" default:"bedrock-prompt-service"`
	Environment string `envconfig:"ENVIRONMENT" default:"development"`
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info"`
	HTTPPort    int    `envconfig:"HTTP_PORT" default:"8080"`

	// Bedrock
	ModelID             string        `envconfig:"BEDROCK_MODEL_ID" default:"anthropic.claude-3-5-haiku-20241022-v1:0"`
	Region              string        `envconfig:"AWS_REGION" default:"us-west-2"`
	InvokeTimeout       time.Duration `envconfig:"BEDROCK_INVOKE_TIMEOUT" default:"25s"`
	MaxCompletionTokens int           `envconfig:"MAX_COMPLETION_TOKENS" default:"4000"`
	Temperature         float64       `envconfig:"TEMPERATURE" default:"0.7"`

	// Request validation
	MaxPromptLength int `envconfig:"MAX_PROMPT_LENGTH" default:"4000"`
}

// Validate checks invariants that envconfig cannot express.
func (c *Config) Validate() error {
	if c.ModelID == "" {
		return fmt.Errorf("config: BEDROCK_MODEL_ID must not be empty")
	}
	if c.InvokeTimeout <= 0 {
		return fmt.Errorf("config: BEDROCK_INVOKE_TIMEOUT must be positive, got %s", c.InvokeTimeout)
	}
	if c.MaxPromptLength != MaxPromptLengthContract {
		return fmt.Errorf("config: MAX_PROMPT_LENGTH is %d but the declared API schema bound is %d",
			c.MaxPromptLength, MaxPromptLengthContract)
	}
	if c.MaxCompletionTokens <= 0 {
		return fmt.Errorf("config: MAX_COMPLETION_TOKENS must be positive, got %d", c.MaxCompletionTokens)
	}
	return nil
}

// Load reads environment variables into Config.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("config: process env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// MustLoad returns Config or exits the process.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	return cfg
}
