package config

import (
	"strings"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.ServiceName != "bedrock-prompt-service" {
		t.Errorf("ServiceName = %q, want %q", cfg.ServiceName, "bedrock-prompt-service")
	}
	if cfg.ModelID != "anthropic.claude-3-5-haiku-20241022-v1:0" {
		t.Errorf("ModelID = %q, want default haiku model", cfg.ModelID)
	}
	if cfg.Region != "us-west-2" {
		t.Errorf("Region = %q, want %q", cfg.Region, "us-west-2")
	}
	if cfg.InvokeTimeout != 25*time.Second {
		t.Errorf("InvokeTimeout = %s, want 25s", cfg.InvokeTimeout)
	}
	if cfg.MaxPromptLength != MaxPromptLengthContract {
		t.Errorf("MaxPromptLength = %d, want %d", cfg.MaxPromptLength, MaxPromptLengthContract)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("BEDROCK_MODEL_ID", "anthropic.claude-3-5-sonnet-20241022-v2:0")
	t.Setenv("BEDROCK_INVOKE_TIMEOUT", "10s")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.ModelID != "anthropic.claude-3-5-sonnet-20241022-v2:0" {
		t.Errorf("ModelID = %q, override not applied", cfg.ModelID)
	}
	if cfg.InvokeTimeout != 10*time.Second {
		t.Errorf("InvokeTimeout = %s, want 10s", cfg.InvokeTimeout)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", cfg.LogLevel)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "valid defaults",
			mutate: func(c *Config) {},
		},
		{
			name:    "empty model id",
			mutate:  func(c *Config) { c.ModelID = "" },
			wantErr: "BEDROCK_MODEL_ID",
		},
		{
			name:    "non-positive timeout",
			mutate:  func(c *Config) { c.InvokeTimeout = 0 },
			wantErr: "BEDROCK_INVOKE_TIMEOUT",
		},
		{
			name:    "prompt bound diverges from schema",
			mutate:  func(c *Config) { c.MaxPromptLength = 8000 },
			wantErr: "declared API schema bound",
		},
		{
			name:    "non-positive completion tokens",
			mutate:  func(c *Config) { c.MaxCompletionTokens = -1 },
			wantErr: "MAX_COMPLETION_TOKENS",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load()
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			tt.mutate(cfg)

			err = cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() error = %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Validate() = nil, want error containing %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %v, want it to contain %q", err, tt.wantErr)
			}
		})
	}
}
