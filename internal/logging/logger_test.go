package logging

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name: "valid config",
			config: Config{
				ServiceName: "test-service",
				Environment: "development",
				LogLevel:    "info",
				OutputPath:  "stdout",
			},
			wantErr: false,
		},
		{
			name:    "default config",
			config:  DefaultConfig().WithServiceName("test-service"),
			wantErr: false,
		},
		{
			name: "invalid log level defaults to info",
			config: Config{
				ServiceName: "test-service",
				Environment: "development",
				LogLevel:    "invalid",
				OutputPath:  "stdout",
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := New(tt.config)
			if (err != nil) != tt.wantErr {
				t.Errorf("New() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if logger == nil && !tt.wantErr {
				t.Error("New() returned nil logger")
			}
			if logger != nil {
				_ = logger.Sync()
			}
		})
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input string
		want  zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"DEBUG", zapcore.DebugLevel},
		{"info", zapcore.InfoLevel},
		{"warn", zapcore.WarnLevel},
		{"warning", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"invalid", zapcore.InfoLevel},
		{"", zapcore.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := parseLogLevel(tt.input); got != tt.want {
				t.Errorf("parseLogLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestWithRequestID(t *testing.T) {
	logger := MustNew(DefaultConfig().WithServiceName("test-service"))
	child := logger.WithRequestID("req-123")
	if child == nil {
		t.Fatal("WithRequestID() returned nil")
	}
	child.Info("correlated record")
}
