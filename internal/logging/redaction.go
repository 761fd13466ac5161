package logging

import (
	"regexp"
	"unicode/utf8"

	"go.uber.org/zap"
)

// Prompt text may contain anything a user typed, including credentials or
// personal data, so it never reaches a log record. PromptFields is the only
// sanctioned way to describe a prompt in logs.

// PromptFields returns the loggable metadata for a prompt: its length in
// characters, never its content.
func PromptFields(prompt string) []zap.Field {
	return []zap.Field{
		zap.Int("prompt_length", utf8.RuneCountInString(prompt)),
	}
}

// Redaction patterns for sensitive data that can leak through error strings
// returned by the AWS SDK or misconfigured environments.
var (
	// TokenPattern matches bearer tokens.
	TokenPattern = regexp.MustCompile(`(?i)(Bearer\s+)([A-Za-z0-9\-_.]{20,})`)

	// AWSKeyPattern matches AWS access key IDs.
	AWSKeyPattern = regexp.MustCompile(`\b(AKIA|ASIA)[A-Z0-9]{16}\b`)

	// SecretPattern matches generic secrets in environment-variable form.
	SecretPattern = regexp.MustCompile(`(?i)([A-Z_]*SECRET[_A-Z]*[=:]\s*)([^\s"',}]+)`)

	// ConnectionStringPattern matches URLs carrying inline credentials.
	ConnectionStringPattern = regexp.MustCompile(`://[^:/\s]+:[^@\s]+@`)
)

// RedactString applies redaction patterns to a string, masking sensitive data.
func RedactString(s string) string {
	if s == "" {
		return s
	}

	result := s
	result = TokenPattern.ReplaceAllString(result, `${1}***REDACTED***`)
	result = AWSKeyPattern.ReplaceAllString(result, `***REDACTED***`)
	result = SecretPattern.ReplaceAllString(result, `${1}***REDACTED***`)
	result = ConnectionStringPattern.ReplaceAllString(result, `://***REDACTED***@`)
	return result
}

// RedactError returns a zap field with the error string passed through
// redaction. Use this instead of zap.Error for diagnostics that may embed
// endpoint URLs or credentials.
func RedactError(err error) zap.Field {
	if err == nil {
		return zap.Skip()
	}
	return zap.String("error", RedactString(err.Error()))
}
