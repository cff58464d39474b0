package llm

import (
	"context"
)

// CompletionRequest is a single role-tagged prompt sent to the model.
type CompletionRequest struct {
	System      string  // system role text, may be empty
	Prompt      string  // user role text
	MaxTokens   int     // token budget for the completion
	Temperature float32 //
	RequestID   string
}

// Completion is the model's trimmed text output plus call metadata.
type Completion struct {
	Text             string
	RequestID        string
	Provider         string
	Model            string
	ProcessingTimeMs int
}

// defines the interface for LLM providers
type Provider interface {
	Complete(ctx context.Context, req CompletionRequest) (*Completion, error)
	GetProviderName() string
}

// represents an error from an LLM provider
type ProviderError struct {
	Provider string
	Code     string
	Message  string
	Err      error
}

func (e *ProviderError) Error() string {
	if e.Err != nil {
		return e.Provider + " error: " + e.Message + " (" + e.Err.Error() + ")"
	}
	return e.Provider + " error: " + e.Message
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// Common error codes
// For current and future use across different providers
const (
	ErrCodeAPIKey       = "invalid_api_key"
	ErrCodeRateLimit    = "rate_limit_exceeded"
	ErrCodeServiceDown  = "service_unavailable"
	ErrCodeInvalidInput = "invalid_input"
	ErrCodeTimeout      = "timeout"
)
