package gemini

import (
	"context"
	"strings"
	"time"

	"google.golang.org/genai"

	"github.com/mfrench730/career-cracker/internal/llm"
)

// Client is a stateless Gemini LLM client. Configuration is injected at
// construction; the client itself holds no per-request state.
type Client struct {
	client *genai.Client
	config *Config
}

func NewClient(config *Config) (*Client, error) {
	ctx := context.Background()

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  config.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, &llm.ProviderError{
			Provider: "gemini",
			Code:     llm.ErrCodeAPIKey,
			Message:  "Failed to create Gemini client",
			Err:      err,
		}
	}

	return &Client{
		client: client,
		config: config,
	}, nil
}

// Complete sends one prompt to the model and returns the trimmed completion.
func (c *Client) Complete(ctx context.Context, req llm.CompletionRequest) (*llm.Completion, error) {
	startTime := time.Now()

	generationConfig := &genai.GenerateContentConfig{
		MaxOutputTokens: genai.Ptr(int64(req.MaxTokens)),
	}
	if req.Temperature > 0 {
		generationConfig.Temperature = genai.Ptr(float64(req.Temperature))
	}
	if req.System != "" {
		generationConfig.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{{Text: req.System}},
		}
	}

	result, err := c.client.Models.GenerateContent(
		ctx,
		c.config.Model,
		genai.Text(req.Prompt),
		generationConfig,
	)
	if err != nil {
		return nil, &llm.ProviderError{
			Provider: "gemini",
			Code:     llm.ErrCodeServiceDown,
			Message:  "Failed to generate completion",
			Err:      err,
		}
	}

	if result == nil {
		return nil, &llm.ProviderError{
			Provider: "gemini",
			Code:     llm.ErrCodeInvalidInput,
			Message:  "No response generated",
		}
	}

	text, err := result.Text()
	if err != nil {
		return nil, &llm.ProviderError{
			Provider: "gemini",
			Code:     llm.ErrCodeInvalidInput,
			Message:  "Failed to extract response text",
			Err:      err,
		}
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, &llm.ProviderError{
			Provider: "gemini",
			Code:     llm.ErrCodeInvalidInput,
			Message:  "Empty response generated",
		}
	}

	return &llm.Completion{
		Text:             text,
		RequestID:        req.RequestID,
		Provider:         "gemini",
		Model:            c.config.Model,
		ProcessingTimeMs: int(time.Since(startTime).Milliseconds()),
	}, nil
}

func (c *Client) GetProviderName() string {
	return "gemini"
}
