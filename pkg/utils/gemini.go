package utils

import (
	"context"
	"fmt"
	"io"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiCompletionClient implements CompletionClientInterface using Google's
// Gemini models. Selected by AI_PROVIDER=gemini; the blocking path only, the
// SSE streaming transport is OpenAI-specific.
type GeminiCompletionClient struct {
	client *genai.Client
	model  string
}

func NewGeminiCompletionClient(apiKey, model string) (*GeminiCompletionClient, error) {
	if model == "" {
		model = "gemini-1.5-flash"
	}

	client, err := genai.NewClient(context.Background(), option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiCompletionClient{
		client: client,
		model:  model,
	}, nil
}

func (c *GeminiCompletionClient) CreateCompletion(ctx context.Context, req CompletionRequest) (string, error) {
	m := c.client.GenerativeModel(c.model)
	// Force JSON-only output so the response needs no markdown stripping.
	m.ResponseMIMEType = "application/json"
	m.SetTemperature(req.Temperature)
	if req.MaxTokens > 0 {
		m.SetMaxOutputTokens(int32(req.MaxTokens))
	}
	m.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(req.SystemPrompt)},
	}

	resp, err := m.GenerateContent(ctx, genai.Text(req.UserPrompt))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrModelTransport, err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", ErrEmptyModelResponse
	}

	content := fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0])
	if content == "" {
		return "", ErrEmptyModelResponse
	}

	return content, nil
}

func (c *GeminiCompletionClient) StreamCompletion(ctx context.Context, req CompletionRequest) (io.ReadCloser, error) {
	return nil, fmt.Errorf("%w: gemini", ErrStreamUnsupported)
}

func (c *GeminiCompletionClient) Close() error {
	return c.client.Close()
}
