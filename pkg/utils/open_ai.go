package utils

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// CompletionRequest carries one system/user prompt pair. Zero MaxTokens means
// the provider default.
type CompletionRequest struct {
	SystemPrompt string
	UserPrompt   string
	Temperature  float32
	MaxTokens    int
}

// CompletionClientInterface abstracts the model endpoint. CreateCompletion
// does one blocking round trip and returns the response content.
// StreamCompletion returns the raw server-sent-event body for the same
// request issued with stream=true; the caller owns closing it.
type CompletionClientInterface interface {
	CreateCompletion(ctx context.Context, req CompletionRequest) (string, error)
	StreamCompletion(ctx context.Context, req CompletionRequest) (io.ReadCloser, error)
}

type OpenAICompletionClient struct {
	client     *openai.Client
	httpClient *http.Client
	apiKey     string
	model      string
	baseURL    string
}

func NewOpenAICompletionClient(apiKey, model string) *OpenAICompletionClient {
	if model == "" {
		model = openai.GPT3Dot5Turbo
	}
	return &OpenAICompletionClient{
		client:     openai.NewClient(apiKey),
		httpClient: http.DefaultClient,
		apiKey:     apiKey,
		model:      model,
		baseURL:    "https://api.openai.com/v1",
	}
}

func (c *OpenAICompletionClient) CreateCompletion(ctx context.Context, req CompletionRequest) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, c.buildRequest(req, false))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrModelTransport, err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", ErrEmptyModelResponse
	}

	return resp.Choices[0].Message.Content, nil
}

// StreamCompletion issues the chat request directly over HTTP so the caller
// gets the untouched SSE line stream. The go-openai stream reader is bypassed
// on purpose: the incremental decoder needs the raw "data:" framing.
func (c *OpenAICompletionClient) StreamCompletion(ctx context.Context, req CompletionRequest) (io.ReadCloser, error) {
	body, err := json.Marshal(c.buildRequest(req, true))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrModelTransport, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrModelTransport, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	httpReq.Header.Set("Accept", "text/event-stream")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrModelTransport, err)
	}

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		resp.Body.Close()
		return nil, fmt.Errorf("%w: status %d: %s", ErrModelTransport, resp.StatusCode, strings.TrimSpace(string(msg)))
	}

	return resp.Body, nil
}

func (c *OpenAICompletionClient) buildRequest(req CompletionRequest, stream bool) openai.ChatCompletionRequest {
	return openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: req.SystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: req.UserPrompt},
		},
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Stream: stream,
	}
}

// NewCompletionClient picks the provider implementation from config.
func NewCompletionClient(provider, apiKey, model string) (CompletionClientInterface, error) {
	switch strings.ToLower(provider) {
	case "openai":
		return NewOpenAICompletionClient(apiKey, model), nil
	case "gemini":
		return NewGeminiCompletionClient(apiKey, model)
	default:
		return nil, fmt.Errorf("unsupported provider: %s", provider)
	}
}
