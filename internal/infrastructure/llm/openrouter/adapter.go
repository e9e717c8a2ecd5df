package openrouter

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"math"
	"net/http"

	"react-agent/internal/application/port/output"

	"github.com/sashabaranov/go-openai"
)

var _ output.LLMPort = (*OpenRouterAdapter)(nil)

const DefaultBaseURL = "https://openrouter.ai/api/v1"

type OpenRouterAdapter struct {
	client *openai.Client
	model  string
	logger output.LoggerPort
}

type Config struct {
	APIKey  string
	Model   string
	BaseURL string
	Logger  output.LoggerPort
}

func DefaultConfig(apiKey, model string) Config {
	return Config{
		APIKey:  apiKey,
		Model:   model,
		BaseURL: DefaultBaseURL,
	}
}

type loggingTransport struct {
	base   http.RoundTripper
	logger output.LoggerPort
}

func (t *loggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	var bodyBytes []byte
	if req.Body != nil {
		bodyBytes, _ = io.ReadAll(req.Body)
		req.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))
	}

	t.logger.Debug("HTTP Request",
		"method", req.Method,
		"url", req.URL.String(),
		"bodyLen", len(bodyBytes),
	)

	resp, err := t.base.RoundTrip(req)
	if err != nil {
		t.logger.Error("HTTP Request failed", "url", req.URL.String(), "error", err)
		return nil, err
	}

	t.logger.Debug("HTTP Response",
		"status", resp.Status,
		"statusCode", resp.StatusCode,
	)

	return resp, nil
}

func NewOpenRouterAdapter(cfg Config) *OpenRouterAdapter {
	config := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		config.BaseURL = cfg.BaseURL
	}

	if cfg.Logger != nil {
		config.HTTPClient = &http.Client{
			Transport: &loggingTransport{
				base:   http.DefaultTransport,
				logger: cfg.Logger,
			},
		}
	}

	return &OpenRouterAdapter{
		client: openai.NewClientWithConfig(config),
		model:  cfg.Model,
		logger: cfg.Logger,
	}
}

// Complete sends the whole ReAct prompt as a single user message.
func (a *OpenRouterAdapter) Complete(ctx context.Context, req output.CompletionRequest) (*output.CompletionResponse, error) {
	resp, err := a.client.CreateChatCompletion(ctx, buildRequest(a.model, req))
	if err != nil {
		return nil, fmt.Errorf("chat completion failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no choices in response")
	}

	if a.logger != nil {
		a.logger.Debug("Chat completion received",
			"model", resp.Model,
			"finishReason", resp.Choices[0].FinishReason,
			"promptTokens", resp.Usage.PromptTokens,
			"completionTokens", resp.Usage.CompletionTokens,
		)
	}

	return &output.CompletionResponse{
		Text: resp.Choices[0].Message.Content,
	}, nil
}

// buildRequest maps a zero temperature to the smallest float32 because
// go-openai omits a zero value from the request body.
func buildRequest(model string, req output.CompletionRequest) openai.ChatCompletionRequest {
	temperature := float32(req.Temperature)
	if temperature == 0 {
		temperature = math.SmallestNonzeroFloat32
	}

	return openai.ChatCompletionRequest{
		Model: model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: req.Prompt},
		},
		Stop:        req.StopSequences,
		Temperature: temperature,
	}
}
