package langchain

import (
	"context"
	"fmt"

	"react-agent/internal/application/port/output"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

var _ output.LLMPort = (*Adapter)(nil)

const DefaultModel = "gpt-4o-mini"

type Config struct {
	APIKey  string
	Model   string
	BaseURL string
	Logger  output.LoggerPort
}

func DefaultConfig(apiKey string) Config {
	return Config{
		APIKey: apiKey,
		Model:  DefaultModel,
	}
}

// Adapter serves completions from any langchaingo llms.Model.
type Adapter struct {
	model llms.Model
}

// NewOpenAIAdapter builds a langchaingo OpenAI model. When a logger is set,
// every prompt and completion is logged through CallbackHandler.
func NewOpenAIAdapter(cfg Config) (*Adapter, error) {
	var opts []openai.Option
	if cfg.APIKey != "" {
		opts = append(opts, openai.WithToken(cfg.APIKey))
	}
	if cfg.Model != "" {
		opts = append(opts, openai.WithModel(cfg.Model))
	}
	if cfg.BaseURL != "" {
		opts = append(opts, openai.WithBaseURL(cfg.BaseURL))
	}
	if cfg.Logger != nil {
		opts = append(opts, openai.WithCallback(NewCallbackHandler(cfg.Logger)))
	}

	llm, err := openai.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("create openai model: %w", err)
	}

	return NewAdapter(llm), nil
}

func NewAdapter(model llms.Model) *Adapter {
	return &Adapter{model: model}
}

func (a *Adapter) Complete(ctx context.Context, req output.CompletionRequest) (*output.CompletionResponse, error) {
	opts := []llms.CallOption{llms.WithTemperature(req.Temperature)}
	if len(req.StopSequences) > 0 {
		opts = append(opts, llms.WithStopWords(req.StopSequences))
	}

	text, err := llms.GenerateFromSinglePrompt(ctx, a.model, req.Prompt, opts...)
	if err != nil {
		return nil, fmt.Errorf("generate content: %w", err)
	}

	return &output.CompletionResponse{Text: text}, nil
}
