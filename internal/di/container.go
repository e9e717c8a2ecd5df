package di

import (
	"fmt"
	"io"

	"react-agent/internal/adapter/tool"
	"react-agent/internal/application/port/input"
	"react-agent/internal/application/port/output"
	"react-agent/internal/application/service"
	"react-agent/internal/infrastructure/llm/langchain"
	"react-agent/internal/infrastructure/llm/openrouter"
	"react-agent/internal/infrastructure/llm/retry"
	"react-agent/internal/infrastructure/logger"
	"react-agent/internal/infrastructure/prompts"
	"react-agent/internal/infrastructure/userinteraction"
	"react-agent/internal/usecase/executor"
)

const (
	ProviderOpenAI     = "openai"
	ProviderOpenRouter = "openrouter"
)

type Container struct {
	LLM          output.LLMPort
	Logger       output.LoggerPort
	Tools        output.ToolRegistry
	TaskExecutor input.TaskExecutor
}

type Config struct {
	Provider string
	APIKey   string
	Model    string
	BaseURL  string

	Executor executor.Config
	Retry    retry.Config

	LogDir   string
	LogLevel string
	TaskName string

	// LLM replaces the provider-built model when set.
	LLM output.LLMPort
	// Output receives the console rendering of the loop. Defaults to stdout.
	Output io.Writer
}

func NewContainer(cfg Config) (*Container, error) {
	log, err := logger.NewLoggerAdapter(logger.Config{
		Dir:      cfg.LogDir,
		TaskName: cfg.TaskName,
		Level:    cfg.LogLevel,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	tools := service.NewToolRegistry()
	if err := registerTools(tools, log); err != nil {
		log.Close()
		return nil, err
	}

	prompt, err := prompts.GenerateReActPrompt(prompts.ReActPrompt, tools)
	if err != nil {
		log.Close()
		return nil, fmt.Errorf("failed to build prompt: %w", err)
	}

	llm := cfg.LLM
	if llm == nil {
		llm, err = newLLM(cfg, log)
		if err != nil {
			log.Close()
			return nil, err
		}
	}
	llm = retry.New(llm, cfg.Retry, log.WithField("component", "retry"))

	var ui output.UserInteractionPort
	if cfg.Output != nil {
		ui = userinteraction.NewConsoleUserInteractionWithWriter(cfg.Output)
	} else {
		ui = userinteraction.NewConsoleUserInteraction()
	}

	uc := executor.New(llm, tools, prompt, ui, log, cfg.Executor)

	return &Container{
		LLM:          llm,
		Logger:       log,
		Tools:        tools,
		TaskExecutor: uc,
	}, nil
}

func (c *Container) Close() {
	if c.Logger != nil {
		c.Logger.Close()
	}
}

func newLLM(cfg Config, log output.LoggerPort) (output.LLMPort, error) {
	switch cfg.Provider {
	case "", ProviderOpenAI:
		llmCfg := langchain.DefaultConfig(cfg.APIKey)
		if cfg.Model != "" {
			llmCfg.Model = cfg.Model
		}
		llmCfg.BaseURL = cfg.BaseURL
		llmCfg.Logger = log
		llm, err := langchain.NewOpenAIAdapter(llmCfg)
		if err != nil {
			return nil, fmt.Errorf("failed to create llm: %w", err)
		}
		return llm, nil

	case ProviderOpenRouter:
		if cfg.Model == "" {
			return nil, fmt.Errorf("model is required for provider %q", cfg.Provider)
		}
		llmCfg := openrouter.DefaultConfig(cfg.APIKey, cfg.Model)
		if cfg.BaseURL != "" {
			llmCfg.BaseURL = cfg.BaseURL
		}
		llmCfg.Logger = log
		return openrouter.NewOpenRouterAdapter(llmCfg), nil

	default:
		return nil, fmt.Errorf("unknown llm provider %q", cfg.Provider)
	}
}

func registerTools(registry *service.ToolRegistryImpl, log output.LoggerPort) error {
	if err := registry.Register(tool.NewTextLengthTool(log)); err != nil {
		return fmt.Errorf("failed to register tool: %w", err)
	}
	return nil
}
