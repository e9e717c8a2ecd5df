package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"react-agent/internal/di"
	"react-agent/internal/infrastructure/env"
	"react-agent/internal/infrastructure/llm/retry"
	"react-agent/internal/usecase/executor"

	"github.com/chzyer/readline"
	"github.com/fatih/color"
)

const defaultQuestion = "What is the text length of the string DOG in characters?"

func main() {
	envService := env.NewEnvService()

	question, err := readQuestion(os.Args[1:])
	if err != nil {
		log.Fatalf("Failed to read question: %v", err)
	}

	cfg, err := loadConfig(envService)
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), envService.GetDuration("AGENT_TIMEOUT", 5*time.Minute))
	defer cancel()

	container, err := di.NewContainer(cfg)
	if err != nil {
		log.Fatalf("Initialization failed: %v", err)
	}
	defer container.Close()

	container.Logger.Info("Task started", "question", question)

	result, err := container.TaskExecutor.Execute(ctx, question)
	if err != nil {
		container.Logger.Error("Task failed", "error", err)
		color.New(color.FgRed).Fprintf(os.Stderr, "\nAgent failed: %v\n", err)
		container.Close()
		os.Exit(1)
	}

	container.Logger.Info("Task completed", "iterations", result.Iterations)
	fmt.Println(result.FinalAnswer)
}

func loadConfig(envService *env.EnvService) (di.Config, error) {
	provider := envService.GetWithDefault("LLM_PROVIDER", di.ProviderOpenAI)

	var apiKey, model string
	switch provider {
	case di.ProviderOpenAI:
		apiKey = envService.Get("OPENAI_API_KEY")
		model = envService.Get("LLM_MODEL")
	case di.ProviderOpenRouter:
		apiKey = envService.Get("OPENROUTER_API_KEY")
		model = envService.Get("LLM_MODEL")
		if model == "" {
			return di.Config{}, errors.New("LLM_MODEL is required for openrouter")
		}
	default:
		return di.Config{}, fmt.Errorf("unknown LLM_PROVIDER %q", provider)
	}
	if apiKey == "" {
		return di.Config{}, fmt.Errorf("api key for provider %q is not set", provider)
	}

	execCfg := executor.DefaultConfig()
	execCfg.MaxIterations = envService.GetInt("AGENT_MAX_ITERATIONS", execCfg.MaxIterations)
	execCfg.MaxParseRetries = envService.GetInt("AGENT_MAX_PARSE_RETRIES", execCfg.MaxParseRetries)

	retryCfg := retry.DefaultConfig()
	retryCfg.MaxRetries = envService.GetInt("LLM_MAX_RETRIES", retryCfg.MaxRetries)
	retryCfg.Timeout = envService.GetDuration("LLM_TIMEOUT", retryCfg.Timeout)

	return di.Config{
		Provider: provider,
		APIKey:   apiKey,
		Model:    model,
		BaseURL:  envService.Get("LLM_BASE_URL"),
		Executor: execCfg,
		Retry:    retryCfg,
		LogDir:   envService.GetWithDefault("LOG_DIR", "log"),
		LogLevel: envService.GetWithDefault("LOG_LEVEL", "info"),
		TaskName: "react",
	}, nil
}

// readQuestion takes the question from the arguments, or prompts for it.
// An empty answer selects the default question.
func readQuestion(args []string) (string, error) {
	if q := strings.TrimSpace(strings.Join(args, " ")); q != "" {
		return q, nil
	}

	rl, err := readline.New(color.CyanString("Question [%s]: ", defaultQuestion))
	if err != nil {
		return "", fmt.Errorf("failed to create readline: %w", err)
	}
	defer rl.Close()

	line, err := rl.Readline()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return defaultQuestion, nil
		}
		return "", fmt.Errorf("failed to read input: %w", err)
	}

	if q := strings.TrimSpace(line); q != "" {
		return q, nil
	}
	return defaultQuestion, nil
}
