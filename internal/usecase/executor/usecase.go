package executor

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"react-agent/internal/application/port/input"
	"react-agent/internal/application/port/output"
	"react-agent/internal/application/service"
	"react-agent/internal/domain/entity"
)

var _ input.TaskExecutor = (*UseCase)(nil)

const (
	defaultMaxIterations     = 15
	defaultMaxParseRetries   = 1
	defaultMaxObservationLen = 20000
)

// DefaultStopSequences keep the model from hallucinating its own observations.
var DefaultStopSequences = []string{"\nObservation", "Observation"}

type Config struct {
	MaxIterations     int
	MaxParseRetries   int
	MaxObservationLen int
	StopSequences     []string
	Temperature       float64
}

func DefaultConfig() Config {
	return Config{
		MaxIterations:     defaultMaxIterations,
		MaxParseRetries:   defaultMaxParseRetries,
		MaxObservationLen: defaultMaxObservationLen,
		StopSequences:     DefaultStopSequences,
		Temperature:       0.0,
	}
}

type UseCase struct {
	llm             output.LLMPort
	tools           output.ToolRegistry
	prompt          output.PromptFormatter
	userInteraction output.UserInteractionPort
	logger          output.LoggerPort
	cfg             Config
}

func New(
	llm output.LLMPort,
	tools output.ToolRegistry,
	prompt output.PromptFormatter,
	userInteraction output.UserInteractionPort,
	logger output.LoggerPort,
	cfg Config,
) *UseCase {
	if cfg.MaxIterations <= 0 {
		cfg.MaxIterations = defaultMaxIterations
	}
	if cfg.MaxParseRetries < 0 {
		cfg.MaxParseRetries = 0
	}
	if cfg.MaxObservationLen <= 0 {
		cfg.MaxObservationLen = defaultMaxObservationLen
	}
	if cfg.StopSequences == nil {
		cfg.StopSequences = DefaultStopSequences
	}

	return &UseCase{
		llm:             llm,
		tools:           tools,
		prompt:          prompt,
		userInteraction: userInteraction,
		logger:          logger,
		cfg:             cfg,
	}
}

func (uc *UseCase) Execute(ctx context.Context, question string) (*input.ExecuteResult, error) {
	var transcript []entity.TranscriptEntry

	uc.logger.Info("Agent started", "question", question, "maxIterations", uc.cfg.MaxIterations)

	for iteration := 1; iteration <= uc.cfg.MaxIterations; iteration++ {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("agent canceled at iteration %d: %w", iteration, err)
		}

		uc.userInteraction.ShowIteration(ctx, iteration, uc.cfg.MaxIterations)
		uc.logger.Debug("Starting iteration", "iteration", iteration, "transcriptLen", len(transcript))

		step, err := uc.nextStep(ctx, question, service.FormatScratchpad(transcript))
		if err != nil {
			return nil, err
		}

		switch s := step.(type) {
		case entity.AgentFinish:
			uc.userInteraction.ShowFinalAnswer(ctx, s.Output)
			uc.logger.Info("Agent finished", "iterations", iteration, "answer", s.Output)
			return &input.ExecuteResult{
				FinalAnswer: s.Output,
				Iterations:  iteration,
				Transcript:  transcript,
			}, nil

		case entity.AgentAction:
			uc.userInteraction.ShowThinking(ctx, s.Log)

			tool, err := uc.tools.Get(s.Tool)
			if err != nil {
				uc.logger.Error("Unknown tool requested", "name", s.Tool, "error", err)
				return nil, err
			}

			observation := uc.executeTool(ctx, tool, s)
			transcript = append(transcript, entity.TranscriptEntry{
				Action:      s,
				Observation: observation,
			})

		default:
			return nil, fmt.Errorf("unexpected step type %T", step)
		}
	}

	uc.logger.Warn("Iteration limit reached", "maxIterations", uc.cfg.MaxIterations)
	return nil, &entity.IterationLimitError{MaxIterations: uc.cfg.MaxIterations}
}

// nextStep asks the model for a step. Malformed output is shown back to the
// model with the parse failure as its observation before giving up.
func (uc *UseCase) nextStep(ctx context.Context, question, scratchpad string) (entity.Step, error) {
	correction := ""

	for attempt := 0; ; attempt++ {
		prompt, err := uc.prompt.Format(question, scratchpad+correction)
		if err != nil {
			return nil, fmt.Errorf("format prompt: %w", err)
		}

		resp, err := uc.llm.Complete(ctx, output.CompletionRequest{
			Prompt:        prompt,
			StopSequences: uc.cfg.StopSequences,
			Temperature:   uc.cfg.Temperature,
		})
		if err != nil {
			return nil, fmt.Errorf("llm request failed: %w", err)
		}

		step, err := service.ParseStep(resp.Text)
		if err == nil {
			return step, nil
		}

		var parseErr *entity.ParseError
		if !errors.As(err, &parseErr) || attempt >= uc.cfg.MaxParseRetries {
			uc.logger.Error("Unparseable llm output", "output", resp.Text, "error", err)
			return nil, err
		}

		uc.logger.Warn("Retrying after unparseable llm output", "attempt", attempt+1, "reason", parseErr.Reason)
		correction = resp.Text + "\n" + service.ObservationPrefix + parseErr.Reason + "\n" + service.ThoughtPrefix
	}
}

func (uc *UseCase) executeTool(ctx context.Context, tool output.ToolPort, action entity.AgentAction) string {
	uc.userInteraction.ShowToolStart(ctx, tool.Name(), action.ToolInput)
	uc.logger.Info("Executing tool", "name", tool.Name(), "input", action.ToolInput)

	result, err := tool.Call(ctx, action.ToolInput)
	if err != nil {
		uc.logger.Error("Tool execution failed", "name", tool.Name(), "error", err)
		observation := "Error: " + err.Error()
		uc.userInteraction.ShowToolResult(ctx, tool.Name(), observation, true)
		return observation
	}

	result = truncateRunes(result, uc.cfg.MaxObservationLen)

	uc.userInteraction.ShowToolResult(ctx, tool.Name(), result, false)
	uc.logger.Debug("Tool completed", "name", tool.Name(), "resultLen", len(result))
	return result
}

// truncateRunes keeps at most maxLen characters without splitting a rune.
func truncateRunes(s string, maxLen int) string {
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	runes := []rune(s)
	return string(runes[:maxLen]) + "\n... (truncated)"
}
