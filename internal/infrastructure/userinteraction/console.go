package userinteraction

import (
	"context"
	"io"
	"strings"

	"react-agent/internal/application/port/output"

	"github.com/fatih/color"
)

var _ output.UserInteractionPort = (*ConsoleUserInteraction)(nil)

const (
	maxThinkingLen = 500
	maxResultLen   = 300
)

type ConsoleUserInteraction struct {
	out io.Writer
}

func NewConsoleUserInteraction() *ConsoleUserInteraction {
	return NewConsoleUserInteractionWithWriter(color.Output)
}

func NewConsoleUserInteractionWithWriter(out io.Writer) *ConsoleUserInteraction {
	return &ConsoleUserInteraction{out: out}
}

func (u *ConsoleUserInteraction) ShowIteration(ctx context.Context, iteration, maxIterations int) {
	cyan := color.New(color.FgCyan, color.Bold)
	cyan.Fprintf(u.out, "\n━━━ Iteration %d/%d ━━━\n", iteration, maxIterations)
}

func (u *ConsoleUserInteraction) ShowThinking(ctx context.Context, content string) {
	content = strings.TrimSpace(content)
	if content == "" {
		return
	}

	blue := color.New(color.FgBlue)
	blue.Fprint(u.out, "\n💭 Thought: ")

	dim := color.New(color.Faint)
	dim.Fprintln(u.out, truncate(content, maxThinkingLen))
}

func (u *ConsoleUserInteraction) ShowToolStart(ctx context.Context, toolName, input string) {
	yellow := color.New(color.FgYellow, color.Bold)
	yellow.Fprintf(u.out, "\n🔧 %s\n", toolName)

	if input != "" {
		dim := color.New(color.Faint)
		dim.Fprintf(u.out, "   input: %s\n", truncate(input, maxResultLen))
	}
}

func (u *ConsoleUserInteraction) ShowToolResult(ctx context.Context, toolName, result string, isError bool) {
	if isError {
		red := color.New(color.FgRed)
		red.Fprint(u.out, "❌ ")

		dim := color.New(color.Faint)
		dim.Fprintln(u.out, truncate(result, maxResultLen))
		return
	}

	green := color.New(color.FgGreen)
	green.Fprintf(u.out, "✓ Observation: %s\n", truncate(result, maxResultLen))
}

func (u *ConsoleUserInteraction) ShowFinalAnswer(ctx context.Context, answer string) {
	green := color.New(color.FgGreen, color.Bold)
	green.Fprintf(u.out, "\n🏁 Final Answer: %s\n", answer)
}

func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen]) + "..."
}
