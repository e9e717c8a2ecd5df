package langchain

import (
	"context"
	"strings"

	"react-agent/internal/application/port/output"

	"github.com/tmc/langchaingo/callbacks"
	"github.com/tmc/langchaingo/llms"
)

var _ callbacks.Handler = (*CallbackHandler)(nil)

// CallbackHandler logs what goes to and comes back from the model.
type CallbackHandler struct {
	callbacks.SimpleHandler
	logger output.LoggerPort
}

func NewCallbackHandler(logger output.LoggerPort) *CallbackHandler {
	return &CallbackHandler{logger: logger.WithField("component", "llm")}
}

func (h *CallbackHandler) HandleLLMGenerateContentStart(_ context.Context, ms []llms.MessageContent) {
	h.logger.Info("Prompt to LLM", "prompt", messagesText(ms))
}

func (h *CallbackHandler) HandleLLMGenerateContentEnd(_ context.Context, res *llms.ContentResponse) {
	if res == nil || len(res.Choices) == 0 {
		h.logger.Warn("LLM returned no choices")
		return
	}
	h.logger.Info("LLM response", "response", res.Choices[0].Content, "stopReason", res.Choices[0].StopReason)
}

func (h *CallbackHandler) HandleLLMError(_ context.Context, err error) {
	h.logger.Error("LLM error", "error", err)
}

func messagesText(ms []llms.MessageContent) string {
	var b strings.Builder
	for _, m := range ms {
		for _, part := range m.Parts {
			if text, ok := part.(llms.TextContent); ok {
				b.WriteString(text.Text)
			}
		}
	}
	return b.String()
}
