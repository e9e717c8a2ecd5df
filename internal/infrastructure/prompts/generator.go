package prompts

import (
	"fmt"
	"strings"

	"react-agent/internal/application/port/output"

	"github.com/tmc/langchaingo/prompts"
)

var _ output.PromptFormatter = (*ReActPromptFormatter)(nil)

const (
	varTools      = "tools"
	varToolNames  = "tool_names"
	varInput      = "input"
	varScratchpad = "agent_scratchpad"
)

// ReActPromptFormatter renders an f-string template whose tool section is
// fixed at construction time.
type ReActPromptFormatter struct {
	template prompts.PromptTemplate
}

func GenerateReActPrompt(baseTemplate string, tools output.ToolRegistry) (*ReActPromptFormatter, error) {
	for _, v := range []string{varInput, varScratchpad} {
		if !strings.Contains(baseTemplate, "{"+v+"}") {
			return nil, fmt.Errorf("template is missing {%s}", v)
		}
	}

	return &ReActPromptFormatter{
		template: prompts.PromptTemplate{
			Template:       baseTemplate,
			TemplateFormat: prompts.TemplateFormatFString,
			InputVariables: []string{varInput, varScratchpad},
			PartialVariables: map[string]any{
				varTools:     tools.Describe(),
				varToolNames: strings.Join(tools.Names(), ", "),
			},
		},
	}, nil
}

func (f *ReActPromptFormatter) Format(question, scratchpad string) (string, error) {
	prompt, err := f.template.Format(map[string]any{
		varInput:      question,
		varScratchpad: scratchpad,
	})
	if err != nil {
		return "", fmt.Errorf("render react prompt: %w", err)
	}
	return prompt, nil
}
