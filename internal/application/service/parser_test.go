package service

import (
	"testing"

	"react-agent/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStep_FinalAnswer(t *testing.T) {
	step, err := ParseStep("Thought: I now know the final answer\nFinal Answer: 42")
	require.NoError(t, err)

	finish, ok := step.(entity.AgentFinish)
	require.True(t, ok, "expected AgentFinish, got %T", step)
	assert.Equal(t, "42", finish.Output)
	assert.Equal(t, "Thought: I now know the final answer\nFinal Answer: 42", finish.Log)
}

func TestParseStep_FinalAnswerWinsOverAction(t *testing.T) {
	text := "Action: get_text_length\nAction Input: \"DOG\"\nFinal Answer: 42"

	step, err := ParseStep(text)
	require.NoError(t, err)

	_, isAction := step.(entity.AgentAction)
	assert.False(t, isAction)
	assert.Equal(t, entity.AgentFinish{Output: "42", Log: text}, step)
}

func TestParseStep_MultilineFinalAnswer(t *testing.T) {
	step, err := ParseStep("Final Answer:  The string DOG\nhas 3 characters.  \n")
	require.NoError(t, err)
	assert.Equal(t, "The string DOG\nhas 3 characters.", step.(entity.AgentFinish).Output)
}

func TestParseStep_RepeatedFinalAnswerUsesLast(t *testing.T) {
	text := "Final Answer: maybe 4\nThought: let me recount\nFinal Answer: 3"

	step, err := ParseStep(text)
	require.NoError(t, err)
	assert.Equal(t, entity.AgentFinish{Output: "3", Log: text}, step)
}

func TestParseStep_Action(t *testing.T) {
	text := "I should count the characters.\nAction: get_text_length\nAction Input: \"DOG\""

	step, err := ParseStep(text)
	require.NoError(t, err)

	action, ok := step.(entity.AgentAction)
	require.True(t, ok, "expected AgentAction, got %T", step)
	assert.Equal(t, entity.ToolGetTextLength, action.Tool)
	assert.Equal(t, `"DOG"`, action.ToolInput)
	assert.Equal(t, text+"\n", action.Log)
}

func TestParseStep_ActionVariants(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		wantTool  entity.ToolName
		wantInput string
		wantLog   string
	}{
		{
			name:      "bare",
			text:      "Action: get_text_length\nAction Input: \"DOG\"",
			wantTool:  "get_text_length",
			wantInput: `"DOG"`,
			wantLog:   "Action: get_text_length\nAction Input: \"DOG\"\n",
		},
		{
			name:      "trailing whitespace",
			text:      "Action:   get_text_length  \nAction Input:   DOG  \n\n",
			wantTool:  "get_text_length",
			wantInput: "DOG",
			wantLog:   "Action:   get_text_length  \nAction Input:   DOG\n",
		},
		{
			name:      "numbered markers",
			text:      "Action 1: get_text_length\nAction 1 Input 1: cat",
			wantTool:  "get_text_length",
			wantInput: "cat",
			wantLog:   "Action 1: get_text_length\nAction 1 Input 1: cat\n",
		},
		{
			name:      "leaked observation is cut",
			text:      "Action: get_text_length\nAction Input: DOG\nObservation: 3",
			wantTool:  "get_text_length",
			wantInput: "DOG",
			wantLog:   "Action: get_text_length\nAction Input: DOG\n",
		},
		{
			name:      "multiline input",
			text:      "Action: get_text_length\nAction Input: line one\nline two",
			wantTool:  "get_text_length",
			wantInput: "line one\nline two",
			wantLog:   "Action: get_text_length\nAction Input: line one\nline two\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			step, err := ParseStep(tt.text)
			require.NoError(t, err)

			action, ok := step.(entity.AgentAction)
			require.True(t, ok, "expected AgentAction, got %T", step)
			assert.Equal(t, tt.wantTool, action.Tool)
			assert.Equal(t, tt.wantInput, action.ToolInput)
			assert.Equal(t, tt.wantLog, action.Log)
		})
	}
}

func TestParseStep_Errors(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		wantReason string
	}{
		{name: "plain prose", text: "I am not sure what to do.", wantReason: MissingActionReason},
		{name: "empty", text: "", wantReason: MissingActionReason},
		{name: "input without action", text: "Action Input: DOG", wantReason: MissingActionReason},
		{name: "action without input", text: "Thought: hmm\nAction: get_text_length", wantReason: MissingActionInputReason},
		{name: "empty tool name", text: "Action: \nAction Input: DOG", wantReason: MissingActionReason},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			step, err := ParseStep(tt.text)
			assert.Nil(t, step)

			var parseErr *entity.ParseError
			require.ErrorAs(t, err, &parseErr)
			assert.Equal(t, tt.wantReason, parseErr.Reason)
			assert.Equal(t, tt.text, parseErr.Output)
		})
	}
}
