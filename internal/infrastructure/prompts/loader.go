package prompts

import (
	_ "embed"
	"strings"
)

//go:embed react.txt
var reactTemplate string

// ReActPrompt ends with the scratchpad so the model continues right after it.
var ReActPrompt = strings.TrimRight(reactTemplate, "\n")
