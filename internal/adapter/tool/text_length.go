package tool

import (
	"context"
	"strconv"
	"strings"
	"unicode/utf8"

	"react-agent/internal/application/port/output"
	"react-agent/internal/domain/entity"

	"github.com/tmc/langchaingo/tools"
)

var (
	_ output.ToolPort = (*TextLengthTool)(nil)
	_ tools.Tool      = (*TextLengthTool)(nil)
)

type TextLengthTool struct {
	logger output.LoggerPort
}

func NewTextLengthTool(logger output.LoggerPort) *TextLengthTool {
	return &TextLengthTool{logger: logger}
}

func (t *TextLengthTool) Name() string { return entity.ToolGetTextLength.String() }

func (t *TextLengthTool) Description() string {
	return "Returns the length of a text by characters"
}

// Call counts characters after dropping the newlines and double quotes the
// model tends to wrap its input in.
func (t *TextLengthTool) Call(ctx context.Context, input string) (string, error) {
	t.logger.Debug("get_text_length called", "input", input)

	text := strings.Trim(strings.Trim(input, "\n"), `"`)
	return strconv.Itoa(utf8.RuneCountInString(text)), nil
}
