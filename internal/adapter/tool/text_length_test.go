package tool

import (
	"context"
	"testing"

	"react-agent/internal/infrastructure/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextLengthTool_Metadata(t *testing.T) {
	tool := NewTextLengthTool(logger.NewNopLogger())

	assert.Equal(t, "get_text_length", tool.Name())
	assert.Equal(t, "Returns the length of a text by characters", tool.Description())
}

func TestTextLengthTool_Call(t *testing.T) {
	tool := NewTextLengthTool(logger.NewNopLogger())

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "quoted", input: `"DOG"`, want: "3"},
		{name: "plain", input: "DOG", want: "3"},
		{name: "trailing newline", input: "\"DOG\"\n", want: "3"},
		{name: "inner spaces kept", input: `"hot dog"`, want: "7"},
		{name: "empty", input: "", want: "0"},
		{name: "multibyte", input: `"héllo"`, want: "5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tool.Call(context.Background(), tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
