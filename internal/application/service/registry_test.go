package service

import (
	"context"
	"errors"
	"testing"

	"react-agent/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubTool struct {
	name        string
	description string
}

func (s *stubTool) Name() string        { return s.name }
func (s *stubTool) Description() string { return s.description }
func (s *stubTool) Call(ctx context.Context, input string) (string, error) {
	return input, nil
}

func TestToolRegistry_RegisterAndGet(t *testing.T) {
	registry := NewToolRegistry()
	tool := &stubTool{name: "get_text_length", description: "Returns the length of a text by characters"}

	require.NoError(t, registry.Register(tool))

	got, err := registry.Get(entity.ToolGetTextLength)
	require.NoError(t, err)
	assert.Same(t, tool, got)
}

func TestToolRegistry_DuplicateName(t *testing.T) {
	registry := NewToolRegistry()
	require.NoError(t, registry.Register(&stubTool{name: "echo"}))

	err := registry.Register(&stubTool{name: "echo", description: "other"})

	var dupErr *entity.DuplicateToolError
	require.ErrorAs(t, err, &dupErr)
	assert.Equal(t, entity.ToolName("echo"), dupErr.Name)
	assert.Len(t, registry.All(), 1)
}

func TestToolRegistry_GetUnknown(t *testing.T) {
	registry := NewToolRegistry()
	require.NoError(t, registry.Register(&stubTool{name: "echo"}))

	got, err := registry.Get("missing")

	assert.Nil(t, got)
	var notFound *entity.ToolNotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, entity.ToolName("missing"), notFound.Name)
	assert.Equal(t, `tool "missing" not found`, err.Error())
}

func TestToolRegistry_RegistrationOrder(t *testing.T) {
	registry := NewToolRegistry()
	for _, name := range []string{"zeta", "alpha", "mid"} {
		require.NoError(t, registry.Register(&stubTool{name: name, description: name + " tool"}))
	}

	assert.Equal(t, []string{"zeta", "alpha", "mid"}, registry.Names())
	assert.Equal(t, "zeta - zeta tool\nalpha - alpha tool\nmid - mid tool", registry.Describe())

	all := registry.All()
	require.Len(t, all, 3)
	assert.Equal(t, "zeta", all[0].Name())
	assert.Equal(t, "mid", all[2].Name())
}

func TestToolRegistry_Empty(t *testing.T) {
	registry := NewToolRegistry()

	assert.Empty(t, registry.Describe())
	assert.Empty(t, registry.Names())
	assert.Empty(t, registry.All())
}
