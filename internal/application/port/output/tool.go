package output

import (
	"context"

	"react-agent/internal/domain/entity"
)

// ToolPort has the same method set as langchaingo's tools.Tool.
type ToolPort interface {
	Name() string
	Description() string
	Call(ctx context.Context, input string) (string, error)
}

type ToolRegistry interface {
	Register(tool ToolPort) error
	Get(name entity.ToolName) (ToolPort, error)
	All() []ToolPort
	Names() []string
	Describe() string
}
