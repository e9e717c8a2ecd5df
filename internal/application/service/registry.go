package service

import (
	"strings"

	"react-agent/internal/application/port/output"
	"react-agent/internal/domain/entity"
)

var _ output.ToolRegistry = (*ToolRegistryImpl)(nil)

type ToolRegistryImpl struct {
	tools map[entity.ToolName]output.ToolPort
	order []entity.ToolName
}

func NewToolRegistry() *ToolRegistryImpl {
	return &ToolRegistryImpl{
		tools: make(map[entity.ToolName]output.ToolPort),
	}
}

func (r *ToolRegistryImpl) Register(tool output.ToolPort) error {
	name := entity.ToolName(tool.Name())
	if _, ok := r.tools[name]; ok {
		return &entity.DuplicateToolError{Name: name}
	}
	r.tools[name] = tool
	r.order = append(r.order, name)
	return nil
}

func (r *ToolRegistryImpl) Get(name entity.ToolName) (output.ToolPort, error) {
	tool, ok := r.tools[name]
	if !ok {
		return nil, &entity.ToolNotFoundError{Name: name}
	}
	return tool, nil
}

// All returns the tools in registration order.
func (r *ToolRegistryImpl) All() []output.ToolPort {
	result := make([]output.ToolPort, 0, len(r.order))
	for _, name := range r.order {
		result = append(result, r.tools[name])
	}
	return result
}

func (r *ToolRegistryImpl) Names() []string {
	result := make([]string, 0, len(r.order))
	for _, name := range r.order {
		result = append(result, name.String())
	}
	return result
}

// Describe renders one "name - description" line per tool for the prompt.
func (r *ToolRegistryImpl) Describe() string {
	lines := make([]string, 0, len(r.order))
	for _, tool := range r.All() {
		lines = append(lines, tool.Name()+" - "+tool.Description())
	}
	return strings.Join(lines, "\n")
}
