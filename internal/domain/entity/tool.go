package entity

type ToolName string

const (
	ToolGetTextLength ToolName = "get_text_length"
)

func (t ToolName) String() string {
	return string(t)
}
