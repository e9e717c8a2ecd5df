package entity

import "fmt"

type ToolNotFoundError struct {
	Name ToolName
}

func (e *ToolNotFoundError) Error() string {
	return fmt.Sprintf("tool %q not found", string(e.Name))
}

type DuplicateToolError struct {
	Name ToolName
}

func (e *DuplicateToolError) Error() string {
	return fmt.Sprintf("tool %q already registered", string(e.Name))
}

// ParseError reports LLM output that matches neither the final answer nor
// the action grammar.
type ParseError struct {
	Output string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("could not parse llm output: %s", e.Reason)
}

// ExternalCallError wraps the last failure of a call to an external
// collaborator after all retries were spent.
type ExternalCallError struct {
	Op       string
	Attempts int
	Err      error
}

func (e *ExternalCallError) Error() string {
	return fmt.Sprintf("%s failed after %d attempt(s): %v", e.Op, e.Attempts, e.Err)
}

func (e *ExternalCallError) Unwrap() error {
	return e.Err
}

type IterationLimitError struct {
	MaxIterations int
}

func (e *IterationLimitError) Error() string {
	return fmt.Sprintf("max iterations (%d) exceeded", e.MaxIterations)
}
