package output

import (
	"context"
)

type LLMPort interface {
	Complete(ctx context.Context, req CompletionRequest) (*CompletionResponse, error)
}

type CompletionRequest struct {
	Prompt        string
	StopSequences []string
	Temperature   float64
}

type CompletionResponse struct {
	Text string
}
