package input

import (
	"context"

	"react-agent/internal/domain/entity"
)

type ExecuteResult struct {
	FinalAnswer string
	Iterations  int
	Transcript  []entity.TranscriptEntry
}

type TaskExecutor interface {
	Execute(ctx context.Context, question string) (*ExecuteResult, error)
}
