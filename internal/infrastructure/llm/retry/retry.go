package retry

import (
	"context"
	"fmt"
	"time"

	"react-agent/internal/application/port/output"
	"react-agent/internal/domain/entity"

	"github.com/cenkalti/backoff/v4"
)

var _ output.LLMPort = (*LLM)(nil)

const opComplete = "llm completion"

type Config struct {
	// MaxRetries is the number of attempts after the first failure.
	MaxRetries     int
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
	// Timeout bounds a single attempt. Zero disables it.
	Timeout time.Duration
}

func DefaultConfig() Config {
	return Config{
		MaxRetries:     3,
		InitialBackoff: 500 * time.Millisecond,
		MaxBackoff:     10 * time.Second,
		Timeout:        60 * time.Second,
	}
}

// LLM retries a wrapped LLMPort with exponential backoff. Failures that
// survive every attempt come back as *entity.ExternalCallError.
type LLM struct {
	next   output.LLMPort
	cfg    Config
	logger output.LoggerPort
}

func New(next output.LLMPort, cfg Config, logger output.LoggerPort) *LLM {
	if cfg.MaxRetries < 0 {
		cfg.MaxRetries = 0
	}
	return &LLM{
		next:   next,
		cfg:    cfg,
		logger: logger,
	}
}

func (r *LLM) Complete(ctx context.Context, req output.CompletionRequest) (*output.CompletionResponse, error) {
	attempts := 0

	operation := func() (*output.CompletionResponse, error) {
		attempts++

		callCtx, cancel := r.attemptContext(ctx)
		defer cancel()

		resp, err := r.next.Complete(callCtx, req)
		if err == nil {
			return resp, nil
		}
		// The caller gave up; nothing left to retry for.
		if ctx.Err() != nil {
			return nil, backoff.Permanent(err)
		}
		return nil, err
	}

	notify := func(err error, wait time.Duration) {
		r.logger.Warn("LLM call failed, retrying", "attempt", attempts, "wait", wait.String(), "error", err)
	}

	resp, err := backoff.RetryNotifyWithData(operation, r.backOff(ctx), notify)
	if err == nil {
		return resp, nil
	}

	if ctx.Err() != nil {
		return nil, fmt.Errorf("%s interrupted after %d attempt(s): %w", opComplete, attempts, ctx.Err())
	}

	r.logger.Error("LLM call failed", "attempts", attempts, "error", err)
	return nil, &entity.ExternalCallError{Op: opComplete, Attempts: attempts, Err: err}
}

func (r *LLM) attemptContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if r.cfg.Timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, r.cfg.Timeout)
}

func (r *LLM) backOff(ctx context.Context) backoff.BackOff {
	exp := backoff.NewExponentialBackOff()
	if r.cfg.InitialBackoff > 0 {
		exp.InitialInterval = r.cfg.InitialBackoff
	}
	if r.cfg.MaxBackoff > 0 {
		exp.MaxInterval = r.cfg.MaxBackoff
	}
	exp.MaxElapsedTime = 0

	return backoff.WithContext(backoff.WithMaxRetries(exp, uint64(r.cfg.MaxRetries)), ctx)
}
