package llm

import (
	"context"
	"log/slog"
	"time"
)

const (
	defaultAttempts = 2
	defaultBackoff  = 500 * time.Millisecond
)

type RetryOptions struct {
	Attempts int
	Backoff  time.Duration
}

// RetryingGenerator calls its Completer up to Attempts times, sleeping a fixed
// Backoff before each retry, and gives up with ok == false.
type RetryingGenerator struct {
	completer Completer
	attempts  int
	backoff   time.Duration
}

var _ Generator = (*RetryingGenerator)(nil)

func NewRetryingGenerator(completer Completer, opts RetryOptions) *RetryingGenerator {
	if opts.Attempts <= 0 {
		opts.Attempts = defaultAttempts
	}
	if opts.Backoff <= 0 {
		opts.Backoff = defaultBackoff
	}

	return &RetryingGenerator{
		completer: completer,
		attempts:  opts.Attempts,
		backoff:   opts.Backoff,
	}
}

func (g *RetryingGenerator) Generate(ctx context.Context, messages []Message, temperature float32, model string, seed int) (string, bool) {
	for attempt := 1; attempt <= g.attempts; attempt++ {
		slog.Debug("calling model", "model", model, "attempt", attempt)

		response, err := g.completer.Complete(ctx, messages, temperature, model, seed)
		if err == nil {
			slog.Debug("model response", "response", response)
			return response, true
		}

		slog.Error("failed to call model", "model", model, "attempt", attempt, "error", err)

		if attempt == g.attempts {
			break
		}

		select {
		case <-time.After(g.backoff):
		case <-ctx.Done():
			return "", false
		}
	}

	return "", false
}
