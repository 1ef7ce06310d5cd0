package services

import "context"

// ScoreBackend is one external LLM provider/model pair. Complete sends a
// single prompt and returns the raw text completion. One attempt, no retry;
// any transport or API failure comes back as *BackendUnavailable so the
// caller owns the fallback policy.
type ScoreBackend interface {
	Name() string
	Complete(ctx context.Context, prompt string) (string, error)
}
