package llm

import (
	"context"
)

// Request is a single-turn completion: an optional system instruction and the
// user prompt.
type Request struct {
	System      string
	Prompt      string
	Temperature float32
	MaxTokens   int
}

// Client is implemented by every provider adapter.
type Client interface {
	Complete(ctx context.Context, req Request) (string, error)
}
