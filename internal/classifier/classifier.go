package classifier

import (
	"context"
)

// FallbackReasoning marks results produced without a usable classification.
const FallbackReasoning = "fallback"

// Input is everything the classifier sees about a request.
type Input struct {
	Query string
	// Context is the screen summary; empty when the request carried no screen.
	Context string
	// CurrentDate is rendered as "2006-01-02 (Monday)".
	CurrentDate string
}

// Result is the classifier's answer. None of it is trusted downstream.
type Result struct {
	CardType   string         `json:"card_type"`
	Parameters map[string]any `json:"parameters"`
	Reasoning  string         `json:"reasoning"`
}

type Classifier interface {
	Classify(ctx context.Context, in Input) (Result, error)
}

// Fallback is the safe default used whenever classification fails.
func Fallback(query string) Result {
	return Result{
		CardType:   "InfoCard",
		Parameters: map[string]any{"query": query},
		Reasoning:  FallbackReasoning,
	}
}
