package core

import (
	"context"

	"github.com/agenthands/cardsmith/internal/classifier"
)

type MockClassifier struct {
	Result classifier.Result
	Err    error
	Panic  bool
	Inputs []classifier.Input
}

func (m *MockClassifier) Classify(ctx context.Context, in classifier.Input) (classifier.Result, error) {
	m.Inputs = append(m.Inputs, in)
	if m.Panic {
		panic("classifier exploded")
	}
	if m.Err != nil {
		return classifier.Result{}, m.Err
	}
	return m.Result, nil
}

// BlockingClassifier waits for the context to end.
type BlockingClassifier struct{}

func (BlockingClassifier) Classify(ctx context.Context, in classifier.Input) (classifier.Result, error) {
	<-ctx.Done()
	return classifier.Result{}, ctx.Err()
}
