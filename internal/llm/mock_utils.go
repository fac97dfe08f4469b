package llm

import (
	"context"
)

// MockClient replays canned completions and records the requests it saw.
type MockClient struct {
	Response      string
	ResponseQueue []string
	Err           error
	Requests      []Request
}

func (m *MockClient) Complete(ctx context.Context, req Request) (string, error) {
	m.Requests = append(m.Requests, req)
	if m.Err != nil {
		return "", m.Err
	}
	if len(m.ResponseQueue) > 0 {
		resp := m.ResponseQueue[0]
		m.ResponseQueue = m.ResponseQueue[1:]
		return resp, nil
	}
	return m.Response, nil
}
