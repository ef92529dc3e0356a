package knowledge

import (
	"context"
	"sync"
)

// Mock implements Source for testing.
type Mock struct {
	// SummaryFunc is called when Summary is invoked.
	// If nil, returns ErrNotFound.
	SummaryFunc func(ctx context.Context, topic string, sentences int) (string, error)

	mu     sync.Mutex
	topics []string
}

// Summary records the topic and calls SummaryFunc.
func (m *Mock) Summary(ctx context.Context, topic string, sentences int) (string, error) {
	m.mu.Lock()
	m.topics = append(m.topics, topic)
	m.mu.Unlock()
	if m.SummaryFunc != nil {
		return m.SummaryFunc(ctx, topic, sentences)
	}
	return "", ErrNotFound
}

// Topics returns every topic passed to Summary, in order.
func (m *Mock) Topics() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.topics))
	copy(out, m.topics)
	return out
}

// Verify Mock implements Source at compile time.
var _ Source = (*Mock)(nil)
