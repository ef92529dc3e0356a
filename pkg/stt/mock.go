package stt

import (
	"context"
	"sync"
)

// Mock implements Recognizer for testing.
// All methods can be customized via function fields.
type Mock struct {
	// ListenFunc is called when Listen is invoked.
	// If nil, returns ErrNoSpeech.
	ListenFunc func(ctx context.Context, opts ListenOptions) (string, error)

	// CloseFunc is called when Close is invoked. If nil, returns nil.
	CloseFunc func() error

	mu       sync.Mutex
	language string
	listens  []ListenOptions
	closed   bool
}

// NewMock returns a mock whose Listen replies with the given utterances in
// order; a nil entry stands for ErrNoSpeech, and the sequence repeats
// ErrNoSpeech once exhausted.
func NewMock(utterances ...*string) *Mock {
	var i int
	var mu sync.Mutex
	return &Mock{
		ListenFunc: func(ctx context.Context, opts ListenOptions) (string, error) {
			mu.Lock()
			defer mu.Unlock()
			if i >= len(utterances) {
				return "", ErrNoSpeech
			}
			u := utterances[i]
			i++
			if u == nil {
				return "", ErrNoSpeech
			}
			return *u, nil
		},
	}
}

// Listen calls ListenFunc and records the options.
func (m *Mock) Listen(ctx context.Context, opts ListenOptions) (string, error) {
	m.mu.Lock()
	m.listens = append(m.listens, opts)
	m.mu.Unlock()
	if m.ListenFunc != nil {
		return m.ListenFunc(ctx, opts)
	}
	return "", ErrNoSpeech
}

// SetLanguage records the language code.
func (m *Mock) SetLanguage(code string) {
	m.mu.Lock()
	m.language = code
	m.mu.Unlock()
}

// Language returns the last code passed to SetLanguage.
func (m *Mock) Language() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.language
}

// Listens returns the recorded Listen options.
func (m *Mock) Listens() []ListenOptions {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]ListenOptions, len(m.listens))
	copy(out, m.listens)
	return out
}

// Close calls CloseFunc and marks the mock closed.
func (m *Mock) Close() error {
	m.mu.Lock()
	m.closed = true
	m.mu.Unlock()
	if m.CloseFunc != nil {
		return m.CloseFunc()
	}
	return nil
}

// Closed reports whether Close was called.
func (m *Mock) Closed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closed
}

// Verify Mock implements Recognizer at compile time.
var _ Recognizer = (*Mock)(nil)
