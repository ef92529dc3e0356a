package tts

import (
	"context"
	"sync"
)

// Mock implements Speaker for testing.
// All methods can be customized via function fields.
type Mock struct {
	// SpeakFunc is called when Speak is invoked. If nil, returns nil.
	SpeakFunc func(ctx context.Context, text string) error

	// CloseFunc is called when Close is invoked. If nil, returns nil.
	CloseFunc func() error

	mu       sync.Mutex
	language string
	spoken   []string
	closed   bool
}

// NewMock creates a mock speaker that records everything it is asked to say.
func NewMock() *Mock { return &Mock{} }

// WithSpeakError returns a mock whose Speak always fails with err.
func WithSpeakError(err error) *Mock {
	return &Mock{
		SpeakFunc: func(ctx context.Context, text string) error { return err },
	}
}

// Speak records the text and calls SpeakFunc.
func (m *Mock) Speak(ctx context.Context, text string) error {
	m.mu.Lock()
	m.spoken = append(m.spoken, text)
	m.mu.Unlock()
	if m.SpeakFunc != nil {
		return m.SpeakFunc(ctx, text)
	}
	return nil
}

// SetLanguage records the language name.
func (m *Mock) SetLanguage(name string) {
	m.mu.Lock()
	m.language = name
	m.mu.Unlock()
}

// Language returns the last name passed to SetLanguage.
func (m *Mock) Language() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.language
}

// Spoken returns every text passed to Speak, in order.
func (m *Mock) Spoken() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.spoken))
	copy(out, m.spoken)
	return out
}

// Close marks the mock closed and calls CloseFunc.
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

// Verify Mock implements Speaker at compile time.
var _ Speaker = (*Mock)(nil)
