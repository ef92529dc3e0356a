package actions

import (
	"context"
	"sync"
)

// MockBrowser implements Browser for testing, recording every opened page.
type MockBrowser struct {
	// OpenErr, when set, is returned by both methods.
	OpenErr error

	mu       sync.Mutex
	searches []string
	urls     []string
}

// OpenSearch records the query.
func (m *MockBrowser) OpenSearch(query string) error {
	m.mu.Lock()
	m.searches = append(m.searches, query)
	m.mu.Unlock()
	return m.OpenErr
}

// OpenURL records the URL.
func (m *MockBrowser) OpenURL(url string) error {
	m.mu.Lock()
	m.urls = append(m.urls, url)
	m.mu.Unlock()
	return m.OpenErr
}

// Searches returns recorded search queries.
func (m *MockBrowser) Searches() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.searches))
	copy(out, m.searches)
	return out
}

// URLs returns recorded URLs.
func (m *MockBrowser) URLs() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.urls))
	copy(out, m.urls)
	return out
}

// MockMedia implements MediaPlayer for testing.
type MockMedia struct {
	// PlayErr, when set, is returned by Play.
	PlayErr error

	mu     sync.Mutex
	titles []string
}

// Play records the title.
func (m *MockMedia) Play(ctx context.Context, title string) error {
	m.mu.Lock()
	m.titles = append(m.titles, title)
	m.mu.Unlock()
	return m.PlayErr
}

// Titles returns recorded playback titles.
func (m *MockMedia) Titles() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.titles))
	copy(out, m.titles)
	return out
}

// MockMessenger implements Messenger for testing.
type MockMessenger struct {
	// SendErr, when set, is returned by SendInstant.
	SendErr error

	mu    sync.Mutex
	sends []Send
}

// Send records one dispatched message.
type Send struct {
	Number  string
	Message string
}

// SendInstant records the message.
func (m *MockMessenger) SendInstant(ctx context.Context, number, message string) error {
	m.mu.Lock()
	m.sends = append(m.sends, Send{Number: number, Message: message})
	m.mu.Unlock()
	return m.SendErr
}

// Sends returns recorded messages.
func (m *MockMessenger) Sends() []Send {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Send, len(m.sends))
	copy(out, m.sends)
	return out
}

// Compile-time interface checks.
var (
	_ Browser     = (*MockBrowser)(nil)
	_ MediaPlayer = (*MockMedia)(nil)
	_ Messenger   = (*MockMessenger)(nil)
)
