package knowledge

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/novalabs/go-nova/internal/httpc"
)

// DefaultWikipediaBaseURL is the REST v1 API of English Wikipedia.
const DefaultWikipediaBaseURL = "https://en.wikipedia.org/api/rest_v1"

// Wikipedia fetches page summaries from the Wikipedia REST API.
type Wikipedia struct {
	baseURL string
	client  *http.Client
	logger  *slog.Logger
}

// WikipediaOption configures the Wikipedia source.
type WikipediaOption func(*Wikipedia)

// WithBaseURL overrides the API base URL.
func WithBaseURL(baseURL string) WikipediaOption {
	return func(w *Wikipedia) { w.baseURL = strings.TrimRight(baseURL, "/") }
}

// WithHTTPClient overrides the HTTP client.
func WithHTTPClient(client *http.Client) WikipediaOption {
	return func(w *Wikipedia) { w.client = client }
}

// NewWikipedia creates a Wikipedia summary source.
func NewWikipedia(opts ...WikipediaOption) *Wikipedia {
	w := &Wikipedia{
		baseURL: DefaultWikipediaBaseURL,
		client:  httpc.Client,
		logger:  slog.Default().With("component", "knowledge.wikipedia"),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// summaryResponse is the subset of the page/summary payload we read.
type summaryResponse struct {
	Title   string `json:"title"`
	Extract string `json:"extract"`
}

// Summary fetches the page summary for a topic and clips it to the requested
// sentence count.
func (w *Wikipedia) Summary(ctx context.Context, topic string, sentences int) (string, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return "", ErrNotFound
	}

	title := url.PathEscape(strings.ReplaceAll(topic, " ", "_"))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		w.baseURL+"/page/summary/"+title, nil)
	if err != nil {
		return "", &LookupError{Topic: topic, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := w.client.Do(req)
	if err != nil {
		return "", &LookupError{Topic: topic, Err: err}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return "", ErrNotFound
	case resp.StatusCode != http.StatusOK:
		return "", &LookupError{Topic: topic, Err: fmt.Errorf("status %d", resp.StatusCode)}
	}

	var sr summaryResponse
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
		return "", &LookupError{Topic: topic, Err: err}
	}
	if strings.TrimSpace(sr.Extract) == "" {
		return "", ErrNotFound
	}

	summary := ClipSentences(sr.Extract, sentences)
	w.logger.Debug("summary fetched", "topic", topic, "chars", len(summary))
	return summary, nil
}

// ClipSentences truncates text to at most n sentences. Sentences are split
// on ". " which is good enough for encyclopedic prose; n <= 0 returns the
// text unchanged.
func ClipSentences(text string, n int) string {
	text = strings.TrimSpace(text)
	if n <= 0 {
		return text
	}

	parts := strings.SplitAfter(text, ". ")
	if len(parts) <= n {
		return text
	}
	return strings.TrimSpace(strings.Join(parts[:n], ""))
}

// Verify Wikipedia implements Source at compile time.
var _ Source = (*Wikipedia)(nil)
