package stt

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/novalabs/go-nova/internal/httpc"
)

// DefaultEndpoint is the Google web-speech recognition endpoint.
const DefaultEndpoint = "http://www.google.com/speech-api/v2/recognize"

// Google recognizes speech by uploading captured audio to the Google
// web-speech API. It owns the default microphone for the process lifetime.
type Google struct {
	mu       sync.Mutex
	language string
	closed   bool

	endpoint string
	apiKey   string
	client   *http.Client
	mic      *microphone
	logger   *slog.Logger
}

// GoogleOption configures the Google recognizer.
type GoogleOption func(*Google)

// WithLanguage sets the initial recognition language code.
func WithLanguage(code string) GoogleOption {
	return func(g *Google) { g.language = code }
}

// WithAPIKey sets the recognition API key.
func WithAPIKey(key string) GoogleOption {
	return func(g *Google) { g.apiKey = key }
}

// WithEndpoint overrides the recognition endpoint.
func WithEndpoint(endpoint string) GoogleOption {
	return func(g *Google) { g.endpoint = endpoint }
}

// WithHTTPClient overrides the HTTP client.
func WithHTTPClient(client *http.Client) GoogleOption {
	return func(g *Google) { g.client = client }
}

// NewGoogle opens the microphone and returns a ready recognizer.
func NewGoogle(opts ...GoogleOption) (*Google, error) {
	g := &Google{
		language: "en-IN",
		endpoint: DefaultEndpoint,
		client:   httpc.Client,
		logger:   slog.Default().With("component", "stt.google"),
	}
	for _, opt := range opts {
		opt(g)
	}

	mic, err := newMicrophone()
	if err != nil {
		return nil, err
	}
	g.mic = mic
	return g, nil
}

// Listen captures one phrase and sends it for recognition.
func (g *Google) Listen(ctx context.Context, opts ListenOptions) (string, error) {
	g.mu.Lock()
	if g.closed {
		g.mu.Unlock()
		return "", ErrClosed
	}
	language := g.language
	g.mu.Unlock()

	samples, err := g.mic.recordPhrase(opts.withDefaults())
	if err != nil {
		return "", err
	}
	if len(samples) == 0 {
		return "", ErrNoSpeech
	}

	payload, err := encodeWAV(samples)
	if err != nil {
		return "", err
	}

	text, err := g.recognize(ctx, payload, language)
	if err != nil {
		return "", err
	}

	g.logger.Debug("recognized", "language", language, "chars", len(text))
	return text, nil
}

// SetLanguage changes the recognition language for later captures.
func (g *Google) SetLanguage(code string) {
	g.mu.Lock()
	g.language = code
	g.mu.Unlock()
}

// Close releases the microphone.
func (g *Google) Close() error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.closed {
		return nil
	}
	g.closed = true
	return g.mic.close()
}

// recognize uploads the WAV payload and extracts the best transcript.
func (g *Google) recognize(ctx context.Context, payload []byte, language string) (string, error) {
	q := url.Values{}
	q.Set("client", "chromium")
	q.Set("lang", language)
	if g.apiKey != "" {
		q.Set("key", g.apiKey)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		g.endpoint+"?"+q.Encode(), bytes.NewReader(payload))
	if err != nil {
		return "", &BackendError{Op: "build request", Err: err}
	}
	req.Header.Set("Content-Type", fmt.Sprintf("audio/l16; rate=%d", sampleRate))

	resp, err := g.client.Do(req)
	if err != nil {
		return "", &BackendError{Op: "recognize", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", &BackendError{Op: "recognize", Err: fmt.Errorf("status %d", resp.StatusCode)}
	}

	return parseTranscript(resp.Body)
}

// recognitionResponse mirrors the web-speech API result lines.
type recognitionResponse struct {
	Result []struct {
		Alternative []struct {
			Transcript string  `json:"transcript"`
			Confidence float64 `json:"confidence"`
		} `json:"alternative"`
	} `json:"result"`
}

// parseTranscript scans the newline-delimited JSON response. The API emits
// an empty result line before the real one; the first non-empty transcript
// wins. No transcript at all means the audio was unintelligible, which maps
// to ErrNoSpeech rather than a backend failure.
func parseTranscript(body io.Reader) (string, error) {
	scanner := bufio.NewScanner(body)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		var rr recognitionResponse
		if err := json.Unmarshal([]byte(line), &rr); err != nil {
			continue
		}
		for _, result := range rr.Result {
			for _, alt := range result.Alternative {
				if t := strings.TrimSpace(alt.Transcript); t != "" {
					return t, nil
				}
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return "", &BackendError{Op: "read response", Err: err}
	}
	return "", ErrNoSpeech
}

// Verify Google implements Recognizer at compile time.
var _ Recognizer = (*Google)(nil)
