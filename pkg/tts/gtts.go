package tts

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"

	"github.com/novalabs/go-nova/internal/httpc"
	"github.com/novalabs/go-nova/pkg/lang"
)

// DefaultGTTSEndpoint is the Google Translate synthesis endpoint.
const DefaultGTTSEndpoint = "https://translate.google.com/translate_tts"

// DefaultTempPath is where fetched audio is staged before playback.
const DefaultTempPath = "data/tts_temp.mp3"

// GTTS synthesizes speech through the Google Translate TTS endpoint: fetch
// an MP3 into a temp file, then play it synchronously through the default
// audio output.
type GTTS struct {
	mu       sync.Mutex
	language string

	catalog  *lang.Catalog
	endpoint string
	tempPath string
	client   *http.Client
	logger   *slog.Logger
}

// GTTSOption configures the GTTS speaker.
type GTTSOption func(*GTTS)

// WithTempPath overrides the staging path for fetched audio.
func WithTempPath(path string) GTTSOption {
	return func(g *GTTS) { g.tempPath = path }
}

// WithEndpoint overrides the synthesis endpoint.
func WithEndpoint(endpoint string) GTTSOption {
	return func(g *GTTS) { g.endpoint = endpoint }
}

// WithHTTPClient overrides the HTTP client.
func WithHTTPClient(client *http.Client) GTTSOption {
	return func(g *GTTS) { g.client = client }
}

// NewGTTS creates a network speaker over the given language catalog.
func NewGTTS(catalog *lang.Catalog, opts ...GTTSOption) *GTTS {
	g := &GTTS{
		language: lang.DefaultLanguage,
		catalog:  catalog,
		endpoint: DefaultGTTSEndpoint,
		tempPath: DefaultTempPath,
		client:   httpc.Client,
		logger:   slog.Default().With("component", "tts.gtts"),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Speak fetches and plays the synthesized audio. Empty text says nothing.
func (g *GTTS) Speak(ctx context.Context, text string) error {
	if text == "" {
		return nil
	}

	g.mu.Lock()
	language := g.language
	g.mu.Unlock()

	codes, ok := g.catalog.Codes(language)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownVoice, language)
	}

	if err := g.fetch(ctx, text, codes.GTTS); err != nil {
		return err
	}

	g.logger.Debug("speaking", "language", language, "chars", len(text))
	return playMP3(ctx, g.tempPath)
}

// SetLanguage switches the synthesis voice.
func (g *GTTS) SetLanguage(name string) {
	g.mu.Lock()
	g.language = name
	g.mu.Unlock()
}

// Close is a no-op; the temp file is reused across turns.
func (g *GTTS) Close() error { return nil }

// fetch downloads the MP3 for text into the temp path.
func (g *GTTS) fetch(ctx context.Context, text, voice string) error {
	q := url.Values{}
	q.Set("ie", "UTF-8")
	q.Set("client", "tw-ob")
	q.Set("tl", voice)
	q.Set("q", text)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.endpoint+"?"+q.Encode(), nil)
	if err != nil {
		return &EngineError{Engine: "gtts", Err: err}
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return &EngineError{Engine: "gtts", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &EngineError{Engine: "gtts", Err: fmt.Errorf("status %d", resp.StatusCode)}
	}

	if dir := filepath.Dir(g.tempPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return &EngineError{Engine: "gtts", Err: err}
		}
	}

	f, err := os.Create(g.tempPath)
	if err != nil {
		return &EngineError{Engine: "gtts", Err: err}
	}
	if _, err := io.Copy(f, resp.Body); err != nil {
		f.Close()
		return &EngineError{Engine: "gtts", Err: err}
	}
	return f.Close()
}

// playMP3 decodes and plays an MP3 file, blocking until playback finishes
// or the context is cancelled.
func playMP3(ctx context.Context, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return &EngineError{Engine: "gtts", Err: err}
	}

	streamer, format, err := mp3.Decode(f)
	if err != nil {
		f.Close()
		return &EngineError{Engine: "gtts", Err: err}
	}
	defer streamer.Close()

	if err := speaker.Init(format.SampleRate, format.SampleRate.N(100*time.Millisecond)); err != nil {
		return &EngineError{Engine: "gtts", Err: err}
	}

	done := make(chan struct{})
	speaker.Play(beep.Seq(streamer, beep.Callback(func() { close(done) })))

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		speaker.Clear()
		return ctx.Err()
	}
}

// Verify GTTS implements Speaker at compile time.
var _ Speaker = (*GTTS)(nil)
