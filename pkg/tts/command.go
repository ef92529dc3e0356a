package tts

import (
	"context"
	"log/slog"
	"os/exec"
	"sync"

	"github.com/novalabs/go-nova/pkg/lang"
)

// DefaultCommand is the local synthesis binary used as the fallback voice.
const DefaultCommand = "espeak-ng"

// Command speaks through a local synthesis binary. It needs no network,
// which makes it the fallback voice when the primary engine is unreachable.
type Command struct {
	mu       sync.Mutex
	language string

	catalog *lang.Catalog
	binary  string
	logger  *slog.Logger
}

// NewCommand creates a local speaker. An empty binary selects DefaultCommand.
func NewCommand(catalog *lang.Catalog, binary string) *Command {
	if binary == "" {
		binary = DefaultCommand
	}
	return &Command{
		language: lang.DefaultLanguage,
		catalog:  catalog,
		binary:   binary,
		logger:   slog.Default().With("component", "tts.command"),
	}
}

// Speak runs the synthesis binary and blocks until it exits.
func (c *Command) Speak(ctx context.Context, text string) error {
	if text == "" {
		return nil
	}

	c.mu.Lock()
	language := c.language
	c.mu.Unlock()

	// The synthesis code doubles as the espeak voice name ("hi", "mr", ...).
	voice := "en"
	if codes, ok := c.catalog.Codes(language); ok {
		voice = codes.GTTS
	}

	cmd := exec.CommandContext(ctx, c.binary, "-v", voice, text)
	if err := cmd.Run(); err != nil {
		return &EngineError{Engine: c.binary, Err: err}
	}

	c.logger.Debug("speaking", "language", language, "voice", voice, "chars", len(text))
	return nil
}

// SetLanguage switches the synthesis voice.
func (c *Command) SetLanguage(name string) {
	c.mu.Lock()
	c.language = name
	c.mu.Unlock()
}

// Close is a no-op; the binary is invoked per utterance.
func (c *Command) Close() error { return nil }

// Verify Command implements Speaker at compile time.
var _ Speaker = (*Command)(nil)
