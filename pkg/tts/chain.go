package tts

import (
	"context"
	"log/slog"
)

// Chain implements Speaker by trying multiple speakers in order.
// The first successful speaker wins; if all fail, returns an aggregate error.
type Chain struct {
	speakers []Speaker
	logger   *slog.Logger
}

// NewChain creates a speaker chain that tries speakers in order.
// At least one speaker is required.
func NewChain(speakers ...Speaker) (*Chain, error) {
	if len(speakers) == 0 {
		return nil, ErrNoSpeaker
	}
	return &Chain{
		speakers: speakers,
		logger:   slog.Default().With("component", "tts.chain"),
	}, nil
}

// Speak tries each speaker until one succeeds.
func (c *Chain) Speak(ctx context.Context, text string) error {
	if text == "" {
		return nil
	}

	var errs []error
	for i, s := range c.speakers {
		err := s.Speak(ctx, text)
		if err == nil {
			if i > 0 {
				c.logger.Info("fallback voice succeeded", "speaker_index", i)
			}
			return nil
		}

		errs = append(errs, err)
		c.logger.Warn("speaker failed, trying next", "speaker_index", i, "error", err)

		if ctx.Err() != nil {
			return ctx.Err()
		}
	}

	return &ChainError{Errors: errs}
}

// SetLanguage fans the language out to every speaker so the fallback voice
// stays in step with the primary.
func (c *Chain) SetLanguage(name string) {
	for _, s := range c.speakers {
		s.SetLanguage(name)
	}
}

// Close closes all speakers.
func (c *Chain) Close() error {
	var lastErr error
	for _, s := range c.speakers {
		if err := s.Close(); err != nil {
			lastErr = err
		}
	}
	return lastErr
}

// Verify Chain implements Speaker at compile time.
var _ Speaker = (*Chain)(nil)
