// Package stt provides speech-to-text capture and recognition.
//
// A Recognizer owns the microphone: Listen blocks for one utterance window,
// bounded by a wait-for-speech timeout and a maximum phrase duration, then
// returns the recognized text. Absence of speech is a benign condition
// (ErrNoSpeech), distinct from the recognition backend being unreachable
// (ErrServiceUnavailable).
//
// Example usage:
//
//	rec, _ := stt.NewGoogle(stt.WithLanguage("en-IN"))
//	defer rec.Close()
//
//	text, err := rec.Listen(ctx, stt.ListenOptions{
//	    Timeout:     8 * time.Second,
//	    PhraseLimit: 6 * time.Second,
//	})
package stt

import (
	"context"
	"time"
)

// Recognizer defines the speech recognition interface.
type Recognizer interface {
	// Listen captures one utterance and returns the recognized text.
	// Returns ErrNoSpeech when nothing is heard or understood within the
	// window, ErrServiceUnavailable when the backend cannot be reached.
	Listen(ctx context.Context, opts ListenOptions) (string, error)

	// SetLanguage changes the recognition language code for later captures.
	SetLanguage(code string)

	// Close releases the audio device and any backend resources.
	Close() error
}

// ListenOptions bounds a single capture window.
type ListenOptions struct {
	// Timeout is how long to wait for speech to start before giving up
	// with ErrNoSpeech. Zero means wait indefinitely.
	Timeout time.Duration

	// PhraseLimit caps the phrase duration; the capture window is forced
	// closed once exceeded. Zero applies DefaultPhraseLimit.
	PhraseLimit time.Duration
}

// Default capture bounds, matching the assistant's wake-phase window.
const (
	DefaultTimeout     = 8 * time.Second
	DefaultPhraseLimit = 6 * time.Second
)

// withDefaults fills in zero fields.
func (o ListenOptions) withDefaults() ListenOptions {
	if o.Timeout <= 0 {
		o.Timeout = DefaultTimeout
	}
	if o.PhraseLimit <= 0 {
		o.PhraseLimit = DefaultPhraseLimit
	}
	return o
}
