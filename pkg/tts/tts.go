// Package tts provides text-to-speech output with voice fallback.
//
// A Speaker renders text as audible speech in the session's active language.
// The network engine (Google Translate TTS) is the primary voice; a local
// command-line engine is the fallback. Chain composes them so a synthesis
// failure degrades to the secondary voice instead of losing the response.
//
// Example usage:
//
//	primary := tts.NewGTTS(catalog)
//	fallback := tts.NewCommand(catalog)
//	speaker, _ := tts.NewChain(primary, fallback)
//	defer speaker.Close()
//
//	speaker.SetLanguage("hindi")
//	_ = speaker.Speak(ctx, "नमस्ते")
package tts

import "context"

// Speaker defines the speech synthesis interface.
type Speaker interface {
	// Speak renders text as audible speech and blocks until playback
	// completes. Empty text is a no-op success ("say nothing").
	Speak(ctx context.Context, text string) error

	// SetLanguage switches the synthesis voice by catalog language name.
	SetLanguage(name string)

	// Close releases playback resources.
	Close() error
}
