// Package assistant runs the wake → listen → route → respond cycle.
//
// The loop is strictly synchronous: each turn fully completes, including
// speech playback, before the next capture begins. A turn moves Idle →
// Awake → Idle, or → ShuttingDown when the router's shutdown flag is
// observed. No single bad turn may crash the process: faults are logged,
// the loop pauses briefly and resumes at Idle. Only context cancellation
// (an external interrupt) or the shutdown flag ends the loop, both with an
// orderly release of the audio and synthesis resources.
package assistant

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/novalabs/go-nova/pkg/intent"
	"github.com/novalabs/go-nova/pkg/lang"
	"github.com/novalabs/go-nova/pkg/session"
	"github.com/novalabs/go-nova/pkg/stt"
	"github.com/novalabs/go-nova/pkg/tts"
)

// Farewell is spoken exactly once, after the shutdown response.
const Farewell = "Shutting down. Goodbye!"

// Config bounds the loop's capture windows and pauses.
type Config struct {
	// Wake is the capture window while idling for the wake phrase.
	Wake stt.ListenOptions

	// Command is the longer capture window after the acknowledgment.
	Command stt.ListenOptions

	// IdlePause is the breather between turns.
	IdlePause time.Duration

	// FaultPause is the backoff after a failed turn.
	FaultPause time.Duration

	// Logger defaults to slog.Default.
	Logger *slog.Logger
}

// DefaultConfig returns the stock loop timing.
func DefaultConfig() Config {
	return Config{
		Wake:       stt.ListenOptions{Timeout: 8 * time.Second, PhraseLimit: 6 * time.Second},
		Command:    stt.ListenOptions{Timeout: 6 * time.Second, PhraseLimit: 12 * time.Second},
		IdlePause:  200 * time.Millisecond,
		FaultPause: time.Second,
	}
}

// Assistant owns one conversation loop.
type Assistant struct {
	cfg        Config
	session    *session.State
	recognizer stt.Recognizer
	speaker    tts.Speaker
	router     *intent.Router
	logger     *slog.Logger
}

// New wires an assistant from its collaborators.
func New(sess *session.State, recognizer stt.Recognizer, speaker tts.Speaker, router *intent.Router, cfg Config) *Assistant {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Assistant{
		cfg:        cfg,
		session:    sess,
		recognizer: recognizer,
		speaker:    speaker,
		router:     router,
		logger:     logger.With("component", "assistant"),
	}
}

// Run speaks the greeting and drives turns until shutdown or cancellation.
// It always releases the recognizer and speaker before returning.
func (a *Assistant) Run(ctx context.Context) error {
	defer a.release()

	a.logger.Info("assistant ready", "language", a.session.Language())
	a.say(ctx, lang.Phrase(lang.PhraseGreeting, a.session.Language()))

	for a.session.Running() && ctx.Err() == nil {
		a.turn(ctx)
		sleepCtx(ctx, a.cfg.IdlePause)
	}
	return nil
}

// turn runs one full Idle/Awake cycle. Panics are treated as transient
// faults: logged, a brief pause, then the loop resumes at Idle.
func (a *Assistant) turn(ctx context.Context) {
	turnLog := a.logger.With("turn", uuid.NewString()[:8])
	defer func() {
		if r := recover(); r != nil {
			turnLog.Error("panic in turn, resuming", "panic", r)
			sleepCtx(ctx, a.cfg.FaultPause)
		}
	}()

	text, err := a.recognizer.Listen(ctx, a.cfg.Wake)
	if err != nil {
		a.handleListenError(ctx, turnLog, "wake", err)
		return
	}

	if !a.session.IsWake(text) {
		turnLog.Debug("heard speech without wake phrase")
		return
	}

	turnLog.Info("wake phrase detected")
	a.say(ctx, lang.Phrase(lang.PhraseYes, a.session.Language()))

	command, err := a.recognizer.Listen(ctx, a.cfg.Command)
	if err != nil {
		// No command after the acknowledgment: silently back to Idle.
		a.handleListenError(ctx, turnLog, "command", err)
		return
	}

	turnLog.Info("command recognized", "chars", len(command))
	response := a.router.Handle(ctx, command)
	if response != "" {
		a.say(ctx, response)
	}

	if a.router.ShutdownRequested() {
		turnLog.Info("shutdown requested")
		a.say(ctx, Farewell)
		a.session.Stop()
	}
}

// handleListenError classifies a capture failure. NoSpeech is the loop's
// normal idle outcome; anything else pauses before the next turn.
func (a *Assistant) handleListenError(ctx context.Context, logger *slog.Logger, phase string, err error) {
	switch {
	case errors.Is(err, stt.ErrNoSpeech):
		logger.Debug("no speech", "phase", phase)
	case errors.Is(err, stt.ErrServiceUnavailable):
		logger.Warn("recognition service unavailable, aborting turn", "phase", phase, "error", err)
		sleepCtx(ctx, a.cfg.FaultPause)
	case ctx.Err() != nil:
		// Cancelled mid-capture; Run's loop condition ends things.
	default:
		logger.Error("capture failed", "phase", phase, "error", err)
		sleepCtx(ctx, a.cfg.FaultPause)
	}
}

// say speaks text, logging synthesis failures instead of propagating them.
// Losing one response never tears down the loop.
func (a *Assistant) say(ctx context.Context, text string) {
	if text == "" {
		return
	}
	if err := a.speaker.Speak(ctx, text); err != nil {
		a.logger.Warn("speech synthesis failed", "error", err)
	}
}

// release closes the audio and synthesis resources.
func (a *Assistant) release() {
	if err := a.recognizer.Close(); err != nil {
		a.logger.Warn("recognizer close failed", "error", err)
	}
	if err := a.speaker.Close(); err != nil {
		a.logger.Warn("speaker close failed", "error", err)
	}
	a.logger.Info("assistant stopped")
}

// sleepCtx sleeps for d or until the context is cancelled.
func sleepCtx(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	select {
	case <-time.After(d):
	case <-ctx.Done():
	}
}
