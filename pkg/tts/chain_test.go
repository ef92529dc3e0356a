package tts

import (
	"context"
	"errors"
	"testing"
)

func TestNewChain(t *testing.T) {
	if _, err := NewChain(); !errors.Is(err, ErrNoSpeaker) {
		t.Errorf("err = %v, want ErrNoSpeaker", err)
	}
}

func TestChainSpeak(t *testing.T) {
	t.Run("first speaker wins", func(t *testing.T) {
		first := NewMock()
		second := NewMock()
		chain, err := NewChain(first, second)
		if err != nil {
			t.Fatalf("NewChain: %v", err)
		}

		if err := chain.Speak(context.Background(), "hello"); err != nil {
			t.Fatalf("Speak: %v", err)
		}
		if got := first.Spoken(); len(got) != 1 || got[0] != "hello" {
			t.Errorf("first spoke %v", got)
		}
		if got := second.Spoken(); len(got) != 0 {
			t.Errorf("fallback should stay silent, spoke %v", got)
		}
	})

	t.Run("falls back on failure", func(t *testing.T) {
		first := WithSpeakError(errors.New("network down"))
		second := NewMock()
		chain, err := NewChain(first, second)
		if err != nil {
			t.Fatalf("NewChain: %v", err)
		}

		if err := chain.Speak(context.Background(), "hello"); err != nil {
			t.Fatalf("Speak: %v", err)
		}
		if got := second.Spoken(); len(got) != 1 || got[0] != "hello" {
			t.Errorf("fallback spoke %v", got)
		}
	})

	t.Run("all fail aggregates", func(t *testing.T) {
		errA := errors.New("a failed")
		errB := errors.New("b failed")
		chain, err := NewChain(WithSpeakError(errA), WithSpeakError(errB))
		if err != nil {
			t.Fatalf("NewChain: %v", err)
		}

		err = chain.Speak(context.Background(), "hello")
		var cerr *ChainError
		if !errors.As(err, &cerr) {
			t.Fatalf("err = %T %v, want *ChainError", err, err)
		}
		if len(cerr.Errors) != 2 {
			t.Errorf("aggregated %d errors", len(cerr.Errors))
		}
		if !errors.Is(err, errB) {
			t.Error("Unwrap should expose the last error")
		}
	})

	t.Run("empty text is a no-op", func(t *testing.T) {
		primary := WithSpeakError(errors.New("should not be called"))
		chain, err := NewChain(primary)
		if err != nil {
			t.Fatalf("NewChain: %v", err)
		}
		if err := chain.Speak(context.Background(), ""); err != nil {
			t.Errorf("Speak: %v", err)
		}
		if len(primary.Spoken()) != 0 {
			t.Error("no speaker should run for empty text")
		}
	})

	t.Run("cancelled context stops the chain", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		first := &Mock{SpeakFunc: func(ctx context.Context, text string) error {
			cancel()
			return errors.New("interrupted")
		}}
		second := NewMock()
		chain, err := NewChain(first, second)
		if err != nil {
			t.Fatalf("NewChain: %v", err)
		}

		if err := chain.Speak(ctx, "hello"); !errors.Is(err, context.Canceled) {
			t.Errorf("err = %v, want context.Canceled", err)
		}
		if len(second.Spoken()) != 0 {
			t.Error("fallback should not run after cancellation")
		}
	})
}

func TestChainSetLanguage(t *testing.T) {
	first := NewMock()
	second := NewMock()
	chain, err := NewChain(first, second)
	if err != nil {
		t.Fatalf("NewChain: %v", err)
	}

	chain.SetLanguage("hindi")
	if first.Language() != "hindi" || second.Language() != "hindi" {
		t.Errorf("languages = %q, %q", first.Language(), second.Language())
	}
}

func TestChainClose(t *testing.T) {
	closeErr := errors.New("device busy")
	first := NewMock()
	second := &Mock{CloseFunc: func() error { return closeErr }}
	chain, err := NewChain(first, second)
	if err != nil {
		t.Fatalf("NewChain: %v", err)
	}

	if err := chain.Close(); !errors.Is(err, closeErr) {
		t.Errorf("Close = %v", err)
	}
	if !first.Closed() || !second.Closed() {
		t.Error("every speaker should be closed")
	}
}
