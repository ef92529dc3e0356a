// Package session owns the assistant's mutable conversation state: the
// active language with its recognition and synthesis codes, the running
// flag, and wake-word matching. There is exactly one State per assistant
// process and it is passed explicitly to the router and the main loop.
package session

import (
	"fmt"
	"strings"
	"sync"

	"github.com/novalabs/go-nova/pkg/lang"
)

// Recognizer is the slice of the speech recognizer the session drives.
type Recognizer interface {
	// SetLanguage changes the recognition language code.
	SetLanguage(code string)
}

// Speaker is the slice of the speech synthesizer the session drives.
type Speaker interface {
	// SetLanguage switches the synthesis voice by language name.
	SetLanguage(name string)
}

// State holds the active language and its derived engine codes. The three
// fields only ever change together inside SwitchLanguage, so an observer
// never sees a language name paired with another language's codes.
type State struct {
	mu       sync.Mutex
	language string
	codes    lang.Codes
	running  bool

	catalog    *lang.Catalog
	wakeWords  []string
	recognizer Recognizer
	speaker    Speaker
}

// New creates session state with the default language active. The default
// must exist in the catalog (config validation guarantees this; New checks
// anyway).
func New(catalog *lang.Catalog, defaultLanguage string, wakeWords []string, recognizer Recognizer, speaker Speaker) (*State, error) {
	defaultLanguage = strings.ToLower(strings.TrimSpace(defaultLanguage))
	codes, ok := catalog.Codes(defaultLanguage)
	if !ok {
		return nil, fmt.Errorf("%w: %s", lang.ErrUnsupportedLanguage, defaultLanguage)
	}

	words := make([]string, 0, len(wakeWords))
	for _, w := range wakeWords {
		if w = strings.ToLower(strings.TrimSpace(w)); w != "" {
			words = append(words, w)
		}
	}

	s := &State{
		language:   defaultLanguage,
		codes:      codes,
		running:    true,
		catalog:    catalog,
		wakeWords:  words,
		recognizer: recognizer,
		speaker:    speaker,
	}
	recognizer.SetLanguage(codes.STT)
	speaker.SetLanguage(defaultLanguage)
	return s, nil
}

// Language returns the active language name.
func (s *State) Language() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.language
}

// Codes returns the active engine codes.
func (s *State) Codes() lang.Codes {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.codes
}

// SwitchLanguage activates the named language and informs the recognizer
// and speaker of their new codes. Unsupported names fail with
// lang.ErrUnsupportedLanguage and leave the state untouched; switching to
// the already-active language is a no-op success.
func (s *State) SwitchLanguage(name string) error {
	name = strings.ToLower(strings.TrimSpace(name))
	codes, ok := s.catalog.Codes(name)
	if !ok {
		return fmt.Errorf("%w: %s", lang.ErrUnsupportedLanguage, name)
	}

	s.mu.Lock()
	if name == s.language {
		s.mu.Unlock()
		return nil
	}
	s.language = name
	s.codes = codes
	s.mu.Unlock()

	s.recognizer.SetLanguage(codes.STT)
	s.speaker.SetLanguage(name)
	return nil
}

// Running reports whether the session is still live.
func (s *State) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

// Stop marks the session terminated. Terminal: nothing sets it back.
func (s *State) Stop() {
	s.mu.Lock()
	s.running = false
	s.mu.Unlock()
}
