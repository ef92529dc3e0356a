package session

import "strings"

// IsWake reports whether text contains a wake word. The text (lower-cased
// and trimmed) wakes the assistant when it starts with a wake word or
// contains one as a space-delimited token. Token matching pads both the
// text and the word with single spaces before the substring check, so
// "nova" buried inside "my novation controller" does not match. The
// prefix rule is looser on purpose: recognizers often glue the wake word
// to the next syllable at the start of an utterance.
func (s *State) IsWake(text string) bool {
	t := strings.ToLower(strings.TrimSpace(text))
	if t == "" {
		return false
	}
	padded := " " + t + " "
	for _, w := range s.wakeWords {
		if strings.HasPrefix(t, w) || strings.Contains(padded, " "+w+" ") {
			return true
		}
	}
	return false
}
