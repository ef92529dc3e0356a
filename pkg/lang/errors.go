package lang

import "errors"

// ErrUnsupportedLanguage is returned when a language name is not in the
// catalog. Callers reject the switch and keep the current session language.
var ErrUnsupportedLanguage = errors.New("lang: unsupported language")
