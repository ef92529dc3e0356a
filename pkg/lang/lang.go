// Package lang holds the language catalog, the fixed-phrase translation
// table, and text language detection.
//
// A language is identified everywhere by its lower-case English name
// ("english", "hindi", ...). The catalog maps each name to the pair of codes
// the speech engines need: a BCP-47 recognition code and a synthesis code.
package lang

import (
	"sort"
	"strings"
)

// DefaultLanguage is the baseline language used when detection is
// unavailable or inconclusive.
const DefaultLanguage = "english"

// Codes pairs the recognition and synthesis codes for one language.
type Codes struct {
	// STT is the speech-recognition code (e.g. "hi-IN").
	STT string

	// GTTS is the speech-synthesis code (e.g. "hi").
	GTTS string
}

// Catalog is the closed set of supported languages.
type Catalog struct {
	codes map[string]Codes
}

// NewCatalog builds a catalog from a name → codes map.
// Names are normalized to lower case.
func NewCatalog(m map[string]Codes) *Catalog {
	codes := make(map[string]Codes, len(m))
	for name, c := range m {
		codes[strings.ToLower(strings.TrimSpace(name))] = c
	}
	return &Catalog{codes: codes}
}

// Codes returns the engine codes for a language name.
func (c *Catalog) Codes(name string) (Codes, bool) {
	codes, ok := c.codes[strings.ToLower(strings.TrimSpace(name))]
	return codes, ok
}

// Supported reports whether the catalog knows the language.
func (c *Catalog) Supported(name string) bool {
	_, ok := c.Codes(name)
	return ok
}

// Names returns the supported language names, sorted.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.codes))
	for name := range c.codes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
