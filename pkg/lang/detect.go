package lang

import (
	"strings"

	"github.com/pemistahl/lingua-go"
)

// linguaLanguages are the candidate languages fed to the detector. Kannada is
// absent because lingua does not model it; explicit "language kannada"
// commands still work through the catalog.
var linguaLanguages = []lingua.Language{
	lingua.English,
	lingua.Hindi,
	lingua.Marathi,
	lingua.Spanish,
	lingua.French,
	lingua.German,
	lingua.Portuguese,
	lingua.Russian,
	lingua.Chinese,
	lingua.Japanese,
	lingua.Korean,
	lingua.Arabic,
	lingua.Bengali,
	lingua.Urdu,
	lingua.Punjabi,
	lingua.Tamil,
	lingua.Telugu,
}

// codeToName maps two-letter ISO 639-1 prefixes to catalog language names.
// This is a closed list: anything else falls through to the default language,
// never an error.
var codeToName = map[string]string{
	"en": "english",
	"hi": "hindi",
	"mr": "marathi",
	"es": "spanish",
	"fr": "french",
	"de": "german",
	"pt": "portuguese",
	"ru": "russian",
	"zh": "chinese",
	"ja": "japanese",
	"ko": "korean",
	"ar": "arabic",
	"bn": "bengali",
	"ur": "urdu",
	"pa": "punjabi",
	"ta": "tamil",
	"te": "telugu",
	"kn": "kannada",
}

// Detector infers the language of recognized text.
type Detector struct {
	detector lingua.LanguageDetector
}

// NewDetector builds a detector over the supported language set.
func NewDetector() *Detector {
	return &Detector{
		detector: lingua.NewLanguageDetectorBuilder().
			FromLanguages(linguaLanguages...).
			Build(),
	}
}

// Detect returns the catalog name of the text's language, or the default
// language when the text is empty, detection is inconclusive, or the detected
// code is outside the mapping table. It never fails.
func (d *Detector) Detect(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return DefaultLanguage
	}

	detected, ok := d.detector.DetectLanguageOf(text)
	if !ok {
		return DefaultLanguage
	}

	return nameForISOCode(detected.IsoCode639_1().String())
}

// nameForISOCode resolves an ISO 639-1 code (any case, optionally with a
// region suffix such as "zh-CN") to a catalog language name.
func nameForISOCode(code string) string {
	code = strings.ToLower(code)
	if len(code) > 2 {
		code = code[:2]
	}
	if name, ok := codeToName[code]; ok {
		return name
	}
	return DefaultLanguage
}
