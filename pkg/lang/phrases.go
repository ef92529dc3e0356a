package lang

// PhraseKey identifies one of the canned assistant responses that ship with
// fixed translations.
type PhraseKey string

const (
	PhraseGreeting PhraseKey = "greeting"
	PhraseYes      PhraseKey = "yes"
	PhraseShutdown PhraseKey = "shutdown"
	PhraseUnknown  PhraseKey = "unknown"
)

// translations holds the fixed phrases. Languages without an entry fall back
// to English; free-form responses are always composed in English and spoken
// in the session's synthesis voice.
var translations = map[PhraseKey]map[string]string{
	PhraseGreeting: {
		"english": "Hello! I'm Nova — your friendly assistant. How can I help?",
		"hindi":   "नमस्ते! मैं नोवा हूँ — आपकी मदद के लिए तैयार हूँ।",
		"marathi": "नमस्कार! मी नोवा आहे — मी कशी मदत करू?",
	},
	PhraseYes: {
		"english": "Yes?",
		"hindi":   "जी बताइए?",
		"marathi": "हो, सांगा?",
	},
	PhraseShutdown: {
		"english": "Shutting down. Bye!",
		"hindi":   "शटडाउन कर रहा हूँ। अलविदा!",
		"marathi": "शटडाऊन होत आहे. निघतो!",
	},
	PhraseUnknown: {
		"english": "Sorry, I didn't understand. Could you rephrase?",
		"hindi":   "माफ़ कीजिए, मैं समझ नहीं पाया। क्या आप दोहरा सकते हैं?",
		"marathi": "माफ करा, मला समजले नाही. पुन्हा सांगा.",
	},
}

// Phrase returns the canned phrase for the given language, falling back to
// English when no translation exists.
func Phrase(key PhraseKey, language string) string {
	byLang, ok := translations[key]
	if !ok {
		return ""
	}
	if phrase, ok := byLang[language]; ok {
		return phrase
	}
	return byLang[DefaultLanguage]
}
