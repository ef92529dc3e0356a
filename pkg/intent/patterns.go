package intent

import "regexp"

// Trigger and extraction patterns. Alternations mirror the router's spoken
// grammar; keyword lists mix English with the localized equivalents the
// recognizer commonly emits.
var (
	// "language spanish", "speak french"
	langSwitchRe = regexp.MustCompile(`\b(language|speak)\s+(\w+)\b`)

	websiteRe     = regexp.MustCompile(`create .*website|make .*website|build .*website|website for`)
	websiteDescRe = regexp.MustCompile(`(?i)website (?:that|which|for)? (.*)`)

	messagingRe = regexp.MustCompile(`whatsapp|send .*whatsapp|message .*whatsapp|send message`)
	phoneRe     = regexp.MustCompile(`\+?\d{10,15}`)
	msgBodyRe   = regexp.MustCompile(`(?i)(?:say|message|text) (.*)`)

	problemRe      = regexp.MustCompile(`solve|help me with|fix my|problem`)
	problemStripRe = regexp.MustCompile(`(?i)(solve|help me with|fix my|problem)`)

	playStripRe   = regexp.MustCompile(`play|on youtube|youtube`)
	searchStripRe = regexp.MustCompile(`(?i)search for|search|खोज|शोधा`)
	noteStripRe   = regexp.MustCompile(`(?i)note|remember|नोट करा|नोट|स्मरण`)
	lookupStripRe = regexp.MustCompile(`(?i)who is|what is|wikipedia`)
)

var timeKeywords = []string{"time", "what time", "कितने बजे", "वेळ", "hora", "temps"}

var noteKeywords = []string{"note", "remember", "नोट"}

var shutdownKeywords = []string{"shutdown", "quit", "exit", "stop listening", "goodbye", "बंद"}

// timeTemplates keys the spoken time phrase by active language; languages
// without a template fall back to English.
var timeTemplates = map[string]string{
	"english": "The time is %s",
	"hindi":   "समय है %s",
	"marathi": "वेळ आहे %s",
}
