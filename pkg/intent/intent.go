// Package intent classifies command text and routes it to a handler.
//
// Classification is an ordered table of pattern tests evaluated top to
// bottom; the first match wins. The order is part of the contract: an
// explicit language request beats the website/messaging/problem patterns,
// which beat the generic search/time/note patterns, which beat the terminal
// shutdown keywords and the catch-all unknown fallback. Patterns match by
// substring or regex containment, never exact-phrase equality.
//
// Before any pattern runs, the text's language is detected and the session
// switched when it differs from the active language. That means even an
// unintelligible command re-keys the conversation: the "didn't understand"
// phrase is spoken in the newly detected language.
package intent

import "context"

// Intent names one classification outcome.
type Intent string

// The fixed intent set, in routing priority order.
const (
	IntentLanguageSwitch  Intent = "language-switch"
	IntentWebsiteCreate   Intent = "website-create"
	IntentMessagingSend   Intent = "messaging-send"
	IntentProblemSolve    Intent = "problem-solve"
	IntentTimeQuery       Intent = "time-query"
	IntentMediaPlay       Intent = "media-play"
	IntentWebSearch       Intent = "web-search"
	IntentNoteSave        Intent = "note-save"
	IntentKnowledgeLookup Intent = "knowledge-lookup"
	IntentShutdown        Intent = "shutdown"
	IntentUnknown         Intent = "unknown"
)

// Session is the slice of session state the router drives.
type Session interface {
	// Language returns the active language name.
	Language() string

	// SwitchLanguage activates the named language.
	SwitchLanguage(name string) error
}

// Detector infers the language of command text.
type Detector interface {
	// Detect returns a catalog language name; it never fails.
	Detect(text string) string
}

// NoteLog persists spoken notes.
type NoteLog interface {
	// Append writes one timestamped note line.
	Append(text string) error
}

// SiteBuilder generates the website scaffold.
type SiteBuilder interface {
	// Build writes the scaffold, overwriting any previous one.
	Build(description string) error

	// Dir returns the scaffold output directory, for the spoken response.
	Dir() string
}

// route is one entry of the ordered dispatch table.
type route struct {
	intent Intent

	// match tests the lower-cased command text.
	match func(txt string) bool

	// handle produces the spoken response and performs side effects.
	// raw keeps the original casing for argument extraction.
	handle func(ctx context.Context, raw, txt string) string
}
