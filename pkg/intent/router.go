package intent

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"
	"time"

	"github.com/novalabs/go-nova/pkg/actions"
	"github.com/novalabs/go-nova/pkg/knowledge"
	"github.com/novalabs/go-nova/pkg/lang"
)

// Deps are the collaborators a Router drives. All fields are required.
type Deps struct {
	Session   Session
	Detector  Detector
	Knowledge knowledge.Source
	Browser   actions.Browser
	Media     actions.MediaPlayer
	Messenger actions.Messenger
	Notes     NoteLog
	Site      SiteBuilder

	// Logger defaults to slog.Default.
	Logger *slog.Logger
}

// Router classifies command text and invokes the matching handler.
// It owns the terminal shutdown flag observed by the main loop.
type Router struct {
	deps     Deps
	routes   []route
	shutdown atomic.Bool
	logger   *slog.Logger
	now      func() time.Time
}

// NewRouter builds a router with the fixed priority-ordered route table.
func NewRouter(deps Deps) *Router {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	r := &Router{
		deps:   deps,
		logger: logger.With("component", "intent.router"),
		now:    time.Now,
	}
	r.routes = []route{
		{IntentLanguageSwitch, langSwitchRe.MatchString, r.handleLanguageSwitch},
		{IntentWebsiteCreate, websiteRe.MatchString, r.handleWebsiteCreate},
		{IntentMessagingSend, messagingRe.MatchString, r.handleMessagingSend},
		{IntentProblemSolve, problemRe.MatchString, r.handleProblemSolve},
		{IntentTimeQuery, matchAny(timeKeywords), r.handleTimeQuery},
		{IntentMediaPlay, matchMediaPlay, r.handleMediaPlay},
		{IntentWebSearch, matchWebSearch, r.handleWebSearch},
		{IntentNoteSave, matchAny(noteKeywords), r.handleNoteSave},
		{IntentKnowledgeLookup, matchKnowledgeLookup, r.handleKnowledgeLookup},
		{IntentShutdown, matchAny(shutdownKeywords), r.handleShutdown},
		{IntentUnknown, func(string) bool { return true }, r.handleUnknown},
	}
	return r
}

// ShutdownRequested reports the terminal shutdown flag. Once set it is
// never cleared.
func (r *Router) ShutdownRequested() bool {
	return r.shutdown.Load()
}

// Classify returns the intent the text would route to, without invoking the
// handler or the language auto-switch.
func (r *Router) Classify(text string) Intent {
	txt := strings.ToLower(strings.TrimSpace(text))
	for _, rt := range r.routes {
		if rt.match(txt) {
			return rt.intent
		}
	}
	return IntentUnknown
}

// Handle routes one command: detect language, auto-switch the session when
// it differs, then run the first matching handler. The returned text is
// destined for speech synthesis; empty means "say nothing".
func (r *Router) Handle(ctx context.Context, text string) string {
	raw := strings.TrimSpace(text)

	detected := r.deps.Detector.Detect(raw)
	if detected != r.deps.Session.Language() {
		if err := r.deps.Session.SwitchLanguage(detected); err != nil {
			r.logger.Warn("auto language switch rejected", "language", detected, "error", err)
		} else {
			r.logger.Info("language switched", "language", detected)
		}
	}

	txt := strings.ToLower(raw)
	for _, rt := range r.routes {
		if rt.match(txt) {
			r.logger.Debug("routed", "intent", string(rt.intent))
			return rt.handle(ctx, raw, txt)
		}
	}
	return r.handleUnknown(ctx, raw, txt)
}

func (r *Router) handleLanguageSwitch(ctx context.Context, raw, txt string) string {
	m := langSwitchRe.FindStringSubmatch(txt)
	name := m[2]
	if err := r.deps.Session.SwitchLanguage(name); err != nil {
		return fmt.Sprintf("Language %s not supported.", name)
	}
	return fmt.Sprintf("Language set to %s.", name)
}

func (r *Router) handleWebsiteCreate(ctx context.Context, raw, txt string) string {
	desc := raw
	if m := websiteDescRe.FindStringSubmatch(raw); m != nil {
		desc = strings.TrimSpace(m[1])
	}
	if err := r.deps.Site.Build(desc); err != nil {
		r.logger.Error("website scaffold failed", "error", err)
		return "I couldn't create the website files."
	}
	return fmt.Sprintf("I created a website scaffold under %s. Open index.html to view it.", r.deps.Site.Dir())
}

func (r *Router) handleMessagingSend(ctx context.Context, raw, txt string) string {
	number := phoneRe.FindString(raw)
	if number == "" {
		return "Please include a phone number like +911234567890 in the command."
	}

	message := "Hi"
	if m := msgBodyRe.FindStringSubmatch(raw); m != nil {
		if body := strings.TrimSpace(m[1]); body != "" {
			message = body
		}
	}

	if err := r.deps.Messenger.SendInstant(ctx, number, message); err != nil {
		r.logger.Error("message dispatch failed", "number", number, "error", err)
		return "Failed to send WhatsApp message. Make sure the messaging gateway is connected."
	}
	return fmt.Sprintf("Sent WhatsApp message to %s.", number)
}

func (r *Router) handleProblemSolve(ctx context.Context, raw, txt string) string {
	subject := collapse(problemStripRe.ReplaceAllString(txt, ""))
	if subject == "" {
		return "Tell me the problem in one sentence and I'll try to help."
	}

	summary, err := r.deps.Knowledge.Summary(ctx, subject, 3)
	if err != nil {
		r.logger.Warn("problem lookup failed, falling back to search", "subject", subject, "error", err)
		if serr := r.deps.Browser.OpenSearch(subject); serr != nil {
			r.logger.Error("search fallback failed", "error", serr)
		}
		return fmt.Sprintf("I couldn't find a concise answer; I searched the web for %s.", subject)
	}
	return summary
}

func (r *Router) handleTimeQuery(ctx context.Context, raw, txt string) string {
	tmpl, ok := timeTemplates[r.deps.Session.Language()]
	if !ok {
		tmpl = timeTemplates[lang.DefaultLanguage]
	}
	return fmt.Sprintf(tmpl, r.now().Format("03:04 PM"))
}

func (r *Router) handleMediaPlay(ctx context.Context, raw, txt string) string {
	title := collapse(playStripRe.ReplaceAllString(txt, ""))
	if title == "" {
		return "What should I play?"
	}
	if err := r.deps.Media.Play(ctx, title); err != nil {
		r.logger.Error("media playback failed", "title", title, "error", err)
		return "Couldn't open YouTube."
	}
	return fmt.Sprintf("Playing %s on YouTube", title)
}

func (r *Router) handleWebSearch(ctx context.Context, raw, txt string) string {
	query := collapse(searchStripRe.ReplaceAllString(txt, ""))
	if query == "" {
		return "What should I search for?"
	}
	// Fire and forget: a failed page open is logged, not spoken.
	if err := r.deps.Browser.OpenSearch(query); err != nil {
		r.logger.Warn("search open failed", "query", query, "error", err)
	}
	return fmt.Sprintf("Searching Google for %s", query)
}

func (r *Router) handleNoteSave(ctx context.Context, raw, txt string) string {
	note := collapse(noteStripRe.ReplaceAllString(txt, ""))
	if note == "" {
		return "What should I note?"
	}
	if err := r.deps.Notes.Append(note); err != nil {
		// The note is lost: no retry, no buffering.
		r.logger.Error("note save failed", "error", err)
		return "Couldn't save the note."
	}
	return "Okay, noted."
}

func (r *Router) handleKnowledgeLookup(ctx context.Context, raw, txt string) string {
	subject := collapse(lookupStripRe.ReplaceAllString(txt, ""))
	if subject == "" {
		return "What do you want me to look up?"
	}

	summary, err := r.deps.Knowledge.Summary(ctx, subject, 2)
	if err != nil {
		r.logger.Warn("lookup failed, falling back to search", "subject", subject, "error", err)
		if serr := r.deps.Browser.OpenSearch(subject); serr != nil {
			r.logger.Error("search fallback failed", "error", serr)
		}
		return fmt.Sprintf("I searched the web for %s.", subject)
	}
	return summary
}

func (r *Router) handleShutdown(ctx context.Context, raw, txt string) string {
	r.shutdown.Store(true)
	return lang.Phrase(lang.PhraseShutdown, r.deps.Session.Language())
}

func (r *Router) handleUnknown(ctx context.Context, raw, txt string) string {
	return lang.Phrase(lang.PhraseUnknown, r.deps.Session.Language())
}

// matchAny builds a matcher testing substring containment of any keyword.
func matchAny(keywords []string) func(string) bool {
	return func(txt string) bool {
		for _, k := range keywords {
			if strings.Contains(txt, k) {
				return true
			}
		}
		return false
	}
}

func matchMediaPlay(txt string) bool {
	return strings.HasPrefix(txt, "play") ||
		(strings.Contains(txt, "play") && strings.Contains(txt, "youtube"))
}

func matchWebSearch(txt string) bool {
	return strings.HasPrefix(txt, "search") ||
		strings.Contains(txt, "search") ||
		strings.Contains(txt, "खोज")
}

func matchKnowledgeLookup(txt string) bool {
	return strings.HasPrefix(txt, "who is") ||
		strings.HasPrefix(txt, "what is") ||
		strings.Contains(txt, "wikipedia")
}

// collapse trims and squeezes interior whitespace left over from keyword
// stripping.
func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
