// Package knowledge looks up short encyclopedic summaries for spoken
// answers. The Wikipedia REST API is the backing source; callers treat it as
// fallible and fall back to a web search when a topic cannot be resolved.
package knowledge

import "context"

// Source defines the summary lookup interface.
type Source interface {
	// Summary returns a summary of the topic clipped to at most the given
	// number of sentences. Returns ErrNotFound when the topic cannot be
	// resolved.
	Summary(ctx context.Context, topic string, sentences int) (string, error)
}
