// Package actions holds the assistant's outward side effects: opening web
// pages, requesting media playback, and dispatching instant messages. Each
// capability is an interface so the router can be tested without touching a
// browser or the network.
package actions

import "context"

// Browser opens pages in the user's default browser.
type Browser interface {
	// OpenSearch opens a web search results page for the query.
	// Fire-and-forget from the router's point of view.
	OpenSearch(query string) error

	// OpenURL opens an arbitrary URL.
	OpenURL(url string) error
}

// MediaPlayer requests playback of a titled piece of media.
type MediaPlayer interface {
	// Play starts playback of the best match for title.
	Play(ctx context.Context, title string) error
}

// Messenger dispatches instant messages.
type Messenger interface {
	// SendInstant sends message to the phone number immediately.
	SendInstant(ctx context.Context, number, message string) error
}
