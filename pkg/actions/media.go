package actions

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
)

// YouTubeResultsURL is the playback search page for titled media.
const YouTubeResultsURL = "https://www.youtube.com/results"

// YouTube requests media playback by opening the YouTube results page for
// the title in the browser.
type YouTube struct {
	browser Browser
	logger  *slog.Logger
}

// NewYouTube creates a media player backed by the given browser.
func NewYouTube(browser Browser) *YouTube {
	return &YouTube{
		browser: browser,
		logger:  slog.Default().With("component", "actions.youtube"),
	}
}

// Play opens the playback page for title.
func (y *YouTube) Play(ctx context.Context, title string) error {
	q := url.QueryEscape(strings.TrimSpace(title))
	if err := y.browser.OpenURL(fmt.Sprintf("%s?search_query=%s", YouTubeResultsURL, q)); err != nil {
		return &DispatchError{Action: "play media", Err: err}
	}
	y.logger.Debug("playback requested", "title", title)
	return nil
}

// Verify YouTube implements MediaPlayer at compile time.
var _ MediaPlayer = (*YouTube)(nil)
