package actions

import (
	"fmt"
	"log/slog"
	"net/url"
	"os/exec"
	"runtime"
	"strings"
)

// SearchBaseURL is the web search results page queries are sent to.
const SearchBaseURL = "https://www.google.com/search"

// ExecBrowser opens pages through the platform's URL opener.
type ExecBrowser struct {
	logger *slog.Logger
}

// NewExecBrowser creates a browser opener for the current platform.
func NewExecBrowser() *ExecBrowser {
	return &ExecBrowser{logger: slog.Default().With("component", "actions.browser")}
}

// OpenSearch opens the search results page for a query. Spaces become '+'
// to keep the address readable when it shows up in the browser bar.
func (b *ExecBrowser) OpenSearch(query string) error {
	q := url.QueryEscape(strings.TrimSpace(query))
	return b.OpenURL(fmt.Sprintf("%s?q=%s", SearchBaseURL, q))
}

// OpenURL opens the URL in the default browser.
func (b *ExecBrowser) OpenURL(target string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", target)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", target)
	default:
		cmd = exec.Command("xdg-open", target)
	}

	if err := cmd.Start(); err != nil {
		return &DispatchError{Action: "open url", Err: err}
	}
	b.logger.Debug("opened", "url", target)

	// Detach: the browser outlives the command.
	go func() { _ = cmd.Wait() }()
	return nil
}

// Verify ExecBrowser implements Browser at compile time.
var _ Browser = (*ExecBrowser)(nil)
