package preview

import (
	"io"
	"log/slog"

	"github.com/pkg/browser"

	"git.home.luguber.info/inful/readme-preview/internal/logfields"
)

// openURL is replaced in tests.
var openURL = browser.OpenURL

func init() {
	// The launcher's own output would interleave with ours.
	browser.Stdout = io.Discard
	browser.Stderr = io.Discard
}

// OpenBrowser opens url in the default browser. Failure is logged and
// otherwise ignored: the URL has already been printed.
func OpenBrowser(url string) {
	if err := openURL(url); err != nil {
		slog.Debug("Could not open browser", logfields.URL(url), logfields.Error(err))
	}
}
