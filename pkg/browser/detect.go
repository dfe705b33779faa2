// Package browser finds out which browser the user has as default,
// so registration can warn when links would end up in Microsoft Edge anyway.
package browser

import (
	"runtime"
	"strings"

	"github.com/common-fate/clio"
)

// Find returns an identifier for the default browser: the https ProgId on
// Windows, the desktop file on Linux. It returns "" if the default is unknown.
func Find() string {
	var (
		b   string
		err error
	)
	switch runtime.GOOS {
	case "windows":
		b, err = handleWindowsBrowserSearch()
	case "linux":
		b, err = handleLinuxBrowserSearch()
	default:
		clio.Debugf("default browser lookup is not supported on %s", runtime.GOOS)
	}
	if err != nil {
		clio.Debugw("could not find default browser", "error", err)
		return ""
	}
	return strings.TrimSpace(b)
}

// IsEdge reports whether a browser identifier returned by Find is Microsoft Edge.
func IsEdge(b string) bool {
	b = strings.ToLower(b)
	return strings.HasPrefix(b, "msedge") || strings.Contains(b, "microsoft-edge") || strings.HasPrefix(b, "appxq0fevzme2pys62n3e0fbqa7peapykr8v")
}
