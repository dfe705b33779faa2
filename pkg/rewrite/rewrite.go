// Package rewrite turns a microsoft-edge: URI into a plain http(s) link
// which can be opened in the user's default browser.
package rewrite

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/common-fate/deflector/internal/build"
	"github.com/common-fate/deflector/pkg/engine"
	"github.com/common-fate/deflector/pkg/uri"
)

var schemePattern = regexp.MustCompile(`(?i)^` + regexp.QuoteMeta(build.Scheme) + `:/*`)

// Cortana and Windows Search wrap the target in a url parameter:
//
//	microsoft-edge:?launchContext1=Microsoft.Windows.Cortana_cw5n1h2txyewy&url=https%3A%2F%2Fwww.bing.com%2Fsearch%3Fq%3Dcats
const (
	carrierMarker = build.Scheme + ":?"
	carrierParam  = "&url="
)

const bingSearch = "bing.com/search?q="

var searchReplacements = map[engine.Preference]string{
	engine.Google:     "google.com/search?q=",
	engine.DuckDuckGo: "duckduckgo.com/?q=",
}

// Rewrite returns the http(s) link wrapped by a microsoft-edge: URI,
// with Bing searches diverted according to the engine preference.
//
// The result always starts with http:// or https://. Inputs which don't
// carry a recognisable link are prefixed with http:// and left for the
// browser to make sense of.
func Rewrite(raw string, p engine.Preference) string {
	stripped := schemePattern.ReplaceAllString(raw, "")

	if uri.IsHTTP(stripped) {
		return ApplySearchEngine(stripped, p)
	}

	// the carrier check looks at the input before the scheme was stripped
	if isCarrier(raw) {
		target := carrierTarget(raw)
		if uri.IsHTTP(target) {
			return ApplySearchEngine(target, p)
		}
	}

	return ApplySearchEngine("http://"+stripped, p)
}

func isCarrier(raw string) bool {
	return strings.Contains(raw, carrierMarker) && strings.Contains(raw, carrierParam)
}

// carrierTarget returns the decoded url parameter of a carrier URI.
func carrierTarget(raw string) string {
	// ParseQuery keeps the pairs it could parse when it returns an error,
	// and the leading "microsoft-edge:?" pair is not of interest anyway.
	values, _ := url.ParseQuery(raw)
	return values.Get("url")
}

// ApplySearchEngine drops everything from the first '&' onwards, which removes
// the tracking parameters Bing appends, and then points Bing search links at
// the preferred engine. Links that aren't Bing searches are only truncated.
func ApplySearchEngine(link string, p engine.Preference) string {
	if i := strings.IndexByte(link, '&'); i >= 0 {
		link = link[:i]
	}

	replacement, ok := searchReplacements[p]
	if !ok {
		return link
	}
	return strings.ReplaceAll(link, bingSearch, replacement)
}
