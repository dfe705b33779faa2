// Package uri classifies raw command line arguments handed to deflector by the shell.
package uri

import (
	"errors"
	"net/url"
	"strings"
	"unicode"

	"github.com/common-fate/deflector/internal/build"
)

// SchemePrefix is the prefix every inbound argument must carry, e.g. "microsoft-edge:".
const SchemePrefix = build.Scheme + ":"

// IsWellFormed reports whether s parses as an absolute URI.
// It never panics and returns false for empty input.
func IsWellFormed(s string) bool {
	if s == "" {
		return false
	}
	u, err := url.Parse(s)
	var escapeErr url.EscapeError
	if errors.As(err, &escapeErr) {
		// browsers accept a stray '%' such as in /50%off
		u, err = url.Parse(escapeStrayPercents(s))
	}
	if err != nil {
		return false
	}
	if u.Scheme == "" {
		return false
	}
	return u.Host != "" || u.Opaque != ""
}

// IsHTTP reports whether s starts with http:// or https://, ignoring case.
func IsHTTP(s string) bool {
	return hasPrefixFold(s, "https://") || hasPrefixFold(s, "http://")
}

// IsScheme reports whether s is a microsoft-edge: URI.
// Arguments containing whitespace are rejected as they cannot have come
// from the shell's protocol dispatch.
func IsScheme(s string) bool {
	return hasPrefixFold(s, SchemePrefix) && strings.IndexFunc(s, unicode.IsSpace) == -1
}

// escapeStrayPercents encodes every '%' not followed by two hex digits as %25.
func escapeStrayPercents(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == '%' && !(i+2 < len(s) && isHex(s[i+1]) && isHex(s[i+2])) {
			b.WriteString("%25")
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

func isHex(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}

func hasPrefixFold(s, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}
