// Package engine holds the user's search engine preference.
// The preference decides whether Bing search links are diverted to another provider.
package engine

import "strings"

type Preference string

const (
	// Default passes Bing search links through untouched.
	Default    Preference = "Bing"
	Google     Preference = "Google"
	DuckDuckGo Preference = "DuckDuckGo"
)

// All returns every supported preference, Default first.
func All() []Preference {
	return []Preference{Default, Google, DuckDuckGo}
}

// Parse maps a stored value to a Preference.
// Unknown or empty values resolve to Default.
func Parse(s string) Preference {
	switch s {
	case string(Google):
		return Google
	case string(DuckDuckGo):
		return DuckDuckGo
	}
	return Default
}

// ParseName is the lenient, case-insensitive form of Parse used for command line input.
// ok is false if the name does not match any preference.
func ParseName(name string) (p Preference, ok bool) {
	for _, candidate := range All() {
		if strings.EqualFold(name, string(candidate)) {
			return candidate, true
		}
	}
	return Default, false
}

func (p Preference) String() string {
	return string(p)
}
