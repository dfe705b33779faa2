// Package launcher hands rewritten links to a browser.
package launcher

import (
	"io"

	"github.com/pkg/browser"
	"github.com/pkg/errors"
)

// Launcher opens a URL in a browser.
type Launcher interface {
	Open(url string) error
}

// System opens URLs with the OS default browser, which is the same
// as the user clicking an http link anywhere else in Windows.
type System struct{}

func (System) Open(url string) error {
	// deflector has no console of its own, so keep any output from the
	// opener quiet.
	browser.Stdout = io.Discard
	browser.Stderr = io.Discard

	err := browser.OpenURL(url)
	if err != nil {
		return errors.Wrap(err, "opening url in default browser")
	}
	return nil
}
