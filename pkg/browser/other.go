//go:build !windows

package browser

import (
	"os/exec"

	"github.com/pkg/errors"
)

func handleWindowsBrowserSearch() (string, error) { return "", nil }

func handleLinuxBrowserSearch() (string, error) {
	out, err := exec.Command("xdg-settings", "get", "default-web-browser").Output()
	if err != nil {
		return "", errors.Wrap(err, "running xdg-settings")
	}
	return string(out), nil
}
