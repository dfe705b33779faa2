//go:build windows

package browser

import (
	"github.com/pkg/errors"
	"golang.org/x/sys/windows/registry"
)

func handleWindowsBrowserSearch() (string, error) {
	// Lookup https handler in registry
	k, err := registry.OpenKey(registry.CURRENT_USER, `SOFTWARE\Microsoft\Windows\Shell\Associations\UrlAssociations\https\UserChoice`, registry.QUERY_VALUE)
	if err != nil {
		return "", errors.Wrap(err, "opening https UserChoice")
	}
	defer k.Close()

	kv, _, err := k.GetStringValue("ProgId")
	if err != nil {
		return "", errors.Wrap(err, "reading ProgId")
	}
	return kv, nil
}

func handleLinuxBrowserSearch() (string, error) { return "", nil }
