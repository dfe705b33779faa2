//go:build !windows

package elevate

import "fmt"

// Registration on other platforms writes to an emulated registry in the
// user's config folder, which needs no extra privileges.
func isElevated() bool { return true }

func relaunch(args []string) error {
	return fmt.Errorf("elevation is not supported on this platform")
}
