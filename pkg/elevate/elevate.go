// Package elevate checks for, and requests, the administrator rights
// needed to write machine-wide protocol registrations.
package elevate

import "errors"

// ErrRelaunched is returned once an elevated copy of the process has been
// started. The current, non-elevated process should exit.
var ErrRelaunched = errors.New("relaunched with elevated privileges")

// Elevator reports whether the process is elevated and can restart it elevated.
type Elevator interface {
	IsElevated() bool
	Relaunch(args []string) error
}

// OS elevates the running process using the platform's mechanism.
type OS struct{}

func (OS) IsElevated() bool { return isElevated() }

// Relaunch starts this executable again with args, asking the OS for
// elevation. It returns ErrRelaunched on success.
func (OS) Relaunch(args []string) error {
	if err := relaunch(args); err != nil {
		return err
	}
	return ErrRelaunched
}
