//go:build windows

package elevate

import (
	"os"

	"github.com/common-fate/clio"
	"github.com/pkg/errors"
	"golang.org/x/sys/windows"
)

func isElevated() bool {
	return windows.GetCurrentProcessToken().IsElevated()
}

// relaunch uses ShellExecute with the "runas" verb, which shows the UAC prompt.
// If the user declines the prompt ShellExecute fails and nothing is registered.
func relaunch(args []string) error {
	exe, err := os.Executable()
	if err != nil {
		return errors.Wrap(err, "finding executable path")
	}
	cwd, err := os.Getwd()
	if err != nil {
		return errors.Wrap(err, "finding working directory")
	}

	verb, err := windows.UTF16PtrFromString("runas")
	if err != nil {
		return err
	}
	file, err := windows.UTF16PtrFromString(exe)
	if err != nil {
		return err
	}
	params, err := windows.UTF16PtrFromString(windows.ComposeCommandLine(args))
	if err != nil {
		return err
	}
	dir, err := windows.UTF16PtrFromString(cwd)
	if err != nil {
		return err
	}

	clio.Debugw("relaunching elevated", "exe", exe, "args", args)
	err = windows.ShellExecute(0, verb, file, params, dir, windows.SW_NORMAL)
	if err != nil {
		return errors.Wrap(err, "requesting elevation")
	}
	return nil
}
