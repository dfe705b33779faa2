//go:build windows

package forkprocess

import (
	"os/exec"
	"syscall"

	"github.com/pkg/errors"
	"golang.org/x/sys/windows"
)

type Process struct {
	Args []string
	// Workdir is the process working directory. Empty means deflector's current directory.
	Workdir string
}

// New creates a new Process.
// Call Start() on the returned process to actually start it.
func New(args ...string) (*Process, error) {
	if len(args) == 0 {
		return nil, errors.New("no command to start")
	}
	p := Process{
		Args: args,
	}
	return &p, nil
}

// Start launches the process detached from deflector's console.
func (p *Process) Start() error {
	cmd := exec.Command(p.Args[0], p.Args[1:]...)
	cmd.Dir = p.Workdir
	cmd.SysProcAttr = &syscall.SysProcAttr{
		CreationFlags: windows.DETACHED_PROCESS | windows.CREATE_NEW_PROCESS_GROUP,
	}
	err := cmd.Start()
	if err != nil {
		return errors.Wrap(err, "starting command")
	}
	return cmd.Process.Release()
}
