//go:build !windows

// Package forkprocess starts a process which runs in the background.
// deflector uses it to start a browser from a custom launch template,
// so that the browser is not tied to the short-lived deflector process.
package forkprocess

import (
	"os"
	"os/exec"
	"os/user"
	"strconv"
	"syscall"

	"github.com/pkg/errors"
)

type Process struct {
	UID     uint32
	GID     uint32
	Args    []string
	// Workdir is the process working directory. Empty means deflector's current directory.
	Workdir string
}

// New creates a new Process with the current user's user and group ID.
// Call Start() on the returned process to actually start it.
func New(args ...string) (*Process, error) {
	if len(args) == 0 {
		return nil, errors.New("no command to start")
	}
	u, err := user.Current()
	if err != nil {
		return nil, errors.Wrap(err, "getting current user")
	}
	uid, err := strconv.ParseUint(u.Uid, 10, 32)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing uid (%s)", u.Uid)
	}
	gid, err := strconv.ParseUint(u.Gid, 10, 32)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing gid (%s)", u.Gid)
	}

	p := Process{
		UID:  uint32(uid),
		GID:  uint32(gid),
		Args: args,
	}
	return &p, nil
}

// Start launches a detached process in a new session under the current user and group ID.
func (p *Process) Start() error {
	name, err := exec.LookPath(p.Args[0])
	if err != nil {
		return errors.Wrapf(err, "finding %s", p.Args[0])
	}

	sysproc := &syscall.SysProcAttr{
		Credential: &syscall.Credential{
			Uid:         p.UID,
			Gid:         p.GID,
			NoSetGroups: true,
		},
		Setsid: true,
	}

	devnull, err := os.OpenFile(os.DevNull, os.O_RDWR, 0)
	if err != nil {
		return errors.Wrap(err, "opening null device")
	}
	defer devnull.Close()

	attr := os.ProcAttr{
		Dir:   p.Workdir,
		Env:   os.Environ(),
		Files: []*os.File{devnull, devnull, devnull},
		Sys:   sysproc,
	}
	process, err := os.StartProcess(name, p.Args, &attr)
	if err != nil {
		return errors.Wrap(err, "starting process")
	}

	err = process.Release()
	if err != nil {
		return errors.Wrap(err, "releasing process")
	}
	return nil
}
