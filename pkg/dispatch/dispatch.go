// Package dispatch handles a single microsoft-edge: link handed over by the shell.
package dispatch

import (
	"github.com/common-fate/clio"
	"github.com/common-fate/deflector/pkg/engine"
	"github.com/common-fate/deflector/pkg/launcher"
	"github.com/common-fate/deflector/pkg/rewrite"
	"github.com/common-fate/deflector/pkg/uri"
)

// Exit codes. The shell is the only observer of the outcome,
// so nothing is printed on failure.
const (
	ExitOK              = 0
	ExitNotDispatchable = 1
)

// EngineSource provides the search engine preference.
type EngineSource interface {
	Get() engine.Preference
}

// Fixed is an EngineSource which always returns the same preference.
type Fixed engine.Preference

func (f Fixed) Get() engine.Preference { return engine.Preference(f) }

type Dispatcher struct {
	Engine   EngineSource
	Launcher launcher.Launcher
}

// Accepts reports whether args is exactly one microsoft-edge: URI,
// which is the only way the shell invokes deflector.
func Accepts(args []string) bool {
	return len(args) == 1 && uri.IsScheme(args[0])
}

// Run rewrites the link in args and opens it, returning the process exit code.
// Arguments of any other shape are ignored.
func (d Dispatcher) Run(args []string) int {
	if !Accepts(args) {
		clio.Debugw("ignoring arguments", "args", args)
		return ExitOK
	}

	target := rewrite.Rewrite(args[0], d.Engine.Get())
	if !uri.IsWellFormed(target) || !uri.IsHTTP(target) {
		clio.Debugw("rewritten link is not dispatchable", "input", args[0], "target", target)
		return ExitNotDispatchable
	}

	clio.Debugw("opening link", "input", args[0], "target", target)
	err := d.Launcher.Open(target)
	if err != nil {
		clio.Debugw("failed to open link", "target", target, "error", err)
		return ExitNotDispatchable
	}
	return ExitOK
}
