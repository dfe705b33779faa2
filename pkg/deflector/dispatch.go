package deflector

import (
	"github.com/common-fate/clio"
	"github.com/common-fate/deflector/pkg/config"
	"github.com/common-fate/deflector/pkg/dispatch"
	"github.com/common-fate/deflector/pkg/engine"
	"github.com/common-fate/deflector/pkg/launcher"
)

// Dispatch opens the microsoft-edge: link in args and returns the exit code.
// Failing to read configuration never stops the link from opening.
func Dispatch(args []string) int {
	clio.SetLevelFromEnv("DEFLECTOR_LOG")

	var source dispatch.EngineSource = dispatch.Fixed(engine.Default)
	hives, err := systemHives()
	if err != nil {
		clio.Debugw("registry unavailable, using default search engine", "error", err)
	} else {
		source = engine.Store{Hive: hives.CurrentUser}
	}

	cfg, err := config.Load()
	if err != nil {
		clio.Debugw("config unavailable, using default browser", "error", err)
	}

	d := dispatch.Dispatcher{
		Engine:   source,
		Launcher: launcher.FromConfig(cfg),
	}
	return d.Run(args)
}
