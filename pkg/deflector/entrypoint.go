package deflector

import (
	"github.com/common-fate/clio"
	"github.com/common-fate/deflector/internal/build"
	"github.com/common-fate/deflector/pkg/banners"
	"github.com/common-fate/deflector/pkg/config"
	"github.com/common-fate/deflector/pkg/elevate"
	"github.com/common-fate/deflector/pkg/regstore"
	"github.com/urfave/cli/v2"
)

// hooks replaced in tests
var systemHives = regstore.System
var elevator elevate.Elevator = elevate.OS{}

func GetCliApp() *cli.App {
	cli.VersionPrinter = func(c *cli.Context) {
		clio.Log(banners.WithVersion())
	}

	flags := []cli.Flag{
		&cli.BoolFlag{Name: "verbose", Usage: "Log debug messages"},
	}

	app := &cli.App{
		Flags:       flags,
		Name:        build.BinaryName(),
		Usage:       "Open microsoft-edge: links in your default browser",
		UsageText:   "deflector [global options] command [command options] [arguments...]",
		Version:     build.Version,
		HideVersion: false,
		Commands: []*cli.Command{
			&RegisterCommand,
			&UnregisterCommand,
			&EngineCommand,
		},
		// the shell only ever calls deflector with a single link, which is
		// handled before the CLI is parsed. Anything else is ignored.
		Action: func(c *cli.Context) error {
			clio.Debugw("ignoring arguments", "args", c.Args().Slice())
			return nil
		},
		Before: func(c *cli.Context) error {
			clio.SetLevelFromEnv("DEFLECTOR_LOG")
			if c.Bool("verbose") {
				clio.SetLevelFromString("debug")
			}
			if err := config.SetupConfigFolder(); err != nil {
				return err
			}
			return nil
		},
	}

	return app
}
