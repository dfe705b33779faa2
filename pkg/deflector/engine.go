package deflector

import (
	"fmt"
	"strings"

	"github.com/common-fate/clio"
	"github.com/common-fate/clio/clierr"
	"github.com/common-fate/deflector/pkg/engine"
	"github.com/urfave/cli/v2"
)

var EngineCommand = cli.Command{
	Name:        "engine",
	Usage:       "View or change the search engine used for Bing searches",
	Subcommands: []*cli.Command{&EngineShowCommand, &EngineSetCommand},
	Action:      EngineShowCommand.Action,
}

var EngineShowCommand = cli.Command{
	Name:  "show",
	Usage: "Print the current search engine",
	Action: func(c *cli.Context) error {
		hives, err := systemHives()
		if err != nil {
			return err
		}
		pref := engine.Store{Hive: hives.CurrentUser}.Get()
		fmt.Fprintln(c.App.Writer, pref)
		return nil
	},
}

var EngineSetCommand = cli.Command{
	Name:      "set",
	Usage:     "Change the search engine without re-registering",
	ArgsUsage: "<Bing|Google|DuckDuckGo>",
	Action: func(c *cli.Context) error {
		name := c.Args().First()
		pref, ok := engine.ParseName(name)
		if c.NArg() != 1 || !ok {
			return clierr.New(fmt.Sprintf("Unknown search engine %q", name),
				clierr.Infof("Choose one of: %s", engineNames()),
			)
		}

		hives, err := systemHives()
		if err != nil {
			return err
		}
		err = engine.Store{Hive: hives.CurrentUser}.Set(pref)
		if err != nil {
			return err
		}
		clio.Successf("Bing searches will open with: %s", pref)
		return nil
	},
}

func engineNames() string {
	var names []string
	for _, p := range engine.All() {
		names = append(names, p.String())
	}
	return strings.Join(names, ", ")
}
