package deflector

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/common-fate/clio"
	"github.com/common-fate/deflector/pkg/browser"
	"github.com/common-fate/deflector/pkg/elevate"
	"github.com/common-fate/deflector/pkg/prompt"
	"github.com/common-fate/deflector/pkg/registrar"
	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

var RegisterCommand = cli.Command{
	Name:  "register",
	Usage: "Register deflector as the handler for microsoft-edge: links (requires administrator rights)",
	Action: func(c *cli.Context) error {
		r, err := newRegistrar("register")
		if err != nil {
			return err
		}

		pref, err := r.Register()
		if errors.Is(err, elevate.ErrRelaunched) {
			return nil
		}
		if err != nil {
			return err
		}

		fmt.Fprintln(color.Error, "[✔] deflector is registered for microsoft-edge: links")
		clio.Infof("Bing searches will open with: %s", pref)
		clio.Info("Select EdgeDeflector for the MICROSOFT-EDGE protocol in Settings > Apps > Default apps to finish setup")

		if b := browser.Find(); browser.IsEdge(b) {
			clio.Warnf("Your default browser is Microsoft Edge (%s), so deflected links will still open in Edge", b)
		}
		return nil
	},
}

var UnregisterCommand = cli.Command{
	Name:  "unregister",
	Usage: "Remove deflector's protocol registration and settings (requires administrator rights)",
	Action: func(c *cli.Context) error {
		r, err := newRegistrar("unregister")
		if err != nil {
			return err
		}

		err = r.Unregister()
		if errors.Is(err, elevate.ErrRelaunched) {
			return nil
		}
		if err != nil {
			return err
		}

		fmt.Fprintln(color.Error, "[✔] deflector has been unregistered")
		return nil
	},
}

func newRegistrar(args ...string) (registrar.Registrar, error) {
	hives, err := systemHives()
	if err != nil {
		return registrar.Registrar{}, err
	}
	exe, err := executablePath()
	if err != nil {
		return registrar.Registrar{}, err
	}
	return registrar.Registrar{
		Hives:      hives,
		Prompter:   prompt.Survey{},
		Elevator:   elevator,
		Executable: exe,
		Args:       args,
	}, nil
}

func executablePath() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", errors.Wrap(err, "finding executable path")
	}
	exe, err = filepath.EvalSymlinks(exe)
	if err != nil {
		return "", errors.Wrap(err, "resolving executable path")
	}
	return exe, nil
}
