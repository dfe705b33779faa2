package main

import (
	"os"

	"github.com/common-fate/clio"
	"github.com/common-fate/clio/clierr"
	"github.com/common-fate/deflector/pkg/deflector"
	"github.com/common-fate/deflector/pkg/dispatch"
)

func main() {
	// The shell runs `deflector.exe "microsoft-edge:..."` for every link, so that
	// form is handled without going through the CLI parser.
	if dispatch.Accepts(os.Args[1:]) {
		os.Exit(deflector.Dispatch(os.Args[1:]))
	}

	app := deflector.GetCliApp()
	err := app.Run(os.Args)
	if err != nil {
		// if the error is an instance of clierr.PrintCLIErrorer then print the error accordingly
		if cliError, ok := err.(clierr.PrintCLIErrorer); ok {
			cliError.PrintCLIError()
		} else {
			clio.Error(err.Error())
		}
		os.Exit(1)
	}
}
