package launcher

import (
	"errors"
	"fmt"
	"os/exec"
	"regexp"
	"strings"
	"text/template"

	"github.com/common-fate/clio"
	"github.com/common-fate/deflector/pkg/config"
	"github.com/common-fate/deflector/pkg/forkprocess"
)

type TemplateData struct {
	URL string
}

type Custom struct {
	// Command to execute. The command is a series of arguments which may include templated variables.
	// For example: '/usr/bin/firefox --new-tab {{.URL}}'
	Command     string
	ForkProcess bool
}

func (l Custom) LaunchCommand(url string) ([]string, error) {
	if l.Command == "" {
		// the command must always be specified, so return an error here
		return nil, errors.New("the command template was empty - ensure that a browser launch template 'Command' field is specified in your deflector config")
	}

	tmpl, err := template.New("").Option("missingkey=error").Parse(l.Command)
	if err != nil {
		return nil, fmt.Errorf("parsing command template (check that your browser launch template is valid in your deflector config): %w", err)
	}

	var renderedCommand strings.Builder
	err = tmpl.Execute(&renderedCommand, TemplateData{URL: url})
	if err != nil {
		return nil, fmt.Errorf("executing command template (check that your browser launch template is valid in your deflector config): %w", err)
	}

	commandParts := splitCommand(renderedCommand.String())
	if len(commandParts) == 0 {
		return nil, errors.New("the command template rendered to an empty command")
	}
	return commandParts, nil
}

var commandPartPattern = regexp.MustCompile(`"([^"]+)"|(\S+)`)

// splits each component of the command. Anything within quotes will be handled as one component of the command
// eg "C:\Program Files\Mozilla Firefox\firefox.exe" <URL> returns ["C:\Program Files\Mozilla Firefox\firefox.exe", "<URL>"]
func splitCommand(command string) []string {
	matches := commandPartPattern.FindAllStringSubmatch(command, -1)

	var result []string
	for _, match := range matches {
		if match[1] != "" {
			result = append(result, match[1])
		} else {
			result = append(result, match[2])
		}
	}

	return result
}

func (l Custom) Open(url string) error {
	args, err := l.LaunchCommand(url)
	if err != nil {
		return err
	}
	clio.Debugw("launching browser from template", "command", args, "fork", l.ForkProcess)

	if l.ForkProcess {
		p, err := forkprocess.New(args...)
		if err != nil {
			return err
		}
		return p.Start()
	}

	cmd := exec.Command(args[0], args[1:]...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("starting %s: %w", args[0], err)
	}
	// the browser outlives deflector
	return cmd.Process.Release()
}

var ErrLaunchTemplateNotConfigured = errors.New("launch template is not configured")

// CustomFromLaunchTemplate creates a custom browser launcher from a configuration launch template.
//
// It prevents a panic if the launch template is nil.
func CustomFromLaunchTemplate(lt *config.BrowserLaunchTemplate) (Custom, error) {
	if lt == nil {
		return Custom{}, ErrLaunchTemplateNotConfigured
	}
	return Custom{
		Command:     lt.Command,
		ForkProcess: lt.UseForkProcess,
	}, nil
}

// FromConfig returns the launcher configured by the user,
// falling back to the system default browser.
func FromConfig(cfg *config.Config) Launcher {
	if cfg == nil {
		return System{}
	}
	custom, err := CustomFromLaunchTemplate(cfg.BrowserLaunchTemplate)
	if err != nil {
		return System{}
	}
	return custom
}
