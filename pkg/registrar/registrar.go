// Package registrar installs deflector as the handler for microsoft-edge: links.
//
// Registration writes three things:
//
//   - the search engine preference, under HKEY_CURRENT_USER
//   - a URL protocol class under HKEY_CLASSES_ROOT whose open command runs deflector
//   - a "registered application" capability under HKEY_LOCAL_MACHINE, which makes
//     deflector selectable for the microsoft-edge protocol in Windows' Default Apps settings
//
// Every key is opened or created before it is written, so running registration
// again overwrites the previous state rather than adding to it.
package registrar

import (
	"fmt"

	"github.com/common-fate/clio"
	"github.com/common-fate/deflector/internal/build"
	"github.com/common-fate/deflector/pkg/elevate"
	"github.com/common-fate/deflector/pkg/engine"
	"github.com/common-fate/deflector/pkg/prompt"
	"github.com/common-fate/deflector/pkg/regstore"
	"github.com/pkg/errors"
)

const (
	// ClassKey is the protocol class, under HKEY_CLASSES_ROOT.
	ClassKey = build.ProgID
	// ClientKey holds the application's capabilities, under HKEY_LOCAL_MACHINE.
	ClientKey       = `SOFTWARE\Clients\` + build.ProgID
	CapabilitiesKey = ClientKey + `\Capabilities`
	// RegisteredApplicationsKey lists every application declaring capabilities, under HKEY_LOCAL_MACHINE.
	RegisteredApplicationsKey = `SOFTWARE\RegisteredApplications`
)

const (
	QuestionDivert = "Would you like to divert Bing to a different search engine?"
	QuestionGoogle = "Use Google? (answering no selects DuckDuckGo)"
)

type Registrar struct {
	Hives    regstore.Hives
	Prompter prompt.Prompter
	Elevator elevate.Elevator

	// Executable is the path written into the protocol's open command.
	Executable string
	// Args are passed to the elevated process if a relaunch is needed.
	Args []string
}

// Register installs deflector as a microsoft-edge: handler.
//
// If the process isn't elevated it relaunches itself with an elevation request
// and returns elevate.ErrRelaunched without writing anything.
func (r Registrar) Register() (engine.Preference, error) {
	if !r.Elevator.IsElevated() {
		clio.Info("Administrator rights are needed to register deflector, relaunching")
		return "", r.Elevator.Relaunch(r.Args)
	}

	pref, err := r.choosePreference()
	if err != nil {
		return "", err
	}

	err = engine.Store{Hive: r.Hives.CurrentUser}.Set(pref)
	if err != nil {
		return "", errors.Wrap(err, "saving search engine preference")
	}
	clio.Debugw("saved search engine preference", "engine", pref)

	err = r.registerProtocol()
	if err != nil {
		return "", errors.Wrap(err, "registering protocol class")
	}

	err = r.registerCapabilities()
	if err != nil {
		return "", errors.Wrap(err, "registering application capabilities")
	}

	return pref, nil
}

func (r Registrar) choosePreference() (engine.Preference, error) {
	divert, err := r.Prompter.AskYesNo(QuestionDivert)
	if err != nil {
		return "", err
	}
	if !divert {
		return engine.Default, nil
	}

	google, err := r.Prompter.AskYesNo(QuestionGoogle)
	if err != nil {
		return "", err
	}
	if google {
		return engine.Google, nil
	}
	return engine.DuckDuckGo, nil
}

// OpenCommand is the shell command run for a microsoft-edge: link.
func OpenCommand(executable string) string {
	return fmt.Sprintf(`%s "%%1"`, executable)
}

// Icon references the first icon resource of the executable.
func Icon(executable string) string {
	return executable + ",0"
}

type value struct {
	name  string
	value string
}

func (r Registrar) registerProtocol() error {
	err := writeValues(r.Hives.ClassesRoot, ClassKey,
		value{"", build.ProtocolDescription},
		value{"URL Protocol", ""},
	)
	if err != nil {
		return err
	}

	err = writeValues(r.Hives.ClassesRoot, ClassKey+`\DefaultIcon`, value{"", Icon(r.Executable)})
	if err != nil {
		return err
	}

	return writeValues(r.Hives.ClassesRoot, ClassKey+`\shell\open\command`, value{"", OpenCommand(r.Executable)})
}

func (r Registrar) registerCapabilities() error {
	err := writeValues(r.Hives.LocalMachine, CapabilitiesKey,
		value{"ApplicationDescription", build.ApplicationDescription},
		value{"ApplicationName", build.ApplicationName},
	)
	if err != nil {
		return err
	}

	err = writeValues(r.Hives.LocalMachine, CapabilitiesKey+`\UrlAssociations`, value{build.Scheme, build.ProgID})
	if err != nil {
		return err
	}

	return writeValues(r.Hives.LocalMachine, RegisteredApplicationsKey, value{build.ProgID, CapabilitiesKey})
}

// writeValues opens or creates the key at path and sets each value on it.
func writeValues(hive regstore.Hive, path string, values ...value) error {
	key, err := hive.OpenOrCreate(path)
	if err != nil {
		return errors.Wrapf(err, "opening %s", path)
	}
	defer key.Close()

	for _, v := range values {
		err = key.SetValue(v.name, v.value)
		if err != nil {
			return errors.Wrapf(err, "writing %s\\%s", path, v.name)
		}
		clio.Debugw("wrote registry value", "key", path, "name", v.name, "value", v.value)
	}
	return nil
}

// Unregister removes everything Register wrote. Missing keys are ignored,
// so it is safe to run on a machine that was never registered.
//
// Like Register, it relaunches the process elevated if needed.
func (r Registrar) Unregister() error {
	if !r.Elevator.IsElevated() {
		clio.Info("Administrator rights are needed to unregister deflector, relaunching")
		return r.Elevator.Relaunch(r.Args)
	}

	err := r.Hives.LocalMachine.DeleteValue(RegisteredApplicationsKey, build.ProgID)
	if err != nil {
		return errors.Wrap(err, "removing registered application")
	}
	err = r.Hives.LocalMachine.DeleteTree(ClientKey)
	if err != nil {
		return errors.Wrap(err, "removing application capabilities")
	}
	err = r.Hives.ClassesRoot.DeleteTree(ClassKey)
	if err != nil {
		return errors.Wrap(err, "removing protocol class")
	}
	err = r.Hives.CurrentUser.DeleteTree(engine.KeyPath)
	if err != nil {
		return errors.Wrap(err, "removing search engine preference")
	}
	return nil
}
