package registrar

import (
	"testing"

	"github.com/common-fate/deflector/internal/build"
	"github.com/common-fate/deflector/pkg/elevate"
	"github.com/common-fate/deflector/pkg/engine"
	"github.com/common-fate/deflector/pkg/prompt"
	"github.com/common-fate/deflector/pkg/regstore"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testExe = `C:\Program Files\deflector\deflector.exe`

type fakeElevator struct {
	elevated   bool
	relaunches [][]string
}

func (f *fakeElevator) IsElevated() bool { return f.elevated }

func (f *fakeElevator) Relaunch(args []string) error {
	f.relaunches = append(f.relaunches, args)
	return elevate.ErrRelaunched
}

type memoryHives struct {
	classesRoot, localMachine, currentUser *regstore.Memory
}

func newMemoryHives() memoryHives {
	return memoryHives{
		classesRoot:  regstore.NewMemory(),
		localMachine: regstore.NewMemory(),
		currentUser:  regstore.NewMemory(),
	}
}

func (m memoryHives) hives() regstore.Hives {
	return regstore.Hives{ClassesRoot: m.classesRoot, LocalMachine: m.localMachine, CurrentUser: m.currentUser}
}

type snapshot struct {
	ClassesRoot, LocalMachine, CurrentUser map[string]map[string]string
}

func (m memoryHives) snapshot() snapshot {
	return snapshot{
		ClassesRoot:  m.classesRoot.Snapshot(),
		LocalMachine: m.localMachine.Snapshot(),
		CurrentUser:  m.currentUser.Snapshot(),
	}
}

func newRegistrar(h memoryHives, answers ...bool) Registrar {
	return Registrar{
		Hives:      h.hives(),
		Prompter:   &prompt.Scripted{Answers: answers},
		Elevator:   &fakeElevator{elevated: true},
		Executable: testExe,
		Args:       []string{"register"},
	}
}

func registeredState(searchEngine string) snapshot {
	return snapshot{
		ClassesRoot: map[string]map[string]string{
			`EdgeUriDeflector`:                    {"": "URL: Microsoft Edge Protocol Deflector", "URL Protocol": ""},
			`EdgeUriDeflector\DefaultIcon`:        {"": testExe + ",0"},
			`EdgeUriDeflector\shell`:              {},
			`EdgeUriDeflector\shell\open`:         {},
			`EdgeUriDeflector\shell\open\command`: {"": testExe + ` "%1"`},
		},
		LocalMachine: map[string]map[string]string{
			`SOFTWARE`:                                                       {},
			`SOFTWARE\Clients`:                                               {},
			`SOFTWARE\Clients\EdgeUriDeflector`:                              {},
			`SOFTWARE\Clients\EdgeUriDeflector\Capabilities`:                 {"ApplicationDescription": build.ApplicationDescription, "ApplicationName": build.ApplicationName},
			`SOFTWARE\Clients\EdgeUriDeflector\Capabilities\UrlAssociations`: {"microsoft-edge": "EdgeUriDeflector"},
			`SOFTWARE\RegisteredApplications`:                                {"EdgeUriDeflector": `SOFTWARE\Clients\EdgeUriDeflector\Capabilities`},
		},
		CurrentUser: map[string]map[string]string{
			`SOFTWARE`:                          {},
			`SOFTWARE\Clients`:                  {},
			`SOFTWARE\Clients\EdgeUriDeflector`: {"SearchEngine": searchEngine},
		},
	}
}

func TestRegister(t *testing.T) {
	tests := []struct {
		name    string
		answers []bool
		want    engine.Preference
	}{
		{name: "keep bing", answers: []bool{false}, want: engine.Default},
		{name: "google", answers: []bool{true, true}, want: engine.Google},
		{name: "duckduckgo", answers: []bool{true, false}, want: engine.DuckDuckGo},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newMemoryHives()
			r := newRegistrar(h, tt.answers...)

			got, err := r.Register()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			if diff := cmp.Diff(registeredState(tt.want.String()), h.snapshot()); diff != "" {
				t.Errorf("registry mismatch (-want +got):\n%s", diff)
			}
			assert.Equal(t, tt.want, engine.Store{Hive: h.currentUser}.Get())
		})
	}
}

func TestRegister_AsksInOrder(t *testing.T) {
	h := newMemoryHives()
	p := &prompt.Scripted{Answers: []bool{true, true}}
	r := newRegistrar(h)
	r.Prompter = p

	_, err := r.Register()
	require.NoError(t, err)
	assert.Equal(t, []string{QuestionDivert, QuestionGoogle}, p.Asked)
}

func TestRegister_Idempotent(t *testing.T) {
	h := newMemoryHives()

	_, err := newRegistrar(h, false).Register()
	require.NoError(t, err)
	first := h.snapshot()

	_, err = newRegistrar(h, false).Register()
	require.NoError(t, err)

	if diff := cmp.Diff(first, h.snapshot()); diff != "" {
		t.Errorf("second registration changed the registry (-first +second):\n%s", diff)
	}
}

func TestRegister_OverwritesPreviousInstall(t *testing.T) {
	h := newMemoryHives()

	old := newRegistrar(h, true, true)
	old.Executable = `C:\old\deflector.exe`
	_, err := old.Register()
	require.NoError(t, err)

	_, err = newRegistrar(h, true, false).Register()
	require.NoError(t, err)

	if diff := cmp.Diff(registeredState("DuckDuckGo"), h.snapshot()); diff != "" {
		t.Errorf("registry mismatch (-want +got):\n%s", diff)
	}
}

func TestRegister_KeepsOtherRegisteredApplications(t *testing.T) {
	h := newMemoryHives()
	k, err := h.localMachine.OpenOrCreate(RegisteredApplicationsKey)
	require.NoError(t, err)
	require.NoError(t, k.SetValue("Firefox-308046B0AF4A39CB", `Software\Clients\StartMenuInternet\Firefox-308046B0AF4A39CB\Capabilities`))

	_, err = newRegistrar(h, false).Register()
	require.NoError(t, err)

	apps := h.localMachine.Snapshot()[RegisteredApplicationsKey]
	assert.Len(t, apps, 2)
	assert.Equal(t, CapabilitiesKey, apps["EdgeUriDeflector"])
}

func TestRegister_NotElevated(t *testing.T) {
	h := newMemoryHives()
	elevator := &fakeElevator{elevated: false}
	p := &prompt.Scripted{}
	r := newRegistrar(h)
	r.Elevator = elevator
	r.Prompter = p

	_, err := r.Register()
	assert.ErrorIs(t, err, elevate.ErrRelaunched)
	assert.Equal(t, [][]string{{"register"}}, elevator.relaunches)
	assert.Empty(t, p.Asked)
	assert.Equal(t, snapshot{
		ClassesRoot:  map[string]map[string]string{},
		LocalMachine: map[string]map[string]string{},
		CurrentUser:  map[string]map[string]string{},
	}, h.snapshot())
}

func TestRegister_PromptError(t *testing.T) {
	h := newMemoryHives()
	r := newRegistrar(h, true)

	_, err := r.Register()
	var noAnswer *prompt.ErrNoAnswer
	require.ErrorAs(t, err, &noAnswer)
	assert.Empty(t, h.currentUser.Snapshot())
	assert.Empty(t, h.classesRoot.Snapshot())
}

func TestUnregister(t *testing.T) {
	h := newMemoryHives()
	k, err := h.localMachine.OpenOrCreate(RegisteredApplicationsKey)
	require.NoError(t, err)
	require.NoError(t, k.SetValue("Other", `Software\Other\Capabilities`))

	r := newRegistrar(h, true, true)
	_, err = r.Register()
	require.NoError(t, err)

	require.NoError(t, r.Unregister())
	// a second run finds nothing to remove
	require.NoError(t, r.Unregister())

	want := snapshot{
		ClassesRoot: map[string]map[string]string{},
		LocalMachine: map[string]map[string]string{
			`SOFTWARE`:                        {},
			`SOFTWARE\Clients`:                {},
			`SOFTWARE\RegisteredApplications`: {"Other": `Software\Other\Capabilities`},
		},
		CurrentUser: map[string]map[string]string{
			`SOFTWARE`:         {},
			`SOFTWARE\Clients`: {},
		},
	}
	if diff := cmp.Diff(want, h.snapshot()); diff != "" {
		t.Errorf("registry mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, engine.Default, engine.Store{Hive: h.currentUser}.Get())
}

func TestUnregister_NotElevated(t *testing.T) {
	h := newMemoryHives()
	r := newRegistrar(h)
	r.Elevator = &fakeElevator{}

	assert.ErrorIs(t, r.Unregister(), elevate.ErrRelaunched)
}

func TestOpenCommand(t *testing.T) {
	assert.Equal(t, `C:\deflector.exe "%1"`, OpenCommand(`C:\deflector.exe`))
}
